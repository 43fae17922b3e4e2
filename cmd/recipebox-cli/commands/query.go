package commands

import (
	"fmt"
	"os"
	"strconv"

	"recipebox-backend/lib/isodur"
	"recipebox-backend/lib/serviceutil"
	"recipebox-backend/services/recipes"
	"recipebox-backend/services/recipes/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var queryLimit *int64

func init() {
	queryLimit = queryCmd.PersistentFlags().Int64("limit", 25, "The maximum number of rows to print.")

	queryCmd.AddCommand(getCmd)
	queryCmd.AddCommand(listCmd)
	queryCmd.AddCommand(searchNameCmd)
	queryCmd.AddCommand(searchTagCmd)
	queryCmd.AddCommand(searchTimeCmd)
	queryCmd.AddCommand(suggestCmd)
	queryCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(queryCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Looks up recipes in the configured database.",
}

func openService() (recipes.Service, func()) {
	cfg := readConfig()
	database, err := cfg.Database.OpenDB(db.Schema)
	if err != nil {
		serviceutil.Fatal("failed to open db", err)
	}
	return recipes.NewService(database), func() { database.Close() }
}

func totalTime(recipe db.Recipe) string {
	if recipe.Totaltimeiso.Valid {
		if readable := isodur.HumanReadable(recipe.Totaltimeiso.String); readable != "" {
			return readable
		}
	}
	return ""
}

func rating(recipe db.Recipe) string {
	if !recipe.Rating.Valid {
		return ""
	}
	return fmt.Sprintf("%.1f (%d)", recipe.Rating.Float64, recipe.Ratingcount.Int64)
}

func renderRecipes(rows []db.Recipe) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Id", "Name", "Total Time", "Rating"})

	for _, recipe := range rows {
		t.AppendRow(table.Row{recipe.ID, recipe.Name, totalTime(recipe), rating(recipe)})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

func parseId(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		serviceutil.Fatal("recipe ids are numeric", err)
	}
	return id
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Prints a single recipe with its tags.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, closeDb := openService()
		defer closeDb()

		recipe, ok := service.GetById(cmd.Context(), parseId(args[0]))
		if !ok {
			fmt.Fprintln(os.Stderr, "recipe not found")
			os.Exit(1)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendRow(table.Row{"Id", recipe.ID})
		t.AppendRow(table.Row{"Name", recipe.Name})
		t.AppendRow(table.Row{"Url", recipe.Url})
		t.AppendRow(table.Row{"Author", recipe.Author.String})
		t.AppendRow(table.Row{"Yield", recipe.Recipeyield.String})
		t.AppendRow(table.Row{"Prep Time", isodur.HumanReadable(recipe.Preptimeiso.String)})
		t.AppendRow(table.Row{"Cook Time", isodur.HumanReadable(recipe.Cooktimeiso.String)})
		t.AppendRow(table.Row{"Total Time", totalTime(recipe.Recipe)})
		t.AppendRow(table.Row{"Rating", rating(recipe.Recipe)})
		t.AppendRow(table.Row{"Tags", fmt.Sprintf("%v", recipe.Tags)})
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}

var listCmd = &cobra.Command{
	Use:   "list [--limit <n>]",
	Short: "Lists recipes ordered by name.",
	Run: func(cmd *cobra.Command, args []string) {
		service, closeDb := openService()
		defer closeDb()
		renderRecipes(service.List(cmd.Context(), *queryLimit, 0))
	},
}

var searchNameCmd = &cobra.Command{
	Use:   "search-name <text>",
	Short: "Searches recipe names for a substring.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, closeDb := openService()
		defer closeDb()
		renderRecipes(service.SearchByName(cmd.Context(), args[0], *queryLimit))
	},
}

var searchTagCmd = &cobra.Command{
	Use:   "search-tag <tag>",
	Short: "Lists recipes carrying an exact tag.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, closeDb := openService()
		defer closeDb()
		renderRecipes(service.SearchByTag(cmd.Context(), args[0], *queryLimit))
	},
}

var searchTimeCmd = &cobra.Command{
	Use:   "search-time <comparison> <minutes>",
	Short: "Filters recipes by total time, e.g. search-time '<=' 45.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		comparison, err := recipes.ParseComparison(args[0])
		if err != nil {
			serviceutil.Fatal("invalid comparison", err)
		}
		minutes, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			serviceutil.Fatal("minutes must be numeric", err)
		}

		service, closeDb := openService()
		defer closeDb()
		renderRecipes(service.SearchByTotalTime(cmd.Context(), comparison, minutes, *queryLimit))
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <text>",
	Short: "Ranks recipes by name similarity, for misremembered names.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, closeDb := openService()
		defer closeDb()

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Id", "Name", "Similarity"})
		for _, s := range service.Suggest(cmd.Context(), args[0], *queryLimit) {
			t.AppendRow(table.Row{s.Recipe.ID, s.Recipe.Name, fmt.Sprintf("%.2f", s.Similarity)})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Deletes a recipe and its tag associations.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, closeDb := openService()
		defer closeDb()

		if !service.Delete(cmd.Context(), parseId(args[0])) {
			fmt.Fprintln(os.Stderr, "recipe not found")
			os.Exit(1)
		}
		fmt.Println("deleted")
	},
}
