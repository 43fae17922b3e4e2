package commands

import (
	"log/slog"
	"time"

	"recipebox-backend/internal/scrapers/nytcooking"
	"recipebox-backend/internal/snapshot"
	"recipebox-backend/lib/serviceutil"
	"recipebox-backend/services/recipes"
	"recipebox-backend/services/recipes/db"

	"github.com/spf13/cobra"
)

var ingestRecipes *string

func init() {
	ingestRecipes = ingestCmd.Flags().String("recipes", "nyt_recipe_box_recipes.json", "The recipes snapshot to ingest.")
	rootCmd.AddCommand(ingestCmd)
}

var ingestCmd = &cobra.Command{
	Use:   "ingest [--recipes <path/to/recipes.json>]",
	Short: "Loads a recipes snapshot into the configured database.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		records, err := snapshot.Read[[]nytcooking.Recipe](*ingestRecipes)
		if err != nil {
			serviceutil.Fatal("failed to read recipes snapshot", err)
		}

		database, err := cfg.Database.OpenDB(db.Schema)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer database.Close()

		service := recipes.NewService(database)

		t1 := time.Now()
		summary := service.Ingest(cmd.Context(), records)
		t2 := time.Now()

		slog.Info(
			"ingested recipes",
			"records", len(records),
			"recipes", summary.RecipesIngested,
			"tags", summary.TagsCreated,
			"links", summary.RecipeTagsLinked,
			"errors", summary.Errors,
			"seconds", t2.Sub(t1).Seconds(),
		)
	},
}
