package commands

import (
	"os"
	"sort"

	"recipebox-backend/internal/scrapers/nytcooking"
	"recipebox-backend/internal/snapshot"
	"recipebox-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var reportRecipes *string

func init() {
	reportRecipes = reportCmd.Flags().String("recipes", "nyt_recipe_box_recipes.json", "The recipes snapshot to report on.")
	rootCmd.AddCommand(reportCmd)
}

func uniqueValues(records []nytcooking.Recipe, field func(nytcooking.Recipe) []string) []string {
	seen := map[string]int{}
	for _, record := range records {
		for _, value := range field(record) {
			if value == "" {
				continue
			}
			seen[value]++
		}
	}

	values := make([]string, 0, len(seen))
	for value := range seen {
		values = append(values, value)
	}
	sort.Slice(values, func(i, j int) bool {
		if seen[values[i]] != seen[values[j]] {
			return seen[values[i]] > seen[values[j]]
		}
		return values[i] < values[j]
	})
	return values
}

func renderUnique(title string, records []nytcooking.Recipe, field func(nytcooking.Recipe) []string) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{title})
	for _, value := range uniqueValues(records, field) {
		t.AppendRow(table.Row{value})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// The report exists to sanity-check a fresh snapshot before ingesting it:
// surprising duration strings or junk tags show up here first.
var reportCmd = &cobra.Command{
	Use:   "report [--recipes <path/to/recipes.json>]",
	Short: "Prints the distinct durations and tags found in a recipes snapshot.",
	Run: func(cmd *cobra.Command, args []string) {
		records, err := snapshot.Read[[]nytcooking.Recipe](*reportRecipes)
		if err != nil {
			serviceutil.Fatal("failed to read recipes snapshot", err)
		}

		renderUnique("Prep Time", records, func(r nytcooking.Recipe) []string {
			return []string{r.PrepTime}
		})
		renderUnique("Cook Time", records, func(r nytcooking.Recipe) []string {
			return []string{r.CookTime}
		})
		renderUnique("Total Time", records, func(r nytcooking.Recipe) []string {
			return []string{r.TotalTime}
		})
		renderUnique("Tags", records, func(r nytcooking.Recipe) []string {
			return r.Tags
		})
	},
}
