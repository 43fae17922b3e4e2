package commands

import (
	"log/slog"
	"time"

	"recipebox-backend/internal/scrapers/nytcooking"
	"recipebox-backend/internal/snapshot"
	"recipebox-backend/lib/serviceutil"

	"github.com/spf13/cobra"
)

var (
	fetchLinks *string
	fetchOut   *string
)

func init() {
	fetchLinks = fetchCmd.Flags().String("links", "nyt_recipe_box_links.json", "The links snapshot to fetch recipe pages for.")
	fetchOut = fetchCmd.Flags().String("out", "nyt_recipe_box_recipes.json", "The file to write extracted recipe records to.")
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch [--links <path/to/links.json>] [--out <path/to/recipes.json>]",
	Short: "Fetches each collected link and extracts its recipe record.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		links, err := snapshot.Read[[]string](*fetchLinks)
		if err != nil {
			serviceutil.Fatal("failed to read links snapshot", err)
		}

		client := nytcooking.NewClient(nytcooking.ClientOptions{
			UserId: cfg.UserId,
			Cookie: cfg.Cookie,
		})

		t1 := time.Now()
		fetched := client.FetchRecipes(cmd.Context(), links)
		t2 := time.Now()

		var records []nytcooking.Recipe
		for _, recipe := range fetched {
			if recipe == nil {
				continue
			}
			records = append(records, *recipe)
		}

		err = snapshot.Write(*fetchOut, records)
		if err != nil {
			serviceutil.Fatal("failed to write recipes snapshot", err)
		}
		slog.Info(
			"fetched recipes",
			"requested", len(links),
			"extracted", len(records),
			"failed", len(links)-len(records),
			"out", *fetchOut,
			"seconds", t2.Sub(t1).Seconds(),
		)
	},
}
