package commands

import (
	"log/slog"
	"time"

	"recipebox-backend/internal/scrapers/nytcooking"
	"recipebox-backend/internal/snapshot"
	"recipebox-backend/lib/serviceutil"

	"github.com/spf13/cobra"
)

var collectOut *string

func init() {
	collectOut = collectCmd.Flags().String("out", "nyt_recipe_box_links.json", "The file to write collected recipe links to.")
	rootCmd.AddCommand(collectCmd)
}

var collectCmd = &cobra.Command{
	Use:   "collect [--out <path/to/links.json>]",
	Short: "Collects every recipe link saved in the configured recipe box.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		client := nytcooking.NewClient(nytcooking.ClientOptions{
			UserId: cfg.UserId,
			Cookie: cfg.Cookie,
		})

		t1 := time.Now()
		links, err := client.CollectLinks(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to collect recipe links", err)
		}
		t2 := time.Now()

		err = snapshot.Write(*collectOut, links)
		if err != nil {
			serviceutil.Fatal("failed to write links snapshot", err)
		}
		slog.Info("collected recipe links", "count", len(links), "out", *collectOut, "seconds", t2.Sub(t1).Seconds())
	},
}
