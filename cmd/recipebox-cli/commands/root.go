package commands

import (
	"context"
	"fmt"
	"os"

	"recipebox-backend/lib/configuration"
	"recipebox-backend/lib/configutil"
	"recipebox-backend/lib/serviceutil"

	"github.com/spf13/cobra"
)

type Config struct {
	// numeric account id from the recipe box url
	UserId string `json:"user_id"`
	// full cookie header of a logged-in browser session
	Cookie   string               `json:"cookie"`
	Database configuration.Sqlite `json:"database"`
}

func readConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	return cfg
}

var rootCmd = &cobra.Command{
	Use:   "recipebox-cli",
	Short: "recipebox-cli collects, extracts and queries saved cooking recipes.",
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
