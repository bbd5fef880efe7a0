package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Rorical/DictPanel/internal/app"
	"github.com/Rorical/DictPanel/internal/config"
)

var rootCmd = &cobra.Command{
	Use:     "dictpanel",
	Version: app.Version,
	Short:   "Manage the content translation dictionary of a Metabase instance",
	Long: `DictPanel downloads and uploads the translation dictionary that Metabase uses
to translate embedded dashboards and questions. Run without a subcommand to
open the settings panel.`,
	Run: func(cmd *cobra.Command, args []string) {
		runPanel(mustLoadConfig())
	},
}

func runPanel(cfg *config.Config) {
	application, err := app.NewApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer application.Stop()

	if err := application.Start(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func Execute() {
	// interrupting a CLI transfer cancels the request
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(profileCmd)
}
