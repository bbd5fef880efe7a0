package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/Rorical/DictPanel/internal/app"
	"github.com/Rorical/DictPanel/internal/core"
	"github.com/Rorical/DictPanel/ui/styles"
)

var downloadDir string

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download the translation dictionary as CSV",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printer := newToastPrinter(stderr)
		opts := []app.Option{app.WithNotifier(printer)}
		if downloadDir != "" {
			opts = append(opts, app.WithDownloadDir(downloadDir))
		}
		application, err := app.NewApplication(mustLoadConfig(), opts...)
		if err != nil {
			log.Fatalf("Failed to create application: %v", err)
		}
		defer application.Stop()
		loc := application.Localizer()

		indicator := printer.busyLine(loc.T("download.in_progress"), core.IndicatorDelay)
		indicator.Arm()
		outcome := application.Service().Download(cmd.Context())
		indicator.Disarm()
		indicator.Stop()

		if outcome.Err != nil {
			log.Fatalf("Download failed: %v", outcome.Err)
		}
		fmt.Println(styles.LinkStyle().Render(loc.T("download.saved", outcome.SavedPath)))
	},
}

func init() {
	downloadCmd.Flags().StringVarP(&downloadDir, "dir", "d", "", "directory to save into (defaults to the profile's download directory)")
	rootCmd.AddCommand(downloadCmd)
}
