package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rorical/DictPanel/internal/app"
	"github.com/Rorical/DictPanel/internal/core"
	"github.com/Rorical/DictPanel/internal/models"
	"github.com/Rorical/DictPanel/ui/components"
)

var uploadYes bool

var uploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Replace the translation dictionary with a CSV file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		printer := newToastPrinter(stderr)
		application, err := app.NewApplication(mustLoadConfig(), app.WithNotifier(printer))
		if err != nil {
			log.Fatalf("Failed to create application: %v", err)
		}
		defer application.Stop()
		loc := application.Localizer()

		file, err := models.StatFile(args[0])
		if err != nil {
			log.Fatalf("%s: %v", loc.T("upload.unreadable", args[0]), err)
		}

		indicator := printer.busyLine(loc.T("upload.pending"), core.IndicatorDelay)
		confirmator := confirmingIndicator{Confirmator: confirmatorFor(uploadYes), indicator: indicator}
		form := models.NewUploadForm()
		err = application.Service().ConfirmAndSubmit(cmd.Context(), confirmator, &form, file)
		indicator.Disarm()
		indicator.Stop()

		switch {
		case errors.Is(err, core.ErrUploadCancelled):
			fmt.Println(loc.T("upload.cancelled"))
		case err != nil:
			fmt.Fprintln(stderr, components.RenderUploadErrors(form.ErrorMessages, loc))
			application.Stop()
			os.Exit(1)
		}
	},
}

func init() {
	uploadCmd.Flags().BoolVarP(&uploadYes, "yes", "y", false, "replace the existing dictionary without asking")
	rootCmd.AddCommand(uploadCmd)
}
