package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/Rorical/DictPanel/internal/i18n"
	"github.com/Rorical/DictPanel/internal/models"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestUploadButtonLabel(t *testing.T) {
	loc := i18n.MustLoadEmbedded().Localizer("en-US")

	tests := []struct {
		status models.UploadStatus
		icon   models.ToastIcon
		label  string
	}{
		{models.UploadIdle, models.IconUpload, "Upload translation dictionary"},
		{models.UploadPending, "", "Uploading dictionary…"},
		{models.UploadFulfilled, models.IconCheck, "Dictionary uploaded"},
		{models.UploadRejected, models.IconWarning, "Could not upload dictionary"},
		{models.UploadStatus("bogus"), models.IconUpload, "Upload translation dictionary"},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			icon, label := UploadButtonLabel(tt.status, loc)
			assert.Equal(t, tt.icon, icon)
			assert.Equal(t, tt.label, label)
		})
	}
}

func TestRenderUploadErrors(t *testing.T) {
	loc := i18n.MustLoadEmbedded().Localizer("en-US")

	assert.Empty(t, RenderUploadErrors(nil, loc))

	one := RenderUploadErrors([]string{"bad row"}, loc)
	assert.True(t, strings.HasPrefix(one, "We couldn't upload the file due to this error:"))
	assert.Contains(t, one, "• bad row")

	two := RenderUploadErrors([]string{"a", "b"}, loc)
	assert.True(t, strings.HasPrefix(two, "We couldn't upload the file due to these errors:"))
	assert.Equal(t, 3, len(strings.Split(two, "\n")))
}

func TestRenderDownloadButton(t *testing.T) {
	loc := i18n.MustLoadEmbedded().Localizer("en-US")

	var trigger models.DownloadTrigger
	assert.Contains(t, RenderDownloadButton(trigger, false, 0, loc), "Download translation dictionary")

	trigger.Start()
	assert.NotContains(t, RenderDownloadButton(trigger, false, 0, loc), "Downloading")

	trigger.IndicatorDue(trigger.Attempt())
	assert.Contains(t, RenderDownloadButton(trigger, false, 0, loc), SpinnerFrame(0)+" Downloading…")
}

func TestRenderDescriptionLinksLocales(t *testing.T) {
	loc := i18n.MustLoadEmbedded().Localizer("en-US")
	out := RenderDescription(loc, 0)
	assert.Contains(t, out, "supported locales ("+SupportedLocalesURL+")")
	assert.Contains(t, out, "• Locale Code")
}

func TestRenderDownloadError(t *testing.T) {
	assert.Empty(t, RenderDownloadError(""))
	assert.Equal(t, "⚠ An error occurred", RenderDownloadError("An error occurred"))
}
