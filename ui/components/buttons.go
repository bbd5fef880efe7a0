package components

import (
	"github.com/Rorical/DictPanel/internal/i18n"
	"github.com/Rorical/DictPanel/internal/models"
	"github.com/Rorical/DictPanel/ui/styles"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// SpinnerFrame returns the busy glyph for an animation step.
func SpinnerFrame(step int) string {
	if step < 0 {
		step = -step
	}
	return spinnerFrames[step%len(spinnerFrames)]
}

// Glyph returns the terminal symbol for a toast or button icon.
func Glyph(icon models.ToastIcon) string {
	switch icon {
	case models.IconDownload:
		return "↓"
	case models.IconUpload:
		return "↑"
	case models.IconCheck:
		return "✓"
	case models.IconWarning:
		return "⚠"
	}
	return "•"
}

// UploadButtonLabel maps the upload status to the icon and text on the
// submit control. An empty icon means the spinner is shown instead.
func UploadButtonLabel(status models.UploadStatus, loc *i18n.Localizer) (icon models.ToastIcon, label string) {
	switch status {
	case models.UploadPending:
		return "", loc.T("upload.pending")
	case models.UploadFulfilled:
		return models.IconCheck, loc.T("upload.fulfilled")
	case models.UploadRejected:
		return models.IconWarning, loc.T("upload.rejected")
	default:
		return models.IconUpload, loc.T("upload.button")
	}
}

func RenderUploadButton(form models.UploadForm, focused bool, spinner int, loc *i18n.Localizer) string {
	icon, label := UploadButtonLabel(form.Status, loc)
	glyph := SpinnerFrame(spinner)
	if icon != "" {
		glyph = styles.IconStyle(string(icon)).Render(Glyph(icon))
	}
	return styles.ButtonStyle(focused, form.Disabled()).Render(glyph + " " + label)
}

func RenderDownloadButton(trigger models.DownloadTrigger, focused bool, spinner int, loc *i18n.Localizer) string {
	glyph := styles.IconStyle(string(models.IconDownload)).Render(Glyph(models.IconDownload))
	label := loc.T("download.button")
	if trigger.ShowIndicator {
		glyph = SpinnerFrame(spinner)
		label = loc.T("download.in_progress")
	}
	return styles.ButtonStyle(focused, trigger.InProgress).Render(glyph + " " + label)
}
