package components

import (
	"strings"

	"github.com/Rorical/DictPanel/internal/i18n"
	"github.com/Rorical/DictPanel/internal/models"
	"github.com/Rorical/DictPanel/ui/styles"
)

// RenderUploadErrors lists upload errors under a heading that agrees with
// their count. It is empty when there is nothing to show.
func RenderUploadErrors(messages []string, loc *i18n.Localizer) string {
	if len(messages) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(styles.AlertStyle().Render(loc.N("upload.errors.heading", len(messages))))
	for _, msg := range messages {
		b.WriteString("\n" + styles.ListItemStyle().Render("• "+msg))
	}
	return b.String()
}

func RenderDownloadError(message string) string {
	if message == "" {
		return ""
	}
	return styles.AlertStyle().Render(Glyph(models.IconWarning) + " " + message)
}

// RenderToasts stacks notifications, oldest first.
func RenderToasts(toasts []models.Toast) string {
	lines := make([]string, 0, len(toasts))
	for _, t := range toasts {
		glyph := styles.IconStyle(string(t.Icon)).Render(Glyph(t.Icon))
		lines = append(lines, styles.ToastStyle().Render(glyph+" "+t.Message))
	}
	return strings.Join(lines, "\n")
}

func RenderConfirmation(req models.ConfirmationRequest, cancel string) string {
	body := styles.TitleStyle().Render(req.Title) + "\n" +
		req.Message + "\n\n" +
		"[y] " + req.ConfirmButton + "   [n] " + cancel
	return styles.DialogStyle().Render(body)
}
