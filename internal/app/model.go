package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/DictPanel/internal/dispatcher"
	"github.com/Rorical/DictPanel/internal/i18n"
	"github.com/Rorical/DictPanel/internal/models"
	"github.com/Rorical/DictPanel/internal/update"
	"github.com/Rorical/DictPanel/ui/components"
	"github.com/Rorical/DictPanel/ui/styles"
)

// PanelModel is the content-translation settings panel. Each instance owns
// its state.
type PanelModel struct {
	panel      models.Panel
	deps       update.Deps
	dispatcher *dispatcher.EventDispatcher
}

func NewPanelModel(disp *dispatcher.EventDispatcher, loc *i18n.Localizer) *PanelModel {
	return &PanelModel{
		panel: models.NewPanel(),
		deps: update.Deps{
			EventBus:  disp.GetEventBus(),
			Localizer: loc,
		},
		dispatcher: disp,
	}
}

func (m *PanelModel) Init() tea.Cmd {
	return tea.Batch(
		update.TickCmd(),
		m.dispatcher.ListenForCoreEvents(),
	)
}

func (m *PanelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(dispatcher.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.panel, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForCoreEvents())
	}
	return m, update.HandleUpdate(&m.panel, msg, m.deps)
}

func (m *PanelModel) View() string {
	loc := m.deps.Localizer
	p := m.panel
	var b strings.Builder

	b.WriteString(styles.TitleStyle().Render(loc.T("panel.title")) + "\n")
	b.WriteString(components.RenderDescription(loc, p.Width) + "\n\n")

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		components.RenderDownloadButton(p.Download, p.Focus == models.FocusDownload, p.Spinner, loc),
		" ",
		components.RenderUploadButton(p.Upload, p.Focus == models.FocusUpload, p.Spinner, loc),
	)
	b.WriteString(buttons + "\n")

	for _, block := range []string{
		components.RenderDownloadError(p.Download.ErrorMessage),
		components.RenderUploadErrors(p.Upload.ErrorMessages, loc),
	} {
		if block != "" {
			b.WriteString(block + "\n")
		}
	}

	switch p.Mode {
	case models.ModeSelectFile:
		b.WriteString("\n" + components.RenderFileInput(loc.T("panel.file_prompt"), p.FileInput, p.Width) + "\n")
	case models.ModeConfirm:
		if p.PendingConfirmation != nil {
			b.WriteString("\n" + components.RenderConfirmation(*p.PendingConfirmation, loc.T("confirm.cancel")) + "\n")
		}
	}

	if toasts := components.RenderToasts(p.Toasts); toasts != "" {
		b.WriteString("\n" + toasts + "\n")
	}
	b.WriteString("\n" + components.RenderStatus(loc.T("panel.help"), p.Width))

	return b.String()
}
