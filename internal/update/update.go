package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/DictPanel/internal/dispatcher"
	"github.com/Rorical/DictPanel/internal/models"
)

// HandleUpdate applies msg to the panel state.
func HandleUpdate(panel *models.Panel, msg tea.Msg, deps Deps) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(panel, msg, deps)
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(panel, msg)
		return nil
	case TickMsg:
		return HandleTickMsg(panel)
	case IndicatorDueMsg:
		panel.Download.IndicatorDue(msg.Attempt)
		return nil
	case ToastExpiredMsg:
		panel.RemoveToast(msg.ID)
		return nil
	case dispatcher.CoreEventMsg:
		return HandleCoreEvent(panel, msg)
	}
	return nil
}
