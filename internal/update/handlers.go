package update

import (
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/Rorical/DictPanel/internal/core"
	"github.com/Rorical/DictPanel/internal/dispatcher"
	"github.com/Rorical/DictPanel/internal/eventbus"
	"github.com/Rorical/DictPanel/internal/i18n"
	"github.com/Rorical/DictPanel/internal/models"
)

const (
	// MaxToasts is how many notifications are visible at once.
	MaxToasts = 3
	// ToastDuration is how long a notification stays up.
	ToastDuration = 4 * time.Second
)

// Deps is what the panel's update functions need besides its own state.
type Deps struct {
	EventBus     *eventbus.EventBus
	Localizer    *i18n.Localizer
	Stat         func(path string) (models.File, error)
	NewAttemptID func() string
}

func (d Deps) stat(path string) (models.File, error) {
	if d.Stat != nil {
		return d.Stat(path)
	}
	return models.StatFile(path)
}

func (d Deps) newAttemptID() string {
	if d.NewAttemptID != nil {
		return d.NewAttemptID()
	}
	return uuid.NewString()
}

// IndicatorDueMsg fires when the indicator delay of a download attempt has
// elapsed.
type IndicatorDueMsg struct {
	Attempt uint64
}

// ToastExpiredMsg removes a notification.
type ToastExpiredMsg struct {
	ID string
}

type TickMsg time.Time

func TickCmd() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// HandleKeyMsg routes a key press according to the panel mode.
func HandleKeyMsg(panel *models.Panel, keyMsg tea.KeyMsg, deps Deps) tea.Cmd {
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}
	switch panel.Mode {
	case models.ModeSelectFile:
		return handleFileInputKey(panel, keyMsg, deps)
	case models.ModeConfirm:
		return handleConfirmKey(panel, keyMsg, deps)
	}

	switch keyMsg.String() {
	case "q":
		return tea.Quit
	case "tab", "shift+tab", "left", "right":
		if panel.Focus == models.FocusDownload {
			panel.Focus = models.FocusUpload
		} else {
			panel.Focus = models.FocusDownload
		}
	case "enter", " ":
		if panel.Focus == models.FocusDownload {
			return StartDownload(panel, deps)
		}
		OpenFilePicker(panel)
	case "d":
		panel.Focus = models.FocusDownload
		return StartDownload(panel, deps)
	case "u":
		panel.Focus = models.FocusUpload
		OpenFilePicker(panel)
	}
	return nil
}

// StartDownload asks the core for the export. Nothing happens while another
// download is running. The returned command fires the delayed indicator.
func StartDownload(panel *models.Panel, deps Deps) tea.Cmd {
	attempt, ok := panel.Download.Start()
	if !ok {
		return nil
	}
	if err := deps.EventBus.SendToCore(eventbus.DownloadRequestEvent{Attempt: attempt}); err != nil {
		log.Printf("request download: %v", err)
		panel.Download.Finish(attempt, deps.Localizer.T("download.error"))
		return nil
	}
	return tea.Tick(core.IndicatorDelay, func(time.Time) tea.Msg {
		return IndicatorDueMsg{Attempt: attempt}
	})
}

// OpenFilePicker switches to the path input. The upload control is disabled
// while an upload is pending.
func OpenFilePicker(panel *models.Panel) {
	if panel.Upload.Disabled() {
		return
	}
	panel.ResetFileInput()
	panel.Mode = models.ModeSelectFile
}

func handleFileInputKey(panel *models.Panel, keyMsg tea.KeyMsg, deps Deps) tea.Cmd {
	switch keyMsg.Type {
	case tea.KeyEsc:
		closeFilePicker(panel)
	case tea.KeyEnter:
		if strings.TrimSpace(panel.FileInput) == "" {
			return nil
		}
		req := core.UploadConfirmation(deps.Localizer)
		panel.PendingConfirmation = &req
		panel.Mode = models.ModeConfirm
	case tea.KeyBackspace:
		if runes := []rune(panel.FileInput); len(runes) > 0 {
			panel.FileInput = string(runes[:len(runes)-1])
		}
	case tea.KeySpace:
		panel.FileInput += " "
	case tea.KeyRunes:
		panel.FileInput += string(keyMsg.Runes)
	}
	return nil
}

func handleConfirmKey(panel *models.Panel, keyMsg tea.KeyMsg, deps Deps) tea.Cmd {
	switch keyMsg.String() {
	case "y", "Y", "enter":
		path := strings.TrimSpace(panel.FileInput)
		closeFilePicker(panel)
		SubmitUpload(panel, path, deps)
	case "n", "N", "esc":
		closeFilePicker(panel)
	}
	return nil
}

func closeFilePicker(panel *models.Panel) {
	panel.PendingConfirmation = nil
	panel.Mode = models.ModeBrowse
	panel.ResetFileInput()
}

// SubmitUpload runs after the user confirmed. Files over the limit are
// rejected here and never reach the core.
func SubmitUpload(panel *models.Panel, path string, deps Deps) {
	file, err := deps.stat(path)
	if err != nil {
		log.Printf("stat dictionary %s: %v", path, err)
		panel.Upload.Reject(deps.Localizer.T("upload.unreadable", path))
		return
	}
	if err := core.ValidateFile(file); err != nil {
		panel.Upload.Reject(core.TooLargeMessage(deps.Localizer))
		return
	}

	attempt := deps.newAttemptID()
	panel.Upload.Begin()
	panel.UploadAttempt = attempt
	if err := deps.EventBus.SendToCore(eventbus.UploadRequestEvent{Attempt: attempt, File: file}); err != nil {
		log.Printf("request upload: %v", err)
		panel.Upload.Fail([]string{deps.Localizer.T("upload.unknown_error")})
		panel.UploadAttempt = ""
	}
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(panel *models.Panel, msg dispatcher.CoreEventMsg) tea.Cmd {
	switch event := msg.Event.(type) {
	case eventbus.DownloadFinishedEvent:
		panel.Download.Finish(event.Attempt, event.ErrorMessage)
	case eventbus.UploadFinishedEvent:
		if event.Attempt == "" || event.Attempt != panel.UploadAttempt {
			return nil
		}
		if len(event.ErrorMessages) > 0 {
			panel.Upload.Fail(event.ErrorMessages)
		} else {
			panel.Upload.Succeed()
		}
		panel.UploadAttempt = ""
	case eventbus.ToastEvent:
		panel.AddToast(event.Toast, MaxToasts)
		id := event.Toast.ID
		return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
			return ToastExpiredMsg{ID: id}
		})
	}
	return nil
}

func HandleWindowSizeMsg(panel *models.Panel, sizeMsg tea.WindowSizeMsg) {
	panel.Width = sizeMsg.Width
	panel.Height = sizeMsg.Height
}

func HandleTickMsg(panel *models.Panel) tea.Cmd {
	// Only animates busy glyphs
	if panel.Download.ShowIndicator || panel.Upload.Status.IsActive() {
		panel.Spinner++
	}
	return TickCmd()
}
