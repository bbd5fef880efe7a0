package models

// ConfirmationRequest is a blocking yes/no question shown before a
// destructive operation.
type ConfirmationRequest struct {
	Title         string
	Message       string
	ConfirmButton string
}

// Mode is the panel's input mode
type Mode int

const (
	ModeBrowse Mode = iota
	ModeSelectFile
	ModeConfirm
)

// Focus is the button that receives "enter"
type Focus int

const (
	FocusDownload Focus = iota
	FocusUpload
)

// Panel represents the settings panel UI state - only local UI concerns
type Panel struct {
	Mode                Mode                 // Current input mode
	Focus               Focus                // Focused button
	FileInput           string               // Path typed into the file input
	Download            DownloadTrigger      // Export button state
	Upload              UploadForm           // Upload form state
	UploadAttempt       string               // ID of the in-flight upload, if any
	PendingConfirmation *ConfirmationRequest // Confirmation dialog, if open
	Toasts              []Toast              // Visible notifications, oldest first
	Spinner             int                  // Animation frame for busy glyphs
	Width               int                  // Terminal width
	Height              int                  // Terminal height
}

// NewPanel returns the initial panel state.
func NewPanel() Panel {
	return Panel{
		Mode:   ModeBrowse,
		Focus:  FocusDownload,
		Upload: NewUploadForm(),
	}
}

// ResetFileInput clears the file input so the same file can be picked again.
func (p *Panel) ResetFileInput() {
	p.FileInput = ""
}

// AddToast appends a toast, keeping at most max visible.
func (p *Panel) AddToast(t Toast, max int) {
	p.Toasts = append(p.Toasts, t)
	if max > 0 && len(p.Toasts) > max {
		p.Toasts = p.Toasts[len(p.Toasts)-max:]
	}
}

// RemoveToast drops the toast with the given id.
func (p *Panel) RemoveToast(id string) {
	for i, t := range p.Toasts {
		if t.ID == id {
			p.Toasts = append(p.Toasts[:i], p.Toasts[i+1:]...)
			return
		}
	}
}
