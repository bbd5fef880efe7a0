package models

// ToastIcon names the glyph shown next to a toast
type ToastIcon string

const (
	IconDownload ToastIcon = "download"
	IconCheck    ToastIcon = "check"
	IconWarning  ToastIcon = "warning"
	IconUpload   ToastIcon = "upload"
)

// Toast is a transient notification
type Toast struct {
	ID      string
	Message string
	Icon    ToastIcon
}
