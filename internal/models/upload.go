package models

// UploadForm holds the upload status and the error list shown under the form.
// The list is replaced wholesale on every attempt.
type UploadForm struct {
	Status        UploadStatus
	ErrorMessages []string
}

// NewUploadForm returns an idle form.
func NewUploadForm() UploadForm {
	return UploadForm{Status: UploadIdle}
}

// Begin starts a network attempt.
func (f *UploadForm) Begin() {
	f.Status = UploadPending
	f.ErrorMessages = nil
}

// Succeed records an accepted upload.
func (f *UploadForm) Succeed() {
	f.Status = UploadFulfilled
	f.ErrorMessages = nil
}

// Fail records a failed attempt with the messages to display.
func (f *UploadForm) Fail(messages []string) {
	f.Status = UploadRejected
	f.ErrorMessages = append([]string(nil), messages...)
}

// Reject records a local rejection that never reached the network.
func (f *UploadForm) Reject(message string) {
	f.Status = UploadRejected
	f.ErrorMessages = []string{message}
}

// Disabled reports whether the submit control accepts input.
func (f *UploadForm) Disabled() bool {
	return f.Status.IsActive()
}
