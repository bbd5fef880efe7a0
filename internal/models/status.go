package models

// UploadStatus is the state of the upload form's submit control.
type UploadStatus string

const (
	// UploadIdle means no upload has been attempted yet
	UploadIdle UploadStatus = "idle"

	// UploadPending means an upload request is in flight
	UploadPending UploadStatus = "pending"

	// UploadFulfilled means the last upload was accepted by the server
	UploadFulfilled UploadStatus = "fulfilled"

	// UploadRejected means the last upload failed locally or on the server
	UploadRejected UploadStatus = "rejected"
)

// String returns the string representation of UploadStatus
func (s UploadStatus) String() string {
	return string(s)
}

// IsActive reports whether an upload is in flight.
func (s UploadStatus) IsActive() bool {
	return s == UploadPending
}
