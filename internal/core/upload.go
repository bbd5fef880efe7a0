package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rorical/DictPanel/internal/i18n"
	"github.com/Rorical/DictPanel/internal/models"
)

const (
	// MaxDictionarySizeBytes must match the server's
	// max-content-translation-dictionary-size (1.5 MiB).
	MaxDictionarySizeBytes int64 = 3 * 1024 * 1024 / 2

	// ApproxMaxDictionarySizeMB is the limit as shown to users. 1.5 MiB is
	// about 1.57 MB; 1.5 is close enough for a message.
	ApproxMaxDictionarySizeMB = 1.5
)

var (
	ErrFileTooLarge    = errors.New("dictionary file is too large")
	ErrUploadCancelled = errors.New("upload cancelled")
)

// SizeError reports a file over the upload limit.
type SizeError struct {
	Name  string
	Size  int64
	Limit int64
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s is %d bytes, limit is %d", e.Name, e.Size, e.Limit)
}

func (e *SizeError) Is(target error) bool {
	return target == ErrFileTooLarge
}

// Confirmator asks the user to approve an operation before it runs
type Confirmator interface {
	RequestConfirmation(req models.ConfirmationRequest) bool
}

// ValidateFile checks a file before any network call.
func ValidateFile(f models.File) error {
	if f.Size > MaxDictionarySizeBytes {
		return &SizeError{Name: f.Name, Size: f.Size, Limit: MaxDictionarySizeBytes}
	}
	return nil
}

// UploadConfirmation is the dialog shown before a dictionary is replaced.
func UploadConfirmation(loc *i18n.Localizer) models.ConfirmationRequest {
	return models.ConfirmationRequest{
		Title:         loc.T("confirm.title"),
		Message:       loc.T("confirm.message"),
		ConfirmButton: loc.T("confirm.button"),
	}
}

// TooLargeMessage is the message shown for a file over the limit.
func TooLargeMessage(loc *i18n.Localizer) string {
	return loc.T("upload.too_large", ApproxMaxDictionarySizeMB)
}

// SubmitFile validates f and uploads it, recording the outcome on form.
// Oversized files are rejected without a network call.
func (s *DictionaryService) SubmitFile(ctx context.Context, form *models.UploadForm, f models.File) error {
	if err := ValidateFile(f); err != nil {
		form.Reject(TooLargeMessage(s.loc))
		return err
	}

	form.Begin()
	if messages, err := s.Upload(ctx, f); err != nil {
		form.Fail(messages)
		return err
	}
	form.Succeed()
	return nil
}

// ConfirmAndSubmit asks for confirmation and then runs SubmitFile. A declined
// confirmation leaves form untouched and returns ErrUploadCancelled.
func (s *DictionaryService) ConfirmAndSubmit(ctx context.Context, confirmator Confirmator, form *models.UploadForm, f models.File) error {
	if !confirmator.RequestConfirmation(UploadConfirmation(s.loc)) {
		return ErrUploadCancelled
	}
	return s.SubmitFile(ctx, form, f)
}
