package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoDictionaryEndpoint is returned by FetchDictionary before an embedding
// token has been set.
var ErrNoDictionaryEndpoint = errors.New("dictionary endpoint requires an embedding token")

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %s", e.Method, e.URL, e.Status)
}

// UploadErrorKind tags the two shapes an upload failure can take.
type UploadErrorKind int

const (
	// GenericMessage carries a single message, possibly empty.
	GenericMessage UploadErrorKind = iota
	// FieldErrors carries the server's list of field-level errors.
	FieldErrors
)

// UploadError is a rejected dictionary upload.
type UploadError struct {
	Kind       UploadErrorKind
	StatusCode int
	Message    string
	Errors     []string
}

func (e *UploadError) Error() string {
	switch e.Kind {
	case FieldErrors:
		return "upload rejected: " + strings.Join(e.Errors, "; ")
	default:
		if e.Message == "" {
			return fmt.Sprintf("upload rejected (status %d)", e.StatusCode)
		}
		return "upload rejected: " + e.Message
	}
}

// Messages returns the human-readable messages carried by the error, or nil
// if the server gave none.
func (e *UploadError) Messages() []string {
	switch e.Kind {
	case FieldErrors:
		return append([]string(nil), e.Errors...)
	default:
		if e.Message == "" {
			return nil
		}
		return []string{e.Message}
	}
}

// uploadResponse is the JSON body returned by the upload endpoint.
type uploadResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  []json.RawMessage `json:"errors"`
}

func (r *uploadResponse) toError(statusCode int) *UploadError {
	if len(r.Errors) > 0 {
		messages := make([]string, 0, len(r.Errors))
		for _, raw := range r.Errors {
			var text string
			if err := json.Unmarshal(raw, &text); err != nil {
				// non-string entries are shown as the server sent them
				text = string(raw)
			}
			messages = append(messages, text)
		}
		return &UploadError{Kind: FieldErrors, StatusCode: statusCode, Errors: messages}
	}
	return &UploadError{Kind: GenericMessage, StatusCode: statusCode, Message: r.Message}
}
