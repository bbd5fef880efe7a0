package endpoints

import (
	"errors"
	"net/url"
	"strings"
	"sync"
)

const (
	UploadDictionaryPath = "/api/custom-content-translation/upload-dictionary"
	CSVPath              = "/api/custom-content-translation/csv"
	dictionaryPathPrefix = "/api/custom-content-translation/dictionary/"
)

var (
	ErrEndpointFixed = errors.New("dictionary endpoint already fixed by another embedding token")
	ErrEmptyToken    = errors.New("embedding token is empty")
)

// Endpoints holds the content-translation URLs. The dictionary URL stays unset
// until an embedding token is supplied and is fixed from then on.
type Endpoints struct {
	mu               sync.RWMutex
	getDictionary    string
	uploadDictionary string
	getCSV           string
}

// New returns the default endpoint set.
func New() *Endpoints {
	return &Endpoints{
		uploadDictionary: UploadDictionaryPath,
		getCSV:           CSVPath,
	}
}

// SetStaticEmbeddingToken fixes the dictionary URL for static embedding.
func (e *Endpoints) SetStaticEmbeddingToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}
	path := dictionaryPathPrefix + url.PathEscape(token)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.getDictionary != "" {
		if e.getDictionary == path {
			return nil
		}
		return ErrEndpointFixed
	}
	e.getDictionary = path
	return nil
}

// GetDictionary returns the dictionary URL and whether it has been set.
func (e *Endpoints) GetDictionary() (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.getDictionary, e.getDictionary != ""
}

func (e *Endpoints) UploadDictionary() string {
	return e.uploadDictionary
}

func (e *Endpoints) GetCSV() string {
	return e.getCSV
}
