package core

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"

	"github.com/Rorical/DictPanel/internal/api"
	"github.com/Rorical/DictPanel/internal/eventbus"
	"github.com/Rorical/DictPanel/internal/i18n"
	"github.com/Rorical/DictPanel/internal/models"
	"github.com/Rorical/DictPanel/internal/savefile"
)

// DownloadFilename is the name the export is saved under.
const DownloadFilename = "metabase-content-translations.csv"

// DictionaryClient is the part of the API client the service needs.
type DictionaryClient interface {
	DownloadCSV(ctx context.Context) ([]byte, error)
	UploadDictionary(ctx context.Context, filename string, content io.Reader) error
}

var _ DictionaryClient = (*api.Client)(nil)

// DownloadOutcome is the result of one download attempt.
type DownloadOutcome struct {
	SavedPath    string
	ErrorMessage string // Empty on success
	Err          error
}

// DictionaryService runs dictionary downloads and uploads. The CLI calls it
// directly; the panel talks to it over the event bus so network calls never
// block the UI loop.
type DictionaryService struct {
	client   DictionaryClient
	saver    savefile.Saver
	loc      *i18n.Localizer
	notifier Notifier
	eventBus *eventbus.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// ServiceOption configures a DictionaryService.
type ServiceOption func(*DictionaryService)

// WithNotifier sets where toasts go.
func WithNotifier(n Notifier) ServiceOption {
	return func(s *DictionaryService) {
		s.notifier = n
	}
}

// WithEventBus connects the service to the panel. Toasts go over the bus
// unless a notifier is also given.
func WithEventBus(eb *eventbus.EventBus) ServiceOption {
	return func(s *DictionaryService) {
		s.eventBus = eb
	}
}

// NewDictionaryService creates the service.
func NewDictionaryService(client DictionaryClient, saver savefile.Saver, loc *i18n.Localizer, opts ...ServiceOption) *DictionaryService {
	ctx, cancel := context.WithCancel(context.Background())
	s := &DictionaryService{
		client: client,
		saver:  saver,
		loc:    loc,
		ctx:    ctx,
		cancel: cancel,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier == nil {
		if s.eventBus != nil {
			s.notifier = busNotifier{eventBus: s.eventBus}
		} else {
			s.notifier = NotifierFunc(func(models.Toast) {})
		}
	}
	return s
}

// Localizer returns the localizer used for messages and toasts.
func (s *DictionaryService) Localizer() *i18n.Localizer {
	return s.loc
}

// Download fetches the export and hands it to the saver.
func (s *DictionaryService) Download(ctx context.Context) DownloadOutcome {
	data, err := s.client.DownloadCSV(ctx)
	if err != nil {
		log.Printf("download dictionary: %v", err)
		msg := s.loc.T("download.error")
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) {
			msg = s.loc.T("download.failed")
		}
		s.notify(NewToast(msg, models.IconWarning))
		return DownloadOutcome{ErrorMessage: msg, Err: err}
	}

	path, err := s.saver.Save(DownloadFilename, data)
	if err != nil {
		log.Printf("save dictionary: %v", err)
		msg := s.loc.T("download.error")
		s.notify(NewToast(msg, models.IconWarning))
		return DownloadOutcome{ErrorMessage: msg, Err: err}
	}

	s.notify(NewToast(s.loc.T("download.done"), models.IconDownload))
	return DownloadOutcome{SavedPath: path}
}

// Upload posts f to the server. On failure it returns the messages to show
// under the form. It does not check the file size.
func (s *DictionaryService) Upload(ctx context.Context, f models.File) ([]string, error) {
	messages, err := s.upload(ctx, f)
	if err != nil {
		log.Printf("upload dictionary %s: %v", f.Name, err)
		s.notify(NewToast(s.loc.T("upload.rejected"), models.IconWarning))
		return messages, err
	}
	s.notify(NewToast(s.loc.T("upload.fulfilled"), models.IconCheck))
	return nil, nil
}

func (s *DictionaryService) upload(ctx context.Context, f models.File) ([]string, error) {
	content, err := f.Open()
	if err != nil {
		return []string{s.loc.T("upload.unreadable", f.Name)}, err
	}
	defer content.Close()

	if err := s.client.UploadDictionary(ctx, f.Name, content); err != nil {
		return s.uploadErrorMessages(err), err
	}
	return nil, nil
}

func (s *DictionaryService) uploadErrorMessages(err error) []string {
	var uploadErr *api.UploadError
	if errors.As(err, &uploadErr) {
		if messages := uploadErr.Messages(); len(messages) > 0 {
			return messages
		}
	}
	return []string{s.loc.T("upload.unknown_error")}
}

// Start runs the event loop in a goroutine
func (s *DictionaryService) Start() {
	if s.eventBus == nil {
		return
	}
	s.wg.Add(1)
	go s.eventLoop()
}

// Stop cancels in-flight requests and waits for their handlers. Results that
// arrive after Stop are dropped.
func (s *DictionaryService) Stop() {
	s.cancel()
	s.wg.Wait()
}

func (s *DictionaryService) eventLoop() {
	defer s.wg.Done()
	for {
		select {
		case <-s.ctx.Done():
			return
		case event, ok := <-s.eventBus.UIToCore():
			if !ok {
				return
			}
			s.handleUIEvent(event)
		}
	}
}

func (s *DictionaryService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.DownloadRequestEvent:
		s.goHandle(func() { s.handleDownload(e) })
	case eventbus.UploadRequestEvent:
		s.goHandle(func() { s.handleUpload(e) })
	}
}

// goHandle runs a request off the event loop so a slow upload does not hold
// up a download, and the other way round.
func (s *DictionaryService) goHandle(fn func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn()
	}()
}

func (s *DictionaryService) handleDownload(e eventbus.DownloadRequestEvent) {
	outcome := s.Download(s.ctx)
	s.pushToUI(eventbus.DownloadFinishedEvent{
		Attempt:      e.Attempt,
		SavedPath:    outcome.SavedPath,
		ErrorMessage: outcome.ErrorMessage,
	})
}

func (s *DictionaryService) handleUpload(e eventbus.UploadRequestEvent) {
	messages, _ := s.Upload(s.ctx, e.File)
	s.pushToUI(eventbus.UploadFinishedEvent{
		Attempt:       e.Attempt,
		ErrorMessages: messages,
	})
}

func (s *DictionaryService) notify(t models.Toast) {
	if s.ctx.Err() != nil {
		return
	}
	s.notifier.Notify(t)
}

func (s *DictionaryService) pushToUI(event eventbus.CoreEvent) {
	if s.ctx.Err() != nil {
		// the panel is gone
		return
	}
	if err := s.eventBus.SendToUI(event); err != nil {
		log.Printf("send result to panel: %v", err)
	}
}
