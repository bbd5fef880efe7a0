package core

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/DictPanel/internal/api"
	"github.com/Rorical/DictPanel/internal/endpoints"
	"github.com/Rorical/DictPanel/internal/eventbus"
	"github.com/Rorical/DictPanel/internal/i18n"
	"github.com/Rorical/DictPanel/internal/models"
)

type fakeSaver struct {
	mu    sync.Mutex
	calls int
	name  string
	data  []byte
	err   error
}

func (s *fakeSaver) Save(name string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.name = name
	s.data = data
	if s.err != nil {
		return "", s.err
	}
	return "/downloads/" + name, nil
}

type toastRecorder struct {
	mu     sync.Mutex
	toasts []models.Toast
}

func (r *toastRecorder) Notify(t models.Toast) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, t)
}

func (r *toastRecorder) all() []models.Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Toast(nil), r.toasts...)
}

type answer bool

func (a answer) RequestConfirmation(models.ConfirmationRequest) bool { return bool(a) }

// fakeServer serves the upload and export endpoints and counts requests.
type fakeServer struct {
	uploads      atomic.Int32
	downloads    atomic.Int32
	uploadStatus int
	uploadBody   string
	csvStatus    int
	csvDelay     time.Duration
}

func (f *fakeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case endpoints.UploadDictionaryPath:
		f.uploads.Add(1)
		w.WriteHeader(f.uploadStatus)
		_, _ = io.WriteString(w, f.uploadBody)
	case endpoints.CSVPath:
		f.downloads.Add(1)
		if f.csvDelay > 0 {
			time.Sleep(f.csvDelay)
		}
		w.WriteHeader(f.csvStatus)
		_, _ = io.WriteString(w, "Locale Code,String,Translation\n")
	default:
		http.NotFound(w, r)
	}
}

func newFakeServer(t *testing.T) (*fakeServer, *api.Client) {
	t.Helper()
	fs := &fakeServer{uploadStatus: http.StatusOK, uploadBody: `{"success":true}`, csvStatus: http.StatusOK}
	srv := httptest.NewServer(fs)
	t.Cleanup(srv.Close)
	return fs, api.NewClient(srv.URL, endpoints.New())
}

func newTestService(t *testing.T, client DictionaryClient, opts ...ServiceOption) (*DictionaryService, *fakeSaver, *toastRecorder) {
	t.Helper()
	saver := &fakeSaver{}
	toasts := &toastRecorder{}
	loc := i18n.MustLoadEmbedded().Localizer("en-US")
	opts = append([]ServiceOption{WithNotifier(toasts)}, opts...)
	return NewDictionaryService(client, saver, loc, opts...), saver, toasts
}

func writeFile(t *testing.T, size int) models.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dict.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", size)), 0o644))
	f, err := models.StatFile(path)
	require.NoError(t, err)
	return f
}

func TestMaxDictionarySize(t *testing.T) {
	assert.Equal(t, int64(1572864), MaxDictionarySizeBytes)
}

func TestValidateFile(t *testing.T) {
	assert.NoError(t, ValidateFile(models.File{Size: MaxDictionarySizeBytes}))

	err := ValidateFile(models.File{Name: "big.csv", Size: MaxDictionarySizeBytes + 1})
	assert.ErrorIs(t, err, ErrFileTooLarge)
	var sizeErr *SizeError
	require.True(t, errors.As(err, &sizeErr))
	assert.Equal(t, "big.csv", sizeErr.Name)
}

func TestSubmitFileRejectsOversizedLocally(t *testing.T) {
	fs, client := newFakeServer(t)
	svc, _, toasts := newTestService(t, client)
	form := models.NewUploadForm()

	err := svc.SubmitFile(context.Background(), &form, writeFile(t, int(MaxDictionarySizeBytes)+1))

	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.Equal(t, models.UploadRejected, form.Status)
	assert.Equal(t, []string{"The file is larger than 1.5 MB"}, form.ErrorMessages)
	assert.Zero(t, fs.uploads.Load())
	assert.Empty(t, toasts.all())
}

func TestConfirmAndSubmit(t *testing.T) {
	tests := []struct {
		name    string
		confirm bool
		posts   int32
	}{
		{"confirmed", true, 1},
		{"cancelled", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, client := newFakeServer(t)
			svc, _, _ := newTestService(t, client)
			form := models.NewUploadForm()

			err := svc.ConfirmAndSubmit(context.Background(), answer(tt.confirm), &form, writeFile(t, int(MaxDictionarySizeBytes)))

			assert.Equal(t, tt.posts, fs.uploads.Load())
			if tt.confirm {
				assert.NoError(t, err)
				assert.Equal(t, models.UploadFulfilled, form.Status)
			} else {
				assert.ErrorIs(t, err, ErrUploadCancelled)
				assert.Equal(t, models.UploadIdle, form.Status)
			}
		})
	}
}

func TestSubmitFileFieldErrors(t *testing.T) {
	fs, client := newFakeServer(t)
	fs.uploadBody = `{"success":false,"errors":["a","b"]}`
	svc, _, toasts := newTestService(t, client)
	form := models.NewUploadForm()

	err := svc.SubmitFile(context.Background(), &form, writeFile(t, 10))

	require.Error(t, err)
	assert.Equal(t, models.UploadRejected, form.Status)
	assert.Equal(t, []string{"a", "b"}, form.ErrorMessages)
	require.Len(t, toasts.all(), 1)
	assert.Equal(t, "Could not upload dictionary", toasts.all()[0].Message)
	assert.Equal(t, models.IconWarning, toasts.all()[0].Icon)
}

func TestSubmitFileSuccess(t *testing.T) {
	_, client := newFakeServer(t)
	svc, _, toasts := newTestService(t, client)
	form := models.NewUploadForm()
	form.Fail([]string{"old"})

	require.NoError(t, svc.SubmitFile(context.Background(), &form, writeFile(t, 10)))

	assert.Equal(t, models.UploadFulfilled, form.Status)
	assert.Empty(t, form.ErrorMessages)
	require.Len(t, toasts.all(), 1)
	assert.Equal(t, "Dictionary uploaded", toasts.all()[0].Message)
	assert.Equal(t, models.IconCheck, toasts.all()[0].Icon)
}

func TestSubmitFileFallbackMessages(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected []string
	}{
		{"server message", http.StatusOK, `{"success":false,"message":"Bad header row"}`, []string{"Bad header row"}},
		{"no detail", http.StatusOK, `{"success":false}`, []string{"Unknown error encountered"}},
		{"not json", http.StatusInternalServerError, `oops`, []string{"Unknown error encountered"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, client := newFakeServer(t)
			fs.uploadStatus = tt.status
			fs.uploadBody = tt.body
			svc, _, _ := newTestService(t, client)
			form := models.NewUploadForm()

			require.Error(t, svc.SubmitFile(context.Background(), &form, writeFile(t, 10)))
			assert.Equal(t, tt.expected, form.ErrorMessages)
		})
	}
}

func TestUploadUnreadableFile(t *testing.T) {
	fs, client := newFakeServer(t)
	svc, _, _ := newTestService(t, client)

	messages, err := svc.Upload(context.Background(), models.File{Name: "gone.csv", Path: filepath.Join(t.TempDir(), "gone.csv")})
	require.Error(t, err)
	assert.Equal(t, []string{"Could not read gone.csv"}, messages)
	assert.Zero(t, fs.uploads.Load())
}

func TestDownload(t *testing.T) {
	_, client := newFakeServer(t)
	svc, saver, toasts := newTestService(t, client)

	outcome := svc.Download(context.Background())

	require.NoError(t, outcome.Err)
	assert.Empty(t, outcome.ErrorMessage)
	assert.Equal(t, "/downloads/metabase-content-translations.csv", outcome.SavedPath)
	assert.Equal(t, DownloadFilename, saver.name)
	assert.Equal(t, "Locale Code,String,Translation\n", string(saver.data))
	require.Len(t, toasts.all(), 1)
	assert.Equal(t, "Dictionary downloaded", toasts.all()[0].Message)
	assert.Equal(t, models.IconDownload, toasts.all()[0].Icon)
}

func TestDownloadServerErrorDoesNotSave(t *testing.T) {
	fs, client := newFakeServer(t)
	fs.csvStatus = http.StatusInternalServerError
	svc, saver, toasts := newTestService(t, client)

	outcome := svc.Download(context.Background())

	assert.Equal(t, "Couldn't download this file", outcome.ErrorMessage)
	assert.Zero(t, saver.calls)
	require.Len(t, toasts.all(), 1)
	assert.Equal(t, models.IconWarning, toasts.all()[0].Icon)
}

func TestDownloadNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	svc, saver, _ := newTestService(t, api.NewClient(srv.URL, nil))

	outcome := svc.Download(context.Background())

	assert.Equal(t, "An error occurred", outcome.ErrorMessage)
	assert.Zero(t, saver.calls)
}

func TestDownloadSaveError(t *testing.T) {
	_, client := newFakeServer(t)
	svc, saver, _ := newTestService(t, client)
	saver.err = errors.New("disk full")

	outcome := svc.Download(context.Background())

	assert.Equal(t, "An error occurred", outcome.ErrorMessage)
	assert.ErrorContains(t, outcome.Err, "disk full")
}

func TestEventLoopRoundTrip(t *testing.T) {
	fs, client := newFakeServer(t)
	fs.uploadBody = `{"success":false,"errors":["a","b"]}`
	eb := eventbus.NewEventBus()
	defer eb.Close()

	saver := &fakeSaver{}
	loc := i18n.MustLoadEmbedded().Localizer("en-US")
	svc := NewDictionaryService(client, saver, loc, WithEventBus(eb))
	svc.Start()
	defer svc.Stop()

	require.NoError(t, eb.SendToCore(eventbus.UploadRequestEvent{Attempt: "u1", File: writeFile(t, 10)}))

	var finished *eventbus.UploadFinishedEvent
	var toast *eventbus.ToastEvent
	timeout := time.After(5 * time.Second)
	for finished == nil || toast == nil {
		select {
		case ev := <-eb.CoreToUI():
			switch e := ev.(type) {
			case eventbus.UploadFinishedEvent:
				finished = &e
			case eventbus.ToastEvent:
				toast = &e
			}
		case <-timeout:
			t.Fatal("timed out waiting for core events")
		}
	}
	assert.Equal(t, "u1", finished.Attempt)
	assert.Equal(t, []string{"a", "b"}, finished.ErrorMessages)
	assert.Equal(t, "Could not upload dictionary", toast.Toast.Message)
	assert.Equal(t, int32(1), fs.uploads.Load())
}

func TestStopDropsLateResults(t *testing.T) {
	fs, client := newFakeServer(t)
	fs.csvDelay = 200 * time.Millisecond
	eb := eventbus.NewEventBus()
	defer eb.Close()

	svc, saver, _ := newTestService(t, client, WithEventBus(eb))
	svc.Start()
	require.NoError(t, eb.SendToCore(eventbus.DownloadRequestEvent{Attempt: 1}))

	// wait until the request reached the server, then tear down
	require.Eventually(t, func() bool { return fs.downloads.Load() == 1 }, 5*time.Second, 5*time.Millisecond)
	svc.Stop()

	select {
	case ev := <-eb.CoreToUI():
		t.Fatalf("unexpected event after stop: %#v", ev)
	default:
	}
	assert.Zero(t, saver.calls)
}
