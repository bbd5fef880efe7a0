package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/Rorical/DictPanel/internal/endpoints"
)

const (
	// SessionHeader carries the admin session token.
	SessionHeader = "X-Metabase-Session"

	defaultUserAgent = "DictPanel/1.0"
	defaultTimeout   = 30 * time.Second

	// uploadFieldName is the multipart field the server reads the file from
	uploadFieldName = "file"
)

// quoteEscaper escapes header parameter values the way mime/multipart does
// for CreateFormFile.
var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Client talks to the content-translation endpoints of one server.
type Client struct {
	baseURL      string
	endpoints    *endpoints.Endpoints
	httpClient   *http.Client
	sessionToken string
	userAgent    string
}

// Option configures a Client.
type Option func(*Client)

// WithSessionToken sends the token in the session header on every request.
func WithSessionToken(token string) Option {
	return func(c *Client) {
		c.sessionToken = token
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithTimeout sets the timeout of the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient = &http.Client{Timeout: d}
		}
	}
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string, eps *endpoints.Endpoints, opts ...Option) *Client {
	if eps == nil {
		eps = endpoints.New()
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		endpoints:  eps,
		httpClient: &http.Client{Timeout: defaultTimeout},
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoints returns the endpoint set the client resolves paths against.
func (c *Client) Endpoints() *endpoints.Endpoints {
	return c.endpoints
}

// DownloadCSV fetches the dictionary export.
func (c *Client) DownloadCSV(ctx context.Context) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.endpoints.GetCSV(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download dictionary: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(req, resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	return body, nil
}

// UploadDictionary posts the file as multipart form data. Any rejection is
// returned as *UploadError.
func (c *Client) UploadDictionary(ctx context.Context, filename string, content io.Reader) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(uploadFieldName), quoteEscaper.Replace(filename)))
	header.Set("Content-Type", "text/csv")
	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("create multipart part: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.endpoints.UploadDictionary(), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload dictionary: %w", err)
	}
	defer resp.Body.Close()

	var result uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		// an unparseable body is a rejection without a server message
		return &UploadError{Kind: GenericMessage, StatusCode: resp.StatusCode}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !result.Success {
		return result.toError(resp.StatusCode)
	}
	return nil
}

// FetchDictionary fetches the dictionary served to embedded viewers. It only
// works once an embedding token has been set on the endpoints.
func (c *Client) FetchDictionary(ctx context.Context) (*DictionaryResponse, error) {
	path, ok := c.endpoints.GetDictionary()
	if !ok {
		return nil, ErrNoDictionaryEndpoint
	}

	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dictionary: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(req, resp); err != nil {
		return nil, err
	}

	var out DictionaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode dictionary: %w", err)
	}
	return &out, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if c.sessionToken != "" {
		req.Header.Set(SessionHeader, c.sessionToken)
	}
	return req, nil
}

func checkStatus(req *http.Request, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)
	return &StatusError{
		Method:     req.Method,
		URL:        req.URL.String(),
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
	}
}
