// Package client is the HTTP adapter to the schedule backend. All
// persistence-boundary failures surface here as errors for the caller to
// report; nothing in the document model ever sees them.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/callsheet/callsheet/pkg/schedule"
	"github.com/callsheet/callsheet/pkg/wire"
)

const maxLogoBytes = 5 * 1024 * 1024

// Client talks to one backend instance.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     zerolog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a Client for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ProjectSummary is one row of the project browser listing.
type ProjectSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	Archived  bool   `json:"archived"`
	DayCount  int    `json:"day_count"`
}

// ProjectList groups summaries by archive state.
type ProjectList struct {
	Active   []ProjectSummary `json:"active"`
	Archived []ProjectSummary `json:"archived"`
}

// Health reports backend and database status.
type Health struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// Health checks backend connectivity.
func (c *Client) Health(ctx context.Context) (Health, error) {
	var h Health
	err := c.doJSON(ctx, http.MethodGet, "/api/health", nil, &h)
	return h, err
}

// List fetches project summaries. With includeArchived false the archived
// group comes back empty.
func (c *Client) List(ctx context.Context, includeArchived bool) (ProjectList, error) {
	var list ProjectList
	path := fmt.Sprintf("/api/projects?include_archived=%t", includeArchived)
	err := c.doJSON(ctx, http.MethodGet, path, nil, &list)
	return list, err
}

// Get loads the full document with the given id.
func (c *Client) Get(ctx context.Context, id string) (schedule.Document, error) {
	var w wire.Document
	if err := c.doJSON(ctx, http.MethodGet, "/api/projects/"+url.PathEscape(id), nil, &w); err != nil {
		return schedule.Document{}, err
	}
	return wire.Decode(w), nil
}

// Save persists the document: a document without an id is created, one with
// an id is replaced wholesale. The returned document carries the
// server-assigned id and timestamps and should replace the caller's copy.
func (c *Client) Save(ctx context.Context, doc schedule.Document) (schedule.Document, error) {
	body := wire.Encode(doc)

	method := http.MethodPost
	path := "/api/projects/save"
	if doc.ID != "" {
		method = http.MethodPut
		path = "/api/projects/" + url.PathEscape(doc.ID)
	}

	var w wire.Document
	if err := c.doJSON(ctx, method, path, body, &w); err != nil {
		return schedule.Document{}, err
	}
	return wire.Decode(w), nil
}

// Delete removes the project with the given id.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/projects/"+url.PathEscape(id), nil, nil)
}

// ToggleArchive flips the archived flag and returns the new state.
func (c *Client) ToggleArchive(ctx context.Context, id string) (bool, error) {
	var resp struct {
		Archived bool `json:"archived"`
	}
	path := "/api/projects/" + url.PathEscape(id) + "/archive"
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return false, err
	}
	return resp.Archived, nil
}

// Duplicate clones the project server-side; every section and row of the
// clone gets fresh identifiers.
func (c *Client) Duplicate(ctx context.Context, id string) (schedule.Document, error) {
	var w wire.Document
	path := "/api/projects/" + url.PathEscape(id) + "/duplicate"
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &w); err != nil {
		return schedule.Document{}, err
	}
	return wire.Decode(w), nil
}

// ExportCSV downloads the flattened CSV projection of a saved project.
func (c *Client) ExportCSV(ctx context.Context, id string) ([]byte, error) {
	path := "/api/projects/" + url.PathEscape(id) + "/export.csv"
	resp, err := c.request(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// UploadLogo pushes a JPEG or PNG logo and returns the URL the backend
// serves it from. Type and size are checked before anything leaves the
// machine.
func (c *Client) UploadLogo(ctx context.Context, filename string, content []byte) (string, error) {
	contentType, err := logoContentType(filename)
	if err != nil {
		return "", err
	}
	if len(content) > maxLogoBytes {
		return "", ErrLogoTooLarge
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreatePart(logoPartHeader(filename, contentType))
	if err != nil {
		return "", err
	}
	if _, err := part.Write(content); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	resp, err := c.request(ctx, http.MethodPost, "/api/uploads/logo", mw.FormDataContentType(), &buf)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("upload logo: decode response: %w", err)
	}
	return out.URL, nil
}

// doJSON runs one JSON round trip. A nil out discards the response body.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		rdr = bytes.NewReader(data)
	}

	resp, err := c.request(ctx, method, path, "application/json", rdr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

// request performs the HTTP exchange and maps any non-2xx response to a
// *StatusError. Callers own the response body on success.
func (c *Client) request(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if body != nil && contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Msg("backend request")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()
		return nil, newStatusError(method, path, resp)
	}
	return resp, nil
}
