package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/renbkna/yt-dlp-ui/internal/model"
)

// DefaultBaseURL is the backend origin used when none is configured
const DefaultBaseURL = "http://localhost:8000/api"

// DefaultTimeout bounds every request so a hung backend cannot wedge the UI
const DefaultTimeout = 60 * time.Second

// RequestIDHeader carries a per-request id for backend log correlation
const RequestIDHeader = "X-Request-ID"

// Client talks to the download backend
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a backend client for the given base URL. An empty base
// URL falls back to DefaultBaseURL; a trailing slash is trimmed.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
}

// BaseURL returns the configured backend base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ProbeRequest is the body of the metadata and formats probes
type ProbeRequest struct {
	URL        string               `json:"url"`
	IsPlaylist bool                 `json:"is_playlist"`
	Cookies    []model.ClientCookie `json:"cookies,omitempty"`
}

// FormatsResponse is the body of a formats probe response
type FormatsResponse struct {
	IsPlaylist bool           `json:"is_playlist"`
	Formats    []model.Format `json:"formats"`
}

// DownloadRequest is the full options snapshot submitted to start a download
type DownloadRequest struct {
	URL                  string               `json:"url"`
	Format               string               `json:"format"`
	ExtractAudio         bool                 `json:"extract_audio"`
	AudioFormat          string               `json:"audio_format"`
	Quality              string               `json:"quality"`
	EmbedMetadata        bool                 `json:"embed_metadata"`
	EmbedThumbnail       bool                 `json:"embed_thumbnail"`
	DownloadSubtitles    bool                 `json:"download_subtitles"`
	SubtitleLanguages    []string             `json:"subtitle_languages"`
	DownloadPlaylist     bool                 `json:"download_playlist"`
	WriteDescription     bool                 `json:"write_description"`
	WriteComments        bool                 `json:"write_comments"`
	WriteInfoJSON        bool                 `json:"write_info_json"`
	Sponsorblock         bool                 `json:"sponsorblock"`
	ChaptersFromComments bool                 `json:"chapters_from_comments"`
	UseBrowserCookies    bool                 `json:"use_browser_cookies,omitempty"`
	ClientCookies        []model.ClientCookie `json:"client_cookies,omitempty"`
}

// DownloadResponse carries the id of the created download job
type DownloadResponse struct {
	TaskID string `json:"task_id"`
}

// CookieRegistration is the body of a cookie registration request
type CookieRegistration struct {
	Cookies []model.ClientCookie `json:"cookies"`
	Source  string               `json:"source"`
}

// FetchInfo probes metadata for a video or playlist URL
func (c *Client) FetchInfo(ctx context.Context, req ProbeRequest) (*model.VideoInfo, error) {
	var info model.VideoInfo
	if err := c.post(ctx, "/info", req, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// FetchFormats probes the available encodings for a URL. Playlists report
// is_playlist true and an empty format list.
func (c *Client) FetchFormats(ctx context.Context, req ProbeRequest) (*FormatsResponse, error) {
	var resp FormatsResponse
	if err := c.post(ctx, "/formats", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// StartDownload submits a download job and returns its task id
func (c *Client) StartDownload(ctx context.Context, req DownloadRequest) (string, error) {
	var resp DownloadResponse
	if err := c.post(ctx, "/download", req, &resp); err != nil {
		return "", err
	}
	if resp.TaskID == "" {
		return "", fmt.Errorf("backend returned no task id")
	}
	return resp.TaskID, nil
}

// Status fetches the current snapshot of a download job
func (c *Client) Status(ctx context.Context, taskID string) (*model.DownloadStatus, error) {
	var status model.DownloadStatus
	if err := c.get(ctx, "/status/"+taskID, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// RegisterCookies uploads extracted client cookies to the backend
func (c *Client) RegisterCookies(ctx context.Context, cookies []model.ClientCookie) (*model.CookieStatus, error) {
	var status model.CookieStatus
	req := CookieRegistration{Cookies: cookies, Source: "client"}
	if err := c.post(ctx, "/cookies", req, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// CookieStatus fetches the backend's cookie availability report
func (c *Client) CookieStatus(ctx context.Context) (*model.CookieStatus, error) {
	var status model.CookieStatus
	if err := c.get(ctx, "/cookie_status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// BrowserStatus fetches the backend's browser cookie availability report
func (c *Client) BrowserStatus(ctx context.Context) (*model.BrowserStatus, error) {
	var status model.BrowserStatus
	if err := c.get(ctx, "/browser_status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// post issues a JSON POST request and decodes the response into out
func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// get issues a GET request and decodes the response into out
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}

	return c.do(req, out)
}

// do executes the request, mapping non-2xx responses to errors carrying the
// backend's detail message
func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set(RequestIDHeader, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s", decodeErrorDetail(resp))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %v", err)
	}
	return nil
}

// decodeErrorDetail extracts the backend's JSON detail field from an error
// response, falling back to the raw body text, then to the HTTP status
func decodeErrorDetail(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil || len(body) == 0 {
		return fmt.Sprintf("request failed with status %s", resp.Status)
	}

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}

	return strings.TrimSpace(string(body))
}
