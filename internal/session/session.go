package session

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renbkna/yt-dlp-ui/internal/api"
	"github.com/renbkna/yt-dlp-ui/internal/model"
	"github.com/renbkna/yt-dlp-ui/internal/platform"
)

// DefaultPollInterval is the fixed delay between status poll ticks
const DefaultPollInterval = time.Second

// Step identifies which stage of the flow is active
type Step int

const (
	// StepURL is the initial URL entry stage
	StepURL Step = iota

	// StepOptions is the option configuration stage, reachable after a probe
	StepOptions

	// StepProgress is the download tracking stage, reachable after a start
	StepProgress
)

// String returns the display name for a step
func (s Step) String() string {
	switch s {
	case StepOptions:
		return "Options"
	case StepProgress:
		return "Progress"
	default:
		return "URL"
	}
}

// authErrorMarkers identify backend failures caused by missing
// authentication rather than a broken request
var authErrorMarkers = []string{
	"sign in to confirm",
	"confirm you're not a bot",
	"confirm you are not a bot",
	"login required",
	"age-restricted",
	"age restricted",
}

// IsAuthError reports whether an error message looks like an authentication
// failure that cookie-based retry could resolve
func IsAuthError(message string) bool {
	message = strings.ToLower(message)
	for _, marker := range authErrorMarkers {
		if strings.Contains(message, marker) {
			return true
		}
	}
	return false
}

// Session owns the whole flow state: URL, probed metadata, encodings, the
// shared options record, the active step, the polled download status, and
// the last surfaced error. All mutation goes through its methods.
type Session struct {
	mu      sync.RWMutex
	backend Backend

	url        string
	isPlaylist bool
	info       *model.VideoInfo
	formats    []model.Format
	options    *model.DownloadOptions
	status     *model.DownloadStatus
	step       Step
	lastError  string
	loading    bool
	taskID     string

	// Poll bookkeeping: gen invalidates stale ticks, cancel stops the loop
	pollInterval time.Duration
	pollGen      uint64
	cancelPoll   context.CancelFunc

	onUpdate func() // callback for UI updates
}

// NewSession creates a session talking to the given backend
func NewSession(backend Backend) *Session {
	return &Session{
		backend:      backend,
		options:      model.NewDownloadOptions(),
		pollInterval: DefaultPollInterval,
	}
}

// SetUpdateCallback sets the callback invoked after every state change
func (s *Session) SetUpdateCallback(callback func()) {
	s.onUpdate = callback
}

// SetPollInterval overrides the status poll interval
func (s *Session) SetPollInterval(interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if interval > 0 {
		s.pollInterval = interval
	}
}

// SetURL updates the source URL and re-derives the playlist flag from its
// query parameters
func (s *Session) SetURL(url string) {
	s.mu.Lock()
	s.url = url
	s.isPlaylist = platform.IsPlaylistURL(url)
	s.mu.Unlock()
	s.notifyUpdate()
}

// SetPlaylist overrides the derived playlist flag
func (s *Session) SetPlaylist(isPlaylist bool) {
	s.mu.Lock()
	s.isPlaylist = isPlaylist
	s.mu.Unlock()
	s.notifyUpdate()
}

// URL returns the current source URL
func (s *Session) URL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.url
}

// IsPlaylist returns the current playlist flag
func (s *Session) IsPlaylist() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isPlaylist
}

// Step returns the active step
func (s *Session) Step() Step {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.step
}

// Loading reports whether a probe is in flight
func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Info returns the probed metadata, or nil before a successful probe
func (s *Session) Info() *model.VideoInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.info
}

// Formats returns the probed encodings; empty for playlists
func (s *Session) Formats() []model.Format {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.formats
}

// Options returns the shared options record. The record is owned by the
// session; mutate it through UpdateOptions.
func (s *Session) Options() *model.DownloadOptions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.options
}

// UpdateOptions applies a single-field mutation to the shared options record
// and notifies observers
func (s *Session) UpdateOptions(mutate func(*model.DownloadOptions)) {
	s.mu.Lock()
	mutate(s.options)
	s.mu.Unlock()
	s.notifyUpdate()
}

// Status returns the latest polled snapshot, or nil before a download starts
func (s *Session) Status() *model.DownloadStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// TaskID returns the backend job id of the running download
func (s *Session) TaskID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.taskID
}

// LastError returns the last surfaced failure message
func (s *Session) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// DismissError clears the surfaced error
func (s *Session) DismissError() {
	s.mu.Lock()
	s.lastError = ""
	s.mu.Unlock()
	s.notifyUpdate()
}

// GoToStep navigates to a step. Forward navigation is gated on data being
// present; navigating back to the URL step never clears fetched state.
func (s *Session) GoToStep(step Step) bool {
	s.mu.Lock()
	switch step {
	case StepOptions:
		if s.info == nil {
			s.mu.Unlock()
			return false
		}
	case StepProgress:
		if s.status == nil {
			s.mu.Unlock()
			return false
		}
	}
	s.step = step
	s.mu.Unlock()
	s.notifyUpdate()
	return true
}

// FetchInfo probes metadata and encodings concurrently and advances to the
// options step. Both requests must succeed; on any failure no session state
// changes beyond the surfaced error.
func (s *Session) FetchInfo(ctx context.Context) error {
	s.mu.Lock()
	url := s.url
	req := api.ProbeRequest{
		URL:        url,
		IsPlaylist: s.isPlaylist,
		Cookies:    s.options.ClientCookies,
	}
	s.mu.Unlock()

	if err := platform.ValidateURL(url); err != nil {
		s.setError(err.Error())
		return err
	}

	s.mu.Lock()
	s.loading = true
	s.lastError = ""
	s.mu.Unlock()
	s.notifyUpdate()

	var (
		info        *model.VideoInfo
		formatsResp *api.FormatsResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := s.backend.FetchInfo(gctx, req)
		if err != nil {
			return err
		}
		info = result
		return nil
	})
	g.Go(func() error {
		result, err := s.backend.FetchFormats(gctx, req)
		if err != nil {
			return err
		}
		formatsResp = result
		return nil
	})
	err := g.Wait()

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.lastError = err.Error()
		s.mu.Unlock()
		s.notifyUpdate()
		return err
	}

	if formatsResp.IsPlaylist {
		info.IsPlaylist = true
		s.isPlaylist = true
		s.formats = nil
	} else {
		info.IsPlaylist = false
		s.formats = formatsResp.Formats
	}
	s.info = info
	s.step = StepOptions
	s.mu.Unlock()
	s.notifyUpdate()

	log.Printf("probe completed for %s (playlist=%v, %d formats)", url, info.IsPlaylist, len(s.Formats()))
	return nil
}

// StartDownload submits the download job from the current options snapshot
// and begins polling its status
func (s *Session) StartDownload(ctx context.Context) error {
	s.mu.Lock()
	if !s.options.CanStart() {
		s.mu.Unlock()
		err := fmt.Errorf("select a format or enable audio extraction first")
		s.setError(err.Error())
		return err
	}
	req := buildDownloadRequest(s.url, s.isPlaylist, s.options)
	s.lastError = ""
	s.mu.Unlock()
	s.notifyUpdate()

	taskID, err := s.backend.StartDownload(ctx, req)
	if err != nil {
		s.setError(err.Error())
		return err
	}

	s.mu.Lock()
	s.taskID = taskID
	s.status = &model.DownloadStatus{State: model.StateInitializing}
	s.step = StepProgress
	pollCtx := s.restartPollLocked()
	gen := s.pollGen
	interval := s.pollInterval
	s.mu.Unlock()
	s.notifyUpdate()

	log.Printf("download started, task %s", taskID)
	go s.pollLoop(pollCtx, gen, taskID, interval)
	return nil
}

// restartPollLocked cancels any running poll loop and arms a new generation.
// Caller must hold the write lock.
func (s *Session) restartPollLocked() context.Context {
	if s.cancelPoll != nil {
		s.cancelPoll()
	}
	s.pollGen++
	ctx, cancel := context.WithCancel(context.Background())
	s.cancelPoll = cancel
	return ctx
}

// pollLoop polls the job status at a fixed interval. Responses from a stale
// generation are discarded; a single failed tick surfaces the error and
// halts polling without leaving the progress step.
func (s *Session) pollLoop(ctx context.Context, gen uint64, taskID string, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		status, err := s.backend.Status(ctx, taskID)

		s.mu.Lock()
		if gen != s.pollGen || ctx.Err() != nil {
			s.mu.Unlock()
			return
		}
		if err != nil {
			s.lastError = err.Error()
			s.mu.Unlock()
			s.notifyUpdate()
			return
		}
		s.status = status
		terminal := status.State.IsTerminal()
		s.mu.Unlock()
		s.notifyUpdate()

		if terminal {
			log.Printf("task %s finished with state %s", taskID, status.State)
			return
		}
	}
}

// Reset returns every session field to its initial value and stops polling.
// The poll generation is bumped so any in-flight response is discarded.
func (s *Session) Reset() {
	s.mu.Lock()
	if s.cancelPoll != nil {
		s.cancelPoll()
		s.cancelPoll = nil
	}
	s.pollGen++

	s.url = ""
	s.isPlaylist = false
	s.info = nil
	s.formats = nil
	s.options = model.NewDownloadOptions()
	s.status = nil
	s.taskID = ""
	s.lastError = ""
	s.loading = false
	s.step = StepURL
	s.mu.Unlock()
	s.notifyUpdate()
}

// setError records a failure message and notifies observers
func (s *Session) setError(message string) {
	s.mu.Lock()
	s.lastError = message
	s.mu.Unlock()
	s.notifyUpdate()
}

// notifyUpdate calls the update callback if set
func (s *Session) notifyUpdate() {
	if s.onUpdate != nil {
		s.onUpdate()
	}
}

// buildDownloadRequest snapshots the options record into the wire request
func buildDownloadRequest(url string, isPlaylist bool, o *model.DownloadOptions) api.DownloadRequest {
	req := api.DownloadRequest{
		URL:                  url,
		Format:               o.Format,
		ExtractAudio:         o.ExtractAudio,
		AudioFormat:          o.AudioFormat,
		Quality:              o.AudioQuality,
		EmbedMetadata:        o.EmbedMetadata,
		EmbedThumbnail:       o.EmbedThumbnail,
		DownloadSubtitles:    o.DownloadSubtitles,
		SubtitleLanguages:    o.SubtitleLanguages,
		DownloadPlaylist:     isPlaylist,
		WriteDescription:     o.WriteDescription,
		WriteComments:        o.WriteComments,
		WriteInfoJSON:        o.WriteInfoJSON,
		Sponsorblock:         o.Sponsorblock,
		ChaptersFromComments: o.ChaptersFromComments,
		UseBrowserCookies:    o.UseBrowserCookies,
	}
	if o.UseBrowserCookies {
		req.ClientCookies = o.ClientCookies
	}
	return req
}
