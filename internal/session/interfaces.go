package session

import (
	"context"

	"github.com/renbkna/yt-dlp-ui/internal/api"
	"github.com/renbkna/yt-dlp-ui/internal/model"
)

// Backend defines the interface to the download backend used by the session.
// Satisfied by *api.Client; tests substitute a fake.
type Backend interface {
	FetchInfo(ctx context.Context, req api.ProbeRequest) (*model.VideoInfo, error)
	FetchFormats(ctx context.Context, req api.ProbeRequest) (*api.FormatsResponse, error)
	StartDownload(ctx context.Context, req api.DownloadRequest) (string, error)
	Status(ctx context.Context, taskID string) (*model.DownloadStatus, error)
}
