package app

import (
	"context"
	"io"

	"github.com/supchaser/video_analysis/internal/app/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go

type AnalysisRepository interface {
	UploadVideo(ctx context.Context, fileName string, video io.Reader) (string, error)
	GetTaskStatus(ctx context.Context, taskID string) (*models.StatusResponse, error)
	GetTaskResult(ctx context.Context, taskID string) (*models.Result, error)
	DownloadVideo(ctx context.Context, taskID string, dst io.Writer) (int64, error)
	VideoURL(taskID string) string
}

type TaskUploader interface {
	Upload(ctx context.Context, path string) (string, error)
}

type TaskPoller interface {
	Start(ctx context.Context, taskID string, emit func(models.Event)) error
	Stop()
}

// Notifier receives events synchronously at the point of a transition.
// Implementations must not call back into the view controller.
type Notifier interface {
	Notify(event models.Event)
}
