package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/supchaser/video_analysis/internal/app"
	"github.com/supchaser/video_analysis/internal/utils/logger"
	"github.com/supchaser/video_analysis/internal/utils/validate"
	"go.uber.org/zap"
)

type VideoUsecase struct {
	repository app.AnalysisRepository
}

func CreateVideoUsecase(repository app.AnalysisRepository) *VideoUsecase {
	return &VideoUsecase{
		repository: repository,
	}
}

// Save downloads the annotated video of taskID into dir as <taskID>.mp4.
func (u *VideoUsecase) Save(ctx context.Context, taskID, dir string) (string, error) {
	const funcName = "VideoUsecase.Save"
	if err := validate.ValidateTaskID(taskID); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create video dir: %w", err)
	}

	path := filepath.Join(dir, filepath.Base(taskID)+".mp4")
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create video file: %w", err)
	}

	n, err := u.repository.DownloadVideo(ctx, taskID, file)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		logger.Error("failed to save video",
			zap.String("function", funcName),
			zap.String("task_id", taskID),
			zap.String("path", path),
			zap.Error(err),
		)
		os.Remove(path)
		return "", fmt.Errorf("download video: %w", err)
	}

	logger.Info("video saved",
		zap.String("function", funcName),
		zap.String("task_id", taskID),
		zap.String("path", path),
		zap.Int64("bytes", n),
	)

	return path, nil
}
