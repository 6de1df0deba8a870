package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/supchaser/video_analysis/internal/app"
	"github.com/supchaser/video_analysis/internal/utils/errs"
	"github.com/supchaser/video_analysis/internal/utils/logger"
	"github.com/supchaser/video_analysis/internal/utils/validate"
	"go.uber.org/zap"
)

const UploadFailedMessage = "Upload failed"

type UploadUsecase struct {
	repository app.AnalysisRepository
}

func CreateUploadUsecase(repository app.AnalysisRepository) *UploadUsecase {
	return &UploadUsecase{
		repository: repository,
	}
}

// Upload submits the file at path and returns the backend task id. Every
// failure is reported as errs.ErrUploadFailed; the cause is kept for logs.
func (u *UploadUsecase) Upload(ctx context.Context, path string) (string, error) {
	const funcName = "UploadUsecase.Upload"
	logger.Debug("submitting video",
		zap.String("function", funcName),
		zap.String("path", path),
	)

	if err := validate.ValidateVideoPath(path); err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrUploadFailed, err)
	}

	if !validate.IsRecommendedVideo(path) {
		logger.Warn("file extension is not a recommended video format",
			zap.String("function", funcName),
			zap.String("path", path),
			zap.String("extension", filepath.Ext(path)),
		)
	}

	file, err := os.Open(path)
	if err != nil {
		logger.Error("failed to open video",
			zap.String("function", funcName),
			zap.String("path", path),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %v", errs.ErrUploadFailed, err)
	}
	defer file.Close()

	// Once issued, the submission runs to completion.
	taskID, err := u.repository.UploadVideo(context.WithoutCancel(ctx), filepath.Base(path), file)
	if err != nil {
		logger.Error("failed to upload video",
			zap.String("function", funcName),
			zap.String("path", path),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %v", errs.ErrUploadFailed, err)
	}

	if err := validate.ValidateTaskID(taskID); err != nil {
		logger.Error("backend returned empty task id",
			zap.String("function", funcName),
			zap.String("path", path),
		)
		return "", fmt.Errorf("%w: empty task id", errs.ErrUploadFailed)
	}

	logger.Info("video submitted",
		zap.String("function", funcName),
		zap.String("path", path),
		zap.String("task_id", taskID),
	)

	return taskID, nil
}
