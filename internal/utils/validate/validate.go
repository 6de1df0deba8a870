package validate

import (
	"path/filepath"
	"strings"

	"github.com/supchaser/video_analysis/internal/utils/errs"
)

// Extensions the analysis service is known to accept. Only a hint: the
// backend is the authority on what it can process.
var recommendedExtensions = map[string]bool{
	".mp4": true,
	".mov": true,
	".avi": true,
}

func IsRecommendedVideo(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return recommendedExtensions[ext]
}

func ValidateVideoPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return errs.ErrMissingFile
	}

	return nil
}

func ValidateTaskID(taskID string) error {
	if strings.TrimSpace(taskID) == "" {
		return errs.ErrTaskNotFound
	}

	return nil
}
