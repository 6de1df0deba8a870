package usecase

import "github.com/supchaser/video_analysis/internal/app/models"

const (
	ProgressCap      = 90
	ProgressComplete = 100
)

// NextProgress returns the synthetic progress after observing status.
// The backend reports no numeric progress, so every non-terminal poll adds
// one point up to ProgressCap; completion jumps straight to ProgressComplete.
func NextProgress(current int, status models.TaskStatus) int {
	if current < 0 {
		current = 0
	}

	switch status {
	case models.StatusCompleted:
		return ProgressComplete
	case models.StatusFailed:
		return current
	}

	if current >= ProgressCap {
		return current
	}

	return current + 1
}
