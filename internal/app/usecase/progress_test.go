package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/supchaser/video_analysis/internal/app/models"
)

func TestNextProgress(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		status   models.TaskStatus
		expected int
	}{
		{
			name:     "PendingIncrements",
			current:  0,
			status:   models.StatusPending,
			expected: 1,
		},
		{
			name:     "ProcessingIncrements",
			current:  41,
			status:   models.StatusProcessing,
			expected: 42,
		},
		{
			name:     "CapsAtNinety",
			current:  90,
			status:   models.StatusProcessing,
			expected: 90,
		},
		{
			name:     "ReachesCap",
			current:  89,
			status:   models.StatusPending,
			expected: 90,
		},
		{
			name:     "NeverDecreasesAboveCap",
			current:  95,
			status:   models.StatusProcessing,
			expected: 95,
		},
		{
			name:     "CompletedForcesHundred",
			current:  3,
			status:   models.StatusCompleted,
			expected: 100,
		},
		{
			name:     "FailedKeepsCurrent",
			current:  17,
			status:   models.StatusFailed,
			expected: 17,
		},
		{
			name:     "NegativeClampedToZero",
			current:  -5,
			status:   models.StatusProcessing,
			expected: 1,
		},
		{
			name:     "UnknownStatusTreatedAsRunning",
			current:  10,
			status:   models.TaskStatus("queued"),
			expected: 11,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextProgress(tt.current, tt.status))
		})
	}
}

func TestNextProgress_MonotonicUntilCompleted(t *testing.T) {
	progress := 0
	for i := 0; i < 200; i++ {
		next := NextProgress(progress, models.StatusProcessing)
		assert.GreaterOrEqual(t, next, progress)
		assert.LessOrEqual(t, next, ProgressCap)
		progress = next
	}

	assert.Equal(t, ProgressCap, progress)
	assert.Equal(t, ProgressComplete, NextProgress(progress, models.StatusCompleted))
}
