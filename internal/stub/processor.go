package stub

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/supchaser/video_analysis/internal/app/models"
	"github.com/supchaser/video_analysis/internal/utils/logger"
	"go.uber.org/zap"
)

const CorruptFileMessage = "corrupt file"

// Processor simulates the analysis pipeline: a task stays pending for a
// quarter of the processing time, then processing until it completes.
type Processor struct {
	store          *TaskStore
	processingTime time.Duration
}

func CreateProcessor(store *TaskStore, processingTime time.Duration) *Processor {
	if processingTime < 0 {
		processingTime = 0
	}
	return &Processor{
		store:          store,
		processingTime: processingTime,
	}
}

// Process runs the simulated analysis for taskID until it reaches a
// terminal status or ctx is done.
func (p *Processor) Process(ctx context.Context, taskID string) {
	const funcName = "Processor.Process"
	logger.Info("starting analysis",
		zap.String("function", funcName),
		zap.String("task_id", taskID),
	)

	if !sleep(ctx, p.processingTime/4) {
		return
	}
	if err := p.store.UpdateTaskStatus(ctx, taskID, models.StatusProcessing); err != nil {
		logger.Error("failed to mark task processing",
			zap.String("function", funcName),
			zap.String("task_id", taskID),
			zap.Error(err),
		)
		return
	}

	task, err := p.store.GetTask(ctx, taskID)
	if err != nil {
		return
	}

	info, err := os.Stat(task.VideoPath)
	if err != nil || info.Size() == 0 {
		logger.Warn("video is empty or unreadable",
			zap.String("function", funcName),
			zap.String("task_id", taskID),
			zap.String("video_path", task.VideoPath),
			zap.Error(err),
		)
		p.store.FailTask(ctx, taskID, CorruptFileMessage)
		return
	}

	if !sleep(ctx, p.processingTime-p.processingTime/4) {
		return
	}

	report := buildReport(task.FileName, info.Size(), time.Now())
	if err := p.store.CompleteTask(ctx, taskID, report); err != nil {
		logger.Error("failed to complete task",
			zap.String("function", funcName),
			zap.String("task_id", taskID),
			zap.Error(err),
		)
		return
	}

	logger.Info("analysis finished",
		zap.String("function", funcName),
		zap.String("task_id", taskID),
		zap.Int64("video_bytes", info.Size()),
	)
}

func buildReport(fileName string, size int64, at time.Time) string {
	var b strings.Builder
	b.WriteString("# Coaching Report\n\n")
	fmt.Fprintf(&b, "- **Video:** %s\n", fileName)
	fmt.Fprintf(&b, "- **Size:** %d bytes\n", size)
	fmt.Fprintf(&b, "- **Analyzed:** %s\n\n", at.UTC().Format(time.RFC3339))
	b.WriteString("## Summary\n\n")
	b.WriteString("Stub analysis: no detection, tracking or pose estimation was run.\n")
	return b.String()
}

func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
