package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/supchaser/video_analysis/internal/app"
	"github.com/supchaser/video_analysis/internal/app/models"
	"github.com/supchaser/video_analysis/internal/utils/errs"
	"github.com/supchaser/video_analysis/internal/utils/logger"
	"go.uber.org/zap"
)

// ViewController is the Upload -> Processing -> Result state machine.
// Processing and Result always have a task id; Upload never has a task id
// or a result.
type ViewController struct {
	uploader app.TaskUploader
	poller   app.TaskPoller
	notifier app.Notifier

	mu        sync.Mutex
	state     models.ViewState
	taskID    string
	progress  int
	result    *models.Result
	uploading bool
}

func CreateViewController(uploader app.TaskUploader, poller app.TaskPoller, notifier app.Notifier) *ViewController {
	return &ViewController{
		uploader: uploader,
		poller:   poller,
		notifier: notifier,
		state:    models.ViewUpload,
	}
}

func (c *ViewController) Snapshot() models.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return models.Snapshot{
		State:    c.state,
		TaskID:   c.taskID,
		Progress: c.progress,
		Result:   c.result,
	}
}

// Submit uploads the video at path and, on success, enters Processing.
// ctx only carries values to the upload and the poller; cancelling it does
// not interrupt either.
// On failure the controller stays in Upload and an upload_failed event is
// published.
func (c *ViewController) Submit(ctx context.Context, path string) (string, error) {
	const funcName = "ViewController.Submit"

	c.mu.Lock()
	if c.state != models.ViewUpload || c.uploading {
		state := c.state
		c.mu.Unlock()
		logger.Warn("submit rejected",
			zap.String("function", funcName),
			zap.String("state", string(state)),
		)
		return "", fmt.Errorf("%w: submit in %s state", errs.ErrInvalidTransition, state)
	}
	c.uploading = true
	c.mu.Unlock()

	taskID, err := c.uploader.Upload(ctx, path)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.uploading = false

	if err != nil {
		c.notifier.Notify(models.Event{
			Kind:    models.EventUploadFailed,
			State:   c.state,
			Message: UploadFailedMessage,
			Err:     err,
		})
		return "", err
	}

	c.taskID = taskID
	c.result = nil
	c.progress = 0
	c.state = models.ViewProcessing

	// Polling outlives ctx; leaving Processing is what stops it.
	if err := c.poller.Start(context.WithoutCancel(ctx), taskID, c.handleEvent); err != nil {
		logger.Error("failed to start polling",
			zap.String("function", funcName),
			zap.String("task_id", taskID),
			zap.Error(err),
		)
		c.clear()
		return "", err
	}

	logger.Info("entered processing",
		zap.String("function", funcName),
		zap.String("task_id", taskID),
	)
	c.notifier.Notify(models.Event{
		Kind:   models.EventStarted,
		TaskID: taskID,
		State:  c.state,
		Status: models.StatusPending,
	})

	return taskID, nil
}

// Reset leaves Result for Upload, discarding the task and its result.
func (c *ViewController) Reset() error {
	const funcName = "ViewController.Reset"

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != models.ViewResult {
		return fmt.Errorf("%w: reset in %s state", errs.ErrInvalidTransition, c.state)
	}

	taskID := c.taskID
	c.clear()

	logger.Info("reset to upload",
		zap.String("function", funcName),
		zap.String("task_id", taskID),
	)
	c.notifier.Notify(models.Event{
		Kind:   models.EventReset,
		TaskID: taskID,
		State:  c.state,
	})

	return nil
}

// Close tears down Processing, if active, and returns to Upload without
// publishing an event.
func (c *ViewController) Close() {
	c.mu.Lock()
	processing := c.state == models.ViewProcessing
	c.clear()
	c.mu.Unlock()

	// Stop waits for the loop; an event it is delivering must not block on c.mu.
	if processing {
		c.poller.Stop()
	}
}

func (c *ViewController) handleEvent(event models.Event) {
	const funcName = "ViewController.handleEvent"

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != models.ViewProcessing || event.TaskID != c.taskID {
		logger.Debug("dropping stale poll event",
			zap.String("function", funcName),
			zap.String("event_task_id", event.TaskID),
			zap.String("active_task_id", c.taskID),
			zap.String("state", string(c.state)),
		)
		return
	}

	switch event.Kind {
	case models.EventProgress:
		if event.Progress > c.progress {
			c.progress = event.Progress
		}
		event.Progress = c.progress

	case models.EventCompleted:
		c.poller.Stop()
		c.progress = ProgressComplete
		c.result = event.Result
		c.state = models.ViewResult
		logger.Info("entered result",
			zap.String("function", funcName),
			zap.String("task_id", c.taskID),
		)

	case models.EventFailed:
		c.poller.Stop()
		c.clear()
		logger.Warn("analysis failed, back to upload",
			zap.String("function", funcName),
			zap.String("task_id", event.TaskID),
			zap.String("message", event.Message),
		)

	default:
		logger.Warn("unexpected poll event",
			zap.String("function", funcName),
			zap.String("kind", string(event.Kind)),
		)
		return
	}

	event.State = c.state
	c.notifier.Notify(event)
}

func (c *ViewController) clear() {
	c.state = models.ViewUpload
	c.taskID = ""
	c.progress = 0
	c.result = nil
}
