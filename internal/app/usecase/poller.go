package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/supchaser/video_analysis/internal/app"
	"github.com/supchaser/video_analysis/internal/app/models"
	"github.com/supchaser/video_analysis/internal/utils/errs"
	"github.com/supchaser/video_analysis/internal/utils/logger"
	"github.com/supchaser/video_analysis/internal/utils/validate"
	"go.uber.org/zap"
)

const (
	DefaultPollInterval    = time.Second
	DefaultCompletionDelay = 500 * time.Millisecond
	DefaultMaxPolls        = 1800

	UnknownErrorMessage     = "Unknown error"
	ResultFetchErrorMessage = "Failed to load analysis result"
	PollTimeoutMessage      = "Analysis timed out"
)

type PollerConfig struct {
	Interval time.Duration
	// CompletionDelay holds back the completed event so the 100% state is
	// visible before the view switches.
	CompletionDelay time.Duration
	// MaxPolls bounds the number of ticks without a terminal status. Zero
	// means unbounded.
	MaxPolls int
}

// TaskPoller polls the status of one task at a fixed interval.
type TaskPoller struct {
	repository app.AnalysisRepository
	cfg        PollerConfig

	mu      sync.Mutex
	current *pollLoop
}

// pollLoop is one run of the polling loop. emitting is set while that run
// is delivering an event.
type pollLoop struct {
	cancel   context.CancelFunc
	done     chan struct{}
	emitting atomic.Bool
}

func CreateTaskPoller(repository app.AnalysisRepository, cfg PollerConfig) *TaskPoller {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultPollInterval
	}
	if cfg.CompletionDelay < 0 {
		cfg.CompletionDelay = 0
	}
	if cfg.MaxPolls < 0 {
		cfg.MaxPolls = 0
	}

	return &TaskPoller{
		repository: repository,
		cfg:        cfg,
	}
}

// Start launches the polling loop for taskID. emit is called from the loop
// goroutine, one event at a time.
func (p *TaskPoller) Start(ctx context.Context, taskID string, emit func(models.Event)) error {
	const funcName = "TaskPoller.Start"
	if err := validate.ValidateTaskID(taskID); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != nil {
		logger.Warn("poller already running",
			zap.String("function", funcName),
			zap.String("task_id", taskID),
		)
		return errs.ErrPollerActive
	}

	loopCtx, cancel := context.WithCancel(ctx)
	loop := &pollLoop{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	p.current = loop

	logger.Info("polling started",
		zap.String("function", funcName),
		zap.String("task_id", taskID),
		zap.Duration("interval", p.cfg.Interval),
	)

	go p.run(loopCtx, taskID, emit, loop)

	return nil
}

// Stop cancels the running loop and waits for it to exit. If the loop is
// delivering an event, Stop only cancels: the delivery in flight finishes
// and the loop then exits without another request or event. This makes
// Stop safe to call from inside emit.
func (p *TaskPoller) Stop() {
	p.mu.Lock()
	loop := p.current
	p.current = nil
	p.mu.Unlock()

	if loop == nil {
		return
	}
	loop.cancel()

	if !loop.emitting.Load() {
		<-loop.done
	}
}

func (p *TaskPoller) run(ctx context.Context, taskID string, emit func(models.Event), loop *pollLoop) {
	const funcName = "TaskPoller.run"
	defer close(loop.done)
	defer p.release(loop)

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	progress := 0
	polls := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if ctx.Err() != nil {
			return
		}
		polls++

		status, err := p.repository.GetTaskStatus(ctx, taskID)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Debug("status poll failed, skipping tick",
				zap.String("function", funcName),
				zap.String("task_id", taskID),
				zap.Int("poll", polls),
				zap.Error(err),
			)
		} else {
			switch status.Status {
			case models.StatusCompleted:
				ticker.Stop()
				p.complete(ctx, loop, taskID, emit)
				return
			case models.StatusFailed:
				p.fail(ctx, loop, taskID, status.Error, emit)
				return
			default:
				progress = NextProgress(progress, status.Status)
				p.emit(ctx, loop, emit, models.Event{
					Kind:     models.EventProgress,
					TaskID:   taskID,
					Status:   status.Status,
					Progress: progress,
				})
			}
		}

		if p.cfg.MaxPolls > 0 && polls >= p.cfg.MaxPolls {
			logger.Warn("polling limit reached",
				zap.String("function", funcName),
				zap.String("task_id", taskID),
				zap.Int("polls", polls),
			)
			p.emit(ctx, loop, emit, models.Event{
				Kind:    models.EventFailed,
				TaskID:  taskID,
				Message: PollTimeoutMessage,
				Err:     fmt.Errorf("%w after %d polls", errs.ErrPollTimeout, polls),
			})
			return
		}
	}
}

func (p *TaskPoller) complete(ctx context.Context, loop *pollLoop, taskID string, emit func(models.Event)) {
	const funcName = "TaskPoller.complete"
	p.emit(ctx, loop, emit, models.Event{
		Kind:     models.EventProgress,
		TaskID:   taskID,
		Status:   models.StatusCompleted,
		Progress: NextProgress(0, models.StatusCompleted),
	})

	result, err := p.repository.GetTaskResult(ctx, taskID)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		logger.Error("failed to fetch result",
			zap.String("function", funcName),
			zap.String("task_id", taskID),
			zap.Error(err),
		)
		p.emit(ctx, loop, emit, models.Event{
			Kind:    models.EventFailed,
			TaskID:  taskID,
			Status:  models.StatusCompleted,
			Message: ResultFetchErrorMessage,
			Err:     fmt.Errorf("%w: %v", errs.ErrResultFetch, err),
		})
		return
	}

	if p.cfg.CompletionDelay > 0 {
		timer := time.NewTimer(p.cfg.CompletionDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}

	logger.Info("task completed",
		zap.String("function", funcName),
		zap.String("task_id", taskID),
	)
	p.emit(ctx, loop, emit, models.Event{
		Kind:     models.EventCompleted,
		TaskID:   taskID,
		Status:   models.StatusCompleted,
		Progress: ProgressComplete,
		Result:   result,
	})
}

func (p *TaskPoller) fail(ctx context.Context, loop *pollLoop, taskID, message string, emit func(models.Event)) {
	const funcName = "TaskPoller.fail"
	if message == "" {
		message = UnknownErrorMessage
	}

	logger.Warn("task failed",
		zap.String("function", funcName),
		zap.String("task_id", taskID),
		zap.String("error", message),
	)
	p.emit(ctx, loop, emit, models.Event{
		Kind:    models.EventFailed,
		TaskID:  taskID,
		Status:  models.StatusFailed,
		Message: message,
		Err:     fmt.Errorf("%w: %s", errs.ErrTaskFailed, message),
	})
}

func (p *TaskPoller) emit(ctx context.Context, loop *pollLoop, emit func(models.Event), event models.Event) {
	loop.emitting.Store(true)
	defer loop.emitting.Store(false)

	if ctx.Err() != nil {
		return
	}
	emit(event)
}

// release clears the registration if the loop ended on its own.
func (p *TaskPoller) release(loop *pollLoop) {
	loop.cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == loop {
		p.current = nil
	}
}
