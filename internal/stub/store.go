package stub

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/supchaser/video_analysis/internal/app/models"
	"github.com/supchaser/video_analysis/internal/utils/errs"
	"github.com/supchaser/video_analysis/internal/utils/logger"
	"go.uber.org/zap"
)

type Task struct {
	ID             string
	Status         models.TaskStatus
	FileName       string
	VideoPath      string
	ReportMarkdown string
	Error          string
	CreatedAt      time.Time
}

// TaskStore keeps analysis tasks in memory for the lifetime of the server.
type TaskStore struct {
	tasks map[string]*Task
	mu    sync.Mutex
}

func CreateTaskStore() *TaskStore {
	return &TaskStore{
		tasks: make(map[string]*Task),
	}
}

// NewTaskID returns the id a task will be stored under.
func (s *TaskStore) NewTaskID() string {
	return uuid.New().String()
}

func (s *TaskStore) CreateTask(ctx context.Context, id, fileName, videoPath string) (*Task, error) {
	const funcName = "TaskStore.CreateTask"

	s.mu.Lock()
	defer s.mu.Unlock()

	task := &Task{
		ID:        id,
		Status:    models.StatusPending,
		FileName:  fileName,
		VideoPath: videoPath,
		CreatedAt: time.Now(),
	}
	s.tasks[id] = task

	logger.Info("task created",
		zap.String("function", funcName),
		zap.String("task_id", id),
		zap.String("file_name", fileName),
	)

	copied := *task
	return &copied, nil
}

func (s *TaskStore) GetTask(ctx context.Context, id string) (*Task, error) {
	const funcName = "TaskStore.GetTask"

	s.mu.Lock()
	defer s.mu.Unlock()

	task, exists := s.tasks[id]
	if !exists {
		logger.Warn("task not found",
			zap.String("function", funcName),
			zap.String("task_id", id),
		)
		return nil, errs.ErrTaskNotFound
	}

	copied := *task
	return &copied, nil
}

func (s *TaskStore) UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus) error {
	return s.update(id, func(task *Task) {
		task.Status = status
	})
}

func (s *TaskStore) CompleteTask(ctx context.Context, id, report string) error {
	return s.update(id, func(task *Task) {
		task.Status = models.StatusCompleted
		task.ReportMarkdown = report
	})
}

func (s *TaskStore) FailTask(ctx context.Context, id, message string) error {
	return s.update(id, func(task *Task) {
		task.Status = models.StatusFailed
		task.Error = message
	})
}

func (s *TaskStore) update(id string, apply func(*Task)) error {
	const funcName = "TaskStore.update"

	s.mu.Lock()
	defer s.mu.Unlock()

	task, exists := s.tasks[id]
	if !exists {
		logger.Warn("task not found when updating",
			zap.String("function", funcName),
			zap.String("task_id", id),
		)
		return errs.ErrTaskNotFound
	}

	oldStatus := task.Status
	apply(task)

	logger.Info("task updated",
		zap.String("function", funcName),
		zap.String("task_id", id),
		zap.String("old_status", string(oldStatus)),
		zap.String("new_status", string(task.Status)),
	)

	return nil
}
