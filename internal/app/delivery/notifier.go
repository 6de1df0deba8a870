package delivery

import (
	"fmt"
	"io"
	"sync"

	"github.com/supchaser/video_analysis/internal/app"
	"github.com/supchaser/video_analysis/internal/app/models"
	"github.com/supchaser/video_analysis/internal/utils/logger"
	"go.uber.org/zap"
)

// ConsoleNotifier renders view events on a terminal.
type ConsoleNotifier struct {
	mu  sync.Mutex
	out io.Writer
	// inline is true while a progress line is being redrawn in place.
	inline bool
}

func CreateConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

func (n *ConsoleNotifier) Notify(event models.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()

	switch event.Kind {
	case models.EventStarted:
		fmt.Fprintf(n.out, "Analyzing match (ID: %s)\n", ShortID(event.TaskID))
	case models.EventProgress:
		fmt.Fprintf(n.out, "\r  %3d%% %s", event.Progress, mutedColor.Sprint(event.Status))
		n.inline = true
	case models.EventCompleted:
		n.endLine()
		successColor.Fprintln(n.out, "Analysis complete.")
	case models.EventFailed:
		n.endLine()
		failureColor.Fprintf(n.out, "Analysis failed: %s\n", event.Message)
	case models.EventUploadFailed:
		n.endLine()
		failureColor.Fprintln(n.out, event.Message)
	case models.EventReset:
		n.endLine()
	}
}

func (n *ConsoleNotifier) endLine() {
	if n.inline {
		fmt.Fprintln(n.out)
		n.inline = false
	}
}

// LogNotifier writes view events to the structured log.
type LogNotifier struct{}

func CreateLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (LogNotifier) Notify(event models.Event) {
	const funcName = "LogNotifier.Notify"
	fields := []zap.Field{
		zap.String("function", funcName),
		zap.String("kind", string(event.Kind)),
		zap.String("task_id", event.TaskID),
		zap.String("state", string(event.State)),
	}

	switch event.Kind {
	case models.EventProgress:
		logger.Debug("analysis progress", append(fields,
			zap.String("status", string(event.Status)),
			zap.Int("progress", event.Progress),
		)...)
	case models.EventFailed, models.EventUploadFailed:
		logger.Warn(event.Message, append(fields, zap.Error(event.Err))...)
	default:
		logger.Info("view transition", fields...)
	}
}

type multiNotifier []app.Notifier

// Notifiers fans an event out to every notifier in order.
func Notifiers(notifiers ...app.Notifier) app.Notifier {
	return multiNotifier(notifiers)
}

func (m multiNotifier) Notify(event models.Event) {
	for _, n := range m {
		n.Notify(event)
	}
}

// ChannelNotifier forwards terminal events to a channel so a caller can
// wait for the outcome of a task attempt.
type ChannelNotifier struct {
	events chan models.Event
}

func CreateChannelNotifier(buffer int) *ChannelNotifier {
	return &ChannelNotifier{events: make(chan models.Event, buffer)}
}

func (n *ChannelNotifier) Notify(event models.Event) {
	if event.Kind.IsTerminal() {
		n.events <- event
	}
}

func (n *ChannelNotifier) Events() <-chan models.Event {
	return n.events
}
