package models

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusProcessing TaskStatus = "processing"
	StatusCompleted  TaskStatus = "completed"
	StatusFailed     TaskStatus = "failed"
)

// IsTerminal reports whether no further polling should happen.
func (s TaskStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

type ViewState string

const (
	ViewUpload     ViewState = "upload"
	ViewProcessing ViewState = "processing"
	ViewResult     ViewState = "result"
)

// Result is the payload fetched once a task has completed.
type Result struct {
	ReportMarkdown string
	VideoURL       string
}

// Snapshot is a copy of the controller state.
type Snapshot struct {
	State    ViewState
	TaskID   string
	Progress int
	Result   *Result
}

type EventKind string

const (
	EventStarted      EventKind = "started"
	EventProgress     EventKind = "progress"
	EventCompleted    EventKind = "completed"
	EventFailed       EventKind = "failed"
	EventUploadFailed EventKind = "upload_failed"
	EventReset        EventKind = "reset"
)

// IsTerminal reports whether the event ends a task attempt.
func (k EventKind) IsTerminal() bool {
	return k == EventCompleted || k == EventFailed || k == EventUploadFailed
}

// Event is emitted by the poller and re-published by the view controller.
// Message is the user-facing text for failures.
type Event struct {
	Kind     EventKind
	TaskID   string
	State    ViewState
	Status   TaskStatus
	Progress int
	Result   *Result
	Message  string
	Err      error
}

// RunSummary describes the outcome of one analyzed file.
type RunSummary struct {
	File    string
	TaskID  string
	Outcome EventKind
	Detail  string
}

type UploadResponse struct {
	TaskID string     `json:"task_id"`
	Status TaskStatus `json:"status,omitempty"`
}

type StatusResponse struct {
	Status TaskStatus `json:"status"`
	Error  string     `json:"error,omitempty"`
}

type ResultResponse struct {
	ReportMarkdown string `json:"report_markdown"`
	Error          string `json:"error,omitempty"`
}
