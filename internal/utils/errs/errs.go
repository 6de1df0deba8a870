package errs

import "errors"

var (
	ErrUploadFailed      = errors.New("upload failed")
	ErrMissingFile       = errors.New("no video file provided")
	ErrTaskNotFound      = errors.New("task not found")
	ErrTaskFailed        = errors.New("analysis failed")
	ErrResultFetch       = errors.New("failed to fetch analysis result")
	ErrResultNotReady    = errors.New("analysis result not ready")
	ErrPollTimeout       = errors.New("analysis timed out")
	ErrPollerActive      = errors.New("poller already running")
	ErrInvalidTransition = errors.New("invalid view transition")
)
