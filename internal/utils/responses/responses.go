package responses

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/supchaser/video_analysis/internal/utils/errs"
	"github.com/supchaser/video_analysis/internal/utils/logger"
	"go.uber.org/zap"
)

type BadResponse struct {
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func DoBadResponseAndLog(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := BadResponse{
		Status: statusCode,
		Detail: message,
	}

	jsonResponse, err := json.Marshal(response)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	_, err = w.Write(jsonResponse)
	if err != nil {
		logger.Error("failed to write response",
			zap.String("function", "DoBadResponseAndLog"),
			zap.Error(err),
		)
		return
	}

	logger.Warn("Bad response",
		zap.Int("status", statusCode),
		zap.String("message", message),
	)
}

func DoJSONResponse(w http.ResponseWriter, responseData any, successStatusCode int) {
	body, err := json.Marshal(responseData)
	if err != nil {
		DoBadResponseAndLog(w, http.StatusInternalServerError, "internal error")
		logger.Error("failed to marshal response",
			zap.String("function", "DoJSONResponse"),
			zap.Error(err),
		)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(successStatusCode)

	if _, err := w.Write(body); err != nil {
		logger.Error("failed to write response",
			zap.String("function", "DoJSONResponse"),
			zap.Error(err),
		)
	}
}

// errorStatuses maps the errors the analysis API reports to a status and
// the detail shown to clients. Anything else is an internal error.
var errorStatuses = []struct {
	err    error
	status int
	detail string
}{
	{errs.ErrTaskNotFound, http.StatusNotFound, "Task not found"},
	{errs.ErrMissingFile, http.StatusBadRequest, "file field is required"},
}

func ResponseErrorAndLog(w http.ResponseWriter, err error, funcName string) {
	for _, m := range errorStatuses {
		if errors.Is(err, m.err) {
			DoBadResponseAndLog(w, m.status, m.detail)
			logger.Warn("request rejected",
				zap.String("function", funcName),
				zap.Error(err),
			)
			return
		}
	}

	DoBadResponseAndLog(w, http.StatusInternalServerError, "internal error")
	logger.Error("request failed",
		zap.String("function", funcName),
		zap.Error(err),
	)
}
