package responses

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supchaser/video_analysis/internal/utils/errs"
	"github.com/supchaser/video_analysis/internal/utils/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

func TestResponseErrorAndLog(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedDetail string
	}{
		{
			name:           "TaskNotFound",
			err:            errs.ErrTaskNotFound,
			expectedStatus: http.StatusNotFound,
			expectedDetail: "Task not found",
		},
		{
			name:           "WrappedMissingFile",
			err:            fmt.Errorf("%w: no such field", errs.ErrMissingFile),
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "file field is required",
		},
		{
			name:           "Unexpected",
			err:            errors.New("disk full"),
			expectedStatus: http.StatusInternalServerError,
			expectedDetail: "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ResponseErrorAndLog(w, tt.err, "TestResponseErrorAndLog")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var body BadResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedStatus, body.Status)
			assert.Equal(t, tt.expectedDetail, body.Detail)
		})
	}
}

func TestDoJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	DoJSONResponse(w, map[string]string{"task_id": "abc123"}, http.StatusAccepted)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"task_id":"abc123"}`, w.Body.String())
	assert.Equal(t, "20", w.Header().Get("Content-Length"))
}

func TestDoJSONResponse_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()
	DoJSONResponse(w, make(chan int), http.StatusOK)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestResponseErrorAndLog_LogsCaller(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(logger.InitTestLogger)

	ResponseErrorAndLog(httptest.NewRecorder(), errs.ErrTaskNotFound, "AnalysisHandler.GetStatus")
	ResponseErrorAndLog(httptest.NewRecorder(), errors.New("disk full"), "AnalysisHandler.Analyze")

	rejected := logs.FilterMessage("request rejected").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, zap.WarnLevel, rejected[0].Level)
	assert.Equal(t, "AnalysisHandler.GetStatus", rejected[0].ContextMap()["function"])

	failed := logs.FilterMessage("request failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zap.ErrorLevel, failed[0].Level)
	assert.Equal(t, "AnalysisHandler.Analyze", failed[0].ContextMap()["function"])
}
