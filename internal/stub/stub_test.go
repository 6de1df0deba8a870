package stub

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supchaser/video_analysis/internal/app/models"
	"github.com/supchaser/video_analysis/internal/utils/errs"
	"github.com/supchaser/video_analysis/internal/utils/logger"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

func newTestServer(t *testing.T, processingTime time.Duration) (*httptest.Server, *TaskStore) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	store := CreateTaskStore()
	handler := CreateAnalysisHandler(ctx, store, CreateProcessor(store, processingTime), t.TempDir())
	server := httptest.NewServer(NewRouter(handler))
	t.Cleanup(server.Close)

	return server, store
}

func upload(t *testing.T, baseURL, fileName string, content []byte) *http.Response {
	t.Helper()
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, form.Close())

	resp, err := http.Post(baseURL+"/api/analyze", form.FormDataContentType(), &body)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func waitStatus(t *testing.T, baseURL, taskID string, want models.TaskStatus) statusResponse {
	t.Helper()
	var last statusResponse
	require.Eventually(t, func() bool {
		resp, err := http.Get(baseURL + "/api/status/" + taskID)
		if err != nil {
			return false
		}
		decode(t, resp, &last)
		return last.Status == want
	}, 5*time.Second, 5*time.Millisecond)
	return last
}

func TestTaskStore_Lifecycle(t *testing.T) {
	store := CreateTaskStore()
	ctx := context.Background()

	id := store.NewTaskID()
	assert.NotEmpty(t, id)
	assert.NotEqual(t, id, store.NewTaskID())

	created, err := store.CreateTask(ctx, id, "match.mp4", "/tmp/match.mp4")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.WithinDuration(t, time.Now(), created.CreatedAt, time.Second)

	require.NoError(t, store.UpdateTaskStatus(ctx, id, models.StatusProcessing))
	require.NoError(t, store.CompleteTask(ctx, id, "# Report"))

	task, err := store.GetTask(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, task.Status)
	assert.Equal(t, "# Report", task.ReportMarkdown)

	// Returned tasks are copies.
	task.Status = models.StatusFailed
	again, err := store.GetTask(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, again.Status)
}

func TestTaskStore_NotFound(t *testing.T) {
	store := CreateTaskStore()
	ctx := context.Background()

	_, err := store.GetTask(ctx, "missing")
	assert.ErrorIs(t, err, errs.ErrTaskNotFound)
	assert.ErrorIs(t, store.FailTask(ctx, "missing", "x"), errs.ErrTaskNotFound)
}

func TestProcessor_EmptyVideoFails(t *testing.T) {
	store := CreateTaskStore()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "empty.mp4")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	id := store.NewTaskID()
	_, err := store.CreateTask(ctx, id, "empty.mp4", path)
	require.NoError(t, err)

	CreateProcessor(store, 0).Process(ctx, id)

	task, err := store.GetTask(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, task.Status)
	assert.Equal(t, CorruptFileMessage, task.Error)
}

func TestProcessor_CancelledLeavesTaskPending(t *testing.T) {
	store := CreateTaskStore()
	id := store.NewTaskID()
	_, err := store.CreateTask(context.Background(), id, "a.mp4", "/nonexistent")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	CreateProcessor(store, time.Hour).Process(ctx, id)

	task, err := store.GetTask(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, task.Status)
}

func TestAnalysisHandler_FullLifecycle(t *testing.T) {
	server, _ := newTestServer(t, 40*time.Millisecond)

	resp := upload(t, server.URL, "match.mp4", []byte("video bytes"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var created models.UploadResponse
	decode(t, resp, &created)
	require.NotEmpty(t, created.TaskID)
	assert.Equal(t, models.StatusPending, created.Status)

	resp, err := http.Get(server.URL + "/api/results/" + created.TaskID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	resp.Body.Close()

	status := waitStatus(t, server.URL, created.TaskID, models.StatusCompleted)
	assert.Equal(t, "match.mp4", status.FileName)

	resp, err = http.Get(server.URL + "/api/results/" + created.TaskID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result models.ResultResponse
	decode(t, resp, &result)
	assert.Contains(t, result.ReportMarkdown, "# Coaching Report")
	assert.Contains(t, result.ReportMarkdown, "match.mp4")

	resp, err = http.Get(server.URL + "/api/video/" + created.TaskID)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "video/mp4", resp.Header.Get("Content-Type"))
	video, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "video bytes", string(video))
}

func TestAnalysisHandler_EmptyUploadFails(t *testing.T) {
	server, _ := newTestServer(t, 0)

	resp := upload(t, server.URL, "empty.mp4", nil)
	var created models.UploadResponse
	decode(t, resp, &created)

	status := waitStatus(t, server.URL, created.TaskID, models.StatusFailed)
	assert.Equal(t, CorruptFileMessage, status.Error)
}

func TestAnalysisHandler_Errors(t *testing.T) {
	server, _ := newTestServer(t, 0)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "StatusNotFound",
			method:         http.MethodGet,
			path:           "/api/status/missing",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "ResultsNotFound",
			method:         http.MethodGet,
			path:           "/api/results/missing",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "VideoNotFound",
			method:         http.MethodGet,
			path:           "/api/video/missing",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "AnalyzeWithoutMultipart",
			method:         http.MethodPost,
			path:           "/api/analyze",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "AnalyzeWrongMethod",
			method:         http.MethodGet,
			path:           "/api/analyze",
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, server.URL+tt.path, nil)
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestAnalysisHandler_MissingFileField(t *testing.T) {
	server, _ := newTestServer(t, 0)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	require.NoError(t, form.WriteField("other", "value"))
	require.NoError(t, form.Close())

	resp, err := http.Post(server.URL+"/api/analyze", form.FormDataContentType(), &body)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, "127.0.0.1:0", http.NotFoundHandler())
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
