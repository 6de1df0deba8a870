package stub

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/supchaser/video_analysis/internal/app/models"
	"github.com/supchaser/video_analysis/internal/utils/errs"
	"github.com/supchaser/video_analysis/internal/utils/logger"
	"github.com/supchaser/video_analysis/internal/utils/responses"
	"go.uber.org/zap"
)

const maxUploadMemory = 32 << 20

type AnalysisHandler struct {
	store      *TaskStore
	processor  *Processor
	storageDir string
	// background is the context simulated analyses run under.
	background context.Context
}

func CreateAnalysisHandler(ctx context.Context, store *TaskStore, processor *Processor, storageDir string) *AnalysisHandler {
	return &AnalysisHandler{
		store:      store,
		processor:  processor,
		storageDir: storageDir,
		background: ctx,
	}
}

func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	const funcName = "AnalysisHandler.Analyze"
	logger.Debug("receiving upload", zap.String("function", funcName))

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		responses.ResponseErrorAndLog(w, fmt.Errorf("%w: %v", errs.ErrMissingFile, err), funcName)
		return
	}
	defer file.Close()

	taskID := h.store.NewTaskID()
	fileName := filepath.Base(header.Filename)
	videoPath := filepath.Join(h.storageDir, taskID+"_"+fileName)

	if err := saveUpload(videoPath, file); err != nil {
		logger.Error("failed to store upload",
			zap.String("function", funcName),
			zap.String("video_path", videoPath),
			zap.Error(err),
		)
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	task, err := h.store.CreateTask(r.Context(), taskID, fileName, videoPath)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	go h.processor.Process(h.background, task.ID)

	responses.DoJSONResponse(w, models.UploadResponse{
		TaskID: task.ID,
		Status: task.Status,
	}, http.StatusOK)
}

func (h *AnalysisHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	const funcName = "AnalysisHandler.GetStatus"

	task, err := h.store.GetTask(r.Context(), mux.Vars(r)["task_id"])
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, statusBody(task), http.StatusOK)
}

func (h *AnalysisHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	const funcName = "AnalysisHandler.GetResults"

	task, err := h.store.GetTask(r.Context(), mux.Vars(r)["task_id"])
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	if task.Status != models.StatusCompleted {
		logger.Warn("results requested before completion",
			zap.String("function", funcName),
			zap.String("task_id", task.ID),
			zap.String("status", string(task.Status)),
		)
		responses.DoJSONResponse(w, statusBody(task), http.StatusAccepted)
		return
	}

	if task.ReportMarkdown == "" {
		responses.DoJSONResponse(w, models.ResultResponse{Error: "Report file not found"}, http.StatusOK)
		return
	}

	responses.DoJSONResponse(w, models.ResultResponse{ReportMarkdown: task.ReportMarkdown}, http.StatusOK)
}

func (h *AnalysisHandler) GetVideo(w http.ResponseWriter, r *http.Request) {
	const funcName = "AnalysisHandler.GetVideo"

	task, err := h.store.GetTask(r.Context(), mux.Vars(r)["task_id"])
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	if _, err := os.Stat(task.VideoPath); errors.Is(err, os.ErrNotExist) {
		logger.Error("video file missing",
			zap.String("function", funcName),
			zap.String("task_id", task.ID),
			zap.String("path", task.VideoPath),
		)
		responses.DoBadResponseAndLog(w, http.StatusNotFound, "Video not found")
		return
	}

	w.Header().Set("Content-Type", "video/mp4")
	http.ServeFile(w, r, task.VideoPath)
}

type statusResponse struct {
	TaskID   string            `json:"task_id"`
	Status   models.TaskStatus `json:"status"`
	FileName string            `json:"filename"`
	Error    string            `json:"error,omitempty"`
}

func statusBody(task *Task) statusResponse {
	return statusResponse{
		TaskID:   task.ID,
		Status:   task.Status,
		FileName: task.FileName,
		Error:    task.Error,
	}
}

func saveUpload(path string, src io.Reader) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}

	return dst.Close()
}
