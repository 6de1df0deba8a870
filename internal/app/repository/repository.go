package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/supchaser/video_analysis/internal/app/models"
	"github.com/supchaser/video_analysis/internal/utils/errs"
	"github.com/supchaser/video_analysis/internal/utils/logger"
	"go.uber.org/zap"
)

const maxErrorBody = 4 << 10

// AnalysisRepository talks to the analysis service over HTTP.
type AnalysisRepository struct {
	baseURL *url.URL
	client  *http.Client
}

func CreateAnalysisRepository(baseURL string, timeout time.Duration) (*AnalysisRepository, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("unsupported base url scheme %q", base.Scheme)
	}

	return &AnalysisRepository{
		baseURL: base,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

func (r *AnalysisRepository) UploadVideo(ctx context.Context, fileName string, video io.Reader) (string, error) {
	const funcName = "AnalysisRepository.UploadVideo"
	logger.Debug("uploading video",
		zap.String("function", funcName),
		zap.String("file_name", fileName),
	)

	body, writer := io.Pipe()
	defer body.Close()
	form := multipart.NewWriter(writer)
	go func() {
		part, err := form.CreateFormFile("file", fileName)
		if err != nil {
			writer.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, video); err != nil {
			writer.CloseWithError(err)
			return
		}
		writer.CloseWithError(form.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.resolve("/api/analyze"), body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	var out models.UploadResponse
	if err := r.doJSON(req, &out); err != nil {
		logger.Warn("upload request failed",
			zap.String("function", funcName),
			zap.String("file_name", fileName),
			zap.Error(err),
		)
		return "", err
	}

	logger.Info("video uploaded",
		zap.String("function", funcName),
		zap.String("task_id", out.TaskID),
	)

	return out.TaskID, nil
}

func (r *AnalysisRepository) GetTaskStatus(ctx context.Context, taskID string) (*models.StatusResponse, error) {
	const funcName = "AnalysisRepository.GetTaskStatus"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.taskPath("/api/status/", taskID), nil)
	if err != nil {
		return nil, err
	}

	var out models.StatusResponse
	if err := r.doJSON(req, &out); err != nil {
		return nil, err
	}

	logger.Debug("task status received",
		zap.String("function", funcName),
		zap.String("task_id", taskID),
		zap.String("status", string(out.Status)),
	)

	return &out, nil
}

func (r *AnalysisRepository) GetTaskResult(ctx context.Context, taskID string) (*models.Result, error) {
	const funcName = "AnalysisRepository.GetTaskResult"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.taskPath("/api/results/", taskID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusAccepted {
		logger.Warn("result requested before completion",
			zap.String("function", funcName),
			zap.String("task_id", taskID),
		)
		return nil, errs.ErrResultNotReady
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var out models.ResultResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}

	if out.ReportMarkdown == "" {
		logger.Warn("result has no report",
			zap.String("function", funcName),
			zap.String("task_id", taskID),
			zap.String("error", out.Error),
		)
	}

	return &models.Result{
		ReportMarkdown: out.ReportMarkdown,
		VideoURL:       r.VideoURL(taskID),
	}, nil
}

func (r *AnalysisRepository) DownloadVideo(ctx context.Context, taskID string, dst io.Writer) (int64, error) {
	const funcName = "AnalysisRepository.DownloadVideo"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.VideoURL(taskID), nil)
	if err != nil {
		return 0, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return 0, err
	}

	n, err := io.Copy(dst, resp.Body)
	if err != nil {
		return n, fmt.Errorf("copy video: %w", err)
	}

	logger.Info("video downloaded",
		zap.String("function", funcName),
		zap.String("task_id", taskID),
		zap.Int64("bytes", n),
	)

	return n, nil
}

func (r *AnalysisRepository) VideoURL(taskID string) string {
	return r.taskPath("/api/video/", taskID)
}

func (r *AnalysisRepository) doJSON(req *http.Request, out any) error {
	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (r *AnalysisRepository) resolve(path string) string {
	return r.baseURL.ResolveReference(&url.URL{Path: path}).String()
}

// taskPath keeps the task id a single path segment.
func (r *AnalysisRepository) taskPath(prefix, taskID string) string {
	ref := &url.URL{
		Path:    prefix + taskID,
		RawPath: prefix + url.PathEscape(taskID),
	}
	return r.baseURL.ResolveReference(ref).String()
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode == http.StatusNotFound {
		return errs.ErrTaskNotFound
	}
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("http %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
