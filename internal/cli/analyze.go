package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/supchaser/video_analysis/internal/app/delivery"
	"github.com/supchaser/video_analysis/internal/app/models"
	"github.com/supchaser/video_analysis/internal/app/repository"
	"github.com/supchaser/video_analysis/internal/app/usecase"
	"github.com/supchaser/video_analysis/internal/utils/logger"
	"go.uber.org/zap"
)

func newAnalyzeCmd() *cobra.Command {
	var saveDir string

	cmd := &cobra.Command{
		Use:   "analyze FILE...",
		Short: "Analyze one or more match videos",
		Long: `Uploads each video in turn, reports progress until the analysis finishes and prints the coaching report.
A summary table is printed at the end; the command fails if any video was not analyzed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromContext(cmd.Context())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			repo, err := repository.CreateAnalysisRepository(cfg.APIBaseURL, cfg.HTTPTimeout)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			events := delivery.CreateChannelNotifier(1)
			poller := usecase.CreateTaskPoller(repo, usecase.PollerConfig{
				Interval:        cfg.PollInterval,
				CompletionDelay: cfg.CompletionDelay,
				MaxPolls:        cfg.MaxPolls,
			})
			ctrl := usecase.CreateViewController(
				usecase.CreateUploadUsecase(repo),
				poller,
				delivery.Notifiers(delivery.CreateConsoleNotifier(out), delivery.CreateLogNotifier(), events),
			)
			defer ctrl.Close()

			r := &batchRunner{
				out:     out,
				ctrl:    ctrl,
				events:  events.Events(),
				videos:  usecase.CreateVideoUsecase(repo),
				saveDir: saveDir,
			}
			return r.run(ctx, args)
		},
	}

	flags := cmd.Flags()
	flags.Duration("poll-interval", 0, "status poll interval (env POLL_INTERVAL, default 1s)")
	flags.Duration("completion-delay", 0, "pause at 100% before showing the report (env COMPLETION_DELAY, default 500ms)")
	flags.Int("max-polls", 0, "give up after this many polls, 0 for no limit (env MAX_POLLS, default 1800)")
	flags.Duration("http-timeout", 0, "timeout of each request to the service (env HTTP_TIMEOUT, default 5m)")
	flags.StringVar(&saveDir, "save-video", "", "download the annotated video of each completed analysis into this directory")

	return cmd
}

type batchRunner struct {
	out     io.Writer
	ctrl    *usecase.ViewController
	events  <-chan models.Event
	videos  *usecase.VideoUsecase
	saveDir string
}

func (r *batchRunner) run(ctx context.Context, files []string) error {
	const funcName = "batchRunner.run"

	summaries := make([]models.RunSummary, 0, len(files))
	failed := 0
	for _, file := range files {
		if ctx.Err() != nil {
			break
		}

		summary := r.analyzeFile(ctx, file)
		summaries = append(summaries, summary)
		if summary.Outcome != models.EventCompleted {
			failed++
		}
	}

	fmt.Fprintln(r.out)
	delivery.RenderSummary(r.out, summaries)

	logger.Info("batch finished",
		zap.String("function", funcName),
		zap.Int("files", len(files)),
		zap.Int("analyzed", len(summaries)),
		zap.Int("failed", failed),
	)

	if ctx.Err() != nil {
		return fmt.Errorf("interrupted after %d of %d files", len(summaries), len(files))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}

// analyzeFile drives one Upload -> Processing -> Result cycle and leaves the
// controller back in Upload.
func (r *batchRunner) analyzeFile(ctx context.Context, file string) models.RunSummary {
	const funcName = "batchRunner.analyzeFile"
	summary := models.RunSummary{File: file}

	taskID, err := r.ctrl.Submit(ctx, file)
	if err != nil {
		r.drain()
		summary.Outcome = models.EventUploadFailed
		summary.Detail = err.Error()
		return summary
	}
	summary.TaskID = taskID

	select {
	case event := <-r.events:
		summary.Outcome = event.Kind
		switch event.Kind {
		case models.EventCompleted:
			r.present(ctx, taskID, event.Result, &summary)
			if err := r.ctrl.Reset(); err != nil {
				logger.Error("failed to reset view",
					zap.String("function", funcName),
					zap.String("task_id", taskID),
					zap.Error(err),
				)
			}
		case models.EventFailed:
			summary.Detail = event.Message
		}
	case <-ctx.Done():
		r.ctrl.Close()
		r.drain()
		summary.Detail = "cancelled"
	}

	return summary
}

func (r *batchRunner) present(ctx context.Context, taskID string, result *models.Result, summary *models.RunSummary) {
	fmt.Fprintln(r.out)
	delivery.RenderResult(r.out, taskID, result)

	if r.saveDir == "" {
		return
	}

	path, err := r.videos.Save(ctx, taskID, r.saveDir)
	if err != nil {
		fmt.Fprintf(r.out, "Video not saved: %v\n", err)
		summary.Detail = "video not saved"
		return
	}
	fmt.Fprintf(r.out, "Video saved to %s\n", path)
	summary.Detail = path
}

// drain discards a terminal event left over from an abandoned attempt.
func (r *batchRunner) drain() {
	select {
	case <-r.events:
	default:
	}
}
