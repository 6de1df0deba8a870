package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/supchaser/video_analysis/internal/stub"
	"github.com/supchaser/video_analysis/internal/utils/logger"
	"go.uber.org/zap"
)

func newStubCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stub",
		Short: "Run a local stand-in for the analysis service",
		Long: `Serves the analysis API from memory. Uploaded videos are stored on disk and every task completes
with a generated report after the processing time; empty uploads fail as corrupt files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			const funcName = "stubCmd.RunE"
			cfg, err := configFromContext(cmd.Context())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := os.MkdirAll(cfg.StorageDir, 0755); err != nil {
				logger.Error("failed to create storage directory",
					zap.String("function", funcName),
					zap.Error(err),
				)
				return fmt.Errorf("create storage directory: %w", err)
			}

			store := stub.CreateTaskStore()
			handler := stub.CreateAnalysisHandler(ctx, store, stub.CreateProcessor(store, cfg.ProcessingTime), cfg.StorageDir)

			logger.Info("stub service configured",
				zap.String("function", funcName),
				zap.String("storage_dir", cfg.StorageDir),
				zap.Duration("processing_time", cfg.ProcessingTime),
			)

			return stub.Run(ctx, ":"+cfg.ServerPort, stub.NewRouter(handler))
		},
	}

	flags := cmd.Flags()
	flags.String("port", "", "listen port (env SERVER_PORT, default 8000)")
	flags.String("storage-dir", "", "directory for uploaded videos (env STORAGE_DIR, default ./storage)")
	flags.Duration("processing-time", 0, "simulated analysis time per task (env PROCESSING_TIME, default 10s)")

	return cmd
}
