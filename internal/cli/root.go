package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/supchaser/video_analysis/internal/config"
	"github.com/supchaser/video_analysis/internal/utils/logger"
	"go.uber.org/zap"
)

type contextKey string

const configKey contextKey = "config"

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "analyzer",
		Short:         "Upload match videos and follow their analysis",
		Long:          `analyzer submits match videos to the analysis service, tracks each task until it finishes and prints the coaching report.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}

			cfg, err := config.LoadConfig(envFile, cmd.Flags())
			if err != nil {
				return fmt.Errorf("error initializing config: %w", err)
			}

			if err := logger.Init(cfg.LogMode); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			logger.Debug("configuration loaded",
				zap.String("function", "rootCmd.PersistentPreRunE"),
				zap.String("command", cmd.Name()),
				zap.String("api_base_url", cfg.APIBaseURL),
				zap.Duration("poll_interval", cfg.PollInterval),
				zap.Int("max_polls", cfg.MaxPolls),
			)

			cmd.SetContext(context.WithValue(cmd.Context(), configKey, cfg))
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&envFile, "env-file", ".env", "optional dotenv file with configuration")
	flags.String("log-mode", "", "log mode: dev or prod (env LOG_MODE, default prod)")
	flags.String("api-url", "", "analysis service base URL (env API_BASE_URL, default http://localhost:8000)")

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newStubCmd())

	return root
}

func configFromContext(ctx context.Context) (*config.Config, error) {
	cfg, ok := ctx.Value(configKey).(*config.Config)
	if !ok || cfg == nil {
		return nil, fmt.Errorf("configuration not found in context")
	}
	return cfg, nil
}

func Execute() {
	defer logger.Sync()

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		logger.Sync()
		os.Exit(1)
	}
}
