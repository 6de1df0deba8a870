package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/supchaser/video_analysis/internal/utils/logger"
)

const (
	KeyLogMode         = "LOG_MODE"
	KeyAPIBaseURL      = "API_BASE_URL"
	KeyHTTPTimeout     = "HTTP_TIMEOUT"
	KeyPollInterval    = "POLL_INTERVAL"
	KeyCompletionDelay = "COMPLETION_DELAY"
	KeyMaxPolls        = "MAX_POLLS"
	KeyServerPort      = "SERVER_PORT"
	KeyStorageDir      = "STORAGE_DIR"
	KeyProcessingTime  = "PROCESSING_TIME"
)

type Config struct {
	LogMode         string
	APIBaseURL      string
	HTTPTimeout     time.Duration
	PollInterval    time.Duration
	CompletionDelay time.Duration
	MaxPolls        int
	ServerPort      string
	StorageDir      string
	ProcessingTime  time.Duration
}

type setting struct {
	key      string
	flag     string
	fallback any
}

var settings = []setting{
	{KeyLogMode, "log-mode", logger.ModeProd},
	{KeyAPIBaseURL, "api-url", "http://localhost:8000"},
	{KeyHTTPTimeout, "http-timeout", 5 * time.Minute},
	{KeyPollInterval, "poll-interval", time.Second},
	{KeyCompletionDelay, "completion-delay", 500 * time.Millisecond},
	{KeyMaxPolls, "max-polls", 1800},
	{KeyServerPort, "port", "8000"},
	{KeyStorageDir, "storage-dir", "./storage"},
	{KeyProcessingTime, "processing-time", 10 * time.Second},
}

// LoadConfig resolves every setting from flags, the environment (optionally
// seeded from envPath) and defaults, in that order of precedence. Flags
// missing from the set are skipped.
func LoadConfig(envPath string, flags *pflag.FlagSet) (*Config, error) {
	if err := loadEnvFile(envPath); err != nil {
		return nil, fmt.Errorf("load configuration file: %w", err)
	}

	v := viper.New()
	for _, s := range settings {
		v.SetDefault(s.key, s.fallback)
		if err := v.BindEnv(s.key, s.key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", s.key, err)
		}
		if flags == nil {
			continue
		}
		if flag := flags.Lookup(s.flag); flag != nil {
			if err := v.BindPFlag(s.key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", s.flag, err)
			}
		}
	}

	cfg := &Config{
		LogMode:         v.GetString(KeyLogMode),
		APIBaseURL:      v.GetString(KeyAPIBaseURL),
		HTTPTimeout:     v.GetDuration(KeyHTTPTimeout),
		PollInterval:    v.GetDuration(KeyPollInterval),
		CompletionDelay: v.GetDuration(KeyCompletionDelay),
		MaxPolls:        v.GetInt(KeyMaxPolls),
		ServerPort:      v.GetString(KeyServerPort),
		StorageDir:      v.GetString(KeyStorageDir),
		ProcessingTime:  v.GetDuration(KeyProcessingTime),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	return cfg, nil
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	return godotenv.Load(path)
}

func validateConfig(cfg *Config) error {
	var problems []error

	if cfg.LogMode != logger.ModeDev && cfg.LogMode != logger.ModeProd {
		problems = append(problems, fmt.Errorf("%s must be %q or %q, got %q", KeyLogMode, logger.ModeDev, logger.ModeProd, cfg.LogMode))
	}

	if u, err := url.Parse(cfg.APIBaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		problems = append(problems, fmt.Errorf("%s must be an http(s) URL, got %q", KeyAPIBaseURL, cfg.APIBaseURL))
	}

	if cfg.HTTPTimeout <= 0 {
		problems = append(problems, fmt.Errorf("%s must be positive", KeyHTTPTimeout))
	}
	if cfg.PollInterval <= 0 {
		problems = append(problems, fmt.Errorf("%s must be positive", KeyPollInterval))
	}
	if cfg.CompletionDelay < 0 {
		problems = append(problems, fmt.Errorf("%s must not be negative", KeyCompletionDelay))
	}
	if cfg.MaxPolls < 0 {
		problems = append(problems, fmt.Errorf("%s must not be negative", KeyMaxPolls))
	}
	if cfg.ProcessingTime < 0 {
		problems = append(problems, fmt.Errorf("%s must not be negative", KeyProcessingTime))
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Errorf("%s must be a port number, got %q", KeyServerPort, cfg.ServerPort))
	}

	if cfg.StorageDir == "" {
		problems = append(problems, fmt.Errorf("%s must not be empty", KeyStorageDir))
	}

	return errors.Join(problems...)
}
