package logger

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	ModeDev  = "dev"
	ModeProd = "prod"
)

// Init replaces the global zap logger according to mode ("dev" or "prod").
func Init(mode string) error {
	var (
		l   *zap.Logger
		err error
	)

	switch mode {
	case ModeDev:
		l, err = zap.NewDevelopment()
	case ModeProd:
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stderr"}
		l, err = cfg.Build()
	default:
		return fmt.Errorf("unknown log mode %q", mode)
	}
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	zap.ReplaceGlobals(l)
	return nil
}

// InitTestLogger silences logging in tests.
func InitTestLogger() {
	zap.ReplaceGlobals(zap.NewNop())
}

func Sync() {
	_ = zap.L().Sync()
}

func Debug(msg string, fields ...zap.Field) {
	zap.L().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	zap.L().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	zap.L().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	zap.L().Error(msg, fields...)
}
