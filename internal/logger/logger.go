package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"puzzlekit/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a SugaredLogger for formatted logging.
type Logger struct {
	*zap.SugaredLogger
}

// InitLogger builds a Logger from the logging configuration. An empty
// level falls back to info. Output always goes to stderr so that stdout
// carries puzzle results only.
func InitLogger(cfg *config.LoggingConfig) (*Logger, error) {
	var zapConfig zap.Config

	switch cfg.LogLevel {
	case "debug":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "", "info":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	case "warn":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	case "error":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	default:
		return nil, fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	if cfg.LogFile != "" {
		logDir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		zapConfig.OutputPaths = []string{cfg.LogFile, "stderr"}
	} else {
		zapConfig.OutputPaths = []string{"stderr"}
	}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	zapLogger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return &Logger{SugaredLogger: zapLogger.Sugar()}, nil
}

// NewNop returns a Logger that discards everything.
func NewNop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// SyncLogger flushes any buffered log entries
func (l *Logger) SyncLogger() {
	if err := l.Sync(); err != nil {
		// stderr 在部分平台上不支持 fsync
		if pathErr, ok := err.(*os.PathError); ok && pathErr.Path == "/dev/stderr" {
			return
		}
		fmt.Fprintf(os.Stderr, "Failed to sync logger: %v\n", err)
	}
}
