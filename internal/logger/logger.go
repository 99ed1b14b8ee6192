// Package logger provides structured logging for gsread using zap.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dbsmedya/gsread/internal/config"
)

// Logger wraps zap.SugaredLogger with context methods.
type Logger struct {
	*zap.SugaredLogger
	base *zap.Logger
}

// New creates a new Logger from configuration.
func New(cfg *config.LoggingConfig) (*Logger, error) {
	return NewWithErrWriter(cfg, os.Stderr)
}

// NewWithErrWriter creates a Logger whose "stderr" output goes to errW.
// Commands pass their own error writer so logs follow cmd.SetErr.
func NewWithErrWriter(cfg *config.LoggingConfig, errW io.Writer) (*Logger, error) {
	level := parseLevel(cfg.Level)
	encoder := buildEncoder(cfg.Format)
	writers := buildWriters(cfg.Output, errW)

	core := zapcore.NewCore(encoder, writers, level)
	baseLogger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	return FromZap(baseLogger), nil
}

// NewNop returns a Logger that discards everything.
func NewNop() *Logger {
	return FromZap(zap.NewNop())
}

// FromZap wraps an existing zap.Logger.
func FromZap(base *zap.Logger) *Logger {
	return &Logger{
		SugaredLogger: base.Sugar(),
		base:          base,
	}
}

// parseLevel converts string level to zapcore.Level.
func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info", "":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// buildEncoder creates the appropriate encoder based on format.
func buildEncoder(format string) zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	if format == "json" {
		return zapcore.NewJSONEncoder(encoderConfig)
	}

	// Text format with colored output
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}

// buildWriters creates the output writers based on configuration.
// Report output owns stdout, so logs default to errW.
func buildWriters(output string, errW io.Writer) zapcore.WriteSyncer {
	switch output {
	case "stderr", "":
		return zapcore.AddSync(errW)
	case "stdout":
		return zapcore.AddSync(os.Stdout)
	default:
		file, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return zapcore.AddSync(errW)
		}
		return zapcore.AddSync(file)
	}
}

// WithCollection returns a Logger with remote collection context.
func (l *Logger) WithCollection(collection string) *Logger {
	return &Logger{
		SugaredLogger: l.SugaredLogger.With("collection", collection),
		base:          l.base,
	}
}

// WithOffset returns a Logger with pagination offset context.
func (l *Logger) WithOffset(offset int) *Logger {
	return &Logger{
		SugaredLogger: l.SugaredLogger.With("offset", offset),
		base:          l.base,
	}
}

// WithCompany returns a Logger with company Gsid context.
func (l *Logger) WithCompany(gsid string) *Logger {
	return &Logger{
		SugaredLogger: l.SugaredLogger.With("company", gsid),
		base:          l.base,
	}
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.base.Sync()
}
