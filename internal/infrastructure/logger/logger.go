// Package logger builds the zap loggers used across the service and carries
// request scope (request, owner and user ids, trace context) through
// context.Context.
package logger

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const DefaultTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Config selects level, encoding and destination of the root logger.
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // json or console
	Output     string // stdout, stderr, or a file path
	TimeFormat string
}

// New builds the root logger. Unknown levels fall back to info and an empty
// format to json. A file output that cannot be opened is an error.
func New(cfg *Config) (*zap.Logger, error) {
	sink, err := openSink(cfg.Output)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(newEncoder(cfg), sink, parseLevel(cfg.Level))
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

func parseLevel(level string) zapcore.Level {
	if strings.EqualFold(level, "warning") {
		return zapcore.WarnLevel
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

func newEncoder(cfg *Config) zapcore.Encoder {
	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "time"
	ec.MessageKey = "msg"
	ec.EncodeTime = zapcore.TimeEncoderOfLayout(timeFormat)
	ec.EncodeDuration = zapcore.MillisDurationEncoder

	if strings.EqualFold(cfg.Format, "console") {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(ec)
	}
	return zapcore.NewJSONEncoder(ec)
}

func openSink(output string) (zapcore.WriteSyncer, error) {
	switch strings.ToLower(output) {
	case "", "stdout":
		return zapcore.Lock(os.Stdout), nil
	case "stderr":
		return zapcore.Lock(os.Stderr), nil
	}
	f, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log output %q: %w", output, err)
	}
	return zapcore.AddSync(f), nil
}

// Sync flushes buffered entries. Terminals and pipes reject fsync with
// EINVAL or ENOTTY; those errors are dropped.
func Sync(logger *zap.Logger) error {
	err := logger.Sync()
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}
