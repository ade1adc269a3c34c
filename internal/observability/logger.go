// Package observability builds the zap loggers used by the CLI and viewer.
package observability

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/LISSConsulting/LISSTech.Gridwork/internal/config"
)

// ServiceName names the root logger.
const ServiceName = "gridwork"

// New builds a logger from cfg. Console output goes to console in the
// configured format; a nil console disables it, which the viewer uses so
// log lines do not tear the terminal. When cfg.File is set, JSON entries are
// also written to a rotated file. The returned closer releases the file.
func New(cfg config.LogConfig, console zapcore.WriteSyncer) (*zap.Logger, io.Closer, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, nil, fmt.Errorf("observability: log level %q: %w", cfg.Level, err)
	}

	var cores []zapcore.Core
	if console != nil {
		cores = append(cores, zapcore.NewCore(getEncoder(cfg.Format), console, level))
	}

	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		cores = append(cores, zapcore.NewCore(getEncoder("json"), zapcore.AddSync(rotator), level))
		closer = rotator
	}
	if len(cores) == 0 {
		return zap.NewNop(), closer, nil
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zap.ErrorLevel)).Named(ServiceName)
	return logger, closer, nil
}

// getEncoder returns a single-line console encoder for "console" and a JSON
// encoder otherwise.
func getEncoder(format string) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")

	if format == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderConfig.EncodeName = func(name string, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(name + ".")
		}
		return zapcore.NewConsoleEncoder(encoderConfig)
	}

	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(encoderConfig)
}

// Sync flushes logger, ignoring the errors terminals report for syncing
// stdout and stderr.
func Sync(logger *zap.Logger) error {
	err := logger.Sync()
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "/dev/stdout") || strings.Contains(msg, "/dev/stderr") ||
		strings.Contains(msg, "invalid argument") || strings.Contains(msg, "inappropriate ioctl") ||
		strings.Contains(msg, "operation not supported") {
		return nil
	}
	return err
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
