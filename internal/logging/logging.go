package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Level string
	// File receives JSON logs with rotation. When empty, logs are written to
	// Output in console format.
	File   string
	Output io.Writer
}

// New builds the application logger. The returned close function flushes
// buffered entries and releases the log file, if any.
func New(opts Options) (*zap.Logger, func() error, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var core zapcore.Core
	var rotator *lumberjack.Logger
	if opts.File != "" {
		rotator = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		core = zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(rotator), level)
	} else {
		output := opts.Output
		if output == nil {
			output = os.Stderr
		}
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		core = zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(output), level)
	}

	logger := zap.New(core)
	closeLog := func() error {
		// console Sync errors on a terminal are not reported
		syncErr := logger.Sync()
		if rotator == nil {
			return nil
		}
		if err := rotator.Close(); err != nil {
			return fmt.Errorf("failed to close log file: %w", err)
		}
		return syncErr
	}

	return logger, closeLog, nil
}
