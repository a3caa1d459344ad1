// Package logging sets up the shared zap logger.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sharedLogger *zap.SugaredLogger

// Init configures the shared logger. The level defaults to info; the
// LOG_LEVEL environment variable and the verbose flag both lower it to debug.
func Init(verbose bool) {
	if sharedLogger != nil {
		return
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		MessageKey:     "M",
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.0000"),
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if parsedLevel, err := zapcore.ParseLevel(lvl); err == nil {
			level = parsedLevel
		}
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)

	sharedLogger = zap.New(core).Sugar()
}

// L returns the shared logger, initializing it with defaults if needed.
func L() *zap.SugaredLogger {
	if sharedLogger == nil {
		Init(false)
	}
	return sharedLogger
}

// Sync flushes any buffered log entries.
func Sync() {
	if sharedLogger != nil {
		_ = sharedLogger.Sync()
	}
}
