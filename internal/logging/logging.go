// Package logging builds the process-wide zap logger: a console core
// on stderr plus an optional rotating file core.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a logger writing to stderr at info level (debug when
// verbose). When logFile is non-empty, a second core writes JSON
// records to a size-rotated file.
func New(verbose bool, logFile string) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleCfg),
			zapcore.Lock(os.Stderr),
			level,
		),
	}

	if logFile != "" {
		fileSink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			fileSink,
			zapcore.DebugLevel,
		))
	}

	return zap.New(zapcore.NewTee(cores...))
}
