package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/officedays/officedays/internal/config"
)

// newLogger builds a console logger on stderr, or a rotating JSON file
// logger when a log file is configured.
func newLogger(settings *config.Settings, stderr io.Writer) (*zap.Logger, func(), error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(settings.LogLevel)); err != nil {
		zapLevel = zapcore.WarnLevel
	}

	if settings.LogFile != "" {
		return newFileLogger(settings.LogFile, zapLevel)
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(stderr),
		zapLevel,
	)
	logger := zap.New(core)

	return logger, func() { _ = logger.Sync() }, nil
}

func newFileLogger(logFile string, level zapcore.Level) (*zap.Logger, func(), error) {
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		level,
	)
	logger := zap.New(core)

	return logger, func() {
		_ = logger.Sync()
		_ = logWriter.Close()
	}, nil
}
