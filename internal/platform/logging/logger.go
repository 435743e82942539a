package logging

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/janisto/chat-ping/internal/platform/timeutil"
)

var (
	loggerOnce  sync.Once
	baseLogger  *zap.Logger
	sugarLogger *zap.SugaredLogger
	loggerErr   error
)

// NewLogger builds a production JSON logger writing to outputPaths
// ("stdout" when none are given).
func NewLogger(outputPaths ...string) (*zap.Logger, error) {
	if len(outputPaths) == 0 {
		outputPaths = []string{"stdout"}
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = outputPaths
	cfg.ErrorOutputPaths = outputPaths
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = encodeTimeMicros
	cfg.EncoderConfig.LevelKey = "severity"
	cfg.EncoderConfig.EncodeLevel = encodeSeverity
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.CallerKey = "caller"
	return cfg.Build(zap.AddCaller())
}

func initLogger() {
	baseLogger, loggerErr = NewLogger()
	if loggerErr != nil {
		baseLogger = zap.NewNop()
	}
	sugarLogger = baseLogger.Sugar()
}

func encodeTimeMicros(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(timeutil.FormatMicros(t))
}

// encodeSeverity maps zap levels to Cloud Logging severity names.
func encodeSeverity(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var severity string
	switch level {
	case zapcore.DebugLevel:
		severity = "DEBUG"
	case zapcore.InfoLevel:
		severity = "INFO"
	case zapcore.WarnLevel:
		severity = "WARNING"
	case zapcore.ErrorLevel:
		severity = "ERROR"
	case zapcore.DPanicLevel:
		severity = "CRITICAL"
	case zapcore.PanicLevel:
		severity = "ALERT"
	case zapcore.FatalLevel:
		severity = "EMERGENCY"
	default:
		severity = "DEFAULT"
	}
	enc.AppendString(severity)
}

// Logger returns the process-wide zap.Logger instance.
func Logger() *zap.Logger {
	loggerOnce.Do(initLogger)
	return baseLogger
}

// Sugar returns a sugared logger sharing the same core as Logger.
func Sugar() *zap.SugaredLogger {
	loggerOnce.Do(initLogger)
	return sugarLogger
}

// Sync flushes buffered log entries. Call during shutdown.
func Sync() error {
	loggerOnce.Do(initLogger)
	return baseLogger.Sync()
}

// Err reports initialization failure, if any.
func Err() error {
	loggerOnce.Do(initLogger)
	return loggerErr
}
