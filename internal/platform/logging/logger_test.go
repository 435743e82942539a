package logging

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// captureLogOutput captures a single log entry emitted by logFn and returns it as a map.
func captureLogOutput(t *testing.T, logFn func(*zap.Logger)) map[string]any {
	t.Helper()

	resetLoggerForTest()
	defer resetLoggerForTest()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	defer func() { _ = r.Close() }()

	origStdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = origStdout }()

	logger := Logger()
	logFn(logger)
	_ = logger.Sync()

	if closeErr := w.Close(); closeErr != nil {
		t.Fatalf("failed to close writer: %v", closeErr)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read log output: %v", err)
	}

	line := strings.TrimSpace(string(data))
	if line == "" {
		t.Fatalf("expected log output, got empty string")
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("failed to unmarshal log JSON %q: %v", line, err)
	}
	return payload
}

// resetLoggerForTest clears the singleton state so tests can capture fresh log output.
func resetLoggerForTest() {
	loggerOnce = sync.Once{}
	baseLogger = nil
	sugarLogger = nil
	loggerErr = nil
}

func TestLoggerStructuredOutput(t *testing.T) {
	payload := captureLogOutput(t, func(l *zap.Logger) {
		l.Info("chat request", zap.String("path", "/api/chat"))
	})

	if got := payload["severity"]; got != "INFO" {
		t.Fatalf("expected severity INFO, got %v", got)
	}
	if got := payload["message"]; got != "chat request" {
		t.Fatalf("expected message 'chat request', got %v", got)
	}
	if got := payload["path"]; got != "/api/chat" {
		t.Fatalf("expected path field, got %v", got)
	}
	if _, ok := payload["caller"]; !ok {
		t.Fatalf("expected caller field, got %v", payload)
	}
	if _, ok := payload["level"]; ok {
		t.Fatalf("level key should be renamed to severity: %v", payload)
	}
}

func TestTimestampIsUTCWithMicros(t *testing.T) {
	payload := captureLogOutput(t, func(l *zap.Logger) {
		l.Warn("tick")
	})

	ts, ok := payload["timestamp"].(string)
	if !ok {
		t.Fatalf("expected string timestamp, got %v", payload["timestamp"])
	}
	if !strings.HasSuffix(ts, "Z") {
		t.Fatalf("expected UTC timestamp, got %s", ts)
	}
	if _, err := time.Parse("2006-01-02T15:04:05.000000Z", ts); err != nil {
		t.Fatalf("timestamp %q not in microsecond layout: %v", ts, err)
	}
	if got := payload["severity"]; got != "WARNING" {
		t.Fatalf("expected severity WARNING, got %v", got)
	}
}

func TestDebugLevelNotLoggedInProduction(t *testing.T) {
	resetLoggerForTest()
	defer resetLoggerForTest()

	if Logger().Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("debug level should be disabled in production config")
	}
	if !Logger().Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("info level should be enabled")
	}
}

func TestEncodeSeverityMapping(t *testing.T) {
	cases := map[zapcore.Level]string{
		zapcore.DebugLevel:  "DEBUG",
		zapcore.InfoLevel:   "INFO",
		zapcore.WarnLevel:   "WARNING",
		zapcore.ErrorLevel:  "ERROR",
		zapcore.DPanicLevel: "CRITICAL",
		zapcore.PanicLevel:  "ALERT",
		zapcore.FatalLevel:  "EMERGENCY",
		zapcore.Level(42):   "DEFAULT",
	}
	for level, want := range cases {
		enc := &stringArrayEncoder{}
		encodeSeverity(level, enc)
		if len(enc.values) != 1 || enc.values[0] != want {
			t.Errorf("level %v: expected %s, got %v", level, want, enc.values)
		}
	}
}

func TestSingletonAccessors(t *testing.T) {
	resetLoggerForTest()
	defer resetLoggerForTest()

	if err := Err(); err != nil {
		t.Fatalf("expected nil init error, got %v", err)
	}
	if Logger() != Logger() {
		t.Fatal("expected Logger to return the same instance")
	}
	if Sugar() != Sugar() {
		t.Fatal("expected Sugar to return the same instance")
	}
	if Sugar().Desugar().Core() != Logger().Core() {
		t.Fatal("expected Logger and Sugar to share a core")
	}
}

func TestNewLoggerCustomOutput(t *testing.T) {
	path := t.TempDir() + "/client.log"
	logger, err := NewLogger(path)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Info("to file")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"message":"to file"`) {
		t.Fatalf("expected entry in file, got %s", data)
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	resetLoggerForTest()
	defer resetLoggerForTest()

	var wg sync.WaitGroup
	loggers := make([]*zap.Logger, 20)
	for i := range loggers {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			loggers[idx] = Logger()
		}(i)
	}
	wg.Wait()

	for i, l := range loggers {
		if l != loggers[0] {
			t.Fatalf("logger %d differs from first instance", i)
		}
	}
}

type stringArrayEncoder struct {
	zapcore.PrimitiveArrayEncoder
	values []string
}

func (e *stringArrayEncoder) AppendString(v string) {
	e.values = append(e.values, v)
}
