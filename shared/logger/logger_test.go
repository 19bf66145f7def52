package logger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapFieldConversion(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZap(zap.New(core))

	l.Info("Compiled",
		String("member", "User.Age"),
		Int("count", 3),
		Uint64("hits", 7),
		Bool("static", false),
		Duration("took", time.Millisecond),
		Strings("path", []string{"Base", "Root"}),
		Err(errors.New("boom")),
		Any("mode", "Instance|Public"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}

	want := map[string]any{
		"member": "User.Age",
		"count":  int64(3),
		"hits":   uint64(7),
		"static": false,
		"took":   time.Millisecond,
		"path":   []any{"Base", "Root"},
		"error":  "boom",
		"mode":   "Instance|Public",
	}
	if diff := cmp.Diff(want, entries[0].ContextMap()); diff != "" {
		t.Errorf("Unexpected fields (-want +got):\n%s", diff)
	}
}

func TestNilErrorFieldIsSkipped(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	NewZap(zap.New(core)).Warn("No error", Err(nil))

	if fields := logs.All()[0].ContextMap(); len(fields) != 0 {
		t.Errorf("Expected no fields, got %v", fields)
	}
}

func TestLevels(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewZap(zap.New(core))

	l.Debug("hidden")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")

	var messages []string
	for _, e := range logs.All() {
		messages = append(messages, e.Message)
	}
	if diff := cmp.Diff([]string{"info", "warn", "error"}, messages); diff != "" {
		t.Errorf("Unexpected messages (-want +got):\n%s", diff)
	}
}

func TestNewRejectsUnknownOptions(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Error("Expected error for unknown level")
	}
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestNewWritesRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fastflect.log")
	l, err := New(Options{Level: "debug", Format: "json", File: path})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	l.Debug("Stored compiled accessor", String("member", "User.Age"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"Stored compiled accessor"`) {
		t.Errorf("Expected message in log file, got %s", data)
	}
	if !strings.Contains(string(data), `"member":"User.Age"`) {
		t.Errorf("Expected member field in log file, got %s", data)
	}
}

func TestGlobalLogger(t *testing.T) {
	previous := Log()
	t.Cleanup(func() { SetGlobalLogger(previous) })

	core, logs := observer.New(zapcore.DebugLevel)
	SetGlobalLogger(NewZap(zap.New(core)))

	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")

	if logs.Len() != 4 {
		t.Errorf("Expected 4 entries through the global logger, got %d", logs.Len())
	}

	SetGlobalLogger(nil)
	if _, ok := Log().(noOpLogger); !ok {
		t.Errorf("Expected nil to install the no-op logger, got %T", Log())
	}
	if err := Sync(); err != nil {
		t.Errorf("Expected no-op sync to succeed, got %v", err)
	}
}

func TestDefaultFromEnv(t *testing.T) {
	t.Setenv("FASTFLECT_LOGGER", "off")
	if _, ok := defaultFromEnv().(noOpLogger); !ok {
		t.Error("Expected FASTFLECT_LOGGER=off to select the no-op logger")
	}

	t.Setenv("FASTFLECT_LOGGER", "")
	t.Setenv("FASTFLECT_LOG_FORMAT", "json")
	t.Setenv("FASTFLECT_LOG_FILE", "")
	t.Setenv("FASTFLECT_LOG_LEVEL", "nonsense")
	if _, ok := defaultFromEnv().(noOpLogger); !ok {
		t.Error("Expected an invalid level to fall back to the no-op logger")
	}

	t.Setenv("FASTFLECT_LOG_LEVEL", "warn")
	if _, ok := defaultFromEnv().(*zapLogger); !ok {
		t.Error("Expected the zap logger by default")
	}
}
