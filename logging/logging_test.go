package logging

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DebugLevel},
		{"DEBUG", DebugLevel},
		{" info ", InfoLevel},
		{"warn", WarnLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{"fatal", FatalLevel},
		{"", InfoLevel},
		{"bogus", InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	if DebugLevel.String() != "DEBUG" || FatalLevel.String() != "FATAL" {
		t.Errorf("unexpected level names: %s, %s", DebugLevel, FatalLevel)
	}
	if Level(99).String() != "UNKNOWN" {
		t.Errorf("expected UNKNOWN for out-of-range level, got %s", Level(99))
	}
}

func newCaptureLogger(level Level) (*DefaultLogger, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	logger := &DefaultLogger{
		stdoutLogger: log.New(&stdout, "", 0),
		stderrLogger: log.New(&stderr, "", 0),
		level:        level,
		fields:       make(Fields),
		useColors:    false,
	}
	return logger, &stdout, &stderr
}

func TestDefaultLoggerLevelGating(t *testing.T) {
	logger, stdout, stderr := newCaptureLogger(WarnLevel)

	logger.Debug("quiet")
	logger.Info("quiet")
	logger.Warn("loud")
	logger.Error(errors.New("boom"), "failed")

	if stdout.Len() != 0 {
		t.Errorf("expected no stdout output below WarnLevel, got %q", stdout.String())
	}
	out := stderr.String()
	if !strings.Contains(out, "[WARN] loud") {
		t.Errorf("missing warn line in %q", out)
	}
	if !strings.Contains(out, "[ERROR] failed: boom") {
		t.Errorf("missing error line in %q", out)
	}
}

func TestDefaultLoggerWithFields(t *testing.T) {
	logger, stdout, _ := newCaptureLogger(DebugLevel)

	child := logger.WithFields(Fields{"component": "curves"})
	child.Info("frame", Fields{"octaves": 8})

	out := stdout.String()
	if !strings.Contains(out, "component:curves") {
		t.Errorf("preset field missing in %q", out)
	}
	if !strings.Contains(out, "octaves:8") {
		t.Errorf("call field missing in %q", out)
	}

	// parent must not inherit the child's fields
	stdout.Reset()
	logger.Info("bare")
	if strings.Contains(stdout.String(), "component") {
		t.Errorf("parent logger polluted by child fields: %q", stdout.String())
	}
}

func TestContextFields(t *testing.T) {
	logger, stdout, _ := newCaptureLogger(DebugLevel)

	ctx := ContextWithFields(context.Background(), Fields{"frame": 42})
	logger.WithContext(ctx).Info("tick")

	if !strings.Contains(stdout.String(), "frame:42") {
		t.Errorf("context fields missing in %q", stdout.String())
	}

	if _, ok := FieldsFromContext(context.Background()); ok {
		t.Error("FieldsFromContext reported fields on an empty context")
	}
}

func TestSetGlobalLoggerNil(t *testing.T) {
	prev := GetGlobalLogger()
	defer SetGlobalLogger(prev)

	SetGlobalLogger(nil)
	if _, ok := GetGlobalLogger().(*NoOpLogger); !ok {
		t.Errorf("expected NoOpLogger after SetGlobalLogger(nil), got %T", GetGlobalLogger())
	}
}

func TestZapLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := WrapZap(zap.New(core))

	logger.WithFields(Fields{"component": "stream"}).Info("connected", Fields{"clients": 3})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Message != "connected" {
		t.Errorf("unexpected message %q", entry.Message)
	}
	got := entry.ContextMap()
	if got["component"] != "stream" {
		t.Errorf("component field = %v", got["component"])
	}
	if got["clients"] != int64(3) {
		t.Errorf("clients field = %v", got["clients"])
	}
}

func TestZapLoggerLevelGating(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := WrapZap(zap.New(core))

	logger.SetLevel(ErrorLevel)
	logger.Debug("nope")
	logger.Info("nope")
	logger.Warn("nope")
	logger.Error(errors.New("bad frame"), "dropped")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected only the error entry, got %d", len(entries))
	}
	if entries[0].Level != zapcore.ErrorLevel {
		t.Errorf("unexpected level %v", entries[0].Level)
	}
	if entries[0].ContextMap()["error"] != "bad frame" {
		t.Errorf("error field missing: %v", entries[0].ContextMap())
	}
}

func TestNoOpLoggerSatisfiesInterface(t *testing.T) {
	var logger Logger = &NoOpLogger{}
	logger.Debug("ignored")
	logger.Error(errors.New("ignored"), "ignored")
	if logger.WithFields(Fields{"a": 1}) != logger {
		t.Error("NoOpLogger.WithFields should return itself")
	}
}
