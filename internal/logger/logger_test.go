package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	l := New()
	if l.Log == nil {
		t.Fatalf("expected a usable no-op logger before Init")
	}
	// must not panic
	l.Log.Info("noop")
}

func TestInit(t *testing.T) {
	l := New()
	if err := l.Init("debug"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if l.Log == nil {
		t.Fatalf("Init left Log nil")
	}
	if !l.Log.Core().Enabled(zapcore.DebugLevel) {
		t.Errorf("expected debug level enabled after Init(debug)")
	}
}

func TestInit_BadLevel(t *testing.T) {
	l := New()
	if err := l.Init("extremely-verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
