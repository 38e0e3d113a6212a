package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestLoggerLevelFiltering(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		emit  func(*log.Logger)
		want  bool
	}{
		{"info passes at info", log.InfoLevel, func(l *log.Logger) { l.Info("loaded snapshot") }, true},
		{"debug filtered at info", log.InfoLevel, func(l *log.Logger) { l.Debug("cache key") }, false},
		{"debug passes at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("cache key") }, true},
		{"error passes at info", log.InfoLevel, func(l *log.Logger) { l.Error("render failed") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("wrote output = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProgressReportsElapsed(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	prog := newProgress(logger)
	time.Sleep(10 * time.Millisecond)
	prog.done("Rendered 2 artifacts")

	out := buf.String()
	if !strings.Contains(out, "Rendered 2 artifacts") {
		t.Errorf("progress output missing message: %q", out)
	}
	if !strings.Contains(out, "(") || !strings.Contains(out, "s)") {
		t.Errorf("progress output missing elapsed duration: %q", out)
	}
}

func TestLoggerContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	ctx := withLogger(context.Background(), logger)
	if got := loggerFromContext(ctx); got != logger {
		t.Fatal("loggerFromContext should return the attached logger")
	}

	loggerFromContext(ctx).Info("built graph")
	if buf.Len() == 0 {
		t.Error("retrieved logger should write to the original buffer")
	}
}

func TestLoggerContextFallback(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext should fall back to the default logger")
	}
}
