package arimage

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultLoggerDiscards(t *testing.T) {
	ctx := context.Background()
	h := nopHandler{}
	if _, ok := h.WithAttrs([]slog.Attr{slog.Int("n", 1)}).(nopHandler); !ok {
		t.Error("WithAttrs() should stay a nopHandler")
	}
	if _, ok := h.WithGroup("registry").(nopHandler); !ok {
		t.Error("WithGroup() should stay a nopHandler")
	}

	l := Logger()
	if l == nil {
		t.Fatal("Logger() = nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(ctx, level) {
			t.Errorf("default logger enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(custom)

	if Logger() != custom {
		t.Fatal("Logger() did not return the logger passed to SetLogger")
	}
	Logger().Debug("registry: loaded", "key", "red")
	if out := buf.String(); !strings.Contains(out, "registry: loaded") || !strings.Contains(out, "key=red") {
		t.Errorf("log output = %q", out)
	}

	SetLogger(nil)
	if Logger() == nil || Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore a silent logger")
	}
}

func TestOnSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var seen []*slog.Logger
	OnSetLogger(func(l *slog.Logger) { seen = append(seen, l) })
	if len(seen) != 1 || seen[0] != orig {
		t.Fatalf("hook calls = %d, want 1 with the current logger", len(seen))
	}

	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	SetLogger(custom)
	if len(seen) != 2 || seen[1] != custom {
		t.Errorf("hook did not receive the new logger")
	}

	SetLogger(nil)
	if len(seen) != 3 || seen[2] == nil {
		t.Errorf("hook should receive the nop logger, not nil")
	}
}
