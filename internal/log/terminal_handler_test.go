package log

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestTerminalHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	h := newTerminalHandler(&buf, slog.LevelDebug, false)

	ts := time.Date(2023, 12, 5, 6, 0, 1, 250000000, time.UTC)
	r := slog.NewRecord(ts, slog.LevelInfo, "solved", 0)
	r.AddAttrs(slog.Int("day", 5), slog.String("part", "a"))

	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	want := "06:00:01.250 INF solved day=5 part=a\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestTerminalHandler_Levels(t *testing.T) {
	tests := []struct {
		level    slog.Level
		expected string
	}{
		{slog.LevelDebug, "DBG"},
		{slog.LevelInfo, "INF"},
		{slog.LevelWarn, "WRN"},
		{slog.LevelError, "ERR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTerminalHandler(&buf, slog.LevelDebug, false)

			r := slog.NewRecord(time.Now(), tt.level, "msg", 0)
			if err := h.Handle(context.Background(), r); err != nil {
				t.Fatalf("Handle() error: %v", err)
			}
			if !strings.Contains(buf.String(), " "+tt.expected+" ") {
				t.Errorf("expected %s in output, got: %s", tt.expected, buf.String())
			}
		})
	}
}

func TestTerminalHandler_Colour(t *testing.T) {
	var buf bytes.Buffer
	h := newTerminalHandler(&buf, slog.LevelDebug, true)

	r := slog.NewRecord(time.Now(), slog.LevelError, "fetch failed", 0)
	r.AddAttrs(slog.Any("error", errors.New("status 400")))
	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, ansiRed+"ERR"+ansiReset) {
		t.Errorf("expected red ERR label, got: %q", output)
	}
	if !strings.Contains(output, ansiBold+"fetch failed"+ansiReset) {
		t.Errorf("expected bold message, got: %q", output)
	}
	if !strings.Contains(output, ansiRed+`"status 400"`+ansiReset) {
		t.Errorf("expected highlighted error value, got: %q", output)
	}
}

func TestTerminalHandler_NoColour(t *testing.T) {
	var buf bytes.Buffer
	h := newTerminalHandler(&buf, slog.LevelDebug, false)

	slog.New(h).Warn("slow", "elapsed", 3*time.Second)

	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("expected no escape codes, got: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "elapsed=3s") {
		t.Errorf("expected duration attr, got: %q", buf.String())
	}
}

func TestTerminalHandler_Enabled(t *testing.T) {
	h := newTerminalHandler(&bytes.Buffer{}, slog.LevelWarn, false)

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("INFO should be disabled at WARN level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("ERROR should be enabled at WARN level")
	}
}

func TestTerminalHandler_DefaultLevel(t *testing.T) {
	h := newTerminalHandler(&bytes.Buffer{}, nil, false)

	if !h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("default level should be INFO")
	}
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("DEBUG should be disabled at default INFO level")
	}
}

func TestTerminalHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	var h slog.Handler = newTerminalHandler(&buf, slog.LevelDebug, false)

	h = h.WithAttrs([]slog.Attr{slog.String("component", "api")})
	h = h.WithGroup("http")

	slog.New(h).Info("request", "method", "POST", slog.Group("resp", slog.Int("status", 201)))

	output := buf.String()
	for _, want := range []string{"component=api", "http.method=POST", "http.resp.status=201"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}

func TestTerminalHandler_EmptyGroup(t *testing.T) {
	h := newTerminalHandler(&bytes.Buffer{}, slog.LevelDebug, false)
	if h.WithGroup("") != slog.Handler(h) {
		t.Error("WithGroup with empty string should return same handler")
	}
}

func TestFormatValue_Quotes(t *testing.T) {
	tests := []struct {
		in   slog.Value
		want string
	}{
		{slog.StringValue("plain"), "plain"},
		{slog.StringValue("two words"), `"two words"`},
		{slog.StringValue(""), `""`},
		{slog.StringValue("a=b"), `"a=b"`},
		{slog.Uint64Value(18446744073709551615), "18446744073709551615"},
	}
	for _, tt := range tests {
		if got := formatValue(tt.in); got != tt.want {
			t.Errorf("formatValue(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
