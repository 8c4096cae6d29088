package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"DEBUG": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}

	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNewWithWriter_Filters(t *testing.T) {
	var buf bytes.Buffer

	log := NewWithWriter("info", &buf)
	log.Debug("hidden")
	log.Info("saving", "file", "a.json")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=saving")
	assert.Contains(t, out, "file=a.json")
}

func TestWith_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer

	parent := NewWithWriter("warn", &buf)
	child := parent.With("component", "store")

	child.Info("hidden")
	child.Warn("record has no doc_id")
	parent.Error("save stopped")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "component=store")
	assert.Contains(t, out, "level=ERROR")
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Error("nothing to see")
	log.Warn("nothing to see")
}
