package logger

import (
	"bytes"
	"strings"
	"testing"
)

func resetLogger() {
	Init(Options{})
}

func TestInitLevels(t *testing.T) {
	t.Run("info is the default level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		Init(Options{Output: buf})
		defer resetLogger()

		Info("info line")
		Debug("debug line")

		out := buf.String()
		if !strings.Contains(out, "info line") {
			t.Error("info should be logged by default")
		}
		if strings.Contains(out, "debug line") {
			t.Error("debug should not be logged by default")
		}
	})

	t.Run("debug enables debug output", func(t *testing.T) {
		buf := &bytes.Buffer{}
		Init(Options{Debug: true, Output: buf})
		defer resetLogger()

		Debug("debug line")
		if !strings.Contains(buf.String(), "debug line") {
			t.Error("debug should be logged with Debug=true")
		}
	})

	t.Run("quiet suppresses everything below error", func(t *testing.T) {
		buf := &bytes.Buffer{}
		Init(Options{Quiet: true, Output: buf})
		defer resetLogger()

		Info("info line")
		Warn("warn line")
		Error("error line")

		out := buf.String()
		if strings.Contains(out, "info line") || strings.Contains(out, "warn line") {
			t.Error("info and warn should be suppressed with Quiet=true")
		}
		if !strings.Contains(out, "error line") {
			t.Error("error should be logged with Quiet=true")
		}
	})

	t.Run("quiet overrides debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		Init(Options{Debug: true, Quiet: true, Output: buf})
		defer resetLogger()

		Debug("debug line")
		if strings.Contains(buf.String(), "debug line") {
			t.Error("quiet should win over debug")
		}
	})
}

func TestInitJSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{JSON: true, Output: buf})
	defer resetLogger()

	Info("json line", "count", 42)

	out := buf.String()
	if !strings.Contains(out, "{") || !strings.Contains(out, `"msg"`) {
		t.Errorf("expected JSON output, got %q", out)
	}
	if !strings.Contains(out, "42") {
		t.Error("expected structured attribute in output")
	}
}

func TestWith(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	With("section", "parties").Info("attached")

	out := buf.String()
	if !strings.Contains(out, "section") || !strings.Contains(out, "parties") {
		t.Errorf("expected attribute in output, got %q", out)
	}
}
