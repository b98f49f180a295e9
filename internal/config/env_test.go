package config

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("IRONDOME_TEST_STR", "value")
	if got := GetEnv("IRONDOME_TEST_STR", "fallback"); got != "value" {
		t.Errorf("GetEnv = %q, want value", got)
	}
	if got := GetEnv("IRONDOME_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnv unset = %q, want fallback", got)
	}
}

func TestTypedGetters(t *testing.T) {
	t.Setenv("IRONDOME_TEST_INT", "30")
	t.Setenv("IRONDOME_TEST_BAD_INT", "thirty")
	t.Setenv("IRONDOME_TEST_BOOL", "false")
	t.Setenv("IRONDOME_TEST_DUR", "90s")
	t.Setenv("IRONDOME_TEST_BAD_DUR", "soon")

	if got := GetEnvInt("IRONDOME_TEST_INT", 60); got != 30 {
		t.Errorf("GetEnvInt = %d, want 30", got)
	}
	if got := GetEnvInt("IRONDOME_TEST_BAD_INT", 60); got != 60 {
		t.Errorf("GetEnvInt invalid = %d, want fallback", got)
	}
	if got := GetEnvBool("IRONDOME_TEST_BOOL", true); got {
		t.Error("GetEnvBool = true, want false")
	}
	if got := GetEnvBool("IRONDOME_TEST_UNSET", true); !got {
		t.Error("GetEnvBool unset should return fallback")
	}
	if got := GetEnvDuration("IRONDOME_TEST_DUR", time.Second); got != 90*time.Second {
		t.Errorf("GetEnvDuration = %v, want 90s", got)
	}
	if got := GetEnvDuration("IRONDOME_TEST_BAD_DUR", time.Second); got != time.Second {
		t.Errorf("GetEnvDuration invalid = %v, want fallback", got)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")

	logger.Info("hidden")
	logger.Warn("shown", "key", 1)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message logged at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=1") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestOpenLogFile(t *testing.T) {
	t.Setenv("LOG_FILE", "")
	w, closeFn, err := OpenLogFile()
	if err != nil {
		t.Fatal(err)
	}
	if w != io.Discard {
		t.Error("unset LOG_FILE should discard")
	}
	closeFn()

	path := filepath.Join(t.TempDir(), "game.log")
	t.Setenv("LOG_FILE", path)
	w, closeFn, err = OpenLogFile()
	if err != nil {
		t.Fatal(err)
	}
	defer closeFn()
	if _, err := io.WriteString(w, "line\n"); err != nil {
		t.Errorf("write log: %v", err)
	}
}
