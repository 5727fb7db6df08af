package logx

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(Warn)
	t.Cleanup(func() {
		SetOutput(nil)
		SetLevel(Info)
	})

	Infof("hidden %d", 1)
	Warnf("shown %d", 2)
	Errorf("also shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "WARN  shown 2") {
		t.Fatalf("missing warn line: %q", out)
	}
	if !strings.Contains(out, "ERROR also shown") {
		t.Fatalf("missing error line: %q", out)
	}
}

func TestSetLevelFromEnvFile(t *testing.T) {
	path := t.TempDir() + "/app.log"
	t.Setenv("SPACEEVENTS_LOG_LEVEL", "debug")
	t.Setenv("SPACEEVENTS_LOG_FILE", path)
	SetLevelFromEnv()
	t.Cleanup(func() {
		_ = Close()
		SetLevel(Info)
	})

	Debugf("to file")
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "DEBUG to file") {
		t.Fatalf("log file = %q", b)
	}
}
