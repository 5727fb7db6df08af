package logx

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

var (
	mu    sync.Mutex
	level = Info
	// stderr stays off by default: anything written there lands on top of the TUI.
	// Enable via SPACEEVENTS_LOG_STDERR=1, or send logs to SPACEEVENTS_LOG_FILE.
	toStderr = false
	sink     io.Writer
	sinkFile *os.File
)

func SetLevel(l Level) { mu.Lock(); level = l; mu.Unlock() }

// SetOutput sends log lines to w in addition to stderr (when enabled). nil disables it.
func SetOutput(w io.Writer) { mu.Lock(); sink = w; mu.Unlock() }

func SetLevelFromEnv() {
	lv := strings.ToLower(strings.TrimSpace(os.Getenv("SPACEEVENTS_LOG_LEVEL")))
	switch lv {
	case "debug":
		SetLevel(Debug)
	case "info":
		SetLevel(Info)
	case "warn", "warning":
		SetLevel(Warn)
	case "error":
		SetLevel(Error)
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("SPACEEVENTS_LOG_STDERR"))); v != "" {
		mu.Lock()
		toStderr = v != "0" && v != "false" && v != "no"
		mu.Unlock()
	}
	if p := strings.TrimSpace(os.Getenv("SPACEEVENTS_LOG_FILE")); p != "" {
		f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not open log file %s: %v\n", p, err)
			return
		}
		mu.Lock()
		sinkFile = f
		sink = f
		mu.Unlock()
	}
}

// Close flushes and releases the file opened from SPACEEVENTS_LOG_FILE.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if sinkFile == nil {
		return nil
	}
	err := sinkFile.Close()
	if sink == sinkFile {
		sink = nil
	}
	sinkFile = nil
	return err
}

func Debugf(format string, a ...any) { logf(Debug, "DEBUG", format, a...) }
func Infof(format string, a ...any)  { logf(Info, "INFO", format, a...) }
func Warnf(format string, a ...any)  { logf(Warn, "WARN", format, a...) }
func Errorf(format string, a ...any) { logf(Error, "ERROR", format, a...) }

func logf(l Level, tag, format string, a ...any) {
	mu.Lock()
	defer mu.Unlock()
	if l < level {
		return
	}
	ts := time.Now().Format("2006-01-02T15:04:05.000Z07:00")
	line := fmt.Sprintf("%s %-5s %s", ts, tag, fmt.Sprintf(format, a...))
	if sink != nil {
		fmt.Fprintln(sink, line)
	}
	if toStderr {
		fmt.Fprintln(os.Stderr, line)
	}
}
