// Package logger provides the process-wide diagnostic log for the collab CLI.
// Lines go to stderr so they never mix with rendered pages on stdout. By
// default only errors are written; --verbose lowers the threshold to debug.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level orders log severities.
type Level int

// Levels from most to least chatty.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelTags = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
	return levelTags[l]
}

var (
	mu        sync.RWMutex
	threshold           = LevelError
	output    io.Writer = os.Stderr

	now = time.Now
)

// SetLevel sets the lowest level that is written.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	threshold = l
}

// SetVerbose switches between debug output and errors only.
func SetVerbose(v bool) {
	if v {
		SetLevel(LevelDebug)
		return
	}
	SetLevel(LevelError)
}

// IsVerbose reports whether debug lines are written.
func IsVerbose() bool {
	return enabled(LevelDebug)
}

// SetOutput redirects log lines. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func enabled(l Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return l >= threshold
}

func write(l Level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if l < threshold {
		return
	}
	fmt.Fprintf(output, "[%s] %s\n", l, fmt.Sprintf(format, args...))
}

// Debug logs fetch and cache detail.
func Debug(format string, args ...any) { write(LevelDebug, format, args...) }

// Info logs progress.
func Info(format string, args ...any) { write(LevelInfo, format, args...) }

// Warn logs a recoverable problem such as a cache falling back to memory.
func Warn(format string, args ...any) { write(LevelWarn, format, args...) }

// Error logs a failure. Errors pass the default threshold.
func Error(format string, args ...any) { write(LevelError, format, args...) }

// Section writes a header separating phases of verbose output.
func Section(name string) {
	if enabled(LevelDebug) {
		mu.RLock()
		defer mu.RUnlock()
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Timed starts a timer and returns the func that logs its duration at debug
// level, typically deferred:
//
//	defer logger.Timed("changelog build")()
func Timed(what string) func() {
	start := now()
	return func() {
		Debug("%s took %s", what, now().Sub(start).Round(time.Millisecond))
	}
}
