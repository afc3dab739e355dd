package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// maxLines bounds the in-memory history shown by the console.
const maxLines = 256

// Path returns the log file for a program, relative to the working directory (e.g. "logs/gallery.txt").
func Path(program string) string {
	return filepath.Join("logs", program+".txt")
}

// Logger keeps recent console lines in memory and writes structured events through zerolog
// to stderr and, when opened with New, to a log file. It is safe for concurrent use.
type Logger struct {
	mu    sync.Mutex
	lines []string
	file  *os.File
	zl    zerolog.Logger
}

// New returns a Logger that appends JSON events to path (creating its directory) and prints
// human-readable events to stderr. If the file cannot be opened, only stderr is used.
func New(path string) *Logger {
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	l := &Logger{}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err == nil {
		if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
			l.file = f
		}
	}
	if l.file != nil {
		l.zl = zerolog.New(zerolog.MultiLevelWriter(console, l.file)).With().Timestamp().Logger()
	} else {
		l.zl = zerolog.New(console).With().Timestamp().Logger()
	}
	return l
}

// NewWriter returns a Logger that writes JSON events to w only.
func NewWriter(w io.Writer) *Logger {
	return &Logger{zl: zerolog.New(w).With().Timestamp().Logger()}
}

// Log records a console line, prefixed with [timestamp], and emits it as an info event.
func (l *Logger) Log(line string) {
	stamped := "[" + time.Now().Format("2006-01-02 15:04:05") + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	if n := len(l.lines); n > maxLines {
		l.lines = append(l.lines[:0], l.lines[n-maxLines:]...)
	}
	l.mu.Unlock()

	l.zl.Info().Str("source", "console").Msg(line)
}

// Logf formats according to a format specifier and calls Log.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Event returns the structured logger for events that should not appear in the console.
func (l *Logger) Event() *zerolog.Logger {
	return &l.zl
}

// Lines returns a copy of the stored console lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
