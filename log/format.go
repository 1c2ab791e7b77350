package log

import (
	"bytes"
	"encoding/json"
	"io"
	golog "log"
	"strings"
	"sync"
	"time"
)

const timeFormat = "2006-01-02 15:04:05"

type logEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Service   string `json:"service,omitempty"`
	Message   string `json:"message"`
}

type sink struct {
	mu     sync.Mutex
	out    io.Writer
	closer io.Closer
}

func (s *sink) write(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = io.WriteString(s.out, line)
}

func formatText(name string, level LogLevel, msg string, colored bool) string {
	var b strings.Builder

	if colored {
		b.WriteString(color(level))
	}

	b.WriteString("[")
	b.WriteString(time.Now().Format(timeFormat))
	b.WriteString("] ")
	b.WriteString(padLevel(level))
	if name != "" {
		b.WriteString(" [")
		b.WriteString(name)
		b.WriteString("]")
	}
	b.WriteString(" ")
	b.WriteString(msg)

	if colored {
		b.WriteString(colorReset)
	}
	b.WriteString("\n")

	return b.String()
}

func formatJSON(name string, level LogLevel, msg string) string {
	encoded, err := json.Marshal(logEntry{
		Timestamp: time.Now().Format(time.RFC3339),
		Level:     level.String(),
		Service:   name,
		Message:   msg,
	})
	if err != nil {
		return formatText(name, level, msg, false)
	}

	return string(encoded) + "\n"
}

func padLevel(level LogLevel) string {
	s := level.String()
	if len(s) < 5 {
		s += strings.Repeat(" ", 5-len(s))
	}

	return s
}

// StdLogger returns a standard library logger that forwards each line to l
// at the given level, for libraries that only accept *log.Logger.
func (l *Logger) StdLogger(level LogLevel) *golog.Logger {
	return golog.New(&lineWriter{logger: l, level: level}, "", 0)
}

type lineWriter struct {
	logger *Logger
	level  LogLevel
}

func (w *lineWriter) Write(p []byte) (int, error) {
	for _, line := range bytes.Split(bytes.TrimRight(p, "\n"), []byte("\n")) {
		if len(line) > 0 {
			w.logger.log(w.level, "%s", line)
		}
	}

	return len(p), nil
}
