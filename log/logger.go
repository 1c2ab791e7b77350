package log

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for log files, in megabytes, files and days.
const (
	RotateMaxSize    = 64
	RotateMaxBackups = 3
	RotateMaxAge     = 28
)

// Logger writes leveled printf-style messages to the terminal and an
// optional rotated file. Loggers derived with Named share one sink.
type Logger struct {
	sink *sink

	Name       string
	Level      LogLevel
	File       string
	JSON       bool
	NoColor    bool
	NoTerminal bool
}

// NewLogger writes to stdout unless noTerminal is set, and to file when
// it is not empty. Stdout is used when neither is selected.
func NewLogger(name string, level LogLevel, file string, noTerminal bool) *Logger {
	var writers []io.Writer
	var closer io.Closer

	if !noTerminal {
		writers = append(writers, os.Stdout)
	}
	if file != "" {
		rotated := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    RotateMaxSize,
			MaxBackups: RotateMaxBackups,
			MaxAge:     RotateMaxAge,
		}

		writers = append(writers, rotated)
		closer = rotated
	}
	if len(writers) == 0 {
		writers = append(writers, os.Stdout)
	}

	return &Logger{
		sink: &sink{out: io.MultiWriter(writers...), closer: closer},

		Name:       name,
		Level:      level,
		File:       file,
		NoTerminal: noTerminal,
	}
}

// NewWriterLogger creates an uncolored logger writing to w only.
func NewWriterLogger(name string, level LogLevel, w io.Writer) *Logger {
	return &Logger{
		sink: &sink{out: w},

		Name:       name,
		Level:      level,
		NoColor:    true,
		NoTerminal: true,
	}
}

// Discard returns a logger that drops every message.
func Discard() *Logger {
	return NewWriterLogger("", Fatal+1, io.Discard)
}

func (l *Logger) Debug(msg string, args ...any) { l.log(Debug, msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.log(Info, msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.log(Warn, msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.log(Error, msg, args...) }

// Fatal logs msg and exits the process.
func (l *Logger) Fatal(msg string, args ...any) {
	l.log(Fatal, msg, args...)
	os.Exit(1)
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level LogLevel) bool {
	return level >= l.Level
}

// Named returns a child logger whose name is appended to l's, e.g.
// "uprocfs/fuse".
func (l *Logger) Named(name string) *Logger {
	child := *l
	if l.Name != "" {
		child.Name = l.Name + "/" + name
	} else {
		child.Name = name
	}

	return &child
}

// Close releases the rotated log file, if any. Named children share the
// file, so only the root logger should be closed.
func (l *Logger) Close() error {
	if l.sink.closer == nil {
		return nil
	}

	return l.sink.closer.Close()
}

func (l *Logger) log(level LogLevel, msg string, args ...any) {
	if !l.Enabled(level) {
		return
	}

	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	var line string
	if l.JSON {
		line = formatJSON(l.Name, level, msg)
	} else {
		line = formatText(l.Name, level, msg, !l.NoTerminal && !l.NoColor)
	}

	l.sink.write(line)
}
