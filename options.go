package uprocfs

import (
	"fmt"

	"github.com/shayshai/uprocfs/command"
	"github.com/shayshai/uprocfs/data"
	"github.com/shayshai/uprocfs/log"
	"github.com/shayshai/uprocfs/metrics"
)

type FileSystemOptions struct {
	LogLevel      log.LogLevel
	LogFile       string
	NoTerminalLog bool
	JSONLog       bool

	// Logger replaces the logger built from the fields above
	Logger *log.Logger

	// Handlers bound at startup, the builtin set when nil
	Handlers *command.Set

	Metrics *metrics.Metrics
}

type FileSystemOption func(*FileSystemOptions) error

func newDefaultFileSystemOptions() *FileSystemOptions {
	return &FileSystemOptions{
		LogLevel: log.Info,
	}
}

func WithLogLevel(logLevel log.LogLevel) FileSystemOption {
	return func(opts *FileSystemOptions) error {
		opts.LogLevel = logLevel
		return nil
	}
}

func WithoutTerminalLog() FileSystemOption {
	return func(opts *FileSystemOptions) error {
		opts.NoTerminalLog = true
		return nil
	}
}

func WithLogFile(logFile string) FileSystemOption {
	return func(opts *FileSystemOptions) error {
		opts.LogFile = logFile
		return nil
	}
}

func WithJSONLog() FileSystemOption {
	return func(opts *FileSystemOptions) error {
		opts.JSONLog = true
		return nil
	}
}

func WithLogger(logger *log.Logger) FileSystemOption {
	return func(opts *FileSystemOptions) error {
		if logger == nil {
			return fmt.Errorf("%w: logger cannot be nil", data.ErrInvalid)
		}

		opts.Logger = logger
		return nil
	}
}

func WithHandlers(handlers *command.Set) FileSystemOption {
	return func(opts *FileSystemOptions) error {
		if handlers == nil {
			return fmt.Errorf("%w: handler set cannot be nil", data.ErrInvalid)
		}

		opts.Handlers = handlers
		return nil
	}
}

func WithMetrics(m *metrics.Metrics) FileSystemOption {
	return func(opts *FileSystemOptions) error {
		opts.Metrics = m
		return nil
	}
}
