// Package uprocfs implements a flat virtual filesystem whose control files
// dispatch reads and writes to command handlers instead of storing data.
package uprocfs

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/shayshai/uprocfs/command"
	"github.com/shayshai/uprocfs/command/builtin"
	"github.com/shayshai/uprocfs/data"
	"github.com/shayshai/uprocfs/event"
	"github.com/shayshai/uprocfs/log"
	"github.com/shayshai/uprocfs/metadata"
	"github.com/shayshai/uprocfs/metrics"
)

// ControlFileMode is the mode of every control file created at startup.
const ControlFileMode = data.ModeRegular | 0o755

// FileSystem is one independent instance of the namespace. Metadata work
// is serialized by a single lock, handlers run outside of it.
type FileSystem struct {
	mu sync.Mutex

	log        *log.Logger
	ownsLog    bool
	table      *metadata.Table
	dispatcher *event.Dispatcher
	metrics    *metrics.Metrics

	lastHandle atomic.Uint64
}

func New(opts ...FileSystemOption) (*FileSystem, error) {
	options := newDefaultFileSystemOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	logger, ownsLog := options.Logger, false
	if logger == nil {
		logger = log.NewLogger("uprocfs", options.LogLevel, options.LogFile, options.NoTerminalLog)
		logger.JSON = options.JSONLog
		ownsLog = true
	}

	fs := &FileSystem{
		log:     logger,
		ownsLog: ownsLog,
		table:   metadata.NewTable(),
		metrics: options.Metrics,
	}
	fs.dispatcher = event.NewDispatcher(
		event.WithLogger(logger.Named("event")),
		event.WithMetrics(options.Metrics),
	)

	handlers := options.Handlers
	if handlers == nil {
		handlers = builtin.Defaults(logger)
	}

	fs.log.Debug("binding %d control files", handlers.Len())
	if err := handlers.Register(fs.dispatcher); err != nil {
		fs.Close()
		return nil, err
	}

	ctx := context.Background()
	for _, name := range handlers.Names() {
		path := data.CleanPath(name)
		if _, err := fs.Create(ctx, path, ControlFileMode); err != nil {
			fs.Close()
			return nil, fmt.Errorf("failed to create control file '%s': %w", path, err)
		}
	}

	return fs, nil
}

// RegisterControlFile binds handler to its name and creates the control file.
func (fs *FileSystem) RegisterControlFile(ctx context.Context, handler command.Handler) error {
	if handler == nil {
		return fmt.Errorf("%w: handler cannot be nil", data.ErrInvalid)
	}

	path := data.CleanPath(handler.Name())
	if !data.IsTopLevel(path) {
		return data.InvalidPath(path)
	}

	if err := fs.dispatcher.Register(path, handler); err != nil {
		return fmt.Errorf("failed to register control file: %w", err)
	}

	if _, err := fs.Create(ctx, path, ControlFileMode); err != nil {
		fs.dispatcher.Unregister(path)
		return fmt.Errorf("failed to create control file '%s': %w", path, err)
	}

	fs.log.Debug("registered control file %s", path)
	return nil
}

// Events returns the sorted paths that have a handler bound.
func (fs *FileSystem) Events() []string {
	return fs.dispatcher.Events()
}

// Entries returns the number of paths, including the root.
func (fs *FileSystem) Entries() int {
	return fs.table.Len()
}

// Logger returns the logger shared by the instance.
func (fs *FileSystem) Logger() *log.Logger {
	return fs.log
}

// Close releases the log file opened by New.
func (fs *FileSystem) Close() error {
	if !fs.ownsLog {
		return nil
	}

	return fs.log.Close()
}
