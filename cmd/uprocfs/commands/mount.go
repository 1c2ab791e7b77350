package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/shayshai/uprocfs"
	"github.com/shayshai/uprocfs/config"
	"github.com/shayshai/uprocfs/fuse"
	"github.com/shayshai/uprocfs/log"
	"github.com/shayshai/uprocfs/metrics"
	"github.com/shayshai/uprocfs/server"
)

var mountCmd = &cobra.Command{
	Use:   "mount [mountpoint]",
	Short: "Mount the filesystem in the foreground",
	Long: `Mount the filesystem and serve it until SIGINT or SIGTERM.

The mountpoint defaults to the configured one (/var/u0). It is created
and chowned to the current user when missing.

Examples:
  # Mount at the default location
  uprocfs mount

  # Mount elsewhere with debug logging and the status server
  uprocfs mount /mnt/ctl --log-level debug --metrics-listen 127.0.0.1:9470

  # Environment overrides
  UPROCFS_LOGGING_LEVEL=DEBUG uprocfs mount`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMount,
}

func init() {
	mountCmd.Flags().Bool("allow-other", false, "Allow other users to access the mount")
	mountCmd.Flags().Bool("debug", false, "Log every FUSE request")
	mountCmd.Flags().String("log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	mountCmd.Flags().String("log-file", "", "Write logs to a rotated file")
	mountCmd.Flags().String("metrics-listen", "", "Address of the status server, e.g. 127.0.0.1:9470")
}

// resolveConfig layers the mountpoint argument and changed flags over the
// loaded configuration.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, err
	}

	if len(args) > 0 {
		cfg.Mountpoint = args[0]
	}

	flags := cmd.Flags()
	if flags.Changed("allow-other") {
		cfg.AllowOther, _ = flags.GetBool("allow-other")
	}
	if flags.Changed("debug") {
		cfg.Fuse.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("log-level") {
		level, _ := flags.GetString("log-level")
		cfg.Logging.Level = strings.ToUpper(level)
	}
	if flags.Changed("log-file") {
		cfg.Logging.File, _ = flags.GetString("log-file")
	}
	if flags.Changed("metrics-listen") {
		cfg.Metrics.Listen, _ = flags.GetString("metrics-listen")
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// prepareMountpoint creates path owned by the current user when missing.
func prepareMountpoint(path string) error {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("mountpoint %s is not a directory", path)
		}
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to create mountpoint %s: %w", path, err)
	}

	return os.Chown(path, os.Getuid(), os.Getgid())
}

// fileSystemOptions translates the logging configuration into options for
// uprocfs.New, which then owns the logger.
func fileSystemOptions(cfg *config.Config, m *metrics.Metrics) []uprocfs.FileSystemOption {
	opts := []uprocfs.FileSystemOption{
		uprocfs.WithLogLevel(cfg.LogLevel()),
		uprocfs.WithLogFile(cfg.Logging.File),
		uprocfs.WithMetrics(m),
	}
	if cfg.Logging.NoTerminal {
		opts = append(opts, uprocfs.WithoutTerminalLog())
	}
	if cfg.Logging.JSON {
		opts = append(opts, uprocfs.WithJSONLog())
	}

	return opts
}

// watchStatus runs start in the background. A failure is logged as soon as
// it happens and cancel is called so the mount shuts down with it.
func watchStatus(ctx context.Context, start func(context.Context) error, logger *log.Logger, cancel context.CancelFunc) <-chan error {
	done := make(chan error, 1)

	go func() {
		err := start(ctx)
		if err != nil {
			logger.Error("status server stopped: %v", err)
			cancel()
		}

		done <- err
	}()

	return done
}

func runMount(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := prepareMountpoint(cfg.Mountpoint); err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	fs, err := uprocfs.New(fileSystemOptions(cfg, metrics.NewMetrics(registry))...)
	if err != nil {
		return fmt.Errorf("failed to create filesystem: %w", err)
	}
	defer fs.Close()

	logger := fs.Logger()

	logger.Info("control files: %s", strings.Join(fs.Events(), ", "))

	fuseServer, err := fuse.Mount(fuse.Options{
		Mountpoint:   cfg.Mountpoint,
		FileSystem:   fs,
		AllowOther:   cfg.AllowOther,
		Debug:        cfg.Fuse.Debug,
		EntryTimeout: cfg.Fuse.EntryTimeout,
		AttrTimeout:  cfg.Fuse.AttrTimeout,
		Logger:       logger.Named("fuse"),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var statusErr <-chan error
	if cfg.Metrics.Listen != "" {
		status, err := server.New(cfg.Metrics.Listen, fs, registry, logger.Named("server"))
		if err != nil {
			_ = fuseServer.Unmount()
			return err
		}

		statusErr = watchStatus(ctx, status.Start, logger, stop)
	} else {
		closed := make(chan error)
		close(closed)
		statusErr = closed
	}

	unmounted := make(chan struct{})
	go func() {
		select {
		case <-unmounted:
			return
		case <-ctx.Done():
		}

		logger.Info("unmounting %s", cfg.Mountpoint)
		if err := fuseServer.Unmount(); err != nil {
			logger.Error("failed to unmount %s: %v", cfg.Mountpoint, err)
		}
	}()

	fuseServer.Wait()
	close(unmounted)
	stop()

	if err := <-statusErr; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info("filesystem unmounted")
	return nil
}
