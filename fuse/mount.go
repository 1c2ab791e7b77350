package fuse

import (
	"fmt"
	"os"
	"time"

	gofuse "github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"
	"github.com/shayshai/uprocfs"
	"github.com/shayshai/uprocfs/log"
)

// FsName is reported as the mount source, e.g. in /proc/mounts.
const FsName = "uprocfs"

// DefaultTimeout is used for entry and attribute caching when unset.
const DefaultTimeout = time.Second

// Options configures the FUSE mount.
type Options struct {
	// Mountpoint is the directory where the filesystem is mounted.
	Mountpoint string

	// FileSystem serves every operation.
	FileSystem uprocfs.Operations

	// AllowOther permits other users to access the mount. Requires
	// user_allow_other in /etc/fuse.conf.
	AllowOther bool

	// Debug logs every request exchanged with the kernel.
	Debug bool

	// EntryTimeout and AttrTimeout control kernel caching of lookups
	// and attributes. Zero uses DefaultTimeout.
	EntryTimeout time.Duration
	AttrTimeout  time.Duration

	// Logger receives diagnostic messages. If nil, nothing is logged.
	Logger *log.Logger

	// Owner reported for entries without an explicit owner
	uid, gid uint32
}

// Mount mounts fs at the configured mountpoint and serves it in the
// background. The caller must call Unmount on the returned Server when
// done. The mountpoint directory is created if it does not exist.
func Mount(options Options) (*fuse.Server, error) {
	if options.Mountpoint == "" {
		return nil, fmt.Errorf("mountpoint is required")
	}
	if options.FileSystem == nil {
		return nil, fmt.Errorf("filesystem is required")
	}

	if options.Logger == nil {
		options.Logger = log.Discard()
	}
	if options.EntryTimeout == 0 {
		options.EntryTimeout = DefaultTimeout
	}
	if options.AttrTimeout == 0 {
		options.AttrTimeout = DefaultTimeout
	}

	options.uid = uint32(os.Getuid())
	options.gid = uint32(os.Getgid())

	if err := os.MkdirAll(options.Mountpoint, 0o755); err != nil {
		return nil, fmt.Errorf("creating mountpoint %s: %w", options.Mountpoint, err)
	}

	root := &rootNode{node: node{options: &options}}

	server, err := gofuse.Mount(options.Mountpoint, root, &gofuse.Options{
		EntryTimeout: &options.EntryTimeout,
		AttrTimeout:  &options.AttrTimeout,
		UID:          options.uid,
		GID:          options.gid,
		MountOptions: fuse.MountOptions{
			FsName:     FsName,
			Name:       FsName,
			AllowOther: options.AllowOther,
			Debug:      options.Debug,
			Logger:     options.Logger.StdLogger(log.Debug),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("mounting FUSE filesystem at %s: %w", options.Mountpoint, err)
	}

	options.Logger.Info("filesystem mounted at %s", options.Mountpoint)
	return server, nil
}
