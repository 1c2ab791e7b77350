package uprocfs

import (
	"context"
	"time"

	"github.com/shayshai/uprocfs/command"
	"github.com/shayshai/uprocfs/data"
)

// Operations is the path based operation set a host runtime drives.
// Every path is absolute, nested paths never exist.
type Operations interface {
	// Create adds a regular file at path, replacing any existing entry,
	// and returns a new file descriptor.
	Create(ctx context.Context, path string, mode data.FileMode) (uint64, error)

	// Open checks that path exists and returns a new file descriptor.
	// Flags are not validated.
	Open(ctx context.Context, path string, flags uint32) (uint64, error)

	// Read fires the read event for path and returns the handler output.
	// Size and offset are ignored, every read returns the full response.
	Read(ctx context.Context, path string, size int, offset int64, fh uint64) ([]byte, error)

	// Write fires the write event for path with the payload minus trailing
	// whitespace and always reports the full payload as written.
	Write(ctx context.Context, path string, buffer []byte, offset int64, fh uint64) (int, error)

	// GetAttr returns a copy of the entry stored at path.
	GetAttr(ctx context.Context, path string) (*data.Entry, error)

	// ReadDir returns the names inside the directory at path, including "." and "..".
	// Paths that are not directories return ErrNotDir.
	ReadDir(ctx context.Context, path string) ([]string, error)

	// ReadLink returns the target recorded for the symlink at path.
	ReadLink(ctx context.Context, path string) (string, error)

	// Rename moves the entry at oldPath to newPath, replacing any entry there.
	Rename(ctx context.Context, oldPath, newPath string) error

	// Mkdir adds an empty directory at path.
	Mkdir(ctx context.Context, path string, mode data.FileMode) error

	// Rmdir removes the directory at path without checking its contents.
	Rmdir(ctx context.Context, path string) error

	// Unlink removes the entry at path together with its contents.
	Unlink(ctx context.Context, path string) error

	// Symlink adds a symbolic link at target pointing to source.
	Symlink(ctx context.Context, target, source string) error

	// Truncate resizes the backing contents of path, zero filling on growth.
	Truncate(ctx context.Context, path string, length int64) error

	// Chmod replaces the permission bits of path.
	Chmod(ctx context.Context, path string, mode data.FileMode) error

	// Chown sets the owner of path. A value of -1 leaves that id unchanged.
	Chown(ctx context.Context, path string, uid, gid int64) error

	// Utimens sets the access and modification times of path. Nil means now.
	Utimens(ctx context.Context, path string, atime, mtime *time.Time) error

	// StatFs returns the fixed capacity figures of the mount.
	StatFs(ctx context.Context, path string) (*data.StatFs, error)

	GetXAttr(ctx context.Context, path, name string) ([]byte, error)
	SetXAttr(ctx context.Context, path, name string, value []byte, flags uint32) error
	ListXAttr(ctx context.Context, path string) ([]string, error)
	RemoveXAttr(ctx context.Context, path, name string) error
}

// ControlPlane manages the handlers bound to control files.
type ControlPlane interface {
	// RegisterControlFile binds handler and creates its control file.
	RegisterControlFile(ctx context.Context, handler command.Handler) error

	// Events returns the sorted paths that have a handler bound.
	Events() []string

	// Entries returns the number of paths, including the root.
	Entries() int
}

var (
	_ Operations   = (*FileSystem)(nil)
	_ ControlPlane = (*FileSystem)(nil)
)
