package fuse

import (
	"errors"
	"syscall"

	"github.com/shayshai/uprocfs/data"
)

// ToErrno maps errors returned by the filesystem core to the errno the
// kernel expects.
func ToErrno(err error) syscall.Errno {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, data.ErrNotExist), errors.Is(err, data.ErrInvalidPath):
		return syscall.ENOENT
	case errors.Is(err, data.ErrNotDir):
		return syscall.ENOTDIR
	case errors.Is(err, data.ErrTooLarge):
		return syscall.EFBIG
	case errors.Is(err, data.ErrNoAttribute):
		return syscall.ENODATA
	case errors.Is(err, data.ErrHandlerExists):
		return syscall.EEXIST
	case errors.Is(err, data.ErrInvalid):
		return syscall.EINVAL
	default:
		return syscall.EIO
	}
}
