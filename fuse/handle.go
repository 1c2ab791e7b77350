package fuse

import (
	"context"
	"sync"
	"syscall"

	gofuse "github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"
	"github.com/shayshai/uprocfs"
)

// controlHandle is one open file. The core ignores offsets and returns a
// complete response on every read, so the handle keeps the response of
// the first read and serves later offsets from it.
type controlHandle struct {
	mu       sync.Mutex
	fs       uprocfs.Operations
	path     func() string
	fh       uint64
	response []byte
	loaded   bool
}

var _ gofuse.FileReader = (*controlHandle)(nil)
var _ gofuse.FileWriter = (*controlHandle)(nil)
var _ gofuse.FileFlusher = (*controlHandle)(nil)
var _ gofuse.FileReleaser = (*controlHandle)(nil)

func newControlHandle(fs uprocfs.Operations, path func() string, fh uint64) *controlHandle {
	return &controlHandle{
		fs:   fs,
		path: path,
		fh:   fh,
	}
}

func (h *controlHandle) Read(ctx context.Context, dest []byte, off int64) (fuse.ReadResult, syscall.Errno) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.loaded || off == 0 {
		response, err := h.fs.Read(ctx, h.path(), len(dest), off, h.fh)
		if err != nil {
			return nil, ToErrno(err)
		}

		h.response = response
		h.loaded = true
	}

	if off >= int64(len(h.response)) {
		return fuse.ReadResultData(nil), 0
	}

	end := min(off+int64(len(dest)), int64(len(h.response)))
	return fuse.ReadResultData(h.response[off:end]), 0
}

func (h *controlHandle) Write(ctx context.Context, data []byte, off int64) (uint32, syscall.Errno) {
	h.mu.Lock()
	defer h.mu.Unlock()

	n, err := h.fs.Write(ctx, h.path(), data, off, h.fh)
	if err != nil {
		return 0, ToErrno(err)
	}

	// The next read must see the effect of this write
	h.loaded = false
	return uint32(n), 0
}

func (h *controlHandle) Flush(ctx context.Context) syscall.Errno {
	return 0
}

func (h *controlHandle) Release(ctx context.Context) syscall.Errno {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.response = nil
	return 0
}
