package fuse

import (
	"context"
	"syscall"

	gofuse "github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"
)

// entryNode is any child of the root: a control file, a plain file, a
// symlink or an always empty directory.
type entryNode struct {
	node
}

var _ gofuse.InodeEmbedder = (*entryNode)(nil)
var _ gofuse.NodeLookuper = (*entryNode)(nil)
var _ gofuse.NodeReaddirer = (*entryNode)(nil)
var _ gofuse.NodeOpener = (*entryNode)(nil)
var _ gofuse.NodeReadlinker = (*entryNode)(nil)
var _ gofuse.NodeGetattrer = (*entryNode)(nil)
var _ gofuse.NodeSetattrer = (*entryNode)(nil)
var _ gofuse.NodeStatfser = (*entryNode)(nil)
var _ gofuse.NodeGetxattrer = (*entryNode)(nil)
var _ gofuse.NodeSetxattrer = (*entryNode)(nil)
var _ gofuse.NodeRemovexattrer = (*entryNode)(nil)
var _ gofuse.NodeListxattrer = (*entryNode)(nil)

func (e *entryNode) Lookup(ctx context.Context, name string, out *fuse.EntryOut) (*gofuse.Inode, syscall.Errno) {
	return nil, syscall.ENOENT
}

func (e *entryNode) Readdir(ctx context.Context) (gofuse.DirStream, syscall.Errno) {
	if _, err := e.options.FileSystem.ReadDir(ctx, e.path()); err != nil {
		return nil, ToErrno(err)
	}

	return gofuse.NewListDirStream(nil), 0
}

func (e *entryNode) Open(ctx context.Context, flags uint32) (gofuse.FileHandle, uint32, syscall.Errno) {
	fh, err := e.options.FileSystem.Open(ctx, e.path(), flags)
	if err != nil {
		return nil, 0, ToErrno(err)
	}

	return newControlHandle(e.options.FileSystem, e.path, fh), fuse.FOPEN_DIRECT_IO, 0
}

func (e *entryNode) Readlink(ctx context.Context) ([]byte, syscall.Errno) {
	target, err := e.options.FileSystem.ReadLink(ctx, e.path())
	if err != nil {
		return nil, ToErrno(err)
	}

	return []byte(target), 0
}
