package fuse

import (
	"context"
	"syscall"

	gofuse "github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"
	"github.com/shayshai/uprocfs/data"
)

// rootNode is the only directory with children.
type rootNode struct {
	node
}

var _ gofuse.InodeEmbedder = (*rootNode)(nil)
var _ gofuse.NodeLookuper = (*rootNode)(nil)
var _ gofuse.NodeReaddirer = (*rootNode)(nil)
var _ gofuse.NodeCreater = (*rootNode)(nil)
var _ gofuse.NodeMkdirer = (*rootNode)(nil)
var _ gofuse.NodeUnlinker = (*rootNode)(nil)
var _ gofuse.NodeRmdirer = (*rootNode)(nil)
var _ gofuse.NodeRenamer = (*rootNode)(nil)
var _ gofuse.NodeSymlinker = (*rootNode)(nil)
var _ gofuse.NodeGetattrer = (*rootNode)(nil)
var _ gofuse.NodeSetattrer = (*rootNode)(nil)
var _ gofuse.NodeStatfser = (*rootNode)(nil)
var _ gofuse.NodeGetxattrer = (*rootNode)(nil)
var _ gofuse.NodeSetxattrer = (*rootNode)(nil)
var _ gofuse.NodeRemovexattrer = (*rootNode)(nil)
var _ gofuse.NodeListxattrer = (*rootNode)(nil)

func (r *rootNode) Lookup(ctx context.Context, name string, out *fuse.EntryOut) (*gofuse.Inode, syscall.Errno) {
	entry, err := r.options.FileSystem.GetAttr(ctx, data.JoinRoot(name))
	if err != nil {
		return nil, ToErrno(err)
	}

	return r.newChild(ctx, entry, out), 0
}

func (r *rootNode) Readdir(ctx context.Context) (gofuse.DirStream, syscall.Errno) {
	names, err := r.options.FileSystem.ReadDir(ctx, data.RootPath)
	if err != nil {
		return nil, ToErrno(err)
	}

	entries := make([]fuse.DirEntry, 0, len(names))
	for _, name := range names {
		// go-fuse reports "." and ".." on its own
		if name == "." || name == ".." {
			continue
		}

		entry, err := r.options.FileSystem.GetAttr(ctx, data.JoinRoot(name))
		if err != nil {
			// Removed between listing and stat
			continue
		}

		entries = append(entries, fuse.DirEntry{
			Name: name,
			Mode: uint32(entry.Mode.Type()),
			Ino:  entry.Inode,
		})
	}

	return gofuse.NewListDirStream(entries), 0
}

func (r *rootNode) Create(ctx context.Context, name string, flags uint32, mode uint32, out *fuse.EntryOut) (*gofuse.Inode, gofuse.FileHandle, uint32, syscall.Errno) {
	path := data.JoinRoot(name)

	fh, err := r.options.FileSystem.Create(ctx, path, data.FileMode(mode))
	if err != nil {
		return nil, nil, 0, ToErrno(err)
	}

	entry, err := r.options.FileSystem.GetAttr(ctx, path)
	if err != nil {
		return nil, nil, 0, ToErrno(err)
	}

	child := r.newChild(ctx, entry, out)
	handle := newControlHandle(r.options.FileSystem, func() string {
		return data.JoinRoot(child.Path(nil))
	}, fh)

	return child, handle, fuse.FOPEN_DIRECT_IO, 0
}

func (r *rootNode) Mkdir(ctx context.Context, name string, mode uint32, out *fuse.EntryOut) (*gofuse.Inode, syscall.Errno) {
	path := data.JoinRoot(name)

	if err := r.options.FileSystem.Mkdir(ctx, path, data.FileMode(mode)); err != nil {
		return nil, ToErrno(err)
	}

	entry, err := r.options.FileSystem.GetAttr(ctx, path)
	if err != nil {
		return nil, ToErrno(err)
	}

	return r.newChild(ctx, entry, out), 0
}

func (r *rootNode) Unlink(ctx context.Context, name string) syscall.Errno {
	return ToErrno(r.options.FileSystem.Unlink(ctx, data.JoinRoot(name)))
}

func (r *rootNode) Rmdir(ctx context.Context, name string) syscall.Errno {
	return ToErrno(r.options.FileSystem.Rmdir(ctx, data.JoinRoot(name)))
}

func (r *rootNode) Rename(ctx context.Context, name string, newParent gofuse.InodeEmbedder, newName string, flags uint32) syscall.Errno {
	// RENAME_EXCHANGE and RENAME_NOREPLACE are not supported
	if flags != 0 {
		return syscall.EINVAL
	}

	parent := data.JoinRoot(newParent.EmbeddedInode().Path(nil))
	newPath := data.CleanPath(parent + "/" + newName)

	return ToErrno(r.options.FileSystem.Rename(ctx, data.JoinRoot(name), newPath))
}

func (r *rootNode) Symlink(ctx context.Context, target, name string, out *fuse.EntryOut) (*gofuse.Inode, syscall.Errno) {
	path := data.JoinRoot(name)

	if err := r.options.FileSystem.Symlink(ctx, path, target); err != nil {
		return nil, ToErrno(err)
	}

	entry, err := r.options.FileSystem.GetAttr(ctx, path)
	if err != nil {
		return nil, ToErrno(err)
	}

	return r.newChild(ctx, entry, out), 0
}
