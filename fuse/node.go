package fuse

import (
	"context"
	"syscall"

	gofuse "github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"
	"github.com/shayshai/uprocfs/data"
)

// node holds what every inode in the mount shares. Methods defined here
// work for the root and for its children alike.
type node struct {
	gofuse.Inode
	options *Options
}

// path returns the absolute path of the node inside the mount.
func (n *node) path() string {
	return data.JoinRoot(n.Path(nil))
}

func (n *node) Getattr(ctx context.Context, f gofuse.FileHandle, out *fuse.AttrOut) syscall.Errno {
	entry, err := n.options.FileSystem.GetAttr(ctx, n.path())
	if err != nil {
		return ToErrno(err)
	}

	fillAttr(entry, n.options.uid, n.options.gid, &out.Attr)
	return 0
}

func (n *node) Setattr(ctx context.Context, f gofuse.FileHandle, in *fuse.SetAttrIn, out *fuse.AttrOut) syscall.Errno {
	fs, path := n.options.FileSystem, n.path()

	if mode, ok := in.GetMode(); ok {
		if err := fs.Chmod(ctx, path, data.FileMode(mode)); err != nil {
			return ToErrno(err)
		}
	}

	uid, uok := in.GetUID()
	gid, gok := in.GetGID()
	if uok || gok {
		newUID, newGID := int64(-1), int64(-1)
		if uok {
			newUID = int64(uid)
		}
		if gok {
			newGID = int64(gid)
		}

		if err := fs.Chown(ctx, path, newUID, newGID); err != nil {
			return ToErrno(err)
		}
	}

	if size, ok := in.GetSize(); ok {
		if err := fs.Truncate(ctx, path, int64(size)); err != nil {
			return ToErrno(err)
		}
	}

	atime, aok := in.GetATime()
	mtime, mok := in.GetMTime()
	if aok || mok {
		entry, err := fs.GetAttr(ctx, path)
		if err != nil {
			return ToErrno(err)
		}

		// Keep the time that was not part of the request
		if !aok {
			atime = entry.AccessTime
		}
		if !mok {
			mtime = entry.ModifyTime
		}

		if err := fs.Utimens(ctx, path, &atime, &mtime); err != nil {
			return ToErrno(err)
		}
	}

	return n.Getattr(ctx, f, out)
}

func (n *node) Statfs(ctx context.Context, out *fuse.StatfsOut) syscall.Errno {
	stat, err := n.options.FileSystem.StatFs(ctx, n.path())
	if err != nil {
		return ToErrno(err)
	}

	fillStatfs(stat, out)
	return 0
}

func (n *node) Getxattr(ctx context.Context, attr string, dest []byte) (uint32, syscall.Errno) {
	value, err := n.options.FileSystem.GetXAttr(ctx, n.path(), attr)
	if err != nil {
		return 0, ToErrno(err)
	}

	size, ok := copyXAttr(value, dest)
	if !ok {
		return size, syscall.ERANGE
	}

	return size, 0
}

func (n *node) Setxattr(ctx context.Context, attr string, value []byte, flags uint32) syscall.Errno {
	return ToErrno(n.options.FileSystem.SetXAttr(ctx, n.path(), attr, value, flags))
}

func (n *node) Removexattr(ctx context.Context, attr string) syscall.Errno {
	return ToErrno(n.options.FileSystem.RemoveXAttr(ctx, n.path(), attr))
}

func (n *node) Listxattr(ctx context.Context, dest []byte) (uint32, syscall.Errno) {
	names, err := n.options.FileSystem.ListXAttr(ctx, n.path())
	if err != nil {
		return 0, ToErrno(err)
	}

	size, ok := copyXAttr(joinXAttrNames(names), dest)
	if !ok {
		return size, syscall.ERANGE
	}

	return size, 0
}

// newChild builds the inode for entry. go-fuse reuses an existing inode
// with the same number, so repeated lookups return the same node.
func (n *node) newChild(ctx context.Context, entry *data.Entry, out *fuse.EntryOut) *gofuse.Inode {
	fillAttr(entry, n.options.uid, n.options.gid, &out.Attr)
	out.SetEntryTimeout(n.options.EntryTimeout)
	out.SetAttrTimeout(n.options.AttrTimeout)

	child := &entryNode{node: node{options: n.options}}
	return n.NewInode(ctx, child, gofuse.StableAttr{
		Mode: uint32(entry.Mode.Type()),
		Ino:  entry.Inode,
	})
}
