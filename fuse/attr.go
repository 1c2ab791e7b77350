package fuse

import (
	"github.com/hanwen/go-fuse/v2/fuse"
	"github.com/shayshai/uprocfs/data"
)

const blockSize = 512

// fillAttr copies entry into out. Entries without an explicit owner are
// reported as owned by uid and gid.
func fillAttr(entry *data.Entry, uid, gid uint32, out *fuse.Attr) {
	out.Ino = entry.Inode
	out.Mode = uint32(entry.Mode)
	out.Nlink = entry.LinkCount
	out.Size = uint64(max(entry.Size, 0))
	out.Blksize = blockSize
	out.Blocks = (out.Size + blockSize - 1) / blockSize
	out.SetTimes(&entry.AccessTime, &entry.ModifyTime, &entry.ChangeTime)

	if entry.UID != nil {
		uid = *entry.UID
	}
	if entry.GID != nil {
		gid = *entry.GID
	}
	out.Owner = fuse.Owner{Uid: uid, Gid: gid}
}

func fillStatfs(stat *data.StatFs, out *fuse.StatfsOut) {
	out.Bsize = stat.BlockSize
	out.Frsize = stat.BlockSize
	out.Blocks = stat.Blocks
	out.Bfree = stat.BlocksFree
	out.Bavail = stat.BlocksAvailable
	out.NameLen = stat.NameLength
}

// copyXAttr implements the size probing convention of getxattr and
// listxattr: a short buffer gets the required size together with ERANGE.
func copyXAttr(value, dest []byte) (uint32, bool) {
	if len(dest) < len(value) {
		return uint32(len(value)), false
	}

	return uint32(copy(dest, value)), true
}

// joinXAttrNames encodes names the way listxattr returns them.
func joinXAttrNames(names []string) []byte {
	var buf []byte
	for _, name := range names {
		buf = append(buf, name...)
		buf = append(buf, 0)
	}

	return buf
}
