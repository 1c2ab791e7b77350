package data

import (
	"time"

	"github.com/google/uuid"
)

func NewEntry(mode FileMode, linkCount uint32, size int64) *Entry {
	now := time.Now()

	return &Entry{
		ID:         genEntryID(),
		Mode:       mode,
		LinkCount:  linkCount,
		Size:       size,
		ChangeTime: now,
		ModifyTime: now,
		AccessTime: now,
		Attributes: make(map[string][]byte),
	}
}

// NewRootEntry creates the entry for "/".
func NewRootEntry() *Entry {
	entry := NewEntry(ModeDir|0o755, 2, 0)
	entry.Inode = RootInode

	return entry
}

// NewFileEntry creates a regular file reporting the control file size.
func NewFileEntry(perm FileMode) *Entry {
	return NewEntry(ModeRegular|perm.Perm(), 1, ControlFileSize)
}

// NewDirectoryEntry creates an empty directory.
func NewDirectoryEntry(perm FileMode) *Entry {
	return NewEntry(ModeDir|perm.Perm(), 2, 0)
}

// NewSymlinkEntry creates a symbolic link whose size is the length of target.
func NewSymlinkEntry(target string) *Entry {
	return NewEntry(ModeSymlink|0o777, 1, int64(len(target)))
}

func genEntryID() string {
	return uuid.Must(uuid.NewV7()).String()
}
