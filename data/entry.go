package data

import "time"

// ControlFileSize is the size reported for every file created through
// Create and after every write. Tools that skip reading files reporting a
// zero size would otherwise never issue the read that triggers a handler.
const ControlFileSize int64 = 1024

// RootInode is the inode number of the root directory.
const RootInode uint64 = 1

// Entry holds the attributes of one path in the flat namespace.
type Entry struct {
	// Identity, stable across rename
	ID string `json:"id"`

	// Inode number presented to the host runtime
	Inode uint64 `json:"inode"`

	// Unix type and permission bits
	Mode FileMode `json:"mode"`

	// Number of hard links, 2 for directories
	LinkCount uint32 `json:"link_count"`

	// Size in bytes, informational for control files
	Size int64 `json:"size"`

	ChangeTime time.Time `json:"change_time"`
	ModifyTime time.Time `json:"modify_time"`
	AccessTime time.Time `json:"access_time"`

	// Ownership, nil until explicitly set
	UID *uint32 `json:"uid,omitempty"`
	GID *uint32 `json:"gid,omitempty"`

	// Extended attributes
	Attributes map[string][]byte `json:"attributes,omitempty"`
}

// IsDir returns true if this entry is a directory.
func (e *Entry) IsDir() bool {
	return e.Mode.IsDir()
}

// IsRegular returns true if this entry is a regular file.
func (e *Entry) IsRegular() bool {
	return e.Mode.IsRegular()
}

// IsSymlink returns true if this entry is a symbolic link.
func (e *Entry) IsSymlink() bool {
	return e.Mode.IsSymlink()
}

// Touch sets the modify and change time to now.
func (e *Entry) Touch() {
	now := time.Now()
	e.ModifyTime = now
	e.ChangeTime = now
}

// Clone creates a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	clone := *e

	if e.UID != nil {
		uid := *e.UID
		clone.UID = &uid
	}
	if e.GID != nil {
		gid := *e.GID
		clone.GID = &gid
	}

	clone.Attributes = make(map[string][]byte, len(e.Attributes))
	for name, value := range e.Attributes {
		clone.Attributes[name] = append([]byte(nil), value...)
	}

	return &clone
}
