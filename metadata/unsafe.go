package metadata

import (
	"github.com/shayshai/uprocfs/data"
)

// This is a unsafe call that doesn't acquire or check locks.
func (t *Table) unsafeSet(path string, entry *data.Entry) {
	if entry.Inode == 0 {
		t.lastInode++
		entry.Inode = t.lastInode
	}

	if previous, exists := t.keys.Get(path); exists && previous != entry.ID {
		t.unsafeDrop(path, previous)
	}

	t.keys.Set(path, entry.ID)
	t.entries[entry.ID] = entry
}

func (t *Table) unsafeRemove(path string) bool {
	id, exists := t.keys.Get(path)
	if !exists {
		return false
	}

	t.unsafeDrop(path, id)
	return true
}

// unsafeDrop removes the path key and releases the entry once no other key
// refers to it.
func (t *Table) unsafeDrop(path, id string) {
	t.keys.Delete(path)

	if !t.isReferenced(id) {
		delete(t.entries, id)
		delete(t.contents, id)
	}
}

func (t *Table) unsafeRename(oldPath, newPath string) error {
	id, _, exists := t.getEntry(oldPath)
	if !exists {
		return data.NotExist(oldPath)
	}

	if oldPath == newPath {
		return nil
	}

	if previous, exists := t.keys.Get(newPath); exists && previous != id {
		t.unsafeDrop(newPath, previous)
	}

	t.keys.Delete(oldPath)
	t.keys.Set(newPath, id)

	return nil
}

func (t *Table) unsafeChildren() []string {
	children := make([]string, 0, t.keys.Len())
	t.keys.Scan(func(path, _ string) bool {
		if data.IsTopLevel(path) {
			children = append(children, data.BaseName(path))
		}

		return true
	})

	return children
}
