package metadata

import (
	"github.com/shayshai/uprocfs/data"
)

// Get returns the stored entry for path. The pointer is shared with the
// table, callers that mutate it must serialize access themselves.
func (t *Table) Get(path string) (*data.Entry, error) {
	path = data.CleanPath(path)

	t.mu.RLock()
	defer t.mu.RUnlock()

	_, entry, exists := t.getEntry(path)
	if !exists {
		return nil, data.NotExist(path)
	}

	return entry, nil
}

// Set inserts or overwrites the entry stored at path. An entry without an
// inode number gets the next free one. Overwriting drops the previous
// entry's contents.
func (t *Table) Set(path string, entry *data.Entry) {
	path = data.CleanPath(path)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.unsafeSet(path, entry)
}

// Update runs fn on the entry stored at path while holding the write lock.
func (t *Table) Update(path string, fn func(*data.Entry) error) error {
	path = data.CleanPath(path)

	t.mu.Lock()
	defer t.mu.Unlock()

	_, entry, exists := t.getEntry(path)
	if !exists {
		return data.NotExist(path)
	}

	return fn(entry)
}

// Remove drops the entry and its contents. The root is never removed.
func (t *Table) Remove(path string) bool {
	path = data.CleanPath(path)
	if data.IsRoot(path) {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	return t.unsafeRemove(path)
}

// Rename moves the entry at oldPath to newPath, replacing whatever was
// stored there.
func (t *Table) Rename(oldPath, newPath string) error {
	oldPath = data.CleanPath(oldPath)
	newPath = data.CleanPath(newPath)

	if data.IsRoot(oldPath) || data.IsRoot(newPath) {
		return data.InvalidPath(data.RootPath)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	return t.unsafeRename(oldPath, newPath)
}

// ListChildren returns the names of all direct children of the root.
func (t *Table) ListChildren() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.unsafeChildren()
}

// Contents returns a copy of the backing bytes stored for path.
func (t *Table) Contents(path string) ([]byte, bool) {
	path = data.CleanPath(path)

	t.mu.RLock()
	defer t.mu.RUnlock()

	id, _, exists := t.getEntry(path)
	if !exists {
		return nil, false
	}

	contents, exists := t.contents[id]
	if !exists {
		return nil, false
	}

	return append([]byte(nil), contents...), true
}

// SetContents replaces the backing bytes stored for path.
func (t *Table) SetContents(path string, contents []byte) error {
	path = data.CleanPath(path)

	t.mu.Lock()
	defer t.mu.Unlock()

	id, _, exists := t.getEntry(path)
	if !exists {
		return data.NotExist(path)
	}

	t.contents[id] = append([]byte(nil), contents...)
	return nil
}

// Exists reports whether path is present.
func (t *Table) Exists(path string) bool {
	path = data.CleanPath(path)

	t.mu.RLock()
	defer t.mu.RUnlock()

	_, _, exists := t.getEntry(path)
	return exists
}

// Len returns the number of paths, including the root.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.keys.Len()
}
