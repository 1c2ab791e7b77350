package uprocfs

import (
	"time"

	"github.com/shayshai/uprocfs/data"
)

func (fs *FileSystem) nextHandle() uint64 {
	return fs.lastHandle.Add(1)
}

func (fs *FileSystem) observe(operation string, start time.Time, err *error) {
	fs.metrics.RecordOperation(operation, start, *err)
}

// resolve cleans path and rejects anything that is not a root child.
func resolve(path string) (string, error) {
	path = data.CleanPath(path)
	if !data.IsTopLevel(path) {
		return path, data.NotExist(path)
	}

	return path, nil
}

// This is a unsafe call that doesn't acquire or check locks.
func (fs *FileSystem) unsafeRoot() *data.Entry {
	root, err := fs.table.Get(data.RootPath)
	if err != nil {
		// The table never drops its root
		panic(err)
	}

	return root
}

// unsafePut stores entry at path and keeps the root link count equal to
// two plus the number of child directories.
func (fs *FileSystem) unsafePut(path string, entry *data.Entry) {
	root := fs.unsafeRoot()
	if previous, err := fs.table.Get(path); err == nil && previous.IsDir() {
		root.LinkCount--
	}
	if entry.IsDir() {
		root.LinkCount++
	}

	fs.table.Set(path, entry)
	fs.metrics.SetEntries(fs.table.Len())
}

func (fs *FileSystem) unsafeRemove(path string) error {
	entry, err := fs.table.Get(path)
	if err != nil {
		return err
	}

	if entry.IsDir() {
		fs.unsafeRoot().LinkCount--
	}

	fs.table.Remove(path)
	fs.metrics.SetEntries(fs.table.Len())

	return nil
}

func (fs *FileSystem) unsafeRename(oldPath, newPath string) error {
	entry, err := fs.table.Get(oldPath)
	if err != nil {
		return err
	}

	if oldPath == newPath {
		return nil
	}

	if previous, err := fs.table.Get(newPath); err == nil && previous.IsDir() {
		fs.unsafeRoot().LinkCount--
	}

	if err := fs.table.Rename(oldPath, newPath); err != nil {
		return err
	}

	entry.ChangeTime = time.Now()
	fs.metrics.SetEntries(fs.table.Len())

	return nil
}

// update runs fn on the entry at path while holding the instance lock.
func (fs *FileSystem) update(path string, fn func(*data.Entry) error) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	return fs.table.Update(path, fn)
}

func (fs *FileSystem) exists(path string) bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	return fs.table.Exists(path)
}
