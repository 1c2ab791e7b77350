package uprocfs

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/shayshai/uprocfs/data"
)

func (fs *FileSystem) Create(ctx context.Context, path string, mode data.FileMode) (fh uint64, err error) {
	defer fs.observe("create", time.Now(), &err)
	fs.log.Debug("create %s %s", path, data.ModeRegular|mode.Perm())

	path, err = resolve(path)
	if err != nil {
		return 0, err
	}

	fs.mu.Lock()
	fs.unsafePut(path, data.NewFileEntry(mode))
	fs.mu.Unlock()

	return fs.nextHandle(), nil
}

func (fs *FileSystem) Open(ctx context.Context, path string, flags uint32) (fh uint64, err error) {
	defer fs.observe("open", time.Now(), &err)
	fs.log.Debug("open %s %s", path, data.ParseAccessMode(flags))

	path, err = resolve(path)
	if err != nil {
		return 0, err
	}

	if !fs.exists(path) {
		return 0, data.NotExist(path)
	}

	return fs.nextHandle(), nil
}

func (fs *FileSystem) Read(ctx context.Context, path string, size int, offset int64, fh uint64) (result []byte, err error) {
	defer fs.observe("read", time.Now(), &err)
	fs.log.Debug("read %s size=%d offset=%d fh=%d", path, size, offset, fh)

	path, err = resolve(path)
	if err != nil {
		return nil, err
	}

	if !fs.exists(path) {
		return nil, data.NotExist(path)
	}

	if fs.dispatcher.Has(path) {
		result, fired, ferr := fs.dispatcher.Fire(ctx, path, "", data.DispatchRead)
		if ferr != nil {
			// Logged by the dispatcher, a failing handler reads as empty
			return nil, nil
		}
		if fired {
			return result, nil
		}
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	contents, _ := fs.table.Contents(path)
	return contents, nil
}

func (fs *FileSystem) Write(ctx context.Context, path string, buffer []byte, offset int64, fh uint64) (n int, err error) {
	defer fs.observe("write", time.Now(), &err)
	fs.log.Debug("write %s len=%d offset=%d fh=%d", path, len(buffer), offset, fh)

	path, err = resolve(path)
	if err != nil {
		return 0, err
	}

	if !fs.exists(path) {
		return 0, data.NotExist(path)
	}

	if fs.dispatcher.Has(path) {
		argument := strings.TrimRightFunc(string(buffer), unicode.IsSpace)
		fs.dispatcher.Fire(ctx, path, argument, data.DispatchWrite)
	} else {
		fs.log.Debug("write %s: no handler bound, payload dropped", path)
	}

	// The entry may have been removed while the handler ran
	fs.update(path, func(entry *data.Entry) error {
		entry.Size = data.ControlFileSize
		entry.Touch()
		return nil
	})

	return len(buffer), nil
}

func (fs *FileSystem) ReadDir(ctx context.Context, path string) (names []string, err error) {
	defer fs.observe("readdir", time.Now(), &err)
	fs.log.Debug("readdir %s", path)

	path = data.CleanPath(path)
	names = []string{".", ".."}

	if data.IsRoot(path) {
		fs.mu.Lock()
		defer fs.mu.Unlock()

		return append(names, fs.table.ListChildren()...), nil
	}

	if _, err = resolve(path); err != nil {
		return nil, err
	}

	err = fs.update(path, func(entry *data.Entry) error {
		if !entry.IsDir() {
			return data.NotDir(path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return names, nil
}

func (fs *FileSystem) ReadLink(ctx context.Context, path string) (target string, err error) {
	defer fs.observe("readlink", time.Now(), &err)
	fs.log.Debug("readlink %s", path)

	path, err = resolve(path)
	if err != nil {
		return "", err
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	entry, err := fs.table.Get(path)
	if err != nil {
		return "", err
	}

	contents, exists := fs.table.Contents(path)
	if !entry.IsSymlink() || !exists {
		return "", data.NotExist(path)
	}

	return string(contents), nil
}

func (fs *FileSystem) Rename(ctx context.Context, oldPath, newPath string) (err error) {
	defer fs.observe("rename", time.Now(), &err)
	fs.log.Debug("rename %s %s", oldPath, newPath)

	if oldPath, err = resolve(oldPath); err != nil {
		return err
	}
	if newPath, err = resolve(newPath); err != nil {
		return err
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	return fs.unsafeRename(oldPath, newPath)
}

func (fs *FileSystem) Mkdir(ctx context.Context, path string, mode data.FileMode) (err error) {
	defer fs.observe("mkdir", time.Now(), &err)
	fs.log.Debug("mkdir %s %s", path, data.ModeDir|mode.Perm())

	path, err = resolve(path)
	if err != nil {
		return err
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.unsafePut(path, data.NewDirectoryEntry(mode))
	return nil
}

func (fs *FileSystem) Rmdir(ctx context.Context, path string) (err error) {
	defer fs.observe("rmdir", time.Now(), &err)
	fs.log.Debug("rmdir %s", path)

	path, err = resolve(path)
	if err != nil {
		return err
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	return fs.unsafeRemove(path)
}

func (fs *FileSystem) Unlink(ctx context.Context, path string) (err error) {
	defer fs.observe("unlink", time.Now(), &err)
	fs.log.Debug("unlink %s", path)

	path, err = resolve(path)
	if err != nil {
		return err
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	return fs.unsafeRemove(path)
}

func (fs *FileSystem) Symlink(ctx context.Context, target, source string) (err error) {
	defer fs.observe("symlink", time.Now(), &err)
	fs.log.Debug("symlink %s -> %s", target, source)

	target, err = resolve(target)
	if err != nil {
		return err
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.unsafePut(target, data.NewSymlinkEntry(source))
	return fs.table.SetContents(target, []byte(source))
}
