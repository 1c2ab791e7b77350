package uprocfs

import (
	"context"
	"time"

	"github.com/shayshai/uprocfs/data"
)

func (fs *FileSystem) GetAttr(ctx context.Context, path string) (entry *data.Entry, err error) {
	defer fs.observe("getattr", time.Now(), &err)
	fs.log.Debug("getattr %s", path)

	path = data.CleanPath(path)
	if !data.IsRoot(path) {
		if path, err = resolve(path); err != nil {
			return nil, err
		}
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	stored, err := fs.table.Get(path)
	if err != nil {
		return nil, err
	}

	return stored.Clone(), nil
}

func (fs *FileSystem) Truncate(ctx context.Context, path string, length int64) (err error) {
	defer fs.observe("truncate", time.Now(), &err)
	fs.log.Debug("truncate %s %d", path, length)

	path, err = resolve(path)
	if err != nil {
		return err
	}
	if length < 0 {
		length = 0
	}
	if length > data.MaxContentsSize {
		return data.TooLarge(path, length)
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	entry, err := fs.table.Get(path)
	if err != nil {
		return err
	}

	contents, _ := fs.table.Contents(path)
	if int64(len(contents)) > length {
		contents = contents[:length]
	} else {
		contents = append(contents, make([]byte, length-int64(len(contents)))...)
	}

	entry.Size = length
	entry.Touch()

	return fs.table.SetContents(path, contents)
}

func (fs *FileSystem) Chmod(ctx context.Context, path string, mode data.FileMode) (err error) {
	defer fs.observe("chmod", time.Now(), &err)
	fs.log.Debug("chmod %s %o", path, mode.Perm())

	path = data.CleanPath(path)
	if !data.IsRoot(path) {
		if path, err = resolve(path); err != nil {
			return err
		}
	}

	return fs.update(path, func(entry *data.Entry) error {
		entry.Mode = entry.Mode.WithPerm(mode)
		entry.ChangeTime = time.Now()
		return nil
	})
}

func (fs *FileSystem) Chown(ctx context.Context, path string, uid, gid int64) (err error) {
	defer fs.observe("chown", time.Now(), &err)
	fs.log.Debug("chown %s %d:%d", path, uid, gid)

	path = data.CleanPath(path)
	if !data.IsRoot(path) {
		if path, err = resolve(path); err != nil {
			return err
		}
	}

	return fs.update(path, func(entry *data.Entry) error {
		if uid >= 0 {
			value := uint32(uid)
			entry.UID = &value
		}
		if gid >= 0 {
			value := uint32(gid)
			entry.GID = &value
		}

		entry.ChangeTime = time.Now()
		return nil
	})
}

func (fs *FileSystem) Utimens(ctx context.Context, path string, atime, mtime *time.Time) (err error) {
	defer fs.observe("utimens", time.Now(), &err)
	fs.log.Debug("utimens %s", path)

	path = data.CleanPath(path)
	if !data.IsRoot(path) {
		if path, err = resolve(path); err != nil {
			return err
		}
	}

	now := time.Now()
	return fs.update(path, func(entry *data.Entry) error {
		entry.AccessTime = now
		if atime != nil {
			entry.AccessTime = *atime
		}

		entry.ModifyTime = now
		if mtime != nil {
			entry.ModifyTime = *mtime
		}

		entry.ChangeTime = now
		return nil
	})
}

func (fs *FileSystem) StatFs(ctx context.Context, path string) (stat *data.StatFs, err error) {
	defer fs.observe("statfs", time.Now(), &err)
	fs.log.Debug("statfs %s", path)

	return data.NewStatFs(), nil
}

func (fs *FileSystem) GetXAttr(ctx context.Context, path, name string) (value []byte, err error) {
	defer fs.observe("getxattr", time.Now(), &err)
	fs.log.Debug("getxattr %s %s", path, name)

	path = data.CleanPath(path)

	err = fs.update(path, func(entry *data.Entry) error {
		stored, exists := entry.GetAttribute(name)
		if !exists {
			return data.NoAttribute(path, name)
		}

		value = append([]byte(nil), stored...)
		return nil
	})

	return value, err
}

func (fs *FileSystem) SetXAttr(ctx context.Context, path, name string, value []byte, flags uint32) (err error) {
	defer fs.observe("setxattr", time.Now(), &err)
	fs.log.Debug("setxattr %s %s len=%d", path, name, len(value))

	path = data.CleanPath(path)

	return fs.update(path, func(entry *data.Entry) error {
		entry.SetAttribute(name, value)
		return nil
	})
}

func (fs *FileSystem) ListXAttr(ctx context.Context, path string) (names []string, err error) {
	defer fs.observe("listxattr", time.Now(), &err)
	fs.log.Debug("listxattr %s", path)

	path = data.CleanPath(path)

	err = fs.update(path, func(entry *data.Entry) error {
		names = entry.AttributeNames()
		return nil
	})

	return names, err
}

func (fs *FileSystem) RemoveXAttr(ctx context.Context, path, name string) (err error) {
	defer fs.observe("removexattr", time.Now(), &err)
	fs.log.Debug("removexattr %s %s", path, name)

	path = data.CleanPath(path)

	return fs.update(path, func(entry *data.Entry) error {
		entry.DeleteAttribute(name)
		return nil
	})
}
