package fuse

import (
	"bytes"
	"errors"
	"fmt"
	"syscall"
	"testing"
	"time"

	"github.com/hanwen/go-fuse/v2/fuse"
	"github.com/shayshai/uprocfs"
	"github.com/shayshai/uprocfs/data"
	"github.com/shayshai/uprocfs/log"
)

func newTestFileSystem(t *testing.T) *uprocfs.FileSystem {
	t.Helper()

	fs, err := uprocfs.New(uprocfs.WithLogger(log.Discard()))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	return fs
}

func readAll(t *testing.T, h *controlHandle, chunk int) []byte {
	t.Helper()

	var out []byte
	for off := int64(0); ; {
		result, errno := h.Read(t.Context(), make([]byte, chunk), off)
		if errno != 0 {
			t.Fatalf("Read failed: %v", errno)
		}

		buf, status := result.Bytes(make([]byte, chunk))
		if !status.Ok() {
			t.Fatalf("Bytes failed: %v", status)
		}
		if len(buf) == 0 {
			return out
		}

		out = append(out, buf...)
		off += int64(len(buf))
	}
}

func TestToErrno(t *testing.T) {
	tests := []struct {
		err   error
		errno syscall.Errno
	}{
		{nil, 0},
		{data.NotExist("/x"), syscall.ENOENT},
		{data.InvalidPath("/a/b"), syscall.ENOENT},
		{data.NoAttribute("/x", "user.a"), syscall.ENODATA},
		{data.NotDir("/x"), syscall.ENOTDIR},
		{data.TooLarge("/x", 1<<40), syscall.EFBIG},
		{data.HandlerExists("/x"), syscall.EEXIST},
		{fmt.Errorf("wrapped: %w", data.ErrInvalid), syscall.EINVAL},
		{errors.New("anything else"), syscall.EIO},
	}

	for _, tt := range tests {
		if got := ToErrno(tt.err); got != tt.errno {
			t.Errorf("ToErrno(%v) = %v, expected %v", tt.err, got, tt.errno)
		}
	}
}

func TestFillAttr(t *testing.T) {
	entry := data.NewFileEntry(0o755)
	entry.Inode = 7

	var out fuse.Attr
	fillAttr(entry, 1000, 1001, &out)

	if out.Ino != 7 || out.Size != 1024 || out.Nlink != 1 || out.Blocks != 2 {
		t.Errorf("unexpected attr: %+v", out)
	}
	if out.Mode != syscall.S_IFREG|0o755 {
		t.Errorf("unexpected mode: %o", out.Mode)
	}
	if out.Uid != 1000 || out.Gid != 1001 {
		t.Errorf("expected default owner, got %d:%d", out.Uid, out.Gid)
	}
	if out.Mtime != uint64(entry.ModifyTime.Unix()) {
		t.Errorf("unexpected mtime: %d", out.Mtime)
	}

	uid := uint32(0)
	entry.UID = &uid
	fillAttr(entry, 1000, 1001, &out)
	if out.Uid != 0 || out.Gid != 1001 {
		t.Errorf("expected explicit uid, got %d:%d", out.Uid, out.Gid)
	}
}

func TestFillStatfs(t *testing.T) {
	var out fuse.StatfsOut
	fillStatfs(data.NewStatFs(), &out)

	if out.Bsize != 512 || out.Blocks != 4096 || out.Bavail != 2048 || out.NameLen != 255 {
		t.Errorf("unexpected statfs: %+v", out)
	}
}

func TestXAttrEncoding(t *testing.T) {
	names := joinXAttrNames([]string{"user.a", "user.b"})
	if !bytes.Equal(names, []byte("user.a\x00user.b\x00")) {
		t.Errorf("unexpected encoding: %q", names)
	}

	if size, ok := copyXAttr(names, nil); ok || size != uint32(len(names)) {
		t.Errorf("expected size probe, got %d ok=%v", size, ok)
	}

	dest := make([]byte, 64)
	if size, ok := copyXAttr(names, dest); !ok || !bytes.Equal(dest[:size], names) {
		t.Errorf("expected copy, got %q ok=%v", dest[:size], ok)
	}
}

func TestControlHandle_ReadReachesEOF(t *testing.T) {
	fs := newTestFileSystem(t)

	fh, err := fs.Open(t.Context(), "/state", 0)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	handle := newControlHandle(fs, func() string { return "/state" }, fh)

	// Small chunks force reads at increasing offsets
	got := readAll(t, handle, 4)
	if string(got) != "this is read command\n" {
		t.Errorf("unexpected content: %q", got)
	}
}

func TestControlHandle_Write(t *testing.T) {
	fs := newTestFileSystem(t)
	handle := newControlHandle(fs, func() string { return "/state" }, 1)

	n, errno := handle.Write(t.Context(), []byte("2\n"), 0)
	if errno != 0 || n != 2 {
		t.Errorf("unexpected write result %d errno=%v", n, errno)
	}

	if errno := handle.Flush(t.Context()); errno != 0 {
		t.Errorf("Flush failed: %v", errno)
	}
	if errno := handle.Release(t.Context()); errno != 0 {
		t.Errorf("Release failed: %v", errno)
	}
}

func TestControlHandle_MissingPath(t *testing.T) {
	fs := newTestFileSystem(t)
	handle := newControlHandle(fs, func() string { return "/missing" }, 1)

	if _, errno := handle.Read(t.Context(), make([]byte, 8), 0); errno != syscall.ENOENT {
		t.Errorf("expected ENOENT, got %v", errno)
	}
	if _, errno := handle.Write(t.Context(), []byte("1"), 0); errno != syscall.ENOENT {
		t.Errorf("expected ENOENT, got %v", errno)
	}
}

func TestMount_RequiresOptions(t *testing.T) {
	if _, err := Mount(Options{}); err == nil {
		t.Error("expected error without mountpoint")
	}
	if _, err := Mount(Options{Mountpoint: t.TempDir()}); err == nil {
		t.Error("expected error without filesystem")
	}
}

func TestDefaultTimeout(t *testing.T) {
	if DefaultTimeout != time.Second {
		t.Errorf("unexpected default timeout: %v", DefaultTimeout)
	}
}
