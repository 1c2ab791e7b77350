package data

import (
	"errors"
	"testing"

	"golang.org/x/sys/unix"
)

func TestFileMode_Types(t *testing.T) {
	tests := []struct {
		mode    FileMode
		dir     bool
		regular bool
		symlink bool
		str     string
	}{
		{ModeDir | 0o755, true, false, false, "drwxr-xr-x"},
		{ModeRegular | 0o644, false, true, false, "-rw-r--r--"},
		{ModeSymlink | 0o777, false, false, true, "lrwxrwxrwx"},
	}

	for _, tt := range tests {
		if got := tt.mode.IsDir(); got != tt.dir {
			t.Errorf("%o: IsDir() = %v, expected %v", tt.mode, got, tt.dir)
		}
		if got := tt.mode.IsRegular(); got != tt.regular {
			t.Errorf("%o: IsRegular() = %v, expected %v", tt.mode, got, tt.regular)
		}
		if got := tt.mode.IsSymlink(); got != tt.symlink {
			t.Errorf("%o: IsSymlink() = %v, expected %v", tt.mode, got, tt.symlink)
		}
		if got := tt.mode.String(); got != tt.str {
			t.Errorf("%o: String() = %q, expected %q", tt.mode, got, tt.str)
		}
	}
}

func TestFileMode_MatchesKernelBits(t *testing.T) {
	if uint32(ModeDir) != unix.S_IFDIR {
		t.Errorf("ModeDir = %o, expected %o", ModeDir, unix.S_IFDIR)
	}
	if uint32(ModeRegular) != unix.S_IFREG {
		t.Errorf("ModeRegular = %o, expected %o", ModeRegular, unix.S_IFREG)
	}
	if uint32(ModeSymlink) != unix.S_IFLNK {
		t.Errorf("ModeSymlink = %o, expected %o", ModeSymlink, unix.S_IFLNK)
	}
}

func TestFileMode_WithPerm(t *testing.T) {
	mode := (ModeRegular | 0o755).WithPerm(0o600)
	if mode != ModeRegular|0o600 {
		t.Errorf("expected %o, got %o", ModeRegular|0o600, mode)
	}

	// Type bits passed in as permission must not leak through
	mode = (ModeRegular | 0o755).WithPerm(ModeDir | 0o700)
	if !mode.IsRegular() {
		t.Errorf("expected regular file, got %s", mode)
	}
}

func TestNewEntries(t *testing.T) {
	root := NewRootEntry()
	if !root.IsDir() || root.LinkCount != 2 || root.Inode != RootInode {
		t.Errorf("unexpected root entry: %+v", root)
	}

	file := NewFileEntry(0o755)
	if !file.IsRegular() || file.Size != ControlFileSize || file.LinkCount != 1 {
		t.Errorf("unexpected file entry: %+v", file)
	}
	if file.UID != nil || file.GID != nil {
		t.Error("expected owner to be unset")
	}

	dir := NewDirectoryEntry(0o700)
	if !dir.IsDir() || dir.LinkCount != 2 || dir.Mode.Perm() != 0o700 {
		t.Errorf("unexpected directory entry: %+v", dir)
	}

	link := NewSymlinkEntry("/state")
	if !link.IsSymlink() || link.Size != int64(len("/state")) {
		t.Errorf("unexpected symlink entry: %+v", link)
	}

	if file.ID == dir.ID || file.ID == "" {
		t.Error("expected unique entry ids")
	}
}

func TestEntry_CloneIsDeep(t *testing.T) {
	entry := NewFileEntry(0o644)
	uid := uint32(1000)
	entry.UID = &uid
	entry.SetAttribute("user.test", []byte("value"))

	clone := entry.Clone()
	*clone.UID = 0
	clone.Attributes["user.test"][0] = 'X'
	clone.SetAttribute("user.other", []byte("1"))

	if *entry.UID != 1000 {
		t.Errorf("expected original uid 1000, got %d", *entry.UID)
	}
	if value, _ := entry.GetAttribute("user.test"); string(value) != "value" {
		t.Errorf("expected original attribute 'value', got %q", value)
	}
	if entry.HasAttribute("user.other") {
		t.Error("clone attribute leaked into original")
	}
}

func TestEntry_Attributes(t *testing.T) {
	entry := &Entry{}

	if _, ok := entry.GetAttribute("missing"); ok {
		t.Error("expected missing attribute on nil map")
	}
	entry.DeleteAttribute("missing")

	entry.SetAttribute("user.b", []byte("2"))
	entry.SetAttribute("user.a", []byte("1"))

	names := entry.AttributeNames()
	if len(names) != 2 || names[0] != "user.a" || names[1] != "user.b" {
		t.Errorf("unexpected names: %v", names)
	}

	entry.DeleteAttribute("user.a")
	if entry.HasAttribute("user.a") {
		t.Error("expected attribute to be removed")
	}
}

func TestPaths(t *testing.T) {
	tests := []struct {
		in       string
		clean    string
		topLevel bool
		base     string
	}{
		{"", "/", false, ""},
		{"/", "/", false, ""},
		{"state", "/state", true, "state"},
		{"/state/", "/state", true, "state"},
		{"/a/b", "/a/b", false, "b"},
		{"//file1", "/file1", true, "file1"},
	}

	for _, tt := range tests {
		if got := CleanPath(tt.in); got != tt.clean {
			t.Errorf("CleanPath(%q) = %q, expected %q", tt.in, got, tt.clean)
		}
		if got := IsTopLevel(tt.in); got != tt.topLevel {
			t.Errorf("IsTopLevel(%q) = %v, expected %v", tt.in, got, tt.topLevel)
		}
		if got := BaseName(tt.in); got != tt.base {
			t.Errorf("BaseName(%q) = %q, expected %q", tt.in, got, tt.base)
		}
	}

	if !IsRoot("") || IsRoot("/state") {
		t.Error("unexpected IsRoot result")
	}
	if JoinRoot("file2") != "/file2" {
		t.Errorf("unexpected JoinRoot result: %s", JoinRoot("file2"))
	}
}

func TestErrors_Wrap(t *testing.T) {
	if !errors.Is(NotExist("/x"), ErrNotExist) {
		t.Error("expected NotExist to wrap ErrNotExist")
	}
	if !errors.Is(NoAttribute("/x", "user.a"), ErrNoAttribute) {
		t.Error("expected NoAttribute to wrap ErrNoAttribute")
	}
	if !errors.Is(HandlerExists("/x"), ErrHandlerExists) {
		t.Error("expected HandlerExists to wrap ErrHandlerExists")
	}
	if !errors.Is(InvalidPath("/a/b"), ErrInvalidPath) {
		t.Error("expected InvalidPath to wrap ErrInvalidPath")
	}
	if !errors.Is(NotDir("/x"), ErrNotDir) {
		t.Error("expected NotDir to wrap ErrNotDir")
	}
	if err := TooLarge("/x", MaxContentsSize+1); !errors.Is(err, ErrTooLarge) {
		t.Errorf("expected TooLarge to wrap ErrTooLarge, got %v", err)
	}
}

func TestParseAccessMode(t *testing.T) {
	if m := ParseAccessMode(unix.O_RDONLY); !m.IsReadOnly() || m.String() != "r" {
		t.Errorf("unexpected read-only mode: %v", m)
	}
	if m := ParseAccessMode(unix.O_WRONLY | unix.O_TRUNC); !m.IsWriteOnly() || !m.HasTrunc() {
		t.Errorf("unexpected write mode: %v", m)
	}
	if m := ParseAccessMode(unix.O_RDWR | unix.O_CREAT); !m.IsReadWrite() || m&AccessModeCreate == 0 {
		t.Errorf("unexpected read-write mode: %v", m)
	}
}

func TestDispatchMode_String(t *testing.T) {
	if DispatchRead.String() != "read" || DispatchWrite.String() != "write" {
		t.Error("unexpected dispatch mode names")
	}
	if DispatchMode(42).String() != "unknown" {
		t.Error("expected unknown dispatch mode")
	}
}
