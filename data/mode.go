package data

// FileMode represents unix file type and permission bits, the same layout
// the kernel expects in st_mode.
type FileMode uint32

// File mode constants for type and permission bits.
const (
	// Type bits
	ModeDir     FileMode = 0o040000 // d: directory
	ModeRegular FileMode = 0o100000 // -: regular file
	ModeSymlink FileMode = 0o120000 // l: symbolic link
	ModeType    FileMode = 0o170000 // mask for the type bits

	// Permission bits, including setuid, setgid and sticky
	ModePerm FileMode = 0o7777
)

// IsDir reports whether m describes a directory.
func (m FileMode) IsDir() bool {
	return m&ModeType == ModeDir
}

// IsRegular reports whether m describes a regular file.
func (m FileMode) IsRegular() bool {
	return m&ModeType == ModeRegular
}

// IsSymlink reports whether m describes a symbolic link.
func (m FileMode) IsSymlink() bool {
	return m&ModeType == ModeSymlink
}

// Type returns only the type bits of m.
func (m FileMode) Type() FileMode {
	return m & ModeType
}

// Perm returns the permission bits in m.
func (m FileMode) Perm() FileMode {
	return m & ModePerm
}

// WithPerm keeps the type bits of m and replaces the permission bits.
func (m FileMode) WithPerm(perm FileMode) FileMode {
	return m.Type() | perm.Perm()
}

// String returns a textual representation of the mode in ls -l format.
// Example: "drwxr-xr-x" for a directory with 755 permissions.
func (m FileMode) String() string {
	var buf [10]byte

	switch m.Type() {
	case ModeDir:
		buf[0] = 'd'
	case ModeSymlink:
		buf[0] = 'l'
	case ModeRegular:
		buf[0] = '-'
	default:
		buf[0] = '?'
	}

	const rwx = "rwxrwxrwx"
	for i, c := range rwx {
		if m&(1<<uint(9-1-i)) != 0 {
			buf[i+1] = byte(c)
		} else {
			buf[i+1] = '-'
		}
	}

	return string(buf[:])
}
