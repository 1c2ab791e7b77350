package data

import "golang.org/x/sys/unix"

// AccessMode represents the access flags a file was opened with.
// The core does not enforce them, they are kept for logging.
type AccessMode int

// File access mode constants.
// These can be combined using bitwise OR.
const (
	AccessModeRead   AccessMode = 1 << iota // O_RDONLY: open for reading
	AccessModeWrite                         // O_WRONLY: open for writing
	AccessModeAppend                        // O_APPEND: append to file
	AccessModeCreate                        // O_CREAT:  create if not exists
	AccessModeTrunc                         // O_TRUNC:  truncate on open
	AccessModeExcl                          // O_EXCL:   exclusive creation (with CREATE)
)

// ParseAccessMode converts open(2) flags into an AccessMode.
func ParseAccessMode(flags uint32) AccessMode {
	var mode AccessMode

	switch int(flags) & unix.O_ACCMODE {
	case unix.O_RDONLY:
		mode |= AccessModeRead
	case unix.O_WRONLY:
		mode |= AccessModeWrite
	case unix.O_RDWR:
		mode |= AccessModeRead | AccessModeWrite
	}

	if int(flags)&unix.O_APPEND != 0 {
		mode |= AccessModeAppend
	}
	if int(flags)&unix.O_CREAT != 0 {
		mode |= AccessModeCreate
	}
	if int(flags)&unix.O_TRUNC != 0 {
		mode |= AccessModeTrunc
	}
	if int(flags)&unix.O_EXCL != 0 {
		mode |= AccessModeExcl
	}

	return mode
}

// IsReadOnly checks if the mode only allows reading.
func (m AccessMode) IsReadOnly() bool {
	return m&AccessModeRead != 0 && m&AccessModeWrite == 0
}

// IsWriteOnly checks if the mode only allows writing.
func (m AccessMode) IsWriteOnly() bool {
	return m&AccessModeWrite != 0 && m&AccessModeRead == 0
}

// IsReadWrite checks if the mode allows both reading and writing.
func (m AccessMode) IsReadWrite() bool {
	return m&AccessModeRead != 0 && m&AccessModeWrite != 0
}

// HasTrunc checks if the mode includes truncate.
func (m AccessMode) HasTrunc() bool {
	return m&AccessModeTrunc != 0
}

func (m AccessMode) String() string {
	switch {
	case m.IsReadWrite():
		return "rw"
	case m.IsWriteOnly():
		return "w"
	case m.IsReadOnly():
		return "r"
	default:
		return "-"
	}
}
