package data

// DispatchMode tells a handler which file operation triggered it.
// It is unrelated to the permission bits in FileMode.
type DispatchMode int

const (
	DispatchRead  DispatchMode = iota // read(2) on a control file
	DispatchWrite                     // write(2) on a control file
)

func (m DispatchMode) String() string {
	switch m {
	case DispatchRead:
		return "read"
	case DispatchWrite:
		return "write"
	default:
		return "unknown"
	}
}
