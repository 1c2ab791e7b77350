package command

import "strings"

// Opcode is the instruction decoded from a write to a state control file.
type Opcode int

const (
	OpcodeUnknown Opcode = iota
	OpcodeOne
	OpcodeTwo
)

// ParseOpcode decodes a write payload. Surrounding whitespace is ignored,
// anything other than "1" or "2" is OpcodeUnknown.
func ParseOpcode(argument string) Opcode {
	switch strings.TrimSpace(argument) {
	case "1":
		return OpcodeOne
	case "2":
		return OpcodeTwo
	default:
		return OpcodeUnknown
	}
}

func (o Opcode) String() string {
	switch o {
	case OpcodeOne:
		return "1"
	case OpcodeTwo:
		return "2"
	default:
		return "unknown"
	}
}

// Valid reports whether o is a known instruction.
func (o Opcode) Valid() bool {
	return o == OpcodeOne || o == OpcodeTwo
}
