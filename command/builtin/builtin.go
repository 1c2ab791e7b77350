// Package builtin provides the default control files: /state, /file1 and /file2.
package builtin

import (
	"github.com/shayshai/uprocfs/command"
	"github.com/shayshai/uprocfs/log"
)

// Defaults returns the handler set mounted when none is configured.
func Defaults(logger *log.Logger) *command.Set {
	set, err := command.NewSet(
		NewStateHandler(logger),
		NewEchoHandler("/file1", logger),
		NewEchoHandler("/file2", logger),
	)
	if err != nil {
		// Names are fixed and unique
		panic(err)
	}

	return set
}
