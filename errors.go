package uprocfs

import "github.com/shayshai/uprocfs/data"

// Errors returned by FileSystem, aliases of the sentinels in package data.
var (
	ErrNotExist      = data.ErrNotExist
	ErrNoAttribute   = data.ErrNoAttribute
	ErrHandlerExists = data.ErrHandlerExists
	ErrInvalidPath   = data.ErrInvalidPath
	ErrInvalid       = data.ErrInvalid
)
