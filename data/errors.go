package data

import (
	"errors"
	"fmt"
)

// Standard errors returned by the filesystem core.
var (
	// Path resolution errors
	ErrNotExist    = errors.New("uprocfs: file does not exist")
	ErrInvalidPath = errors.New("uprocfs: invalid path detected")
	ErrNotDir      = errors.New("uprocfs: not a directory")

	// Contents errors
	ErrTooLarge = errors.New("uprocfs: contents too large")

	// Attribute errors
	ErrNoAttribute = errors.New("uprocfs: no such attribute")

	// Dispatch errors
	ErrHandlerExists = errors.New("uprocfs: handler already registered")
	ErrInvalid       = errors.New("uprocfs: invalid argument")
)

// NotExist wraps ErrNotExist with the missing path.
func NotExist(path string) error {
	return fmt.Errorf("%w: '%s'", ErrNotExist, path)
}

// InvalidPath wraps ErrInvalidPath with the rejected path.
func InvalidPath(path string) error {
	return fmt.Errorf("%w: '%s'", ErrInvalidPath, path)
}

// NoAttribute wraps ErrNoAttribute with the attribute and path.
func NoAttribute(path, name string) error {
	return fmt.Errorf("%w: '%s' on '%s'", ErrNoAttribute, name, path)
}

// HandlerExists wraps ErrHandlerExists with the event name.
func HandlerExists(event string) error {
	return fmt.Errorf("%w: '%s'", ErrHandlerExists, event)
}

// NotDir wraps ErrNotDir with the path that is not a directory.
func NotDir(path string) error {
	return fmt.Errorf("%w: '%s'", ErrNotDir, path)
}

// TooLarge wraps ErrTooLarge with the path and the requested size.
func TooLarge(path string, size int64) error {
	return fmt.Errorf("%w: '%s' cannot hold %d bytes (max %d)", ErrTooLarge, path, size, MaxContentsSize)
}
