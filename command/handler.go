// Package command defines the handlers bound to control files.
package command

import (
	"context"

	"github.com/shayshai/uprocfs/data"
	"github.com/shayshai/uprocfs/event"
)

// Handler reacts to reads and writes on the control file it is named after.
type Handler interface {
	event.Handler

	// Name returns the control file path, e.g. "/state"
	Name() string

	// Description returns human-readable help text
	Description() string
}

// HandlerFunc adapts a plain function to event.Handler.
type HandlerFunc func(ctx context.Context, argument string, mode data.DispatchMode) ([]byte, error)

func (f HandlerFunc) Handle(ctx context.Context, argument string, mode data.DispatchMode) ([]byte, error) {
	return f(ctx, argument, mode)
}

type funcHandler struct {
	HandlerFunc

	name        string
	description string
}

// New creates a Handler for the control file name backed by fn.
func New(name, description string, fn HandlerFunc) Handler {
	return &funcHandler{
		HandlerFunc: fn,
		name:        data.CleanPath(name),
		description: description,
	}
}

func (h *funcHandler) Name() string {
	return h.name
}

func (h *funcHandler) Description() string {
	return h.description
}
