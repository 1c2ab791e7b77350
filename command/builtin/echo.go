package builtin

import (
	"context"
	"sync"

	"github.com/shayshai/uprocfs/command"
	"github.com/shayshai/uprocfs/data"
	"github.com/shayshai/uprocfs/log"
)

// EchoHandler logs every argument written to its control file.
type EchoHandler struct {
	mu   sync.RWMutex
	last string

	name string
	log  *log.Logger
}

func NewEchoHandler(name string, logger *log.Logger) *EchoHandler {
	name = data.CleanPath(name)

	return &EchoHandler{
		name: name,
		log:  logger.Named(data.BaseName(name)),
	}
}

// Name returns the control file path
func (h *EchoHandler) Name() string {
	return h.name
}

// Description returns human-readable help text
func (h *EchoHandler) Description() string {
	return "logs every value written to it"
}

func (h *EchoHandler) Handle(ctx context.Context, argument string, mode data.DispatchMode) ([]byte, error) {
	if mode == data.DispatchRead {
		h.log.Debug("%s: read", h.name)
		return nil, nil
	}

	h.mu.Lock()
	h.last = argument
	h.mu.Unlock()

	h.log.Info("%s: %s", h.name, argument)
	return nil, nil
}

// Last returns the most recently written argument.
func (h *EchoHandler) Last() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.last
}

var _ command.Handler = (*EchoHandler)(nil)
