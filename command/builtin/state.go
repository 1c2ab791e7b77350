package builtin

import (
	"context"
	"sync"

	"github.com/shayshai/uprocfs/command"
	"github.com/shayshai/uprocfs/data"
	"github.com/shayshai/uprocfs/log"
)

// StateReadResponse is returned for every read of the state file.
const StateReadResponse = "this is read command\n"

// StateHandler serves "/state". Writes carry an opcode that updates the
// current state, reads return a fixed response.
type StateHandler struct {
	mu    sync.RWMutex
	state command.Opcode

	log *log.Logger
}

func NewStateHandler(logger *log.Logger) *StateHandler {
	return &StateHandler{
		log: logger.Named("state"),
	}
}

// Name returns the control file path
func (h *StateHandler) Name() string {
	return "/state"
}

// Description returns human-readable help text
func (h *StateHandler) Description() string {
	return "read for a status line, write 1 or 2 to update the state"
}

func (h *StateHandler) Handle(ctx context.Context, argument string, mode data.DispatchMode) ([]byte, error) {
	if mode == data.DispatchRead {
		return []byte(StateReadResponse), nil
	}

	opcode := command.ParseOpcode(argument)
	if !opcode.Valid() {
		h.log.Warn("invalid state opcode '%s'", argument)
		return nil, nil
	}

	h.mu.Lock()
	h.state = opcode
	h.mu.Unlock()

	h.log.Info("update state to %s", opcode)
	return nil, nil
}

// State returns the last applied opcode, OpcodeUnknown before any valid write.
func (h *StateHandler) State() command.Opcode {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.state
}

var _ command.Handler = (*StateHandler)(nil)
