package command

import (
	"fmt"
	"sync"

	"github.com/shayshai/uprocfs/data"
	"github.com/shayshai/uprocfs/event"
)

// Set is an ordered collection of handlers, one per control file.
type Set struct {
	mu       sync.RWMutex
	handlers []Handler
}

func NewSet(handlers ...Handler) (*Set, error) {
	s := &Set{}
	for _, handler := range handlers {
		if err := s.Add(handler); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Add appends handler. Names must be unique top-level paths.
func (s *Set) Add(handler Handler) error {
	if handler == nil {
		return fmt.Errorf("%w: handler cannot be nil", data.ErrInvalid)
	}

	name := handler.Name()
	if !data.IsTopLevel(name) {
		return data.InvalidPath(name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.handlers {
		if existing.Name() == name {
			return data.HandlerExists(name)
		}
	}

	s.handlers = append(s.handlers, handler)
	return nil
}

// Handlers returns the handlers in insertion order.
func (s *Set) Handlers() []Handler {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]Handler(nil), s.handlers...)
}

// Names returns the control file paths in insertion order.
func (s *Set) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.handlers))
	for _, handler := range s.handlers {
		names = append(names, handler.Name())
	}

	return names
}

// Len returns the number of handlers.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.handlers)
}

// Register binds every handler to the dispatcher under its cleaned name.
func (s *Set) Register(dispatcher *event.Dispatcher) error {
	for _, handler := range s.Handlers() {
		name := data.CleanPath(handler.Name())
		if err := dispatcher.Register(name, handler); err != nil {
			return fmt.Errorf("failed to register '%s': %w", name, err)
		}
	}

	return nil
}
