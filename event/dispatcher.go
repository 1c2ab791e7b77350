// Package event routes control file reads and writes to the single handler
// bound to the file's path.
package event

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shayshai/uprocfs/data"
	"github.com/shayshai/uprocfs/log"
	"github.com/shayshai/uprocfs/metrics"
)

// Handler reacts to a dispatched event.
type Handler interface {
	Handle(ctx context.Context, argument string, mode data.DispatchMode) ([]byte, error)
}

// Dispatcher maps event names to exactly one handler.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string]Handler

	log     *log.Logger
	metrics *metrics.Metrics
}

type DispatcherOption func(*Dispatcher)

// WithLogger sets the logger used to report handler failures.
func WithLogger(logger *log.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.log = logger
	}
}

// WithMetrics records every dispatch on m.
func WithMetrics(m *metrics.Metrics) DispatcherOption {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[string]Handler),
		log:      log.Discard(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Register binds handler to event. An event accepts only one handler.
func (d *Dispatcher) Register(event string, handler Handler) error {
	if handler == nil {
		return fmt.Errorf("%w: handler cannot be nil", data.ErrInvalid)
	}
	if event == "" {
		return fmt.Errorf("%w: event name cannot be empty", data.ErrInvalid)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.handlers[event]; exists {
		return data.HandlerExists(event)
	}

	d.handlers[event] = handler
	return nil
}

// Unregister removes the handler bound to event and reports whether one existed.
func (d *Dispatcher) Unregister(event string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.handlers[event]; !exists {
		return false
	}

	delete(d.handlers, event)
	return true
}

// Has reports whether a handler is bound to event.
func (d *Dispatcher) Has(event string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, exists := d.handlers[event]
	return exists
}

// Events returns the sorted names of all bound events.
func (d *Dispatcher) Events() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	events := make([]string, 0, len(d.handlers))
	for event := range d.handlers {
		events = append(events, event)
	}
	sort.Strings(events)

	return events
}

// Fire invokes the handler bound to event. When nothing is bound, fired is
// false, no error is returned and nothing is recorded, so the metric labels
// stay limited to registered events. The handler runs without any
// dispatcher lock held, and a panic inside it is turned into an error.
func (d *Dispatcher) Fire(ctx context.Context, event, argument string, mode data.DispatchMode) (result []byte, fired bool, err error) {
	d.mu.RLock()
	handler, exists := d.handlers[event]
	d.mu.RUnlock()

	if !exists {
		return nil, false, nil
	}

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("handler for '%s' panicked: %v", event, r)
		}

		outcome := metrics.OutcomeHandled
		if err != nil {
			outcome = metrics.OutcomeError
			d.log.Error("%s handler for '%s' failed: %v", mode, event, err)
		}
		d.metrics.RecordDispatch(event, mode.String(), outcome)
	}()

	result, err = handler.Handle(ctx, argument, mode)
	return result, true, err
}
