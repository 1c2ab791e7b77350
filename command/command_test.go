package command

import (
	"context"
	"errors"
	"testing"

	"github.com/shayshai/uprocfs/data"
	"github.com/shayshai/uprocfs/event"
)

func echo(name string) Handler {
	return New(name, "echo", func(_ context.Context, argument string, _ data.DispatchMode) ([]byte, error) {
		return []byte(argument), nil
	})
}

func TestParseOpcode(t *testing.T) {
	tests := map[string]Opcode{
		"1":    OpcodeOne,
		"2":    OpcodeTwo,
		" 2\n": OpcodeTwo,
		"3":    OpcodeUnknown,
		"":     OpcodeUnknown,
		"one":  OpcodeUnknown,
	}

	for input, expected := range tests {
		if got := ParseOpcode(input); got != expected {
			t.Errorf("ParseOpcode(%q) = %s, expected %s", input, got, expected)
		}
	}

	if OpcodeUnknown.Valid() || !OpcodeOne.Valid() {
		t.Error("unexpected Valid result")
	}
}

func TestNew(t *testing.T) {
	handler := New("state", "state file", nil)
	if handler.Name() != "/state" || handler.Description() != "state file" {
		t.Errorf("unexpected handler: %s %s", handler.Name(), handler.Description())
	}
}

func TestSet_Add(t *testing.T) {
	set, err := NewSet(echo("/file1"), echo("/file2"))
	if err != nil {
		t.Fatalf("NewSet failed: %v", err)
	}

	if err := set.Add(echo("/file1")); !errors.Is(err, data.ErrHandlerExists) {
		t.Errorf("expected ErrHandlerExists, got %v", err)
	}
	if err := set.Add(echo("/nested/file")); !errors.Is(err, data.ErrInvalidPath) {
		t.Errorf("expected ErrInvalidPath, got %v", err)
	}
	if err := set.Add(nil); !errors.Is(err, data.ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}

	names := set.Names()
	if len(names) != 2 || names[0] != "/file1" || names[1] != "/file2" {
		t.Errorf("unexpected names: %v", names)
	}
}

func TestSet_Register(t *testing.T) {
	set, _ := NewSet(echo("/file1"))
	dispatcher := event.NewDispatcher()

	if err := set.Register(dispatcher); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	result, fired, err := dispatcher.Fire(t.Context(), "/file1", "hello", data.DispatchWrite)
	if err != nil || !fired || string(result) != "hello" {
		t.Errorf("unexpected dispatch: %q fired=%v err=%v", result, fired, err)
	}

	if err := set.Register(dispatcher); !errors.Is(err, data.ErrHandlerExists) {
		t.Errorf("expected ErrHandlerExists on second registration, got %v", err)
	}
}

func TestSet_RegisterCleansNames(t *testing.T) {
	handler := HandlerFunc(func(context.Context, string, data.DispatchMode) ([]byte, error) {
		return []byte("ok"), nil
	})
	set, err := NewSet(rawName{Handler: New("/x", "", handler), name: "ctl"})
	if err != nil {
		t.Fatalf("NewSet failed: %v", err)
	}
	dispatcher := event.NewDispatcher()

	if err := set.Register(dispatcher); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if events := dispatcher.Events(); len(events) != 1 || events[0] != "/ctl" {
		t.Errorf("expected cleaned event name, got %v", events)
	}
}

type rawName struct {
	Handler
	name string
}

func (r rawName) Name() string { return r.name }
