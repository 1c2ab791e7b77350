package data

import (
	"sort"
	"time"
)

// GetAttribute safely retrieves an extended attribute.
func (e *Entry) GetAttribute(name string) ([]byte, bool) {
	if e.Attributes == nil {
		return nil, false
	}

	value, exists := e.Attributes[name]
	return value, exists
}

// SetAttribute safely sets an extended attribute, initializing the map if needed.
func (e *Entry) SetAttribute(name string, value []byte) {
	if e.Attributes == nil {
		e.Attributes = make(map[string][]byte)
	}

	e.Attributes[name] = append([]byte(nil), value...)
	e.ChangeTime = time.Now()
}

// DeleteAttribute removes an extended attribute. Missing names are ignored.
func (e *Entry) DeleteAttribute(name string) {
	if e.Attributes == nil {
		return
	}

	if _, exists := e.Attributes[name]; exists {
		delete(e.Attributes, name)
		e.ChangeTime = time.Now()
	}
}

// HasAttribute checks if an extended attribute exists.
func (e *Entry) HasAttribute(name string) bool {
	if e.Attributes == nil {
		return false
	}

	_, exists := e.Attributes[name]
	return exists
}

// AttributeNames returns the sorted names of all extended attributes.
func (e *Entry) AttributeNames() []string {
	names := make([]string, 0, len(e.Attributes))
	for name := range e.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
