package metadata

import "github.com/shayshai/uprocfs/data"

func (t *Table) getEntry(path string) (string, *data.Entry, bool) {
	id, exists := t.keys.Get(path)
	if !exists {
		return "", nil, false
	}

	entry, exists := t.entries[id]
	if !exists {
		return "", nil, false
	}

	return id, entry, true
}

// isReferenced reports whether any path key still points at id.
func (t *Table) isReferenced(id string) bool {
	referenced := false
	t.keys.Scan(func(_, value string) bool {
		if value == id {
			referenced = true
			return false
		}

		return true
	})

	return referenced
}
