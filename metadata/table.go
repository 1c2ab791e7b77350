// Package metadata holds the in-memory index of every path in the flat
// namespace together with the backing bytes of symlinks and truncated files.
package metadata

import (
	"sync"

	"github.com/shayshai/uprocfs/data"
	"github.com/tidwall/btree"
)

// Table maps paths to entries. Entries are stored by ID so a rename only
// re-points the path key and the contents follow the entry.
type Table struct {
	mu sync.RWMutex

	keys     *btree.Map[string, string]
	entries  map[string]*data.Entry
	contents map[string][]byte

	lastInode uint64
}

// NewTable creates a table that already contains the root directory.
func NewTable() *Table {
	t := &Table{
		keys:     btree.NewMap[string, string](0),
		entries:  make(map[string]*data.Entry),
		contents: make(map[string][]byte),

		lastInode: data.RootInode,
	}

	t.unsafeSet(data.RootPath, data.NewRootEntry())

	return t
}
