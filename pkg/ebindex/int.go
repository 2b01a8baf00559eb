package ebindex

import (
	"unsafe"

	"github.com/segmentio/ksuid"

	"github.com/tgragnato/ebmbtreebench/pkg/eb32"
)

// IntEntry is a single record in an IntIndex: the tree node that places it
// in key order, plus the record identity it stands for.
type IntEntry struct {
	node eb32.Node
	ID   ksuid.KSUID
}

// Key returns the entry's index key.
func (e *IntEntry) Key() uint32 { return e.node.Key }

// IntIndex is an ordered index over uint32 keys, backed by eb32.Tree.
type IntIndex struct {
	tree eb32.Tree
}

// NewIntIndex returns an empty, ready-to-use index.
func NewIntIndex() *IntIndex { return &IntIndex{} }

// Insert mints a new KSUID, associates it with key, and adds the entry to
// the index. key may repeat; duplicates are kept in insertion order and
// visited in that order by Next.
func (ix *IntIndex) Insert(key uint32) *IntEntry {
	e := &IntEntry{ID: ksuid.New()}
	e.node.Key = key
	ix.tree.Insert(&e.node)
	return e
}

// Lookup returns the entry holding key, or nil if key is not present. If
// key was inserted more than once, Lookup returns the first one inserted.
func (ix *IntIndex) Lookup(key uint32) *IntEntry {
	return entryOf(ix.tree.Lookup(key))
}

// Delete removes e from the index. It returns true iff the index is
// non-empty afterwards.
func (ix *IntIndex) Delete(e *IntEntry) bool {
	return ix.tree.Delete(&e.node)
}

// First returns the entry with the smallest key, or nil if the index is
// empty.
func (ix *IntIndex) First() *IntEntry { return entryOf(ix.tree.First()) }

// Last returns the entry with the largest key, or nil if the index is
// empty.
func (ix *IntIndex) Last() *IntEntry { return entryOf(ix.tree.Last()) }

// Next returns the entry that follows e in key order, or nil if e holds
// the largest key.
func (ix *IntIndex) Next(e *IntEntry) *IntEntry { return entryOf(ix.tree.Next(&e.node)) }

// Prev returns the entry that precedes e in key order, or nil if e holds
// the smallest key.
func (ix *IntIndex) Prev(e *IntEntry) *IntEntry { return entryOf(ix.tree.Prev(&e.node)) }

// entryOf recovers the IntEntry that embeds a tree node, the same
// container_of step the underlying C elastic binary tree this package's
// algorithms are modeled on performs via its eb32_entry macro. It is safe
// here because node is always IntEntry's first field, so the two share an
// address.
func entryOf(n *eb32.Node) *IntEntry {
	if n == nil {
		return nil
	}
	return (*IntEntry)(unsafe.Pointer(n))
}
