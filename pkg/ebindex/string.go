package ebindex

import (
	"unsafe"

	"github.com/segmentio/ksuid"

	"github.com/tgragnato/ebmbtreebench/pkg/ebmb"
)

// StringEntry is a single record in a StringIndex: the tree node that
// places it in key order, plus the record identity it stands for.
type StringEntry struct {
	node ebmb.Node
	ID   ksuid.KSUID
}

// Key returns the entry's index key.
func (e *StringEntry) Key() []byte { return e.node.Key }

// StringIndex is an ordered index over fixed-width byte-string keys,
// backed by ebmb.Tree. Create one with NewStringIndex, which fixes the key
// length for the index's lifetime.
type StringIndex struct {
	tree ebmb.Tree
}

// NewStringIndex returns an empty index whose keys are keyLen bytes long.
// Pass unique=true to reject duplicate keys instead of threading them into
// a duplicate subtree.
func NewStringIndex(keyLen int, unique bool) *StringIndex {
	return &StringIndex{tree: ebmb.Tree{KeyLen: keyLen, Unique: unique}}
}

// Insert mints a new KSUID, associates it with key, and adds the entry to
// the index. key must be as long as the keyLen given to NewStringIndex.
func (ix *StringIndex) Insert(key []byte) *StringEntry {
	e := &StringEntry{ID: ksuid.New()}
	e.node.Key = append([]byte(nil), key...)
	n := ix.tree.Insert(&e.node)
	return entryOf(n)
}

// Lookup returns the entry holding key, or nil if key is not present.
func (ix *StringIndex) Lookup(key []byte) *StringEntry {
	return entryOf(ix.tree.Lookup(key))
}

// Delete removes e from the index. It returns true iff the index is
// non-empty afterwards.
func (ix *StringIndex) Delete(e *StringEntry) bool {
	return ix.tree.Delete(&e.node)
}

// First returns the entry with the smallest key, or nil if the index is
// empty.
func (ix *StringIndex) First() *StringEntry { return entryOf(ix.tree.First()) }

// Last returns the entry with the largest key, or nil if the index is
// empty.
func (ix *StringIndex) Last() *StringEntry { return entryOf(ix.tree.Last()) }

// Next returns the entry that follows e in key order, or nil if e holds
// the largest key.
func (ix *StringIndex) Next(e *StringEntry) *StringEntry { return entryOf(ix.tree.Next(&e.node)) }

// Prev returns the entry that precedes e in key order, or nil if e holds
// the smallest key.
func (ix *StringIndex) Prev(e *StringEntry) *StringEntry { return entryOf(ix.tree.Prev(&e.node)) }

func entryOf(n *ebmb.Node) *StringEntry {
	if n == nil {
		return nil
	}
	return (*StringEntry)(unsafe.Pointer(n))
}
