package ebmb

import (
	"bytes"

	"github.com/tgragnato/ebmbtreebench/internal/bitops"
)

// Lookup returns the node holding key, or nil if no such key is present.
// If key was inserted more than once, Lookup returns the first copy
// inserted (see the package doc for how duplicates are represented).
//
// Lookup never mutates the tree and is safe to call concurrently with
// other lookups and traversal calls, as long as no insert or delete
// targeting this tree is in flight.
func (t *Tree) Lookup(key []byte) *Node {
	child := t.root.left
	known := 0

	for child.kind == refBranch {
		b := child.node
		if b.position < 0 {
			if bytes.Equal(key, b.Key) {
				return walkDown(branchRef(b), true)
			}
			return nil
		}
		if bitops.EqualBits(key, b.Key, known, b.position) < b.position {
			return nil
		}
		known = b.position
		if bitops.BitSet(key, b.position) {
			child = b.right
		} else {
			child = b.left
		}
	}

	if child.kind == refLeaf && bytes.Equal(key, child.node.Key) {
		return child.node
	}
	return nil
}
