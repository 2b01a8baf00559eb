package ebmb

import (
	"bytes"

	"github.com/tgragnato/ebmbtreebench/internal/bitops"
)

// Insert adds n to the tree under n.Key, which must be KeyLen bytes
// long. n must not currently be a member of any tree.
//
// If the tree already holds n.Key: with Tree.Unique set, Insert is a
// no-op and returns the pre-existing node unchanged; otherwise n is
// threaded into a duplicate subtree (see the package doc) and Insert
// returns n.
func (t *Tree) Insert(n *Node) *Node {
	resetNode(n)
	keyBits := t.KeyLen * 8

	cur := &t.root
	child := cur.left
	if !child.valid() {
		n.leafParent = cur
		cur.left = leafRef(n)
		return n
	}

	known := 0
	for child.kind == refBranch {
		b := child.node
		if b.position < 0 || bitops.EqualBits(n.Key, b.Key, known, b.position) < b.position {
			break
		}
		known = b.position
		cur = b
		if bitops.BitSet(n.Key, b.position) {
			child = b.right
		} else {
			child = b.left
		}
	}

	stopping := child.node
	reachedAsLeaf := child.kind == refLeaf

	switch {
	case stopping.position < 0 && bytes.Equal(n.Key, stopping.Key):
		// stopping is an existing duplicate-subtree anchor: n is at
		// least the third copy of this key.
		if t.Unique {
			return walkDown(branchRef(stopping), true)
		}
		oldAnchor := stopping
		n.position = -1
		n.branchParent = cur
		n.leafParent = n
		n.left = branchRef(oldAnchor)
		n.right = leafRef(n)
		oldAnchor.branchParent = n
		if cur.left.node == oldAnchor {
			cur.left = branchRef(n)
		} else {
			cur.right = branchRef(n)
		}
		return n

	case reachedAsLeaf && bytes.Equal(n.Key, stopping.Key):
		// stopping is a plain leaf: n is the first duplicate, and a new
		// anchor is created to hold both.
		if t.Unique {
			return stopping
		}
		n.position = -1
		n.branchParent = cur
		n.leafParent = n
		n.left = leafRef(stopping)
		n.right = leafRef(n)
		stopping.leafParent = n
		if cur.left.node == stopping {
			cur.left = branchRef(n)
		} else {
			cur.right = branchRef(n)
		}
		return n
	}

	// Ordinary split: n and stopping diverge at the first unequal bit.
	pos := bitops.EqualBits(n.Key, stopping.Key, known, keyBits)
	n.position = pos
	n.branchParent = cur
	n.leafParent = n

	var stoppingRef ref
	if reachedAsLeaf {
		stoppingRef = leafRef(stopping)
	} else {
		stoppingRef = branchRef(stopping)
	}

	if bitops.CmpBit(n.Key, stopping.Key, pos) < 0 {
		n.left, n.right = leafRef(n), stoppingRef
	} else {
		n.left, n.right = stoppingRef, leafRef(n)
	}

	if reachedAsLeaf {
		stopping.leafParent = n
	} else {
		stopping.branchParent = n
	}

	if cur.left.node == stopping {
		cur.left = branchRef(n)
	} else {
		cur.right = branchRef(n)
	}

	return n
}
