package eb32

import "github.com/tgragnato/ebmbtreebench/internal/bitops"

// Insert adds n to the tree under n.Key. n must not currently be a member
// of any tree. If the tree already holds n.Key, n is threaded onto the
// tail of that key's duplicate list instead of splitting a new branch.
//
// Insert always returns n: the 32-bit variant has no uniqueness flag (that
// is a byte-string-only feature, see package ebmb), so the newly inserted
// node is always the one handed back.
func (t *Tree) Insert(n *Node) *Node {
	resetNode(n)

	cur := &t.root
	child := cur.left
	if child == nil {
		n.leafParent = cur
		cur.left = n
		return n
	}

	for child.leafParent != cur {
		if (n.Key^child.Key)>>uint(child.bit) != 0 {
			break
		}
		cur = child
		if bitSet(n.Key, cur.bit-1) {
			child = cur.right
		} else {
			child = cur.left
		}
	}

	stopping := child
	reachedAsLeaf := stopping.leafParent == cur

	if reachedAsLeaf && stopping.Key == n.Key {
		attachDuplicateTail(stopping, n)
		return n
	}

	pos := bitops.FLS(n.Key ^ stopping.Key)
	n.bit = pos
	n.branchParent = cur
	n.leafParent = n // n serves as its own leaf beneath its own branch role

	if n.Key < stopping.Key {
		n.left, n.right = n, stopping
	} else {
		n.left, n.right = stopping, n
	}

	if reachedAsLeaf {
		stopping.leafParent = n
	} else {
		stopping.branchParent = n
	}

	if cur.left == stopping {
		cur.left = n
	} else {
		cur.right = n
	}

	return n
}
