package eb32

// Lookup returns the node holding key, or nil if no such key is present.
// If key was inserted more than once, Lookup returns the head of its
// duplicate list (the first copy inserted).
//
// Lookup never mutates the tree and is safe to call concurrently with
// other lookups, first/last/next/prev calls, and with read-only access to
// the returned node, as long as no insert or delete targeting this tree is
// in flight.
func (t *Tree) Lookup(key uint32) *Node {
	cur := &t.root
	child := cur.left

	for child != nil {
		if child.leafParent == cur {
			if child.Key == key {
				return child
			}
			return nil
		}

		// child is reached as a branch. Its own stored key also exists as
		// a leaf somewhere in its subtree (dual personality); if it
		// matches exactly, this very node is the leaf we are after.
		if key == child.Key {
			return child
		}

		// If the query no longer agrees with the subtree above child's
		// discriminating bit, it cannot be present below here.
		if (key^child.Key)>>uint(child.bit) != 0 {
			return nil
		}

		cur = child
		if bitSet(key, cur.bit-1) {
			child = cur.right
		} else {
			child = cur.left
		}
	}

	return nil
}
