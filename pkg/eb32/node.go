package eb32

// keyBits is the width of the key in bits; it fixes the root's branch
// position and bounds tree depth.
const keyBits = 32

// Node is a dual-role tree element: it always holds a leaf value, and it
// may also serve as an internal branch point above itself. The caller owns
// the storage (typically by embedding a Node inside its own record) and
// must not move it while it is reachable from a Tree.
type Node struct {
	Key uint32

	// leafParent is the branch node through which this node is reached as
	// a leaf. Nil if this node is not currently a live tree leaf (it is a
	// non-head duplicate, or it was never inserted).
	leafParent *Node

	// branchParent is the branch node through which this node is reached
	// as a branch. Nil if the branch personality is unused.
	branchParent *Node

	// left and right are the branch personality's children. bit == 0
	// means the branch personality is unused.
	left, right *Node
	bit         int

	// dupNext/dupPrev form the circular doubly linked list of nodes
	// sharing this exact key. A node with no duplicates points to itself.
	dupNext, dupPrev *Node
}

// Tree is an elastic binary tree over 32-bit unsigned keys. The zero value
// is an empty, ready-to-use tree.
type Tree struct {
	root Node
}

// The root's branch position is conceptually fixed at keyBits (spec §3,
// "Root"): there is no bit above the key width to diverge on, so the first
// real branch below the root can never fail a divergence check. Root has
// only one real child slot in this variant (its left), so the tree never
// needs to read that position to choose a side — it is folded into the
// zero value of Node and is not stored as a separate field.

func resetNode(n *Node) {
	n.leafParent = nil
	n.branchParent = nil
	n.left, n.right = nil, nil
	n.bit = 0
	n.dupNext, n.dupPrev = n, n
}

func unlinkDup(n *Node) {
	n.dupPrev.dupNext = n.dupNext
	n.dupNext.dupPrev = n.dupPrev
	n.dupNext, n.dupPrev = n, n
}

// attachDuplicateTail splices n in at the tail of head's duplicate list, so
// that traversal order matches insertion order.
func attachDuplicateTail(head, n *Node) {
	tail := head.dupPrev
	tail.dupNext = n
	n.dupPrev = tail
	n.dupNext = head
	head.dupPrev = n
}

// dupHead returns the duplicate-list member currently attached to the tree
// (the one with a non-nil leafParent), scanning forward from n. n itself is
// returned immediately if it is already the head.
func dupHead(n *Node) *Node {
	for n.leafParent == nil {
		n = n.dupNext
	}
	return n
}

// walkDown follows child from parent, then repeatedly takes the left
// (minimal=true) or right (minimal=false) child until it crosses from a
// branch reference into a leaf reference, and returns that leaf. It
// returns nil if child is nil.
func walkDown(parent, child *Node, minimal bool) *Node {
	if child == nil {
		return nil
	}
	for child.leafParent != parent {
		parent = child
		if minimal {
			child = parent.left
		} else {
			child = parent.right
		}
	}
	return child
}

func bitSet(x uint32, bit int) bool {
	return x&(1<<uint(bit)) != 0
}
