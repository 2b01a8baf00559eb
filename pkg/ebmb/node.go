package ebmb

// refKind tags a child reference as pointing to a leaf or a branch node,
// so a descent can tell them apart without dereferencing the child.
type refKind uint8

const (
	refNone refKind = iota
	refLeaf
	refBranch
)

// ref is a tagged child reference.
type ref struct {
	kind refKind
	node *Node
}

func (r ref) valid() bool { return r.kind != refNone }

func leafRef(n *Node) ref   { return ref{refLeaf, n} }
func branchRef(n *Node) ref { return ref{refBranch, n} }

// Node is a dual-role tree element keyed by a byte string. Like
// eb32.Node, it is always a leaf and may also serve as an internal
// branch point above itself. The caller owns the storage (typically by
// embedding a Node inside its own record) and must not move it while it
// is reachable from a Tree.
type Node struct {
	Key []byte

	// leafParent is the branch node through which this node is reached
	// as a leaf, or nil if it is not currently a live tree leaf.
	leafParent *Node

	// branchParent is the branch node through which this node is
	// reached as a branch, or nil if its branch personality is unused.
	branchParent *Node

	// left and right are this node's own branch children. Valid only
	// while branchParent != nil.
	left, right ref

	// position is the count of leading bits the two subtrees below this
	// branch share, MSB-first, or a negative value marking a
	// duplicate-subtree anchor. Meaningless while branchParent == nil.
	position int
}

// Tree is an elastic binary tree over fixed-length byte-string keys. The
// zero value is an empty, ready-to-use tree with Unique false. KeyLen
// must be set to the length in bytes of every key this tree will hold
// before the first Insert, and never changed afterwards.
type Tree struct {
	root Node

	KeyLen int
	Unique bool
}

// The root's branch position is conceptually fixed at KeyLen*8 (spec §3,
// "Root"): there is no bit above the key width to diverge on. Root has
// only one real child slot in this variant (its left) — the uniqueness
// flag lives on Tree rather than the root's otherwise-unused right slot,
// an allowance spec §9 grants explicitly — so the tree never needs to
// read that position and it is not stored as a separate field.

func resetNode(n *Node) {
	n.leafParent = nil
	n.branchParent = nil
	n.left, n.right = ref{}, ref{}
	n.position = 0
}

// walkDown follows r downward, repeatedly taking the left (minimal=true)
// or right (minimal=false) child until it reaches a leaf, and returns
// that leaf. It returns nil if r is the zero ref.
func walkDown(r ref, minimal bool) *Node {
	for r.kind == refBranch {
		if minimal {
			r = r.node.left
		} else {
			r = r.node.right
		}
	}
	if r.kind == refLeaf {
		return r.node
	}
	return nil
}
