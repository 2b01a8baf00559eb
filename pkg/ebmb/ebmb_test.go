package ebmb

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/tgragnato/ebmbtreebench/internal/bitops"
)

// checkInvariants walks the tree recursively and validates the
// structural invariants of spec.md §3: positions strictly increasing
// from the root down (a position counts the leading bits shared below
// it, so a deeper branch shares more), correct bit partitioning on each
// real branch, identical keys under every duplicate-subtree anchor, and
// consistent parent/child pointers.
func checkInvariants(t *testing.T, tree *Tree) {
	t.Helper()
	if tree.root.left.kind == refNone {
		return
	}
	walkCheck(t, tree.root.left, -1)
}

func walkCheck(t *testing.T, r ref, parentBit int) {
	t.Helper()
	if r.kind == refLeaf {
		return
	}

	b := r.node
	if b.branchParent == nil {
		t.Fatalf("key %q: branch personality in use but branchParent is nil", b.Key)
	}
	// Strict increase only governs real, bit-testing branches; duplicate-
	// subtree anchors (negative position) are a degenerate marker, not a
	// discriminator, so nested anchors may repeat -1.
	if b.position >= 0 && b.position <= parentBit {
		t.Fatalf("key %q: position %d not strictly greater than parent's %d", b.Key, b.position, parentBit)
	}
	if !b.left.valid() || !b.right.valid() {
		t.Fatalf("key %q: branch missing a child", b.Key)
	}
	if b.left.node == b.right.node {
		t.Fatalf("key %q: both children identical", b.Key)
	}

	if b.position < 0 {
		checkIdenticalSubtree(t, b.left, b.Key)
		checkIdenticalSubtree(t, b.right, b.Key)
	} else {
		checkPartition(t, b, b.left, 0)
		checkPartition(t, b, b.right, 1)
	}

	walkCheck(t, b.left, b.position)
	walkCheck(t, b.right, b.position)
}

func checkIdenticalSubtree(t *testing.T, r ref, want []byte) {
	t.Helper()
	if r.kind == refLeaf {
		if !bytes.Equal(r.node.Key, want) {
			t.Fatalf("duplicate-subtree leaf %q does not match anchor key %q", r.node.Key, want)
		}
		return
	}
	checkIdenticalSubtree(t, r.node.left, want)
	checkIdenticalSubtree(t, r.node.right, want)
}

// checkPartition verifies that every key reached via a real (non-anchor)
// branch agrees with the expected value of the branch's discriminating
// bit. Anchor subtrees nested below are skipped; they are validated by
// checkIdenticalSubtree instead.
func checkPartition(t *testing.T, b *Node, child ref, want int) {
	t.Helper()
	var walk func(r ref)
	walk = func(r ref) {
		if r.kind == refLeaf {
			got := 0
			if bitops.BitSet(r.node.Key, b.position) {
				got = 1
			}
			if got != want {
				t.Fatalf("key %q under bit %d: expected %d, got %d", r.node.Key, b.position, want, got)
			}
			return
		}
		if r.node.position < 0 {
			return
		}
		walk(r.node.left)
		walk(r.node.right)
	}
	walk(child)
}

func padKey(s string, n int) []byte {
	key := make([]byte, n)
	copy(key, s)
	return key
}

func TestByteStringOrderedSet(t *testing.T) {
	const keyLen = 6
	tree := &Tree{KeyLen: keyLen}

	words := []string{"apple", "apply", "banana", "band"}
	nodes := map[string]*Node{}
	for _, w := range words {
		n := &Node{Key: padKey(w, keyLen)}
		tree.Insert(n)
		nodes[w] = n
		checkInvariants(t, tree)
	}

	if first := tree.First(); first == nil || string(bytes.TrimRight(first.Key, "\x00")) != "apple" {
		t.Fatalf("First() = %v, want apple", first)
	}

	var got []string
	for n := tree.First(); n != nil; n = tree.Next(n) {
		got = append(got, string(bytes.TrimRight(n.Key, "\x00")))
	}
	want := []string{"apple", "apply", "banana", "band"}
	if !equalStrings(got, want) {
		t.Fatalf("ordered traversal = %v, want %v", got, want)
	}

	if got := tree.Lookup(padKey("apply", keyLen)); got != nodes["apply"] {
		t.Fatalf("Lookup(apply) = %v, want the apply node", got)
	}
	if got := tree.Lookup(padKey("missing", keyLen)); got != nil {
		t.Fatalf("Lookup(missing) = %v, want nil", got)
	}
}

func TestByteStringUniqueReinsert(t *testing.T) {
	const keyLen = 6
	tree := &Tree{KeyLen: keyLen, Unique: true}

	words := []string{"apple", "apply", "banana", "band"}
	nodes := map[string]*Node{}
	for _, w := range words {
		n := &Node{Key: padKey(w, keyLen)}
		tree.Insert(n)
		nodes[w] = n
	}
	checkInvariants(t, tree)

	dup := &Node{Key: padKey("apple", keyLen)}
	got := tree.Insert(dup)
	if got != nodes["apple"] {
		t.Fatalf("Insert of duplicate under Unique = %v, want the pre-existing apple node", got)
	}

	var count int
	for n := tree.First(); n != nil; n = tree.Next(n) {
		count++
	}
	if count != 4 {
		t.Fatalf("leaf count after rejected duplicate = %d, want 4", count)
	}
	checkInvariants(t, tree)
}

func TestByteStringDuplicateSubtree(t *testing.T) {
	const keyLen = 1
	tree := &Tree{KeyLen: keyLen}

	a := &Node{Key: padKey("x", keyLen)}
	b := &Node{Key: padKey("x", keyLen)}
	c := &Node{Key: padKey("x", keyLen)}

	tree.Insert(a)
	tree.Insert(b)

	anchor := tree.root.left
	if anchor.kind != refBranch || anchor.node.position != -1 {
		t.Fatalf("after second insert, root.left = %+v, want an anchor with position -1", anchor)
	}

	tree.Insert(c)
	checkInvariants(t, tree)

	first := tree.Lookup(padKey("x", keyLen))
	if first != a {
		t.Fatalf("Lookup after three inserts = %v, want the first-inserted node", first)
	}

	if got := tree.Next(first); got != b {
		t.Fatalf("Next(first) = %v, want the second-inserted node", got)
	}
	if got := tree.Next(b); got != c {
		t.Fatalf("Next(second) = %v, want the third-inserted node", got)
	}
	if got := tree.Next(c); got != nil {
		t.Fatalf("Next(third) = %v, want nil", got)
	}

	tree.Delete(b)
	checkInvariants(t, tree)
	var got []*Node
	for n := tree.First(); n != nil; n = tree.Next(n) {
		got = append(got, n)
	}
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Fatalf("traversal after deleting the middle duplicate = %v, want [a, c]", got)
	}
}

func TestByteStringRoundTripRandomPermutation(t *testing.T) {
	const keyLen = 4
	keys := []string{"aaaa", "aaab", "aaba", "abaa", "baaa", "bbbb", "abba", "baba"}
	tree := &Tree{KeyLen: keyLen}

	nodes := make([]*Node, len(keys))
	for i, k := range keys {
		nodes[i] = &Node{Key: []byte(k)}
		tree.Insert(nodes[i])
		checkInvariants(t, tree)
	}

	order := []int{4, 0, 7, 2, 5, 1, 6, 3}
	for i, idx := range order {
		tree.Delete(nodes[idx])
		if i < len(order)-1 {
			checkInvariants(t, tree)
		}
	}
	if tree.root.left.valid() {
		t.Fatal("tree should be empty after deleting every key")
	}
}

// randomKeysMB returns n pseudo-random keyLen-byte keys from a fixed seed,
// so successive benchmark runs see the same distribution.
func randomKeysMB(n, keyLen int) [][]byte {
	r := rand.New(rand.NewSource(1))
	keys := make([][]byte, n)
	for i := range keys {
		k := make([]byte, keyLen)
		r.Read(k)
		keys[i] = k
	}
	return keys
}

// BenchmarkInsert measures insertion cost into a tree already holding
// 10000 random 16-byte keys, exercising spec §8 property 7's cost bound
// (insert cost grows with key-bit-width, not tree size).
func BenchmarkInsert(b *testing.B) {
	const keyLen = 16
	tree := &Tree{KeyLen: keyLen}
	for _, k := range randomKeysMB(10_000, keyLen) {
		tree.Insert(&Node{Key: k})
	}
	extra := randomKeysMB(b.N, keyLen)
	nodes := make([]*Node, b.N)
	for i, k := range extra {
		nodes[i] = &Node{Key: k}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Insert(nodes[i])
	}
}

// BenchmarkLookup measures lookup cost against a 10000-key random tree of
// 16-byte keys.
func BenchmarkLookup(b *testing.B) {
	const keyLen = 16
	keys := randomKeysMB(10_000, keyLen)
	tree := &Tree{KeyLen: keyLen}
	for _, k := range keys {
		tree.Insert(&Node{Key: k})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Lookup(keys[i%len(keys)])
	}
}

// BenchmarkNext measures the cost of one Next() step during an in-order
// walk of a 10000-key random tree, the access pattern a range scan uses.
func BenchmarkNext(b *testing.B) {
	const keyLen = 16
	tree := &Tree{KeyLen: keyLen}
	for _, k := range randomKeysMB(10_000, keyLen) {
		tree.Insert(&Node{Key: k})
	}
	n := tree.First()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if n == nil {
			n = tree.First()
		}
		n = tree.Next(n)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
