// Package ebmb implements an elastic binary tree keyed by a byte string
// whose length is fixed per tree (Tree.KeyLen).
//
// Unlike eb32, a descent cannot tell a leaf reference from a branch
// reference by comparing ordinary pointers alone while also carrying the
// duplicate-subtree anchors a byte-string tree needs, so every child slot
// here is a tagged ref rather than a bare *Node — a stand-in for the
// low-bit-tagged pointer languages with pointer bit-stealing would use on
// the reference itself.
//
// A tree that permits duplicate keys represents them as a degenerate,
// left-leaning subtree rather than a side list: the first duplicate takes
// the branch role itself, becoming a duplicate-subtree anchor (recognized
// by a negative position) whose left child is the original leaf and whose
// right child is its own leaf. Each further duplicate wraps the entire
// existing subtree as its left child and adds itself as the new
// right-hand leaf. In-order traversal therefore still visits duplicates
// in insertion order, oldest first.
package ebmb
