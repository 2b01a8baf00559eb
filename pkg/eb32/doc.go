// Package eb32 implements an elastic binary tree keyed by a fixed-width
// 32-bit unsigned integer.
//
// An elastic binary tree is an ordered radix tree in which every internal
// decision node doubles as the leaf it was split out of: a Node is always a
// leaf, and may additionally serve as a branch point above itself. The tree
// never allocates a routing node of its own — every Node a caller embeds in
// its own record is the only storage the tree ever touches.
//
// The tree distinguishes a leaf reference from a branch reference
// structurally: following a child pointer from a branch node B, the child
// is reached as a leaf iff child.leafParent == B. This needs no pointer
// tagging because duplicates live on a side list rather than in
// duplicate-subtree anchors, unlike the byte-string variant in package ebmb.
package eb32
