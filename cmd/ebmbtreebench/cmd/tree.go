package cmd

import (
	"strconv"
	"strings"

	"github.com/tgragnato/ebmbtreebench/pkg/eb32"
	"github.com/tgragnato/ebmbtreebench/pkg/ebmb"
)

// parseKeys splits a comma-separated --keys flag value.
func parseKeys(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

// padOrTruncate fits s into exactly n bytes, zero-padding or truncating it.
func padOrTruncate(s string, n int) []byte {
	key := make([]byte, n)
	copy(key, s)
	return key
}

func buildEb32(keys []string) (*eb32.Tree, []*eb32.Node, error) {
	tree := &eb32.Tree{}
	nodes := make([]*eb32.Node, len(keys))
	for i, k := range keys {
		v, err := strconv.ParseUint(strings.TrimSpace(k), 10, 32)
		if err != nil {
			return nil, nil, err
		}
		nodes[i] = &eb32.Node{Key: uint32(v)}
		tree.Insert(nodes[i])
	}
	return tree, nodes, nil
}

func buildEbmb(keyWidth int, keys []string) (*ebmb.Tree, []*ebmb.Node) {
	tree := &ebmb.Tree{KeyLen: keyWidth}
	nodes := make([]*ebmb.Node, len(keys))
	for i, k := range keys {
		nodes[i] = &ebmb.Node{Key: padOrTruncate(strings.TrimSpace(k), keyWidth)}
		tree.Insert(nodes[i])
	}
	return tree, nodes
}

func walkEb32(tree *eb32.Tree) []uint32 {
	var out []uint32
	for n := tree.First(); n != nil; n = tree.Next(n) {
		out = append(out, n.Key)
	}
	return out
}

func walkEbmb(tree *ebmb.Tree) []string {
	var out []string
	for n := tree.First(); n != nil; n = tree.Next(n) {
		out = append(out, strings.TrimRight(string(n.Key), "\x00"))
	}
	return out
}
