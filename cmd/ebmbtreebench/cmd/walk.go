package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var walkKeys string

// walkCmd builds a tree from --keys and prints First/Next/Last/Prev in
// both directions, exercising the full traversal surface.
var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Insert --keys and print the forward and reverse traversal",
	Long: `Walk inserts every key from --keys into a fresh tree of the
chosen --variant, then prints the tree twice: once walking First/Next
forward, once walking Last/Prev backward.

Example:
  ebmbtreebench walk --variant eb32 --keys 30,10,20`,
	Run: func(cmd *cobra.Command, args []string) {
		keys := parseKeys(walkKeys)
		switch variant {
		case "eb32":
			tree, _, err := buildEb32(keys)
			if err != nil {
				exitf("invalid key: %v", err)
			}
			printUint32s(cmd, walkEb32(tree))
			var rev []uint32
			for n := tree.Last(); n != nil; n = tree.Prev(n) {
				rev = append(rev, n.Key)
			}
			printUint32s(cmd, rev)
		case "ebmb":
			tree, _ := buildEbmb(keyWidth, keys)
			printStrings(cmd, walkEbmb(tree))
			var rev []string
			for n := tree.Last(); n != nil; n = tree.Prev(n) {
				rev = append(rev, strings.TrimRight(string(n.Key), "\x00"))
			}
			printStrings(cmd, rev)
		default:
			exitf("unknown variant %q", variant)
		}
	},
}

func init() {
	rootCmd.AddCommand(walkCmd)
	walkCmd.Flags().StringVar(&walkKeys, "keys", "", "comma-separated keys to insert")
}
