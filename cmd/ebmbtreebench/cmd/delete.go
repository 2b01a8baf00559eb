package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	deleteKeys   string
	deleteTarget string
)

// deleteCmd builds a tree from --keys, deletes --target, and prints the
// resulting in-order traversal, exercising Delete.
var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a key after inserting --keys and print what remains",
	Long: `Delete inserts every key from --keys into a fresh tree of the
chosen --variant, deletes the first occurrence of --target, and prints
the remaining keys in order.

Example:
  ebmbtreebench delete --variant eb32 --keys 30,10,20 --target 10`,
	Run: func(cmd *cobra.Command, args []string) {
		keys := parseKeys(deleteKeys)
		switch variant {
		case "eb32":
			tree, _, err := buildEb32(keys)
			if err != nil {
				exitf("invalid key: %v", err)
			}
			target, err := strconv.ParseUint(strings.TrimSpace(deleteTarget), 10, 32)
			if err != nil {
				exitf("invalid target: %v", err)
			}
			n := tree.Lookup(uint32(target))
			if n == nil {
				exitf("target %d not present", target)
			}
			tree.Delete(n)
			printUint32s(cmd, walkEb32(tree))
		case "ebmb":
			tree, _ := buildEbmb(keyWidth, keys)
			target := padOrTruncate(strings.TrimSpace(deleteTarget), keyWidth)
			n := tree.Lookup(target)
			if n == nil {
				exitf("target %q not present", deleteTarget)
			}
			tree.Delete(n)
			printStrings(cmd, walkEbmb(tree))
		default:
			exitf("unknown variant %q", variant)
		}
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().StringVar(&deleteKeys, "keys", "", "comma-separated keys to insert")
	deleteCmd.Flags().StringVar(&deleteTarget, "target", "", "key to delete")
}
