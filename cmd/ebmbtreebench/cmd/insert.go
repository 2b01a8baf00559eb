package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var insertKeys string

// insertCmd builds a tree from --keys and prints the resulting in-order
// traversal, exercising Insert.
var insertCmd = &cobra.Command{
	Use:   "insert",
	Short: "Insert keys and print the resulting in-order traversal",
	Long: `Insert inserts every key from --keys (comma-separated) into a
fresh tree of the chosen --variant, then prints the tree in key order.

Example:
  ebmbtreebench insert --variant eb32 --keys 30,10,20
  ebmbtreebench insert --variant ebmb --key-width 4 --keys apple,band,banana`,
	Run: func(cmd *cobra.Command, args []string) {
		keys := parseKeys(insertKeys)
		switch variant {
		case "eb32":
			tree, _, err := buildEb32(keys)
			if err != nil {
				exitf("invalid key: %v", err)
			}
			printUint32s(cmd, walkEb32(tree))
		case "ebmb":
			tree, _ := buildEbmb(keyWidth, keys)
			printStrings(cmd, walkEbmb(tree))
		default:
			exitf("unknown variant %q", variant)
		}
	},
}

func init() {
	rootCmd.AddCommand(insertCmd)
	insertCmd.Flags().StringVar(&insertKeys, "keys", "", "comma-separated keys to insert")
}

func printUint32s(cmd *cobra.Command, keys []uint32) {
	strs := make([]string, len(keys))
	for i, k := range keys {
		strs[i] = strconv.FormatUint(uint64(k), 10)
	}
	cmd.Println(strings.Join(strs, ","))
}

func printStrings(cmd *cobra.Command, keys []string) {
	cmd.Println(strings.Join(keys, ","))
}
