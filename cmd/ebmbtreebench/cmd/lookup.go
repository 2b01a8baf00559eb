package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	lookupKeys   string
	lookupTarget string
)

// lookupCmd builds a tree from --keys, then looks up --target in it,
// exercising Lookup.
var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Look up a single key after inserting --keys",
	Long: `Lookup inserts every key from --keys into a fresh tree of the
chosen --variant, then reports whether --target is present.

Example:
  ebmbtreebench lookup --variant eb32 --keys 30,10,20 --target 10`,
	Run: func(cmd *cobra.Command, args []string) {
		keys := parseKeys(lookupKeys)
		switch variant {
		case "eb32":
			tree, _, err := buildEb32(keys)
			if err != nil {
				exitf("invalid key: %v", err)
			}
			target, err := strconv.ParseUint(strings.TrimSpace(lookupTarget), 10, 32)
			if err != nil {
				exitf("invalid target: %v", err)
			}
			if n := tree.Lookup(uint32(target)); n != nil {
				cmd.Printf("found %d\n", n.Key)
			} else {
				cmd.Println("not found")
			}
		case "ebmb":
			tree, _ := buildEbmb(keyWidth, keys)
			target := padOrTruncate(strings.TrimSpace(lookupTarget), keyWidth)
			if n := tree.Lookup(target); n != nil {
				cmd.Printf("found %s\n", strings.TrimRight(string(n.Key), "\x00"))
			} else {
				cmd.Println("not found")
			}
		default:
			exitf("unknown variant %q", variant)
		}
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().StringVar(&lookupKeys, "keys", "", "comma-separated keys to insert")
	lookupCmd.Flags().StringVar(&lookupTarget, "target", "", "key to look up")
}
