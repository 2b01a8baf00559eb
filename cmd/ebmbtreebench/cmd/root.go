package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	variant  string
	keyWidth int
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ebmbtreebench",
	Short: "ebmbtreebench - elastic binary tree playground and benchmark",
	Long: `ebmbtreebench exercises the eb32 and ebmb elastic binary tree
variants directly from the command line, and runs a comparison benchmark
against a pebble-backed baseline store.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&variant, "variant", "eb32", "tree variant to exercise: eb32 or ebmb")
	rootCmd.PersistentFlags().IntVar(&keyWidth, "key-width", 8, "key width in bytes, ebmb only")
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
