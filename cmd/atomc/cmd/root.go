package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version = "0.1.0-dev"
)

var rootCmd = &cobra.Command{
	Use:   "atomc",
	Short: "AtomC front-end",
	Long: `atomc is a front-end for AtomC, a small C-like teaching language with
structs, fixed-size arrays, functions, and structured control flow.

It lexes, parses, and semantically checks a single source file, producing
a fully type-annotated symbol table on success or a single line-numbered
diagnostic on failure. It does not generate code or run programs.`,
	Version: Version,
	Args:    cobra.ExactArgs(1),
	RunE:    runCheck,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
