package cmd

import (
	"fmt"
	"os"

	"github.com/atomc-lang/atomc/internal/domain"
	"github.com/atomc-lang/atomc/internal/parser"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Check a file and dump its global symbol domain",
	Long: `Run the full pipeline over a file and, on success, print the global
domain in the format spec.md §6 describes: one line per top-level symbol,
with functions and structs recursing into a nested params/locals or
members listing.`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func runDump(c *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", args[0], err)
	}

	analyser, diagErr := parser.Compile(string(data))
	if diagErr != nil {
		fmt.Fprintln(os.Stderr, diagErr.Error())
		os.Exit(1)
	}

	domain.ShowDomain(os.Stdout, analyser.Global(), "global")
	return nil
}
