package cmd

import (
	"fmt"
	"os"

	"github.com/atomc-lang/atomc/internal/parser"
	"github.com/atomc-lang/atomc/internal/vm"
	"github.com/spf13/cobra"
)

// runCheck implements the CLI behavior spec §6 mandates: read the one
// positional file argument, run the pipeline, and report the outcome.
func runCheck(c *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	dom, diagErr := parser.Compile(string(data))
	if diagErr != nil {
		fmt.Fprintln(os.Stderr, diagErr.Error())
		os.Exit(1)
	}

	fmt.Println("Input is syntactically and semantically correct")
	vm.Init(dom)
	return nil
}
