package cmd

import (
	"fmt"
	"os"

	"github.com/atomc-lang/atomc/internal/diag"
	"github.com/atomc-lang/atomc/internal/lexer"
	"github.com/atomc-lang/atomc/internal/token"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize an AtomC file and print the resulting tokens",
	Long: `Tokenize (lex) an AtomC source file and print the resulting tokens,
one per line, with line numbers.

This is a debugging aid, not part of the pipeline spec.md mandates: the
only behavior spec.md requires of the CLI is the root command's
accept/reject check.`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(c *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", args[0], err)
	}

	derr := diag.Catch(func() {
		head := lexer.New(string(data)).Lex()
		for tk := head; tk != nil; tk = tk.Next {
			fmt.Printf("%4d | %s\n", tk.Line, tk.String())
			if tk.Kind == token.END {
				break
			}
		}
	})
	if derr != nil {
		fmt.Fprintln(os.Stderr, derr.Error())
		os.Exit(1)
	}
	return nil
}
