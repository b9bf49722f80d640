// Command atomc is the AtomC front-end's command-line shell: an external
// collaborator (spec §6) that reads one file, invokes the lex/parse/
// domain/type pipeline, and reports the result. It is not part of the
// core the rest of this repository implements.
package main

import (
	"os"

	"github.com/atomc-lang/atomc/cmd/atomc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
