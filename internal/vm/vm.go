// Package vm is the neutral hand-off point spec §1 describes: "the latter
// is referenced through a neutral vmInit()-style hook but its behaviour
// is not specified here." A downstream code generator or virtual machine
// is explicitly out of scope; Init exists only so the CLI has somewhere
// to pass the finished symbol table once the front-end accepts a program.
package vm

import "github.com/atomc-lang/atomc/internal/domain"

// Init is called once, after a program is accepted, with the populated
// global domain. It intentionally does nothing: code generation and
// execution are not part of this front-end.
func Init(global *domain.Analyser) {
	_ = global
}
