package parser

import (
	"github.com/atomc-lang/atomc/internal/diag"
	"github.com/atomc-lang/atomc/internal/domain"
)

// Compile runs the whole lex → parse → domain → type pipeline over src in
// one synchronous pass (spec §5). On success it returns the populated
// global domain analyser and a nil *diag.Error; on the first diagnostic it
// returns a nil analyser and the error that stopped the run.
func Compile(src string) (*domain.Analyser, *diag.Error) {
	p := New(src)
	if err := diag.Catch(p.Parse); err != nil {
		return nil, err
	}
	return p.dom, nil
}
