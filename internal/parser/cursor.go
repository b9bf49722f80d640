// Package parser implements AtomC's recursive-descent parser (spec §4.2):
// an explicit token cursor, three backtracking points, and direct calls
// into the domain and type analysers from within grammar productions.
package parser

import (
	"github.com/atomc-lang/atomc/internal/checker"
	"github.com/atomc-lang/atomc/internal/diag"
	"github.com/atomc-lang/atomc/internal/domain"
	"github.com/atomc-lang/atomc/internal/lexer"
	"github.com/atomc-lang/atomc/internal/token"
)

// Parser walks the lexer's token stream exactly once (plus bounded,
// explicitly-marked backtracking) and drives the domain and type
// analysers inline, matching the original's direct call/return
// architecture (spec §2, §9).
type Parser struct {
	src  string
	toks []*token.Token
	pos  int

	dom *domain.Analyser

	// curFn is the function symbol whose body is currently being parsed,
	// used to validate return statements; nil outside a function body.
	curFn *domain.Symbol
}

// New builds a Parser over src with a fresh domain analyser (only the
// global domain pushed). Lexing is deferred to Parse: a lexical error is
// itself a diag.Fatalf, and Compile only wraps Parse in diag.Catch, so
// the token stream must not be built any earlier than that.
func New(src string) *Parser {
	return &Parser{src: src, dom: domain.NewAnalyser()}
}

// lex runs the lexer over the Parser's source and populates toks. Called
// once, at the start of Parse.
func (p *Parser) lex() {
	head := lexer.New(p.src).Lex()
	toks := make([]*token.Token, 0, 64)
	for t := head; t != nil; t = t.Next {
		toks = append(toks, t)
	}
	p.toks = toks
}

// Domain exposes the global domain populated by a successful Parse, for
// callers that want to dump it (spec §6).
func (p *Parser) Domain() *domain.Analyser { return p.dom }

func (p *Parser) cur() *token.Token { return p.toks[p.pos] }

// peek returns the token n positions ahead of the cursor (peek(0) ==
// cur()), clamped to the trailing END token.
func (p *Parser) peek(n int) *token.Token {
	idx := p.pos + n
	if idx >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[idx]
}

func (p *Parser) line() int { return p.cur().Line }

// consume advances past the current token and reports true if it matches
// kind; otherwise the cursor is left unchanged and false is returned.
func (p *Parser) consume(kind token.Kind) bool {
	if p.cur().Kind == kind {
		p.pos++
		return true
	}
	return false
}

// expect behaves like consume but raises a post-commitment diagnostic
// ("missing X") when kind does not match, per spec §4.2's commitment
// discipline: a production that has committed to a rule reports a fatal
// error rather than backtracking on a later missing token.
func (p *Parser) expect(kind token.Kind, what string) *token.Token {
	tk := p.cur()
	if tk.Kind != kind {
		diag.Fatalf(p.line(), "missing %s", what)
	}
	p.pos++
	return tk
}

// mark and reset implement the one kind of cursor backtracking the parser
// performs (spec §9): save a position, attempt a speculative parse, and
// restore it if that parse does not pan out. Callers must not have made
// any domain/type-analyser mutation inside the speculative span — see
// varDef/fnDef and exprCast/exprAssign for where this is exercised.
func (p *Parser) mark() int        { return p.pos }
func (p *Parser) reset(mark int)   { p.pos = mark }

// typeSize adapts checker.TypeSize to the domain.Symbol.AddMember
// signature, breaking what would otherwise be an import cycle between
// domain (which needs a size function to compute member offsets) and
// checker (which is built on top of domain.Type).
func typeSize(t domain.Type) int { return checker.TypeSize(t) }
