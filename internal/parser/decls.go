package parser

import (
	"github.com/atomc-lang/atomc/internal/diag"
	"github.com/atomc-lang/atomc/internal/domain"
	"github.com/atomc-lang/atomc/internal/token"
)

// Parse runs the whole grammar: unit := (structDef | fnDef | varDef)* END.
// It panics via diag.Fatalf on the first error; callers run it under
// diag.Catch. On success the Parser's domain analyser holds the fully
// populated, type-annotated global domain.
func (p *Parser) Parse() {
	p.lex()
	for {
		if p.structDef() {
			continue
		}
		if p.fnDef() {
			continue
		}
		if p.varDef() {
			continue
		}
		break
	}
	if !p.consume(token.END) {
		diag.Fatalf(p.line(), "unexpected token at end of file")
	}
}

// structDef := STRUCT ID LACC varDef* RACC SEMICOLON
//
// Disambiguated from the STRUCT-ID prefix of typeBase by one-token
// lookahead past the struct name (spec §4.2): STRUCT ID LACC commits to a
// struct definition; anything else is left for fnDef/varDef to parse via
// typeBase's "STRUCT ID" variable-type form.
func (p *Parser) structDef() bool {
	if p.cur().Kind != token.STRUCT || p.peek(1).Kind != token.ID || p.peek(2).Kind != token.LACC {
		return false
	}
	line := p.line()
	p.consume(token.STRUCT)
	nameTk := p.expect(token.ID, "struct name")
	p.expect(token.LACC, "{")

	sym := &domain.Symbol{Name: nameTk.Text, Kind: domain.SK_STRUCT}
	sym.Type = domain.StructType(sym)
	p.dom.AddSymbolToDomain(sym, line)

	prevOwner := p.dom.Owner
	p.dom.Owner = sym
	p.dom.PushDomain()
	for p.varDef() {
	}
	p.dom.DropDomain()
	p.dom.Owner = prevOwner

	p.expect(token.RACC, "}")
	p.expect(token.SEMICOLON, ";")
	return true
}

// typeBase := TYPE_INT | TYPE_DOUBLE | TYPE_CHAR | STRUCT ID
//
// For the STRUCT ID form, the name must already resolve to a struct
// symbol — this is what lets STRUCT-ID act as a type reference anywhere
// a variable's or parameter's type is being parsed.
func (p *Parser) typeBase() (domain.Type, bool) {
	switch {
	case p.consume(token.TYPE_INT):
		return domain.ScalarType(domain.TB_INT), true
	case p.consume(token.TYPE_DOUBLE):
		return domain.ScalarType(domain.TB_DOUBLE), true
	case p.consume(token.TYPE_CHAR):
		return domain.ScalarType(domain.TB_CHAR), true
	case p.consume(token.STRUCT):
		line := p.line()
		nameTk := p.expect(token.ID, "struct identifier")
		s := p.dom.FindSymbol(nameTk.Text)
		if s == nil {
			diag.Fatalf(line, "undefined struct: %s", nameTk.Text)
		}
		if s.Kind != domain.SK_STRUCT {
			diag.Fatalf(line, "%s is not a struct", nameTk.Text)
		}
		return domain.StructType(s), true
	default:
		return domain.Type{}, false
	}
}

// arrayDecl := LBRACKET INT? RBRACKET
// Returns (n, true) when an array declarator was present; n is -1 when
// absent, 0 when the dimension was unspecified, else the declared size.
func (p *Parser) arrayDecl() (int, bool) {
	if !p.consume(token.LBRACKET) {
		return -1, false
	}
	n := 0
	if p.cur().Kind == token.INT {
		n = p.cur().IntVal
		p.pos++
	}
	p.expect(token.RBRACKET, "]")
	return n, true
}

// varDef := typeBase ID arrayDecl? SEMICOLON
//
// Disambiguated from fnDef by one-token lookahead past the identifier
// (spec §4.2): LPAR commits to fnDef, so varDef only ever runs when that
// lookahead has already ruled a function out. A local array with no
// declared dimension is rejected (spec §8): unspecified size is legal
// only for parameters and string literals.
func (p *Parser) varDef() bool {
	mark := p.mark()
	t, ok := p.typeBase()
	if !ok {
		return false
	}
	if p.cur().Kind != token.ID || p.peek(1).Kind == token.LPAR {
		p.reset(mark)
		return false
	}
	line := p.line()
	nameTk := p.expect(token.ID, "variable name")
	if n, has := p.arrayDecl(); has {
		if n == 0 {
			diag.Fatalf(line, "a vector variable must have a specified dimension")
		}
		t = t.WithArray(n)
	}
	p.expect(token.SEMICOLON, ";")

	sym := &domain.Symbol{Name: nameTk.Text, Kind: domain.SK_VAR, Type: t}
	p.dom.AddSymbolToDomain(sym, line)

	switch {
	case p.dom.Owner == nil:
		sym.Storage = make([]byte, typeSize(t))
	case p.dom.Owner.Kind == domain.SK_FN:
		p.dom.Owner.AddLocal(sym)
	case p.dom.Owner.Kind == domain.SK_STRUCT:
		p.dom.Owner.AddMember(sym, typeSize)
	}
	return true
}

// fnDef := (typeBase | VOID) ID LPAR (fnParam (COMMA fnParam)*)? RPAR stmCompound
func (p *Parser) fnDef() bool {
	mark := p.mark()
	var retType domain.Type
	if p.consume(token.VOID) {
		retType = domain.Type{Base: domain.TB_VOID, N: -1}
	} else if t, ok := p.typeBase(); ok {
		retType = t
	} else {
		return false
	}
	if p.cur().Kind != token.ID || p.peek(1).Kind != token.LPAR {
		p.reset(mark)
		return false
	}
	line := p.line()
	nameTk := p.expect(token.ID, "function name")
	p.expect(token.LPAR, "(")

	fn := &domain.Symbol{Name: nameTk.Text, Kind: domain.SK_FN, Type: retType}
	p.dom.AddSymbolToDomain(fn, line)

	prevOwner := p.dom.Owner
	p.dom.Owner = fn
	p.curFn = fn
	p.dom.PushDomain()

	if p.cur().Kind != token.RPAR {
		p.fnParam()
		for p.consume(token.COMMA) {
			p.fnParam()
		}
	}
	p.expect(token.RPAR, ")")

	// The function's compound statement shares this domain rather than
	// pushing its own (spec §4.3).
	p.stmCompoundBody()

	p.dom.DropDomain()
	p.dom.Owner = prevOwner
	p.curFn = nil
	return true
}

// fnParam := typeBase ID arrayDecl?
// A parameter array with no declared dimension is legal (spec §3: n=0 is
// valid for function parameters).
func (p *Parser) fnParam() {
	line := p.line()
	t, ok := p.typeBase()
	if !ok {
		diag.Fatalf(line, "missing parameter type")
	}
	nameTk := p.expect(token.ID, "parameter name")
	if n, has := p.arrayDecl(); has {
		t = t.WithArray(n)
	}
	sym := &domain.Symbol{Name: nameTk.Text, Kind: domain.SK_PARAM, Type: t}
	p.dom.AddSymbolToDomain(sym, nameTk.Line)
	p.dom.Owner.AddParam(sym)
}
