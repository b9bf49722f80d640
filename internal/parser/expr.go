package parser

import (
	"github.com/atomc-lang/atomc/internal/checker"
	"github.com/atomc-lang/atomc/internal/diag"
	"github.com/atomc-lang/atomc/internal/domain"
	"github.com/atomc-lang/atomc/internal/token"
)

// Ret is the checker's per-expression annotation; aliased here so the
// grammar productions below read without a package qualifier on every
// return type.
type Ret = checker.Ret

// expr := exprAssign
func (p *Parser) expr() Ret {
	return p.exprAssign()
}

// exprAssign := exprUnary ASSIGN exprAssign | exprOr
//
// This is the second of the expression grammar's two backtracking points (spec
// §4.2, §9): exprUnary is tried; since exprUnary/exprPostfix/exprPrimary
// report a plain false — no diagnostic, no token consumed — whenever the
// current token doesn't start any expression, a mismatch here costs
// nothing to undo. A genuine semantic error inside a well-formed exprUnary
// (say, an undefined field) still raises through diag.Fatalf and is never
// caught: it is a real error regardless of which alternative the grammar
// eventually picks, so it must not be swallowed by the backtrack.
func (p *Parser) exprAssign() Ret {
	mark := p.mark()
	line := p.line()
	lhs, ok := p.exprUnary()
	if ok && p.cur().Kind == token.ASSIGN {
		p.pos++
		rhs := p.exprAssign()
		return checker.CheckAssign(lhs, rhs, line)
	}
	p.reset(mark)
	return p.exprOr()
}

// exprOr := exprAnd (OR exprAnd)*
func (p *Parser) exprOr() Ret {
	r := p.exprAnd()
	for p.consume(token.OR) {
		line := p.line()
		rhs := p.exprAnd()
		r = checker.CheckLogical("||", r, rhs, line)
	}
	return r
}

// exprAnd := exprEq (AND exprEq)*
func (p *Parser) exprAnd() Ret {
	r := p.exprEq()
	for p.consume(token.AND) {
		line := p.line()
		rhs := p.exprEq()
		r = checker.CheckLogical("&&", r, rhs, line)
	}
	return r
}

// exprEq := exprRel ((EQUAL | NOTEQ) exprRel)*
func (p *Parser) exprEq() Ret {
	r := p.exprRel()
	for p.cur().Kind == token.EQUAL || p.cur().Kind == token.NOTEQ {
		op := opText(p.cur().Kind)
		p.pos++
		line := p.line()
		rhs := p.exprRel()
		r = checker.CheckRelational(op, r, rhs, line)
	}
	return r
}

// exprRel := exprAdd ((LESS | LESSEQ | GREATER | GREATEREQ) exprAdd)*
func (p *Parser) exprRel() Ret {
	r := p.exprAdd()
	for isRelOp(p.cur().Kind) {
		op := opText(p.cur().Kind)
		p.pos++
		line := p.line()
		rhs := p.exprAdd()
		r = checker.CheckRelational(op, r, rhs, line)
	}
	return r
}

// exprAdd := exprMul ((ADD | SUB) exprMul)*
func (p *Parser) exprAdd() Ret {
	r := p.exprMul()
	for p.cur().Kind == token.ADD || p.cur().Kind == token.SUB {
		op := opText(p.cur().Kind)
		p.pos++
		line := p.line()
		rhs := p.exprMul()
		r = checker.CheckArith(op, r, rhs, line)
	}
	return r
}

// exprMul := exprCast ((MUL | DIV) exprCast)*
func (p *Parser) exprMul() Ret {
	r := p.exprCast()
	for p.cur().Kind == token.MUL || p.cur().Kind == token.DIV {
		op := opText(p.cur().Kind)
		p.pos++
		line := p.line()
		rhs := p.exprCast()
		r = checker.CheckArith(op, r, rhs, line)
	}
	return r
}

// exprCast := LPAR typeBase arrayDecl? RPAR exprUnary | exprUnary
//
// This is the first of the expression grammar's two backtracking points (spec
// §4.2, §9): a '(' speculatively tries typeBase; typeBase itself only
// fails (returns false) on a token that starts no type at all, so the
// speculative attempt never consumes tokens it can't also un-consume via
// reset. The recursive call after a successful cast is exprUnary, not
// exprCast again (spec §9's first open question): this disallows chained
// casts like (int)(double)x, matching the version of the original that
// performs type-checking.
func (p *Parser) exprCast() Ret {
	if p.cur().Kind == token.LPAR {
		mark := p.mark()
		p.pos++
		if t, ok := p.typeBase(); ok {
			if n, has := p.arrayDecl(); has {
				t = t.WithArray(n)
			}
			p.expect(token.RPAR, ")")
			line := p.line()
			inner, ok := p.exprUnary()
			if !ok {
				diag.Fatalf(line, "invalid expression after cast")
			}
			return checker.CheckCast(inner, t, line)
		}
		p.reset(mark)
	}
	r, ok := p.exprUnary()
	if !ok {
		diag.Fatalf(p.line(), "invalid expression")
	}
	return r
}

// exprUnary := (SUB | NOT) exprUnary | exprPostfix
//
// Returns ok=false only when the current token starts neither a unary
// operator nor any primary expression — the one case the grammar treats
// as "no expression here" rather than an error.
func (p *Parser) exprUnary() (Ret, bool) {
	switch {
	case p.consume(token.SUB):
		line := p.line()
		r, ok := p.exprUnary()
		if !ok {
			diag.Fatalf(line, "invalid expression after -")
		}
		return checker.CheckUnaryMinus(r, line), true
	case p.consume(token.NOT):
		line := p.line()
		r, ok := p.exprUnary()
		if !ok {
			diag.Fatalf(line, "invalid expression after !")
		}
		return checker.CheckUnaryNot(r, line), true
	default:
		return p.exprPostfix()
	}
}

// exprPostfix := exprPrimary (LBRACKET expr RBRACKET | DOT ID)*
func (p *Parser) exprPostfix() (Ret, bool) {
	r, ok := p.exprPrimary()
	if !ok {
		return Ret{}, false
	}
	for {
		switch {
		case p.consume(token.LBRACKET):
			line := p.line()
			idx := p.expr()
			p.expect(token.RBRACKET, "]")
			r = checker.CheckIndex(r, idx, line)
		case p.consume(token.DOT):
			line := p.line()
			nameTk := p.expect(token.ID, "field name")
			r = checker.CheckField(r, nameTk.Text, line)
		default:
			return r, true
		}
	}
}

// exprPrimary := ID (LPAR (expr (COMMA expr)*)? RPAR)?
//              | INT | DOUBLE | CHAR | STRING
//              | LPAR expr RPAR
func (p *Parser) exprPrimary() (Ret, bool) {
	tk := p.cur()
	switch tk.Kind {
	case token.ID:
		p.pos++
		if p.consume(token.LPAR) {
			return p.finishCall(tk), true
		}
		return p.lookupBareName(tk), true
	case token.INT:
		p.pos++
		return Ret{Type: domain.ScalarType(domain.TB_INT), Ct: true}, true
	case token.DOUBLE:
		p.pos++
		return Ret{Type: domain.ScalarType(domain.TB_DOUBLE), Ct: true}, true
	case token.CHAR:
		p.pos++
		return Ret{Type: domain.ScalarType(domain.TB_CHAR), Ct: true}, true
	case token.STRING:
		p.pos++
		return Ret{Type: domain.ScalarType(domain.TB_CHAR).WithArray(0), Ct: true}, true
	case token.LPAR:
		// A '(' followed by a type keyword opens a cast, which exprCast
		// parses; it is not a primary expression.
		switch p.peek(1).Kind {
		case token.TYPE_INT, token.TYPE_DOUBLE, token.TYPE_CHAR, token.STRUCT:
			return Ret{}, false
		}
		p.pos++
		r := p.expr()
		p.expect(token.RPAR, ")")
		return r, true
	default:
		return Ret{}, false
	}
}

// lookupBareName validates an ID not followed by LPAR (spec §4.4): it
// must resolve to a VAR or PARAM; it is an lvalue; it is constant iff it
// denotes an array.
func (p *Parser) lookupBareName(tk *token.Token) Ret {
	sym := p.dom.FindSymbol(tk.Text)
	if sym == nil {
		diag.Fatalf(tk.Line, "undefined id: %s", tk.Text)
	}
	if sym.Kind != domain.SK_VAR && sym.Kind != domain.SK_PARAM {
		diag.Fatalf(tk.Line, "%s is not a variable", tk.Text)
	}
	return Ret{Type: sym.Type, Lval: true, Ct: sym.Type.IsArray()}
}

// finishCall validates a call's callee and its positional arguments
// against the declared parameter list (spec §4.4). Arity mismatches are
// reported at the first excess argument's comma (at the argument itself
// when the function takes no parameters), or at the closing RPAR when too
// few were supplied.
func (p *Parser) finishCall(nameTk *token.Token) Ret {
	line := nameTk.Line
	sym := p.dom.FindSymbol(nameTk.Text)
	if sym == nil {
		diag.Fatalf(line, "undefined id: %s", nameTk.Text)
	}
	if sym.Kind != domain.SK_FN {
		diag.Fatalf(line, "%s is not a function", nameTk.Text)
	}

	argIdx := 0
	if p.cur().Kind != token.RPAR {
		sepLine := p.line()
		for {
			argLine := p.line()
			a := p.expr()
			if argIdx >= len(sym.Params) {
				diag.Fatalf(sepLine, "too many arguments in call to %s", sym.Name)
			}
			checker.CheckCallArg(sym.Name, argIdx, sym.Params[argIdx].Type, a, argLine)
			argIdx++
			sepLine = p.line()
			if !p.consume(token.COMMA) {
				break
			}
		}
	}
	closeLine := p.line()
	p.expect(token.RPAR, ")")
	if argIdx < len(sym.Params) {
		diag.Fatalf(closeLine, "too few arguments in function call")
	}
	return Ret{Type: sym.Type, Ct: true}
}

func isRelOp(k token.Kind) bool {
	return k == token.LESS || k == token.LESSEQ || k == token.GREATER || k == token.GREATEREQ
}

func opText(k token.Kind) string {
	switch k {
	case token.EQUAL:
		return "=="
	case token.NOTEQ:
		return "!="
	case token.LESS:
		return "<"
	case token.LESSEQ:
		return "<="
	case token.GREATER:
		return ">"
	case token.GREATEREQ:
		return ">="
	case token.ADD:
		return "+"
	case token.SUB:
		return "-"
	case token.MUL:
		return "*"
	case token.DIV:
		return "/"
	default:
		return "?"
	}
}
