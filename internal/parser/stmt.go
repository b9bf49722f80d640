package parser

import (
	"github.com/atomc-lang/atomc/internal/checker"
	"github.com/atomc-lang/atomc/internal/diag"
	"github.com/atomc-lang/atomc/internal/token"
)

// stm := stmCompound
//       | IF LPAR expr RPAR stm (ELSE stm)?
//       | WHILE LPAR expr RPAR stm
//       | RETURN expr? SEMICOLON
//       | expr? SEMICOLON
func (p *Parser) stm() {
	switch {
	case p.cur().Kind == token.LACC:
		p.stmCompound()
	case p.consume(token.IF):
		line := p.line()
		p.expect(token.LPAR, "(")
		cond := p.expr()
		checker.CheckCondition(cond, "if", line)
		p.expect(token.RPAR, ")")
		p.stm()
		if p.consume(token.ELSE) {
			p.stm()
		}
	case p.consume(token.WHILE):
		line := p.line()
		p.expect(token.LPAR, "(")
		cond := p.expr()
		checker.CheckCondition(cond, "while", line)
		p.expect(token.RPAR, ")")
		p.stm()
	case p.consume(token.RETURN):
		line := p.line()
		var r *Ret
		if p.cur().Kind != token.SEMICOLON {
			v := p.expr()
			r = &v
		}
		if p.curFn == nil {
			diag.Fatalf(line, "return outside of a function")
		}
		checker.CheckReturn(p.curFn.Type, r != nil, r, line)
		p.expect(token.SEMICOLON, ";")
	default:
		if p.cur().Kind != token.SEMICOLON {
			p.expr()
		}
		p.expect(token.SEMICOLON, ";")
	}
}

// stmCompound := LACC (varDef | stm)* RACC
// A nested compound statement always pushes and pops its own domain
// (spec §4.3); the function-body compound does not — see
// stmCompoundBody.
func (p *Parser) stmCompound() {
	p.expect(token.LACC, "{")
	p.dom.PushDomain()
	p.stmCompoundItems()
	p.dom.DropDomain()
	p.expect(token.RACC, "}")
}

// stmCompoundBody parses a function's compound statement body, sharing
// the domain already pushed for its parameter list (spec §4.3: "the
// compound statement therefore does not push a fresh domain when entered
// immediately by a function").
func (p *Parser) stmCompoundBody() {
	p.expect(token.LACC, "{")
	p.stmCompoundItems()
	p.expect(token.RACC, "}")
}

func (p *Parser) stmCompoundItems() {
	for {
		if p.varDef() {
			continue
		}
		if p.cur().Kind == token.RACC {
			return
		}
		p.stm()
	}
}
