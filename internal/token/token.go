// Package token defines the lexical vocabulary of AtomC: the closed set of
// token kinds the lexer may produce and the Token value itself.
package token

import "fmt"

// Kind identifies the lexical class of a Token.
type Kind int

// The closed set of AtomC token kinds, grouped the way spec §3 groups them.
const (
	// Identifier
	ID Kind = iota

	// Keywords
	TYPE_CHAR
	TYPE_DOUBLE
	TYPE_INT
	VOID
	STRUCT
	IF
	ELSE
	WHILE
	RETURN

	// Punctuation
	COMMA
	SEMICOLON
	LPAR
	RPAR
	LBRACKET
	RBRACKET
	LACC
	RACC
	END

	// Operators
	ADD
	SUB
	MUL
	DIV
	DOT
	AND
	OR
	NOT
	ASSIGN
	EQUAL
	NOTEQ
	LESS
	LESSEQ
	GREATER
	GREATEREQ

	// Literals
	INT
	DOUBLE
	CHAR
	STRING
)

var kindNames = map[Kind]string{
	ID:          "ID",
	TYPE_CHAR:   "TYPE_CHAR",
	TYPE_DOUBLE: "TYPE_DOUBLE",
	TYPE_INT:    "TYPE_INT",
	VOID:        "VOID",
	STRUCT:      "STRUCT",
	IF:          "IF",
	ELSE:        "ELSE",
	WHILE:       "WHILE",
	RETURN:      "RETURN",
	COMMA:       "COMMA",
	SEMICOLON:   "SEMICOLON",
	LPAR:        "LPAR",
	RPAR:        "RPAR",
	LBRACKET:    "LBRACKET",
	RBRACKET:    "RBRACKET",
	LACC:        "LACC",
	RACC:        "RACC",
	END:         "END",
	ADD:         "ADD",
	SUB:         "SUB",
	MUL:         "MUL",
	DIV:         "DIV",
	DOT:         "DOT",
	AND:         "AND",
	OR:          "OR",
	NOT:         "NOT",
	ASSIGN:      "ASSIGN",
	EQUAL:       "EQUAL",
	NOTEQ:       "NOTEQ",
	LESS:        "LESS",
	LESSEQ:      "LESSEQ",
	GREATER:     "GREATER",
	GREATEREQ:   "GREATEREQ",
	INT:         "INT",
	DOUBLE:      "DOUBLE",
	CHAR:        "CHAR",
	STRING:      "STRING",
}

// Keywords maps reserved words to their Kind. Built once; the lexer uses it
// to reclassify an identifier run as a keyword.
var Keywords = map[string]Kind{
	"char":   TYPE_CHAR,
	"double": TYPE_DOUBLE,
	"int":    TYPE_INT,
	"void":   VOID,
	"struct": STRUCT,
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"return": RETURN,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one node in the lexer's singly-linked token stream.
//
// Only the field matching Kind is meaningful: Text for ID/STRING, IntVal
// for INT, DoubleVal for DOUBLE, CharVal for CHAR. All other kinds carry no
// payload.
type Token struct {
	Next      *Token
	Text      string
	Kind      Kind
	Line      int
	IntVal    int
	DoubleVal float64
	CharVal   rune
}

// String renders the token the way cmd/atomc's "lex" subcommand prints it:
// kind plus, where meaningful, its literal payload.
func (t *Token) String() string {
	switch t.Kind {
	case ID:
		return fmt.Sprintf("ID(%s)", t.Text)
	case INT:
		return fmt.Sprintf("INT(%d)", t.IntVal)
	case DOUBLE:
		return fmt.Sprintf("DOUBLE(%g)", t.DoubleVal)
	case CHAR:
		return fmt.Sprintf("CHAR(%q)", t.CharVal)
	case STRING:
		return fmt.Sprintf("STRING(%q)", t.Text)
	default:
		return t.Kind.String()
	}
}
