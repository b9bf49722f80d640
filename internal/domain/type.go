// Package domain implements AtomC's type representation, symbol table, and
// the domain (lexical scope) analyser of spec §4.3: a stack of domains,
// name resolution, redefinition detection, and symbol ownership.
package domain

import "strconv"

// Base is the primitive tag of a Type.
type Base int

const (
	TB_INT Base = iota
	TB_DOUBLE
	TB_CHAR
	TB_VOID
	TB_STRUCT
)

func (b Base) String() string {
	switch b {
	case TB_INT:
		return "int"
	case TB_DOUBLE:
		return "double"
	case TB_CHAR:
		return "char"
	case TB_VOID:
		return "void"
	case TB_STRUCT:
		return "struct"
	default:
		return "?"
	}
}

// Type is the triple described in spec §3: a base tag, a (non-owning)
// reference to the struct Symbol when Base is TB_STRUCT, and an array
// dimension N: -1 means scalar, 0 means "array of unspecified size"
// (legal only for parameters and string literals), any n > 0 is a fixed
// size.
type Type struct {
	Struct *Symbol
	Base   Base
	N      int
}

// ScalarType builds a scalar Type of the given base (base must not be
// TB_STRUCT; use StructType for that).
func ScalarType(b Base) Type {
	return Type{Base: b, N: -1}
}

// StructType builds a scalar struct-typed Type referring to s.
func StructType(s *Symbol) Type {
	return Type{Base: TB_STRUCT, Struct: s, N: -1}
}

// IsArray reports whether t has an array dimension (n >= 0).
func (t Type) IsArray() bool { return t.N >= 0 }

// WithArray returns a copy of t with its array dimension set to n.
func (t Type) WithArray(n int) Type {
	t.N = n
	return t
}

// AsScalar returns a copy of t with its array dimension cleared (n = -1),
// used when indexing strips one array dimension off an element type.
func (t Type) AsScalar() Type {
	t.N = -1
	return t
}

// SameStruct reports whether two STRUCT types name the identical struct
// symbol — the identity-by-reference rule spec §4.4 requires for struct
// conversion and cast.
func (t Type) SameStruct(o Type) bool {
	return t.Base == TB_STRUCT && o.Base == TB_STRUCT && t.Struct == o.Struct
}

// String renders a Type the way showDomain (spec §6) prints it: the base
// token, or the struct's name for a struct type (no "*" marker is
// printed), and an "[n]" suffix for arrays ("[]" when n == 0).
func (t Type) String() string {
	s := t.Base.String()
	if t.Base == TB_STRUCT && t.Struct != nil {
		s = t.Struct.Name
	}
	if t.IsArray() {
		if t.N == 0 {
			s += "[]"
		} else {
			s += "[" + strconv.Itoa(t.N) + "]"
		}
	}
	return s
}
