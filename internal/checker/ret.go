package checker

import "github.com/atomc-lang/atomc/internal/domain"

// Ret is the type analyser's per-expression annotation: a Type plus the
// lvalue and constness flags spec §3 defines. lval: the expression denotes
// an assignable storage location. ct ("constant"): the expression is not
// modifiable — a literal, a cast result, an arithmetic result. Some
// lvalues (arrays) are also ct.
type Ret struct {
	Type domain.Type
	Lval bool
	Ct   bool
}

// CanBeScalar reports whether r's type may stand where a scalar value is
// required: not an array, and not a struct.
func CanBeScalar(r Ret) bool {
	return !r.Type.IsArray() && r.Type.Base != domain.TB_STRUCT
}

func isScalarBase(b domain.Base) bool {
	return b == domain.TB_INT || b == domain.TB_DOUBLE || b == domain.TB_CHAR
}
