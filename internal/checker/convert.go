package checker

import "github.com/atomc-lang/atomc/internal/domain"

// ConvTo reports whether a value of type src may convert to type dst
// (spec §4.4's conversion lattice): any two scalars in {int, double, char}
// convert either way; identical scalar struct types convert (a no-op);
// arrays convert when both are arrays of element types that satisfy the
// scalar rule (this is how a string — an unspecified-size char array —
// converts to any char array).
func ConvTo(src, dst domain.Type) bool {
	if src.IsArray() || dst.IsArray() {
		if !src.IsArray() || !dst.IsArray() {
			return false
		}
		return scalarConvertible(src.AsScalar(), dst.AsScalar())
	}
	return scalarConvertible(src, dst)
}

func scalarConvertible(src, dst domain.Type) bool {
	if src.Base == domain.TB_STRUCT || dst.Base == domain.TB_STRUCT {
		return src.SameStruct(dst)
	}
	return isScalarBase(src.Base) && isScalarBase(dst.Base)
}

// ArithTypeTo computes the result type of a binary arithmetic operator
// applied to operands of type a and b, per spec §4.4: both must be scalar
// and in {int, double, char}; the result is double if either operand is
// double, else int.
func ArithTypeTo(a, b domain.Type) (domain.Type, bool) {
	if a.IsArray() || b.IsArray() || !isScalarBase(a.Base) || !isScalarBase(b.Base) {
		return domain.Type{}, false
	}
	if a.Base == domain.TB_DOUBLE || b.Base == domain.TB_DOUBLE {
		return domain.ScalarType(domain.TB_DOUBLE), true
	}
	return domain.ScalarType(domain.TB_INT), true
}
