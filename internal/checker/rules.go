package checker

import (
	"github.com/atomc-lang/atomc/internal/diag"
	"github.com/atomc-lang/atomc/internal/domain"
)

// CheckArith validates a binary arithmetic operator (+ - * /) over l and r
// and returns the Ret of the result.
func CheckArith(op string, l, r Ret, line int) Ret {
	t, ok := ArithTypeTo(l.Type, r.Type)
	if !ok {
		diag.Fatalf(line, "invalid operand type for %s", op)
	}
	return Ret{Type: t, Ct: true}
}

// CheckRelational validates a relational or equality operator (< <= > >=
// == !=); spec §4.4: always yields {int, scalar, ct=true, lval=false}.
func CheckRelational(op string, l, r Ret, line int) Ret {
	if _, ok := ArithTypeTo(l.Type, r.Type); !ok {
		diag.Fatalf(line, "invalid operand type for %s", op)
	}
	return Ret{Type: domain.ScalarType(domain.TB_INT), Ct: true}
}

// CheckLogical validates && and ||: spec §4.4 delegates to ArithTypeTo and
// likewise yields int.
func CheckLogical(op string, l, r Ret, line int) Ret {
	if _, ok := ArithTypeTo(l.Type, r.Type); !ok {
		diag.Fatalf(line, "invalid operand type for %s", op)
	}
	return Ret{Type: domain.ScalarType(domain.TB_INT), Ct: true}
}

// CheckUnaryMinus validates unary '-': requires a scalar operand, yields
// the same type, not an lvalue, constant.
func CheckUnaryMinus(r Ret, line int) Ret {
	if !CanBeScalar(r) {
		diag.Fatalf(line, "unary - requires a scalar operand")
	}
	return Ret{Type: r.Type, Ct: true}
}

// CheckUnaryNot validates unary '!': requires a scalar operand, yields int.
func CheckUnaryNot(r Ret, line int) Ret {
	if !CanBeScalar(r) {
		diag.Fatalf(line, "unary ! requires a scalar operand")
	}
	return Ret{Type: domain.ScalarType(domain.TB_INT), Ct: true}
}

// CheckIndex validates a[i]: a must be an array; i must ConvTo int. The
// result is the element type (n cleared to -1) and is an lvalue.
func CheckIndex(array, index Ret, line int) Ret {
	if !array.Type.IsArray() {
		diag.Fatalf(line, "only an array can be indexed")
	}
	if !ConvTo(index.Type, domain.ScalarType(domain.TB_INT)) {
		diag.Fatalf(line, "the array index is not convertible to int")
	}
	return Ret{Type: array.Type.AsScalar(), Lval: true}
}

// CheckField validates s.f: s must be a struct; f must be a member. The
// result is the member's declared type, an lvalue, constant iff the
// member is itself an array.
func CheckField(s Ret, fieldName string, line int) Ret {
	if s.Type.Base != domain.TB_STRUCT || s.Type.Struct == nil {
		diag.Fatalf(line, "%s is not a struct", fieldName)
	}
	for _, m := range s.Type.Struct.Members {
		if m.Name == fieldName {
			return Ret{Type: m.Type, Lval: true, Ct: m.Type.IsArray()}
		}
	}
	diag.Fatalf(line, "struct %s does not have a field %s", s.Type.Struct.Name, fieldName)
	panic("unreachable")
}

// CheckCast validates a cast of r to target: forbidden except struct-to-
// identical-struct (a no-op) and forbidden between array and scalar.
// Otherwise the result adopts target, not an lvalue, constant.
func CheckCast(r Ret, target domain.Type, line int) Ret {
	if r.Type.Base == domain.TB_STRUCT || target.Base == domain.TB_STRUCT {
		if !r.Type.SameStruct(target) {
			diag.Fatalf(line, "cannot convert struct type")
		}
	}
	if r.Type.IsArray() != target.IsArray() {
		diag.Fatalf(line, "cannot convert from %s to %s", r.Type, target)
	}
	return Ret{Type: target, Ct: true}
}

// CheckAssign validates dst := src: dst must be an lvalue and not
// constant, both sides scalar, and src must ConvTo dst. The assignment
// expression itself is not an lvalue and is not constant.
func CheckAssign(dst, src Ret, line int) Ret {
	if !dst.Lval {
		diag.Fatalf(line, "cannot assign to a non-lvalue")
	}
	if dst.Ct {
		diag.Fatalf(line, "cannot assign to a constant")
	}
	if !CanBeScalar(dst) || !CanBeScalar(src) {
		diag.Fatalf(line, "the assignment destination and source must be scalar")
	}
	if !ConvTo(src.Type, dst.Type) {
		diag.Fatalf(line, "cannot assign %s to %s", src.Type, dst.Type)
	}
	return Ret{Type: dst.Type}
}

// CheckCallArg validates one positional call argument against its
// declared parameter type.
func CheckCallArg(fnName string, paramIdx int, paramType domain.Type, arg Ret, line int) {
	if !ConvTo(arg.Type, paramType) {
		diag.Fatalf(line, "argument %d of call to %s has incompatible type", paramIdx+1, fnName)
	}
}

// CheckCondition validates an if/while condition: must be scalar.
func CheckCondition(r Ret, what string, line int) {
	if !CanBeScalar(r) {
		diag.Fatalf(line, "the %s condition must be a scalar value", what)
	}
}

// CheckReturn validates a return statement against the enclosing
// function's declared return type. hasExpr reports whether an expression
// followed RETURN; r is nil when hasExpr is false.
func CheckReturn(fnType domain.Type, hasExpr bool, r *Ret, line int) {
	if fnType.Base == domain.TB_VOID {
		if hasExpr {
			diag.Fatalf(line, "a void function cannot return a value")
		}
		return
	}
	if !hasExpr {
		diag.Fatalf(line, "a non-void function must return a value")
	}
	if !CanBeScalar(*r) {
		diag.Fatalf(line, "the return value must be a scalar value")
	}
	if !ConvTo(r.Type, fnType) {
		diag.Fatalf(line, "cannot return %s from a function returning %s", r.Type, fnType)
	}
}
