package checker

import (
	"testing"

	"github.com/atomc-lang/atomc/internal/diag"
	"github.com/atomc-lang/atomc/internal/domain"
)

func mustFatal(t *testing.T, f func()) *diag.Error {
	t.Helper()
	err := diag.Catch(f)
	if err == nil {
		t.Fatal("expected a diagnostic error, got none")
	}
	return err
}

func mustNotFatal(t *testing.T, f func()) {
	t.Helper()
	if err := diag.Catch(f); err != nil {
		t.Fatalf("unexpected diagnostic error: %v", err)
	}
}

func TestTypeSizeScalars(t *testing.T) {
	cases := []struct {
		ty   domain.Type
		want int
	}{
		{domain.ScalarType(domain.TB_INT), sizeInt},
		{domain.ScalarType(domain.TB_DOUBLE), sizeDouble},
		{domain.ScalarType(domain.TB_CHAR), sizeChar},
	}
	for _, c := range cases {
		if got := TypeSize(c.ty); got != c.want {
			t.Errorf("TypeSize(%v) = %d, want %d", c.ty, got, c.want)
		}
	}
}

func TestTypeSizeArrays(t *testing.T) {
	elem := domain.ScalarType(domain.TB_INT)
	fixed := elem.WithArray(10)
	if got := TypeSize(fixed); got != 10*sizeInt {
		t.Errorf("TypeSize(int[10]) = %d, want %d", got, 10*sizeInt)
	}
	unspec := elem.WithArray(0)
	if got := TypeSize(unspec); got != sizeInt {
		t.Errorf("TypeSize(int[]) = %d, want %d", got, sizeInt)
	}
}

func TestTypeSizeStruct(t *testing.T) {
	st := &domain.Symbol{Name: "Point", Kind: domain.SK_STRUCT}
	size := TypeSize
	st.AddMember(&domain.Symbol{Name: "x", Type: domain.ScalarType(domain.TB_INT)}, size)
	st.AddMember(&domain.Symbol{Name: "y", Type: domain.ScalarType(domain.TB_INT)}, size)
	want := 2 * sizeInt
	if got := TypeSize(domain.StructType(st)); got != want {
		t.Errorf("TypeSize(struct Point) = %d, want %d", got, want)
	}
}

func TestConvToScalars(t *testing.T) {
	intT := domain.ScalarType(domain.TB_INT)
	doubleT := domain.ScalarType(domain.TB_DOUBLE)
	charT := domain.ScalarType(domain.TB_CHAR)
	if !ConvTo(intT, doubleT) || !ConvTo(doubleT, intT) || !ConvTo(charT, intT) {
		t.Error("expected all scalar-to-scalar conversions among int/double/char to succeed")
	}
}

func TestConvToStructRequiresIdentity(t *testing.T) {
	a := &domain.Symbol{Name: "A", Kind: domain.SK_STRUCT}
	b := &domain.Symbol{Name: "B", Kind: domain.SK_STRUCT}
	if !ConvTo(domain.StructType(a), domain.StructType(a)) {
		t.Error("expected identical struct types to convert")
	}
	if ConvTo(domain.StructType(a), domain.StructType(b)) {
		t.Error("expected distinct struct types not to convert")
	}
	if ConvTo(domain.StructType(a), domain.ScalarType(domain.TB_INT)) {
		t.Error("expected struct-to-scalar conversion to fail")
	}
}

func TestConvToArrays(t *testing.T) {
	charArr := domain.ScalarType(domain.TB_CHAR).WithArray(0)
	charArr2 := domain.ScalarType(domain.TB_CHAR).WithArray(5)
	if !ConvTo(charArr, charArr2) {
		t.Error("expected a string (char[]) to convert to a sized char array")
	}
	if ConvTo(charArr, domain.ScalarType(domain.TB_CHAR)) {
		t.Error("expected array-to-scalar conversion to fail")
	}
}

func TestArithTypeTo(t *testing.T) {
	intT := domain.ScalarType(domain.TB_INT)
	doubleT := domain.ScalarType(domain.TB_DOUBLE)
	res, ok := ArithTypeTo(intT, intT)
	if !ok || res.Base != domain.TB_INT {
		t.Errorf("int+int should yield int, got %v ok=%v", res, ok)
	}
	res, ok = ArithTypeTo(intT, doubleT)
	if !ok || res.Base != domain.TB_DOUBLE {
		t.Errorf("int+double should yield double, got %v ok=%v", res, ok)
	}
	arr := intT.WithArray(3)
	if _, ok := ArithTypeTo(arr, intT); ok {
		t.Error("expected arithmetic over an array operand to fail")
	}
}

func TestCheckAssignRules(t *testing.T) {
	intT := domain.ScalarType(domain.TB_INT)
	lval := Ret{Type: intT, Lval: true}
	mustNotFatal(t, func() {
		CheckAssign(lval, Ret{Type: intT}, 1)
	})

	notLval := Ret{Type: intT}
	mustFatal(t, func() {
		CheckAssign(notLval, Ret{Type: intT}, 1)
	})

	constLval := Ret{Type: intT, Lval: true, Ct: true}
	mustFatal(t, func() {
		CheckAssign(constLval, Ret{Type: intT}, 1)
	})

	arrLval := Ret{Type: intT.WithArray(3), Lval: true}
	mustFatal(t, func() {
		CheckAssign(arrLval, Ret{Type: intT}, 1)
	})
}

func TestCheckIndex(t *testing.T) {
	intT := domain.ScalarType(domain.TB_INT)
	arr := Ret{Type: intT.WithArray(5)}
	idx := Ret{Type: intT}
	var res Ret
	mustNotFatal(t, func() {
		res = CheckIndex(arr, idx, 1)
	})
	if !res.Lval || res.Type.IsArray() {
		t.Errorf("expected a scalar lvalue result, got %+v", res)
	}

	mustFatal(t, func() {
		CheckIndex(Ret{Type: intT}, idx, 1)
	})

	structT := Ret{Type: intT.WithArray(5)}
	mustFatal(t, func() {
		CheckIndex(structT, Ret{Type: domain.StructType(&domain.Symbol{Kind: domain.SK_STRUCT})}, 1)
	})
}

func TestCheckField(t *testing.T) {
	st := &domain.Symbol{Name: "Point", Kind: domain.SK_STRUCT}
	size := TypeSize
	st.AddMember(&domain.Symbol{Name: "x", Type: domain.ScalarType(domain.TB_INT)}, size)
	s := Ret{Type: domain.StructType(st)}

	var res Ret
	mustNotFatal(t, func() {
		res = CheckField(s, "x", 1)
	})
	if !res.Lval || res.Type.Base != domain.TB_INT {
		t.Errorf("expected lvalue int field, got %+v", res)
	}

	mustFatal(t, func() {
		CheckField(s, "missing", 1)
	})

	mustFatal(t, func() {
		CheckField(Ret{Type: domain.ScalarType(domain.TB_INT)}, "x", 1)
	})
}

func TestCheckCast(t *testing.T) {
	intT := domain.ScalarType(domain.TB_INT)
	doubleT := domain.ScalarType(domain.TB_DOUBLE)
	mustNotFatal(t, func() {
		CheckCast(Ret{Type: intT}, doubleT, 1)
	})

	a := &domain.Symbol{Name: "A", Kind: domain.SK_STRUCT}
	b := &domain.Symbol{Name: "B", Kind: domain.SK_STRUCT}
	mustFatal(t, func() {
		CheckCast(Ret{Type: domain.StructType(a)}, domain.StructType(b), 1)
	})

	mustFatal(t, func() {
		CheckCast(Ret{Type: intT.WithArray(3)}, intT, 1)
	})
}

func TestCheckReturn(t *testing.T) {
	voidT := domain.ScalarType(domain.TB_VOID)
	intT := domain.ScalarType(domain.TB_INT)

	mustNotFatal(t, func() {
		CheckReturn(voidT, false, nil, 1)
	})
	mustFatal(t, func() {
		CheckReturn(voidT, true, &Ret{Type: intT}, 1)
	})
	mustFatal(t, func() {
		CheckReturn(intT, false, nil, 1)
	})
	mustNotFatal(t, func() {
		r := Ret{Type: intT}
		CheckReturn(intT, true, &r, 1)
	})
	mustFatal(t, func() {
		r := Ret{Type: intT.WithArray(3)}
		CheckReturn(intT, true, &r, 1)
	})
}

func TestCheckCondition(t *testing.T) {
	mustNotFatal(t, func() {
		CheckCondition(Ret{Type: domain.ScalarType(domain.TB_INT)}, "if", 1)
	})
	mustFatal(t, func() {
		CheckCondition(Ret{Type: domain.ScalarType(domain.TB_INT).WithArray(3)}, "while", 1)
	})
}
