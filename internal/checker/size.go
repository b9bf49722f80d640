// Package checker implements AtomC's type analyser (spec §4.4): the Ret
// annotation every sub-expression gets, the conversion and arithmetic-
// promotion lattices, and the rule for every operator, call, cast,
// conditional, and return.
package checker

import "github.com/atomc-lang/atomc/internal/domain"

// Base sizes in bytes, per spec §4.4.
const (
	sizeInt    = 4
	sizeDouble = 8
	sizeChar   = 1
)

// TypeSize computes the storage size of t: element size for an array of
// unspecified dimension, n*elementSize for a sized array, the fixed base
// size for a scalar, and the sum of member sizes (in declaration order)
// for a struct.
func TypeSize(t domain.Type) int {
	if t.IsArray() {
		elem := t.AsScalar()
		elemSize := TypeSize(elem)
		if t.N <= 0 {
			return elemSize
		}
		return t.N * elemSize
	}
	switch t.Base {
	case domain.TB_INT:
		return sizeInt
	case domain.TB_DOUBLE:
		return sizeDouble
	case domain.TB_CHAR:
		return sizeChar
	case domain.TB_STRUCT:
		total := 0
		if t.Struct != nil {
			for _, m := range t.Struct.Members {
				total += TypeSize(m.Type)
			}
		}
		return total
	default:
		return 0
	}
}
