package table

import (
	"math"
	"reflect"
)

// Equal reports whether a and b are structurally equal: same keys, and
// structurally equal values key by key, descending into nested tables.
// Table identity is irrelevant — a deep copy is Equal to its original.
//
// Numeric leaves are compared across Go kinds, because the container models
// a single dynamic number kind: int 1, uint8(1) and float64(1) are all
// equal. Non-numeric leaves compare with [reflect.DeepEqual]. A nil table
// equals an empty one.
func Equal(a, b *Table) bool {
	if a.Size() != b.Size() {
		return false
	}
	equal := true
	a.Each(func(k, av any) bool {
		bv := b.Get(k)
		if bv == nil || !elemEqual(av, bv) {
			equal = false
			return false
		}
		return true
	})
	return equal
}

func elemEqual(a, b any) bool {
	at, aIsTable := a.(*Table)
	bt, bIsTable := b.(*Table)
	if aIsTable || bIsTable {
		return aIsTable && bIsTable && Equal(at, bt)
	}
	if ai, af, aIsInt, aNum := numValue(a); aNum {
		bi, bf, bIsInt, bNum := numValue(b)
		if !bNum {
			return false
		}
		if aIsInt && bIsInt {
			return ai == bi
		}
		return af == bf
	}
	return reflect.DeepEqual(a, b)
}

// numValue decomposes a numeric value into integer and float views.
// ok is false for non-numeric input.
func numValue(v any) (i int64, f float64, isInt, ok bool) {
	switch n := v.(type) {
	case int:
		return int64(n), float64(n), true, true
	case int8:
		return int64(n), float64(n), true, true
	case int16:
		return int64(n), float64(n), true, true
	case int32:
		return int64(n), float64(n), true, true
	case int64:
		return n, float64(n), true, true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, float64(n), false, true
		}
		return int64(n), float64(n), true, true
	case uint8:
		return int64(n), float64(n), true, true
	case uint16:
		return int64(n), float64(n), true, true
	case uint32:
		return int64(n), float64(n), true, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, float64(n), false, true
		}
		return int64(n), float64(n), true, true
	case float32:
		return decomposeFloat(float64(n))
	case float64:
		return decomposeFloat(n)
	}
	return 0, 0, false, false
}

func decomposeFloat(f float64) (int64, float64, bool, bool) {
	if f == math.Trunc(f) && !math.IsInf(f, 0) && f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f), f, true, true
	}
	return 0, f, false, true
}
