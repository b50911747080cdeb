package table

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// ─────────────────────────────────────────────────────────────────────────────
// Constructors & native-Go bridge
// ─────────────────────────────────────────────────────────────────────────────

// New creates a sequence from a variadic list of elements.
// nil elements are skipped (nil is not storable).
//
//	t := table.New(1, 2, 3)
func New(elems ...any) *Table {
	t := &Table{list: make([]any, 0, len(elems))}
	for _, e := range elems {
		if e != nil {
			t.list = append(t.list, e)
		}
	}
	return t
}

// FromSlice creates a sequence whose positions 1..len(items) hold the
// slice's elements in order. nil interface elements are skipped.
func FromSlice[T any](items []T) *Table {
	t := &Table{list: make([]any, 0, len(items))}
	for _, item := range items {
		if v := any(item); v != nil {
			t.list = append(t.list, v)
		}
	}
	return t
}

// FromMap creates a table from a Go map. Keys are canonicalized as usual,
// so integer keys forming 1..n become the dense sequence part regardless of
// map iteration order. nil interface keys and values are skipped.
func FromMap[K comparable, V any](m map[K]V) *Table {
	t := &Table{}
	for k, v := range m {
		if any(k) == nil {
			continue
		}
		if val := any(v); val != nil {
			t.Set(k, val)
		}
	}
	return t
}

// Range creates a sequence of consecutive integers. Like PHP's range, it
// counts down when from > to:
//
//	table.Range(1, 4) // → [1, 2, 3, 4]
//	table.Range(3, 1) // → [3, 2, 1]
func Range[T constraints.Integer](from, to T) *Table {
	if from <= to {
		t := &Table{list: make([]any, 0, int(to-from)+1)}
		for v := from; ; v++ {
			t.list = append(t.list, v)
			if v == to {
				return t
			}
		}
	}
	t := &Table{list: make([]any, 0, int(from-to)+1)}
	for v := from; ; v-- {
		t.list = append(t.list, v)
		if v == to {
			return t
		}
	}
}

// FromNative converts a native Go container — any map, slice or array,
// arbitrarily nested — into a table, recursively. Map keys are
// canonicalized; slice elements land at positions 1..n; nil keys and nil
// values are skipped. A *Table input is returned as-is. Scalar input fails
// with [ErrNotContainer]. Cyclic native structures are not detected.
func FromNative(v any) (*Table, error) {
	if t, ok := v.(*Table); ok {
		return t, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return fromNativeValue(rv), nil
	default:
		return nil, ErrNotContainer
	}
}

func fromNativeValue(rv reflect.Value) *Table {
	t := &Table{}
	switch rv.Kind() {
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			// YAML allows null mapping keys; treat them like nil values
			// and drop the pair instead of panicking in Set.
			if k := iter.Key().Interface(); k != nil {
				t.Set(k, fromNativeElem(iter.Value().Interface()))
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if e := fromNativeElem(rv.Index(i).Interface()); e != nil {
				t.list = append(t.list, e)
			}
		}
	}
	return t
}

// fromNativeElem converts element values: containers recurse, everything
// else passes through.
func fromNativeElem(v any) any {
	if v == nil {
		return nil
	}
	if t, ok := v.(*Table); ok {
		return t
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return fromNativeValue(rv)
	default:
		return v
	}
}

// Native projects the table back onto native Go containers: a pure sequence
// (Size() == Len()) becomes a []any, anything else a map[any]any, with
// nested tables converted recursively. A nil table yields nil.
func (t *Table) Native() any {
	if t == nil {
		return nil
	}
	if len(t.hash) == 0 {
		out := make([]any, len(t.list))
		for i, v := range t.list {
			out[i] = nativeElem(v)
		}
		return out
	}
	out := make(map[any]any, t.Size())
	t.Each(func(k, v any) bool {
		out[k] = nativeElem(v)
		return true
	})
	return out
}

func nativeElem(v any) any {
	if sub, ok := v.(*Table); ok {
		return sub.Native()
	}
	return v
}
