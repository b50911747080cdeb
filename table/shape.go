package table

import "fmt"

// IsArray reports whether v is a table whose every key is numeric. It is a
// weak, fast classification: contiguity and 1-basing are NOT checked, so a
// sparse table like {1: "a", 9: "b"} passes even though positional
// operations will only see its dense prefix. Use it as a pre-guard, not as
// a full sequence validator.
//
// Non-table input — scalars, native Go containers, nil — returns false,
// never an error. A nil or empty *Table counts as an array (it has no
// offending keys).
func IsArray(v any) bool {
	t, ok := v.(*Table)
	if !ok {
		return false
	}
	return t.IsArray()
}

// IsArray reports whether every key of t is numeric. See the package-level
// [IsArray] for the exact (weak) contract. A nil table is an empty sequence.
func (t *Table) IsArray() bool {
	if t == nil {
		return true
	}
	for k := range t.hash {
		switch k.(type) {
		case int, float64:
		default:
			return false
		}
	}
	return true
}

// kindOf names the runtime kind of v for error messages: "nil table" for a
// nil *Table, "map-shaped table" for a table with non-numeric keys,
// "sparse table" for a numeric-keyed table with keys outside 1..Len(), and
// the Go type name for everything else.
func kindOf(v any) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case *Table:
		switch {
		case t == nil:
			return "nil table"
		case !t.IsArray():
			return "map-shaped table"
		case len(t.hash) > 0:
			return "sparse table"
		default:
			return "table"
		}
	default:
		return fmt.Sprintf("%T", v)
	}
}
