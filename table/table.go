package table

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
)

// Table is a dynamic container that is both a 1-based sequence and a
// key→value mapping, in the manner of a scripting-language table.
//
// Internally a table keeps a dense part (positions 1..Len(), no gaps) and a
// hash part for every other key. Writes keep the two parts consistent:
// setting position Len()+1 grows the dense part (and pulls any now-contiguous
// keys out of the hash part), while deleting a position inside the dense part
// moves the tail back into the hash part. Callers never see the split — Get
// and Set address both parts uniformly.
//
// # Keys
//
// Keys may be any comparable Go value. Integer-kind keys are canonicalized so
// that int8(5), uint(5), int64(5) and float64(5) all address the same slot;
// non-integral floats keep their float64 identity; no coercion ever happens
// across non-numeric kinds ("5" remains a string key, distinct from 5).
// A nil key panics, as does a key of a non-comparable type (same contract as
// writing to a Go map).
//
// # Absence
//
// nil is not a storable element: Set(k, nil) deletes k, so a nil result from
// Get unambiguously means "absent". Operations that must distinguish absence
// at their boundary ([Table.Find], [Table.Shift]) return an additional bool.
//
// # nil receivers
//
// Read-only operations treat a nil *Table as an empty table (or return
// [ErrNilTable] where their contract requires a well-formed container).
// Set, Push and Unshift require a non-nil receiver and panic otherwise,
// like writes to a nil Go map.
type Table struct {
	list []any
	hash map[any]any
}

// ─────────────────────────────────────────────────────────────────────────────
// Key canonicalization
// ─────────────────────────────────────────────────────────────────────────────

// normKey canonicalizes k for storage and lookup: every Go integer kind and
// every integral float collapses to int, other floats to float64. Remaining
// kinds are used verbatim.
func normKey(k any) any {
	switch v := k.(type) {
	case nil:
		panic("table: nil key")
	case int:
		return v
	case int8:
		return int(v)
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return int(v)
	case uint:
		if uint64(v) > math.MaxInt64 {
			return float64(v)
		}
		return int(v)
	case uint8:
		return int(v)
	case uint16:
		return int(v)
	case uint32:
		return int(v)
	case uint64:
		if v > math.MaxInt64 {
			return float64(v)
		}
		return int(v)
	case float32:
		return normFloatKey(float64(v))
	case float64:
		return normFloatKey(v)
	default:
		return k
	}
}

func normFloatKey(f float64) any {
	// float64(MaxInt64) rounds up to 2^63, so the bound must be strict:
	// 2^63 itself stays a float key rather than overflowing int.
	if f == math.Trunc(f) && !math.IsInf(f, 0) && f >= math.MinInt64 && f < math.MaxInt64 {
		return int(f)
	}
	return f
}

// keyString renders a canonical key for object-style serialization and error
// messages.
func keyString(k any) string {
	switch v := k.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the sequence length: the number of contiguous elements at
// positions 1..n. Keys outside that range (sparse positions, string keys, …)
// do not count; use [Table.Size] for the total number of pairs.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.list)
}

// Size returns the total number of key/value pairs, dense and hash part
// combined.
func (t *Table) Size() int {
	if t == nil {
		return 0
	}
	return len(t.list) + len(t.hash)
}

// Get returns the value stored at key, or nil when the key is absent.
// Since nil is never a stored element, a nil result always means "absent".
func (t *Table) Get(key any) any {
	if t == nil {
		return nil
	}
	k := normKey(key)
	if i, ok := k.(int); ok && i >= 1 && i <= len(t.list) {
		return t.list[i-1]
	}
	if t.hash == nil {
		return nil
	}
	return t.hash[k]
}

// Has reports whether key is present.
func (t *Table) Has(key any) bool {
	return t.Get(key) != nil
}

// Set stores value at key. Storing nil deletes the key. The key is
// canonicalized (see the type documentation); a nil key panics.
//
// Writing position Len()+1 extends the sequence; writing nil to a position
// inside the sequence moves every later element into the hash part, so the
// sequence ends just before the new hole.
func (t *Table) Set(key, value any) {
	if t == nil {
		panic("table: Set on nil table")
	}
	k := normKey(key)
	if !reflect.TypeOf(k).Comparable() {
		panic(fmt.Sprintf("table: key of non-comparable type %T", key))
	}

	if i, ok := k.(int); ok && i >= 1 {
		switch {
		case i <= len(t.list):
			if value == nil {
				t.demote(i)
				return
			}
			t.list[i-1] = value
			return
		case i == len(t.list)+1 && value != nil:
			t.list = append(t.list, value)
			t.promote()
			return
		}
	}

	if value == nil {
		delete(t.hash, k)
		return
	}
	if t.hash == nil {
		t.hash = make(map[any]any)
	}
	t.hash[k] = value
}

// Delete removes key. Equivalent to Set(key, nil).
func (t *Table) Delete(key any) {
	t.Set(key, nil)
}

// promote moves hash-part keys that have become contiguous with the dense
// part (Len()+1, Len()+2, …) into it.
func (t *Table) promote() {
	for {
		v, ok := t.hash[len(t.list)+1]
		if !ok {
			return
		}
		delete(t.hash, len(t.list)+1)
		t.list = append(t.list, v)
	}
}

// demote deletes position i from the dense part, pushing positions i+1..n
// into the hash part so the dense invariant (no gaps) holds.
func (t *Table) demote(i int) {
	for j := i + 1; j <= len(t.list); j++ {
		if t.hash == nil {
			t.hash = make(map[any]any)
		}
		t.hash[j] = t.list[j-1]
	}
	t.list = t.list[:i-1]
}

// Keys returns every key: positions 1..Len() in order, then the hash-part
// keys in unspecified order.
func (t *Table) Keys() []any {
	if t == nil {
		return nil
	}
	keys := make([]any, 0, t.Size())
	for i := range t.list {
		keys = append(keys, i+1)
	}
	for k := range t.hash {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns every key in the canonical order used by [Fingerprint]
// and object-style JSON output: positions first, then hash keys sorted by
// kind and value.
func (t *Table) SortedKeys() []any {
	if t == nil {
		return nil
	}
	keys := make([]any, 0, t.Size())
	for i := range t.list {
		keys = append(keys, i+1)
	}
	rest := make([]any, 0, len(t.hash))
	for k := range t.hash {
		rest = append(rest, k)
	}
	sort.Slice(rest, func(i, j int) bool { return keyLess(rest[i], rest[j]) })
	return append(keys, rest...)
}

// keyLess orders canonical keys deterministically: numbers, then strings,
// then booleans, then everything else by formatted value.
func keyLess(a, b any) bool {
	ra, rb := keyRank(a), keyRank(b)
	if ra != rb {
		return ra < rb
	}
	switch ra {
	case 0:
		return keyFloat(a) < keyFloat(b)
	case 1:
		return a.(string) < b.(string)
	case 2:
		return !a.(bool) && b.(bool)
	default:
		return fmt.Sprintf("%v", a) < fmt.Sprintf("%v", b)
	}
}

func keyRank(k any) int {
	switch k.(type) {
	case int, float64:
		return 0
	case string:
		return 1
	case bool:
		return 2
	default:
		return 3
	}
}

func keyFloat(k any) float64 {
	switch v := k.(type) {
	case int:
		return float64(v)
	case float64:
		return v
	}
	return 0
}

// Each calls fn(key, value) for every pair: positions 1..Len() in order,
// then the hash part in unspecified order. Iteration stops when fn returns
// false. The table must not be mutated during iteration.
func (t *Table) Each(fn func(key, value any) bool) {
	if t == nil {
		return
	}
	for i, v := range t.list {
		if !fn(i+1, v) {
			return
		}
	}
	for k, v := range t.hash {
		if !fn(k, v) {
			return
		}
	}
}

// String returns a JSON rendering of the table, or a fmt fallback when the
// table holds values that cannot be marshalled. It implements [fmt.Stringer].
func (t *Table) String() string {
	b, err := t.ToJSON()
	if err != nil {
		return fmt.Sprintf("&Table{list: %v, hash: %v}", t.list, t.hash)
	}
	return string(b)
}
