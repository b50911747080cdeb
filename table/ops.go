package table

// Predicate is the callback type for [Table.Find], [Table.FindFrom] and
// [Table.Filter]. It receives the element, its key (an int position for
// sequence scans) and the table being scanned.
type Predicate func(value, key any, t *Table) bool

// Mapper is the callback type for [Table.Map]. A nil result means "skip":
// nothing is appended to the output for that position.
type Mapper func(value any, pos int, t *Table) any

// Reducer is the callback type for [Table.Reduce]. Its return value becomes
// the accumulator for the next position.
type Reducer func(acc, value any, pos int, t *Table) any

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// Find scans every key/value pair in the table's native order — positions
// first, then the hash part in unspecified order — and returns the first
// value for which pred returns true. The bool result reports whether a
// match was found.
func (t *Table) Find(pred Predicate) (any, bool, error) {
	if t == nil {
		return nil, false, ErrNilTable
	}
	if pred == nil {
		return nil, false, ErrNilFunc
	}
	var (
		found any
		ok    bool
	)
	t.Each(func(k, v any) bool {
		if pred(v, k, t) {
			found, ok = v, true
			return false
		}
		return true
	})
	return found, ok, nil
}

// FindFrom scans positions start..Len() in increasing order and returns the
// first value for which pred returns true. The table must be array-like
// (*ShapeError otherwise). Positions outside the dense part present nil to
// the predicate; scanning past the end simply reports no match.
func (t *Table) FindFrom(start int, pred Predicate) (any, bool, error) {
	if t == nil {
		return nil, false, ErrNilTable
	}
	if pred == nil {
		return nil, false, ErrNilFunc
	}
	if !t.IsArray() {
		return nil, false, shapeErr("FindFrom", t)
	}
	for i := start; i <= t.Len(); i++ {
		if v := t.Get(i); pred(v, i, t) {
			return v, true, nil
		}
	}
	return nil, false, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to every element of an array-like table, in positional
// order, and returns a NEW sequence of the non-nil results. nil results are
// skipped rather than leaving a hole, so the output can be shorter than the
// input — this is the library's deliberate deviation from naive positional
// mapping, not an accident.
func (t *Table) Map(fn Mapper) (*Table, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if fn == nil {
		return nil, ErrNilFunc
	}
	if !t.IsArray() {
		return nil, shapeErr("Map", t)
	}
	out := &Table{list: make([]any, 0, t.Len())}
	for i, v := range t.list {
		if r := fn(v, i+1, t); r != nil {
			out.list = append(out.list, r)
		}
	}
	return out, nil
}

// Filter returns a NEW dense 1-based sequence of the values for which pred
// returns true, visited in the table's native order. Unlike [Table.Map],
// Filter tolerates any table shape — map-shaped input is simply iterated
// key by key, and the keys themselves are discarded in the output.
func (t *Table) Filter(pred Predicate) (*Table, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if pred == nil {
		return nil, ErrNilFunc
	}
	out := &Table{list: make([]any, 0, t.Len())}
	t.Each(func(k, v any) bool {
		if pred(v, k, t) {
			out.list = append(out.list, v)
		}
		return true
	})
	return out, nil
}

// Reduce folds an array-like table strictly left to right. With an initial
// accumulator, folding covers positions 1..Len(); without one (or with a
// nil initial, which is the same thing), element 1 seeds the accumulator
// and folding starts at position 2 — and an empty sequence fails with
// [ErrEmptyNoInitial].
//
//	sum, err := t.Reduce(func(acc, v any, _ int, _ *table.Table) any {
//	    return acc.(int) + v.(int)
//	})
func (t *Table) Reduce(fn Reducer, initial ...any) (any, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if fn == nil {
		return nil, ErrNilFunc
	}
	if !t.IsArray() {
		return nil, shapeErr("Reduce", t)
	}

	var acc any
	if len(initial) > 0 {
		acc = initial[0]
	}
	start := 0
	if acc == nil {
		if t.Len() == 0 {
			return nil, ErrEmptyNoInitial
		}
		acc = t.list[0]
		start = 1
	}
	for i := start; i < len(t.list); i++ {
		acc = fn(acc, t.list[i], i+1, t)
	}
	return acc, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & spreading
// ─────────────────────────────────────────────────────────────────────────────

// Slice returns a NEW sequence holding the elements at positions
// start..end-1 (end is exclusive). Zero, one or two bounds may be given;
// start defaults to 1 and end to Len()+1.
//
// A bound below 1 saturates toward the front: it is reinterpreted as
// max(Len()-|bound|, 1). Note that this is not count-from-the-end
// indexing — Slice(5 elements, -2) starts at position max(5-2, 1) = 3 and
// can never reach past position 1 however negative the bound.
//
// A start beyond Len()+1 yields an empty sequence. Positions missing from
// the dense part are skipped, so the result is always dense.
func (t *Table) Slice(bounds ...int) (*Table, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	n := t.Len()

	start, end := 1, n+1
	if len(bounds) > 0 {
		start = bounds[0]
	}
	if len(bounds) > 1 {
		end = bounds[1]
	}
	start = saturate(start, n)
	end = saturate(end, n)
	if end > n+1 {
		end = n + 1
	}

	out := &Table{}
	for i := start; i < end; i++ {
		if v := t.Get(i); v != nil {
			out.list = append(out.list, v)
		}
	}
	return out, nil
}

// saturate applies the v < 1 bound rule: max(n-|v|, 1).
func saturate(v, n int) int {
	if v >= 1 {
		return v
	}
	if v < 0 {
		v = -v
	}
	if s := n - v; s > 1 {
		return s
	}
	return 1
}

// Spread returns the elements at positions from..to (inclusive) as a plain
// []any, ready to feed a variadic call site:
//
//	vals, err := t.Spread()      // every element
//	vals, err := t.Spread(2)     // positions 2..Len()
//	vals, err := t.Spread(2, 4)  // positions 2..4
//	fmt.Println(vals...)
//
// The table must be array-like (*ShapeError otherwise). from defaults to 1
// and to defaults to Len(); from > to produces zero values, not an error.
// Positions outside the dense part contribute nil entries — the result is a
// value list, not a container, so it can carry nil.
func (t *Table) Spread(bounds ...int) ([]any, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if !t.IsArray() {
		return nil, shapeErr("Spread", t)
	}

	from, to := 1, t.Len()
	if len(bounds) > 0 {
		from = bounds[0]
	}
	if len(bounds) > 1 {
		to = bounds[1]
	}
	if from > to {
		return nil, nil
	}
	out := make([]any, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, t.Get(i))
	}
	return out, nil
}

// Concat builds a NEW sequence from source followed by each rest argument.
// An array-like table argument contributes its elements in order (one level
// of flattening — nested sequences inside it are kept as single elements);
// any other non-nil argument — scalar or map-shaped table — is appended as
// a single element; nil arguments are skipped. No argument is mutated.
//
//	table.Concat(1, table.New(2, 3), 4) // → [1, 2, 3, 4]
func Concat(source any, rest ...any) *Table {
	out := &Table{}
	args := make([]any, 0, len(rest)+1)
	args = append(args, source)
	args = append(args, rest...)
	for _, arg := range args {
		switch {
		case arg == nil:
		case IsArray(arg):
			if sub := arg.(*Table); sub != nil {
				out.list = append(out.list, sub.list...)
			}
		default:
			out.list = append(out.list, arg)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// In-place mutation
//
// The four operations below are the library's only mutating entry points
// (together with Set). They operate on the receiver and are therefore not
// safe for concurrent use on a shared table without external locking.
// ─────────────────────────────────────────────────────────────────────────────

// Reverse reverses the sequence part in place with a two-pointer swap and
// returns the receiver, enabling chaining. The length is read once at
// entry; keys outside the dense part are left untouched.
func (t *Table) Reverse() *Table {
	if t == nil {
		return nil
	}
	for i, j := 0, len(t.list)-1; i < j; i, j = i+1, j-1 {
		t.list[i], t.list[j] = t.list[j], t.list[i]
	}
	return t
}

// Push appends each given value, in order, to the end of the sequence.
// nil values are ignored (nil is not storable).
func (t *Table) Push(values ...any) {
	if t == nil {
		panic("table: Push on nil table")
	}
	for _, v := range values {
		if v != nil {
			t.list = append(t.list, v)
		}
	}
	t.promote()
}

// Pop removes and returns the last element of the sequence, or (nil, false)
// when the sequence is empty (no mutation happens in that case).
func (t *Table) Pop() (any, bool) {
	if t == nil || len(t.list) == 0 {
		return nil, false
	}
	v := t.list[len(t.list)-1]
	t.list = t.list[:len(t.list)-1]
	return v, true
}

// Shift removes and returns the element at position 1, shifting every later
// element down one position. On an empty sequence it returns (nil, false)
// and mutates nothing.
func (t *Table) Shift() (any, bool) {
	if t == nil || len(t.list) == 0 {
		return nil, false
	}
	v := t.list[0]
	copy(t.list, t.list[1:])
	t.list = t.list[:len(t.list)-1]
	return v, true
}

// Unshift inserts the given values at the front of the sequence, preserving
// their relative order, and returns the new length. With zero values it is
// a no-op that reports the current length. nil values are ignored.
func (t *Table) Unshift(values ...any) int {
	if t == nil {
		panic("table: Unshift on nil table")
	}
	front := make([]any, 0, len(values))
	for _, v := range values {
		if v != nil {
			front = append(front, v)
		}
	}
	if len(front) == 0 {
		return t.Len()
	}
	t.list = append(front, t.list...)
	t.promote()
	return t.Len()
}
