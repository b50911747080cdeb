package table

// ─────────────────────────────────────────────────────────────────────────────
// Copying & reconciling
//
// Only *Table values count as containers here. Native Go maps and slices
// stored as elements are opaque scalars: Copy and DeepCopy alias them, and
// Reconcile never descends into them. Convert with [FromNative] first when
// deep semantics are wanted.
// ─────────────────────────────────────────────────────────────────────────────

// Copy returns a shallow copy: a fresh top-level table holding the same
// key/value pairs. Nested tables are shared with the original, so callers
// that intend to mutate them must copy-on-write. Copy of a nil table is nil.
func (t *Table) Copy() *Table {
	if t == nil {
		return nil
	}
	out := &Table{}
	if t.list != nil {
		out.list = make([]any, len(t.list))
		copy(out.list, t.list)
	}
	if t.hash != nil {
		out.hash = make(map[any]any, len(t.hash))
		for k, v := range t.hash {
			out.hash[k] = v
		}
	}
	return out
}

// DeepCopy returns a copy in which every nested *Table has been replaced by
// its own deep copy; the result shares no table identity with the original.
// Non-table elements are copied by assignment. Cyclic tables are not
// detected — DeepCopy recurses forever on them.
func (t *Table) DeepCopy() *Table {
	if t == nil {
		return nil
	}
	out := t.Copy()
	for i, v := range out.list {
		if sub, ok := v.(*Table); ok && sub != nil {
			out.list[i] = sub.DeepCopy()
		}
	}
	for k, v := range out.hash {
		if sub, ok := v.(*Table); ok && sub != nil {
			out.hash[k] = sub.DeepCopy()
		}
	}
	return out
}

// Reconcile returns a merge of t with defaults: a structural
// "fill in the gaps" where t's explicit values always win over scalar
// defaults and table-shaped defaults recursively fill whatever t's matching
// subtree is missing.
//
// Starting from a shallow copy of t, for each key of defaults:
//
//   - t lacks the key: the default is installed (deep-copied if it is a
//     table, by value otherwise);
//   - t has the key and the default is a table: if t's value is a table too,
//     the two are reconciled recursively; if t's value is a scalar, the
//     default wins and a deep copy of it replaces the scalar;
//   - t has the key and the default is a scalar: t's value stands.
//
// Subtrees of t untouched by defaults remain aliased to t; treat them as
// shared. Neither argument is mutated. Both must be non-nil tables
// ([ErrNilTable] otherwise). Cyclic inputs are not detected.
//
//	merged, err := cfg.Reconcile(defaults) // cfg's settings win, gaps filled
func (t *Table) Reconcile(defaults *Table) (*Table, error) {
	if t == nil || defaults == nil {
		return nil, ErrNilTable
	}
	out := t.Copy()
	defaults.Each(func(k, dv any) bool {
		sub, isTable := dv.(*Table)
		isTable = isTable && sub != nil

		existing := out.Get(k)
		switch {
		case existing == nil:
			if isTable {
				out.Set(k, sub.DeepCopy())
			} else {
				out.Set(k, dv)
			}
		case isTable:
			if et, ok := existing.(*Table); ok && et != nil {
				merged, _ := et.Reconcile(sub) // both sides non-nil, cannot fail
				out.Set(k, merged)
			} else {
				out.Set(k, sub.DeepCopy())
			}
		}
		return true
	})
	return out, nil
}
