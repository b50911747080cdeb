package table

import (
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers for nested tables
//
// These methods read, write and test values in deeply nested tables using
// dot-separated key paths. A path segment that parses as a base-10 integer
// addresses the integer key, so sequence positions and string keys mix
// freely in one path.
//
// Example:
//
//	t, _ := table.FromNative(map[string]any{
//	    "servers": []any{
//	        map[string]any{"host": "db1", "port": 5432},
//	    },
//	})
//
//	t.GetPath("servers.1.host")   → "db1"
//	t.SetPath("servers.1.ro", true)
//	t.HasPath("servers.2")        → false
//	t.ForgetPath("servers.1.port")
// ─────────────────────────────────────────────────────────────────────────────

// pathKey maps one dot-path segment to a table key: integer form for
// numeric segments, the raw string otherwise.
func pathKey(seg string) any {
	if n, err := strconv.Atoi(seg); err == nil {
		return n
	}
	return seg
}

// GetPath retrieves a value using a dot-notation path. It returns def[0]
// (or nil) when the path does not resolve, either because a key is absent
// or because an intermediate value is not a table.
//
//	t.GetPath("user.address.city")        // "London"
//	t.GetPath("user.missing", "default")  // "default"
func (t *Table) GetPath(path string, def ...any) any {
	fallback := func() any {
		if len(def) > 0 {
			return def[0]
		}
		return nil
	}
	segments := strings.Split(path, ".")
	current := t
	for i, seg := range segments {
		val := current.Get(pathKey(seg))
		if val == nil {
			return fallback()
		}
		if i == len(segments)-1 {
			return val
		}
		nested, ok := val.(*Table)
		if !ok {
			return fallback()
		}
		current = nested
	}
	return fallback()
}

// SetPath writes value at the dot-notation path, creating intermediate
// tables as needed. A non-table value sitting on the path is replaced by
// a fresh table. Setting nil removes the leaf, like [Table.Set].
//
//	t.SetPath("user.address.postcode", "EC1")
func (t *Table) SetPath(path string, value any) {
	if t == nil {
		panic("table: SetPath on nil table")
	}
	seg, rest, deeper := strings.Cut(path, ".")
	if !deeper {
		t.Set(pathKey(seg), value)
		return
	}
	k := pathKey(seg)
	nested, ok := t.Get(k).(*Table)
	if !ok || nested == nil {
		nested = New()
		t.Set(k, nested)
	}
	nested.SetPath(rest, value)
}

// HasPath reports whether the dot-notation path resolves to a value.
func (t *Table) HasPath(path string) bool {
	return t.hasSegments(strings.Split(path, "."))
}

func (t *Table) hasSegments(segments []string) bool {
	if len(segments) == 0 {
		return false
	}
	val := t.Get(pathKey(segments[0]))
	if val == nil {
		return false
	}
	if len(segments) == 1 {
		return true
	}
	nested, ok := val.(*Table)
	if !ok {
		return false
	}
	return nested.hasSegments(segments[1:])
}

// HasAllPaths reports whether every dot-notation path resolves.
func (t *Table) HasAllPaths(paths ...string) bool {
	for _, p := range paths {
		if !t.HasPath(p) {
			return false
		}
	}
	return true
}

// HasAnyPath reports whether at least one dot-notation path resolves.
func (t *Table) HasAnyPath(paths ...string) bool {
	for _, p := range paths {
		if t.HasPath(p) {
			return true
		}
	}
	return false
}

// ForgetPath removes the value at the dot-notation path. Intermediate
// tables are left in place even when they become empty. Missing paths are
// a no-op.
func (t *Table) ForgetPath(path string) {
	if t == nil {
		return
	}
	seg, rest, deeper := strings.Cut(path, ".")
	if !deeper {
		t.Delete(pathKey(seg))
		return
	}
	if nested, ok := t.Get(pathKey(seg)).(*Table); ok {
		nested.ForgetPath(rest)
	}
}

// Only returns a new table containing just the given top-level keys, in
// the order listed. Absent keys are skipped. The kept values are shared
// with the receiver, not copied.
func (t *Table) Only(keys ...any) *Table {
	out := New()
	for _, k := range keys {
		if v := t.Get(k); v != nil {
			out.Set(k, v)
		}
	}
	return out
}

// Except returns a shallow copy of the table without the given top-level
// keys.
func (t *Table) Except(keys ...any) *Table {
	drop := make(map[any]struct{}, len(keys))
	for _, k := range keys {
		drop[normKey(k)] = struct{}{}
	}
	out := New()
	t.Each(func(k, v any) bool {
		if _, skip := drop[k]; !skip {
			out.Set(k, v)
		}
		return true
	})
	return out
}

// Dot flattens nested tables into a single-level table whose keys are
// dot-notation paths. Integer keys render in decimal, so flattening is
// lossy for tables that mix the key 1 with the key "1"; [Table.Undot]
// parses numeric segments back to integer keys.
//
//	t, _ := FromNative(map[string]any{"a": map[string]any{"b": 1}})
//	t.Dot()  // → {"a.b": 1}
func (t *Table) Dot() *Table {
	out := New()
	t.dotFlatten("", out)
	return out
}

func (t *Table) dotFlatten(prefix string, out *Table) {
	t.Each(func(k, v any) bool {
		key := keyString(k)
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := v.(*Table); ok && nested != nil && nested.Size() > 0 {
			nested.dotFlatten(key, out)
		} else {
			out.Set(key, v)
		}
		return true
	})
}

// Undot expands a flat dot-notation table back into a nested one.
//
//	flat := New()
//	flat.Set("a.b", 1)
//	flat.Set("a.c", 2)
//	flat.Undot()  // → {"a": {"b": 1, "c": 2}}
func (t *Table) Undot() *Table {
	out := New()
	t.Each(func(k, v any) bool {
		out.SetPath(keyString(k), v)
		return true
	})
	return out
}
