// Package table implements a dynamic container in the style of scripting
// languages: one type that is simultaneously a 1-indexed sequence and a
// keyed map, with the array-style and map-style operations such a type
// needs.
//
// # The container
//
// A [Table] holds values of any type under keys of any comparable type.
// Positions 1..n with no gaps form the sequence part; everything else —
// string keys, sparse positions, floats, booleans — lives in the hash
// part. Integer keys of every Go kind collapse to one key, so t.Set(int8(2), v)
// and t.Get(2.0) address the same slot. nil is never stored: setting a
// key to nil deletes it, which keeps "absent" and "nil value" the same
// observable state throughout the API.
//
//	t := table.New("a", "b", "c")  // sequence 1→"a", 2→"b", 3→"c"
//	t.Set("env", "prod")           // now also map-like
//	t.Len()                        // → 3 (sequence part only)
//	t.Size()                       // → 4 (all pairs)
//
// # Array-style operations
//
// [Table.Map], [Table.Filter], [Table.Reduce], [Table.Slice],
// [Table.Reverse], [Table.Push], [Table.Pop], [Table.Shift] and
// [Table.Unshift] treat the table as a sequence. Operations that require
// an array-shaped table return [ErrNotArray] (wrapped in a [ShapeError]
// naming the offending shape) when string or fractional keys are present.
// [Table.Spread] projects a range of positions onto a []any, and [Concat]
// builds a sequence from mixed values and tables, flattening the latter.
//
// # Map-style operations
//
// [Table.Find] scans all pairs, [Table.Copy] and [Table.DeepCopy]
// duplicate the container, and [Table.Reconcile] fills missing keys from
// a defaults table, descending into nested tables. Dot-notation paths
// address nested values directly:
//
//	cfg.GetPath("servers.1.host")        // sequence position inside a path
//	cfg.SetPath("log.level", "debug")
//	cfg.HasPath("log.file")              // → false
//
// # Interop
//
// [FromNative] and [Table.Native] convert to and from Go maps, slices and
// arrays. [FromJSON], [Table.ToJSON], [FromYAML] and [Table.ToYAML] read
// and write the usual interchange formats, marshalling pure sequences as
// arrays and everything else as objects. [Equal] compares tables
// structurally and [Table.Fingerprint] digests them into a stable cache
// key.
package table
