package table

import (
	"bytes"

	"github.com/goccy/go-json"
)

// ─────────────────────────────────────────────────────────────────────────────
// JSON codec
//
// A pure sequence (Size() == Len()) marshals as a JSON array; every other
// table marshals as an object whose keys are stringified in canonical order,
// so output is deterministic (an empty table is an empty array). JSON null
// elements decode to absence and disappear, matching the container's
// nil-is-absent rule.
// ─────────────────────────────────────────────────────────────────────────────

// FromJSON parses a JSON document into a table. Objects become string-keyed
// tables, arrays become sequences, numbers arrive as float64 and nulls are
// dropped. A document whose top level is not an object or array fails with
// [ErrNotContainer].
//
//	t, err := table.FromJSON([]byte(`{"retries": 3, "hosts": ["a", "b"]}`))
func FromJSON(data []byte) (*Table, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return FromNative(raw)
}

// ToJSON serialises the table to JSON. Equivalent to calling
// [json.Marshal] on the table.
func (t *Table) ToJSON() ([]byte, error) {
	return json.Marshal(t)
}

// MarshalJSON implements [json.Marshaler]. See the file comment for the
// array/object shape rule.
func (t *Table) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("null"), nil
	}
	if len(t.hash) == 0 {
		if len(t.list) == 0 {
			return []byte("[]"), nil
		}
		return json.Marshal(t.list)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range t.SortedKeys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(keyString(k))
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(t.Get(k))
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements [json.Unmarshaler], replacing the receiver's
// contents with the parsed document.
func (t *Table) UnmarshalJSON(data []byte) error {
	parsed, err := FromJSON(data)
	if err != nil {
		return err
	}
	*t = *parsed
	return nil
}
