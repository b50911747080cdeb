package table

import "gopkg.in/yaml.v3"

// ─────────────────────────────────────────────────────────────────────────────
// YAML codec
//
// The YAML side goes through the native bridge: tables marshal from their
// Native() projection and unmarshal via FromNative. The headline use case is
// configuration trees — parse a user file with FromYAML, then fill the gaps
// with Reconcile against built-in defaults.
// ─────────────────────────────────────────────────────────────────────────────

// FromYAML parses a YAML document into a table. Mappings become tables,
// sequences become sequence tables, null keys and null values are dropped.
// A scalar document fails with [ErrNotContainer].
func FromYAML(data []byte) (*Table, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return FromNative(raw)
}

// ToYAML serialises the table to YAML via its [Table.Native] projection.
func (t *Table) ToYAML() ([]byte, error) {
	return yaml.Marshal(t.Native())
}

// MarshalYAML implements [yaml.Marshaler].
func (t *Table) MarshalYAML() (any, error) {
	return t.Native(), nil
}

// UnmarshalYAML implements [yaml.Unmarshaler], replacing the receiver's
// contents with the decoded node.
func (t *Table) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := FromNative(raw)
	if err != nil {
		return err
	}
	*t = *parsed
	return nil
}
