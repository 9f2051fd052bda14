// Package record provides Record, an insertion-ordered string → cell.Value
// map used as a named-column data source, with a YAML codec that keeps the
// document's key order.
//
// Keys are unique; Set on an existing key replaces the value in place and
// keeps its position. Parse and Record.UnmarshalYAML reject documents that
// are not a mapping, repeat a key, or use a non-scalar key.
package record
