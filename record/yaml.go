package record

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dataprovider/cell"
)

// YAML core-schema tags mapped onto cell kinds.
const (
	tagStr       = "!!str"
	tagBool      = "!!bool"
	tagInt       = "!!int"
	tagFloat     = "!!float"
	tagTimestamp = "!!timestamp"
	tagNull      = "!!null"
)

// Parse decodes a YAML mapping into a Record, keeping key order.
// Empty input yields an empty Record.
func Parse(data []byte) (*Record, error) {
	r := New(0)
	if err := yaml.Unmarshal(data, r); err != nil {
		return nil, err
	}

	return r, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
//
// Scalars map by tag: !!str → Text, !!bool → Bool, !!int → Int64,
// !!float → Float64, !!timestamp → Time. Nulls, sequences, nested
// mappings and custom tags become Object values holding the generic
// yaml.v3 decoding (nil, []any, map[string]any, ...).
func (r *Record) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		n = n.Content[0]
	}
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %w", n.Line, ErrNotMapping)
	}

	out := New(len(n.Content) / 2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		kn, vn := n.Content[i], n.Content[i+1]
		if kn.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: %w", kn.Line, ErrBadKey)
		}
		if _, dup := out.index[kn.Value]; dup {
			return fmt.Errorf("line %d: key %q: %w", kn.Line, kn.Value, ErrDuplicateKey)
		}
		v, err := decodeValue(vn)
		if err != nil {
			return fmt.Errorf("key %q: %w", kn.Value, err)
		}
		out.Set(kn.Value, v)
	}
	*r = *out

	return nil
}

// decodeValue maps one YAML node onto a cell.Value.
func decodeValue(n *yaml.Node) (cell.Value, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		return decodeObject(n)
	}

	switch n.ShortTag() {
	case tagStr:
		return cell.NewText(n.Value), nil
	case tagBool:
		var b bool
		if err := n.Decode(&b); err != nil {
			return cell.Value{}, err
		}
		return cell.NewBool(b), nil
	case tagInt:
		var i int64
		if err := n.Decode(&i); err != nil {
			return cell.Value{}, err
		}
		return cell.NewInt64(i), nil
	case tagFloat:
		var f float64
		if err := n.Decode(&f); err != nil {
			return cell.Value{}, err
		}
		return cell.NewFloat64(f), nil
	case tagTimestamp:
		var t time.Time
		if err := n.Decode(&t); err != nil {
			return cell.Value{}, err
		}
		return cell.NewTime(t), nil
	case tagNull:
		return cell.NewObject(nil), nil
	default:
		return decodeObject(n)
	}
}

// decodeObject wraps yaml.v3's generic decoding of n.
func decodeObject(n *yaml.Node) (cell.Value, error) {
	var v any
	if err := n.Decode(&v); err != nil {
		return cell.Value{}, err
	}

	return cell.NewObject(v), nil
}

// MarshalYAML implements yaml.Marshaler, emitting keys in record order.
// Integer widths collapse to !!int and float32 to !!float, so a round trip
// through YAML yields Int64 and Float64 kinds.
func (r *Record) MarshalYAML() (any, error) {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i, k := range r.keys {
		kn := &yaml.Node{Kind: yaml.ScalarNode, Tag: tagStr, Value: k}
		vn := &yaml.Node{}
		if err := vn.Encode(r.vals[i].Interface()); err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		m.Content = append(m.Content, kn, vn)
	}

	return m, nil
}
