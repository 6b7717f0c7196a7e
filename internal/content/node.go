// Package content implements the bilingual content tree: a tagged variant
// node type, dotted-path resolution, and the cache-and-mutation engine that
// keeps an in-memory document in sync with a remote content store.
package content

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Value is one node of a content tree. A node is exactly one of Scalar,
// Mapping, or Sequence.
type Value interface {
	node()
}

// Scalar holds a leaf value: string, float64, bool, or nil.
type Scalar struct {
	Val any
}

// Mapping is an object node keyed by field name.
type Mapping map[string]Value

// Sequence is an ordered list node. Elements that represent list items are
// Mappings carrying a stable "id" field.
type Sequence []Value

func (Scalar) node()   {}
func (Mapping) node()  {}
func (Sequence) node() {}

// Document is the full bilingual content tree keyed by language code.
type Document map[string]Mapping

// MarshalJSON renders the scalar as its raw JSON value.
func (s Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Val)
}

// FromAny converts a decoded JSON value into a content node.
func FromAny(v any) Value {
	switch typed := v.(type) {
	case map[string]any:
		m := make(Mapping, len(typed))
		for key, val := range typed {
			m[key] = FromAny(val)
		}
		return m
	case []any:
		seq := make(Sequence, len(typed))
		for i, val := range typed {
			seq[i] = FromAny(val)
		}
		return seq
	default:
		return Scalar{Val: typed}
	}
}

// UnmarshalJSON decodes a full bilingual document. The top level must be an
// object of language code to content tree.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	doc := make(Document, len(raw))
	for lang, tree := range raw {
		mapping, ok := FromAny(tree).(Mapping)
		if !ok {
			return fmt.Errorf("decode document: language %q is not an object", lang)
		}
		doc[lang] = mapping
	}
	*d = doc
	return nil
}

// Clone returns a structurally independent copy of the document.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	clone := make(Document, len(d))
	for lang, tree := range d {
		clone[lang] = CloneValue(tree).(Mapping)
	}
	return clone
}

// CloneValue deep-copies a content node. Scalars are immutable and returned
// as-is.
func CloneValue(v Value) Value {
	switch typed := v.(type) {
	case Mapping:
		m := make(Mapping, len(typed))
		for key, val := range typed {
			m[key] = CloneValue(val)
		}
		return m
	case Sequence:
		seq := make(Sequence, len(typed))
		for i, val := range typed {
			seq[i] = CloneValue(val)
		}
		return seq
	default:
		return typed
	}
}

// ItemID returns the synthetic id of a list item, normalized to a string.
// Numeric ids compare equal to their decimal rendering.
func ItemID(v Value) (string, bool) {
	m, ok := v.(Mapping)
	if !ok {
		return "", false
	}
	id, ok := m["id"]
	if !ok {
		return "", false
	}
	scalar, ok := id.(Scalar)
	if !ok {
		return "", false
	}
	return scalarString(scalar), true
}

func scalarString(s Scalar) string {
	switch val := s.Val.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Text renders a node as display text. Mappings and sequences render empty;
// callers address their fields individually.
func Text(v Value) string {
	scalar, ok := v.(Scalar)
	if !ok {
		return ""
	}
	return scalarString(scalar)
}
