// Package tomltree exposes parsed TOML as a kind-tagged value tree.
//
// The record codec queries this tree by key and kind only; the parsing
// engine behind it never leaks into caller code.
package tomltree

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Kind identifies the node type of a Value.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindInteger
	KindFloat
	KindBool
	KindArray
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindArray:
		return "array"
	case KindTable:
		return "table"
	default:
		return "invalid"
	}
}

// Value is one node of a parsed document: a scalar, an array, or a table.
// The zero Value has KindInvalid.
type Value struct {
	raw any
}

// Parse parses TOML source text into its root table value.
func Parse(text string) (Value, error) {
	var root map[string]any
	if err := toml.Unmarshal([]byte(text), &root); err != nil {
		return Value{}, fmt.Errorf("tomltree: parse: %w", err)
	}
	return Value{raw: root}, nil
}

// Kind reports the node type of v.
func (v Value) Kind() Kind {
	switch v.raw.(type) {
	case string:
		return KindString
	case int64:
		return KindInteger
	case float64:
		return KindFloat
	case bool:
		return KindBool
	case []any:
		return KindArray
	case map[string]any:
		return KindTable
	default:
		return KindInvalid
	}
}

// AsString returns the string payload when v is a string node.
func (v Value) AsString() (string, bool) {
	s, ok := v.raw.(string)
	return s, ok
}

// AsInteger returns the integer payload when v is an integer node.
func (v Value) AsInteger() (int64, bool) {
	i, ok := v.raw.(int64)
	return i, ok
}

// AsArray returns the element values when v is an array node.
func (v Value) AsArray() ([]Value, bool) {
	raw, ok := v.raw.([]any)
	if !ok {
		return nil, false
	}
	elems := make([]Value, len(raw))
	for i, e := range raw {
		elems[i] = Value{raw: e}
	}
	return elems, true
}

// IsTable reports whether v is a table node.
func (v Value) IsTable() bool {
	_, ok := v.raw.(map[string]any)
	return ok
}

// Get looks up key in a table node. The second result is false when the
// key is absent or v is not a table.
func (v Value) Get(key string) (Value, bool) {
	tbl, ok := v.raw.(map[string]any)
	if !ok {
		return Value{}, false
	}
	raw, ok := tbl[key]
	if !ok {
		return Value{}, false
	}
	return Value{raw: raw}, true
}
