package i18n

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Node is one element of a translation tree: a Leaf or a Branch.
type Node interface {
	isNode()
}

// Leaf is a translated string, possibly containing {name} placeholders.
type Leaf string

// Branch maps key segments to child nodes.
type Branch map[string]Node

func (Leaf) isNode()   {}
func (Branch) isNode() {}

// ParseTree decodes a JSON translation resource. The document must be an
// object whose values are strings or nested objects; anything else is rejected.
func ParseTree(data []byte) (Branch, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("root must be an object, got %s", kindOf(raw))
	}
	return parseBranch(obj, "")
}

func parseBranch(obj map[string]any, prefix string) (Branch, error) {
	b := make(Branch, len(obj))
	for k, v := range obj {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			b[k] = Leaf(val)
		case map[string]any:
			child, err := parseBranch(val, path)
			if err != nil {
				return nil, err
			}
			b[k] = child
		default:
			return nil, fmt.Errorf("%s: expected string or object, got %s", path, kindOf(v))
		}
	}
	return b, nil
}

// ParseDescriptions decodes a namespace -> token -> description document.
func ParseDescriptions(data []byte) (map[string]map[string]string, error) {
	var out map[string]map[string]string
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode descriptions: %w", err)
	}
	return out, nil
}

// Lookup walks the tree along a dotted path and returns the leaf it ends on.
// A path that stops on a branch is a miss.
func (b Branch) Lookup(path string) (string, bool) {
	if b == nil || path == "" {
		return "", false
	}
	var node Node = b
	for _, seg := range strings.Split(path, ".") {
		br, ok := node.(Branch)
		if !ok {
			return "", false
		}
		node, ok = br[seg]
		if !ok {
			return "", false
		}
	}
	leaf, ok := node.(Leaf)
	return string(leaf), ok
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case []any:
		return "array"
	case string:
		return "string"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
