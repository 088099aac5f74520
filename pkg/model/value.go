package model

import (
	"fmt"
	"slices"
	"strconv"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// NilSentinel is the literal value a nillable property carries while its nil
// option is enabled.
const NilSentinel = "nil"

// ValueKind tags the active member of a Value.
type ValueKind int

const (
	KindString ValueKind = iota
	KindBool
	KindList
	KindNil
)

func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindNil:
		return "nil"
	default:
		return "string"
	}
}

// Value is the externally observable property value: a string, a boolean, an
// ordered list of strings, or the nil sentinel. The zero Value is the empty
// string.
type Value struct {
	kind ValueKind
	str  string
	b    bool
	list []string
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// List returns a list value holding a copy of items. A nil slice produces an
// empty list.
func List(items ...string) Value {
	out := make([]string, len(items))
	copy(out, items)
	return Value{kind: KindList, list: out}
}

// Nil returns the nil sentinel value.
func Nil() Value {
	return Value{kind: KindNil}
}

// Kind reports the active member.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsNil reports whether v is the nil sentinel.
func (v Value) IsNil() bool {
	return v.kind == KindNil
}

// Str returns the string member, or "" when v is not a string.
func (v Value) Str() string {
	if v.kind != KindString {
		return ""
	}
	return v.str
}

// Bool returns the boolean member. The string "true" also reads as true so
// values coming from list selections bind consistently.
func (v Value) Bool() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		return v.str == "true"
	default:
		return false
	}
}

// List returns a copy of the list member. Non-list values return nil.
func (v Value) List() []string {
	if v.kind != KindList {
		return nil
	}
	out := make([]string, len(v.list))
	copy(out, v.list)
	return out
}

// Len returns the number of list items, or 0 for non-list values.
func (v Value) Len() int {
	if v.kind != KindList {
		return 0
	}
	return len(v.list)
}

// IsEmpty reports whether the value counts as "not provided": the empty
// string, false, or an empty list. The nil sentinel is a deliberate value and
// is never empty.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindString:
		return v.str == ""
	case KindBool:
		return !v.b
	case KindList:
		return len(v.list) == 0
	default:
		return false
	}
}

// Equal reports whether both values hold the same member and content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindBool:
		return v.b == other.b
	case KindList:
		return slices.Equal(v.list, other.list)
	default:
		return true
	}
}

// String renders the value for display. Lists are joined with ", ".
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindList:
		out := ""
		for i, item := range v.list {
			if i > 0 {
				out += ", "
			}
			out += item
		}
		return out
	case KindNil:
		return NilSentinel
	default:
		return v.str
	}
}

// Normalize maps the "undefined" spelling of a missing value onto the empty
// string.
func Normalize(v Value) Value {
	if v.kind == KindString && v.str == "undefined" {
		return String("")
	}
	return v
}

// FromAny converts a decoded document value into a Value. Numbers become
// their decimal representation, arrays of scalars become string lists and the
// string "nil" becomes the sentinel.
func FromAny(raw any) (Value, error) {
	switch typed := raw.(type) {
	case nil:
		return String(""), nil
	case Value:
		return Normalize(typed), nil
	case string:
		if typed == NilSentinel {
			return Nil(), nil
		}
		return Normalize(String(typed)), nil
	case bool:
		return Bool(typed), nil
	case []string:
		return List(typed...), nil
	case []any:
		items := make([]string, 0, len(typed))
		for idx, item := range typed {
			str, err := scalarString(item)
			if err != nil {
				return Value{}, fmt.Errorf("model: value item %d: %w", idx, err)
			}
			items = append(items, str)
		}
		return List(items...), nil
	default:
		str, err := scalarString(typed)
		if err != nil {
			return Value{}, fmt.Errorf("model: value: %w", err)
		}
		return String(str), nil
	}
}

// Any returns the plain Go form of the value: string, bool or []string. The
// nil sentinel is returned as the string "nil".
func (v Value) Any() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindList:
		return v.List()
	case KindNil:
		return NilSentinel
	default:
		return v.str
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Any())
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("model: decode value: %w", err)
	}
	decoded, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("model: decode value: %w", err)
	}
	decoded, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

func scalarString(raw any) (string, error) {
	switch typed := raw.(type) {
	case nil:
		return "", nil
	case string:
		return typed, nil
	case bool:
		return strconv.FormatBool(typed), nil
	case int:
		return strconv.Itoa(typed), nil
	case int64:
		return strconv.FormatInt(typed, 10), nil
	case uint64:
		return strconv.FormatUint(typed, 10), nil
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), nil
	case json.Number:
		return typed.String(), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", raw)
	}
}
