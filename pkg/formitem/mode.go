package formitem

import "github.com/goliatone/go-propertyform/pkg/model"

// Mode identifies the concrete control family used to edit the property.
type Mode int

const (
	ModeText Mode = iota
	ModeBoolean
	ModeEnum
	ModeArray
)

func (m Mode) String() string {
	switch m {
	case ModeBoolean:
		return "boolean"
	case ModeEnum:
		return "enum"
	case ModeArray:
		return "array"
	default:
		return "text"
	}
}

// Classify picks the presentation mode for vm and reports whether the nil
// toggle should be offered. Schemas may set several flags at once, so the
// precedence is fixed: enum, then array, then boolean, then text. A nil model
// resolves to text without the nil toggle.
func Classify(vm *model.ViewModel) (Mode, bool) {
	if vm == nil {
		return ModeText, false
	}
	schema := vm.Schema
	mode := ModeText
	switch {
	case schema.IsEnum:
		mode = ModeEnum
	case schema.IsArray:
		mode = ModeArray
	case schema.IsBool:
		mode = ModeBoolean
	}
	return mode, schema.IsNillable
}
