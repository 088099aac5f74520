package formitem

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/goliatone/go-propertyform/pkg/model"
)

// ControlKind tags the concrete control currently mounted by an Item. The
// string form matches the data-type attribute renderers emit.
type ControlKind string

const (
	ControlNone    ControlKind = ""
	ControlInput   ControlKind = "input"
	ControlBoolean ControlKind = "boolean"
	ControlEnum    ControlKind = "enum"
	ControlArray   ControlKind = "array"
)

// Control is a mounted input able to report its own validity.
type Control interface {
	Kind() ControlKind
	Validate() bool
}

// TextInput mirrors a native input element: it carries the bound value plus
// the constraint attributes used for validation. Array rows are TextInputs
// with Kind ControlArray and a non-negative Index.
type TextInput struct {
	ControlKind    ControlKind
	Name           string
	Label          string
	Placeholder    string
	Value          string
	InputType      string
	Pattern        string
	MinLength      *int
	MaxLength      *int
	Minimum        *float64
	Maximum        *float64
	Required       bool
	Disabled       bool
	ReadOnly       bool
	NoLabelFloat   bool
	Outlined       bool
	Compatibility  bool
	InfoMessage    string
	InvalidMessage string
	Index          int
	EntryID        uuid.UUID
	Removable      bool
	Invalid        bool

	pattern *regexp.Regexp
}

// Kind implements Control.
func (in *TextInput) Kind() ControlKind {
	if in.ControlKind == "" {
		return ControlInput
	}
	return in.ControlKind
}

// Validate runs constraint validation and records the outcome in Invalid.
func (in *TextInput) Validate() bool {
	in.Invalid = in.check() != nil
	return !in.Invalid
}

// Check returns the first constraint the current value violates, or nil.
func (in *TextInput) Check() error {
	return in.check()
}

func (in *TextInput) check() error {
	if in.Disabled || in.ReadOnly {
		return nil
	}
	if in.Value == "" {
		if in.Required {
			return fmt.Errorf("value is required")
		}
		return nil
	}
	if isNumericType(in.InputType) {
		return in.checkNumber()
	}
	length := utf8.RuneCountInString(in.Value)
	if in.MinLength != nil && length < *in.MinLength {
		return fmt.Errorf("min length %d", *in.MinLength)
	}
	if in.MaxLength != nil && *in.MaxLength >= 0 && length > *in.MaxLength {
		return fmt.Errorf("max length %d", *in.MaxLength)
	}
	if re := in.compiledPattern(); re != nil && !re.MatchString(in.Value) {
		return fmt.Errorf("does not match pattern %s", in.Pattern)
	}
	return nil
}

func (in *TextInput) checkNumber() error {
	raw := strings.TrimSpace(in.Value)
	var number float64
	if in.InputType == "integer" {
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("expected integer")
		}
		number = float64(i)
	} else {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("expected number")
		}
		number = f
	}
	if in.Minimum != nil && number < *in.Minimum {
		return fmt.Errorf("min %v", *in.Minimum)
	}
	if in.Maximum != nil && number > *in.Maximum {
		return fmt.Errorf("max %v", *in.Maximum)
	}
	return nil
}

// compiledPattern anchors the pattern the way the HTML pattern attribute does.
// Expressions that fail to compile are ignored.
func (in *TextInput) compiledPattern() *regexp.Regexp {
	if in.Pattern == "" {
		return nil
	}
	if in.pattern == nil {
		re, err := regexp.Compile("^(?:" + in.Pattern + ")$")
		if err != nil {
			return nil
		}
		in.pattern = re
	}
	return in.pattern
}

func isNumericType(inputType string) bool {
	return inputType == "number" || inputType == "integer"
}

// DropdownOption is one selectable dropdown entry.
type DropdownOption struct {
	Value string
	Label string
}

// Dropdown mirrors a dropdown menu bound to a list of options. Boolean
// dropdowns always offer "true" and "false".
type Dropdown struct {
	ControlKind   ControlKind
	Name          string
	Label         string
	Options       []DropdownOption
	Selected      string
	Required      bool
	Disabled      bool
	Outlined      bool
	Compatibility bool
	Invalid       bool
}

// Kind implements Control.
func (d *Dropdown) Kind() ControlKind {
	return d.ControlKind
}

// Validate reports whether a required dropdown has one of its options
// selected. Disabled dropdowns are always valid.
func (d *Dropdown) Validate() bool {
	d.Invalid = !d.valid()
	return !d.Invalid
}

func (d *Dropdown) valid() bool {
	if d.Disabled || !d.Required {
		return true
	}
	if d.Selected == "" {
		return false
	}
	return slices.ContainsFunc(d.Options, func(opt DropdownOption) bool {
		return opt.Value == d.Selected
	})
}

// Mounted is the explicit reference to whatever control set an Item currently
// shows. It is rebuilt on every mode, value or property transition.
type Mounted struct {
	Kind     ControlKind
	Input    *TextInput
	Dropdown *Dropdown
	Rows     []*TextInput
}

// Controls flattens the mounted set into a slice of Control.
func (m Mounted) Controls() []Control {
	switch {
	case m.Input != nil:
		return []Control{m.Input}
	case m.Dropdown != nil:
		return []Control{m.Dropdown}
	case m.Kind == ControlArray:
		out := make([]Control, 0, len(m.Rows))
		for _, row := range m.Rows {
			out = append(out, row)
		}
		return out
	default:
		return nil
	}
}

func booleanOptions() []DropdownOption {
	return []DropdownOption{
		{Value: "true", Label: "True"},
		{Value: "false", Label: "False"},
	}
}

func enumOptions(values []string) []DropdownOption {
	out := make([]DropdownOption, 0, len(values))
	for _, value := range values {
		out = append(out, DropdownOption{Value: value, Label: value})
	}
	return out
}

// booleanSelection binds a value to the boolean dropdown selection.
func booleanSelection(v model.Value) string {
	if v.Bool() {
		return "true"
	}
	return "false"
}
