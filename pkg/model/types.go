package model

// Schema describes the property type and constraints that drive the form
// item. Every field is optional; absence means "not applicable". Optional
// numeric constraints are pointers so an explicit zero stays distinguishable
// from an unset bound.
type Schema struct {
	IsEnum     bool `json:"isEnum,omitempty" yaml:"isEnum,omitempty"`
	IsArray    bool `json:"isArray,omitempty" yaml:"isArray,omitempty"`
	IsBool     bool `json:"isBool,omitempty" yaml:"isBool,omitempty"`
	IsNillable bool `json:"isNillable,omitempty" yaml:"isNillable,omitempty"`
	// Required is the requiredness declared by the API schema. The form item
	// relaxes it for unconstrained text inputs, see formitem.IsRequired.
	Required         bool     `json:"required,omitempty" yaml:"required,omitempty"`
	InputType        string   `json:"inputType,omitempty" yaml:"inputType,omitempty"`
	Pattern          string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	MinLength        *int     `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength        *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Minimum          *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	InputLabel       string   `json:"inputLabel,omitempty" yaml:"inputLabel,omitempty"`
	InputPlaceholder string   `json:"inputPlaceholder,omitempty" yaml:"inputPlaceholder,omitempty"`
	Enum             []string `json:"enum,omitempty" yaml:"enum,omitempty"`
}

// ViewModel is the caller-supplied descriptor of a single API property.
// Callers replace the whole value (by pointer) instead of mutating it in
// place; the form item recomputes its state on every replacement.
type ViewModel struct {
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty"`
	Value    Value  `json:"value" yaml:"value"`
	Schema   Schema `json:"schema" yaml:"schema"`
}

// MinLengthValue returns the minLength constraint or 0 when unset.
func (s Schema) MinLengthValue() int {
	if s.MinLength == nil {
		return 0
	}
	return *s.MinLength
}

// Clone returns a deep copy of the view model so decorators can derive a new
// snapshot without touching the caller's instance.
func (vm *ViewModel) Clone() *ViewModel {
	if vm == nil {
		return nil
	}
	out := *vm
	out.Schema.Enum = append([]string(nil), vm.Schema.Enum...)
	out.Schema.MinLength = cloneInt(vm.Schema.MinLength)
	out.Schema.MaxLength = cloneInt(vm.Schema.MaxLength)
	out.Schema.Minimum = cloneFloat(vm.Schema.Minimum)
	out.Schema.Maximum = cloneFloat(vm.Schema.Maximum)
	return &out
}

// IntPtr is a helper for building schemas in code.
func IntPtr(v int) *int {
	return &v
}

// FloatPtr is a helper for building schemas in code.
func FloatPtr(v float64) *float64 {
	return &v
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
