package formitem

import (
	"github.com/google/uuid"

	"github.com/goliatone/go-propertyform/pkg/model"
)

// Props are the plain flags passed through to the mounted controls.
type Props struct {
	Name          string
	Required      bool
	ReadOnly      bool
	Disabled      bool
	NoLabelFloat  bool
	Outlined      bool
	Compatibility bool
}

// ValidityFunc decides validity when no control is mounted.
type ValidityFunc func(vm *model.ViewModel, value model.Value) bool

// Option configures an Item at construction time.
type Option func(*Item)

// WithProps sets every property flag at once.
func WithProps(props Props) Option {
	return func(it *Item) {
		it.props = props
	}
}

// WithName sets the form item name.
func WithName(name string) Option {
	return func(it *Item) {
		it.props.Name = name
	}
}

// WithReadOnly renders the controls read only.
func WithReadOnly(readOnly bool) Option {
	return func(it *Item) {
		it.props.ReadOnly = readOnly
	}
}

// WithDisabled renders the controls disabled.
func WithDisabled(disabled bool) Option {
	return func(it *Item) {
		it.props.Disabled = disabled
	}
}

// WithOutlined enables the outlined theme flag.
func WithOutlined(outlined bool) Option {
	return func(it *Item) {
		it.props.Outlined = outlined
	}
}

// WithCompatibility enables the compatibility (legacy) flag.
func WithCompatibility(compatibility bool) Option {
	return func(it *Item) {
		it.props.Compatibility = compatibility
	}
}

// WithFallbackValidator replaces DefaultValidity.
func WithFallbackValidator(fn ValidityFunc) Option {
	return func(it *Item) {
		if fn != nil {
			it.fallback = fn
		}
	}
}

// WithIDGenerator overrides how array entry handles are minted. Tests use it
// to keep snapshots deterministic.
func WithIDGenerator(fn func() uuid.UUID) Option {
	return func(it *Item) {
		if fn != nil {
			it.newID = fn
		}
	}
}

// DefaultValidity is the fallback used when no control is mounted: the item
// is valid unless the model is required and its value is empty.
func DefaultValidity(vm *model.ViewModel, _ model.Value) bool {
	if vm == nil || !vm.Required {
		return true
	}
	return !vm.Value.IsEmpty()
}
