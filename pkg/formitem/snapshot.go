package formitem

import "github.com/goliatone/go-propertyform/pkg/model"

// Snapshot is an immutable copy of the item state renderers work from.
type Snapshot struct {
	Mode          Mode
	Nillable      bool
	NilEnabled    bool
	HasModel      bool
	Required      bool
	Value         model.Value
	Schema        model.Schema
	Props         Props
	ItemLabel     string
	Entries       []Entry
	EntryWarnings []string
	ValueWarning  string
	Invalid       bool

	// Held is the value stored while nil is enabled. HasHeld is false when
	// nothing was stored.
	Held    model.Value
	HasHeld bool

	Control  ControlKind
	Input    *TextInput
	Dropdown *Dropdown
	Rows     []TextInput

	// ActionsDisabled disables the add/remove row actions and the nil toggle.
	ActionsDisabled bool
}

// Snapshot captures the current state. Mounted controls are copied so later
// edits on the item do not leak into an in-flight render.
func (it *Item) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:            it.mode,
		Nillable:        it.nillable,
		NilEnabled:      it.nilEnabled,
		HasModel:        it.model != nil,
		Value:           it.value,
		Props:           it.props,
		ItemLabel:       it.itemLabel(),
		Entries:         it.Entries(),
		EntryWarnings:   it.EntryWarnings(),
		ValueWarning:    it.valueWarning,
		Invalid:         it.invalid,
		Control:         it.mounted.Kind,
		ActionsDisabled: it.props.ReadOnly || it.props.Disabled,
	}
	if it.held != nil {
		snap.Held = *it.held
		snap.HasHeld = true
	}
	if it.model != nil {
		snap.Required = it.model.Required
		snap.Schema = it.model.Clone().Schema
	}
	if it.mounted.Input != nil {
		input := *it.mounted.Input
		snap.Input = &input
	}
	if it.mounted.Dropdown != nil {
		dropdown := *it.mounted.Dropdown
		dropdown.Options = append([]DropdownOption(nil), it.mounted.Dropdown.Options...)
		snap.Dropdown = &dropdown
	}
	if len(it.mounted.Rows) > 0 {
		snap.Rows = make([]TextInput, 0, len(it.mounted.Rows))
		for _, row := range it.mounted.Rows {
			snap.Rows = append(snap.Rows, *row)
		}
	}
	return snap
}
