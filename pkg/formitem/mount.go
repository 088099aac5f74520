package formitem

import "fmt"

// mount rebuilds the control reference for the current mode, value and
// properties. Nothing is mounted until a model is set.
func (it *Item) mount() {
	if it.model == nil {
		it.mounted = Mounted{}
		return
	}
	switch it.mode {
	case ModeEnum:
		it.mounted = Mounted{Kind: ControlEnum, Dropdown: it.enumDropdown()}
	case ModeBoolean:
		it.mounted = Mounted{Kind: ControlBoolean, Dropdown: it.booleanDropdown()}
	case ModeArray:
		it.mounted = Mounted{Kind: ControlArray, Rows: it.arrayRows()}
	default:
		it.mounted = Mounted{Kind: ControlInput, Input: it.textInput()}
	}
}

func (it *Item) enumDropdown() *Dropdown {
	schema := it.model.Schema
	return &Dropdown{
		ControlKind:   ControlEnum,
		Name:          it.props.Name,
		Label:         schema.InputLabel,
		Options:       enumOptions(schema.Enum),
		Selected:      it.value.String(),
		Required:      !it.nilEnabled && it.model.Required,
		Disabled:      it.props.ReadOnly || it.props.Disabled || it.nilEnabled,
		Outlined:      it.props.Outlined,
		Compatibility: it.props.Compatibility,
	}
}

func (it *Item) booleanDropdown() *Dropdown {
	return &Dropdown{
		ControlKind:   ControlBoolean,
		Name:          it.props.Name,
		Label:         it.model.Schema.InputLabel,
		Options:       booleanOptions(),
		Selected:      booleanSelection(it.value),
		Required:      !it.nilEnabled && it.model.Required,
		Disabled:      it.props.ReadOnly || it.props.Disabled || it.nilEnabled,
		Outlined:      it.props.Outlined,
		Compatibility: it.props.Compatibility,
	}
}

func (it *Item) textInput() *TextInput {
	input := it.baseInput()
	input.ControlKind = ControlInput
	input.Label = it.model.Schema.InputLabel
	input.Placeholder = it.model.Schema.InputPlaceholder
	input.Value = it.value.String()
	input.NoLabelFloat = it.props.NoLabelFloat
	input.InfoMessage = it.valueWarning
	input.Index = -1
	return input
}

func (it *Item) arrayRows() []*TextInput {
	rows := make([]*TextInput, 0, len(it.entries))
	label := it.itemLabel()
	for idx, entry := range it.entries {
		row := it.baseInput()
		row.ControlKind = ControlArray
		row.Label = label
		row.Value = entry.Value
		row.NoLabelFloat = true
		row.Index = idx
		row.EntryID = entry.ID
		row.Removable = idx > 0
		if idx < len(it.entryWarnings) {
			row.InfoMessage = it.entryWarnings[idx]
		}
		rows = append(rows, row)
	}
	return rows
}

func (it *Item) baseInput() *TextInput {
	schema := it.model.Schema
	return &TextInput{
		Name:           it.props.Name,
		InputType:      schema.InputType,
		Pattern:        schema.Pattern,
		MinLength:      schema.MinLength,
		MaxLength:      schema.MaxLength,
		Minimum:        schema.Minimum,
		Maximum:        schema.Maximum,
		Required:       !it.nilEnabled && IsRequired(schema),
		Disabled:       it.props.Disabled || it.nilEnabled,
		ReadOnly:       it.props.ReadOnly,
		Outlined:       it.props.Outlined,
		Compatibility:  it.props.Compatibility,
		InvalidMessage: fmt.Sprintf("%s is invalid. Check documentation.", it.props.Name),
	}
}

func (it *Item) itemLabel() string {
	if it.model != nil && it.model.Schema.InputLabel != "" {
		return it.model.Schema.InputLabel
	}
	return DefaultItemLabel
}
