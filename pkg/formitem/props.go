package formitem

// Props returns the current property flags.
func (it *Item) Props() Props {
	return it.props
}

// SetProps replaces every property flag.
func (it *Item) SetProps(props Props) {
	it.props = props
	it.mount()
}

func (it *Item) SetName(name string) {
	it.props.Name = name
	it.mount()
}

func (it *Item) SetRequired(required bool) {
	it.props.Required = required
	it.mount()
}

func (it *Item) SetReadOnly(readOnly bool) {
	it.props.ReadOnly = readOnly
	it.mount()
}

func (it *Item) SetDisabled(disabled bool) {
	it.props.Disabled = disabled
	it.mount()
}

func (it *Item) SetNoLabelFloat(noLabelFloat bool) {
	it.props.NoLabelFloat = noLabelFloat
	it.mount()
}

func (it *Item) SetOutlined(outlined bool) {
	it.props.Outlined = outlined
	it.mount()
}

func (it *Item) SetCompatibility(compatibility bool) {
	it.props.Compatibility = compatibility
	it.mount()
}

// SetLegacy is an alias of SetCompatibility.
func (it *Item) SetLegacy(legacy bool) {
	it.SetCompatibility(legacy)
}

// Legacy is an alias of Props().Compatibility.
func (it *Item) Legacy() bool {
	return it.props.Compatibility
}
