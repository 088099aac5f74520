package formitem

// Validate reports whether the item currently holds an acceptable value and
// records the result for Invalid. A checked nil option is always valid. Array
// items are valid when every row is (so an empty list is valid). When no
// control is mounted the fallback validator decides.
func (it *Item) Validate() bool {
	valid := it.validity()
	it.invalid = !valid
	return valid
}

// Invalid reports the outcome of the last Validate call.
func (it *Item) Invalid() bool {
	return it.invalid
}

func (it *Item) validity() bool {
	if it.nilEnabled {
		return true
	}
	return it.inputsValidity()
}

func (it *Item) inputsValidity() bool {
	if it.mounted.Kind == ControlNone {
		return it.fallback(it.model, it.value)
	}
	valid := true
	for _, control := range it.mounted.Controls() {
		if !control.Validate() {
			valid = false
		}
	}
	return valid
}
