package formitem

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-propertyform/pkg/model"
)

// DefaultItemLabel labels array rows when the schema has no input label.
const DefaultItemLabel = "Parameter value"

// Entry is one editable row of an array value. ID stays attached to the row
// while other rows are added or removed; positions do not.
type Entry struct {
	ID    uuid.UUID
	Value string
}

// Item is the form item for one API property.
type Item struct {
	model    *model.ViewModel
	value    model.Value
	mode     Mode
	nillable bool

	nilEnabled bool
	held       *model.Value

	entries       []Entry
	entryWarnings []string
	valueWarning  string

	// internalChange marks value writes derived from the entries so they do
	// not resynchronize the entries again.
	internalChange bool

	props    Props
	mounted  Mounted
	invalid  bool
	fallback ValidityFunc
	newID    func() uuid.UUID

	listeners      []subscription
	nextListenerID int
}

// New returns an item in text mode holding the empty string.
func New(options ...Option) *Item {
	it := &Item{
		value:    model.String(""),
		mode:     ModeText,
		fallback: DefaultValidity,
		newID:    uuid.New,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(it)
	}
	return it
}

// Model returns the current view model.
func (it *Item) Model() *model.ViewModel {
	return it.model
}

// Mode returns the active presentation mode.
func (it *Item) Mode() Mode {
	return it.mode
}

// Nillable reports whether the nil toggle is offered.
func (it *Item) Nillable() bool {
	return it.nillable
}

// NilEnabled reports whether the nil option is currently checked.
func (it *Item) NilEnabled() bool {
	return it.nilEnabled
}

// Value returns the external value.
func (it *Item) Value() model.Value {
	return it.value
}

// Entries returns a copy of the array rows. It is nil outside array mode.
func (it *Item) Entries() []Entry {
	if it.entries == nil {
		return nil
	}
	return append([]Entry(nil), it.entries...)
}

// ValueWarning returns the scalar info message, if any.
func (it *Item) ValueWarning() string {
	return it.valueWarning
}

// EntryWarnings returns the per-row info messages in array mode.
func (it *Item) EntryWarnings() []string {
	return append([]string(nil), it.entryWarnings...)
}

// Mounted returns the currently mounted controls.
func (it *Item) Mounted() Mounted {
	return it.mounted
}

// SetModel replaces the view model and recomputes every derived state. The
// same pointer is ignored; callers must replace rather than mutate.
func (it *Item) SetModel(vm *model.ViewModel) {
	if vm == it.model {
		return
	}
	it.model = vm
	it.resetStates()
	if vm != nil {
		it.mode, it.nillable = Classify(vm)
		if it.mode == ModeArray {
			it.prepareArray(vm)
		}
	}
	it.updateValueWarning()
	it.mount()
}

// Bind sets vm as the model and takes its value as the current value. Array
// items are seeded by SetModel alone. A nil sentinel on a nillable model
// enables the nil option.
func (it *Item) Bind(vm *model.ViewModel) {
	it.SetModel(vm)
	if vm == nil {
		return
	}
	switch {
	case vm.Value.IsNil() && it.nillable:
		it.SetNil(true)
	case it.mode != ModeArray:
		it.SetValue(vm.Value)
	}
}

func (it *Item) resetStates() {
	it.mode = ModeText
	it.nillable = false
	it.nilEnabled = false
	it.held = nil
	it.setArrayMode(false, model.Value{})
}

// prepareArray seeds the rows from the model value when it is a list and
// re-derives the external value from them.
func (it *Item) prepareArray(vm *model.ViewModel) {
	seed := model.List()
	if vm.Value.Kind() == model.KindList {
		seed = vm.Value
	}
	it.setArrayMode(true, seed)
	it.deriveValue()
}

// setArrayMode builds the rows from seed when active (a non-empty scalar
// yields a single row) and discards them otherwise.
func (it *Item) setArrayMode(active bool, seed model.Value) {
	if !active {
		it.entries = nil
		it.entryWarnings = nil
		return
	}
	it.entries = it.entriesFor(itemsForArray(seed))
	it.recomputeEntryWarnings()
}

func itemsForArray(v model.Value) []string {
	switch v.Kind() {
	case model.KindList:
		return v.List()
	default:
		if v.IsEmpty() {
			return nil
		}
		return []string{v.String()}
	}
}

// entriesFor wraps values into rows, reusing the handles of rows already at
// the same position.
func (it *Item) entriesFor(values []string) []Entry {
	out := make([]Entry, len(values))
	for idx, value := range values {
		id := uuid.Nil
		if idx < len(it.entries) {
			id = it.entries[idx].ID
		}
		if id == uuid.Nil {
			id = it.newID()
		}
		out[idx] = Entry{ID: id, Value: value}
	}
	return out
}

// SetValue stores v and notifies listeners. "undefined" is stored as the
// empty string and an equal value is ignored. In array mode the rows are
// rebuilt unless the write came from the rows themselves.
func (it *Item) SetValue(v model.Value) {
	v = model.Normalize(v)
	if v.Equal(it.value) {
		return
	}
	it.value = v
	if it.mode == ModeArray && !it.internalChange && !v.IsNil() {
		it.setArrayMode(true, v)
	}
	it.notifyValue()
	it.updateValueWarning()
	it.mount()
}

// deriveValue writes the ordered row values as the external value.
func (it *Item) deriveValue() {
	values := make([]string, len(it.entries))
	for idx, entry := range it.entries {
		values[idx] = entry.Value
	}
	it.internalChange = true
	it.SetValue(model.List(values...))
	it.internalChange = false
}

// AddEmptyArrayValue appends an empty row and returns its index. The index is
// positional and stops being meaningful once any row is removed. It returns -1
// outside array mode.
func (it *Item) AddEmptyArrayValue() int {
	if it.mode != ModeArray {
		return -1
	}
	it.entries = append(it.entries, Entry{ID: it.newID()})
	it.entryWarnings = append(it.entryWarnings, "")
	index := len(it.entries) - 1
	it.updateEntryWarning(index)
	it.deriveValue()
	it.mount()
	return index
}

// RemoveArrayValue removes the row at index. Out of range indexes are
// ignored.
func (it *Item) RemoveArrayValue(index int) {
	if index < 0 || index >= len(it.entries) {
		return
	}
	it.entries = append(it.entries[:index:index], it.entries[index+1:]...)
	if index < len(it.entryWarnings) {
		it.entryWarnings = append(it.entryWarnings[:index:index], it.entryWarnings[index+1:]...)
	}
	it.deriveValue()
	it.mount()
}

// RemoveArrayValueAt removes the row addressed by a textual index such as a
// data-index attribute. Non-numeric input is ignored.
func (it *Item) RemoveArrayValueAt(raw string) {
	index, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return
	}
	it.RemoveArrayValue(index)
}

// RemoveEntry removes the row carrying id, if present.
func (it *Item) RemoveEntry(id uuid.UUID) {
	it.RemoveArrayValue(it.entryIndex(id))
}

// UpdateEntry replaces the value of the row at index and re-derives the
// external value. Out of range indexes are ignored.
func (it *Item) UpdateEntry(index int, value string) {
	if index < 0 || index >= len(it.entries) {
		return
	}
	it.entries[index].Value = value
	it.updateEntryWarning(index)
	it.deriveValue()
	it.mount()
	it.notifyInput(ControlArray)
}

// UpdateEntryAt is UpdateEntry for textual indexes.
func (it *Item) UpdateEntryAt(raw string, value string) {
	index, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return
	}
	it.UpdateEntry(index, value)
}

func (it *Item) entryIndex(id uuid.UUID) int {
	for idx, entry := range it.entries {
		if entry.ID == id {
			return idx
		}
	}
	return -1
}

// Input applies a raw edit from the text input.
func (it *Item) Input(raw string) {
	it.SetValue(model.String(raw))
	it.notifyInput(ControlInput)
}

// Change applies a committed edit from the text input. Only number inputs
// react; their stepper controls may not produce input events.
func (it *Item) Change(raw string) {
	if it.model == nil || it.mode != ModeText || it.model.Schema.InputType != "number" {
		return
	}
	it.SetValue(model.String(raw))
	it.notifyInput(ControlInput)
}

// Select applies a dropdown selection. Boolean items store a real boolean.
func (it *Item) Select(option string) {
	source := ControlEnum
	if it.mode == ModeBoolean {
		source = ControlBoolean
		it.SetValue(model.Bool(option == "true"))
	} else {
		it.SetValue(model.String(option))
	}
	it.notifyInput(source)
}

// SetNil toggles the nil option and returns the validity computed once the
// controls reflect the new state. Turning it on holds the current value and
// stores the nil sentinel; turning it off restores the held value, or maps a
// leftover sentinel to the empty string. Items without the nil capability
// ignore the call.
func (it *Item) SetNil(enabled bool) bool {
	if !it.nillable || enabled == it.nilEnabled {
		return it.Validate()
	}
	it.nilEnabled = enabled
	switch {
	case enabled:
		held := it.value
		it.held = &held
		it.SetValue(model.Nil())
	case it.held != nil:
		held := *it.held
		it.held = nil
		it.SetValue(held)
	case it.value.IsNil():
		it.SetValue(model.String(""))
	}
	it.mount()
	return it.Validate()
}

func (it *Item) updateValueWarning() {
	if it.model == nil || it.mode == ModeArray {
		it.valueWarning = ""
		return
	}
	schema := it.model.Schema
	it.valueWarning = WarningFor(it.value, IsRequired(schema), schema)
}

func (it *Item) updateEntryWarning(index int) {
	if it.model == nil || index < 0 || index >= len(it.entries) {
		return
	}
	for len(it.entryWarnings) < len(it.entries) {
		it.entryWarnings = append(it.entryWarnings, "")
	}
	schema := it.model.Schema
	value := model.String(it.entries[index].Value)
	it.entryWarnings[index] = WarningFor(value, IsRequired(schema), schema)
}

func (it *Item) recomputeEntryWarnings() {
	it.entryWarnings = make([]string, len(it.entries))
	for idx := range it.entries {
		it.updateEntryWarning(idx)
	}
}
