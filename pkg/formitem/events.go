package formitem

import "github.com/goliatone/go-propertyform/pkg/model"

// EventType names the notifications an Item emits.
type EventType string

const (
	// EventChanged fires on every value mutation.
	EventChanged EventType = "changed"
	// EventValueChanged fires alongside EventChanged for two-way bindings.
	EventValueChanged EventType = "value-changed"
	// EventInput fires on every raw user edit.
	EventInput EventType = "input"
)

// Event carries the value after the mutation. Source is set on input events
// to the control kind that produced the edit.
type Event struct {
	Type   EventType
	Value  model.Value
	Source ControlKind
}

// Listener receives item events synchronously.
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}

// Subscribe registers fn and returns a function that removes it.
func (it *Item) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	it.nextListenerID++
	id := it.nextListenerID
	it.listeners = append(it.listeners, subscription{id: id, fn: fn})
	return func() {
		for idx, sub := range it.listeners {
			if sub.id == id {
				it.listeners = append(it.listeners[:idx:idx], it.listeners[idx+1:]...)
				return
			}
		}
	}
}

func (it *Item) emit(evt Event) {
	if len(it.listeners) == 0 {
		return
	}
	subs := append([]subscription(nil), it.listeners...)
	for _, sub := range subs {
		sub.fn(evt)
	}
}

func (it *Item) notifyValue() {
	it.emit(Event{Type: EventChanged, Value: it.value})
	it.emit(Event{Type: EventValueChanged, Value: it.value})
}

func (it *Item) notifyInput(source ControlKind) {
	it.emit(Event{Type: EventInput, Value: it.value, Source: source})
}
