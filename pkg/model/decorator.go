package model

// Decorator derives an adjusted view model before it is handed to a form
// item. Implementations receive a private clone and may mutate it freely.
type Decorator interface {
	Decorate(*ViewModel) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*ViewModel) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(vm *ViewModel) error {
	return fn(vm)
}
