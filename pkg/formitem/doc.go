// Package formitem resolves a single API property view model into editable
// form-item state.
//
// An Item classifies its model into exactly one Mode (text, boolean, enum or
// array) plus an independent nillable capability, keeps the external Value and
// the array Entry list consistent in both directions, derives required/warning
// flags for text inputs, and validates whichever controls are mounted for the
// current mode. Renderers never look inside an Item; they consume the
// immutable Snapshot it produces.
//
// An Item has a single writer. Callers that share one across goroutines must
// serialise access themselves.
package formitem
