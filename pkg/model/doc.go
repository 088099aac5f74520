// Package model defines the view model consumed by the property form item:
// the ViewModel/Schema pair describing one API property and the Value union
// (string, boolean, string list or the "nil" sentinel) the item edits.
// Documents can be decoded from JSON (goccy/go-json) or YAML (yaml.v3); the
// Value codecs coerce numbers to strings and lift the literal "nil" to the
// sentinel so round trips stay stable.
package model
