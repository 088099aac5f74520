package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-propertyform/pkg/formitem"
)

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides what to show when a key cannot be
// translated. params carries the arguments plus a map holding the default.
type MissingTranslationHandler func(locale, key string, params []any, err error) string

// ErrMissingTranslator is passed to MissingTranslationHandler when no
// Translator is configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Message keys for the built-in strings.
const (
	KeyItemLabel       = "propertyform.item.label"
	KeyRequiredWarning = "propertyform.warning.required"
	KeyInvalid         = "propertyform.error.invalid"
	KeyNil             = "propertyform.nil"
	KeyAdd             = "propertyform.array.add"
	KeyAddTitle        = "propertyform.array.add.title"
	KeyRemoveTitle     = "propertyform.array.remove.title"
)

// Strings holds the resolved built-in strings for one render.
type Strings struct {
	ItemLabel       string
	RequiredWarning string
	Invalid         string
	Nil             string
	Add             string
	AddTitle        string
	RemoveTitle     string
}

// DefaultStrings returns the untranslated built-in strings for an item named
// name.
func DefaultStrings(name string) Strings {
	return Strings{
		ItemLabel:       formitem.DefaultItemLabel,
		RequiredWarning: formitem.RequiredWarning,
		Invalid:         fmt.Sprintf("%s is invalid. Check documentation.", name),
		Nil:             "Nil",
		Add:             "Add array value",
		AddTitle:        "Add an array value",
		RemoveTitle:     "Remove array value",
	}
}

// LocalizeStrings resolves the built-in strings for opts.Locale. Without a
// Translator the defaults are returned unchanged unless OnMissing is set.
func LocalizeStrings(name string, opts RenderOptions) Strings {
	out := DefaultStrings(name)
	if opts.Translator == nil && opts.OnMissing == nil {
		return out
	}
	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	tr := func(key, fallback string, args ...any) string {
		return translate(opts.Locale, key, fallback, opts.Translator, onMissing, args...)
	}

	out.ItemLabel = tr(KeyItemLabel, out.ItemLabel)
	out.RequiredWarning = tr(KeyRequiredWarning, out.RequiredWarning)
	out.Invalid = tr(KeyInvalid, out.Invalid, name)
	out.Nil = tr(KeyNil, out.Nil)
	out.Add = tr(KeyAdd, out.Add)
	out.AddTitle = tr(KeyAddTitle, out.AddTitle)
	out.RemoveTitle = tr(KeyRemoveTitle, out.RemoveTitle)
	return out
}

// LocalizeSnapshot rewrites the built-in strings carried by snap in place:
// the default row label, required warnings and invalid messages. Labels that
// come from the schema are left untouched.
func LocalizeSnapshot(snap *formitem.Snapshot, opts RenderOptions) Strings {
	if snap == nil {
		return LocalizeStrings("", opts)
	}
	strs := LocalizeStrings(snap.Props.Name, opts)
	defaults := DefaultStrings(snap.Props.Name)

	if snap.ItemLabel == defaults.ItemLabel {
		snap.ItemLabel = strs.ItemLabel
	}
	if snap.ValueWarning == defaults.RequiredWarning {
		snap.ValueWarning = strs.RequiredWarning
	}
	for idx, warning := range snap.EntryWarnings {
		if warning == defaults.RequiredWarning {
			snap.EntryWarnings[idx] = strs.RequiredWarning
		}
	}
	if snap.Input != nil {
		localizeInput(snap.Input, defaults, strs)
	}
	for idx := range snap.Rows {
		localizeInput(&snap.Rows[idx], defaults, strs)
		if snap.Rows[idx].Label == defaults.ItemLabel {
			snap.Rows[idx].Label = strs.ItemLabel
		}
	}
	return strs
}

func localizeInput(in *formitem.TextInput, defaults, strs Strings) {
	if in.InvalidMessage == defaults.Invalid {
		in.InvalidMessage = strs.Invalid
	}
	if in.InfoMessage == defaults.RequiredWarning {
		in.InfoMessage = strs.RequiredWarning
	}
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler, args ...any) string {
	params := append(append([]any(nil), args...), map[string]any{"default": fallback})
	if t == nil {
		return onMissing(locale, key, params, ErrMissingTranslator)
	}
	result, err := t.Translate(locale, key, args...)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return onMissing(locale, key, params, err)
}

// missingTranslationDefault returns the default carried in params, falling
// back to the key itself.
func missingTranslationDefault(_ string, key string, params []any, _ error) string {
	for _, param := range params {
		if m, ok := param.(map[string]any); ok {
			if fallback, ok := m["default"].(string); ok && strings.TrimSpace(fallback) != "" {
				return fallback
			}
		}
	}
	return key
}
