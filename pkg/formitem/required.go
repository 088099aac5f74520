package formitem

import "github.com/goliatone/go-propertyform/pkg/model"

// RequiredWarning is the info message shown when a schema declares a text
// value required but the item does not enforce it.
const RequiredWarning = "Value is required but currently empty."

// IsTextInput reports whether the schema renders as a free text input.
func IsTextInput(schema model.Schema) bool {
	return schema.InputType == "" || schema.InputType == "text"
}

// IsRequired computes the enforced requiredness for an input. Text inputs
// are only hard-required when the schema also constrains the value with a
// minimum length or a pattern. Other input types use the declared flag
// verbatim.
func IsRequired(schema model.Schema) bool {
	if IsTextInput(schema) {
		return schema.Required && (schema.MinLengthValue() > 0 || schema.Pattern != "")
	}
	return schema.Required
}

// WarningFor returns RequiredWarning when value is empty on a text input whose
// declared requiredness was relaxed by IsRequired. It returns "" otherwise.
func WarningFor(value model.Value, required bool, schema model.Schema) string {
	if value.IsEmpty() && IsTextInput(schema) && !required && schema.Required {
		return RequiredWarning
	}
	return ""
}
