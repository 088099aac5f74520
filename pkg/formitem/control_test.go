package formitem_test

import (
	"testing"

	"github.com/goliatone/go-propertyform/pkg/formitem"
	"github.com/goliatone/go-propertyform/pkg/model"
)

func TestTextInput_Constraints(t *testing.T) {
	cases := []struct {
		name  string
		input formitem.TextInput
		valid bool
	}{
		{name: "empty optional", input: formitem.TextInput{}, valid: true},
		{name: "empty required", input: formitem.TextInput{Required: true}, valid: false},
		{name: "disabled required", input: formitem.TextInput{Required: true, Disabled: true}, valid: true},
		{name: "readonly out of range", input: formitem.TextInput{Value: "1", InputType: "number", Minimum: model.FloatPtr(5), ReadOnly: true}, valid: true},
		{name: "readonly required", input: formitem.TextInput{Required: true, ReadOnly: true}, valid: true},
		{name: "min length", input: formitem.TextInput{Value: "ab", MinLength: model.IntPtr(3)}, valid: false},
		{name: "max length runes", input: formitem.TextInput{Value: "äöü", MaxLength: model.IntPtr(3)}, valid: true},
		{name: "pattern anchored", input: formitem.TextInput{Value: "abc1", Pattern: "[a-z]+"}, valid: false},
		{name: "bad pattern ignored", input: formitem.TextInput{Value: "x", Pattern: "("}, valid: true},
		{name: "number parse", input: formitem.TextInput{Value: "abc", InputType: "number"}, valid: false},
		{name: "number range", input: formitem.TextInput{Value: "2.5", InputType: "number", Minimum: model.FloatPtr(2)}, valid: true},
		{name: "integer rejects fraction", input: formitem.TextInput{Value: "2.5", InputType: "integer"}, valid: false},
		{name: "integer max", input: formitem.TextInput{Value: "21", InputType: "integer", Maximum: model.FloatPtr(20)}, valid: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := tc.input
			if got := input.Validate(); got != tc.valid {
				t.Fatalf("Validate() = %v, want %v", got, tc.valid)
			}
			if input.Invalid == tc.valid {
				t.Fatalf("Invalid = %v after Validate() = %v", input.Invalid, tc.valid)
			}
			err := input.Check()
			if tc.valid && err != nil {
				t.Fatalf("unexpected check error: %v", err)
			}
			if !tc.valid && err == nil {
				t.Fatalf("expected a check error")
			}
		})
	}
}

func TestDropdown_Validate(t *testing.T) {
	options := []formitem.DropdownOption{{Value: "a", Label: "a"}}
	cases := []struct {
		name     string
		dropdown formitem.Dropdown
		want     bool
	}{
		{name: "optional", dropdown: formitem.Dropdown{Options: options}, want: true},
		{name: "required without selection", dropdown: formitem.Dropdown{Options: options, Required: true}, want: false},
		{name: "required with selection", dropdown: formitem.Dropdown{Options: options, Required: true, Selected: "a"}, want: true},
		{name: "disabled", dropdown: formitem.Dropdown{Options: options, Required: true, Disabled: true}, want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dropdown := tc.dropdown
			if got := dropdown.Validate(); got != tc.want {
				t.Fatalf("Validate() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMode_String(t *testing.T) {
	if got := formitem.ModeArray.String(); got != "array" {
		t.Fatalf("unexpected array mode name %q", got)
	}
	if got := formitem.ModeText.String(); got != "text" {
		t.Fatalf("unexpected text mode name %q", got)
	}
}
