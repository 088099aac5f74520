package vanilla

import (
	"strconv"
	"strings"
	"unicode"
)

// controlID builds the element id namespace for an item. Characters outside
// [A-Za-z0-9_-] are replaced so names such as "page[size]" stay usable.
func controlID(prefix, name string) string {
	base := strings.TrimSpace(prefix)
	if base == "" {
		base = "pf-" + strings.TrimSpace(name)
	}
	base = strings.Map(func(r rune) rune {
		if r == '-' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, base)
	return strings.TrimRight(base, "-")
}

func rowID(base string, index int) string {
	return base + "-" + strconv.Itoa(index)
}

// htmlInputType maps schema input types onto native input types.
func htmlInputType(inputType string) string {
	switch strings.TrimSpace(inputType) {
	case "", "string":
		return "text"
	case "integer":
		return "number"
	default:
		return inputType
	}
}

func optionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func optionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
