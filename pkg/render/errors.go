package render

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-propertyform/pkg/formitem"
)

// ErrorMapping splits a server error payload into messages for the item
// value, messages for individual array rows and messages that could not be
// attributed to the item.
type ErrorMapping struct {
	Value   []string
	Entries map[int][]string
	Other   []string
}

// For returns the messages attached to the array row at index.
func (m ErrorMapping) For(index int) []string {
	if m.Entries == nil {
		return nil
	}
	return m.Entries[index]
}

// MergeMessages concatenates message slices, trimming whitespace and removing
// duplicates while preserving order.
func MergeMessages(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// MapErrorPayload attributes payload keys to the rendered item. Keys are
// JSON pointer or dotted paths: the empty path, "/" and the item name address
// the value; a trailing numeric segment ("/2", "tags[2]", "tags.2") addresses
// an array row. Row paths are only honoured in array mode and within range.
func MapErrorPayload(snap formitem.Snapshot, payload map[string][]string) ErrorMapping {
	var mapping ErrorMapping
	for rawPath, messages := range payload {
		normalized := normalizeMessages(messages)
		if len(normalized) == 0 {
			continue
		}
		index, target := mapErrorPath(rawPath, snap)
		switch target {
		case targetValue:
			mapping.Value = append(mapping.Value, normalized...)
		case targetEntry:
			if mapping.Entries == nil {
				mapping.Entries = make(map[int][]string)
			}
			mapping.Entries[index] = append(mapping.Entries[index], normalized...)
		default:
			mapping.Other = append(mapping.Other, normalized...)
		}
	}
	mapping.Value = normalizeMessages(mapping.Value)
	mapping.Other = normalizeMessages(mapping.Other)
	return mapping
}

type errorTarget int

const (
	targetOther errorTarget = iota
	targetValue
	targetEntry
)

func mapErrorPath(raw string, snap formitem.Snapshot) (int, errorTarget) {
	segments := parsePathSegments(raw)
	name := strings.TrimSpace(snap.Props.Name)
	if len(segments) > 0 && name != "" && segments[0] == name {
		segments = segments[1:]
	}

	switch len(segments) {
	case 0:
		return -1, targetValue
	case 1:
		index, err := strconv.Atoi(segments[0])
		if err != nil {
			return -1, targetOther
		}
		if snap.Mode != formitem.ModeArray || index < 0 || index >= len(snap.Entries) {
			return -1, targetOther
		}
		return index, targetEntry
	default:
		return -1, targetOther
	}
}

func parsePathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	clean = strings.TrimPrefix(clean, "#/")
	clean = strings.TrimPrefix(clean, "$.")
	for strings.HasPrefix(clean, "#") || strings.HasPrefix(clean, "/") || strings.HasPrefix(clean, ".") || strings.HasPrefix(clean, "$") {
		clean = clean[1:]
	}

	replacer := strings.NewReplacer("[", ".", "]", "", "//", "/")
	clean = strings.Trim(replacer.Replace(clean), "./")
	if clean == "" {
		return nil
	}

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
