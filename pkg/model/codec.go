package model

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Decode parses a view model document, selecting the codec from the file
// extension of name. Unknown extensions are sniffed: payloads starting with
// '{' are treated as JSON, everything else as YAML.
func Decode(name string, data []byte) (*ViewModel, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return DecodeJSON(data)
	case ".yaml", ".yml":
		return DecodeYAML(data)
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		return DecodeJSON(data)
	}
	return DecodeYAML(data)
}

// DecodeJSON parses a JSON view model document.
func DecodeJSON(data []byte) (*ViewModel, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("model: empty document")
	}
	var vm ViewModel
	if err := json.Unmarshal(data, &vm); err != nil {
		return nil, fmt.Errorf("model: decode json: %w", err)
	}
	return &vm, nil
}

// DecodeYAML parses a YAML view model document.
func DecodeYAML(data []byte) (*ViewModel, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("model: empty document")
	}
	var vm ViewModel
	if err := yaml.Unmarshal(data, &vm); err != nil {
		return nil, fmt.Errorf("model: decode yaml: %w", err)
	}
	return &vm, nil
}

// ParseValue decodes a standalone JSON value (`"text"`, `true`, `["a","b"]`).
// Input that is not valid JSON is taken verbatim as a string value, which
// keeps command-line usage forgiving.
func ParseValue(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return String("")
	}
	var v Value
	if err := json.Unmarshal([]byte(trimmed), &v); err != nil {
		return Normalize(String(raw))
	}
	return v
}
