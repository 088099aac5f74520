package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-propertyform/pkg/model"
)

// Transformer mutates a decoded ViewModel before decorators run.
type Transformer interface {
	Transform(ctx context.Context, vm *model.ViewModel) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, vm *model.ViewModel) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, vm *model.ViewModel) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, vm)
}

// JSONPresetTransformer applies declarative overrides loaded from a JSON
// document keyed by property name. The "*" entry applies to every property.
//
//	{
//	  "*":     {"nillable": true},
//	  "limit": {"label": "Max rows", "placeholder": "10", "required": true}
//	}
type JSONPresetTransformer struct {
	patches map[string]jsonPatch
}

type jsonPatch struct {
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
	Pattern     string `json:"pattern"`
	Required    *bool  `json:"required"`
	Nillable    *bool  `json:"nillable"`
	Rename      string `json:"rename"`
}

// NewJSONPresetTransformer constructs a transformer from raw JSON bytes.
func NewJSONPresetTransformer(data []byte) (*JSONPresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("json preset transformer: document is empty")
	}
	var patches map[string]jsonPatch
	if err := json.Unmarshal(data, &patches); err != nil {
		return nil, fmt.Errorf("json preset transformer: parse document: %w", err)
	}
	return &JSONPresetTransformer{patches: patches}, nil
}

// NewJSONPresetTransformerFromFS loads a preset document from fsys.
func NewJSONPresetTransformerFromFS(fsys fs.FS, path string) (*JSONPresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("json preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("json preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("json preset transformer: read %s: %w", path, err)
	}
	return NewJSONPresetTransformer(data)
}

// Transform applies the wildcard patch, then the patch named after vm.Name.
func (t *JSONPresetTransformer) Transform(ctx context.Context, vm *model.ViewModel) error {
	if vm == nil {
		return errors.New("json preset transformer: view model is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if patch, ok := t.patches["*"]; ok {
		applyPatch(vm, patch)
	}
	if vm.Name == "" {
		return nil
	}
	if patch, ok := t.patches[vm.Name]; ok {
		applyPatch(vm, patch)
	}
	return nil
}

func applyPatch(vm *model.ViewModel, patch jsonPatch) {
	if patch.Label != "" {
		vm.Schema.InputLabel = patch.Label
	}
	if patch.Placeholder != "" {
		vm.Schema.InputPlaceholder = patch.Placeholder
	}
	if patch.Pattern != "" {
		vm.Schema.Pattern = patch.Pattern
	}
	if patch.Required != nil {
		vm.Required = *patch.Required
	}
	if patch.Nillable != nil {
		vm.Schema.IsNillable = *patch.Nillable
	}
	if name := strings.TrimSpace(patch.Rename); name != "" {
		vm.Name = name
	}
}
