package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-propertyform/pkg/model"
)

// TextViewModel returns the pattern constrained text model used across
// renderer and orchestrator tests.
func TextViewModel() *model.ViewModel {
	return &model.ViewModel{
		Required: true,
		Schema: model.Schema{
			InputLabel:       "Enter value",
			Pattern:          "[a-zA-Z0-9_]*",
			InputPlaceholder: "This is the placeholder",
		},
	}
}

// ArrayViewModel returns a number array model bounded to [2, 20] seeded with
// values.
func ArrayViewModel(values ...string) *model.ViewModel {
	return &model.ViewModel{
		Value: model.List(values...),
		Schema: model.Schema{
			IsArray:   true,
			InputType: "number",
			Minimum:   model.FloatPtr(2),
			Maximum:   model.FloatPtr(20),
		},
	}
}

// MustLoadViewModel decodes a JSON or YAML view-model fixture.
func MustLoadViewModel(t *testing.T, path string) *model.ViewModel {
	t.Helper()

	vm, err := LoadViewModel(path)
	if err != nil {
		t.Fatalf("load view model: %v", err)
	}
	return vm
}

// LoadViewModel decodes a fixture without requiring testing.T so setup code
// can share it.
func LoadViewModel(path string) (*model.ViewModel, error) {
	if path == "" {
		return nil, errors.New("testsupport: view model path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read view model: %w", err)
	}
	vm, err := model.Decode(path, data)
	if err != nil {
		return nil, fmt.Errorf("testsupport: decode view model: %w", err)
	}
	return vm, nil
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer and returns both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
