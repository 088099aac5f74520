package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-propertyform/pkg/formitem"
	"github.com/goliatone/go-propertyform/pkg/render"
)

type namedRenderer string

func (n namedRenderer) Name() string        { return string(n) }
func (n namedRenderer) ContentType() string { return "text/plain" }
func (n namedRenderer) Render(context.Context, formitem.Snapshot, render.RenderOptions) ([]byte, error) {
	return []byte(n), nil
}

func TestRegistry_RegisterAndList(t *testing.T) {
	registry, err := render.NewRegistry(namedRenderer("vanilla"), namedRenderer("tui"))
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	if diff := cmp.Diff([]string{"tui", "vanilla"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("tui") {
		t.Fatalf("expected tui registered")
	}
	if err := registry.Register(namedRenderer("tui")); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := registry.Register(namedRenderer("")); err == nil {
		t.Fatalf("expected empty name to fail")
	}
	if _, err := registry.Get("preact"); err == nil {
		t.Fatalf("expected unknown renderer to fail")
	}
}
