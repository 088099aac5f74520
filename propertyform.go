// Package propertyform renders a single API property as an editable form
// item. The root package re-exports the common entry points so quick starts
// need one import.
package propertyform

import (
	"context"

	"github.com/goliatone/go-propertyform/pkg/formitem"
	pkgloader "github.com/goliatone/go-propertyform/pkg/loader"
	"github.com/goliatone/go-propertyform/pkg/model"
	"github.com/goliatone/go-propertyform/pkg/orchestrator"
	"github.com/goliatone/go-propertyform/pkg/render"
)

// ViewModel aliases model.ViewModel.
type ViewModel = model.ViewModel

// Value aliases model.Value.
type Value = model.Value

// Props aliases formitem.Props.
type Props = formitem.Props

// RenderOptions describes per-request overrides such as the id prefix, icons
// and server-side errors.
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewItem returns a form item bound to vm and its value.
func NewItem(vm *ViewModel, options ...formitem.Option) *formitem.Item {
	item := formitem.New(options...)
	item.Bind(vm)
	return item
}

// GenerateHTML loads the view model at source and renders it with the named
// renderer.
func GenerateHTML(ctx context.Context, source pkgloader.Source, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: rendererName,
	})
}

// GenerateHTMLFromViewModel renders a view model already held in memory.
func GenerateHTMLFromViewModel(ctx context.Context, vm *ViewModel, props Props, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		ViewModel: vm,
		Props:     props,
		Renderer:  rendererName,
	})
}
