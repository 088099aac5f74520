package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	internalLoader "github.com/goliatone/go-propertyform/internal/loader"
	"github.com/goliatone/go-propertyform/pkg/formitem"
	pkgloader "github.com/goliatone/go-propertyform/pkg/loader"
	"github.com/goliatone/go-propertyform/pkg/model"
	"github.com/goliatone/go-propertyform/pkg/render"
	"github.com/goliatone/go-propertyform/pkg/renderers/vanilla"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom view-model loader.
func WithLoader(loader pkgloader.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithFileSystem backs fs sources of the default loader.
func WithFileSystem(files fs.FS) Option {
	return func(o *Orchestrator) {
		o.files = files
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithTransformer registers a Transformer that runs on the decoded view model
// before decorators.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithDecorators registers decorators applied to every view model before the
// item is built.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithItemOptions adds formitem options applied to every built item.
func WithItemOptions(options ...formitem.Option) Option {
	return func(o *Orchestrator) {
		o.itemOptions = append(o.itemOptions, options...)
	}
}

// Orchestrator runs the load, decode, build and render pipeline for a single
// property. The vanilla renderer is registered when no registry is supplied.
type Orchestrator struct {
	loader          pkgloader.Loader
	files           fs.FS
	registry        *render.Registry
	defaultRenderer string
	transformer     Transformer
	decorators      []model.Decorator
	itemOptions     []formitem.Option
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render one property.
type Request struct {
	// Source identifies where the view-model document lives. Optional when
	// ViewModel is supplied.
	Source pkgloader.Source

	// ViewModel bypasses the loader when the caller already holds one.
	ViewModel *model.ViewModel

	// Value overrides the view-model value when non-nil.
	Value *model.Value

	// Props are the item flags. An empty Name falls back to the view-model name.
	Props formitem.Props

	// Renderer names the renderer to use. Empty means the default renderer.
	Renderer string

	// RenderOptions is passed through to the renderer.
	RenderOptions render.RenderOptions
}

// Result carries the built item next to the rendered bytes.
type Result struct {
	Item        *formitem.Item
	Output      []byte
	ContentType string
}

// Generate executes the pipeline and returns the rendered bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	res, err := o.Run(ctx, req)
	if err != nil {
		return nil, err
	}
	return res.Output, nil
}

// Run executes the pipeline and returns the item along with its rendering.
func (o *Orchestrator) Run(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	item, err := o.Build(ctx, req)
	if err != nil {
		return Result{}, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Result{}, err
	}
	output, err := renderer.Render(ctx, item.Snapshot(), req.RenderOptions)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return Result{Item: item, Output: output, ContentType: renderer.ContentType()}, nil
}

// Build resolves the view model and returns a mounted item without rendering.
func (o *Orchestrator) Build(ctx context.Context, req Request) (*formitem.Item, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, err
		}
	}

	vm, err := o.resolveViewModel(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := o.applyTransformer(ctx, vm); err != nil {
		return nil, err
	}
	if err := o.applyDecorators(vm); err != nil {
		return nil, err
	}

	props := req.Props
	if props.Name == "" {
		props.Name = vm.Name
	}
	options := append([]formitem.Option{formitem.WithProps(props)}, o.itemOptions...)
	if req.Value != nil {
		vm.Value = *req.Value
	}
	item := formitem.New(options...)
	item.Bind(vm)
	item.Validate()
	return item, nil
}

func (o *Orchestrator) resolveViewModel(ctx context.Context, req Request) (*model.ViewModel, error) {
	if req.ViewModel != nil {
		return req.ViewModel.Clone(), nil
	}
	if req.Source == nil {
		return nil, errors.New("orchestrator: source or view model is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: load document: %w", err)
	}
	vm, err := doc.ViewModel()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: decode view model: %w", err)
	}
	return vm, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDecorators(vm *model.ViewModel) error {
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(vm); err != nil {
			return fmt.Errorf("orchestrator: decorate view model: %w", err)
		}
	}
	return nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, vm *model.ViewModel) error {
	if o.transformer == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, vm); err != nil {
		return fmt.Errorf("orchestrator: transform view model: %w", err)
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalLoader.New(pkgloader.NewOptions(pkgloader.WithFileSystem(o.files)))
	}
	if o.registry == nil {
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		registry, err := render.NewRegistry(renderer)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default registry: %w", err)
			return
		}
		o.registry = registry
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
