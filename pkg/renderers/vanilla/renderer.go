package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-propertyform/pkg/formitem"
	"github.com/goliatone/go-propertyform/pkg/model"
	"github.com/goliatone/go-propertyform/pkg/render"
	rendertemplate "github.com/goliatone/go-propertyform/pkg/render/template"
	gotemplate "github.com/goliatone/go-propertyform/pkg/render/template/gotemplate"
)

const itemTemplate = "templates/item.tmpl"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	icons            map[string]string
	inlineStyles     bool
}

// WithTemplatesFS supplies an alternate template bundle. It must contain
// templates/item.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithIcons overrides the default add/remove icon markup. RenderOptions.Icons
// take precedence per request.
func WithIcons(icons map[string]string) Option {
	return func(cfg *config) {
		cfg.icons = icons
	}
}

// WithInlineStyles prepends the embedded stylesheet in a <style> element.
func WithInlineStyles() Option {
	return func(cfg *config) {
		cfg.inlineStyles = true
	}
}

// Renderer renders a form item snapshot as an HTML fragment.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	icons     map[string]string
	styles    string
}

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		templates = engine
	}

	r := &Renderer{
		templates: templates,
		icons:     resolveIcons(cfg.icons),
	}
	if cfg.inlineStyles {
		r.styles = defaultStylesheet()
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the HTML fragment for snap. Built-in strings are localized
// and server errors attached before templating; snap itself is not modified.
func (r *Renderer) Render(ctx context.Context, snap formitem.Snapshot, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("vanilla renderer: %w", err)
	}

	data, err := r.viewData(snap, options)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: build view data: %w", err)
	}
	result, err := r.templates.RenderTemplate(itemTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) viewData(snap formitem.Snapshot, options render.RenderOptions) (map[string]any, error) {
	snap = detach(snap)
	strs := render.LocalizeSnapshot(&snap, options)
	errs := render.MapErrorPayload(snap, options.Errors)
	base := controlID(options.IDPrefix, snap.Props.Name)

	value, err := hiddenValue(snap.Value)
	if err != nil {
		return nil, err
	}

	item := map[string]any{
		"id":              base,
		"name":            snap.Props.Name,
		"mode":            snap.Mode.String(),
		"nillable":        snap.Nillable,
		"nilEnabled":      snap.NilEnabled,
		"invalid":         snap.Invalid,
		"outlined":        snap.Props.Outlined,
		"compatibility":   snap.Props.Compatibility,
		"actionsDisabled": snap.ActionsDisabled,
		"value":           value,
	}

	inputs := make([]map[string]any, 0, len(snap.Rows)+1)
	if snap.Input != nil {
		in := inputData(*snap.Input, base+"-input")
		in["errors"] = errs.Value
		inputs = append(inputs, in)
	}
	for _, row := range snap.Rows {
		in := inputData(row, rowID(base, row.Index))
		in["errors"] = errs.For(row.Index)
		inputs = append(inputs, in)
	}

	other := errs.Other
	if snap.Input == nil {
		other = render.MergeMessages(errs.Value, other...)
	}

	data := map[string]any{
		"item":   item,
		"inputs": inputs,
		"errors": other,
		"strings": map[string]any{
			"nil":         strs.Nil,
			"add":         strs.Add,
			"addTitle":    strs.AddTitle,
			"removeTitle": strs.RemoveTitle,
		},
		"icons":  r.iconsFor(options),
		"styles": r.styles,
	}
	if snap.Dropdown != nil {
		data["dropdown"] = dropdownData(*snap.Dropdown, base+"-select")
	}
	return data, nil
}

// detach copies the parts of snap that localization rewrites.
func detach(snap formitem.Snapshot) formitem.Snapshot {
	snap.Rows = append([]formitem.TextInput(nil), snap.Rows...)
	snap.EntryWarnings = append([]string(nil), snap.EntryWarnings...)
	if snap.Input != nil {
		input := *snap.Input
		snap.Input = &input
	}
	return snap
}

func (r *Renderer) iconsFor(options render.RenderOptions) map[string]any {
	icons := r.icons
	if len(options.Icons) > 0 {
		icons = resolveIcons(r.icons, options.Icons)
	}
	out := make(map[string]any, len(icons))
	for name, markup := range icons {
		out[name] = markup
	}
	return out
}

func inputData(in formitem.TextInput, id string) map[string]any {
	row := in.Kind() == formitem.ControlArray
	return map[string]any{
		"id":             id,
		"row":            row,
		"dataType":       string(in.Kind()),
		"index":          in.Index,
		"entryId":        in.EntryID.String(),
		"name":           in.Name,
		"type":           htmlInputType(in.InputType),
		"label":          in.Label,
		"placeholder":    in.Placeholder,
		"value":          in.Value,
		"pattern":        in.Pattern,
		"minLength":      optionalInt(in.MinLength),
		"maxLength":      optionalInt(in.MaxLength),
		"min":            optionalFloat(in.Minimum),
		"max":            optionalFloat(in.Maximum),
		"required":       in.Required,
		"disabled":       in.Disabled,
		"readOnly":       in.ReadOnly,
		"noLabelFloat":   in.NoLabelFloat,
		"info":           in.InfoMessage,
		"invalid":        in.Invalid,
		"invalidMessage": in.InvalidMessage,
		"removable":      in.Removable,
	}
}

func dropdownData(d formitem.Dropdown, id string) map[string]any {
	options := make([]map[string]any, 0, len(d.Options))
	for _, opt := range d.Options {
		options = append(options, map[string]any{
			"value":    opt.Value,
			"label":    opt.Label,
			"selected": opt.Value == d.Selected,
		})
	}
	return map[string]any{
		"id":       id,
		"type":     string(d.Kind()),
		"name":     d.Name,
		"label":    d.Label,
		"options":  options,
		"required": d.Required,
		"disabled": d.Disabled,
		"invalid":  d.Invalid,
	}
}

// hiddenValue serialises the external value for form submission. Lists are
// JSON arrays; every other kind uses its display form.
func hiddenValue(v model.Value) (string, error) {
	if v.Kind() != model.KindList {
		return v.String(), nil
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}
