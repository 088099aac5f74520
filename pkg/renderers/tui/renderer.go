package tui

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-propertyform/pkg/formitem"
	"github.com/goliatone/go-propertyform/pkg/model"
	"github.com/goliatone/go-propertyform/pkg/render"
)

const doneLabel = "Done"

// Renderer implements render.Renderer for terminal sessions: it edits the
// item interactively and emits the resulting value.
type Renderer struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	submitTransformer SubmitTransformer
	theme             Theme
}

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver()
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render rebuilds an item from snap, edits it with Edit and serializes the
// final value.
func (r *Renderer) Render(ctx context.Context, snap formitem.Snapshot, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	item := restore(snap)
	if err := r.Edit(ctx, item, opts); err != nil {
		return nil, err
	}
	return r.serialize(snap.Props.Name, item.Value())
}

// Edit walks the user through editing item: the nil toggle first when the
// item is nillable, then the prompt for the active mode. Read only and
// disabled items are printed, not edited. It returns ErrInvalid when the
// final value fails validation.
func (r *Renderer) Edit(ctx context.Context, item *formitem.Item, opts render.RenderOptions) error {
	if item == nil {
		return errors.New("tui: item is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.driver == nil {
		return errors.New("tui: prompt driver is nil")
	}

	snap := item.Snapshot()
	strs := render.LocalizeStrings(snap.Props.Name, opts)
	errs := render.MapErrorPayload(snap, opts.Errors)
	for _, msg := range render.MergeMessages(errs.Value, errs.Other...) {
		if err := r.errorf(ctx, "%s", msg); err != nil {
			return err
		}
	}

	label := displayLabel(snap)
	if snap.ActionsDisabled {
		return r.infof(ctx, "%s: %s", label, snap.Value.String())
	}

	if item.Nillable() {
		isNil, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("%s: %s?", label, strs.Nil),
			Default: item.NilEnabled(),
		})
		if err != nil {
			return err
		}
		item.SetNil(isNil)
		if isNil {
			return nil
		}
	}

	var err error
	switch item.Mode() {
	case formitem.ModeEnum, formitem.ModeBoolean:
		err = r.editDropdown(ctx, item, label)
	case formitem.ModeArray:
		err = r.editArray(ctx, item, label, strs, errs)
	default:
		err = r.editText(ctx, item, label)
	}
	if err != nil {
		return err
	}

	if !item.Validate() {
		msg := strs.Invalid
		if err := r.errorf(ctx, "%s", msg); err != nil {
			return err
		}
		return fmt.Errorf("%w: %s", ErrInvalid, msg)
	}
	return nil
}

func (r *Renderer) editText(ctx context.Context, item *formitem.Item, label string) error {
	var tmpl formitem.TextInput
	if input := item.Mounted().Input; input != nil {
		tmpl = *input
	}
	cfg := InputConfig{
		Message:   label,
		Default:   item.Value().String(),
		Help:      firstNonEmpty(tmpl.InfoMessage, tmpl.Placeholder),
		Validator: checker(tmpl),
	}

	prompt := r.driver.Input
	if tmpl.InputType == "password" {
		prompt = r.driver.Password
	}
	value, err := prompt(ctx, cfg)
	if err != nil {
		return err
	}
	item.Input(value)
	return nil
}

func (r *Renderer) editDropdown(ctx context.Context, item *formitem.Item, label string) error {
	dropdown := item.Mounted().Dropdown
	if dropdown == nil || len(dropdown.Options) == 0 {
		return r.infof(ctx, "%s: no options available", label)
	}

	labels := make([]string, len(dropdown.Options))
	selected := -1
	for idx, opt := range dropdown.Options {
		labels[idx] = opt.Label
		if opt.Value == dropdown.Selected {
			selected = idx
		}
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      label,
		Options:      labels,
		DefaultIndex: selected,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(dropdown.Options) {
		return fmt.Errorf("tui: selection %d out of range", idx)
	}
	item.Select(dropdown.Options[idx].Value)
	return nil
}

type arrayAction int

const (
	actionAdd arrayAction = iota
	actionRemove
	actionDone
)

func (r *Renderer) editArray(ctx context.Context, item *formitem.Item, label string, strs render.Strings, errs render.ErrorMapping) error {
	for idx := range item.Entries() {
		if err := r.editRow(ctx, item, idx, errs.For(idx)); err != nil {
			return err
		}
	}

	for {
		removable := removableRows(item)
		labels := []string{strs.Add}
		actions := []arrayAction{actionAdd}
		if len(removable) > 0 {
			labels = append(labels, strs.RemoveTitle)
			actions = append(actions, actionRemove)
		}
		labels = append(labels, doneLabel)
		actions = append(actions, actionDone)

		choice, err := r.driver.Select(ctx, SelectConfig{
			Message:      label,
			Options:      labels,
			DefaultIndex: len(labels) - 1,
		})
		if err != nil {
			return err
		}
		if choice < 0 || choice >= len(actions) {
			return fmt.Errorf("tui: selection %d out of range", choice)
		}

		switch actions[choice] {
		case actionAdd:
			if err := r.editRow(ctx, item, item.AddEmptyArrayValue(), nil); err != nil {
				return err
			}
		case actionRemove:
			if err := r.removeRow(ctx, item, strs, removable); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (r *Renderer) editRow(ctx context.Context, item *formitem.Item, idx int, messages []string) error {
	rows := item.Mounted().Rows
	if idx < 0 || idx >= len(rows) {
		return nil
	}
	for _, msg := range messages {
		if err := r.errorf(ctx, "%s", msg); err != nil {
			return err
		}
	}

	row := *rows[idx]
	value, err := r.driver.Input(ctx, InputConfig{
		Message:   fmt.Sprintf("%s [%d]", row.Label, idx),
		Default:   row.Value,
		Help:      firstNonEmpty(row.InfoMessage, row.Placeholder),
		Validator: checker(row),
	})
	if err != nil {
		return err
	}
	item.UpdateEntry(idx, value)
	return nil
}

func (r *Renderer) removeRow(ctx context.Context, item *formitem.Item, strs render.Strings, removable []int) error {
	entries := item.Entries()
	labels := make([]string, len(removable))
	for i, idx := range removable {
		labels[i] = fmt.Sprintf("[%d] %s", idx, entries[idx].Value)
	}
	choice, err := r.driver.Select(ctx, SelectConfig{
		Message:      strs.RemoveTitle,
		Options:      labels,
		DefaultIndex: -1,
	})
	if err != nil {
		return err
	}
	if choice < 0 || choice >= len(removable) {
		return fmt.Errorf("tui: selection %d out of range", choice)
	}
	item.RemoveArrayValue(removable[choice])
	return nil
}

// removableRows lists the rows offering a remove action. The first row never
// does.
func removableRows(item *formitem.Item) []int {
	var out []int
	for _, row := range item.Mounted().Rows {
		if row.Removable {
			out = append(out, row.Index)
		}
	}
	return out
}

// checker validates prompt answers against a copy of the mounted input so the
// user can retry before the item sees the value.
func checker(tmpl formitem.TextInput) func(string) error {
	return func(value string) error {
		in := tmpl
		in.Value = value
		return in.Check()
	}
}

// restore rebuilds a live item from a snapshot. While nil is enabled the item
// is seeded with the held value first so clearing nil restores it.
func restore(snap formitem.Snapshot) *formitem.Item {
	item := formitem.New(formitem.WithProps(snap.Props))
	if !snap.HasModel {
		item.SetValue(snap.Value)
		return item
	}

	value := snap.Value
	switch {
	case snap.Mode == formitem.ModeArray:
		values := make([]string, len(snap.Entries))
		for idx, entry := range snap.Entries {
			values[idx] = entry.Value
		}
		value = model.List(values...)
	case snap.NilEnabled && snap.HasHeld:
		value = snap.Held
	case snap.NilEnabled:
		value = model.String("")
	}

	item.SetModel(&model.ViewModel{
		Required: snap.Required,
		Value:    value,
		Schema:   snap.Schema,
	})
	if snap.Mode != formitem.ModeArray {
		item.SetValue(value)
	}
	if snap.NilEnabled {
		item.SetNil(true)
	}
	return item
}

func (r *Renderer) infof(ctx context.Context, format string, args ...any) error {
	return r.driver.Info(ctx, r.theme.InfoPrefix+fmt.Sprintf(format, args...))
}

func (r *Renderer) errorf(ctx context.Context, format string, args ...any) error {
	return r.driver.Info(ctx, r.theme.ErrorPrefix+fmt.Sprintf(format, args...))
}

func (r *Renderer) serialize(name string, value model.Value) ([]byte, error) {
	key := strings.TrimSpace(name)
	if key == "" {
		key = "value"
	}
	values := map[string]any{key: value.Any()}
	if r.submitTransformer != nil {
		var err error
		values, err = r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}

	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(formEncode(values)), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(values)), nil
	default:
		payload, err := json.Marshal(values)
		if err != nil {
			return nil, fmt.Errorf("tui: encode json: %w", err)
		}
		return payload, nil
	}
}

func formEncode(values map[string]any) string {
	out := url.Values{}
	for key, value := range values {
		switch typed := value.(type) {
		case []string:
			for _, item := range typed {
				out.Add(key, item)
			}
		default:
			out.Set(key, fmt.Sprint(typed))
		}
	}
	return out.Encode()
}

func prettyPrint(values map[string]any) string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		value := values[key]
		if list, ok := value.([]string); ok {
			value = "[" + strings.Join(list, ", ") + "]"
		}
		fmt.Fprintf(&b, "%s: %v\n", key, value)
	}
	return b.String()
}

func displayLabel(snap formitem.Snapshot) string {
	return firstNonEmpty(snap.Schema.InputLabel, snap.Props.Name, "Value")
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
