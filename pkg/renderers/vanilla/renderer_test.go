package vanilla_test

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-propertyform/pkg/formitem"
	"github.com/goliatone/go-propertyform/pkg/model"
	"github.com/goliatone/go-propertyform/pkg/render"
	"github.com/goliatone/go-propertyform/pkg/renderers/vanilla"
	"github.com/goliatone/go-propertyform/pkg/testsupport"
)

func renderItem(t *testing.T, item *formitem.Item, options render.RenderOptions, opts ...vanilla.Option) string {
	t.Helper()

	renderer, err := vanilla.New(opts...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(testsupport.Context(), item.Snapshot(), options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func assertContains(t *testing.T, output string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(output, fragment) {
			t.Fatalf("expected output to contain %q\n%s", fragment, output)
		}
	}
}

func TestRenderer_TextInput(t *testing.T) {
	item := formitem.New(formitem.WithName("token"))
	item.SetModel(testsupport.TextViewModel())
	item.SetValue(model.String("t e s t"))
	item.Validate()

	output := renderItem(t, item, render.RenderOptions{})
	assertContains(t, output,
		`data-mode="text"`,
		`id="pf-token-input"`,
		`data-type="input"`,
		`pattern="[a-zA-Z0-9_]*"`,
		`placeholder="This is the placeholder"`,
		`value="t e s t"`,
		` aria-invalid`,
		`token is invalid. Check documentation.`,
	)
	if strings.Contains(output, `data-action="add"`) {
		t.Fatalf("text items must not render array actions")
	}
}

func TestRenderer_ArrayRows(t *testing.T) {
	item := formitem.New(formitem.WithName("tags"))
	item.SetModel(testsupport.ArrayViewModel("a", "b"))

	output := renderItem(t, item, render.RenderOptions{
		Errors: map[string][]string{"tags[1]": {"Duplicate tag"}},
	})
	assertContains(t, output,
		`data-mode="array"`,
		`data-type="array" data-index="0"`,
		`data-type="array" data-index="1"`,
		`type="number"`,
		`min="2"`,
		`max="20"`,
		`data-action="add"`,
		`Add array value`,
		`Duplicate tag`,
		`<svg`,
		`value="[&quot;a&quot;,&quot;b&quot;]"`,
	)
	if got := strings.Count(output, `data-action="remove"`); got != 1 {
		t.Fatalf("expected only the second row to be removable, got %d remove actions", got)
	}
}

func TestRenderer_BooleanDropdown(t *testing.T) {
	item := formitem.New(formitem.WithName("enabled"))
	item.SetModel(&model.ViewModel{Schema: model.Schema{IsBool: true, InputLabel: "Enabled"}})
	item.Select("true")

	output := renderItem(t, item, render.RenderOptions{})
	assertContains(t, output,
		`data-type="boolean"`,
		`id="pf-enabled-select"`,
		`<option value="true" selected>True</option>`,
		`<option value="false">False</option>`,
		`value="true" data-role="value"`,
	)
}

func TestRenderer_EnumFixture(t *testing.T) {
	vm := testsupport.MustLoadViewModel(t, filepath.Join("testdata", "status.json"))
	item := formitem.New(formitem.WithName(vm.Name))
	item.Bind(vm)

	output := renderItem(t, item, render.RenderOptions{})
	assertContains(t, output,
		`data-type="enum"`,
		`id="pf-status-select"`,
		` required`,
		`<option value="active">active</option>`,
		`<option value="paused" selected>paused</option>`,
	)
}

func TestRenderer_NilToggle(t *testing.T) {
	item := formitem.New(formitem.WithName("limit"))
	item.SetModel(&model.ViewModel{Schema: model.Schema{IsNillable: true}})
	item.SetNil(true)

	output := renderItem(t, item, render.RenderOptions{IDPrefix: "op[limit]"})
	assertContains(t, output,
		`id="op-limit"`,
		`data-action="nil" checked`,
		`value="nil"`,
		` disabled`,
		`> Nil</label>`,
	)
}

func TestRenderer_SanitizesIconOverrides(t *testing.T) {
	item := formitem.New(formitem.WithName("tags"))
	item.SetModel(testsupport.ArrayViewModel("a"))

	output := renderItem(t, item, render.RenderOptions{
		Icons: map[string]string{
			vanilla.IconAdd: `<svg viewBox="0 0 24 24"><script>alert(1)</script><path d="M1 1"></path></svg>`,
		},
	})
	if strings.Contains(output, "<script") {
		t.Fatalf("expected script to be stripped from icon markup\n%s", output)
	}
	assertContains(t, output, `<path d="M1 1"></path>`)
}

func TestRenderer_InlineStyles(t *testing.T) {
	item := formitem.New(formitem.WithName("token"))
	item.SetModel(testsupport.TextViewModel())

	output := renderItem(t, item, render.RenderOptions{}, vanilla.WithInlineStyles())
	assertContains(t, output, "<style>", ".propertyform-item")
}

func TestRenderer_WithTemplateRenderer(t *testing.T) {
	var captured map[string]any
	stub := &stubTemplateRenderer{
		renderTemplateFunc: func(name string, data any, _ ...io.Writer) (string, error) {
			if name != "templates/item.tmpl" {
				t.Fatalf("unexpected template %q", name)
			}
			captured, _ = data.(map[string]any)
			return "custom-output", nil
		},
	}

	renderer, err := vanilla.New(vanilla.WithTemplateRenderer(stub))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	item := formitem.New(formitem.WithName("tags"))
	item.SetModel(testsupport.ArrayViewModel("x"))
	out, err := renderer.Render(testsupport.Context(), item.Snapshot(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "custom-output" {
		t.Fatalf("unexpected output: %s", out)
	}
	itemData, _ := captured["item"].(map[string]any)
	if itemData["mode"] != "array" {
		t.Fatalf("expected array mode in view data, got %#v", itemData["mode"])
	}
	inputs, _ := captured["inputs"].([]map[string]any)
	if len(inputs) != 1 || inputs[0]["value"] != "x" {
		t.Fatalf("unexpected inputs %#v", captured["inputs"])
	}
}

func TestRenderer_CanceledContext(t *testing.T) {
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := renderer.Render(ctx, formitem.New().Snapshot(), render.RenderOptions{}); err == nil {
		t.Fatalf("expected canceled context to fail")
	}
}

type stubTemplateRenderer struct {
	renderTemplateFunc func(name string, data any, out ...io.Writer) (string, error)
}

func (s *stubTemplateRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	return s.RenderTemplate(name, data, out...)
}

func (s *stubTemplateRenderer) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if s.renderTemplateFunc != nil {
		return s.renderTemplateFunc(name, data, out...)
	}
	return "", nil
}

func (s *stubTemplateRenderer) RenderString(string, any, ...io.Writer) (string, error) {
	return "", nil
}

func (s *stubTemplateRenderer) RegisterFilter(string, func(input any, param any) (any, error)) error {
	return nil
}

func (s *stubTemplateRenderer) GlobalContext(any) error {
	return nil
}
