package propertyform

import (
	"context"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	pkgloader "github.com/goliatone/go-propertyform/pkg/loader"
	"github.com/goliatone/go-propertyform/pkg/model"
	"github.com/goliatone/go-propertyform/pkg/orchestrator"
)

func TestEmbeddedAssetsContainsStylesheet(t *testing.T) {
	data, err := fs.ReadFile(EmbeddedAssets(), "propertyform.css")
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected non-empty stylesheet")
	}
}

func TestEmbeddedTemplatesContainsItem(t *testing.T) {
	if _, err := fs.Stat(EmbeddedTemplates(), "templates/item.tmpl"); err != nil {
		t.Fatalf("expected item template: %v", err)
	}
}

func TestGenerateHTML(t *testing.T) {
	files := fstest.MapFS{
		"color.yaml": {Data: []byte("name: color\nvalue: red\nschema:\n  isEnum: true\n  enum: [red, green]\n")},
	}
	out, err := GenerateHTML(context.Background(), pkgloader.SourceFromFS("color.yaml"), "vanilla", orchestrator.WithFileSystem(files))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), `value="green"`) {
		t.Fatalf("expected enum options in output:\n%s", out)
	}
}

func TestGenerateHTMLFromViewModel(t *testing.T) {
	vm := &ViewModel{Value: model.String("hello")}
	out, err := GenerateHTMLFromViewModel(context.Background(), vm, Props{Name: "greeting"}, "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), `name="greeting"`) {
		t.Fatalf("expected item name in output:\n%s", out)
	}
}

func TestNewItem(t *testing.T) {
	item := NewItem(&ViewModel{Value: model.List("a"), Schema: model.Schema{IsArray: true}})
	if got := len(item.Entries()); got != 1 {
		t.Fatalf("expected one entry, got %d", got)
	}
}
