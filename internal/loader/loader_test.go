package loader_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-propertyform/internal/loader"
	pkgloader "github.com/goliatone/go-propertyform/pkg/loader"
	"github.com/goliatone/go-propertyform/pkg/model"
)

func TestLoader_FSSourceDecodesYAML(t *testing.T) {
	files := fstest.MapFS{
		"models/flag.yaml": {Data: []byte("required: true\nschema:\n  isBool: true\n  inputLabel: Flag\n")},
	}
	l := loader.New(pkgloader.NewOptions(pkgloader.WithFileSystem(files)))

	doc, err := l.Load(context.Background(), pkgloader.SourceFromFS("models/flag.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	vm, err := doc.ViewModel()
	if err != nil {
		t.Fatalf("view model: %v", err)
	}
	want := model.Schema{IsBool: true, InputLabel: "Flag"}
	if diff := cmp.Diff(want, vm.Schema); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
	if !vm.Required {
		t.Fatalf("expected required model")
	}
}

func TestLoader_FileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tags.json")
	if err := os.WriteFile(path, []byte(`{"value":["a"],"schema":{"isArray":true}}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := loader.New(pkgloader.Options{}).Load(context.Background(), pkgloader.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Source().Kind() != pkgloader.SourceKindFile {
		t.Fatalf("unexpected source kind %q", doc.Source().Kind())
	}
	vm, err := doc.ViewModel()
	if err != nil {
		t.Fatalf("view model: %v", err)
	}
	if !vm.Value.Equal(model.List("a")) {
		t.Fatalf("unexpected value %v", vm.Value)
	}
}

func TestLoader_Errors(t *testing.T) {
	l := loader.New(pkgloader.Options{})

	if _, err := l.Load(context.Background(), pkgloader.SourceFromFS("x.json")); err == nil {
		t.Fatalf("expected missing fs to fail")
	}
	if _, err := l.Load(context.Background(), nil); err == nil {
		t.Fatalf("expected nil source to fail")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := l.Load(ctx, pkgloader.SourceFromFile("missing.json")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	files := fstest.MapFS{}
	withFS := loader.New(pkgloader.Options{FileSystem: files})
	if _, err := withFS.Load(context.Background(), pkgloader.SourceFromFS("absent.json")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}
