package render_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-propertyform/pkg/formitem"
	"github.com/goliatone/go-propertyform/pkg/model"
	"github.com/goliatone/go-propertyform/pkg/render"
)

type stubTranslator map[string]string

func (t stubTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	if msg, ok := t[key]; ok {
		return msg, nil
	}
	return "", errors.New("missing translation")
}

func TestLocalizeStrings_DefaultsWithoutTranslator(t *testing.T) {
	got := render.LocalizeStrings("limit", render.RenderOptions{})
	want := render.DefaultStrings("limit")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("strings mismatch (-want +got):\n%s", diff)
	}
	if got.Invalid != "limit is invalid. Check documentation." {
		t.Fatalf("unexpected invalid message %q", got.Invalid)
	}
}

func TestLocalizeSnapshot_TranslatesBuiltInStrings(t *testing.T) {
	item := formitem.New(formitem.WithName("tags"))
	item.SetModel(&model.ViewModel{Schema: model.Schema{IsArray: true, Required: true}})
	item.AddEmptyArrayValue()
	snap := item.Snapshot()

	strs := render.LocalizeSnapshot(&snap, render.RenderOptions{
		Locale: "es",
		Translator: stubTranslator{
			render.KeyItemLabel:       "Valor",
			render.KeyRequiredWarning: "Obligatorio",
		},
	})

	if strs.ItemLabel != "Valor" {
		t.Fatalf("expected translated item label, got %q", strs.ItemLabel)
	}
	if strs.Nil != "Nil" {
		t.Fatalf("expected missing key to fall back, got %q", strs.Nil)
	}
	if snap.Rows[0].Label != "Valor" {
		t.Fatalf("expected row label translated, got %q", snap.Rows[0].Label)
	}
	if snap.Rows[0].InfoMessage != "Obligatorio" || snap.EntryWarnings[0] != "Obligatorio" {
		t.Fatalf("expected warnings translated, got %q / %q", snap.Rows[0].InfoMessage, snap.EntryWarnings[0])
	}
}

func TestLocalizeSnapshot_KeepsSchemaLabels(t *testing.T) {
	item := formitem.New()
	item.SetModel(&model.ViewModel{Schema: model.Schema{IsArray: true, InputLabel: "Tag"}})
	item.AddEmptyArrayValue()
	snap := item.Snapshot()

	render.LocalizeSnapshot(&snap, render.RenderOptions{Translator: stubTranslator{render.KeyItemLabel: "Valor"}})
	if snap.Rows[0].Label != "Tag" {
		t.Fatalf("expected schema label preserved, got %q", snap.Rows[0].Label)
	}
}

func TestLocalizeStrings_OnMissingHandler(t *testing.T) {
	var missing []string
	strs := render.LocalizeStrings("x", render.RenderOptions{
		OnMissing: func(_ string, key string, _ []any, err error) string {
			if !errors.Is(err, render.ErrMissingTranslator) {
				t.Fatalf("expected ErrMissingTranslator, got %v", err)
			}
			missing = append(missing, key)
			return "?" + key
		},
	})
	if strs.Nil != "?"+render.KeyNil {
		t.Fatalf("expected handler output, got %q", strs.Nil)
	}
	if len(missing) != 7 {
		t.Fatalf("expected every key reported, got %v", missing)
	}
}
