package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeJSON_ArrayNumberModel(t *testing.T) {
	doc := []byte(`{
  "name": "limit",
  "required": true,
  "value": [2, 4.5, "8"],
  "schema": {
    "isArray": true,
    "inputType": "number",
    "minimum": 2,
    "maximum": 20,
    "inputLabel": "Limit"
  }
}`)

	vm, err := DecodeJSON(doc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := &ViewModel{
		Name:     "limit",
		Required: true,
		Value:    List("2", "4.5", "8"),
		Schema: Schema{
			IsArray:    true,
			InputType:  "number",
			Minimum:    FloatPtr(2),
			Maximum:    FloatPtr(20),
			InputLabel: "Limit",
		},
	}
	if diff := cmp.Diff(want, vm, cmp.Comparer(func(a, b Value) bool { return a.Equal(b) })); diff != "" {
		t.Fatalf("view model mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeYAML_EnumModel(t *testing.T) {
	doc := []byte(`
name: fruit
value: apple
schema:
  isEnum: true
  isNillable: true
  inputLabel: Fruit
  enum: [apple, banana]
`)

	vm, err := Decode("fruit.yaml", doc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !vm.Schema.IsEnum || !vm.Schema.IsNillable {
		t.Fatalf("expected enum nillable schema, got %+v", vm.Schema)
	}
	if got := vm.Value; !got.Equal(String("apple")) {
		t.Fatalf("expected value apple, got %v", got)
	}
	if diff := cmp.Diff([]string{"apple", "banana"}, vm.Schema.Enum); diff != "" {
		t.Fatalf("enum mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_SniffsJSONWithoutExtension(t *testing.T) {
	vm, err := Decode("stdin", []byte(` {"schema": {"isBool": true}, "value": false}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !vm.Schema.IsBool {
		t.Fatalf("expected boolean schema")
	}
	if vm.Value.Kind() != KindBool || vm.Value.Bool() {
		t.Fatalf("expected boolean false value, got %v", vm.Value)
	}
}

func TestDecode_EmptyDocument(t *testing.T) {
	if _, err := Decode("empty.json", []byte("  ")); err == nil {
		t.Fatalf("expected error for empty document")
	}
}

func TestValue_NormalizeAndSentinel(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want Value
	}{
		{name: "null", raw: nil, want: String("")},
		{name: "undefined", raw: "undefined", want: String("")},
		{name: "nil sentinel", raw: "nil", want: Nil()},
		{name: "number", raw: float64(3), want: String("3")},
		{name: "bool", raw: true, want: Bool(true)},
		{name: "list", raw: []any{"a", float64(1), true}, want: List("a", "1", "true")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromAny(tc.raw)
			if err != nil {
				t.Fatalf("from any: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("want %#v, got %#v", tc.want, got)
			}
		})
	}
}

func TestValue_IsEmpty(t *testing.T) {
	if !String("").IsEmpty() || !Bool(false).IsEmpty() || !List().IsEmpty() {
		t.Fatalf("expected zero members to be empty")
	}
	if String("x").IsEmpty() || Bool(true).IsEmpty() || List("").IsEmpty() || Nil().IsEmpty() {
		t.Fatalf("expected populated members to be non-empty")
	}
}

func TestParseValue(t *testing.T) {
	if got := ParseValue(`["a","b"]`); !got.Equal(List("a", "b")) {
		t.Fatalf("expected list, got %#v", got)
	}
	if got := ParseValue(`not json`); !got.Equal(String("not json")) {
		t.Fatalf("expected verbatim string, got %#v", got)
	}
	if got := ParseValue(`false`); !got.Equal(Bool(false)) {
		t.Fatalf("expected boolean, got %#v", got)
	}
}

func TestValue_MarshalJSON(t *testing.T) {
	data, err := Nil().MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"nil"` {
		t.Fatalf("expected nil sentinel string, got %s", data)
	}
}

func TestViewModel_Clone(t *testing.T) {
	vm := &ViewModel{Schema: Schema{Enum: []string{"a"}, MinLength: IntPtr(1)}}
	clone := vm.Clone()
	clone.Schema.Enum[0] = "b"
	*clone.Schema.MinLength = 5
	if vm.Schema.Enum[0] != "a" || *vm.Schema.MinLength != 1 {
		t.Fatalf("clone shares state with original")
	}
}
