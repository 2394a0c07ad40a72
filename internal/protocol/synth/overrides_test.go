package synth

import (
	"testing"

	"github.com/filiphsps/MiNET-protocol-converter/internal/protocol/schema"
	"github.com/filiphsps/MiNET-protocol-converter/internal/testutil/testlog"
	"github.com/google/go-cmp/cmp"
)

var orderedMapComparer = cmp.Comparer(func(a, b *schema.OrderedMap) bool {
	if a.Len() != b.Len() {
		return false
	}
	ak, bk := a.Keys(), b.Keys()
	for i := range ak {
		if ak[i] != bk[i] {
			return false
		}
		av, _ := a.Get(ak[i])
		bv, _ := b.Get(bk[i])
		if av != bv {
			return false
		}
	}
	return true
})

func TestOverrideFieldsText(t *testing.T) {
	testlog.Start(t)
	want := []schema.Field{
		{Name: "type", Type: schema.I8},
		{Name: "source", Type: schema.Switch{
			CompareTo: "type",
			Fields:    schema.NewOrderedMap("1", "string", "3", "string"),
			Default:   schema.Void,
		}},
		{Name: "message", Type: schema.Switch{
			CompareTo: "type",
			Fields: schema.NewOrderedMap(
				"0", "string", "1", "string", "2", "string",
				"3", "string", "4", "string", "5", "string",
			),
			Default: schema.Void,
		}},
	}
	got := OverrideFields("text")
	if diff := cmp.Diff(want, got, orderedMapComparer); diff != "" {
		t.Fatalf("text override mismatch (-want +got):\n%s", diff)
	}
}

func TestOverrideFieldsGameLogin(t *testing.T) {
	testlog.Start(t)
	want := []schema.Field{
		{Name: "protocol", Type: schema.I32},
		{Name: "edition", Type: schema.I8},
		{Name: "body", Type: schema.Buffer{CountType: schema.Varint}},
	}
	if diff := cmp.Diff(want, OverrideFields(NameGameLogin)); diff != "" {
		t.Fatalf("login override mismatch (-want +got):\n%s", diff)
	}
}

func TestOverrideFieldsOtherNamesEmpty(t *testing.T) {
	testlog.Start(t)
	for _, name := range []string{"move_player", "login", "", "Text"} {
		if got := OverrideFields(name); len(got) != 0 {
			t.Fatalf("OverrideFields(%q) = %+v, expected none", name, got)
		}
	}
}

func TestOverrideFieldsReturnsFreshSlices(t *testing.T) {
	testlog.Start(t)
	first := OverrideFields(NameText)
	first[0].Name = "mutated"
	first[1].Type.(schema.Switch).Fields.Set("9", "lstring")

	second := OverrideFields(NameText)
	if second[0].Name != "type" {
		t.Fatalf("override slice shared between calls")
	}
	if _, ok := second[1].Type.(schema.Switch).Fields.Get("9"); ok {
		t.Fatalf("override switch table shared between calls")
	}
}
