// internal/editor/formmap_test.go
//
// Run: go test ./internal/editor -v

package editor

import (
	"testing"

	"github.com/gestularia/gestularia/internal/block"
	"github.com/gestularia/gestularia/internal/content"
)

func TestPrefillRoundTrip_Hero(t *testing.T) {
	b, _ := block.NewDefault(content.TypeHero)

	vals := Prefill(b)
	if vals["heading"] == "" || vals["vAlign"] != "center" {
		t.Fatalf("prefill = %+v", vals)
	}

	vals["heading"] = "Nuevo Título"
	vals["tAlign"] = "left"
	raw, ok := ApplyForm(b, vals)
	if !ok {
		t.Fatal("hero must be form-editable")
	}

	b.Content = raw
	h := b.Hero()
	if h.Heading != "Nuevo Título" || h.Styles.TextAlignment != "left" {
		t.Fatalf("applied hero = %+v", h)
	}
	if h.Image == "" {
		t.Fatal("image carried through prefill must survive")
	}
}

func TestApplyForm_FeaturesKeepsItems(t *testing.T) {
	b, _ := block.NewDefault(content.TypeFeatures)
	before := b.Features()

	raw, ok := ApplyForm(b, map[string]string{
		"heading":    "Ventajas",
		"subheading": "Por qué elegirnos",
	})
	if !ok {
		t.Fatal("features must be form-editable")
	}

	b.Content = raw
	after := b.Features()
	if after.Heading != "Ventajas" {
		t.Fatalf("heading = %q", after.Heading)
	}
	if len(after.Features) != len(before.Features) {
		t.Fatal("feature items must be preserved by the form")
	}
}

func TestApplyForm_TextBlocks(t *testing.T) {
	b, _ := block.NewDefault(content.TypeHeading)
	raw, ok := ApplyForm(b, map[string]string{"text": "Hola"})
	if !ok {
		t.Fatal("heading must be form-editable")
	}
	b.Content = raw
	if b.Text() != "Hola" {
		t.Fatalf("text = %q", b.Text())
	}
}

func TestApplyForm_UnknownType(t *testing.T) {
	b := content.Block{ID: "x", Type: "widget", Content: content.RawString("raw")}
	if _, ok := ApplyForm(b, nil); ok {
		t.Fatal("unknown types must not be form-editable")
	}
	if Prefill(b) != nil {
		t.Fatal("unknown types must not prefill")
	}
}
