// internal/site/validate_test.go
//
// Unit-tests for site-name validation and template seeding.
//
// Run: go test ./internal/site -v

package site

import (
	"errors"
	"testing"

	"github.com/gestularia/gestularia/internal/apperror"
	"github.com/gestularia/gestularia/internal/content"
)

func TestSanitize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"MiSitio", "misitio"},
		{"mi sitio!", "misitio"},
		{"café-23", "caf-23"},
		{"shop", "shop"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.in); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{"shop", "shop", nil},
		{"  my-site-9  ", "my-site-9", nil},
		{"SHOP", "", apperror.ErrValidation},        // uppercase rejected, not folded
		{"MiSitio", "", apperror.ErrValidation},     // mixed case rejected
		{"ab", "", apperror.ErrValidation},          // too short
		{"mi sitio", "", apperror.ErrValidation},    // space stripped ≠ raw
		{"tienda.web", "", apperror.ErrValidation},  // dot stripped ≠ raw
		{"ñandu", "", apperror.ErrValidation},       // non-ascii stripped
		{"", "", apperror.ErrValidation},
	}
	for _, tt := range tests {
		got, err := ValidateName(tt.in)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateName(%q) err = %v, want %v", tt.in, err, tt.wantErr)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ValidateName(%q) = (%q, %v), want (%q, nil)", tt.in, got, err, tt.want)
		}
	}
}

func TestInitialContent(t *testing.T) {
	if _, ok := InitialContent(TemplateNone, "acme"); ok {
		t.Fatal("blank template must seed nothing")
	}
	if _, ok := InitialContent("nope", "acme"); ok {
		t.Fatal("unknown template must seed nothing")
	}

	raw, ok := InitialContent(TemplateMinima, "acme")
	if !ok {
		t.Fatal("minima must seed a document")
	}

	doc := content.Normalize(raw, "acme")
	if doc.Header.LogoText != "acme" {
		t.Fatalf("logo text = %q", doc.Header.LogoText)
	}
	wantTypes := []string{content.TypeHero, content.TypeFeatures, content.TypeCTA}
	if len(doc.Blocks) != len(wantTypes) {
		t.Fatalf("seeded %d blocks, want %d", len(doc.Blocks), len(wantTypes))
	}
	for i, b := range doc.Blocks {
		if b.Type != wantTypes[i] {
			t.Errorf("block %d type = %q, want %q", i, b.Type, wantTypes[i])
		}
		if b.ID == "" {
			t.Errorf("block %d has no id", i)
		}
	}
}

func TestValidTemplate(t *testing.T) {
	if !ValidTemplate(TemplateNone) || !ValidTemplate(TemplateMinima) {
		t.Fatal("known templates rejected")
	}
	if ValidTemplate("premium") {
		t.Fatal("unknown template accepted")
	}
}
