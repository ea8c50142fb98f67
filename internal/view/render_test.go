// internal/view/render_test.go
//
// Render tests for the embedded layouts.
//
// Run: go test ./internal/view -v

package view

import (
	"strings"
	"testing"

	"github.com/gestularia/gestularia/internal/content"
	"github.com/gestularia/gestularia/internal/head"
)

func testPage(t *testing.T) *Page {
	t.Helper()
	doc := content.Normalize(nil, "acme")
	hb := head.New()
	hb.SetTitle("Bienvenido a acme")
	return &Page{
		Head:     hb,
		SiteName: "acme",
		Header:   doc.Header,
		Blocks:   doc.Blocks,
	}
}

func TestRender_Minima(t *testing.T) {
	e := NewEngine()
	out, err := e.RenderToString(LayoutMinima, testPage(t))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		"<title>Bienvenido a acme</title>",
		`class="site-logo"`,
		">Inicio</a>",
		"Bienvenido a acme</h1>",
		"El contenido de este sitio aún no ha sido configurado.",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRender_UnknownTemplateUsesFallback(t *testing.T) {
	e := NewEngine()
	out, err := e.RenderToString("retired-theme", testPage(t))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	if strings.Contains(html, "site-logo") {
		t.Fatal("fallback layout must not carry minima chrome")
	}
	if !strings.Contains(html, "Bienvenido a acme</h2>") {
		t.Error("fallback must render primitive headings")
	}
}

func TestRender_BlankTemplateUsesFallback(t *testing.T) {
	e := NewEngine()
	if layoutFor("") != layoutFallback {
		t.Fatal("blank template id must map to fallback")
	}
	if _, err := e.RenderToString("", testPage(t)); err != nil {
		t.Fatalf("render: %v", err)
	}
}

func TestRender_EscapesUserContent(t *testing.T) {
	e := NewEngine()
	p := testPage(t)
	p.Header.LogoText = `<script>alert(1)</script>`

	out, err := e.RenderToString(LayoutMinima, p)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "<script>alert(1)</script>") {
		t.Fatal("logo text must be escaped")
	}
}

func TestRender_CachesParsedLayouts(t *testing.T) {
	e := NewEngine()
	for i := 0; i < 3; i++ {
		if _, err := e.RenderToString(LayoutMinima, testPage(t)); err != nil {
			t.Fatalf("render %d: %v", i, err)
		}
	}
	if e.lru.Len() != 1 {
		t.Fatalf("lru holds %d entries, want 1", e.lru.Len())
	}
}
