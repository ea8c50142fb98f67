// internal/block/render.go
//
// Read-only HTML renderers, one per built-in block type.
//
// Context
// -------
// Rendering is a pure mapping from block value to markup: no I/O, no
// shared state, identical input always yields identical output.  The
// public site page and the editor's live preview call the exact same
// functions, so an author always sees what visitors will see.
//
// All user-controlled strings pass through html.EscapeString; URLs land
// in attributes and are escaped the same way.  Markup carries the minima
// theme's utility classes.
package block

import (
	"bytes"
	"html"
	"html/template"

	"github.com/gestularia/gestularia/internal/content"
)

// RenderPrimitive renders only the primitive types the fallback template
// understands: heading, paragraph, and image.  Anything else is nothing.
func RenderPrimitive(b content.Block) template.HTML {
	switch b.Type {
	case content.TypeHeading:
		return template.HTML("<h2>" + html.EscapeString(b.Text()) + "</h2>")
	case content.TypeParagraph:
		return template.HTML("<p>" + html.EscapeString(b.Text()) + "</p>")
	case content.TypeImage:
		img := b.Image()
		return template.HTML(`<img src="` + html.EscapeString(img.Src) + `" alt="` + html.EscapeString(img.Alt) + `">`)
	}
	return ""
}

func renderHeading(b content.Block) template.HTML {
	return template.HTML(`<h1 class="block-heading">` + html.EscapeString(b.Text()) + `</h1>`)
}

func renderParagraph(b content.Block) template.HTML {
	// The class keeps white-space: pre-wrap so author line breaks survive.
	return template.HTML(`<p class="block-paragraph">` + html.EscapeString(b.Text()) + `</p>`)
}

func renderImage(b content.Block) template.HTML {
	img := b.Image()
	return template.HTML(`<img class="block-image" src="` + html.EscapeString(img.Src) +
		`" alt="` + html.EscapeString(img.Alt) + `">`)
}

// Alignment class tables.  Unrecognised values fall back to center so a
// document edited by a newer build still lays out sanely.
var (
	heroVAlign = map[string]string{"start": "hero-v-start", "center": "hero-v-center", "end": "hero-v-end"}
	heroTAlign = map[string]string{"left": "hero-t-left", "center": "hero-t-center", "right": "hero-t-right"}
)

func alignClass(table map[string]string, key string) string {
	if c, ok := table[key]; ok {
		return c
	}
	return table["center"]
}

func renderHero(b content.Block) template.HTML {
	h := b.Hero()

	var buf bytes.Buffer
	buf.WriteString(`<section class="block-hero ` + alignClass(heroVAlign, h.Styles.VerticalAlignment) + `">`)
	buf.WriteString(`<div class="hero-backdrop" style="background-image:url('` + html.EscapeString(h.Image) + `')"></div>`)
	buf.WriteString(`<div class="hero-overlay"></div>`)
	buf.WriteString(`<div class="hero-body ` + alignClass(heroTAlign, h.Styles.TextAlignment) + `">`)
	buf.WriteString(`<h1>` + html.EscapeString(h.Heading) + `</h1>`)
	buf.WriteString(`<p>` + html.EscapeString(h.Subheading) + `</p>`)
	buf.WriteString(`</div></section>`)
	return template.HTML(buf.String())
}

func renderFeatures(b content.Block) template.HTML {
	f := b.Features()

	var buf bytes.Buffer
	buf.WriteString(`<section class="block-features">`)
	buf.WriteString(`<h2>` + html.EscapeString(f.Heading) + `</h2>`)
	buf.WriteString(`<p class="features-subheading">` + html.EscapeString(f.Subheading) + `</p>`)
	buf.WriteString(`<div class="features-grid">`)
	for _, feat := range f.Features {
		buf.WriteString(`<div class="feature">`)
		buf.WriteString(`<div class="feature-icon">`)
		buf.WriteString(string(Icon(feat.Icon)))
		buf.WriteString(`</div>`)
		buf.WriteString(`<h3>` + html.EscapeString(feat.Title) + `</h3>`)
		buf.WriteString(`<p>` + html.EscapeString(feat.Description) + `</p>`)
		buf.WriteString(`</div>`)
	}
	buf.WriteString(`</div></section>`)
	return template.HTML(buf.String())
}

func renderCTA(b content.Block) template.HTML {
	c := b.CTA()

	var buf bytes.Buffer
	buf.WriteString(`<section class="block-cta">`)
	buf.WriteString(`<h2>` + html.EscapeString(c.Heading) + `</h2>`)
	buf.WriteString(`<p>` + html.EscapeString(c.Subheading) + `</p>`)
	buf.WriteString(`<a class="cta-button" href="` + html.EscapeString(c.ButtonHref) + `">` +
		html.EscapeString(c.ButtonText) + `</a>`)
	buf.WriteString(`</section>`)
	return template.HTML(buf.String())
}
