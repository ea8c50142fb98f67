// internal/site/template.go
//
// Site templates: the starter documents offered at creation time.
//
// Context
// -------
// A template is nothing more than a canonical page document seeded into
// site_content when the site is created.  Sites created without a
// template get no content row at all; the renderer falls back to the
// default document in that case, so both paths end in a working page.
package site

import (
	"github.com/gestularia/gestularia/internal/block"
	"github.com/gestularia/gestularia/internal/content"
)

// Template describes one starter option shown in the create-site form.
const (
	TemplateNone   = ""
	TemplateMinima = "minima"
)

// Template is a starter option for new sites.
type Template struct {
	ID          string
	Name        string
	Description string
}

// Templates lists the selectable starters, blank first.
func Templates() []Template {
	return []Template{
		{ID: TemplateNone, Name: "En Blanco", Description: "Una página vacía para empezar desde cero."},
		{ID: TemplateMinima, Name: "Minima", Description: "Página de aterrizaje con héroe, características y llamada a la acción."},
	}
}

// ValidTemplate reports whether id names a known template (blank counts).
func ValidTemplate(id string) bool {
	for _, t := range Templates() {
		if t.ID == id {
			return true
		}
	}
	return false
}

// InitialContent builds the seed document for a template.  ok is false
// when the template seeds nothing (blank or unknown), in which case no
// site_content row should be written.
func InitialContent(templateID, siteName string) ([]byte, bool) {
	if templateID != TemplateMinima {
		return nil, false
	}

	doc := &content.PageDocument{
		Header: content.Header{
			LogoText: siteName,
			NavLinks: []content.NavLink{
				{ID: "1", Text: "Inicio", Href: "/"},
			},
		},
	}
	for _, tag := range []string{
		content.TypeHero,
		content.TypeFeatures,
		content.TypeCTA,
	} {
		b, ok := block.NewDefault(tag)
		if !ok {
			continue
		}
		doc.Blocks = append(doc.Blocks, b)
	}

	raw, err := doc.Marshal()
	if err != nil {
		return nil, false
	}
	return raw, true
}
