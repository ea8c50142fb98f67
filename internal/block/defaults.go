// internal/block/defaults.go
//
// Default content for every built-in block type.
//
// The copy and stock image URLs match what the product has always seeded,
// so freshly added blocks look identical across editor versions.  Block
// and feature IDs come from xid: short, URL-safe, and sortable by
// creation time.
package block

import (
	"github.com/rs/xid"

	"github.com/gestularia/gestularia/internal/content"
)

// Stock Unsplash assets used by image and hero defaults.
const (
	defaultImageURL = "https://images.unsplash.com/photo-1723176161476-de8b85843422?q=80&w=2592"
	defaultHeroURL  = "https://images.unsplash.com/photo-1722513322430-5627798a3788?q=80&w=2574"
)

func newID() string { return xid.New().String() }

func init() {
	Register(Definition{
		Type:   content.TypeHeading,
		Label:  "Título",
		FormID: "editor/heading",
		NewDefault: func() content.Block {
			return content.Block{
				ID:      newID(),
				Type:    content.TypeHeading,
				Content: content.RawString("Nuevo Título"),
			}
		},
		Render: renderHeading,
	})

	Register(Definition{
		Type:   content.TypeParagraph,
		Label:  "Párrafo",
		FormID: "editor/paragraph",
		NewDefault: func() content.Block {
			return content.Block{
				ID:      newID(),
				Type:    content.TypeParagraph,
				Content: content.RawString("Este es un nuevo párrafo."),
			}
		},
		Render: renderParagraph,
	})

	Register(Definition{
		Type:   content.TypeImage,
		Label:  "Imagen",
		FormID: "editor/image",
		NewDefault: func() content.Block {
			return content.Block{
				ID:   newID(),
				Type: content.TypeImage,
				Content: content.RawValue(content.ImageContent{
					Src: defaultImageURL,
					Alt: "Descripción de imagen",
				}),
			}
		},
		Render: renderImage,
	})

	Register(Definition{
		Type:   content.TypeHero,
		Label:  "Hero",
		FormID: "editor/hero",
		NewDefault: func() content.Block {
			return content.Block{
				ID:   newID(),
				Type: content.TypeHero,
				Content: content.RawValue(content.HeroContent{
					Heading:    "Título Impactante",
					Subheading: "Un subtítulo que engancha al lector.",
					Image:      defaultHeroURL,
					Styles: content.HeroStyles{
						TextAlignment:     "center",
						VerticalAlignment: "center",
					},
				}),
			}
		},
		Render: renderHero,
	})

	Register(Definition{
		Type:   content.TypeFeatures,
		Label:  "Features",
		FormID: "editor/features",
		NewDefault: func() content.Block {
			return content.Block{
				ID:   newID(),
				Type: content.TypeFeatures,
				Content: content.RawValue(content.FeaturesContent{
					Heading:    "Características Principales",
					Subheading: "Descubre todo lo que nuestro producto puede hacer por ti.",
					Features: []content.Feature{
						{ID: newID(), Icon: "Rocket", Title: "Desarrollo Rápido", Description: "Lanza tu sitio en minutos, no en meses."},
						{ID: newID(), Icon: "ShieldCheck", Title: "Seguro y Confiable", Description: "Con la mejor seguridad para proteger tus datos."},
						{ID: newID(), Icon: "Smartphone", Title: "Totalmente Responsivo", Description: "Tu sitio se verá increíble en cualquier dispositivo."},
					},
				}),
			}
		},
		Render: renderFeatures,
	})

	Register(Definition{
		Type:   content.TypeCTA,
		Label:  "CTA",
		FormID: "editor/cta",
		NewDefault: func() content.Block {
			return content.Block{
				ID:   newID(),
				Type: content.TypeCTA,
				Content: content.RawValue(content.CTAContent{
					Heading:    "¿Listo para Empezar?",
					Subheading: "Únete a miles de usuarios que ya están construyendo su futuro con nosotros.",
					ButtonText: "Crear Mi Sitio Ahora",
					ButtonHref: "#",
				}),
			}
		},
		Render: renderCTA,
	})
}

// NewFeature seeds one extra entry for the features edit form.
func NewFeature() content.Feature {
	return content.Feature{
		ID:          newID(),
		Icon:        "Check",
		Title:       "Nueva Característica",
		Description: "Describe este punto clave.",
	}
}

// NewNavLink seeds a header navigation entry.
func NewNavLink() content.NavLink {
	return content.NavLink{ID: newID(), Text: "Nuevo Enlace", Href: "#"}
}
