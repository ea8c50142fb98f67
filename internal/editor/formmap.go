// internal/editor/formmap.go
//
// Mapping between block content and flat edit-form values.
//
// Context
// -------
// The editor's per-block forms are declared in YAML and submit flat
// name/value pairs.  Prefill flattens a block's content into those
// pairs for rendering; ApplyForm does the reverse, building the new
// content value from validated form values.  Only known types map;
// blocks of unknown type are not editable through forms and keep their
// raw content untouched.
package editor

import (
	"encoding/json"

	"github.com/gestularia/gestularia/internal/content"
)

// Prefill flattens a block's content into form values keyed by field
// name.  Unknown types yield nil.
func Prefill(b content.Block) map[string]string {
	switch b.Type {
	case content.TypeHeading, content.TypeParagraph:
		return map[string]string{"text": b.Text()}

	case content.TypeImage:
		img := b.Image()
		return map[string]string{"src": img.Src, "alt": img.Alt}

	case content.TypeHero:
		h := b.Hero()
		return map[string]string{
			"heading":    h.Heading,
			"subheading": h.Subheading,
			"image":      h.Image,
			"vAlign":     h.Styles.VerticalAlignment,
			"tAlign":     h.Styles.TextAlignment,
		}

	case content.TypeFeatures:
		f := b.Features()
		return map[string]string{"heading": f.Heading, "subheading": f.Subheading}

	case content.TypeCTA:
		c := b.CTA()
		return map[string]string{
			"heading":    c.Heading,
			"subheading": c.Subheading,
			"buttonText": c.ButtonText,
			"buttonHref": c.ButtonHref,
		}
	}
	return nil
}

// ApplyForm builds the block's new content from validated form values.
// Fields absent from vals keep the submitted zero value; structures the
// form does not cover (the features list) are carried over from the
// existing block.  ok is false for types without an edit form.
func ApplyForm(b content.Block, vals map[string]string) (json.RawMessage, bool) {
	switch b.Type {
	case content.TypeHeading, content.TypeParagraph:
		return content.RawString(vals["text"]), true

	case content.TypeImage:
		return content.RawValue(content.ImageContent{
			Src: vals["src"],
			Alt: vals["alt"],
		}), true

	case content.TypeHero:
		return content.RawValue(content.HeroContent{
			Heading:    vals["heading"],
			Subheading: vals["subheading"],
			Image:      vals["image"],
			Styles: content.HeroStyles{
				VerticalAlignment: vals["vAlign"],
				TextAlignment:     vals["tAlign"],
			},
		}), true

	case content.TypeFeatures:
		f := b.Features()
		f.Heading = vals["heading"]
		f.Subheading = vals["subheading"]
		return content.RawValue(f), true

	case content.TypeCTA:
		return content.RawValue(content.CTAContent{
			Heading:    vals["heading"],
			Subheading: vals["subheading"],
			ButtonText: vals["buttonText"],
			ButtonHref: vals["buttonHref"],
		}), true
	}
	return nil, false
}
