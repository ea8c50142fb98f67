// internal/content/document.go
//
// Canonical page-document model.
//
// Context
// -------
// Every tenant site is described by exactly one PageDocument: a header
// (logo text plus ordered nav links) and an ordered list of typed blocks.
// The document is stored as one JSON value per site and has changed shape
// over time; internal/content owns every historical variant and converges
// them in normalize.go.  No other package inspects raw stored JSON.
//
// Block content is kept as json.RawMessage so that block types this build
// does not recognise survive a load → edit → save cycle byte-for-byte.
// Typed accessors decode the raw content for the renderer and editor; they
// return zero values on malformed content, never an error, because stored
// documents must always render something.
//
// Notes
// -----
// • JSON field names are camelCase to match the persisted documents.
// • Oxford commas, two spaces after periods.
package content

import (
	"bytes"
	"encoding/json"
)

// Block type tags.  Adding a type means adding a content struct here and a
// registration in internal/block.
const (
	TypeHeading   = "heading"
	TypeParagraph = "paragraph"
	TypeImage     = "image"
	TypeHero      = "hero"
	TypeFeatures  = "features"
	TypeCTA       = "cta"
)

// NavLink is one entry in the header navigation.  ID is unique within the
// header and stable across edits.
type NavLink struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Href string `json:"href"`
}

// Header holds the site-wide chrome rendered above the blocks.
type Header struct {
	LogoText string    `json:"logoText"`
	NavLinks []NavLink `json:"navLinks"`
}

// Block is one typed unit of page content.  ID is assigned at creation and
// never reassigned; it is the sole identity for update, delete, and render
// keys.  Content stays raw so unknown types round-trip unchanged.
type Block struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Content json.RawMessage `json:"content"`
}

// PageDocument is the canonical {header, blocks} shape all stored variants
// converge to.
type PageDocument struct {
	Header Header  `json:"header"`
	Blocks []Block `json:"blocks"`
}

//
// Typed block content
//

// HeroStyles controls text placement inside a hero block.
type HeroStyles struct {
	TextAlignment     string `json:"textAlignment"`     // left | center | right
	VerticalAlignment string `json:"verticalAlignment"` // start | center | end
}

type HeroContent struct {
	Heading    string     `json:"heading"`
	Subheading string     `json:"subheading"`
	Image      string     `json:"image"`
	Styles     HeroStyles `json:"styles"`
}

type ImageContent struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Feature is one entry inside a features block.  Icon is a symbolic name
// resolved against the closed icon table in internal/block.
type Feature struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type FeaturesContent struct {
	Heading    string    `json:"heading"`
	Subheading string    `json:"subheading"`
	Features   []Feature `json:"features"`
}

type CTAContent struct {
	Heading    string `json:"heading"`
	Subheading string `json:"subheading"`
	ButtonText string `json:"buttonText"`
	ButtonHref string `json:"buttonHref"`
}

//
// Accessors
//

// Text decodes string content (heading and paragraph blocks).  Malformed
// content yields "".
func (b Block) Text() string {
	var s string
	_ = json.Unmarshal(b.Content, &s)
	return s
}

// Image decodes image content; zero value on malformed content.
func (b Block) Image() ImageContent {
	var c ImageContent
	_ = json.Unmarshal(b.Content, &c)
	return c
}

// Hero decodes hero content; zero value on malformed content.
func (b Block) Hero() HeroContent {
	var c HeroContent
	_ = json.Unmarshal(b.Content, &c)
	return c
}

// Features decodes features content; zero value on malformed content.
func (b Block) Features() FeaturesContent {
	var c FeaturesContent
	_ = json.Unmarshal(b.Content, &c)
	return c
}

// CTA decodes call-to-action content; zero value on malformed content.
func (b Block) CTA() CTAContent {
	var c CTAContent
	_ = json.Unmarshal(b.Content, &c)
	return c
}

// RawString wraps s as JSON block content.
func RawString(s string) json.RawMessage {
	raw, _ := json.Marshal(s)
	return raw
}

// RawValue wraps any marshalable value as block content.
func RawValue(v any) json.RawMessage {
	raw, _ := json.Marshal(v)
	return raw
}

//
// Document helpers
//

// FirstHeading returns the content of the first heading block, if any.
// Used to derive the page <title>.
func (d *PageDocument) FirstHeading() (string, bool) {
	for _, b := range d.Blocks {
		if b.Type == TypeHeading {
			if t := b.Text(); t != "" {
				return t, true
			}
		}
	}
	return "", false
}

// Marshal emits the canonical {header, blocks} JSON.  Nil slices are
// normalised to empty arrays first so Marshal ∘ Normalize is stable.
func (d *PageDocument) Marshal() ([]byte, error) {
	if d.Header.NavLinks == nil {
		d.Header.NavLinks = []NavLink{}
	}
	if d.Blocks == nil {
		d.Blocks = []Block{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
