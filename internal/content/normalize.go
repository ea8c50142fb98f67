// internal/content/normalize.go
//
// Stored-shape normalisation.
//
// Context
// -------
// The site_content table has held three shapes over the product's life:
//
//  1. A JSON-encoded *string* wrapping either of the shapes below (an
//     early client double-encoded on save).
//  2. A bare array of blocks — the legacy form, with an implicit header
//     defaulting to the site name.
//  3. The canonical {header, blocks} object.
//
// Normalize converges any of them, plus absent or unparsable content, to
// one PageDocument.  Rules run in order, and the fallback path absorbs
// every failure: a tenant page must always render something, so malformed
// stored content is never surfaced as an error.
//
// Normalize is idempotent under round-trip: for any canonical document d,
// Normalize(d.Marshal()) reproduces d.
package content

import (
	"bytes"
	"encoding/json"
)

// Normalize converts any stored content variant into a canonical
// PageDocument.  fallbackSiteName seeds the header logo text when the
// stored shape carries no header, and names the default greeting.
func Normalize(raw []byte, fallbackSiteName string) *PageDocument {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return defaultDocument(fallbackSiteName)
	}

	// Rule 1: unwrap a JSON-encoded string.  Unwrap failure falls through
	// to the default document, same as absent content.
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return defaultDocument(fallbackSiteName)
		}
		raw = bytes.TrimSpace([]byte(inner))
		if len(raw) == 0 {
			return defaultDocument(fallbackSiteName)
		}
	}

	switch raw[0] {
	case '[':
		// Rule 2: legacy blocks-only array, implicit header.
		var blocks []Block
		if err := json.Unmarshal(raw, &blocks); err != nil {
			return defaultDocument(fallbackSiteName)
		}
		if blocks == nil {
			blocks = []Block{}
		}
		return &PageDocument{
			Header: Header{LogoText: fallbackSiteName, NavLinks: []NavLink{}},
			Blocks: blocks,
		}

	case '{':
		// Rule 3: object form.  A missing header gets the same implicit
		// fallback as the legacy array; stored blocks are kept either
		// way, so a partial document never loses user content.
		var probe struct {
			Header *Header `json:"header"`
			Blocks []Block `json:"blocks"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil {
			return defaultDocument(fallbackSiteName)
		}
		if probe.Header == nil && probe.Blocks == nil {
			// Neither recognised field; same as unparsable content.
			return defaultDocument(fallbackSiteName)
		}
		doc := &PageDocument{Blocks: probe.Blocks}
		if probe.Header != nil {
			doc.Header = *probe.Header
		} else {
			doc.Header = Header{LogoText: fallbackSiteName, NavLinks: []NavLink{}}
		}
		if doc.Header.NavLinks == nil {
			doc.Header.NavLinks = []NavLink{}
		}
		if doc.Blocks == nil {
			doc.Blocks = []Block{}
		}
		return doc
	}

	// Rule 4: unparsable.
	return defaultDocument(fallbackSiteName)
}

// defaultDocument is the seed shown for a site whose content was never
// saved (or could not be read back).
func defaultDocument(siteName string) *PageDocument {
	return &PageDocument{
		Header: Header{
			LogoText: siteName,
			NavLinks: []NavLink{{ID: "1", Text: "Inicio", Href: "#"}},
		},
		Blocks: []Block{
			{ID: "default-title", Type: TypeHeading, Content: RawString("Bienvenido a " + siteName)},
			{ID: "default-desc", Type: TypeParagraph, Content: RawString("El contenido de este sitio aún no ha sido configurado.")},
		},
	}
}
