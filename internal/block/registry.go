// internal/block/registry.go
//
// Block-type registry.
//
// Context
// -------
// A block type is the unit of polymorphism in a page document.  Each type
// registers one Definition: a default-content factory (used when the
// editor appends a new block), a read-only renderer, and the ID of its
// YAML edit-form definition.  Everything the editor and the templates
// need to know about a type lives in this one registration, so adding a
// block type touches exactly one file under this package.
//
// Unrecognised type tags are not an error anywhere: Render returns empty
// HTML, the editor shows no form, and the raw content survives a re-save
// untouched (see internal/content).
//
// Notes
// -----
// • Registration happens in init() funcs, mirroring defaults.go.
// • Oxford commas, two spaces after periods.
package block

import (
	"html/template"
	"sort"
	"sync"

	"github.com/gestularia/gestularia/internal/content"
)

// Definition describes one block type to the editor and the renderer.
type Definition struct {
	Type       string                             // tag stored in the document
	Label      string                             // editor button caption
	NewDefault func() content.Block               // factory for freshly added blocks
	Render     func(content.Block) template.HTML  // read-only presentation
	FormID     string                             // edit-form definition, e.g. "editor/heading"
}

var (
	mu       sync.RWMutex
	registry = map[string]Definition{}
)

// Register a block type during init().  A duplicate tag overwrites the
// previous entry.
func Register(d Definition) {
	mu.Lock()
	registry[d.Type] = d
	mu.Unlock()
}

// Lookup returns the definition for a type tag.  ok is false for unknown
// tags; callers must treat that as "render nothing", never as a failure.
func Lookup(typeTag string) (Definition, bool) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := registry[typeTag]
	return d, ok
}

// NewDefault builds a fresh block of the given type with a generated ID.
// ok is false for unknown tags.
func NewDefault(typeTag string) (content.Block, bool) {
	d, ok := Lookup(typeTag)
	if !ok {
		return content.Block{}, false
	}
	return d.NewDefault(), true
}

// Render maps a block to its HTML.  Unknown tags render as nothing.
func Render(b content.Block) template.HTML {
	d, ok := Lookup(b.Type)
	if !ok {
		return ""
	}
	return d.Render(b)
}

// Types returns all registered tags in stable order, for the editor's
// add-block controls.
func Types() []Definition {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Definition, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}
