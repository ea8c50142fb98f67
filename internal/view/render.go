// internal/view/render.go
//
// View engine for public tenant pages: embedded layouts, func-map
// injection, and an LRU of parsed template sets.
//
// Public helpers
// --------------
//   - Render         – write a rendered page to an io.Writer.
//   - RenderToString – return template.HTML (tests, previews).
//
// Layout selection
// ----------------
// Each site carries a template ID ("minima" today).  A blank or unknown
// ID falls back to the plain layout, which renders only the primitive
// block types, so a site whose template was retired still serves a
// readable page.
//
// Style
// -----
// • Oxford commas, two spaces after periods.

package view

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"sync"

	"github.com/gestularia/gestularia/internal/block"
	"github.com/gestularia/gestularia/internal/cache"
	"github.com/gestularia/gestularia/internal/content"
	"github.com/gestularia/gestularia/internal/head"
	"github.com/gestularia/gestularia/internal/metrics"
)

//go:embed templates/*.html
var templateFS embed.FS

// Layout IDs understood by the engine.
const (
	LayoutMinima   = "minima"
	layoutFallback = "fallback"
)

// Page is the data a layout template receives.
type Page struct {
	Head     *head.Builder
	SiteName string
	Header   content.Header
	Blocks   []content.Block
}

// Engine parses layouts on first use and keeps them in a small LRU.
type Engine struct {
	mu  sync.Mutex
	lru *cache.LRU[string, *template.Template]
}

// NewEngine returns an engine with a parsed-layout cache.
func NewEngine() *Engine {
	return &Engine{lru: cache.New[string, *template.Template](64)}
}

// Render executes the layout for templateID and streams it to w.
func (e *Engine) Render(w io.Writer, templateID string, page *Page) error {
	layout := layoutFor(templateID)
	t, err := e.load(layout)
	if err != nil {
		return err
	}
	if err := t.ExecuteTemplate(w, layout+".html", page); err != nil {
		return err
	}
	metrics.PageRenderTotal.WithLabelValues(layout).Inc()
	return nil
}

// RenderToString mirrors Render but returns the markup.
func (e *Engine) RenderToString(templateID string, page *Page) (template.HTML, error) {
	var buf bytes.Buffer
	if err := e.Render(&buf, templateID, page); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// layoutFor maps a site's template ID to a layout file base name.
// Unknown IDs get the fallback layout rather than an error.
func layoutFor(templateID string) string {
	switch templateID {
	case LayoutMinima:
		return LayoutMinima
	default:
		return layoutFallback
	}
}

// load parses (or fetches from cache) one layout file plus its shared
// partials.
func (e *Engine) load(layout string) (*template.Template, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if t, ok := e.lru.Get(layout); ok {
		return t, nil
	}

	t, err := template.New(layout).Funcs(funcMap()).ParseFS(templateFS, "templates/"+layout+".html")
	if err != nil {
		return nil, err
	}
	e.lru.Add(layout, t)
	return t, nil
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"renderBlock":     block.Render,
		"renderPrimitive": block.RenderPrimitive,
	}
}
