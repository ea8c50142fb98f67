// internal/sitepage/handler.go
//
// Public tenant page handler.
//
// Context
// -------
// This is the read path every visitor hits: the host middleware has
// already resolved the subdomain, so the handler looks the site up in
// the cache, loads and normalises its stored document, derives the page
// title, and renders through the view engine.  A site with no content
// row gets the default document; an unknown subdomain is a plain 404.
package sitepage

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/gestularia/gestularia/internal/apperror"
	"github.com/gestularia/gestularia/internal/content"
	"github.com/gestularia/gestularia/internal/head"
	"github.com/gestularia/gestularia/internal/site"
	"github.com/gestularia/gestularia/internal/tenant"
	"github.com/gestularia/gestularia/internal/view"
)

// Handler serves GET requests on tenant hosts.
type Handler struct {
	cache *tenant.Cache
	sites *site.Repository
	views *view.Engine
	log   *zap.Logger
}

// New returns a Handler wired to the shared resources.
func New(cache *tenant.Cache, sites *site.Repository, views *view.Engine, log *zap.Logger) *Handler {
	return &Handler{cache: cache, sites: sites, views: views, log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sub, ok := tenant.SubdomainFromContext(r.Context())
	if !ok {
		http.NotFound(w, r)
		return
	}

	// Tenant sites are single-page; platform paths like /dashboard or
	// /login requested on a tenant host bounce to the site root.
	if r.URL.Path != "/" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	s, err := h.cache.Get(r.Context(), sub)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.log.Error("site load failed", zap.String("site", sub), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var raw []byte
	rec, err := h.sites.ContentBySiteID(r.Context(), s.ID)
	if err != nil {
		h.log.Error("content load failed", zap.String("site_id", s.ID), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if rec != nil {
		raw = rec.Content
	}

	doc := content.Normalize(raw, s.Name)

	hb := head.New()
	if title, found := doc.FirstHeading(); found {
		hb.SetTitle(title)
	} else {
		hb.SetTitle("Bienvenido a " + s.Name)
	}
	hb.Meta(`<meta name="generator" content="Gestularia">`)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = h.views.Render(w, s.Template, &view.Page{
		Head:     hb,
		SiteName: s.Name,
		Header:   doc.Header,
		Blocks:   doc.Blocks,
	})
	if err != nil {
		h.log.Error("page render failed", zap.String("site", s.Name), zap.Error(err))
	}
}
