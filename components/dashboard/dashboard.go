// components/dashboard/dashboard.go
//
// Dashboard component – landing page, site list, creation, and deletion.
//
//------------------------------------------------------------------------------

package dashboard

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/gestularia/gestularia/internal/apperror"
	"github.com/gestularia/gestularia/internal/auth"
	"github.com/gestularia/gestularia/internal/component"
	"github.com/gestularia/gestularia/internal/form"
	"github.com/gestularia/gestularia/internal/site"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

var _ component.Component = (*Component)(nil)

// Component encapsulates the owner-facing dashboard.
type Component struct {
	deps *component.Deps
}

func (c *Component) Name() string { return "dashboard" }

// Mount registers the public landing page plus the authenticated
// dashboard and site actions.
func (c *Component) Mount(r chi.Router, deps *component.Deps) {
	c.deps = deps

	r.Get("/", c.handleLanding)
	r.Group(func(priv chi.Router) {
		priv.Use(auth.RequireUser)
		priv.Get("/dashboard", c.handleDashboard)
		priv.Post("/sites", c.handleCreateSite)
		priv.Post("/sites/{siteID}/delete", c.handleDeleteSite)
	})
}

func init() { component.Register(&Component{}) }

/*──────────────────────────── page data ────────────────────────────────────*/

type dashboardData struct {
	Email      string
	Sites      []site.Site
	Templates  []site.Template
	RootDomain string
	Error      string
	CSRFToken  string
}

func (c *Component) renderDashboard(w http.ResponseWriter, r *http.Request, data dashboardData) {
	u, _ := auth.FromContext(r.Context())
	data.Email = u.Email
	data.RootDomain = c.deps.RootDomain
	data.Templates = site.Templates()
	if data.CSRFToken == "" {
		if tok, err := form.GenerateToken(); err == nil {
			data.CSRFToken = tok
		}
	}
	if data.Sites == nil {
		sites, err := c.deps.Sites.ByOwner(r.Context(), u.ID)
		if err != nil {
			c.deps.Log.Error("site list failed", zap.Error(err))
		}
		data.Sites = sites
	}
	if err := pages.ExecuteTemplate(w, "dashboard.html", data); err != nil {
		c.deps.Log.Error("dashboard render failed", zap.Error(err))
	}
}

/*──────────────────────────── Handlers ─────────────────────────────────────*/

func (c *Component) handleLanding(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.FromContext(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	if err := pages.ExecuteTemplate(w, "landing.html", nil); err != nil {
		c.deps.Log.Error("landing render failed", zap.Error(err))
	}
}

func (c *Component) handleDashboard(w http.ResponseWriter, r *http.Request) {
	c.renderDashboard(w, r, dashboardData{})
}

func (c *Component) handleCreateSite(w http.ResponseWriter, r *http.Request) {
	if !c.checkForm(w, r) {
		return
	}
	u, _ := auth.FromContext(r.Context())

	_, err := c.deps.Sites.Create(r.Context(),
		r.PostFormValue("name"), u.ID, r.PostFormValue("template"))
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, apperror.ErrPersistence) {
			status = http.StatusInternalServerError
		}
		w.WriteHeader(status)
		c.renderDashboard(w, r, dashboardData{Error: err.Error()})
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (c *Component) handleDeleteSite(w http.ResponseWriter, r *http.Request) {
	if !c.checkForm(w, r) {
		return
	}
	u, _ := auth.FromContext(r.Context())
	siteID := chi.URLParam(r, "siteID")

	// Look up the name first so the cache entry can be dropped too.
	s, err := c.deps.Sites.ByIDForOwner(r.Context(), siteID, u.ID)
	if err == nil {
		err = c.deps.Sites.DeleteForOwner(r.Context(), siteID, u.ID)
	}
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		c.renderDashboard(w, r, dashboardData{Error: err.Error()})
		return
	}

	c.deps.Cache.Invalidate(s.Name)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

/*──────────────────────────── helpers ──────────────────────────────────────*/

func (c *Component) checkForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return false
	}
	if !form.VerifyRequestToken(r.PostFormValue("csrf_token")) {
		w.WriteHeader(http.StatusForbidden)
		c.renderDashboard(w, r, dashboardData{Error: "Token de seguridad inválido.  Recarga la página e inténtalo de nuevo."})
		return false
	}
	return true
}
