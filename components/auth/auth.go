// components/auth/auth.go
//
// Authentication component – registration, login, and logout.
//
//------------------------------------------------------------------------------

package auth

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/gestularia/gestularia/internal/apperror"
	authctx "github.com/gestularia/gestularia/internal/auth"
	"github.com/gestularia/gestularia/internal/component"
	"github.com/gestularia/gestularia/internal/form"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Compile-time assertion: *Component satisfies component.Component.
var _ component.Component = (*Component)(nil)

// Component encapsulates the auth flow.
type Component struct {
	deps *component.Deps
}

/*────────────────── component.Component methods ───────────────────────────*/

// Name returns the canonical component key.
func (c *Component) Name() string { return "auth" }

// Mount registers the auth endpoints on the platform router.
func (c *Component) Mount(r chi.Router, deps *component.Deps) {
	c.deps = deps

	r.Get("/login", c.handleLoginGET)
	r.Post("/login", c.handleLoginPOST)
	r.Get("/register", c.handleRegisterGET)
	r.Post("/register", c.handleRegisterPOST)
	r.Post("/logout", c.handleLogoutPOST)
}

// Register component at program start.
func init() { component.Register(&Component{}) }

/*──────────────────────────── page data ────────────────────────────────────*/

type pageData struct {
	Error     string
	Email     string
	CSRFToken string
}

func (c *Component) renderPage(w http.ResponseWriter, name string, data pageData) {
	if data.CSRFToken == "" {
		if tok, err := form.GenerateToken(); err == nil {
			data.CSRFToken = tok
		}
	}
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		c.deps.Log.Error("auth page render failed", zap.Error(err))
	}
}

/*──────────────────────────── Handlers ─────────────────────────────────────*/

func (c *Component) handleLoginGET(w http.ResponseWriter, r *http.Request) {
	if c.redirectSignedIn(w, r) {
		return
	}
	c.renderPage(w, "login.html", pageData{})
}

func (c *Component) handleLoginPOST(w http.ResponseWriter, r *http.Request) {
	if !c.checkForm(w, r, "login.html") {
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	u, err := c.deps.Users.Authenticate(r.Context(), email, password)
	if err != nil {
		status := http.StatusUnauthorized
		if errors.Is(err, apperror.ErrPersistence) {
			status = http.StatusInternalServerError
		}
		w.WriteHeader(status)
		c.renderPage(w, "login.html", pageData{Error: err.Error(), Email: email})
		return
	}

	if err := c.deps.Sessions.Issue(w, r, u.ID); err != nil {
		c.deps.Log.Error("session issue failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (c *Component) handleRegisterGET(w http.ResponseWriter, r *http.Request) {
	if c.redirectSignedIn(w, r) {
		return
	}
	c.renderPage(w, "register.html", pageData{})
}

func (c *Component) handleRegisterPOST(w http.ResponseWriter, r *http.Request) {
	if !c.checkForm(w, r, "register.html") {
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	u, err := c.deps.Users.Register(r.Context(), email, password)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, apperror.ErrPersistence) {
			status = http.StatusInternalServerError
		}
		w.WriteHeader(status)
		c.renderPage(w, "register.html", pageData{Error: err.Error(), Email: email})
		return
	}

	if err := c.deps.Sessions.Issue(w, r, u.ID); err != nil {
		c.deps.Log.Error("session issue failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (c *Component) handleLogoutPOST(w http.ResponseWriter, r *http.Request) {
	c.deps.Sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

/*──────────────────────────── helpers ──────────────────────────────────────*/

// redirectSignedIn bounces an already-authenticated visitor to the
// dashboard.  Returns true when a redirect was written.
func (c *Component) redirectSignedIn(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := authctx.FromContext(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return true
	}
	return false
}

// checkForm parses the body and verifies the CSRF token, re-rendering
// the page with an error on failure.
func (c *Component) checkForm(w http.ResponseWriter, r *http.Request, page string) bool {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return false
	}
	if !form.VerifyRequestToken(r.PostFormValue("csrf_token")) {
		w.WriteHeader(http.StatusForbidden)
		c.renderPage(w, page, pageData{Error: "Token de seguridad inválido.  Recarga la página e inténtalo de nuevo."})
		return false
	}
	return true
}
