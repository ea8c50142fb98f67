// components/editor/editor.go
//
// Block editor component – the owner-facing editing surface.
//
// Context
//   Every mutation is a plain form POST: load the stored document,
//   normalise it, apply one operation through an editing session, and
//   write the whole document back.  The page then redirects to itself
//   so the live preview always reflects the stored state.  Concurrent
//   editors overwrite each other (last write wins).
//
//------------------------------------------------------------------------------

package editor

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/gestularia/gestularia/internal/apperror"
	"github.com/gestularia/gestularia/internal/auth"
	"github.com/gestularia/gestularia/internal/block"
	"github.com/gestularia/gestularia/internal/component"
	"github.com/gestularia/gestularia/internal/content"
	"github.com/gestularia/gestularia/internal/editor"
	"github.com/gestularia/gestularia/internal/form"
	"github.com/gestularia/gestularia/internal/head"
	"github.com/gestularia/gestularia/internal/metrics"
	"github.com/gestularia/gestularia/internal/site"
	"github.com/gestularia/gestularia/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed forms/*.yaml
var formFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

var _ component.Component = (*Component)(nil)

// Component encapsulates the editor surface.
type Component struct {
	deps *component.Deps
}

func (c *Component) Name() string { return "editor" }

// Mount registers the editor page and its operation endpoints.  All of
// them require a logged-in owner; ownership itself is enforced in the
// repository query.
func (c *Component) Mount(r chi.Router, deps *component.Deps) {
	c.deps = deps

	r.Route("/editor/{siteID}", func(r chi.Router) {
		r.Use(auth.RequireUser)
		r.Get("/", c.handleEditorPage)
		r.Get("/preview", c.handlePreview)
		r.Post("/header", c.handleHeader)
		r.Post("/nav", c.handleNavAdd)
		r.Post("/nav/{linkID}", c.handleNavUpdate)
		r.Post("/nav/{linkID}/delete", c.handleNavDelete)
		r.Post("/blocks", c.handleBlockAdd)
		r.Post("/blocks/{blockID}", c.handleBlockUpdate)
		r.Post("/blocks/{blockID}/delete", c.handleBlockDelete)
	})
}

// Register the component and its edit-form definitions at program start.
func init() {
	component.Register(&Component{})
	if err := form.RegisterForms(formFS); err != nil {
		panic("editor: form definitions broken: " + err.Error())
	}
}

/*──────────────────────────── session plumbing ─────────────────────────────*/

// loadSession fetches the site (scoped to the logged-in owner), loads
// and normalises its stored document, and opens an editing session.
func (c *Component) loadSession(w http.ResponseWriter, r *http.Request) (*site.Site, *editor.Session, bool) {
	u, _ := auth.FromContext(r.Context())
	siteID := chi.URLParam(r, "siteID")

	s, err := c.deps.Sites.ByIDForOwner(r.Context(), siteID, u.ID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			http.NotFound(w, r)
		} else {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return nil, nil, false
	}

	var raw []byte
	if rec, err := c.deps.Sites.ContentBySiteID(r.Context(), s.ID); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return nil, nil, false
	} else if rec != nil {
		raw = rec.Content
	}

	doc := content.Normalize(raw, s.Name)
	return s, editor.NewSession(s.ID, doc), true
}

// saveAndRedirect persists the session and bounces back to the editor
// page.  The site-record cache entry is dropped so the public site
// reflects the new content immediately.
func (c *Component) saveAndRedirect(w http.ResponseWriter, r *http.Request, s *site.Site, sess *editor.Session) {
	if err := sess.Save(r.Context(), c.deps.Sites); err != nil {
		metrics.ContentSaveErrorsTotal.Inc()
		c.deps.Log.Error("content save failed", zap.String("site_id", s.ID), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	metrics.ContentSaveTotal.Inc()
	c.deps.Cache.Invalidate(s.Name)
	http.Redirect(w, r, "/editor/"+s.ID, http.StatusSeeOther)
}

// checkOp parses the body and verifies the CSRF token for an operation
// POST.  Operations answer 403 rather than re-rendering; the editor
// page regenerates a fresh token on every load.
func (c *Component) checkOp(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return false
	}
	if !form.VerifyRequestToken(r.PostFormValue("csrf_token")) {
		http.Error(w, "Token de seguridad inválido.", http.StatusForbidden)
		return false
	}
	return true
}

/*──────────────────────────── editor page ──────────────────────────────────*/

type blockView struct {
	ID    string
	Type  string
	Label string
	Form  template.HTML
}

type addOption struct {
	Type  string
	Label string
}

type editorData struct {
	Site      *site.Site
	Header    content.Header
	Blocks    []blockView
	AddTypes  []addOption
	CSRFToken string
	Error     string
}

func (c *Component) handleEditorPage(w http.ResponseWriter, r *http.Request) {
	s, sess, ok := c.loadSession(w, r)
	if !ok {
		return
	}
	doc := sess.Document()

	data := editorData{Site: s, Header: doc.Header}

	if tok, err := form.GenerateToken(); err == nil {
		data.CSRFToken = tok
	}

	for _, b := range doc.Blocks {
		bv := blockView{ID: b.ID, Type: b.Type, Label: b.Type}
		if def, known := block.Lookup(b.Type); known {
			bv.Label = def.Label
			html, err := form.RenderForm(def.FormID, form.RenderOptions{Prefill: editor.Prefill(b)})
			if err != nil {
				c.deps.Log.Error("edit form render failed", zap.String("form", def.FormID), zap.Error(err))
			} else {
				bv.Form = html
			}
		}
		data.Blocks = append(data.Blocks, bv)
	}

	for _, def := range block.Types() {
		data.AddTypes = append(data.AddTypes, addOption{Type: def.Type, Label: def.Label})
	}

	if err := pages.ExecuteTemplate(w, "editor.html", data); err != nil {
		c.deps.Log.Error("editor render failed", zap.Error(err))
	}
}

// handlePreview serves the site exactly as visitors will see it, for
// the editor's preview pane.
func (c *Component) handlePreview(w http.ResponseWriter, r *http.Request) {
	s, sess, ok := c.loadSession(w, r)
	if !ok {
		return
	}
	doc := sess.Document()

	hb := head.New()
	if title, found := doc.FirstHeading(); found {
		hb.SetTitle(title)
	} else {
		hb.SetTitle("Bienvenido a " + s.Name)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := c.deps.Views.Render(w, s.Template, &view.Page{
		Head:     hb,
		SiteName: s.Name,
		Header:   doc.Header,
		Blocks:   doc.Blocks,
	})
	if err != nil {
		c.deps.Log.Error("preview render failed", zap.String("site_id", s.ID), zap.Error(err))
	}
}

/*──────────────────────────── header operations ────────────────────────────*/

func (c *Component) handleHeader(w http.ResponseWriter, r *http.Request) {
	if !c.checkOp(w, r) {
		return
	}
	s, sess, ok := c.loadSession(w, r)
	if !ok {
		return
	}
	sess.UpdateHeaderField("logoText", r.PostFormValue("logoText"))
	c.saveAndRedirect(w, r, s, sess)
}

func (c *Component) handleNavAdd(w http.ResponseWriter, r *http.Request) {
	if !c.checkOp(w, r) {
		return
	}
	s, sess, ok := c.loadSession(w, r)
	if !ok {
		return
	}
	sess.AddNavLink()
	c.saveAndRedirect(w, r, s, sess)
}

func (c *Component) handleNavUpdate(w http.ResponseWriter, r *http.Request) {
	if !c.checkOp(w, r) {
		return
	}
	s, sess, ok := c.loadSession(w, r)
	if !ok {
		return
	}
	linkID := chi.URLParam(r, "linkID")
	sess.UpdateNavLink(linkID, "text", r.PostFormValue("text"))
	sess.UpdateNavLink(linkID, "href", r.PostFormValue("href"))
	c.saveAndRedirect(w, r, s, sess)
}

func (c *Component) handleNavDelete(w http.ResponseWriter, r *http.Request) {
	if !c.checkOp(w, r) {
		return
	}
	s, sess, ok := c.loadSession(w, r)
	if !ok {
		return
	}
	sess.RemoveNavLink(chi.URLParam(r, "linkID"))
	c.saveAndRedirect(w, r, s, sess)
}

/*──────────────────────────── block operations ─────────────────────────────*/

func (c *Component) handleBlockAdd(w http.ResponseWriter, r *http.Request) {
	if !c.checkOp(w, r) {
		return
	}
	s, sess, ok := c.loadSession(w, r)
	if !ok {
		return
	}
	if _, added := sess.AddBlock(r.PostFormValue("type")); !added {
		http.Error(w, "Tipo de bloque desconocido.", http.StatusUnprocessableEntity)
		return
	}
	c.saveAndRedirect(w, r, s, sess)
}

func (c *Component) handleBlockUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	s, sess, ok := c.loadSession(w, r)
	if !ok {
		return
	}

	b, found := sess.Block(chi.URLParam(r, "blockID"))
	if !found {
		// The block vanished under a concurrent save; nothing to edit.
		http.Redirect(w, r, "/editor/"+s.ID, http.StatusSeeOther)
		return
	}
	def, known := block.Lookup(b.Type)
	if !known {
		http.Error(w, "Este bloque no se puede editar.", http.StatusUnprocessableEntity)
		return
	}

	// ValidateForm covers the CSRF check for form-shaped operations.
	clean, errs := form.ValidateForm(def.FormID, r.PostForm)
	if len(errs) > 0 {
		http.Error(w, errs[0].Message, http.StatusUnprocessableEntity)
		return
	}

	raw, applied := editor.ApplyForm(b, clean)
	if !applied {
		http.Error(w, "Este bloque no se puede editar.", http.StatusUnprocessableEntity)
		return
	}
	sess.UpdateBlockContent(b.ID, raw)
	c.saveAndRedirect(w, r, s, sess)
}

func (c *Component) handleBlockDelete(w http.ResponseWriter, r *http.Request) {
	if !c.checkOp(w, r) {
		return
	}
	s, sess, ok := c.loadSession(w, r)
	if !ok {
		return
	}
	sess.RemoveBlock(chi.URLParam(r, "blockID"))
	c.saveAndRedirect(w, r, s, sess)
}
