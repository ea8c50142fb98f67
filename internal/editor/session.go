// internal/editor/session.go
//
// Editing session: the mutable working copy of one page document.
//
// Context
// -------
// The editor never mutates stored content directly.  A Session is seeded
// from a normalised PageDocument, takes add/update/remove operations in
// memory, and writes everything back in one shot through Save — a full
// document replace keyed by site ID.  Two sessions editing the same site
// silently overwrite each other; there is no version token (last write
// wins, flagged in DESIGN.md).
//
// Mutations are command-shaped and forgiving: updating or removing an ID
// that no longer exists is a no-op, because a second tab may have saved a
// divergent document in between.  Block ID and Type are immutable after
// creation; only Content is replaceable.
//
// Save failures leave the working copy untouched, so the author can
// retry without losing edits.  A Session is single-goroutine state, like
// any per-request working set; it holds no locks.
package editor

import (
	"context"
	"encoding/json"

	"github.com/gestularia/gestularia/internal/block"
	"github.com/gestularia/gestularia/internal/content"
)

// ContentStore is the single write operation a session needs.  The site
// repository implements it; tests stub it.
type ContentStore interface {
	UpsertContent(ctx context.Context, siteID string, doc []byte) error
}

// Session holds the working copy for one site.
type Session struct {
	siteID string
	header content.Header
	blocks []content.Block
}

// NewSession seeds a working copy from a normalised document.  The
// document's slices are copied so later saves by other sessions cannot
// alias this one's state.
func NewSession(siteID string, doc *content.PageDocument) *Session {
	s := &Session{siteID: siteID, header: doc.Header}
	s.header.NavLinks = append([]content.NavLink(nil), doc.Header.NavLinks...)
	s.blocks = append([]content.Block(nil), doc.Blocks...)
	return s
}

// SiteID returns the site this session edits.
func (s *Session) SiteID() string { return s.siteID }

//
// Header operations
//

// UpdateHeaderField sets a scalar header field.  Only "logoText" exists
// today; unknown fields are ignored.
func (s *Session) UpdateHeaderField(field, value string) {
	if field == "logoText" {
		s.header.LogoText = value
	}
}

// AddNavLink appends a placeholder link with a fresh ID and returns it.
func (s *Session) AddNavLink() content.NavLink {
	link := block.NewNavLink()
	s.header.NavLinks = append(s.header.NavLinks, link)
	return link
}

// UpdateNavLink sets one field ("text" or "href") of the link with the
// given ID.  Missing ID or unknown field is a no-op.
func (s *Session) UpdateNavLink(id, field, value string) {
	for i := range s.header.NavLinks {
		if s.header.NavLinks[i].ID != id {
			continue
		}
		switch field {
		case "text":
			s.header.NavLinks[i].Text = value
		case "href":
			s.header.NavLinks[i].Href = value
		}
		return
	}
}

// RemoveNavLink deletes the link with the given ID; no-op when absent.
func (s *Session) RemoveNavLink(id string) {
	for i := range s.header.NavLinks {
		if s.header.NavLinks[i].ID == id {
			s.header.NavLinks = append(s.header.NavLinks[:i], s.header.NavLinks[i+1:]...)
			return
		}
	}
}

//
// Block operations
//

// AddBlock appends the registry default for the given type at the end of
// the document (ordering is append-only).  ok is false for unknown types.
func (s *Session) AddBlock(typeTag string) (content.Block, bool) {
	b, ok := block.NewDefault(typeTag)
	if !ok {
		return content.Block{}, false
	}
	s.blocks = append(s.blocks, b)
	return b, true
}

// UpdateBlockContent replaces the content of the block with the given ID.
// ID and type never change.  Missing ID is a no-op.
func (s *Session) UpdateBlockContent(id string, raw json.RawMessage) {
	for i := range s.blocks {
		if s.blocks[i].ID == id {
			s.blocks[i].Content = raw
			return
		}
	}
}

// RemoveBlock deletes the block with the given ID; no-op when absent.
func (s *Session) RemoveBlock(id string) {
	for i := range s.blocks {
		if s.blocks[i].ID == id {
			s.blocks = append(s.blocks[:i], s.blocks[i+1:]...)
			return
		}
	}
}

// Block returns the working copy of one block by ID.
func (s *Session) Block(id string) (content.Block, bool) {
	for _, b := range s.blocks {
		if b.ID == id {
			return b, true
		}
	}
	return content.Block{}, false
}

//
// Snapshot and save
//

// Document returns a snapshot of the working copy in canonical shape.
// The snapshot owns its slices; further session edits do not affect it.
func (s *Session) Document() *content.PageDocument {
	doc := &content.PageDocument{Header: s.header}
	doc.Header.NavLinks = append([]content.NavLink(nil), s.header.NavLinks...)
	doc.Blocks = append([]content.Block(nil), s.blocks...)
	return doc
}

// Save serialises the working copy and replaces the stored document for
// this site.  On any failure the working copy is untouched and the error
// is returned for the handler to surface; there is nothing to roll back
// because edits were applied to memory only.
func (s *Session) Save(ctx context.Context, store ContentStore) error {
	raw, err := s.Document().Marshal()
	if err != nil {
		return err
	}
	return store.UpsertContent(ctx, s.siteID, raw)
}
