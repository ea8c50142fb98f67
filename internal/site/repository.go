// internal/site/repository.go
//
// MySQL repository for sites and their stored page content.
//
// Context
// -------
// All control-plane reads and writes go through here.  The repository
// returns apperror values so handlers can branch on kind without seeing
// driver errors; the raw cause is logged here and never propagated.
//
// Ownership
// ---------
// ByIDForOwner and DeleteForOwner scope by (id, user_id) inside the SQL
// itself.  A mismatch and a missing row are indistinguishable on
// purpose — both come back as NotFound.
package site

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/rs/xid"
	"go.uber.org/zap"

	"github.com/gestularia/gestularia/internal/apperror"
	"github.com/gestularia/gestularia/internal/metrics"
)

// mysqlDupEntry is the server error number for a unique-key collision.
const mysqlDupEntry = 1062

const msgPersistence = "No se pudo guardar. Inténtalo de nuevo."

// Repository wraps the site and site_content tables.
type Repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

// NewRepository returns a repository bound to db.
func NewRepository(db *sqlx.DB, log *zap.Logger) *Repository {
	return &Repository{db: db, log: log}
}

// ByName loads the site with the given canonical name.
func (r *Repository) ByName(ctx context.Context, name string) (*Site, error) {
	var s Site
	err := r.db.GetContext(ctx, &s,
		`SELECT id, name, user_id, template, created_at FROM site WHERE name = ?`, name)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, apperror.NotFound("Sitio no encontrado.")
	case err != nil:
		r.log.Error("site lookup by name failed", zap.String("name", name), zap.Error(err))
		return nil, apperror.Persistence(msgPersistence)
	}
	return &s, nil
}

// ByIDForOwner loads a site only when it belongs to userID.
func (r *Repository) ByIDForOwner(ctx context.Context, id, userID string) (*Site, error) {
	var s Site
	err := r.db.GetContext(ctx, &s,
		`SELECT id, name, user_id, template, created_at FROM site WHERE id = ? AND user_id = ?`, id, userID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, apperror.NotFound("Sitio no encontrado.")
	case err != nil:
		r.log.Error("site lookup by id failed", zap.String("site_id", id), zap.Error(err))
		return nil, apperror.Persistence(msgPersistence)
	}
	return &s, nil
}

// ByOwner lists a user's sites, newest first.
func (r *Repository) ByOwner(ctx context.Context, userID string) ([]Site, error) {
	var sites []Site
	err := r.db.SelectContext(ctx, &sites,
		`SELECT id, name, user_id, template, created_at FROM site WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		r.log.Error("site list failed", zap.String("user_id", userID), zap.Error(err))
		return nil, apperror.Persistence(msgPersistence)
	}
	return sites, nil
}

// Create validates the requested name, inserts the site, and seeds the
// template's starter content in the same transaction.  A duplicate name
// surfaces as NameTaken whether it loses the race or not.
func (r *Repository) Create(ctx context.Context, rawName, userID, templateID string) (*Site, error) {
	name, err := ValidateName(rawName)
	if err != nil {
		return nil, err
	}
	if !ValidTemplate(templateID) {
		return nil, apperror.ValidationFailed("template", "Plantilla desconocida.")
	}

	s := &Site{ID: xid.New().String(), Name: name, UserID: userID, Template: templateID}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.log.Error("site create begin failed", zap.Error(err))
		return nil, apperror.Persistence(msgPersistence)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.ExecContext(ctx,
		`INSERT INTO site (id, name, user_id, template) VALUES (?, ?, ?, ?)`,
		s.ID, s.Name, s.UserID, s.Template)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDupEntry {
			return nil, apperror.NameTaken("Ese nombre ya está en uso.")
		}
		r.log.Error("site insert failed", zap.String("name", name), zap.Error(err))
		return nil, apperror.Persistence(msgPersistence)
	}

	if seed, ok := InitialContent(templateID, name); ok {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO site_content (site_id, content) VALUES (?, ?)`, s.ID, seed)
		if err != nil {
			r.log.Error("template seed failed", zap.String("site_id", s.ID), zap.Error(err))
			return nil, apperror.Persistence(msgPersistence)
		}
	}

	if err := tx.Commit(); err != nil {
		r.log.Error("site create commit failed", zap.Error(err))
		return nil, apperror.Persistence(msgPersistence)
	}
	metrics.SiteCreateTotal.Inc()
	return s, nil
}

// DeleteForOwner removes a site and its content row.  Deleting someone
// else's site, or a site that is already gone, reports NotFound.
func (r *Repository) DeleteForOwner(ctx context.Context, id, userID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.log.Error("site delete begin failed", zap.Error(err))
		return apperror.Persistence(msgPersistence)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	res, err := tx.ExecContext(ctx,
		`DELETE FROM site WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		r.log.Error("site delete failed", zap.String("site_id", id), zap.Error(err))
		return apperror.Persistence(msgPersistence)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NotFound("Sitio no encontrado.")
	}

	// Content rows have no FK cascade; reap in the same transaction.
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM site_content WHERE site_id = ?`, id); err != nil {
		r.log.Error("site content delete failed", zap.String("site_id", id), zap.Error(err))
		return apperror.Persistence(msgPersistence)
	}

	if err := tx.Commit(); err != nil {
		r.log.Error("site delete commit failed", zap.Error(err))
		return apperror.Persistence(msgPersistence)
	}
	return nil
}

// ContentBySiteID loads the stored document for a site.  A site with no
// content row yields (nil, nil): absence is a normal state the renderer
// handles with the default document.
func (r *Repository) ContentBySiteID(ctx context.Context, siteID string) (*ContentRecord, error) {
	var rec ContentRecord
	err := r.db.GetContext(ctx, &rec,
		`SELECT site_id, content, updated_at FROM site_content WHERE site_id = ?`, siteID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		r.log.Error("content lookup failed", zap.String("site_id", siteID), zap.Error(err))
		return nil, apperror.Persistence(msgPersistence)
	}
	return &rec, nil
}

// UpsertContent replaces the stored document for a site in one
// statement.  Last write wins; there is no version check.
func (r *Repository) UpsertContent(ctx context.Context, siteID string, doc []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO site_content (site_id, content) VALUES (?, ?)
		 ON DUPLICATE KEY UPDATE content = VALUES(content)`, siteID, doc)
	if err != nil {
		r.log.Error("content upsert failed", zap.String("site_id", siteID), zap.Error(err))
		return apperror.Persistence(msgPersistence)
	}
	return nil
}
