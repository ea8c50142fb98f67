// internal/site/model.go
//
// Row models for the control-plane tables.
//
// Schema reference (2026-08)
//
//	CREATE TABLE site (
//	    id          VARCHAR(20)  PRIMARY KEY,            -- xid
//	    name        VARCHAR(63)  NOT NULL UNIQUE,        -- subdomain
//	    user_id     VARCHAR(20)  NOT NULL,
//	    template    VARCHAR(64)  NOT NULL DEFAULT '',
//	    created_at  TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP
//	);
//
//	CREATE TABLE site_content (
//	    site_id     VARCHAR(20)  NOT NULL UNIQUE,
//	    content     JSON         NOT NULL,
//	    updated_at  TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP
//	                             ON UPDATE CURRENT_TIMESTAMP
//	);
//
// Notes
// -----
// • `name` is immutable after creation; there is no UPDATE path for it.
// • At most one site_content row per site; absence means "render the
//   default document", never an error.
// • These structs contain no behaviour — pure data for sqlx scans.
package site

import "time"

// Site mirrors one row in the `site` table.
type Site struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	UserID    string    `db:"user_id"`
	Template  string    `db:"template"`
	CreatedAt time.Time `db:"created_at"`
}

// ContentRecord mirrors one row in the `site_content` table.  Content is
// the stored JSON document in whatever historical shape it was saved;
// only internal/content may interpret it.
type ContentRecord struct {
	SiteID    string    `db:"site_id"`
	Content   []byte    `db:"content"`
	UpdatedAt time.Time `db:"updated_at"`
}
