// internal/auth/model.go
//
// User row model.
//
//	CREATE TABLE user (
//	    id            VARCHAR(20)  PRIMARY KEY,            -- xid
//	    email         VARCHAR(255) NOT NULL UNIQUE,
//	    password_hash VARCHAR(60)  NOT NULL,               -- bcrypt
//	    created_at    TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP
//	);
package auth

import "time"

// User mirrors one row in the `user` table.  PasswordHash never leaves
// this package.
type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
