// internal/auth/repository.go
//
// MySQL repository for user accounts.
//
// Context
// -------
// Register and Authenticate are the only write/read paths the auth
// component needs.  Authenticate deliberately returns the same error
// for "no such user" and "wrong password" so responses never reveal
// which half failed.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/rs/xid"
	"go.uber.org/zap"

	"github.com/gestularia/gestularia/internal/apperror"
)

const mysqlDupEntry = 1062

const (
	msgBadCredentials = "Correo o contraseña incorrectos."
	msgPersistence    = "No se pudo guardar. Inténtalo de nuevo."
)

// Repository wraps the user table.
type Repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

// NewRepository returns a repository bound to db.
func NewRepository(db *sqlx.DB, log *zap.Logger) *Repository {
	return &Repository{db: db, log: log}
}

// Register creates a user with a bcrypt-hashed password.  A duplicate
// email surfaces as NameTaken.
func (r *Repository) Register(ctx context.Context, email, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperror.ValidationFailed("email", "Introduce un correo válido.")
	}
	if len(password) < MinPasswordLen {
		return nil, apperror.ValidationFailed("password", "La contraseña debe tener al menos 8 caracteres.")
	}

	hash, err := HashPassword(password)
	if err != nil {
		r.log.Error("password hash failed", zap.Error(err))
		return nil, apperror.Persistence(msgPersistence)
	}

	u := &User{ID: xid.New().String(), Email: email, PasswordHash: hash}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO user (id, email, password_hash) VALUES (?, ?, ?)`,
		u.ID, u.Email, u.PasswordHash)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDupEntry {
			return nil, apperror.NameTaken("Ya existe una cuenta con ese correo.")
		}
		r.log.Error("user insert failed", zap.Error(err))
		return nil, apperror.Persistence(msgPersistence)
	}
	return u, nil
}

// Authenticate verifies credentials and returns the user.  Unknown
// email and wrong password are indistinguishable on purpose.
func (r *Repository) Authenticate(ctx context.Context, email, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var u User
	err := r.db.GetContext(ctx, &u,
		`SELECT id, email, password_hash, created_at FROM user WHERE email = ?`, email)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, apperror.ValidationFailed("", msgBadCredentials)
	case err != nil:
		r.log.Error("user lookup failed", zap.Error(err))
		return nil, apperror.Persistence(msgPersistence)
	}

	if !CheckPassword(u.PasswordHash, password) {
		return nil, apperror.ValidationFailed("", msgBadCredentials)
	}
	return &u, nil
}

// ByID loads a user by primary key; used when resolving a session.
func (r *Repository) ByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.GetContext(ctx, &u,
		`SELECT id, email, password_hash, created_at FROM user WHERE id = ?`, id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, apperror.NotFound("Cuenta no encontrada.")
	case err != nil:
		r.log.Error("user lookup failed", zap.String("user_id", id), zap.Error(err))
		return nil, apperror.Persistence(msgPersistence)
	}
	return &u, nil
}
