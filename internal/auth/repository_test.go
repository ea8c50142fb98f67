// internal/auth/repository_test.go
//
// Run: go test ./internal/auth -v

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/gestularia/gestularia/internal/apperror"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepository(sqlx.NewDb(db, "mysql"), zap.NewNop()), mock
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatal(err)
	}
	if !CheckPassword(hash, "correct horse") {
		t.Fatal("valid password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatal("wrong password accepted")
	}
}

func TestRegister(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO user ").
		WithArgs(sqlmock.AnyArg(), "ana@example.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	u, err := repo.Register(context.Background(), " Ana@Example.com ", "hunter2hunter2")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Email != "ana@example.com" || u.ID == "" {
		t.Fatalf("got %+v", u)
	}
	if !CheckPassword(u.PasswordHash, "hunter2hunter2") {
		t.Fatal("stored hash does not match password")
	}
}

func TestRegister_Validation(t *testing.T) {
	repo, _ := newMockRepo(t)

	if _, err := repo.Register(context.Background(), "not-an-email", "hunter2hunter2"); !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("bad email: err = %v", err)
	}
	if _, err := repo.Register(context.Background(), "ana@example.com", "short"); !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("short password: err = %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO user ").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	_, err := repo.Register(context.Background(), "ana@example.com", "hunter2hunter2")
	if !errors.Is(err, apperror.ErrNameTaken) {
		t.Fatalf("err = %v, want ErrNameTaken", err)
	}
}

func TestAuthenticate(t *testing.T) {
	repo, mock := newMockRepo(t)

	hash, _ := HashPassword("hunter2hunter2")
	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
		AddRow("u1", "ana@example.com", hash, time.Now())
	mock.ExpectQuery("SELECT .+ FROM user WHERE email").
		WithArgs("ana@example.com").
		WillReturnRows(rows)

	u, err := repo.Authenticate(context.Background(), "ana@example.com", "hunter2hunter2")
	if err != nil || u.ID != "u1" {
		t.Fatalf("Authenticate: (%+v, %v)", u, err)
	}
}

func TestAuthenticate_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	repo, mock := newMockRepo(t)

	hash, _ := HashPassword("hunter2hunter2")
	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
		AddRow("u1", "ana@example.com", hash, time.Now())
	mock.ExpectQuery("SELECT .+ FROM user WHERE email").
		WillReturnRows(rows)

	_, errWrongPass := repo.Authenticate(context.Background(), "ana@example.com", "nope")

	mock.ExpectQuery("SELECT .+ FROM user WHERE email").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}))

	_, errNoUser := repo.Authenticate(context.Background(), "ghost@example.com", "nope")

	if !errors.Is(errWrongPass, apperror.ErrValidation) || !errors.Is(errNoUser, apperror.ErrValidation) {
		t.Fatalf("errs = %v / %v, want ErrValidation for both", errWrongPass, errNoUser)
	}
	if errWrongPass.Error() != errNoUser.Error() {
		t.Fatal("messages must not reveal which half failed")
	}
}
