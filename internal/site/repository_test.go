// internal/site/repository_test.go
//
// Repository tests against a mocked MySQL driver.
//
// Run: go test ./internal/site -v

package site

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

func siteRows(s Site) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "user_id", "template", "created_at"}).
		AddRow(s.ID, s.Name, s.UserID, s.Template, s.CreatedAt)
}

func TestByName(t *testing.T) {
	repo, mock := newMockRepo(t)
	want := Site{ID: "s1", Name: "shop", UserID: "u1", Template: "minima", CreatedAt: time.Now()}

	mock.ExpectQuery("SELECT .+ FROM site WHERE name").
		WithArgs("shop").
		WillReturnRows(siteRows(want))

	got, err := repo.ByName(context.Background(), "shop")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}
	if got.ID != want.ID || got.Name != want.Name {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestByName_Missing(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT .+ FROM site WHERE name").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "user_id", "template", "created_at"}))

	_, err := repo.ByName(context.Background(), "ghost")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestByIDForOwner_OwnershipMismatchIsNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	// The SQL scopes by both id and user_id, so a mismatch scans no rows.
	mock.ExpectQuery("SELECT .+ FROM site WHERE id = .+ AND user_id").
		WithArgs("s1", "intruder").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "user_id", "template", "created_at"}))

	_, err := repo.ByIDForOwner(context.Background(), "s1", "intruder")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestByOwner(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "name", "user_id", "template", "created_at"}).
		AddRow("s2", "blog", "u1", "", time.Now()).
		AddRow("s1", "shop", "u1", "minima", time.Now())
	mock.ExpectQuery("SELECT .+ FROM site WHERE user_id").
		WithArgs("u1").
		WillReturnRows(rows)

	sites, err := repo.ByOwner(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ByOwner: %v", err)
	}
	if len(sites) != 2 || sites[0].Name != "blog" {
		t.Fatalf("got %+v", sites)
	}
}

func TestCreate_SeedsTemplateContent(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO site ").
		WithArgs(sqlmock.AnyArg(), "shop", "u1", "minima").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO site_content ").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	s, err := repo.Create(context.Background(), "Shop", "u1", "minima")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.Name != "shop" || s.ID == "" {
		t.Fatalf("got %+v", s)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreate_BlankTemplateSkipsSeed(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO site ").
		WithArgs(sqlmock.AnyArg(), "shop", "u1", "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if _, err := repo.Create(context.Background(), "shop", "u1", ""); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreate_DuplicateNameIsNameTaken(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO site ").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), "shop", "u1", "")
	if !errors.Is(err, apperror.ErrNameTaken) {
		t.Fatalf("err = %v, want ErrNameTaken", err)
	}
}

func TestCreate_InvalidNameShortCircuits(t *testing.T) {
	repo, _ := newMockRepo(t)

	_, err := repo.Create(context.Background(), "a!", "u1", "")
	if !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestDeleteForOwner(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM site WHERE id").
		WithArgs("s1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM site_content").
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.DeleteForOwner(context.Background(), "s1", "u1"); err != nil {
		t.Fatalf("DeleteForOwner: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteForOwner_MismatchIsNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM site WHERE id").
		WithArgs("s1", "intruder").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteForOwner(context.Background(), "s1", "intruder")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestContentBySiteID_AbsenceIsNotAnError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT .+ FROM site_content").
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"site_id", "content", "updated_at"}))

	rec, err := repo.ContentBySiteID(context.Background(), "s1")
	if err != nil || rec != nil {
		t.Fatalf("got (%+v, %v), want (nil, nil)", rec, err)
	}
}

func TestContentBySiteID(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"site_id", "content", "updated_at"}).
		AddRow("s1", []byte(`{"header":{"logoText":"x","navLinks":[]},"blocks":[]}`), time.Now())
	mock.ExpectQuery("SELECT .+ FROM site_content").
		WithArgs("s1").
		WillReturnRows(rows)

	rec, err := repo.ContentBySiteID(context.Background(), "s1")
	if err != nil || rec == nil {
		t.Fatalf("ContentBySiteID: rec=%v err=%v", rec, err)
	}
	if rec.SiteID != "s1" || len(rec.Content) == 0 {
		t.Fatalf("got %+v", rec)
	}
}

func TestUpsertContent(t *testing.T) {
	repo, mock := newMockRepo(t)
	doc := []byte(`{"header":{"logoText":"x","navLinks":[]},"blocks":[]}`)

	mock.ExpectExec("INSERT INTO site_content").
		WithArgs("s1", doc).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpsertContent(context.Background(), "s1", doc); err != nil {
		t.Fatalf("UpsertContent: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUpsertContent_FailureIsPersistence(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO site_content").
		WillReturnError(errors.New("server has gone away"))

	err := repo.UpsertContent(context.Background(), "s1", []byte(`{}`))
	if !errors.Is(err, apperror.ErrPersistence) {
		t.Fatalf("err = %v, want ErrPersistence", err)
	}
}
