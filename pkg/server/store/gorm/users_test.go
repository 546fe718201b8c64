package gorm

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/gorm"
)

func TestUserStoreByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewUserStore(db)

	rows := sqlmock.NewRows([]string{"id", "username", "email", "password", "is_active", "is_staff", "is_superuser", "date_joined"}).
		AddRow(1, "admin", "admin@example.com", "$2a$10$hash", true, true, true, time.Now())

	mock.ExpectQuery(`SELECT \* FROM "auth_user" WHERE username = \$1`).
		WithArgs("admin").
		WillReturnRows(rows)

	user, err := store.ByUsername("admin")
	if err != nil {
		t.Fatalf("ByUsername failed: %v", err)
	}
	if user.ID != 1 || user.Username != "admin" {
		t.Errorf("unexpected user: %+v", user)
	}
	if !user.IsSuperuser {
		t.Error("expected superuser")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUserStoreByUsernameNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewUserStore(db)

	mock.ExpectQuery(`SELECT \* FROM "auth_user" WHERE username = \$1`).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := store.ByUsername("nobody")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestUserStoreByID(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewUserStore(db)

	rows := sqlmock.NewRows([]string{"id", "username", "is_active"}).
		AddRow(42, "someone", true)

	mock.ExpectQuery(`SELECT \* FROM "auth_user" WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(rows)

	user, err := store.ByID(42)
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}
	if user.Username != "someone" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestUserStoreUpdatePassword(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewUserStore(db)

	mock.ExpectExec(`UPDATE "auth_user" SET "password"=\$1`).
		WithArgs("$2a$10$newhash", "admin").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := store.UpdatePassword("admin", "$2a$10$newhash"); err != nil {
		t.Fatalf("UpdatePassword failed: %v", err)
	}
}

func TestUserStoreUpdatePasswordUnknownUser(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewUserStore(db)

	mock.ExpectExec(`UPDATE "auth_user" SET "password"=\$1`).
		WithArgs("$2a$10$newhash", "nobody").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.UpdatePassword("nobody", "$2a$10$newhash")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestUserStoreExists(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewUserStore(db)

	mock.ExpectQuery(`SELECT count\(.+\) FROM "auth_user" WHERE username = \$1`).
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := store.Exists("admin")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected user to exist")
	}
}
