package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestUserCreate_ReturnsID(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("piper", "hash123").
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := repo.Create("piper", "hash123")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected id 7, got %d", id)
	}
}

func TestUserGetByUsername_NotFound(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT id, username, password_hash FROM users").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}))

	u, err := repo.GetByUsername("ghost")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if u != nil {
		t.Fatalf("expected nil for missing user, got %+v", u)
	}
}

func TestUserGetByUsername_Found(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT id, username, password_hash FROM users").
		WithArgs("piper").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}).
			AddRow(3, "piper", "hash123"))

	u, err := repo.GetByUsername("piper")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if u == nil || u.ID != 3 || u.Username != "piper" {
		t.Fatalf("unexpected user: %+v", u)
	}
}
