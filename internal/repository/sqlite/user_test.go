package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/msomdec/inkpost/internal/domain"
	"github.com/msomdec/inkpost/internal/repository/sqlite"
)

func createUser(t *testing.T, repo *sqlite.UserRepository, name, email string) *domain.User {
	t.Helper()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: "hashed-password",
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create user %s: %v", email, err)
	}
	return user
}

func strptr(s string) *string { return &s }

func TestUserRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()

	user := createUser(t, repo, "Test User", "test@example.com")

	if user.ID == "" {
		t.Fatal("expected user ID to be generated by the repository")
	}
	if user.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
	if !user.UpdatedAt.Equal(user.CreatedAt) {
		t.Fatal("expected UpdatedAt to equal CreatedAt on create")
	}
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	createUser(t, repo, "User 1", "dup@example.com")

	user2 := &domain.User{
		Name:         "User 2",
		Email:        "dup@example.com",
		PasswordHash: "hash2",
	}
	err := repo.Create(ctx, user2)
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	user := createUser(t, repo, "By ID", "byid@example.com")

	found, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.Email != user.Email {
		t.Fatalf("expected email %q, got %q", user.Email, found.Email)
	}
	if found.Name != user.Name {
		t.Fatalf("expected name %q, got %q", user.Name, found.Name)
	}
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()

	_, err := repo.GetByID(context.Background(), "no-such-id")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	user := createUser(t, repo, "By Email", "byemail@example.com")

	found, err := repo.GetByEmail(ctx, "byemail@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if found.ID != user.ID {
		t.Fatalf("expected id %q, got %q", user.ID, found.ID)
	}

	if _, err := repo.GetByEmail(ctx, "missing@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown email, got %v", err)
	}
}

func TestUserRepository_Update_NameOnly(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	user := createUser(t, repo, "Before", "partial@example.com")
	time.Sleep(10 * time.Millisecond)

	updated, err := repo.Update(ctx, user.ID, domain.UserUpdate{Name: strptr("After")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Name != "After" {
		t.Fatalf("expected name After, got %q", updated.Name)
	}
	if updated.Email != user.Email {
		t.Fatalf("email changed unexpectedly: %q", updated.Email)
	}
	if updated.PasswordHash != user.PasswordHash {
		t.Fatal("password hash changed unexpectedly")
	}
	if !updated.UpdatedAt.After(user.UpdatedAt) {
		t.Fatal("expected updated_at to be bumped")
	}
}

func TestUserRepository_Update_NoChangeIsNoOp(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	user := createUser(t, repo, "Same", "same@example.com")

	// Compare against the stored row so both sides went through the driver.
	before, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	// Supplying the stored values must not write or bump updated_at.
	updated, err := repo.Update(ctx, user.ID, domain.UserUpdate{
		Name:  strptr("Same"),
		Email: strptr("same@example.com"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.UpdatedAt.Equal(before.UpdatedAt) {
		t.Fatalf("expected updated_at unchanged, got %v (was %v)", updated.UpdatedAt, before.UpdatedAt)
	}

	// Same for an entirely empty update.
	updated, err = repo.Update(ctx, user.ID, domain.UserUpdate{})
	if err != nil {
		t.Fatalf("empty Update: %v", err)
	}
	if !updated.UpdatedAt.Equal(before.UpdatedAt) {
		t.Fatal("expected updated_at unchanged for empty update")
	}
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()

	_, err := repo.Update(context.Background(), "no-such-id", domain.UserUpdate{Name: strptr("X")})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_Update_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	createUser(t, repo, "Holder", "taken@example.com")
	user := createUser(t, repo, "Mover", "mover@example.com")

	_, err := repo.Update(ctx, user.ID, domain.UserUpdate{Email: strptr("taken@example.com")})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	user := createUser(t, repo, "Doomed", "doomed@example.com")

	if err := repo.Delete(ctx, user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, user.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	if err := repo.Delete(ctx, "no-such-id"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestUserRepository_ListAll_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	first := createUser(t, repo, "First", "first@example.com")
	time.Sleep(10 * time.Millisecond)
	second := createUser(t, repo, "Second", "second@example.com")

	users, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].ID != second.ID || users[1].ID != first.ID {
		t.Fatalf("expected newest first, got [%s, %s]", users[0].Email, users[1].Email)
	}
}
