package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/tbeckert/admindash/internal/domain"
	"github.com/tbeckert/admindash/internal/repository/sqlite"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newAccount(email string) *domain.Account {
	return &domain.Account{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hashedpw",
		Role:         domain.RoleUser,
		Status:       domain.StatusActive,
	}
}

func TestAccountRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := db.Accounts()
	ctx := context.Background()

	account := newAccount("test@example.com")
	if err := repo.Create(ctx, account); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if account.ID == "" {
		t.Fatal("expected account ID to be assigned")
	}
	if account.JoinedAt.IsZero() {
		t.Fatal("expected JoinedAt to be set")
	}
}

func TestAccountRepository_Create_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := db.Accounts()
	ctx := context.Background()

	if err := repo.Create(ctx, newAccount("dup@example.com")); err != nil {
		t.Fatalf("Create first: %v", err)
	}

	err := repo.Create(ctx, newAccount("dup@example.com"))
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAccountRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	repo := db.Accounts()
	ctx := context.Background()

	account := newAccount("byid@example.com")
	if err := repo.Create(ctx, account); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := repo.GetByID(ctx, account.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.Email != account.Email {
		t.Fatalf("expected email %q, got %q", account.Email, found.Email)
	}
	if found.Role != domain.RoleUser {
		t.Fatalf("expected role %q, got %q", domain.RoleUser, found.Role)
	}
}

func TestAccountRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := db.Accounts()

	_, err := repo.GetByID(context.Background(), "no-such-id")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAccountRepository_GetByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := db.Accounts()
	ctx := context.Background()

	account := newAccount("byemail@example.com")
	if err := repo.Create(ctx, account); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := repo.GetByEmail(ctx, "byemail@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if found.ID != account.ID {
		t.Fatalf("expected id %q, got %q", account.ID, found.ID)
	}
}

func TestAccountRepository_GetByEmail_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := db.Accounts()

	_, err := repo.GetByEmail(context.Background(), "nonexistent@example.com")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAccountRepository_List(t *testing.T) {
	db := newTestDB(t)
	repo := db.Accounts()
	ctx := context.Background()

	first := newAccount("first@example.com")
	first.JoinedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	second := newAccount("second@example.com")
	second.JoinedAt = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// Insert out of order; List returns join order.
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create second: %v", err)
	}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create first: %v", err)
	}

	accounts, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	if accounts[0].Email != "first@example.com" {
		t.Fatalf("expected first@example.com first, got %s", accounts[0].Email)
	}
}

func TestAccountRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := db.Accounts()
	ctx := context.Background()

	account := newAccount("update@example.com")
	if err := repo.Create(ctx, account); err != nil {
		t.Fatalf("Create: %v", err)
	}

	account.Name = "Renamed"
	account.Role = domain.RoleAdmin
	account.Status = domain.StatusInactive
	if err := repo.Update(ctx, account); err != nil {
		t.Fatalf("Update: %v", err)
	}

	found, err := repo.GetByID(ctx, account.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.Name != "Renamed" || found.Role != domain.RoleAdmin || found.Status != domain.StatusInactive {
		t.Fatalf("update not persisted: %+v", found)
	}
}

func TestAccountRepository_Update_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := db.Accounts()
	ctx := context.Background()

	a := newAccount("a@example.com")
	b := newAccount("b@example.com")
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create a: %v", err)
	}
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("Create b: %v", err)
	}

	b.Email = "a@example.com"
	err := repo.Update(ctx, b)
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAccountRepository_Update_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := db.Accounts()

	missing := newAccount("ghost@example.com")
	missing.ID = "no-such-id"
	err := repo.Update(context.Background(), missing)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAccountRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := db.Accounts()
	ctx := context.Background()

	account := newAccount("delete@example.com")
	if err := repo.Create(ctx, account); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(ctx, account.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err := repo.GetByID(ctx, account.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestAccountRepository_Delete_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := db.Accounts()

	err := repo.Delete(context.Background(), "no-such-id")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAccountRepository_Counts(t *testing.T) {
	db := newTestDB(t)
	repo := db.Accounts()
	ctx := context.Background()

	now := time.Now().UTC()

	recent := newAccount("recent@example.com")
	recent.JoinedAt = now.Add(-24 * time.Hour)

	old := newAccount("old@example.com")
	old.JoinedAt = now.Add(-90 * 24 * time.Hour)
	old.Status = domain.StatusInactive

	boundary := newAccount("boundary@example.com")
	boundary.JoinedAt = now.Add(-30 * 24 * time.Hour)

	for _, a := range []*domain.Account{recent, old, boundary} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("Create %s: %v", a.Email, err)
		}
	}

	total, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total 3, got %d", total)
	}

	active, err := repo.CountByStatus(ctx, domain.StatusActive)
	if err != nil {
		t.Fatalf("CountByStatus: %v", err)
	}
	if active != 2 {
		t.Fatalf("expected 2 active, got %d", active)
	}

	// The lower bound is inclusive, so the account joined exactly 30 days
	// ago counts.
	joined, err := repo.CountJoinedSince(ctx, now.Add(-30*24*time.Hour))
	if err != nil {
		t.Fatalf("CountJoinedSince: %v", err)
	}
	if joined != 2 {
		t.Fatalf("expected 2 joined since, got %d", joined)
	}
}
