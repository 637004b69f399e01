package user_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/adapter/postgres/testhelper"
	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/adapter/postgres/user"
	"github.com/CodaCrew-Code-Labs/conlang-backend/internal/domain"
)

func newRepo(t *testing.T) (*user.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return user.New(pool), pool
}

func newUser() *domain.User {
	suffix := uuid.New().String()[:8]
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.User{
		ID:           uuid.New(),
		Email:        "account-" + suffix + "@example.com",
		Username:     "account-" + suffix,
		PasswordHash: "$2a$10$" + suffix + suffix + suffix + "abcdefg",
		Role:         domain.UserRoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ----------
// Create
// ----------

func TestRepo_Create_HappyPath(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	u := newUser()

	created, err := repo.Create(ctx, u)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if created.ID != u.ID {
		t.Errorf("expected id %s, got %s", u.ID, created.ID)
	}
	if created.Email != u.Email {
		t.Errorf("expected email %q, got %q", u.Email, created.Email)
	}
	if created.Username != u.Username {
		t.Errorf("expected username %q, got %q", u.Username, created.Username)
	}
	if created.Role != domain.UserRoleUser {
		t.Errorf("expected role %q, got %q", domain.UserRoleUser, created.Role)
	}
}

func TestRepo_Create_LowercasesEmail(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	u := newUser()
	u.Email = strings.ToUpper(u.Email)

	created, err := repo.Create(ctx, u)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if created.Email != strings.ToLower(u.Email) {
		t.Errorf("expected stored email %q, got %q", strings.ToLower(u.Email), created.Email)
	}
}

func TestRepo_Create_DuplicateEmail(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	first := newUser()
	if _, err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create first user: %v", err)
	}

	second := newUser()
	second.Email = first.Email

	_, err := repo.Create(ctx, second)
	assertIsDomainError(t, err, domain.ErrAlreadyExists)
}

func TestRepo_Create_DuplicateUsernameCaseInsensitive(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	first := newUser()
	if _, err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create first user: %v", err)
	}

	second := newUser()
	second.Username = strings.ToUpper(first.Username)

	_, err := repo.Create(ctx, second)
	assertIsDomainError(t, err, domain.ErrAlreadyExists)
}

// ----------
// GetByID / GetByEmail / GetByUsername
// ----------

func TestRepo_GetByID_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedUser(t, pool)

	got, err := repo.GetByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}

	if got.Email != seeded.Email {
		t.Errorf("expected email %q, got %q", seeded.Email, got.Email)
	}
	if got.PasswordHash != seeded.PasswordHash {
		t.Errorf("expected password hash %q, got %q", seeded.PasswordHash, got.PasswordHash)
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_GetByEmail_CaseInsensitive(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedUser(t, pool)

	got, err := repo.GetByEmail(ctx, strings.ToUpper(seeded.Email))
	if err != nil {
		t.Fatalf("GetByEmail returned error: %v", err)
	}
	if got.ID != seeded.ID {
		t.Errorf("expected id %s, got %s", seeded.ID, got.ID)
	}
}

func TestRepo_GetByEmail_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.GetByEmail(ctx, "nobody@example.com")
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_GetByUsername_CaseInsensitive(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedUser(t, pool)

	got, err := repo.GetByUsername(ctx, strings.ToUpper(seeded.Username))
	if err != nil {
		t.Fatalf("GetByUsername returned error: %v", err)
	}
	if got.ID != seeded.ID {
		t.Errorf("expected id %s, got %s", seeded.ID, got.ID)
	}
}

// ----------
// Update
// ----------

func TestRepo_Update_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedUser(t, pool)

	seeded.Username = "renamed-" + uuid.New().String()[:8]
	seeded.PasswordHash = "$2a$10$replacedreplacedreplacedreplaced"
	seeded.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

	updated, err := repo.Update(ctx, &seeded)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.Username != seeded.Username {
		t.Errorf("expected username %q, got %q", seeded.Username, updated.Username)
	}
	if updated.PasswordHash != seeded.PasswordHash {
		t.Errorf("expected password hash to be replaced")
	}
}

func TestRepo_Update_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	ghost := newUser()
	_, err := repo.Update(ctx, ghost)
	assertIsDomainError(t, err, domain.ErrNotFound)
}

// ----------
// Helpers
// ----------

func assertIsDomainError(t *testing.T, err error, target error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error wrapping %v, got nil", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("expected error wrapping %v, got: %v", target, err)
	}
}
