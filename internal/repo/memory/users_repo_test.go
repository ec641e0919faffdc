package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/quizzo-app/quizzo/internal/domain/user"
)

func TestUsersRepoCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewUsersRepo()

	created, err := repo.Create(ctx, "alice1", "hash-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("create did not assign an id")
	}

	got, err := repo.GetByUsername(ctx, "alice1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != created.ID || got.PasswordHash != "hash-1" {
		t.Fatalf("get returned %+v, want %+v", got, created)
	}

	if _, err := repo.Create(ctx, "alice1", "hash-2"); !errors.Is(err, user.ErrUsernameTaken) {
		t.Fatalf("duplicate create: got %v, want ErrUsernameTaken", err)
	}

	if _, err := repo.GetByUsername(ctx, "bob"); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("get unknown: got %v, want ErrNotFound", err)
	}
}
