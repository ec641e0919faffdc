package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quizzo-app/quizzo/internal/domain/user"
)

type UsersRepo struct {
	mu         sync.RWMutex
	byUsername map[string]user.User
}

func NewUsersRepo() *UsersRepo {
	return &UsersRepo{
		byUsername: make(map[string]user.User),
	}
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byUsername[username]
	if !ok {
		return user.User{}, user.ErrNotFound
	}

	return u, nil
}

func (r *UsersRepo) Create(ctx context.Context, username, passwordHash string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUsername[username]; ok {
		return user.User{}, user.ErrUsernameTaken
	}

	u := user.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	r.byUsername[username] = u

	return u, nil
}
