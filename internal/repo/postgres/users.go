package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quizzo-app/quizzo/internal/domain/user"
	"github.com/quizzo-app/quizzo/internal/observability"
)

type UsersRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewUsersRepo(pool *pgxpool.Pool, prom *observability.Prom) *UsersRepo {
	return &UsersRepo{pool: pool, prom: prom}
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	var u user.User

	err := r.prom.ObserveDB("users.get_by_username", func() error {
		return r.pool.QueryRow(
			ctx,
			`SELECT id, username, password_hash, created_at
			 FROM users
			 WHERE username = $1`,
			username,
		).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}

		return user.User{}, err
	}

	return u, nil
}

func (r *UsersRepo) Create(ctx context.Context, username, passwordHash string) (user.User, error) {
	u := user.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	err := r.prom.ObserveDB("users.create", func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO users (id, username, password_hash, created_at)
			 VALUES ($1, $2, $3, $4)`,
			u.ID, u.Username, u.PasswordHash, u.CreatedAt)

		return err
	})

	if err != nil {
		// unique_violation on the username index means the name is taken
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrUsernameTaken
		}

		return user.User{}, err
	}

	return u, nil
}
