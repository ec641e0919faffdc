package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quizzo-app/quizzo/internal/domain/quiz"
	"github.com/quizzo-app/quizzo/internal/observability"
)

type QuizzesRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewQuizzesRepo(pool *pgxpool.Pool, prom *observability.Prom) *QuizzesRepo {
	return &QuizzesRepo{pool: pool, prom: prom}
}

func (r *QuizzesRepo) Create(ctx context.Context, req quiz.CreateQuizRequest) (quiz.Quiz, error) {
	q := quiz.NewFromCreateRequest(req)

	err := r.prom.ObserveDB("quizzes.create", func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO quizzes (id, title, description, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			q.ID, q.Title, q.Description, q.CreatedAt, q.UpdatedAt)

		return err
	})

	if err != nil {
		return quiz.Quiz{}, err
	}

	return q, nil
}

func (r *QuizzesRepo) List(ctx context.Context) ([]quiz.Quiz, error) {
	var out []quiz.Quiz

	err := r.prom.ObserveDB("quizzes.list", func() error {
		rows, err := r.pool.Query(ctx,
			`SELECT id, title, description, created_at, updated_at FROM quizzes`)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]quiz.Quiz, 0)

		for rows.Next() {
			var q quiz.Quiz

			if err := rows.Scan(&q.ID, &q.Title, &q.Description, &q.CreatedAt, &q.UpdatedAt); err != nil {
				return err
			}

			out = append(out, q)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *QuizzesRepo) GetByID(ctx context.Context, id string) (quiz.Quiz, error) {
	var q quiz.Quiz

	err := r.prom.ObserveDB("quizzes.get_by_id", func() error {
		return r.pool.QueryRow(ctx,
			`SELECT id, title, description, created_at, updated_at
			 FROM quizzes
			 WHERE id = $1`,
			id,
		).Scan(&q.ID, &q.Title, &q.Description, &q.CreatedAt, &q.UpdatedAt)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return quiz.Quiz{}, quiz.ErrNotFound
		}

		return quiz.Quiz{}, err
	}

	return q, nil
}

func (r *QuizzesRepo) Update(ctx context.Context, id string, req quiz.UpdateQuizRequest) (quiz.Quiz, error) {
	var q quiz.Quiz

	err := r.prom.ObserveDB("quizzes.update", func() error {
		return r.pool.QueryRow(ctx,
			`UPDATE quizzes
			 SET title = $2,
			     description = $3,
			     updated_at = NOW()
			 WHERE id = $1
			 RETURNING id, title, description, created_at, updated_at`,
			id, req.Title, req.Description,
		).Scan(&q.ID, &q.Title, &q.Description, &q.CreatedAt, &q.UpdatedAt)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return quiz.Quiz{}, quiz.ErrNotFound
		}

		return quiz.Quiz{}, err
	}

	return q, nil
}

func (r *QuizzesRepo) Delete(ctx context.Context, id string) error {
	var tag pgconn.CommandTag

	err := r.prom.ObserveDB("quizzes.delete", func() error {
		var err error
		tag, err = r.pool.Exec(ctx, `DELETE FROM quizzes WHERE id = $1`, id)

		return err
	})

	if err != nil {
		return err
	}

	// no rows deleted means there was nothing to delete
	if tag.RowsAffected() == 0 {
		return quiz.ErrNotFound
	}

	return nil
}
