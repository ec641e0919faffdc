package memory

import (
	"context"
	"sync"
	"time"

	"github.com/quizzo-app/quizzo/internal/domain/quiz"
)

// QuizzesRepo keeps quizzes in a map. It backs the no-database dev mode
// and the handler tests.
type QuizzesRepo struct {
	mu    sync.RWMutex
	items map[string]quiz.Quiz
}

func NewQuizzesRepo() *QuizzesRepo {
	return &QuizzesRepo{
		items: make(map[string]quiz.Quiz),
	}
}

func (r *QuizzesRepo) Create(ctx context.Context, req quiz.CreateQuizRequest) (quiz.Quiz, error) {
	q := quiz.NewFromCreateRequest(req)

	r.mu.Lock()
	r.items[q.ID] = q
	r.mu.Unlock()

	return q, nil
}

func (r *QuizzesRepo) List(ctx context.Context) ([]quiz.Quiz, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]quiz.Quiz, 0, len(r.items))
	for _, q := range r.items {
		out = append(out, q)
	}

	return out, nil
}

func (r *QuizzesRepo) GetByID(ctx context.Context, id string) (quiz.Quiz, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.items[id]
	if !ok {
		return quiz.Quiz{}, quiz.ErrNotFound
	}

	return q, nil
}

func (r *QuizzesRepo) Update(ctx context.Context, id string, req quiz.UpdateQuizRequest) (quiz.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q, ok := r.items[id]
	if !ok {
		return quiz.Quiz{}, quiz.ErrNotFound
	}

	q.Title = req.Title
	q.Description = req.Description
	q.UpdatedAt = time.Now().UTC()
	r.items[id] = q

	return q, nil
}

func (r *QuizzesRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return quiz.ErrNotFound
	}

	delete(r.items, id)

	return nil
}
