package quiz

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("quiz not found")

type Quiz struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateQuizRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=200"`
	Description string `json:"description" binding:"required,min=5,max=2000"`
}

// Full replacement of title/description; id and createdAt are never touched.
type UpdateQuizRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=200"`
	Description string `json:"description" binding:"required,min=5,max=2000"`
}
