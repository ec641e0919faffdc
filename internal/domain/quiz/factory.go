package quiz

import (
	"time"

	"github.com/google/uuid"
)

func NewFromCreateRequest(req CreateQuizRequest) Quiz {
	now := time.Now().UTC()

	return Quiz{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
