package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quizzo-app/quizzo/internal/config"
	"github.com/quizzo-app/quizzo/internal/domain/quiz"
)

type QuizzesStore interface {
	Create(ctx context.Context, req quiz.CreateQuizRequest) (quiz.Quiz, error)
	List(ctx context.Context) ([]quiz.Quiz, error)
	GetByID(ctx context.Context, id string) (quiz.Quiz, error)
	Update(ctx context.Context, id string, req quiz.UpdateQuizRequest) (quiz.Quiz, error)
	Delete(ctx context.Context, id string) error
}

type QuizzesHandler struct {
	repo QuizzesStore
}

func NewQuizzesHandler(repo QuizzesStore) *QuizzesHandler {
	return &QuizzesHandler{repo: repo}
}

func (h *QuizzesHandler) CreateQuiz(ctx *gin.Context) {
	var req quiz.CreateQuizRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	q, err := h.repo.Create(cctx, req)
	if err != nil {
		RespondInternal(ctx, "Could not create quiz")
		return
	}

	ctx.JSON(http.StatusCreated, q)
}

func (h *QuizzesHandler) ListQuizzes(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	quizzes, err := h.repo.List(cctx)
	if err != nil {
		RespondInternal(ctx, "Could not list quizzes")
		return
	}

	ctx.JSON(http.StatusOK, quizzes)
}

func (h *QuizzesHandler) GetQuizByID(ctx *gin.Context) {
	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	q, err := h.repo.GetByID(cctx, id)
	if err != nil {
		if errors.Is(err, quiz.ErrNotFound) {
			RespondNotFound(ctx, "Quiz not found")
			return
		}

		RespondInternal(ctx, "Could not fetch quiz")
		return
	}

	ctx.JSON(http.StatusOK, q)
}

func (h *QuizzesHandler) UpdateQuiz(ctx *gin.Context) {
	id := ctx.Param("id")

	var req quiz.UpdateQuizRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	q, err := h.repo.Update(cctx, id, req)
	if err != nil {
		if errors.Is(err, quiz.ErrNotFound) {
			RespondNotFound(ctx, "Quiz not found")
			return
		}

		RespondInternal(ctx, "Could not update quiz")
		return
	}

	ctx.JSON(http.StatusOK, q)
}

func (h *QuizzesHandler) DeleteQuiz(ctx *gin.Context) {
	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	if err := h.repo.Delete(cctx, id); err != nil {
		if errors.Is(err, quiz.ErrNotFound) {
			RespondNotFound(ctx, "Quiz not found")
			return
		}

		RespondInternal(ctx, "Could not delete quiz")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Quiz deleted successfully"})
}
