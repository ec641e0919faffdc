package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quizzo-app/quizzo/internal/auth"
	"github.com/quizzo-app/quizzo/internal/config"
	"github.com/quizzo-app/quizzo/internal/domain/user"
	"github.com/quizzo-app/quizzo/internal/http/middlewares"
	"github.com/quizzo-app/quizzo/internal/security"
)

type UserReader interface {
	GetByUsername(ctx context.Context, username string) (user.User, error)
}

type UserWriter interface {
	Create(ctx context.Context, username, passwordHash string) (user.User, error)
}

type AuthHandler struct {
	users      UserReader
	userWriter UserWriter
	jwt        *auth.Manager
}

func NewAuthHandler(users UserReader, userWriter UserWriter, jwtManager *auth.Manager) *AuthHandler {
	return &AuthHandler{
		users:      users,
		userWriter: userWriter,
		jwt:        jwtManager,
	}
}

func (h *AuthHandler) SignUp(ctx *gin.Context) {
	var req user.Credentials

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		RespondInternal(ctx, "Could not create user")
		return
	}

	u, err := h.userWriter.Create(cctx, req.Username, hash)
	if err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			RespondError(ctx, http.StatusBadRequest, "username_taken", "User already exists", nil)
			return
		}

		RespondInternal(ctx, "Could not create user")
		return
	}

	accessToken, err := h.jwt.GenerateAccessToken(u.ID, u.Username)
	if err != nil {
		RespondInternal(ctx, "Could not generate access token")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":     "Signup successful",
		"accessToken": accessToken,
		"user":        u.Public(),
	})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req user.Credentials

	if !BindJSON(ctx, &req) {
		return
	}

	// short timeout for DB lookup
	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	foundUser, err := h.users.GetByUsername(cctx, req.Username)
	if err != nil {
		// same response as a bad password, no username probing
		respondInvalidCredentials(ctx)
		return
	}

	if err := security.CheckPassword(foundUser.PasswordHash, req.Password); err != nil {
		respondInvalidCredentials(ctx)
		return
	}

	accessToken, err := h.jwt.GenerateAccessToken(foundUser.ID, foundUser.Username)
	if err != nil {
		RespondInternal(ctx, "Could not generate access token")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":     "Login successful",
		"accessToken": accessToken,
		"user":        foundUser.Public(),
	})
}

// Me returns the identity baked into the bearer token.
func (h *AuthHandler) Me(ctx *gin.Context) {
	id, ok := middlewares.UserIDFromContext(ctx)
	if !ok || id == "" {
		RespondUnauthorized(ctx, "unauthorized", "Missing identity")
		return
	}

	username, _ := middlewares.UsernameFromContext(ctx)

	ctx.JSON(http.StatusOK, gin.H{
		"user": user.Public{ID: id, Username: username},
	})
}

func respondInvalidCredentials(ctx *gin.Context) {
	RespondUnauthorized(ctx, "invalid_credentials", "Invalid credentials")
}
