package http

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/quizzo-app/quizzo/internal/auth"
	"github.com/quizzo-app/quizzo/internal/config"
	"github.com/quizzo-app/quizzo/internal/http/handlers"
	"github.com/quizzo-app/quizzo/internal/http/middlewares"
	"github.com/quizzo-app/quizzo/internal/observability"
	"github.com/quizzo-app/quizzo/internal/repo/memory"
	"github.com/quizzo-app/quizzo/internal/repo/postgres"
)

func NewRouter(log *slog.Logger, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	reg := prometheus.NewRegistry()
	prom := observability.NewProm(reg)

	// middleware
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(log))
	r.Use(otelgin.Middleware("quizzo-api"))
	r.Use(prom.GinHandleMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middlewares.MaxBodyBytes(cfg.MaxBodyBytes))

	// health
	ping := func() error {
		if pool == nil {
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()

		return pool.Ping(ctx)
	}

	h := handlers.NewHealthHandler(ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// wire up repositories; no pool means in-memory storage (dev mode)
	var (
		usersReader  handlers.UserReader
		usersWriter  handlers.UserWriter
		quizzesStore handlers.QuizzesStore
	)

	if pool != nil {
		usersRepo := postgres.NewUsersRepo(pool, prom)
		usersReader, usersWriter = usersRepo, usersRepo
		quizzesStore = postgres.NewQuizzesRepo(pool, prom)
	} else {
		log.Warn("no database configured, using in-memory repositories")
		usersRepo := memory.NewUsersRepo()
		usersReader, usersWriter = usersRepo, usersRepo
		quizzesStore = memory.NewQuizzesRepo()
	}

	jwtManager := auth.NewManager(cfg.JWTSecret, cfg.AccessTTL)
	authMw := middlewares.NewAuthMiddleware(jwtManager)
	authLimiter := middlewares.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateWindow)

	authHandler := handlers.NewAuthHandler(usersReader, usersWriter, jwtManager)
	quizzesHandler := handlers.NewQuizzesHandler(quizzesStore)

	api := r.Group("/api")
	api.Use(middlewares.RequireJSON())

	api.POST("/signup", authLimiter.Middleware(middlewares.KeyByIP), authHandler.SignUp)
	api.POST("/login", authLimiter.Middleware(middlewares.KeyByIP), authHandler.Login)
	api.GET("/me", authMw.RequireAuth(), authHandler.Me)

	// quiz routes are deliberately unauthenticated, matching the client contract
	api.POST("/quizzes", quizzesHandler.CreateQuiz)
	api.GET("/quizzes", quizzesHandler.ListQuizzes)
	api.GET("/quizzes/:id", quizzesHandler.GetQuizByID)
	api.PUT("/quizzes/:id", quizzesHandler.UpdateQuiz)
	api.DELETE("/quizzes/:id", quizzesHandler.DeleteQuiz)

	return r
}
