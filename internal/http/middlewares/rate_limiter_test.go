package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quizzo-app/quizzo/internal/http/middlewares"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	rl := middlewares.NewRateLimiter(2, time.Minute)

	r := gin.New()
	r.POST("/login", rl.Middleware(middlewares.KeyByIP), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:12345"

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	for i := 0; i < 2; i++ {
		if w := do(); w.Code != http.StatusOK {
			t.Fatalf("request %d got %d, want 200", i+1, w.Code)
		}
	}

	w := do()
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("third request got %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatal("expected a Retry-After header")
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	rl := middlewares.NewRateLimiter(1, time.Minute)

	r := gin.New()
	r.POST("/login", rl.Middleware(middlewares.KeyByIP), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = addr

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	if w := do("10.0.0.1:1"); w.Code != http.StatusOK {
		t.Fatalf("first client got %d, want 200", w.Code)
	}
	if w := do("10.0.0.2:1"); w.Code != http.StatusOK {
		t.Fatalf("second client got %d, want 200", w.Code)
	}
	if w := do("10.0.0.1:1"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("first client second request got %d, want 429", w.Code)
	}
}
