package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/quizzo-app/quizzo/internal/http/middlewares"
)

func TestRequireJSON(t *testing.T) {
	r := gin.New()
	r.Use(middlewares.RequireJSON())
	r.POST("/quizzes", func(c *gin.Context) { c.Status(http.StatusCreated) })
	r.GET("/quizzes", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		name        string
		method      string
		contentType string
		wantStatus  int
	}{
		{name: "json_accepted", method: http.MethodPost, contentType: "application/json", wantStatus: http.StatusCreated},
		{name: "json_with_charset_accepted", method: http.MethodPost, contentType: "application/json; charset=utf-8", wantStatus: http.StatusCreated},
		{name: "missing_content_type_rejected", method: http.MethodPost, contentType: "", wantStatus: http.StatusUnsupportedMediaType},
		{name: "form_rejected", method: http.MethodPost, contentType: "application/x-www-form-urlencoded", wantStatus: http.StatusUnsupportedMediaType},
		{name: "get_unaffected", method: http.MethodGet, contentType: "", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/quizzes", strings.NewReader("{}"))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("got status %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
