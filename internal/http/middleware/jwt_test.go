package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"clicker_backend/internal/service"

	"github.com/gin-gonic/gin"
)

func jwtTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	service.InitJWT("test-secret")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWT(), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func TestJWTAcceptsValidToken(t *testing.T) {
	r := jwtTestRouter(t)

	token, err := service.GenerateJWT(42)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
}

func TestJWTRejectsMissingOrBadToken(t *testing.T) {
	r := jwtTestRouter(t)

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not-a-token"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401 got %d", tc.name, w.Code)
		}
	}
}
