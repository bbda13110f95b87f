package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jobtrackr/jobtrackr/internal/auth"
)

func newTestRouter(tokens *auth.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(tokens), func(c *gin.Context) {
		id, ok := UserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user id in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return r
}

func TestAuthAcceptsValidBearer(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	token, err := tokens.Issue("user-1", "a@b.test")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	r := newTestRouter(tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestAuthRejectsBadCredentials(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	expired, _ := auth.NewTokenManager("test-secret", -time.Minute).Issue("user-1", "a@b.test")
	foreign, _ := auth.NewTokenManager("other-secret", time.Hour).Issue("user-1", "a@b.test")
	r := newTestRouter(tokens)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer garbage"},
		{"expired token", "Bearer " + expired},
		{"wrong secret", "Bearer " + foreign},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
			if w.Body.String() != `{"error":"Unauthorized"}` {
				t.Errorf("body = %s, want uniform unauthorized error", w.Body.String())
			}
		})
	}
}
