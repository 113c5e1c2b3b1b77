package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"logistics-backoffice/internal/domain/session"
	"logistics-backoffice/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAuth map[string]*session.Session

func (f fakeAuth) Authenticate(_ context.Context, token string) (*session.Session, error) {
	if s, ok := f[token]; ok {
		return s, nil
	}
	return nil, errors.New("unknown token")
}

func newAuthRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	auth := fakeAuth{"good": {ID: "s1", UserID: 9, Role: user.RoleLogist}}

	r := gin.New()
	chain := append([]gin.HandlerFunc{AuthMiddleware(auth, "session")}, handlers...)
	chain = append(chain, func(c *gin.Context) {
		sess, ok := GetSession(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": sess.UserID})
	})
	r.GET("/me", chain...)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newAuthRouter()

	tests := []struct {
		name   string
		setup  func(*http.Request)
		status int
	}{
		{"bearer", func(req *http.Request) { req.Header.Set("Authorization", "Bearer good") }, http.StatusOK},
		{"cookie", func(req *http.Request) { req.AddCookie(&http.Cookie{Name: "session", Value: "good"}) }, http.StatusOK},
		{"missing", func(*http.Request) {}, http.StatusUnauthorized},
		{"malformed header", func(req *http.Request) { req.Header.Set("Authorization", "Token good") }, http.StatusUnauthorized},
		{"unknown session", func(req *http.Request) { req.Header.Set("Authorization", "Bearer bad") }, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	req := func(r *gin.Engine) int {
		w := httptest.NewRecorder()
		rq := httptest.NewRequest(http.MethodGet, "/me", nil)
		rq.Header.Set("Authorization", "Bearer good")
		r.ServeHTTP(w, rq)
		return w.Code
	}

	assert.Equal(t, http.StatusForbidden, req(newAuthRouter(AdminOnly())))
	assert.Equal(t, http.StatusOK, req(newAuthRouter(RoleMiddleware(user.RoleAdmin, user.RoleLogist))))
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.True(t, rl.Allow("b"))

	now = now.Add(limiterIdleTTL + time.Second)
	rl.Prune()
	assert.Empty(t, rl.visitors)
}

func TestRateLimiter_PrunerStopsWithContext(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.Allow("a")
	rl.mu.Lock()
	rl.visitors["a"].lastSeen = time.Now().Add(-2 * limiterIdleTTL)
	rl.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		rl.runPruner(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		rl.mu.Lock()
		defer rl.mu.Unlock()
		return len(rl.visitors) == 0
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pruner still running after cancel")
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware(), RecoveryMiddleware())
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestIDMiddleware_ReusesHeader(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
