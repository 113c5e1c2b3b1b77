package middleware

import (
	"context"
	"net/http"
	"strings"

	"logistics-backoffice/internal/domain/session"
	"logistics-backoffice/internal/logger"
	"logistics-backoffice/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	SessionKey = "session"
	UserIDKey  = "userID"
	RoleKey    = "role"
)

// Authenticator resolves a session token to its live session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*session.Session, error)
}

// AuthMiddleware accepts the session token as a Bearer header or, failing that,
// from the named cookie.
func AuthMiddleware(auth Authenticator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractToken(c, cookieName)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		sess, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.WithRequestID(GetRequestID(c)).Debug("Session rejected",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired session")
			c.Abort()
			return
		}

		c.Set(SessionKey, sess)
		c.Set(UserIDKey, sess.UserID)
		c.Set(RoleKey, sess.Role)

		c.Next()
	}
}

func extractToken(c *gin.Context, cookieName string) (string, bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	}

	if cookieName != "" {
		if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
			return cookie, true
		}
	}
	return "", false
}

// GetSession returns the session stored by AuthMiddleware.
func GetSession(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(SessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}
