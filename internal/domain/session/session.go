package session

import (
	"context"
	"time"

	"logistics-backoffice/internal/domain/user"
	appErrors "logistics-backoffice/pkg/errors"
)

var ErrSessionNotFound = appErrors.ErrInvalidToken

// Session is the server-side record behind an issued session token.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	Role      user.Role `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

//go:generate mockgen -source=session.go -destination=mocks/mock_session.go -package=mocks

// Store persists sessions with a time-to-live.
type Store interface {
	Save(ctx context.Context, s *Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	// DeleteByUser drops every live session of userID.
	DeleteByUser(ctx context.Context, userID int64) error
}
