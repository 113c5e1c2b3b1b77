package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics-backoffice/internal/config"
	"logistics-backoffice/internal/domain/session"
	domainUser "logistics-backoffice/internal/domain/user"
	"logistics-backoffice/internal/logger"
	"logistics-backoffice/internal/usecase/user"
	appErrors "logistics-backoffice/pkg/errors"
	"logistics-backoffice/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service issues and resolves login sessions
type Service struct {
	userRepo domainUser.Repository
	sessions session.Store
	cfg      config.SessionConfig
	now      func() time.Time
}

func NewService(userRepo domainUser.Repository, sessions session.Store, cfg config.SessionConfig) *Service {
	return &Service{
		userRepo: userRepo,
		sessions: sessions,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	req.Sanitize()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	u, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			logger.Warn("Login attempt with unknown username",
				zap.String("username", req.Username),
				zap.String("event", "login_failed_unknown_user"),
			)
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(u.PasswordHash, req.Password) {
		logger.Warn("Login attempt with invalid password",
			zap.Int64("user_id", u.ID),
			zap.String("event", "login_failed_invalid_password"),
		)
		return nil, appErrors.ErrInvalidCredentials
	}

	now := s.now()
	sess := &session.Session{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.TTL),
	}
	if err := s.sessions.Save(ctx, sess, s.cfg.TTL); err != nil {
		return nil, err
	}

	token, expiresAt, err := utils.GenerateSessionToken(sess.ID, s.cfg.Secret, s.cfg.TTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	logger.Info("User logged in",
		zap.Int64("user_id", u.ID),
		zap.String("role", string(u.Role)),
		zap.String("event", "login_success"),
	)

	return &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user.ToUserResponse(u),
	}, nil
}

// Authenticate verifies a session token and returns the live session behind it.
func (s *Service) Authenticate(ctx context.Context, token string) (*session.Session, error) {
	sessionID, err := utils.ParseSessionToken(token, s.cfg.Secret)
	if err != nil {
		return nil, appErrors.ErrInvalidToken
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *Service) Logout(ctx context.Context, sess *session.Session) error {
	if err := s.sessions.Delete(ctx, sess.ID); err != nil {
		return err
	}

	logger.Info("User logged out",
		zap.Int64("user_id", sess.UserID),
		zap.String("event", "logout"),
	)
	return nil
}

func (s *Service) Me(ctx context.Context, sess *session.Session) (*user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	return user.ToUserResponse(u), nil
}
