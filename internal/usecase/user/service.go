package user

import (
	"context"
	"fmt"

	"logistics-backoffice/internal/domain/session"
	domainUser "logistics-backoffice/internal/domain/user"
	"logistics-backoffice/internal/logger"
	appErrors "logistics-backoffice/pkg/errors"
	"logistics-backoffice/pkg/utils"

	"go.uber.org/zap"
)

// Service implements user administration use cases
type Service struct {
	userRepo domainUser.Repository
	sessions session.Store
}

// NewService builds the user service. sessions may be nil for callers that only create users.
func NewService(userRepo domainUser.Repository, sessions session.Store) *Service {
	return &Service{userRepo: userRepo, sessions: sessions}
}

func (s *Service) Create(ctx context.Context, req *CreateUserRequest) (*UserResponse, error) {
	req.Sanitize()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if err := checkPasswordStrength(req.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domainUser.User{
		Username:     req.Username,
		PasswordHash: hashedPassword,
		FullName:     req.FullName,
		Email:        req.Email,
		Role:         domainUser.RoleUser,
		Position:     req.Position,
		Language:     domainUser.LanguageRU,
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Language != nil {
		user.Language = *req.Language
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if appErrors.CodeOf(err) == appErrors.CodeConflict {
			logger.Warn("User creation with existing username",
				zap.String("username", user.Username),
				zap.String("event", "user_create_failed_duplicate"),
			)
		}
		return nil, err
	}

	logger.Info("User created",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
		zap.String("event", "user_created"),
	)

	return ToUserResponse(user), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

func (s *Service) List(ctx context.Context, req *ListUsersRequest) ([]*UserResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	users, err := s.userRepo.List(ctx, &domainUser.Filter{Role: req.Role})
	if err != nil {
		return nil, err
	}
	return ToUserResponses(users), nil
}

// Update edits a user. Admins may edit anyone and change roles; other users
// may edit only their own profile.
func (s *Service) Update(ctx context.Context, actor Actor, id int64, req *UpdateUserRequest) (*UserResponse, error) {
	if !actor.IsAdmin() && (actor.ID != id || req.Role != nil) {
		logger.Warn("User update denied",
			zap.Int64("actor_id", actor.ID),
			zap.Int64("user_id", id),
			zap.String("event", "user_update_forbidden"),
		)
		return nil, appErrors.ErrInsufficientPermissions
	}

	req.Sanitize()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	roleChanged := req.Role != nil && *req.Role != user.Role
	req.ApplyTo(user)
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Password != nil {
		if err := checkPasswordStrength(*req.Password); err != nil {
			return nil, err
		}
		hashedPassword, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hashedPassword
	}

	// Sessions carry the role, so they go before the new role is stored.
	if roleChanged && s.sessions != nil {
		if err := s.sessions.DeleteByUser(ctx, user.ID); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User updated",
		zap.Int64("user_id", user.ID),
		zap.Int64("actor_id", actor.ID),
		zap.Bool("password_changed", req.Password != nil),
		zap.Bool("role_changed", roleChanged),
		zap.String("event", "user_updated"),
	)

	return ToUserResponse(user), nil
}

func checkPasswordStrength(password string) error {
	if err := utils.ValidatePassword(password); err != nil {
		return appErrors.NewValidationError(appErrors.FieldError{Field: "password", Message: err.Error()})
	}
	return nil
}
