package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics-backoffice/internal/domain/user"
	"logistics-backoffice/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.Role == "" {
		u.Role = user.RoleUser
	}
	if u.Language == "" {
		u.Language = user.LanguageRU
	}

	dbModel := toUserModel(u)
	if err := r.db.conn(ctx).Create(dbModel).Error; err != nil {
		return translateWriteError(err, "create user", user.ErrUserAlreadyExists)
	}

	u.ID = dbModel.ID
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return r.getBy(ctx, "id = ?", id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.getBy(ctx, "username = ?", username)
}

func (r *UserRepository) getBy(ctx context.Context, query string, arg interface{}) (*user.User, error) {
	var dbModel models.UserModel
	err := r.db.conn(ctx).Where(query, arg).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUserEntity(&dbModel), nil
}

func (r *UserRepository) List(ctx context.Context, filter *user.Filter) ([]*user.User, error) {
	var dbModels []models.UserModel

	db := r.db.conn(ctx).Model(&models.UserModel{})
	if filter != nil && filter.Role != nil {
		db = db.Where("role = ?", string(*filter.Role))
	}

	if err := db.Order("username ASC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, len(dbModels))
	for i := range dbModels {
		users[i] = toUserEntity(&dbModels[i])
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	u.UpdatedAt = time.Now()

	result := r.db.conn(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", u.ID).
		Updates(map[string]interface{}{
			"username":   u.Username,
			"password":   u.PasswordHash,
			"full_name":  u.FullName,
			"email":      u.Email,
			"role":       string(u.Role),
			"position":   u.Position,
			"language":   string(u.Language),
			"updated_at": u.UpdatedAt,
		})

	if result.Error != nil {
		return translateWriteError(result.Error, "update user", user.ErrUserAlreadyExists)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func toUserModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		FullName:     u.FullName,
		Email:        u.Email,
		Role:         string(u.Role),
		Position:     u.Position,
		Language:     string(u.Language),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func toUserEntity(m *models.UserModel) *user.User {
	return &user.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		FullName:     m.FullName,
		Email:        m.Email,
		Role:         user.Role(m.Role),
		Position:     m.Position,
		Language:     user.Language(m.Language),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
