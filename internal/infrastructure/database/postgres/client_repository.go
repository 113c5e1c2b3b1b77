package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics-backoffice/internal/domain/client"
	"logistics-backoffice/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

type ClientRepository struct {
	db *DB
}

func NewClientRepository(db *DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	dbModel := toClientModel(c)
	if err := r.db.conn(ctx).Create(dbModel).Error; err != nil {
		return translateWriteError(err, "create client", nil)
	}

	c.ID = dbModel.ID
	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*client.Client, error) {
	var dbModel models.ClientModel
	err := r.db.conn(ctx).Where("id = ?", id).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, client.ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return toClientEntity(&dbModel), nil
}

func (r *ClientRepository) List(ctx context.Context, filter *client.Filter) ([]*client.Client, error) {
	var dbModels []models.ClientModel

	db := r.db.conn(ctx).Model(&models.ClientModel{})
	if filter != nil && filter.Search != "" {
		pattern := containsPattern(filter.Search)
		db = db.Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(contact_person) LIKE ? ESCAPE '\'`, pattern, pattern)
	}

	if err := db.Order("created_at DESC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	clients := make([]*client.Client, len(dbModels))
	for i := range dbModels {
		clients[i] = toClientEntity(&dbModels[i])
	}
	return clients, nil
}

func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	c.UpdatedAt = time.Now()

	result := r.db.conn(ctx).
		Model(&models.ClientModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"name":           c.Name,
			"contact_person": c.ContactPerson,
			"phone":          c.Phone,
			"email":          c.Email,
			"address":        c.Address,
			"notes":          c.Notes,
			"updated_at":     c.UpdatedAt,
		})

	if result.Error != nil {
		return translateWriteError(result.Error, "update client", nil)
	}
	if result.RowsAffected == 0 {
		return client.ErrClientNotFound
	}
	return nil
}

func toClientModel(c *client.Client) *models.ClientModel {
	return &models.ClientModel{
		ID:            c.ID,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Email:         c.Email,
		Address:       c.Address,
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toClientEntity(m *models.ClientModel) *client.Client {
	return &client.Client{
		ID:            m.ID,
		Name:          m.Name,
		ContactPerson: m.ContactPerson,
		Phone:         m.Phone,
		Email:         m.Email,
		Address:       m.Address,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
