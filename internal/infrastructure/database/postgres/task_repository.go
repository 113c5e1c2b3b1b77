package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics-backoffice/internal/domain/task"
	"logistics-backoffice/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

type TaskRepository struct {
	db *DB
}

func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, t *task.Task) error {
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Status == "" {
		t.Status = task.StatusPending
	}
	if t.Priority == "" {
		t.Priority = task.PriorityMedium
	}

	dbModel := toTaskModel(t)
	if err := r.db.conn(ctx).Create(dbModel).Error; err != nil {
		return translateWriteError(err, "create task", nil)
	}

	t.ID = dbModel.ID
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*task.Task, error) {
	var dbModel models.TaskModel
	err := r.db.conn(ctx).Where("id = ?", id).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, task.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return toTaskEntity(&dbModel), nil
}

func (r *TaskRepository) List(ctx context.Context, filter *task.Filter) ([]*task.Task, error) {
	var dbModels []models.TaskModel

	db := applyTaskFilter(r.db.conn(ctx).Model(&models.TaskModel{}), filter)
	if err := db.Order("created_at DESC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*task.Task, len(dbModels))
	for i := range dbModels {
		tasks[i] = toTaskEntity(&dbModels[i])
	}
	return tasks, nil
}

func (r *TaskRepository) Count(ctx context.Context, filter *task.Filter) (int64, error) {
	var total int64

	db := applyTaskFilter(r.db.conn(ctx).Model(&models.TaskModel{}), filter)
	if err := db.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return total, nil
}

func (r *TaskRepository) Update(ctx context.Context, t *task.Task) error {
	t.UpdatedAt = time.Now()

	result := r.db.conn(ctx).
		Model(&models.TaskModel{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"title":            t.Title,
			"description":      t.Description,
			"due_date":         t.DueDate,
			"assigned_to":      t.AssignedTo,
			"related_order_id": t.RelatedOrderID,
			"status":           string(t.Status),
			"priority":         string(t.Priority),
			"updated_at":       t.UpdatedAt,
		})

	if result.Error != nil {
		return translateWriteError(result.Error, "update task", nil)
	}
	if result.RowsAffected == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

func applyTaskFilter(db *gorm.DB, filter *task.Filter) *gorm.DB {
	if filter == nil {
		return db
	}
	if filter.AssignedTo != nil {
		db = db.Where("assigned_to = ?", *filter.AssignedTo)
	}
	if filter.RelatedOrderID != nil {
		db = db.Where("related_order_id = ?", *filter.RelatedOrderID)
	}
	if filter.Status != nil {
		db = db.Where("status = ?", string(*filter.Status))
	}
	return db
}

func toTaskModel(t *task.Task) *models.TaskModel {
	return &models.TaskModel{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		DueDate:        t.DueDate,
		AssignedTo:     t.AssignedTo,
		RelatedOrderID: t.RelatedOrderID,
		Status:         string(t.Status),
		Priority:       string(t.Priority),
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func toTaskEntity(m *models.TaskModel) *task.Task {
	return &task.Task{
		ID:             m.ID,
		Title:          m.Title,
		Description:    m.Description,
		DueDate:        m.DueDate,
		AssignedTo:     m.AssignedTo,
		RelatedOrderID: m.RelatedOrderID,
		Status:         task.Status(m.Status),
		Priority:       task.Priority(m.Priority),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
