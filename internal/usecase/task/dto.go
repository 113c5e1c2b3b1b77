package task

import (
	"time"

	domainTask "logistics-backoffice/internal/domain/task"
	"logistics-backoffice/pkg/types"
	"logistics-backoffice/pkg/utils"
)

// Request DTOs
type CreateTaskRequest struct {
	Title          string               `json:"title" validate:"required,min=2,max=255"`
	Description    *string              `json:"description" validate:"omitempty,max=5000"`
	DueDate        *types.Date          `json:"dueDate"`
	AssignedTo     *int64               `json:"assignedTo" validate:"omitnil,gt=0"`
	RelatedOrderID *int64               `json:"relatedOrderId" validate:"omitnil,gt=0"`
	Status         *domainTask.Status   `json:"status" validate:"omitnil,oneof=pending completed"`
	Priority       *domainTask.Priority `json:"priority" validate:"omitnil,oneof=low medium high"`
}

type UpdateTaskRequest struct {
	Title          *string              `json:"title" validate:"omitnil,min=2,max=255"`
	Description    *string              `json:"description" validate:"omitempty,max=5000"`
	DueDate        *types.Date          `json:"dueDate"`
	AssignedTo     *int64               `json:"assignedTo" validate:"omitnil,gt=0"`
	RelatedOrderID *int64               `json:"relatedOrderId" validate:"omitnil,gt=0"`
	Status         *domainTask.Status   `json:"status" validate:"omitnil,oneof=pending completed"`
	Priority       *domainTask.Priority `json:"priority" validate:"omitnil,oneof=low medium high"`
}

type ListTasksRequest struct {
	AssignedTo     *int64             `form:"assignedTo" validate:"omitnil,gt=0"`
	RelatedOrderID *int64             `form:"relatedOrderId" validate:"omitnil,gt=0"`
	Status         *domainTask.Status `form:"status" validate:"omitnil,oneof=pending completed"`
}

func (r *CreateTaskRequest) Sanitize() {
	r.Title = utils.SanitizeString(r.Title)
	r.Description = utils.SanitizeOptionalText(r.Description)
}

func (r *UpdateTaskRequest) Sanitize() {
	r.Title = utils.SanitizeOptional(r.Title)
	r.Description = utils.SanitizeOptionalText(r.Description)
}

func (r *UpdateTaskRequest) ApplyTo(t *domainTask.Task) {
	if r.Title != nil {
		t.Title = *r.Title
	}
	if r.Description != nil {
		t.Description = r.Description
	}
	if r.DueDate != nil {
		t.DueDate = r.DueDate.TimePtr()
	}
	if r.AssignedTo != nil {
		t.AssignedTo = r.AssignedTo
	}
	if r.RelatedOrderID != nil {
		t.RelatedOrderID = r.RelatedOrderID
	}
	if r.Status != nil {
		t.Status = *r.Status
	}
	if r.Priority != nil {
		t.Priority = *r.Priority
	}
}

// Response DTOs
type TaskResponse struct {
	ID             int64               `json:"id"`
	Title          string              `json:"title"`
	Description    *string             `json:"description"`
	DueDate        *time.Time          `json:"dueDate"`
	AssignedTo     *int64              `json:"assignedTo"`
	RelatedOrderID *int64              `json:"relatedOrderId"`
	Status         domainTask.Status   `json:"status"`
	Priority       domainTask.Priority `json:"priority"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

func ToTaskResponse(t *domainTask.Task) *TaskResponse {
	return &TaskResponse{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		DueDate:        t.DueDate,
		AssignedTo:     t.AssignedTo,
		RelatedOrderID: t.RelatedOrderID,
		Status:         t.Status,
		Priority:       t.Priority,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func ToTaskResponses(tasks []*domainTask.Task) []*TaskResponse {
	out := make([]*TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = ToTaskResponse(t)
	}
	return out
}
