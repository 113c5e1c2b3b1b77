package task

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusCompleted
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task represents a to-do item for staff, optionally tied to an order
type Task struct {
	ID             int64
	Title          string
	Description    *string
	DueDate        *time.Time
	AssignedTo     *int64
	RelatedOrderID *int64
	Status         Status
	Priority       Priority
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
