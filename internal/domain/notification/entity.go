package notification

import "time"

type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeMessage Type = "message"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeInfo, TypeSuccess, TypeWarning, TypeMessage:
		return true
	}
	return false
}

// Notification is a message addressed to one user
type Notification struct {
	ID             int64
	UserID         int64
	Title          string
	Message        string
	Type           Type
	IsRead         bool
	RelatedOrderID *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
