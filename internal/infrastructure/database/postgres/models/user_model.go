package models

import "time"

// UserModel represents the database model for User
type UserModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password;type:varchar(255);not null"`
	FullName     *string   `gorm:"type:varchar(255)"`
	Email        string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(50);not null;default:'user'"`
	Position     *string   `gorm:"type:varchar(255)"`
	Language     string    `gorm:"type:varchar(5);not null;default:'ru'"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}

// TaskModel represents the database model for Task
type TaskModel struct {
	ID             int64      `gorm:"primaryKey;autoIncrement"`
	Title          string     `gorm:"type:varchar(255);not null"`
	Description    *string    `gorm:"type:text"`
	DueDate        *time.Time `gorm:"type:timestamptz"`
	AssignedTo     *int64     `gorm:"index"`
	RelatedOrderID *int64     `gorm:"index"`
	Status         string     `gorm:"type:varchar(50);not null;default:'pending';index"`
	Priority       string     `gorm:"type:varchar(20);not null;default:'medium'"`
	CreatedAt      time.Time  `gorm:"not null"`
	UpdatedAt      time.Time  `gorm:"not null"`

	Assignee     *UserModel  `gorm:"foreignKey:AssignedTo"`
	RelatedOrder *OrderModel `gorm:"foreignKey:RelatedOrderID"`
}

func (TaskModel) TableName() string {
	return "tasks"
}

// NotificationModel represents the database model for Notification
type NotificationModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	UserID         int64     `gorm:"not null;index"`
	Title          string    `gorm:"type:varchar(255);not null"`
	Message        string    `gorm:"type:text;not null"`
	Type           string    `gorm:"type:varchar(20);not null;default:'info'"`
	IsRead         bool      `gorm:"not null;default:false"`
	RelatedOrderID *int64    `gorm:"index"`
	CreatedAt      time.Time `gorm:"not null;index"`
	UpdatedAt      time.Time `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

// DocumentModel represents the database model for Document
type DocumentModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	OrderID    int64     `gorm:"not null;index"`
	FileName   string    `gorm:"type:varchar(255);not null"`
	FileType   string    `gorm:"type:varchar(255);not null"`
	FileData   []byte    `gorm:"type:bytea"`
	FileURL    *string   `gorm:"type:text"`
	FileSize   int64     `gorm:"not null;default:0"`
	UploadedBy *int64    `gorm:"index"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`

	Order *OrderModel `gorm:"foreignKey:OrderID"`
}

func (DocumentModel) TableName() string {
	return "documents"
}
