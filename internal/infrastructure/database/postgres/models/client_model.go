package models

import "time"

// ClientModel represents the database model for Client
type ClientModel struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	Name          string    `gorm:"type:varchar(255);not null"`
	ContactPerson *string   `gorm:"type:varchar(255)"`
	Phone         *string   `gorm:"type:varchar(50)"`
	Email         *string   `gorm:"type:varchar(255)"`
	Address       *string   `gorm:"type:text"`
	Notes         *string   `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (ClientModel) TableName() string {
	return "clients"
}

// CarrierModel represents the database model for Carrier
type CarrierModel struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	Name          string    `gorm:"type:varchar(255);not null"`
	ContactPerson *string   `gorm:"type:varchar(255)"`
	Phone         *string   `gorm:"type:varchar(50)"`
	Email         *string   `gorm:"type:varchar(255)"`
	Address       *string   `gorm:"type:text"`
	VehicleType   *string   `gorm:"type:varchar(100)"`
	Notes         *string   `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (CarrierModel) TableName() string {
	return "carriers"
}

// VehicleModel represents the database model for Vehicle
type VehicleModel struct {
	ID              int64      `gorm:"primaryKey;autoIncrement"`
	CarrierID       int64      `gorm:"not null;index"`
	Type            string     `gorm:"type:varchar(100);not null"`
	RegNumber       string     `gorm:"type:varchar(50);not null"`
	DriverName      *string    `gorm:"type:varchar(255)"`
	DriverPhone     *string    `gorm:"type:varchar(50)"`
	Status          string     `gorm:"type:varchar(50);not null;default:'available';index"`
	MaintenanceDate *time.Time `gorm:"type:timestamptz"`
	CreatedAt       time.Time  `gorm:"not null"`
	UpdatedAt       time.Time  `gorm:"not null"`

	Carrier *CarrierModel `gorm:"foreignKey:CarrierID"`
}

func (VehicleModel) TableName() string {
	return "vehicles"
}
