package models

import (
	"time"

	"logistics-backoffice/internal/domain/order"
	"logistics-backoffice/internal/domain/route"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderModel represents the database model for Order
type OrderModel struct {
	ID                 int64                             `gorm:"primaryKey;autoIncrement"`
	OrderNumber        string                            `gorm:"type:varchar(100);not null;uniqueIndex"`
	ClientID           int64                             `gorm:"not null;index"`
	CarrierID          *int64                            `gorm:"index"`
	ManagerID          *int64                            `gorm:"index"`
	Route              *string                           `gorm:"type:text"`
	OriginAddress      string                            `gorm:"type:text;not null"`
	DestinationAddress string                            `gorm:"type:text;not null"`
	Status             string                            `gorm:"type:varchar(50);not null;default:'pending';index"`
	Weight             *string                           `gorm:"type:varchar(100)"`
	Volume             *string                           `gorm:"type:varchar(100)"`
	Price              *decimal.Decimal                  `gorm:"type:numeric(14,2)"`
	Cost               *decimal.Decimal                  `gorm:"type:numeric(14,2)"`
	OrderDate          time.Time                         `gorm:"type:timestamptz;not null"`
	DeliveryDate       *time.Time                        `gorm:"type:timestamptz"`
	Details            datatypes.JSONType[order.Details] `gorm:"type:jsonb;not null"`
	Notes              *string                           `gorm:"type:text"`
	CreatedAt          time.Time                         `gorm:"not null;index"`
	UpdatedAt          time.Time                         `gorm:"not null"`

	Client  *ClientModel  `gorm:"foreignKey:ClientID"`
	Carrier *CarrierModel `gorm:"foreignKey:CarrierID"`
	Manager *UserModel    `gorm:"foreignKey:ManagerID"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// RouteModel represents the database model for Route
type RouteModel struct {
	ID         int64                               `gorm:"primaryKey;autoIncrement"`
	OrderID    int64                               `gorm:"not null;index"`
	VehicleID  *int64                              `gorm:"index"`
	StartPoint string                              `gorm:"type:text;not null"`
	EndPoint   string                              `gorm:"type:text;not null"`
	Waypoints  datatypes.JSONSlice[route.Waypoint] `gorm:"type:jsonb;not null"`
	Status     string                              `gorm:"type:varchar(50);not null;default:'pending';index"`
	StartDate  *time.Time                          `gorm:"type:timestamptz"`
	EndDate    *time.Time                          `gorm:"type:timestamptz"`
	Progress   int                                 `gorm:"not null;default:0;check:progress >= 0 AND progress <= 100"`
	Notes      *string                             `gorm:"type:text"`
	CreatedAt  time.Time                           `gorm:"not null"`
	UpdatedAt  time.Time                           `gorm:"not null"`

	Order   *OrderModel   `gorm:"foreignKey:OrderID"`
	Vehicle *VehicleModel `gorm:"foreignKey:VehicleID"`
}

func (RouteModel) TableName() string {
	return "routes"
}

// TransportationRequestModel represents the database model for TransportationRequest
type TransportationRequestModel struct {
	ID            int64            `gorm:"primaryKey;autoIncrement"`
	OrderID       int64            `gorm:"not null;index"`
	CarrierID     int64            `gorm:"not null;index"`
	RequestNumber string           `gorm:"type:varchar(100);not null"`
	Description   *string          `gorm:"type:text"`
	CargoDetails  *string          `gorm:"type:text"`
	Price         *decimal.Decimal `gorm:"type:numeric(14,2)"`
	Status        string           `gorm:"type:varchar(50);not null;default:'pending';index"`
	RequestDate   time.Time        `gorm:"type:timestamptz;not null"`
	DeliveryDate  *time.Time       `gorm:"type:timestamptz"`
	Notes         *string          `gorm:"type:text"`
	CreatedAt     time.Time        `gorm:"not null"`
	UpdatedAt     time.Time        `gorm:"not null"`

	Order   *OrderModel   `gorm:"foreignKey:OrderID"`
	Carrier *CarrierModel `gorm:"foreignKey:CarrierID"`
}

func (TransportationRequestModel) TableName() string {
	return "transportation_requests"
}
