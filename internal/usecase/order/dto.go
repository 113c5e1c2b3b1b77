package order

import (
	"time"

	domainOrder "logistics-backoffice/internal/domain/order"
	domainRoute "logistics-backoffice/internal/domain/route"
	"logistics-backoffice/pkg/types"
	"logistics-backoffice/pkg/utils"

	"github.com/shopspring/decimal"
)

// Request DTOs
type CreateOrderRequest struct {
	OrderNumber        string           `json:"orderNumber" validate:"required,min=5,max=100"`
	ClientID           int64            `json:"clientId" validate:"required,gt=0"`
	CarrierID          *int64           `json:"carrierId" validate:"omitnil,gt=0"`
	ManagerID          *int64           `json:"managerId" validate:"omitnil,gt=0"`
	Route              *string          `json:"route" validate:"omitempty,max=1000"`
	OriginAddress      string           `json:"originAddress" validate:"required,min=3,max=500"`
	DestinationAddress string           `json:"destinationAddress" validate:"required,min=3,max=500"`
	Weight             *string          `json:"weight" validate:"omitempty,max=100"`
	Volume             *string          `json:"volume" validate:"omitempty,max=100"`
	Price              *decimal.Decimal `json:"price" validate:"omitnil,min=0"`
	Cost               *decimal.Decimal `json:"cost" validate:"omitnil,min=0"`
	OrderDate          *types.Date      `json:"orderDate" validate:"required"`
	DeliveryDate       *types.Date      `json:"deliveryDate"`
	Details            *DetailsRequest  `json:"details" validate:"omitnil"`
	Notes              *string          `json:"notes" validate:"omitempty,max=2000"`

	// InitialRoute is created in the same transaction as the order.
	InitialRoute *InitialRouteRequest `json:"initialRoute" validate:"omitnil"`
}

// DetailsRequest carries the client-editable parts of Order.Details. The timeline is server-managed.
type DetailsRequest struct {
	Sender    *domainOrder.Party `json:"sender" validate:"omitnil"`
	Recipient *domainOrder.Party `json:"recipient" validate:"omitnil"`
	Cargo     *domainOrder.Cargo `json:"cargo" validate:"omitnil"`
}

type InitialRouteRequest struct {
	StartPoint string                 `json:"startPoint" validate:"required,min=3,max=500"`
	EndPoint   string                 `json:"endPoint" validate:"required,min=3,max=500"`
	VehicleID  *int64                 `json:"vehicleId" validate:"omitnil,gt=0"`
	Waypoints  []domainRoute.Waypoint `json:"waypoints" validate:"omitempty,dive"`
}

type UpdateOrderRequest struct {
	OrderNumber        *string             `json:"orderNumber" validate:"omitnil,min=5,max=100"`
	ClientID           *int64              `json:"clientId" validate:"omitnil,gt=0"`
	CarrierID          *int64              `json:"carrierId" validate:"omitnil,gt=0"`
	ManagerID          *int64              `json:"managerId" validate:"omitnil,gt=0"`
	Route              *string             `json:"route" validate:"omitempty,max=1000"`
	OriginAddress      *string             `json:"originAddress" validate:"omitnil,min=3,max=500"`
	DestinationAddress *string             `json:"destinationAddress" validate:"omitnil,min=3,max=500"`
	Status             *domainOrder.Status `json:"status" validate:"omitnil,oneof=pending preparing waiting active in_transit completed cancelled"`
	StatusNote         *string             `json:"statusNote" validate:"omitempty,max=500"`
	Weight             *string             `json:"weight" validate:"omitempty,max=100"`
	Volume             *string             `json:"volume" validate:"omitempty,max=100"`
	Price              *decimal.Decimal    `json:"price" validate:"omitnil,min=0"`
	Cost               *decimal.Decimal    `json:"cost" validate:"omitnil,min=0"`
	OrderDate          *types.Date         `json:"orderDate"`
	DeliveryDate       *types.Date         `json:"deliveryDate"`
	Details            *DetailsRequest     `json:"details" validate:"omitnil"`
	Notes              *string             `json:"notes" validate:"omitempty,max=2000"`
}

type ListOrdersRequest struct {
	Status    *domainOrder.Status `form:"status" validate:"omitnil,oneof=pending preparing waiting active in_transit completed cancelled"`
	ClientID  *int64              `form:"clientId" validate:"omitnil,gt=0"`
	CarrierID *int64              `form:"carrierId" validate:"omitnil,gt=0"`
	ManagerID *int64              `form:"managerId" validate:"omitnil,gt=0"`
}

func (r *CreateOrderRequest) Sanitize() {
	r.OrderNumber = utils.SanitizeString(r.OrderNumber)
	r.Route = utils.SanitizeOptionalText(r.Route)
	r.OriginAddress = utils.SanitizeString(r.OriginAddress)
	r.DestinationAddress = utils.SanitizeString(r.DestinationAddress)
	r.Weight = utils.SanitizeOptional(r.Weight)
	r.Volume = utils.SanitizeOptional(r.Volume)
	r.Notes = utils.SanitizeOptionalText(r.Notes)
	r.Details.sanitize()
	if r.InitialRoute != nil {
		r.InitialRoute.StartPoint = utils.SanitizeString(r.InitialRoute.StartPoint)
		r.InitialRoute.EndPoint = utils.SanitizeString(r.InitialRoute.EndPoint)
		for i := range r.InitialRoute.Waypoints {
			r.InitialRoute.Waypoints[i].Name = utils.SanitizeString(r.InitialRoute.Waypoints[i].Name)
			r.InitialRoute.Waypoints[i].Address = utils.SanitizeString(r.InitialRoute.Waypoints[i].Address)
		}
	}
}

func (r *UpdateOrderRequest) Sanitize() {
	r.OrderNumber = utils.SanitizeOptional(r.OrderNumber)
	r.Route = utils.SanitizeOptionalText(r.Route)
	r.OriginAddress = utils.SanitizeOptional(r.OriginAddress)
	r.DestinationAddress = utils.SanitizeOptional(r.DestinationAddress)
	r.StatusNote = utils.SanitizeOptionalText(r.StatusNote)
	r.Weight = utils.SanitizeOptional(r.Weight)
	r.Volume = utils.SanitizeOptional(r.Volume)
	r.Notes = utils.SanitizeOptionalText(r.Notes)
	r.Details.sanitize()
}

func (d *DetailsRequest) sanitize() {
	if d == nil {
		return
	}
	sanitizeParty(d.Sender)
	sanitizeParty(d.Recipient)
	if d.Cargo != nil {
		d.Cargo.Description = utils.SanitizeText(d.Cargo.Description)
		d.Cargo.Packaging = utils.SanitizeString(d.Cargo.Packaging)
		d.Cargo.Weight = utils.SanitizeString(d.Cargo.Weight)
		d.Cargo.Volume = utils.SanitizeString(d.Cargo.Volume)
		d.Cargo.TemperatureMode = utils.SanitizeString(d.Cargo.TemperatureMode)
	}
}

func sanitizeParty(p *domainOrder.Party) {
	if p == nil {
		return
	}
	p.Name = utils.SanitizeString(p.Name)
	p.ContactPerson = utils.SanitizeString(p.ContactPerson)
	p.Phone = utils.SanitizePhone(p.Phone)
	p.Email = utils.SanitizeEmail(p.Email)
	p.Address = utils.SanitizeString(p.Address)
}

// applyTo replaces the sub-records present in d and keeps the timeline.
func (d *DetailsRequest) applyTo(details *domainOrder.Details) {
	if d == nil {
		return
	}
	if d.Sender != nil {
		details.Sender = d.Sender
	}
	if d.Recipient != nil {
		details.Recipient = d.Recipient
	}
	if d.Cargo != nil {
		details.Cargo = d.Cargo
	}
}

// ApplyTo overlays every supplied field except Status, which goes through the transition table.
func (r *UpdateOrderRequest) ApplyTo(o *domainOrder.Order) {
	if r.OrderNumber != nil {
		o.OrderNumber = *r.OrderNumber
	}
	if r.ClientID != nil {
		o.ClientID = *r.ClientID
	}
	if r.CarrierID != nil {
		o.CarrierID = r.CarrierID
	}
	if r.ManagerID != nil {
		o.ManagerID = r.ManagerID
	}
	if r.Route != nil {
		o.Route = r.Route
	}
	if r.OriginAddress != nil {
		o.OriginAddress = *r.OriginAddress
	}
	if r.DestinationAddress != nil {
		o.DestinationAddress = *r.DestinationAddress
	}
	if r.Weight != nil {
		o.Weight = r.Weight
	}
	if r.Volume != nil {
		o.Volume = r.Volume
	}
	if r.Price != nil {
		o.Price = r.Price
	}
	if r.Cost != nil {
		o.Cost = r.Cost
	}
	if r.OrderDate != nil {
		o.OrderDate = r.OrderDate.Time
	}
	if r.DeliveryDate != nil {
		o.DeliveryDate = r.DeliveryDate.TimePtr()
	}
	r.Details.applyTo(&o.Details)
	if r.Notes != nil {
		o.Notes = r.Notes
	}
}

// Response DTOs
type OrderResponse struct {
	ID                 int64                 `json:"id"`
	OrderNumber        string                `json:"orderNumber"`
	ClientID           int64                 `json:"clientId"`
	CarrierID          *int64                `json:"carrierId"`
	ManagerID          *int64                `json:"managerId"`
	Route              *string               `json:"route"`
	OriginAddress      string                `json:"originAddress"`
	DestinationAddress string                `json:"destinationAddress"`
	Status             domainOrder.Status    `json:"status"`
	AllowedStatuses    []domainOrder.Status  `json:"allowedStatuses"`
	Weight             *string               `json:"weight"`
	Volume             *string               `json:"volume"`
	Price              *decimal.Decimal      `json:"price"`
	Cost               *decimal.Decimal      `json:"cost"`
	OrderDate          time.Time             `json:"orderDate"`
	DeliveryDate       *time.Time            `json:"deliveryDate"`
	Details            domainOrder.Details   `json:"details"`
	Notes              *string               `json:"notes"`
	InitialRoute       *InitialRouteResponse `json:"initialRoute,omitempty"`
	CreatedAt          time.Time             `json:"createdAt"`
	UpdatedAt          time.Time             `json:"updatedAt"`
}

// InitialRouteResponse identifies the route created alongside an order.
type InitialRouteResponse struct {
	ID     int64              `json:"id"`
	Status domainRoute.Status `json:"status"`
}

func ToOrderResponse(o *domainOrder.Order) *OrderResponse {
	allowed := domainOrder.GetAllowedTransitions(o.Status)
	if allowed == nil {
		allowed = []domainOrder.Status{}
	}

	return &OrderResponse{
		ID:                 o.ID,
		OrderNumber:        o.OrderNumber,
		ClientID:           o.ClientID,
		CarrierID:          o.CarrierID,
		ManagerID:          o.ManagerID,
		Route:              o.Route,
		OriginAddress:      o.OriginAddress,
		DestinationAddress: o.DestinationAddress,
		Status:             o.Status,
		AllowedStatuses:    allowed,
		Weight:             o.Weight,
		Volume:             o.Volume,
		Price:              o.Price,
		Cost:               o.Cost,
		OrderDate:          o.OrderDate,
		DeliveryDate:       o.DeliveryDate,
		Details:            o.Details,
		Notes:              o.Notes,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func ToOrderResponses(orders []*domainOrder.Order) []*OrderResponse {
	out := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = ToOrderResponse(o)
	}
	return out
}
