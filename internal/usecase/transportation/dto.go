package transportation

import (
	"time"

	domainTR "logistics-backoffice/internal/domain/transportation"
	"logistics-backoffice/pkg/types"
	"logistics-backoffice/pkg/utils"

	"github.com/shopspring/decimal"
)

// Request DTOs
type CreateRequestRequest struct {
	OrderID       int64            `json:"orderId" validate:"required,gt=0"`
	CarrierID     int64            `json:"carrierId" validate:"required,gt=0"`
	RequestNumber string           `json:"requestNumber" validate:"required,min=1,max=100"`
	Description   *string          `json:"description" validate:"omitempty,max=2000"`
	CargoDetails  *string          `json:"cargoDetails" validate:"omitempty,max=2000"`
	Price         *decimal.Decimal `json:"price" validate:"omitnil,min=0"`
	RequestDate   *types.Date      `json:"requestDate" validate:"required"`
	DeliveryDate  *types.Date      `json:"deliveryDate"`
	Notes         *string          `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateRequestRequest struct {
	OrderID       *int64           `json:"orderId" validate:"omitnil,gt=0"`
	CarrierID     *int64           `json:"carrierId" validate:"omitnil,gt=0"`
	RequestNumber *string          `json:"requestNumber" validate:"omitnil,min=1,max=100"`
	Description   *string          `json:"description" validate:"omitempty,max=2000"`
	CargoDetails  *string          `json:"cargoDetails" validate:"omitempty,max=2000"`
	Price         *decimal.Decimal `json:"price" validate:"omitnil,min=0"`
	Status        *domainTR.Status `json:"status" validate:"omitnil,oneof=pending accepted rejected completed cancelled"`
	RequestDate   *types.Date      `json:"requestDate"`
	DeliveryDate  *types.Date      `json:"deliveryDate"`
	Notes         *string          `json:"notes" validate:"omitempty,max=2000"`
}

type ListRequestsRequest struct {
	OrderID   *int64           `form:"orderId" validate:"omitnil,gt=0"`
	CarrierID *int64           `form:"carrierId" validate:"omitnil,gt=0"`
	Status    *domainTR.Status `form:"status" validate:"omitnil,oneof=pending accepted rejected completed cancelled"`
}

func (r *CreateRequestRequest) Sanitize() {
	r.RequestNumber = utils.SanitizeString(r.RequestNumber)
	r.Description = utils.SanitizeOptionalText(r.Description)
	r.CargoDetails = utils.SanitizeOptionalText(r.CargoDetails)
	r.Notes = utils.SanitizeOptionalText(r.Notes)
}

func (r *UpdateRequestRequest) Sanitize() {
	r.RequestNumber = utils.SanitizeOptional(r.RequestNumber)
	r.Description = utils.SanitizeOptionalText(r.Description)
	r.CargoDetails = utils.SanitizeOptionalText(r.CargoDetails)
	r.Notes = utils.SanitizeOptionalText(r.Notes)
}

// ApplyTo overlays every supplied field except Status.
func (r *UpdateRequestRequest) ApplyTo(tr *domainTR.Request) {
	if r.OrderID != nil {
		tr.OrderID = *r.OrderID
	}
	if r.CarrierID != nil {
		tr.CarrierID = *r.CarrierID
	}
	if r.RequestNumber != nil {
		tr.RequestNumber = *r.RequestNumber
	}
	if r.Description != nil {
		tr.Description = r.Description
	}
	if r.CargoDetails != nil {
		tr.CargoDetails = r.CargoDetails
	}
	if r.Price != nil {
		tr.Price = r.Price
	}
	if r.RequestDate != nil {
		tr.RequestDate = r.RequestDate.Time
	}
	if r.DeliveryDate != nil {
		tr.DeliveryDate = r.DeliveryDate.TimePtr()
	}
	if r.Notes != nil {
		tr.Notes = r.Notes
	}
}

// Response DTOs
type RequestResponse struct {
	ID              int64             `json:"id"`
	OrderID         int64             `json:"orderId"`
	CarrierID       int64             `json:"carrierId"`
	RequestNumber   string            `json:"requestNumber"`
	Description     *string           `json:"description"`
	CargoDetails    *string           `json:"cargoDetails"`
	Price           *decimal.Decimal  `json:"price"`
	Status          domainTR.Status   `json:"status"`
	AllowedStatuses []domainTR.Status `json:"allowedStatuses"`
	RequestDate     time.Time         `json:"requestDate"`
	DeliveryDate    *time.Time        `json:"deliveryDate"`
	Notes           *string           `json:"notes"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

func ToRequestResponse(tr *domainTR.Request) *RequestResponse {
	allowed := domainTR.GetAllowedTransitions(tr.Status)
	if allowed == nil {
		allowed = []domainTR.Status{}
	}

	return &RequestResponse{
		ID:              tr.ID,
		OrderID:         tr.OrderID,
		CarrierID:       tr.CarrierID,
		RequestNumber:   tr.RequestNumber,
		Description:     tr.Description,
		CargoDetails:    tr.CargoDetails,
		Price:           tr.Price,
		Status:          tr.Status,
		AllowedStatuses: allowed,
		RequestDate:     tr.RequestDate,
		DeliveryDate:    tr.DeliveryDate,
		Notes:           tr.Notes,
		CreatedAt:       tr.CreatedAt,
		UpdatedAt:       tr.UpdatedAt,
	}
}

func ToRequestResponses(requests []*domainTR.Request) []*RequestResponse {
	out := make([]*RequestResponse, len(requests))
	for i, tr := range requests {
		out[i] = ToRequestResponse(tr)
	}
	return out
}
