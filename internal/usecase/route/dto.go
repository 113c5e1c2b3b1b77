package route

import (
	"time"

	domainRoute "logistics-backoffice/internal/domain/route"
	"logistics-backoffice/pkg/types"
	"logistics-backoffice/pkg/utils"
)

// Request DTOs
type CreateRouteRequest struct {
	OrderID    int64                  `json:"orderId" validate:"required,gt=0"`
	VehicleID  *int64                 `json:"vehicleId" validate:"omitnil,gt=0"`
	StartPoint string                 `json:"startPoint" validate:"required,min=3,max=500"`
	EndPoint   string                 `json:"endPoint" validate:"required,min=3,max=500"`
	Waypoints  []domainRoute.Waypoint `json:"waypoints" validate:"omitempty,dive"`
	StartDate  *types.Date            `json:"startDate"`
	EndDate    *types.Date            `json:"endDate"`
	Progress   *types.FlexInt         `json:"progress"`
	Notes      *string                `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateRouteRequest struct {
	OrderID    *int64                 `json:"orderId" validate:"omitnil,gt=0"`
	VehicleID  *int64                 `json:"vehicleId" validate:"omitnil,gt=0"`
	StartPoint *string                `json:"startPoint" validate:"omitnil,min=3,max=500"`
	EndPoint   *string                `json:"endPoint" validate:"omitnil,min=3,max=500"`
	Waypoints  []domainRoute.Waypoint `json:"waypoints" validate:"omitempty,dive"`
	Status     *domainRoute.Status    `json:"status" validate:"omitnil,oneof=pending active completed cancelled"`
	StartDate  *types.Date            `json:"startDate"`
	EndDate    *types.Date            `json:"endDate"`
	Progress   *types.FlexInt         `json:"progress"`
	Notes      *string                `json:"notes" validate:"omitempty,max=2000"`
}

type ListRoutesRequest struct {
	OrderID   *int64              `form:"orderId" validate:"omitnil,gt=0"`
	VehicleID *int64              `form:"vehicleId" validate:"omitnil,gt=0"`
	Status    *domainRoute.Status `form:"status" validate:"omitnil,oneof=pending active completed cancelled"`
}

func sanitizeWaypoints(waypoints []domainRoute.Waypoint) {
	for i := range waypoints {
		waypoints[i].Name = utils.SanitizeString(waypoints[i].Name)
		waypoints[i].Address = utils.SanitizeString(waypoints[i].Address)
	}
}

func (r *CreateRouteRequest) Sanitize() {
	r.StartPoint = utils.SanitizeString(r.StartPoint)
	r.EndPoint = utils.SanitizeString(r.EndPoint)
	r.Notes = utils.SanitizeOptionalText(r.Notes)
	sanitizeWaypoints(r.Waypoints)
}

func (r *UpdateRouteRequest) Sanitize() {
	r.StartPoint = utils.SanitizeOptional(r.StartPoint)
	r.EndPoint = utils.SanitizeOptional(r.EndPoint)
	r.Notes = utils.SanitizeOptionalText(r.Notes)
	sanitizeWaypoints(r.Waypoints)
}

// ApplyTo overlays every supplied field except Status. A waypoints array, when
// present, replaces the stored sequence.
func (r *UpdateRouteRequest) ApplyTo(rt *domainRoute.Route) {
	if r.OrderID != nil {
		rt.OrderID = *r.OrderID
	}
	if r.VehicleID != nil {
		rt.VehicleID = r.VehicleID
	}
	if r.StartPoint != nil {
		rt.StartPoint = *r.StartPoint
	}
	if r.EndPoint != nil {
		rt.EndPoint = *r.EndPoint
	}
	if r.Waypoints != nil {
		rt.Waypoints = r.Waypoints
	}
	if r.StartDate != nil {
		rt.StartDate = r.StartDate.TimePtr()
	}
	if r.EndDate != nil {
		rt.EndDate = r.EndDate.TimePtr()
	}
	if p := r.Progress.IntPtr(); p != nil {
		rt.SetProgress(*p)
	}
	if r.Notes != nil {
		rt.Notes = r.Notes
	}
}

// Response DTOs
type RouteResponse struct {
	ID              int64                  `json:"id"`
	OrderID         int64                  `json:"orderId"`
	VehicleID       *int64                 `json:"vehicleId"`
	StartPoint      string                 `json:"startPoint"`
	EndPoint        string                 `json:"endPoint"`
	Waypoints       []domainRoute.Waypoint `json:"waypoints"`
	Status          domainRoute.Status     `json:"status"`
	AllowedStatuses []domainRoute.Status   `json:"allowedStatuses"`
	StartDate       *time.Time             `json:"startDate"`
	EndDate         *time.Time             `json:"endDate"`
	Progress        int                    `json:"progress"`
	Notes           *string                `json:"notes"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

func ToRouteResponse(rt *domainRoute.Route) *RouteResponse {
	waypoints := rt.Waypoints
	if waypoints == nil {
		waypoints = []domainRoute.Waypoint{}
	}
	allowed := domainRoute.GetAllowedTransitions(rt.Status)
	if allowed == nil {
		allowed = []domainRoute.Status{}
	}

	return &RouteResponse{
		ID:              rt.ID,
		OrderID:         rt.OrderID,
		VehicleID:       rt.VehicleID,
		StartPoint:      rt.StartPoint,
		EndPoint:        rt.EndPoint,
		Waypoints:       waypoints,
		Status:          rt.Status,
		AllowedStatuses: allowed,
		StartDate:       rt.StartDate,
		EndDate:         rt.EndDate,
		Progress:        rt.Progress,
		Notes:           rt.Notes,
		CreatedAt:       rt.CreatedAt,
		UpdatedAt:       rt.UpdatedAt,
	}
}

func ToRouteResponses(routes []*domainRoute.Route) []*RouteResponse {
	out := make([]*RouteResponse, len(routes))
	for i, rt := range routes {
		out[i] = ToRouteResponse(rt)
	}
	return out
}
