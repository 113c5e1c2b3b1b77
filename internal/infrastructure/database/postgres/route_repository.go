package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics-backoffice/internal/domain/route"
	"logistics-backoffice/internal/infrastructure/database/postgres/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RouteRepository struct {
	db *DB
}

func NewRouteRepository(db *DB) *RouteRepository {
	return &RouteRepository{db: db}
}

func (r *RouteRepository) Create(ctx context.Context, rt *route.Route) error {
	now := time.Now()
	rt.CreatedAt = now
	rt.UpdatedAt = now
	if rt.Status == "" {
		rt.Status = route.StatusPending
	}
	rt.SetProgress(rt.Progress)

	dbModel := toRouteModel(rt)
	if err := r.db.conn(ctx).Create(dbModel).Error; err != nil {
		return translateWriteError(err, "create route", nil)
	}

	rt.ID = dbModel.ID
	return nil
}

func (r *RouteRepository) GetByID(ctx context.Context, id int64) (*route.Route, error) {
	var dbModel models.RouteModel
	err := r.db.conn(ctx).Where("id = ?", id).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, route.ErrRouteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get route: %w", err)
	}

	return toRouteEntity(&dbModel), nil
}

func (r *RouteRepository) List(ctx context.Context, filter *route.Filter) ([]*route.Route, error) {
	var dbModels []models.RouteModel

	db := r.db.conn(ctx).Model(&models.RouteModel{})
	if filter != nil {
		if filter.OrderID != nil {
			db = db.Where("order_id = ?", *filter.OrderID)
		}
		if filter.VehicleID != nil {
			db = db.Where("vehicle_id = ?", *filter.VehicleID)
		}
		if len(filter.Statuses) > 0 {
			statuses := make([]string, len(filter.Statuses))
			for i, s := range filter.Statuses {
				statuses[i] = string(s)
			}
			db = db.Where("status IN ?", statuses)
		}
	}

	if err := db.Order("created_at DESC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}

	routes := make([]*route.Route, len(dbModels))
	for i := range dbModels {
		routes[i] = toRouteEntity(&dbModels[i])
	}
	return routes, nil
}

func (r *RouteRepository) Update(ctx context.Context, rt *route.Route) error {
	rt.UpdatedAt = time.Now()
	rt.SetProgress(rt.Progress)
	dbModel := toRouteModel(rt)

	result := r.db.conn(ctx).
		Model(&models.RouteModel{}).
		Where("id = ?", rt.ID).
		Updates(map[string]interface{}{
			"order_id":    dbModel.OrderID,
			"vehicle_id":  dbModel.VehicleID,
			"start_point": dbModel.StartPoint,
			"end_point":   dbModel.EndPoint,
			"waypoints":   dbModel.Waypoints,
			"status":      dbModel.Status,
			"start_date":  dbModel.StartDate,
			"end_date":    dbModel.EndDate,
			"progress":    dbModel.Progress,
			"notes":       dbModel.Notes,
			"updated_at":  rt.UpdatedAt,
		})

	if result.Error != nil {
		return translateWriteError(result.Error, "update route", nil)
	}
	if result.RowsAffected == 0 {
		return route.ErrRouteNotFound
	}
	return nil
}

func (r *RouteRepository) CountByStatus(ctx context.Context) (map[route.Status]int64, error) {
	var rows []statusCount
	err := r.db.conn(ctx).
		Model(&models.RouteModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count routes by status: %w", err)
	}

	counts := make(map[route.Status]int64, len(rows))
	for _, row := range rows {
		counts[route.Status(row.Status)] = row.Count
	}
	return counts, nil
}

func toRouteModel(rt *route.Route) *models.RouteModel {
	waypoints := rt.Waypoints
	if waypoints == nil {
		waypoints = []route.Waypoint{}
	}

	return &models.RouteModel{
		ID:         rt.ID,
		OrderID:    rt.OrderID,
		VehicleID:  rt.VehicleID,
		StartPoint: rt.StartPoint,
		EndPoint:   rt.EndPoint,
		Waypoints:  datatypes.NewJSONSlice(waypoints),
		Status:     string(rt.Status),
		StartDate:  rt.StartDate,
		EndDate:    rt.EndDate,
		Progress:   rt.Progress,
		Notes:      rt.Notes,
		CreatedAt:  rt.CreatedAt,
		UpdatedAt:  rt.UpdatedAt,
	}
}

func toRouteEntity(m *models.RouteModel) *route.Route {
	waypoints := []route.Waypoint(m.Waypoints)
	if waypoints == nil {
		waypoints = []route.Waypoint{}
	}

	return &route.Route{
		ID:         m.ID,
		OrderID:    m.OrderID,
		VehicleID:  m.VehicleID,
		StartPoint: m.StartPoint,
		EndPoint:   m.EndPoint,
		Waypoints:  waypoints,
		Status:     route.Status(m.Status),
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		Progress:   m.Progress,
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
