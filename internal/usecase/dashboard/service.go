package dashboard

import (
	"context"

	domainOrder "logistics-backoffice/internal/domain/order"
	domainRoute "logistics-backoffice/internal/domain/route"
	domainTask "logistics-backoffice/internal/domain/task"
	domainTR "logistics-backoffice/internal/domain/transportation"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	orderRepo   domainOrder.Repository
	routeRepo   domainRoute.Repository
	requestRepo domainTR.Repository
	taskRepo    domainTask.Repository
}

func NewService(
	orderRepo domainOrder.Repository,
	routeRepo domainRoute.Repository,
	requestRepo domainTR.Repository,
	taskRepo domainTask.Repository,
) *Service {
	return &Service{
		orderRepo:   orderRepo,
		routeRepo:   routeRepo,
		requestRepo: requestRepo,
		taskRepo:    taskRepo,
	}
}

// Stats gathers the dashboard aggregates. The queries run concurrently.
func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	var (
		orderCounts   map[domainOrder.Status]int64
		routeCounts   map[domainRoute.Status]int64
		requestCounts map[domainTR.Status]int64
		pendingTasks  int64
		revenue       decimal.Decimal
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		orderCounts, err = s.orderRepo.CountByStatus(ctx)
		return err
	})
	g.Go(func() (err error) {
		routeCounts, err = s.routeRepo.CountByStatus(ctx)
		return err
	})
	g.Go(func() (err error) {
		requestCounts, err = s.requestRepo.CountByStatus(ctx)
		return err
	})
	g.Go(func() (err error) {
		pending := domainTask.StatusPending
		pendingTasks, err = s.taskRepo.Count(ctx, &domainTask.Filter{Status: &pending})
		return err
	})
	g.Go(func() (err error) {
		revenue, err = s.orderRepo.SumPrice(ctx, domainOrder.StatusCompleted)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &StatsResponse{
		Orders:                 OrderStats{breakdown(domainOrder.Statuses, orderCounts)},
		ActiveOrders:           orderCounts[domainOrder.StatusActive],
		Routes:                 RouteStats{StatusBreakdown: breakdown(domainRoute.Statuses, routeCounts)},
		TransportationRequests: breakdown(domainTR.Statuses, requestCounts),
		PendingTasks:           pendingTasks,
		Revenue:                revenue,
	}
	for _, st := range domainRoute.ActiveStatuses {
		stats.Routes.Active += routeCounts[st]
	}
	return stats, nil
}
