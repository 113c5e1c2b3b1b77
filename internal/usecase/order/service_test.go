package order

import (
	"context"
	"errors"
	"testing"
	"time"

	domainCarrier "logistics-backoffice/internal/domain/carrier"
	carrierMocks "logistics-backoffice/internal/domain/carrier/mocks"
	domainClient "logistics-backoffice/internal/domain/client"
	clientMocks "logistics-backoffice/internal/domain/client/mocks"
	"logistics-backoffice/internal/domain/event"
	eventMocks "logistics-backoffice/internal/domain/event/mocks"
	domainNotification "logistics-backoffice/internal/domain/notification"
	notificationMocks "logistics-backoffice/internal/domain/notification/mocks"
	domainOrder "logistics-backoffice/internal/domain/order"
	orderMocks "logistics-backoffice/internal/domain/order/mocks"
	domainRoute "logistics-backoffice/internal/domain/route"
	routeMocks "logistics-backoffice/internal/domain/route/mocks"
	txMocks "logistics-backoffice/internal/domain/transaction/mocks"
	domainUser "logistics-backoffice/internal/domain/user"
	userMocks "logistics-backoffice/internal/domain/user/mocks"
	vehicleMocks "logistics-backoffice/internal/domain/vehicle/mocks"
	appErrors "logistics-backoffice/pkg/errors"
	"logistics-backoffice/pkg/types"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	orders        *orderMocks.MockRepository
	clients       *clientMocks.MockRepository
	carriers      *carrierMocks.MockRepository
	users         *userMocks.MockRepository
	vehicles      *vehicleMocks.MockRepository
	routes        *routeMocks.MockRepository
	notifications *notificationMocks.MockRepository
	tx            *txMocks.MockManager
	publisher     *eventMocks.MockPublisher
	svc           *Service
}

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		orders:        orderMocks.NewMockRepository(ctrl),
		clients:       clientMocks.NewMockRepository(ctrl),
		carriers:      carrierMocks.NewMockRepository(ctrl),
		users:         userMocks.NewMockRepository(ctrl),
		vehicles:      vehicleMocks.NewMockRepository(ctrl),
		routes:        routeMocks.NewMockRepository(ctrl),
		notifications: notificationMocks.NewMockRepository(ctrl),
		tx:            txMocks.NewMockManager(ctrl),
		publisher:     eventMocks.NewMockPublisher(ctrl),
	}
	f.svc = NewService(Repositories{
		Orders:        f.orders,
		Clients:       f.clients,
		Carriers:      f.carriers,
		Users:         f.users,
		Vehicles:      f.vehicles,
		Routes:        f.routes,
		Notifications: f.notifications,
	}, f.tx, f.publisher)
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

func (f *fixture) runTransactions() {
	f.tx.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func int64Ptr(v int64) *int64 { return &v }

func validCreateRequest() *CreateOrderRequest {
	price := decimal.RequireFromString("1500.50")
	return &CreateOrderRequest{
		OrderNumber:        "ORD-2026-001",
		ClientID:           1,
		OriginAddress:      "Moscow, Lenina 1",
		DestinationAddress: "Kazan, Baumana 5",
		Price:              &price,
		OrderDate:          &types.Date{Time: fixedNow},
	}
}

func TestService_Create_SeedsTimeline(t *testing.T) {
	f := newFixture(t)
	f.runTransactions()

	f.clients.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domainClient.Client{ID: 1}, nil)
	f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o *domainOrder.Order) error {
			o.ID = 100
			return nil
		})

	resp, err := f.svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, domainOrder.StatusPending, resp.Status)
	require.Len(t, resp.Details.Timeline, 1)
	assert.Equal(t, domainOrder.StatusPending, resp.Details.Timeline[0].Status)
	assert.Equal(t, fixedNow, resp.Details.Timeline[0].Date)
	assert.Equal(t, "1500.5", resp.Price.String())
	assert.Nil(t, resp.InitialRoute)
}

func TestService_Create_WithManagerAndRoute(t *testing.T) {
	f := newFixture(t)
	f.runTransactions()

	req := validCreateRequest()
	req.ManagerID = int64Ptr(7)
	req.InitialRoute = &InitialRouteRequest{
		StartPoint: "Moscow",
		EndPoint:   "Kazan",
		Waypoints:  []domainRoute.Waypoint{{Name: "Vladimir"}},
	}

	f.clients.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domainClient.Client{ID: 1}, nil)
	f.users.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&domainUser.User{ID: 7}, nil)
	f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o *domainOrder.Order) error {
			o.ID = 101
			return nil
		})
	f.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *domainNotification.Notification) error {
			assert.Equal(t, int64(7), n.UserID)
			assert.Equal(t, int64(101), *n.RelatedOrderID)
			n.ID = 55
			return nil
		})
	f.routes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *domainRoute.Route) error {
			assert.Equal(t, int64(101), r.OrderID)
			assert.Len(t, r.Waypoints, 1)
			r.ID = 9
			return nil
		})
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e event.Event) error {
			assert.Equal(t, "notifications/7", e.Topic)
			return nil
		})

	resp, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.InitialRoute)
	assert.Equal(t, int64(9), resp.InitialRoute.ID)
}

func TestService_Create_RouteFailureRollsBack(t *testing.T) {
	f := newFixture(t)

	req := validCreateRequest()
	req.InitialRoute = &InitialRouteRequest{StartPoint: "Moscow", EndPoint: "Kazan"}

	routeErr := errors.New("insert failed")
	f.clients.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domainClient.Client{ID: 1}, nil)
	f.tx.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			err := fn(ctx)
			assert.Error(t, err)
			return err
		})
	f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.routes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(routeErr)

	_, err := f.svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, routeErr)
}

func TestService_Create_DuplicateNumber(t *testing.T) {
	f := newFixture(t)
	f.runTransactions()

	f.clients.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domainClient.Client{ID: 1}, nil)
	f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domainOrder.ErrOrderNumberExists)

	_, err := f.svc.Create(context.Background(), validCreateRequest())
	assert.Equal(t, appErrors.CodeConflict, appErrors.CodeOf(err))
}

func TestService_Create_Validation(t *testing.T) {
	f := newFixture(t)

	req := validCreateRequest()
	req.OrderNumber = "A1"
	req.OrderDate = nil

	_, err := f.svc.Create(context.Background(), req)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	fields := map[string]string{}
	for _, fe := range appErr.Fields {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(t, "must be at least 5 characters", fields["orderNumber"])
	assert.Equal(t, "is required", fields["orderDate"])
}

func TestService_Create_UnknownManager(t *testing.T) {
	f := newFixture(t)

	req := validCreateRequest()
	req.ManagerID = int64Ptr(8)
	f.clients.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domainClient.Client{ID: 1}, nil)
	f.users.EXPECT().GetByID(gomock.Any(), int64(8)).Return(nil, domainUser.ErrUserNotFound)

	_, err := f.svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domainOrder.ErrManagerNotFound)
}

func TestService_Create_UnknownCarrier(t *testing.T) {
	f := newFixture(t)

	req := validCreateRequest()
	req.CarrierID = int64Ptr(3)
	f.clients.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domainClient.Client{ID: 1}, nil)
	f.carriers.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, domainCarrier.ErrCarrierNotFound)

	_, err := f.svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domainCarrier.ErrCarrierNotFound)
}

func storedOrder(status domainOrder.Status) *domainOrder.Order {
	notes := "fragile"
	return &domainOrder.Order{
		ID:                 5,
		OrderNumber:        "ORD-00005",
		ClientID:           1,
		OriginAddress:      "Moscow",
		DestinationAddress: "Kazan",
		Status:             status,
		Notes:              &notes,
		Details: domainOrder.Details{
			Timeline: []domainOrder.TimelineEntry{{Status: domainOrder.StatusPending, Date: fixedNow.Add(-time.Hour)}},
		},
	}
}

func TestService_Update_StatusAppendsTimeline(t *testing.T) {
	f := newFixture(t)

	stored := storedOrder(domainOrder.StatusPending)
	f.orders.EXPECT().GetByID(gomock.Any(), int64(5)).Return(stored, nil)
	f.orders.EXPECT().Update(gomock.Any(), stored).Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), event.OrderStatusChanged(5, "pending", "active")).Return(nil)

	status := domainOrder.StatusActive
	note := "truck loaded"
	resp, err := f.svc.Update(context.Background(), 5, &UpdateOrderRequest{Status: &status, StatusNote: &note})
	require.NoError(t, err)

	assert.Equal(t, domainOrder.StatusActive, resp.Status)
	require.Len(t, resp.Details.Timeline, 2)
	assert.Equal(t, domainOrder.TimelineEntry{Status: domainOrder.StatusActive, Date: fixedNow, Note: "truck loaded"}, resp.Details.Timeline[1])
	assert.Equal(t, "fragile", *resp.Notes)
}

func TestService_Update_RejectsTerminalTransition(t *testing.T) {
	f := newFixture(t)

	f.orders.EXPECT().GetByID(gomock.Any(), int64(5)).Return(storedOrder(domainOrder.StatusCompleted), nil)

	status := domainOrder.StatusPending
	_, err := f.svc.Update(context.Background(), 5, &UpdateOrderRequest{Status: &status})
	assert.Equal(t, appErrors.CodeInvalidTransition, appErrors.CodeOf(err))
}

func TestService_Update_MergeKeepsOmittedFields(t *testing.T) {
	f := newFixture(t)

	stored := storedOrder(domainOrder.StatusPending)
	f.orders.EXPECT().GetByID(gomock.Any(), int64(5)).Return(stored, nil)
	f.orders.EXPECT().Update(gomock.Any(), stored).Return(nil)

	weight := "12 t"
	resp, err := f.svc.Update(context.Background(), 5, &UpdateOrderRequest{
		Weight:  &weight,
		Details: &DetailsRequest{Cargo: &domainOrder.Cargo{Description: "steel"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "12 t", *resp.Weight)
	assert.Equal(t, "ORD-00005", resp.OrderNumber)
	assert.Equal(t, "Moscow", resp.OriginAddress)
	assert.Equal(t, "fragile", *resp.Notes)
	assert.Equal(t, "steel", resp.Details.Cargo.Description)
	assert.Len(t, resp.Details.Timeline, 1)
}

func TestService_ListByClient_Missing(t *testing.T) {
	f := newFixture(t)

	f.clients.EXPECT().GetByID(gomock.Any(), int64(77)).Return(nil, domainClient.ErrClientNotFound)

	_, err := f.svc.ListByClient(context.Background(), 77)
	assert.ErrorIs(t, err, domainClient.ErrClientNotFound)
}

func TestService_ListByClient_Empty(t *testing.T) {
	f := newFixture(t)

	clientID := int64(1)
	f.clients.EXPECT().GetByID(gomock.Any(), clientID).Return(&domainClient.Client{ID: 1}, nil)
	f.orders.EXPECT().List(gomock.Any(), &domainOrder.Filter{ClientID: &clientID}).Return([]*domainOrder.Order{}, nil)

	resp, err := f.svc.ListByClient(context.Background(), clientID)
	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}
