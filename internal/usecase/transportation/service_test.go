package transportation

import (
	"context"
	"errors"
	"testing"
	"time"

	domainCarrier "logistics-backoffice/internal/domain/carrier"
	carrierMocks "logistics-backoffice/internal/domain/carrier/mocks"
	"logistics-backoffice/internal/domain/event"
	eventMocks "logistics-backoffice/internal/domain/event/mocks"
	domainOrder "logistics-backoffice/internal/domain/order"
	orderMocks "logistics-backoffice/internal/domain/order/mocks"
	domainTR "logistics-backoffice/internal/domain/transportation"
	trMocks "logistics-backoffice/internal/domain/transportation/mocks"
	appErrors "logistics-backoffice/pkg/errors"
	"logistics-backoffice/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	requests  *trMocks.MockRepository
	orders    *orderMocks.MockRepository
	carriers  *carrierMocks.MockRepository
	publisher *eventMocks.MockPublisher
	svc       *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		requests:  trMocks.NewMockRepository(ctrl),
		orders:    orderMocks.NewMockRepository(ctrl),
		carriers:  carrierMocks.NewMockRepository(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
	}
	f.svc = NewService(f.requests, f.orders, f.carriers, f.publisher)
	return f
}

func TestService_Create(t *testing.T) {
	f := newFixture(t)

	f.orders.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domainOrder.Order{ID: 1}, nil)
	f.carriers.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&domainCarrier.Carrier{ID: 2}, nil)
	f.requests.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *domainTR.Request) error {
			r.ID = 10
			return nil
		})

	resp, err := f.svc.Create(context.Background(), &CreateRequestRequest{
		OrderID:       1,
		CarrierID:     2,
		RequestNumber: " TR-1 ",
		RequestDate:   &types.Date{Time: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "TR-1", resp.RequestNumber)
	assert.Equal(t, domainTR.StatusPending, resp.Status)
	assert.ElementsMatch(t, []domainTR.Status{domainTR.StatusAccepted, domainTR.StatusRejected, domainTR.StatusCancelled}, resp.AllowedStatuses)
}

func TestService_Create_UnknownCarrier(t *testing.T) {
	f := newFixture(t)

	f.orders.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domainOrder.Order{ID: 1}, nil)
	f.carriers.EXPECT().GetByID(gomock.Any(), int64(2)).Return(nil, domainCarrier.ErrCarrierNotFound)

	_, err := f.svc.Create(context.Background(), &CreateRequestRequest{
		OrderID:       1,
		CarrierID:     2,
		RequestNumber: "TR-1",
		RequestDate:   &types.Date{Time: time.Now()},
	})
	assert.ErrorIs(t, err, domainCarrier.ErrCarrierNotFound)
}

func TestService_AcceptThenBackToPending(t *testing.T) {
	f := newFixture(t)

	stored := &domainTR.Request{ID: 5, OrderID: 1, CarrierID: 2, RequestNumber: "TR-5", Status: domainTR.StatusPending}
	f.requests.EXPECT().GetByID(gomock.Any(), int64(5)).Return(stored, nil).Times(2)
	f.requests.EXPECT().Update(gomock.Any(), stored).Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), event.TransportationRequestStatusChanged(5, "pending", "accepted")).Return(nil)

	resp, err := f.svc.Accept(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, domainTR.StatusAccepted, resp.Status)

	pending := domainTR.StatusPending
	_, err = f.svc.Update(context.Background(), 5, &UpdateRequestRequest{Status: &pending})
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeInvalidTransition, appErrors.CodeOf(err))
	assert.Equal(t, "Cannot change transportation request status from accepted to pending", err.Error())
}

func TestService_Transition_SameStatusIsNoop(t *testing.T) {
	f := newFixture(t)

	f.requests.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&domainTR.Request{ID: 5, Status: domainTR.StatusAccepted}, nil)

	resp, err := f.svc.Accept(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, domainTR.StatusAccepted, resp.Status)
}

func TestService_Transition_PublishFailureIsIgnored(t *testing.T) {
	f := newFixture(t)

	f.requests.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&domainTR.Request{ID: 5, Status: domainTR.StatusAccepted}, nil)
	f.requests.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	resp, err := f.svc.Complete(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, domainTR.StatusCompleted, resp.Status)
	assert.Empty(t, resp.AllowedStatuses)
}

func TestService_Reject_Terminal(t *testing.T) {
	f := newFixture(t)

	f.requests.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&domainTR.Request{ID: 5, Status: domainTR.StatusRejected}, nil)

	_, err := f.svc.Cancel(context.Background(), 5)
	assert.Equal(t, appErrors.CodeInvalidTransition, appErrors.CodeOf(err))
}

func TestService_Update_MergeKeepsFields(t *testing.T) {
	f := newFixture(t)

	desc := "Pallets"
	stored := &domainTR.Request{ID: 5, OrderID: 1, CarrierID: 2, RequestNumber: "TR-5", Description: &desc, Status: domainTR.StatusPending}
	f.requests.EXPECT().GetByID(gomock.Any(), int64(5)).Return(stored, nil)
	f.requests.EXPECT().Update(gomock.Any(), stored).Return(nil)

	notes := "Call before arrival"
	resp, err := f.svc.Update(context.Background(), 5, &UpdateRequestRequest{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, "TR-5", resp.RequestNumber)
	assert.Equal(t, &desc, resp.Description)
	assert.Equal(t, &notes, resp.Notes)
}

func TestService_ListByCarrier(t *testing.T) {
	f := newFixture(t)

	carrierID := int64(2)
	f.carriers.EXPECT().GetByID(gomock.Any(), carrierID).Return(&domainCarrier.Carrier{ID: 2}, nil)
	f.requests.EXPECT().List(gomock.Any(), &domainTR.Filter{CarrierID: &carrierID}).
		Return([]*domainTR.Request{{ID: 1, CarrierID: 2, Status: domainTR.StatusPending}}, nil)

	resp, err := f.svc.ListByCarrier(context.Background(), carrierID)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, carrierID, resp[0].CarrierID)
}

func TestService_ListByOrder_Missing(t *testing.T) {
	f := newFixture(t)

	f.orders.EXPECT().GetByID(gomock.Any(), int64(7)).Return(nil, domainOrder.ErrOrderNotFound)

	_, err := f.svc.ListByOrder(context.Background(), 7)
	assert.ErrorIs(t, err, domainOrder.ErrOrderNotFound)
}
