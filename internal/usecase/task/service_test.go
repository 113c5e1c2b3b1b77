package task

import (
	"context"
	"testing"

	domainOrder "logistics-backoffice/internal/domain/order"
	orderMocks "logistics-backoffice/internal/domain/order/mocks"
	domainTask "logistics-backoffice/internal/domain/task"
	taskMocks "logistics-backoffice/internal/domain/task/mocks"
	domainUser "logistics-backoffice/internal/domain/user"
	userMocks "logistics-backoffice/internal/domain/user/mocks"
	appErrors "logistics-backoffice/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	tasks  *taskMocks.MockRepository
	users  *userMocks.MockRepository
	orders *orderMocks.MockRepository
	svc    *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		tasks:  taskMocks.NewMockRepository(ctrl),
		users:  userMocks.NewMockRepository(ctrl),
		orders: orderMocks.NewMockRepository(ctrl),
	}
	f.svc = NewService(f.tasks, f.users, f.orders)
	return f
}

func TestService_Create_Defaults(t *testing.T) {
	f := newFixture(t)

	assignee := int64(3)
	f.users.EXPECT().GetByID(gomock.Any(), assignee).Return(&domainUser.User{ID: 3}, nil)
	f.tasks.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, task *domainTask.Task) error {
			task.ID = 1
			return nil
		})

	resp, err := f.svc.Create(context.Background(), &CreateTaskRequest{Title: "Call client", AssignedTo: &assignee})
	require.NoError(t, err)
	assert.Equal(t, domainTask.StatusPending, resp.Status)
	assert.Equal(t, domainTask.PriorityMedium, resp.Priority)
	assert.Equal(t, &assignee, resp.AssignedTo)
}

func TestService_Create_InvalidPriority(t *testing.T) {
	f := newFixture(t)

	priority := domainTask.Priority("urgent")
	_, err := f.svc.Create(context.Background(), &CreateTaskRequest{Title: "Call client", Priority: &priority})

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "priority", appErr.Fields[0].Field)
	assert.Equal(t, "must be one of: low, medium, high", appErr.Fields[0].Message)
}

func TestService_Create_UnknownOrder(t *testing.T) {
	f := newFixture(t)

	orderID := int64(42)
	f.orders.EXPECT().GetByID(gomock.Any(), orderID).Return(nil, domainOrder.ErrOrderNotFound)

	_, err := f.svc.Create(context.Background(), &CreateTaskRequest{Title: "Check docs", RelatedOrderID: &orderID})
	assert.ErrorIs(t, err, domainOrder.ErrOrderNotFound)
}

func TestService_Update_Complete(t *testing.T) {
	f := newFixture(t)

	stored := &domainTask.Task{ID: 1, Title: "Call client", Status: domainTask.StatusPending, Priority: domainTask.PriorityHigh}
	f.tasks.EXPECT().GetByID(gomock.Any(), int64(1)).Return(stored, nil)
	f.tasks.EXPECT().Update(gomock.Any(), stored).Return(nil)

	done := domainTask.StatusCompleted
	resp, err := f.svc.Update(context.Background(), 1, &UpdateTaskRequest{Status: &done})
	require.NoError(t, err)
	assert.Equal(t, domainTask.StatusCompleted, resp.Status)
	assert.Equal(t, domainTask.PriorityHigh, resp.Priority)
	assert.Equal(t, "Call client", resp.Title)
}

func TestService_ListByUser(t *testing.T) {
	f := newFixture(t)

	userID := int64(3)
	f.users.EXPECT().GetByID(gomock.Any(), userID).Return(&domainUser.User{ID: 3}, nil)
	f.tasks.EXPECT().List(gomock.Any(), &domainTask.Filter{AssignedTo: &userID}).Return([]*domainTask.Task{}, nil)

	resp, err := f.svc.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}
