package client

import (
	"context"
	"testing"

	domainClient "logistics-backoffice/internal/domain/client"
	"logistics-backoffice/internal/domain/client/mocks"
	appErrors "logistics-backoffice/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	svc := NewService(repo)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c *domainClient.Client) error {
			assert.Equal(t, "ООО Ромашка", c.Name)
			assert.Equal(t, "info@romashka.ru", *c.Email)
			c.ID = 1
			return nil
		})

	resp, err := svc.Create(context.Background(), &CreateClientRequest{
		Name:  "  ООО Ромашка ",
		Email: strPtr("Info@Romashka.RU"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "ООО Ромашка", resp.Name)
}

func TestService_Create_ValidationFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), &CreateClientRequest{
		Name:  "A",
		Email: strPtr("not-an-email"),
	})
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeValidation, appErr.Code)
	assert.Len(t, appErr.Fields, 2)
}

func TestService_Update_KeepsOmittedFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	svc := NewService(repo)

	stored := &domainClient.Client{
		ID:            5,
		Name:          "Acme",
		ContactPerson: strPtr("Petrov"),
		Phone:         strPtr("+7 900 000-00-00"),
	}
	repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(stored, nil)
	repo.EXPECT().Update(gomock.Any(), stored).Return(nil)

	resp, err := svc.Update(context.Background(), 5, &UpdateClientRequest{
		Notes: strPtr("VIP"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme", resp.Name)
	assert.Equal(t, "Petrov", *resp.ContactPerson)
	assert.Equal(t, "+7 900 000-00-00", *resp.Phone)
	assert.Equal(t, "VIP", *resp.Notes)
}

func TestService_Update_RejectsBlankName(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), 5, &UpdateClientRequest{Name: strPtr("  ")})
	assert.Equal(t, appErrors.CodeValidation, appErrors.CodeOf(err))
}

func TestService_GetByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	svc := NewService(repo)

	repo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, domainClient.ErrClientNotFound)

	_, err := svc.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, domainClient.ErrClientNotFound)
}
