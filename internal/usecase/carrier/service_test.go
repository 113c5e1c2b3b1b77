package carrier

import (
	"context"
	"testing"

	domainCarrier "logistics-backoffice/internal/domain/carrier"
	"logistics-backoffice/internal/domain/carrier/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_CreateAndUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	svc := NewService(repo)

	vt := "  refrigerator "
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c *domainCarrier.Carrier) error {
			c.ID = 3
			return nil
		})

	created, err := svc.Create(context.Background(), &CreateCarrierRequest{
		Name:        "TransLine",
		VehicleType: &vt,
	})
	require.NoError(t, err)
	assert.Equal(t, "refrigerator", *created.VehicleType)

	stored := &domainCarrier.Carrier{ID: 3, Name: "TransLine", VehicleType: created.VehicleType}
	repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(stored, nil)
	repo.EXPECT().Update(gomock.Any(), stored).Return(nil)

	name := "TransLine Group"
	updated, err := svc.Update(context.Background(), 3, &UpdateCarrierRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "TransLine Group", updated.Name)
	assert.Equal(t, "refrigerator", *updated.VehicleType)
}

func TestService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	svc := NewService(repo)

	repo.EXPECT().GetByID(gomock.Any(), int64(404)).Return(nil, domainCarrier.ErrCarrierNotFound)

	_, err := svc.Update(context.Background(), 404, &UpdateCarrierRequest{})
	assert.ErrorIs(t, err, domainCarrier.ErrCarrierNotFound)
}
