package document

import (
	"context"
	"testing"

	domainDocument "logistics-backoffice/internal/domain/document"
	documentMocks "logistics-backoffice/internal/domain/document/mocks"
	domainOrder "logistics-backoffice/internal/domain/order"
	orderMocks "logistics-backoffice/internal/domain/order/mocks"
	userMocks "logistics-backoffice/internal/domain/user/mocks"
	appErrors "logistics-backoffice/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")

type fixture struct {
	documents *documentMocks.MockRepository
	orders    *orderMocks.MockRepository
	users     *userMocks.MockRepository
	svc       *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		documents: documentMocks.NewMockRepository(ctrl),
		orders:    orderMocks.NewMockRepository(ctrl),
		users:     userMocks.NewMockRepository(ctrl),
	}
	f.svc = NewService(f.documents, f.orders, f.users)
	return f
}

func TestService_Upload_DetectsType(t *testing.T) {
	f := newFixture(t)

	f.orders.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domainOrder.Order{ID: 1}, nil)
	f.documents.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d *domainDocument.Document) error {
			d.ID = 9
			d.FileSize = int64(len(d.FileData))
			return nil
		})

	resp, err := f.svc.Upload(context.Background(), &UploadDocumentRequest{OrderID: 1, FileName: "invoice.pdf", Data: pdfBytes})
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", resp.FileType)
	assert.Equal(t, int64(len(pdfBytes)), resp.FileSize)
	assert.True(t, resp.HasData)
}

func TestService_Upload_KeepsGivenType(t *testing.T) {
	f := newFixture(t)

	f.orders.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domainOrder.Order{ID: 1}, nil)
	f.documents.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := f.svc.Upload(context.Background(), &UploadDocumentRequest{OrderID: 1, FileName: "cmr", FileType: "CMR", Data: pdfBytes})
	require.NoError(t, err)
	assert.Equal(t, "CMR", resp.FileType)
}

func TestService_Create_RequiresContent(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), &CreateDocumentRequest{OrderID: 1, FileName: "x.pdf", FileType: "pdf"})
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeValidation, appErrors.CodeOf(err))
}

func TestService_Create_URLNeedsType(t *testing.T) {
	f := newFixture(t)

	url := "https://files.example.com/x.pdf"
	f.orders.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domainOrder.Order{ID: 1}, nil)

	_, err := f.svc.Create(context.Background(), &CreateDocumentRequest{OrderID: 1, FileName: "x.pdf", FileURL: &url})

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "fileType", appErr.Fields[0].Field)
}

func TestService_Upload_UnknownOrder(t *testing.T) {
	f := newFixture(t)

	f.orders.EXPECT().GetByID(gomock.Any(), int64(5)).Return(nil, domainOrder.ErrOrderNotFound)

	_, err := f.svc.Upload(context.Background(), &UploadDocumentRequest{OrderID: 5, FileName: "a.pdf", Data: pdfBytes})
	assert.ErrorIs(t, err, domainOrder.ErrOrderNotFound)
}

func TestService_Download(t *testing.T) {
	t.Run("with data", func(t *testing.T) {
		f := newFixture(t)
		f.documents.EXPECT().GetWithData(gomock.Any(), int64(9)).
			Return(&domainDocument.Document{ID: 9, FileData: pdfBytes, FileSize: int64(len(pdfBytes))}, nil)

		d, err := f.svc.Download(context.Background(), 9)
		require.NoError(t, err)
		assert.Equal(t, pdfBytes, d.FileData)
	})

	t.Run("link only", func(t *testing.T) {
		f := newFixture(t)
		url := "https://files.example.com/x.pdf"
		f.documents.EXPECT().GetWithData(gomock.Any(), int64(9)).Return(&domainDocument.Document{ID: 9, FileURL: &url}, nil)

		_, err := f.svc.Download(context.Background(), 9)
		assert.ErrorIs(t, err, domainDocument.ErrNoFileData)
	})
}

func TestService_ListByOrder_Empty(t *testing.T) {
	f := newFixture(t)

	orderID := int64(1)
	f.orders.EXPECT().GetByID(gomock.Any(), orderID).Return(&domainOrder.Order{ID: 1}, nil)
	f.documents.EXPECT().List(gomock.Any(), &domainDocument.Filter{OrderID: &orderID}).Return([]*domainDocument.Document{}, nil)

	resp, err := f.svc.ListByOrder(context.Background(), orderID)
	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}

func TestService_List_AllAndByOrder(t *testing.T) {
	f := newFixture(t)

	orderID := int64(4)
	f.documents.EXPECT().List(gomock.Any(), &domainDocument.Filter{}).
		Return([]*domainDocument.Document{{ID: 1, OrderID: 3}, {ID: 2, OrderID: 4}}, nil)
	f.documents.EXPECT().List(gomock.Any(), &domainDocument.Filter{OrderID: &orderID}).
		Return([]*domainDocument.Document{{ID: 2, OrderID: 4}}, nil)

	all, err := f.svc.List(context.Background(), &ListDocumentsRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byOrder, err := f.svc.List(context.Background(), &ListDocumentsRequest{OrderID: &orderID})
	require.NoError(t, err)
	require.Len(t, byOrder, 1)
	assert.Equal(t, int64(4), byOrder[0].OrderID)
}
