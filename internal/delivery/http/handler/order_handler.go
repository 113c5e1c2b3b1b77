package handler

import (
	"io"
	"net/http"

	"logistics-backoffice/internal/usecase/document"
	"logistics-backoffice/internal/usecase/order"
	"logistics-backoffice/internal/usecase/route"
	"logistics-backoffice/internal/usecase/task"
	"logistics-backoffice/internal/usecase/transportation"
	appErrors "logistics-backoffice/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OrderServices groups the services the order endpoints delegate to.
type OrderServices struct {
	Orders    *order.Service
	Routes    *route.Service
	Documents *document.Service
	Tasks     *task.Service
	Requests  *transportation.Service
}

type OrderHandler struct {
	services OrderServices
}

func NewOrderHandler(services OrderServices) *OrderHandler {
	return &OrderHandler{services: services}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	{
		orders.GET("", h.List)
		orders.POST("", h.Create)
		orders.GET("/:id", h.Get)
		update(orders, "/:id", h.Update)
		orders.GET("/:id/routes", h.ListRoutes)
		orders.GET("/:id/documents", h.ListDocuments)
		orders.POST("/:id/documents", h.UploadDocument)
		orders.GET("/:id/tasks", h.ListTasks)
		orders.GET("/:id/transportation-requests", h.ListRequests)
	}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req order.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.services.Orders.Create(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := h.services.Orders.GetByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) List(c *gin.Context) {
	var req order.ListOrdersRequest
	if !bindQuery(c, &req) {
		return
	}

	resp, err := h.services.Orders.List(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req order.UpdateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.services.Orders.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) ListRoutes(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := h.services.Routes.ListByOrder(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) ListDocuments(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := h.services.Documents.ListByOrder(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UploadDocument takes a multipart form with a "file" part and an optional "fileType" field.
func (h *OrderHandler) UploadDocument(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondWithError(c, appErrors.NewAppError(appErrors.CodeBadRequest, "Multipart field \"file\" is required", err))
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		respondWithError(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		respondWithError(c, appErrors.NewAppError(appErrors.CodeBadRequest, "Could not read uploaded file", err))
		return
	}

	req := &document.UploadDocumentRequest{
		OrderID:    id,
		FileName:   fileHeader.Filename,
		FileType:   c.PostForm("fileType"),
		Data:       data,
		UploadedBy: &sess.UserID,
	}

	resp, err := h.services.Documents.Upload(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OrderHandler) ListTasks(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := h.services.Tasks.ListByOrder(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) ListRequests(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := h.services.Requests.ListByOrder(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
