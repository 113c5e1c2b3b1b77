package handler

import (
	"net/http"

	"logistics-backoffice/internal/usecase/client"
	"logistics-backoffice/internal/usecase/order"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	service      *client.Service
	orderService *order.Service
}

func NewClientHandler(service *client.Service, orderService *order.Service) *ClientHandler {
	return &ClientHandler{service: service, orderService: orderService}
}

func (h *ClientHandler) RegisterRoutes(router *gin.RouterGroup) {
	clients := router.Group("/clients")
	{
		clients.GET("", h.List)
		clients.POST("", h.Create)
		clients.GET("/:id", h.Get)
		update(clients, "/:id", h.Update)
		clients.GET("/:id/orders", h.ListOrders)
	}
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req client.CreateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientHandler) List(c *gin.Context) {
	var req client.ListClientsRequest
	if !bindQuery(c, &req) {
		return
	}

	resp, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req client.UpdateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientHandler) ListOrders(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := h.orderService.ListByClient(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
