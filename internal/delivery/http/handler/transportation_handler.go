package handler

import (
	"context"
	"net/http"

	"logistics-backoffice/internal/usecase/transportation"

	"github.com/gin-gonic/gin"
)

type TransportationRequestHandler struct {
	service *transportation.Service
}

func NewTransportationRequestHandler(service *transportation.Service) *TransportationRequestHandler {
	return &TransportationRequestHandler{service: service}
}

func (h *TransportationRequestHandler) RegisterRoutes(router *gin.RouterGroup) {
	requests := router.Group("/transportation-requests")
	{
		requests.GET("", h.List)
		requests.POST("", h.Create)
		requests.GET("/:id", h.Get)
		update(requests, "/:id", h.Update)
		requests.POST("/:id/accept", h.action(h.service.Accept))
		requests.POST("/:id/reject", h.action(h.service.Reject))
		requests.POST("/:id/complete", h.action(h.service.Complete))
		requests.POST("/:id/cancel", h.action(h.service.Cancel))
	}
}

func (h *TransportationRequestHandler) Create(c *gin.Context) {
	var req transportation.CreateRequestRequest
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

func (h *TransportationRequestHandler) Get(c *gin.Context) {
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

func (h *TransportationRequestHandler) List(c *gin.Context) {
	var req transportation.ListRequestsRequest
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

func (h *TransportationRequestHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req transportation.UpdateRequestRequest
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

// action adapts a status shortcut of the service to a POST /:id/<verb> endpoint.
func (h *TransportationRequestHandler) action(fn func(context.Context, int64) (*transportation.RequestResponse, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		resp, err := fn(c.Request.Context(), id)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
