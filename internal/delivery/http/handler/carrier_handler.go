package handler

import (
	"net/http"

	"logistics-backoffice/internal/usecase/carrier"
	"logistics-backoffice/internal/usecase/transportation"
	"logistics-backoffice/internal/usecase/vehicle"

	"github.com/gin-gonic/gin"
)

type CarrierHandler struct {
	service        *carrier.Service
	vehicleService *vehicle.Service
	requestService *transportation.Service
}

func NewCarrierHandler(service *carrier.Service, vehicleService *vehicle.Service, requestService *transportation.Service) *CarrierHandler {
	return &CarrierHandler{
		service:        service,
		vehicleService: vehicleService,
		requestService: requestService,
	}
}

func (h *CarrierHandler) RegisterRoutes(router *gin.RouterGroup) {
	carriers := router.Group("/carriers")
	{
		carriers.GET("", h.List)
		carriers.POST("", h.Create)
		carriers.GET("/:id", h.Get)
		update(carriers, "/:id", h.Update)
		carriers.GET("/:id/vehicles", h.ListVehicles)
		carriers.GET("/:id/transportation-requests", h.ListRequests)
	}
}

func (h *CarrierHandler) Create(c *gin.Context) {
	var req carrier.CreateCarrierRequest
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

func (h *CarrierHandler) Get(c *gin.Context) {
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

func (h *CarrierHandler) List(c *gin.Context) {
	var req carrier.ListCarriersRequest
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

func (h *CarrierHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req carrier.UpdateCarrierRequest
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

func (h *CarrierHandler) ListVehicles(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := h.vehicleService.ListByCarrier(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CarrierHandler) ListRequests(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := h.requestService.ListByCarrier(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
