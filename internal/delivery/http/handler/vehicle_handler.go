package handler

import (
	"net/http"

	"logistics-backoffice/internal/usecase/vehicle"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	service *vehicle.Service
}

func NewVehicleHandler(service *vehicle.Service) *VehicleHandler {
	return &VehicleHandler{service: service}
}

func (h *VehicleHandler) RegisterRoutes(router *gin.RouterGroup) {
	vehicles := router.Group("/vehicles")
	{
		vehicles.GET("", h.List)
		vehicles.POST("", h.Create)
		vehicles.GET("/:id", h.Get)
		update(vehicles, "/:id", h.Update)
	}
}

func (h *VehicleHandler) Create(c *gin.Context) {
	var req vehicle.CreateVehicleRequest
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

func (h *VehicleHandler) Get(c *gin.Context) {
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

// List accepts ?status= and ?carrierId= filters.
func (h *VehicleHandler) List(c *gin.Context) {
	var req vehicle.ListVehiclesRequest
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

func (h *VehicleHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req vehicle.UpdateVehicleRequest
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
