package handler

import (
	"net/http"

	"logistics-backoffice/internal/usecase/route"

	"github.com/gin-gonic/gin"
)

type RouteHandler struct {
	service *route.Service
}

func NewRouteHandler(service *route.Service) *RouteHandler {
	return &RouteHandler{service: service}
}

func (h *RouteHandler) RegisterRoutes(router *gin.RouterGroup) {
	routes := router.Group("/routes")
	{
		routes.GET("", h.List)
		routes.GET("/active", h.ListActive)
		routes.POST("", h.Create)
		routes.GET("/:id", h.Get)
		update(routes, "/:id", h.Update)
	}
}

func (h *RouteHandler) Create(c *gin.Context) {
	var req route.CreateRouteRequest
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

func (h *RouteHandler) Get(c *gin.Context) {
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

func (h *RouteHandler) List(c *gin.Context) {
	var req route.ListRoutesRequest
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

func (h *RouteHandler) ListActive(c *gin.Context) {
	resp, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RouteHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req route.UpdateRouteRequest
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
