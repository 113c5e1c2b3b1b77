package handler

import (
	"net/http"

	"logistics-backoffice/internal/middleware"
	"logistics-backoffice/internal/usecase/notification"
	"logistics-backoffice/internal/usecase/task"
	"logistics-backoffice/internal/usecase/user"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service             *user.Service
	taskService         *task.Service
	notificationService *notification.Service
}

func NewUserHandler(service *user.Service, taskService *task.Service, notificationService *notification.Service) *UserHandler {
	return &UserHandler{
		service:             service,
		taskService:         taskService,
		notificationService: notificationService,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", h.List)
		users.POST("", middleware.AdminOnly(), h.Create)
		users.GET("/:id", h.Get)
		update(users, "/:id", h.Update)
		users.GET("/:id/tasks", h.ListTasks)
		users.GET("/:id/notifications", h.ListNotifications)
		users.POST("/:id/notifications/read-all", h.MarkAllNotificationsRead)
	}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req user.CreateUserRequest
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

func (h *UserHandler) Get(c *gin.Context) {
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

func (h *UserHandler) List(c *gin.Context) {
	var req user.ListUsersRequest
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

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var req user.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	actor := user.Actor{ID: sess.UserID, Role: sess.Role}
	resp, err := h.service.Update(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) ListTasks(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := h.taskService.ListByUser(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListNotifications accepts ?unread=true to hide read notifications.
func (h *UserHandler) ListNotifications(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req notification.ListNotificationsRequest
	if !bindQuery(c, &req) {
		return
	}

	resp, err := h.notificationService.ListByUser(c.Request.Context(), id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) MarkAllNotificationsRead(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := h.notificationService.MarkAllRead(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
