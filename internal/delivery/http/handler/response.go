package handler

import (
	"errors"
	"net/http"
	"strconv"

	"logistics-backoffice/internal/domain/session"
	"logistics-backoffice/internal/logger"
	"logistics-backoffice/internal/middleware"
	appErrors "logistics-backoffice/pkg/errors"
	"logistics-backoffice/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case appErrors.CodeValidation:
			utils.ValidationErrorResponse(c, http.StatusBadRequest, appErr.Message, appErr.Fields)
			return
		case appErrors.CodeBadRequest:
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
			return
		case appErrors.CodeUnauthorized:
			utils.ErrorResponse(c, http.StatusUnauthorized, appErr.Message)
			return
		case appErrors.CodeForbidden:
			utils.ErrorResponse(c, http.StatusForbidden, appErr.Message)
			return
		case appErrors.CodeNotFound:
			utils.ErrorResponse(c, http.StatusNotFound, appErr.Message)
			return
		case appErrors.CodeConflict, appErrors.CodeInvalidTransition:
			utils.ErrorResponse(c, http.StatusConflict, appErr.Message)
			return
		}
	}

	logger.Error("Internal server error",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
}

// parseID reads a positive integer path parameter, answering 400 itself when it is not one.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return false
	}
	return true
}

func currentSession(c *gin.Context) (*session.Session, bool) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		respondWithError(c, appErrors.ErrUnauthorized)
		return nil, false
	}
	return sess, true
}

// update registers both PUT and PATCH for merge updates.
func update(group *gin.RouterGroup, path string, h gin.HandlerFunc) {
	group.PUT(path, h)
	group.PATCH(path, h)
}
