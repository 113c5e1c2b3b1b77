package utils

import (
	appErrors "logistics-backoffice/pkg/errors"

	"github.com/gin-gonic/gin"
)

type errorBody struct {
	Message string                 `json:"message"`
	Errors  []appErrors.FieldError `json:"errors,omitempty"`
}

// ErrorResponse writes the {message} error envelope.
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, errorBody{Message: message})
}

// ValidationErrorResponse writes the {message, errors} envelope for field violations.
func ValidationErrorResponse(c *gin.Context, status int, message string, fields []appErrors.FieldError) {
	c.JSON(status, errorBody{Message: message, Errors: fields})
}
