package helper

import (
	"errors"
	"net/http"

	. "todolist/internal/adapter/http/validation"
	"todolist/internal/core/apperr"
	"todolist/internal/core/model/response"

	"github.com/gin-gonic/gin"
)

func SendSuccess(c *gin.Context, statusCode int, data any, message ...string) {
	response := response.SuccessResponse{
		Data: data,
	}

	if len(message) > 0 && message[0] != "" {
		response.Message = message[0]
	}

	c.JSON(statusCode, response)
}

func SendError(c *gin.Context, statusCode, code int, message string, errors []response.ValidationError, details ...any) {
	errorResponse := response.ErrorResponse{
		Error: response.ResponseError{
			Code:    code,
			Message: message,
			Errors:  errors,
		},
	}

	if len(details) > 0 {
		errorResponse.Error.Details = details[0]
	}

	c.JSON(statusCode, errorResponse)
}

// SendAppError translates a domain error into its wire shape. Unknown errors
// deliberately collapse into a plain 500 so internals never leak.
func SendAppError(c *gin.Context, err error) {
	var appErr *apperr.Error

	if errors.As(err, &appErr) {
		SendError(c, appErr.Status, appErr.Code, appErr.Message, nil)
		return
	}

	SendInternalError(c, "Internal server error")
}

func SendValidationError(c *gin.Context, err error) {
	validationErrors := FormatValidationErrors(err)
	SendError(c, http.StatusBadRequest, http.StatusBadRequest, "Validation failed", validationErrors)
}

func SendInternalError(c *gin.Context, message string, details ...any) {
	errors := []response.ValidationError{
		{
			Field:   "server",
			Message: message,
		},
	}

	SendError(c, http.StatusInternalServerError, http.StatusInternalServerError, message, errors, details...)
}

func SendUnauthorizedError(c *gin.Context, message string) {
	errors := []response.ValidationError{
		{
			Field:   "auth",
			Message: message,
		},
	}

	SendError(c, http.StatusUnauthorized, http.StatusUnauthorized, message, errors)
}

func SendBadRequestError(c *gin.Context, field string, message string) {
	errors := []response.ValidationError{
		{
			Field:   field,
			Message: message,
		},
	}

	SendError(c, http.StatusBadRequest, http.StatusBadRequest, message, errors)
}

func SendNotFoundError(c *gin.Context, message string) {
	errors := []response.ValidationError{
		{
			Field:   "resource",
			Message: message,
		},
	}

	SendError(c, http.StatusNotFound, http.StatusNotFound, message, errors)
}
