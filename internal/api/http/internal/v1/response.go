package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/hotel-booking/backend/internal/service"
	"github.com/hotel-booking/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func messageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: message})
}

func abortWithMessage(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, ErrorStruct{Success: false, Message: message})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrConflict),
		errors.Is(err, service.ErrExpired):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrTooManyAttempts):
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}

// errorResponse writes the envelope for a service error. Unexpected errors are
// logged and reported without details.
func errorResponse(c *gin.Context, err error) {
	var serviceErr *service.Error
	if !errors.As(err, &serviceErr) {
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		abortWithMessage(c, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	abortWithMessage(c, statusForError(serviceErr), serviceErr.Error())
}

func validationErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		abortWithMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}

	out := make([]ValidationError, len(verr))
	for i, ferr := range verr {
		out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrorStruct{
		Success: false,
		Message: validationErrorMessage,
		Errors:  out,
	})
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "number", "numericcode":
		return "Only digits are allowed"
	case "min":
		return fmt.Sprintf("Must be at least %v", value)
	case "max":
		return fmt.Sprintf("Must be at most %v", value)
	case "gt":
		return fmt.Sprintf("Must be greater than %v", value)
	case "oneof":
		return fmt.Sprintf("Must be one of: %v", value)
	case "phonenumber":
		return "Invalid phone number"
	case "uuid":
		return "Invalid id"
	}
	return tag
}
