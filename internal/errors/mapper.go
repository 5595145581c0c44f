package errors

import (
	"context"
	"errors"
	"net/http"

	"github.com/campusmatch/campusmatch/internal/entity"
	"gorm.io/gorm"
)

// Status maps domain and infra errors to an HTTP status code. Keeps the
// route handlers free of error-classification switches.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	case errors.Is(err, entity.ErrInvalidSlot),
		errors.Is(err, entity.ErrSelfSwipe):
		return http.StatusBadRequest

	case errors.Is(err, entity.ErrUnauthorized):
		return http.StatusUnauthorized

	case errors.Is(err, entity.ErrEmptySlot),
		errors.Is(err, entity.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound

	case errors.Is(err, entity.ErrConflict):
		return http.StatusConflict

	case errors.Is(err, entity.ErrLikeLimit):
		return http.StatusTooManyRequests

	case errors.Is(err, entity.ErrStorageFailure):
		return http.StatusBadGateway

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	default:
		return http.StatusInternalServerError
	}
}
