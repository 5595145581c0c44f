package http_util

import (
	"errors"
	"net/http"

	"github.com/campusmatch/campusmatch/pkg/validator"
	"github.com/labstack/echo"
)

// ErrInvalidRequest is returned by DecodeValid after it has already
// written the 400 response. Handlers can return it directly; echo skips
// error handling once the response is committed.
var ErrInvalidRequest = errors.New("invalid request")

type HTTPResponse[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type HTTPErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func Encode[T any](c echo.Context, status int, v T) error {
	return c.JSON(status, v)
}

// Decode binds the request body into T.
func Decode[T any](c echo.Context) (T, error) {
	var v T
	if err := c.Bind(&v); err != nil {
		return v, err
	}
	return v, nil
}

// DecodeValid binds the request body and runs its Validate method. On
// bind or validation problems it writes the 400 response itself and
// returns a non-nil error so handlers can bail out with `return err`.
func DecodeValid[T any, PT interface {
	validator.Validate
	*T
}](c echo.Context) (T, error) {
	var v T
	if err := c.Bind(&v); err != nil {
		_ = c.JSON(http.StatusBadRequest, HTTPErrorResponse{Message: "Bad Request"})
		return v, ErrInvalidRequest
	}

	if problems := PT(&v).Validate(c.Request().Context()); len(problems) > 0 {
		_ = c.JSON(http.StatusBadRequest, HTTPErrorResponse{
			Message: "Bad Request",
			Errors:  problems,
		})
		return v, ErrInvalidRequest
	}
	return v, nil
}

func EncodeError(c echo.Context, status int, err error) error {
	return c.JSON(status, HTTPErrorResponse{Message: err.Error()})
}
