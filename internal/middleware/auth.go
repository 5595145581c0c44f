package middleware

import (
	"net/http"
	"strings"

	"github.com/campusmatch/campusmatch/internal/entity"
	authUseCase "github.com/campusmatch/campusmatch/internal/usecase/auth"
	"github.com/campusmatch/campusmatch/pkg/http_util"
	"github.com/labstack/echo"
)

// SessionCookie is the name of the login session cookie.
const SessionCookie = "campusmatch_session"

const userContextKey = "user"

// Principal authenticates the request via the auth usecase's strategy
// chain (session cookie first, then JWT bearer) and stores the resolved
// user in the echo context.
func Principal(authCase authUseCase.IAuthUseCase) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			creds := authUseCase.Credentials{}

			if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != nil {
				creds.SessionToken = cookie.Value
			}

			authHeader := c.Request().Header.Get("Authorization")
			if parts := strings.Split(authHeader, " "); len(parts) == 2 && parts[0] == "Bearer" {
				creds.BearerToken = parts[1]
			}

			user, err := authCase.ResolvePrincipal(c.Request().Context(), creds)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, http_util.HTTPErrorResponse{Message: "not authorized"})
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// UserFrom returns the authenticated user stored by Principal.
func UserFrom(c echo.Context) *entity.User {
	user, _ := c.Get(userContextKey).(*entity.User)
	return user
}
