package routesV1Auth

import (
	"net/http"

	"github.com/campusmatch/campusmatch/internal/entity"
	svcErr "github.com/campusmatch/campusmatch/internal/errors"
	"github.com/campusmatch/campusmatch/internal/middleware"
	authUseCase "github.com/campusmatch/campusmatch/internal/usecase/auth"
	"github.com/campusmatch/campusmatch/pkg/http_util"
	"github.com/labstack/echo"
)

func SignUpHandler(c echo.Context, authCase authUseCase.IAuthUseCase) error {
	req, err := http_util.DecodeValid[entity.SignUpRequest](c)
	if err != nil {
		return err
	}

	user, err := authCase.SignUp(c.Request().Context(), req)
	if err != nil {
		return http_util.EncodeError(c, svcErr.Status(err), err)
	}

	return http_util.Encode(c, http.StatusCreated, http_util.HTTPResponse[entity.SignUpResponse]{
		Message: "User created",
		Data: entity.SignUpResponse{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
	})
}

func SignInHandler(c echo.Context, authCase authUseCase.IAuthUseCase) error {
	req, err := http_util.DecodeValid[entity.SignInRequest](c)
	if err != nil {
		return err
	}

	token, sessionToken, err := authCase.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return http_util.EncodeError(c, svcErr.Status(err), err)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    sessionToken,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.SignInResponse]{
		Message: "Signed in",
		Data:    entity.SignInResponse{Token: token},
	})
}

func SignOutHandler(c echo.Context, authCase authUseCase.IAuthUseCase) error {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil && cookie != nil {
		if err := authCase.SignOut(c.Request().Context(), cookie.Value); err != nil {
			return http_util.EncodeError(c, svcErr.Status(err), err)
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return http_util.Encode(c, http.StatusOK, map[string]string{"message": "Signed out"})
}

func MeHandler(c echo.Context) error {
	user := middleware.UserFrom(c)
	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.ProfileResponse]{
		Message: "Current user",
		Data: entity.ProfileResponse{
			User:      user,
			MainPhoto: user.MainPhotoURL(),
		},
	})
}
