package routesV1Match

import (
	"net/http"
	"strconv"

	"github.com/campusmatch/campusmatch/internal/entity"
	svcErr "github.com/campusmatch/campusmatch/internal/errors"
	"github.com/campusmatch/campusmatch/internal/middleware"
	matchUseCase "github.com/campusmatch/campusmatch/internal/usecase/match"
	"github.com/campusmatch/campusmatch/pkg/http_util"
	"github.com/labstack/echo"
)

func DiscoverHandler(c echo.Context, matchCase matchUseCase.IMatchUseCase) error {
	user := middleware.UserFrom(c)

	limit := 10
	if s := c.QueryParam("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}

	profiles, err := matchCase.Discover(c.Request().Context(), user.ID, limit)
	if err != nil {
		return http_util.EncodeError(c, svcErr.Status(err), err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.DiscoverResponse]{
		Message: "Profiles fetched",
		Data:    entity.DiscoverResponse{Profiles: profiles},
	})
}

func SwipeHandler(c echo.Context, matchCase matchUseCase.IMatchUseCase) error {
	req, err := http_util.DecodeValid[entity.SwipeRequest](c)
	if err != nil {
		return err
	}

	targetID, err := idParam(c, "id")
	if err != nil {
		return http_util.EncodeError(c, http.StatusBadRequest, err)
	}

	user := middleware.UserFrom(c)
	resp, err := matchCase.Swipe(c.Request().Context(), user.ID, targetID, req.Action)
	if err != nil {
		return http_util.EncodeError(c, svcErr.Status(err), err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.SwipeResponse]{
		Message: "Swipe recorded",
		Data:    resp,
	})
}

func LikeCountHandler(c echo.Context, matchCase matchUseCase.IMatchUseCase) error {
	user := middleware.UserFrom(c)

	count, err := matchCase.LikeCount(c.Request().Context(), user.ID)
	if err != nil {
		return http_util.EncodeError(c, svcErr.Status(err), err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.LikeCountResponse]{
		Message: "Like count",
		Data:    entity.LikeCountResponse{Count: count},
	})
}

func ListMatchesHandler(c echo.Context, matchCase matchUseCase.IMatchUseCase) error {
	user := middleware.UserFrom(c)

	matches, err := matchCase.ListMatches(c.Request().Context(), user.ID)
	if err != nil {
		return http_util.EncodeError(c, svcErr.Status(err), err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[[]entity.Match]{
		Message: "Matches fetched",
		Data:    matches,
	})
}

func MatchWithHandler(c echo.Context, matchCase matchUseCase.IMatchUseCase) error {
	otherID, err := idParam(c, "id")
	if err != nil {
		return http_util.EncodeError(c, http.StatusBadRequest, err)
	}

	user := middleware.UserFrom(c)
	match, err := matchCase.MatchWith(c.Request().Context(), user.ID, otherID)
	if err != nil {
		return http_util.EncodeError(c, svcErr.Status(err), err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.Match]{
		Message: "Match state",
		Data:    match,
	})
}

func UnmatchHandler(c echo.Context, matchCase matchUseCase.IMatchUseCase) error {
	matchID, err := idParam(c, "id")
	if err != nil {
		return http_util.EncodeError(c, http.StatusBadRequest, err)
	}

	user := middleware.UserFrom(c)
	if err := matchCase.Unmatch(c.Request().Context(), user.ID, matchID); err != nil {
		return http_util.EncodeError(c, svcErr.Status(err), err)
	}

	return http_util.Encode(c, http.StatusOK, map[string]string{"message": "Unmatched"})
}

func idParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
