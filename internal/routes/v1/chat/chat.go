package routesV1Chat

import (
	"net/http"
	"strconv"

	"github.com/campusmatch/campusmatch/internal/entity"
	svcErr "github.com/campusmatch/campusmatch/internal/errors"
	"github.com/campusmatch/campusmatch/internal/middleware"
	chatUseCase "github.com/campusmatch/campusmatch/internal/usecase/chat"
	"github.com/campusmatch/campusmatch/pkg/http_util"
	"github.com/labstack/echo"
)

func SendMessageHandler(c echo.Context, chatCase chatUseCase.IChatUseCase) error {
	req, err := http_util.DecodeValid[entity.SendMessageRequest](c)
	if err != nil {
		return err
	}

	matchID, err := idParam(c, "id")
	if err != nil {
		return http_util.EncodeError(c, http.StatusBadRequest, err)
	}

	user := middleware.UserFrom(c)
	msg, err := chatCase.Send(c.Request().Context(), user.ID, matchID, req.Content, req.Type)
	if err != nil {
		return http_util.EncodeError(c, svcErr.Status(err), err)
	}

	return http_util.Encode(c, http.StatusCreated, http_util.HTTPResponse[*entity.Message]{
		Message: "Message sent",
		Data:    msg,
	})
}

func ListMessagesHandler(c echo.Context, chatCase chatUseCase.IChatUseCase) error {
	matchID, err := idParam(c, "id")
	if err != nil {
		return http_util.EncodeError(c, http.StatusBadRequest, err)
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	user := middleware.UserFrom(c)
	msgs, err := chatCase.List(c.Request().Context(), user.ID, matchID, limit, offset)
	if err != nil {
		return http_util.EncodeError(c, svcErr.Status(err), err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[[]entity.Message]{
		Message: "Messages fetched",
		Data:    msgs,
	})
}

func MarkReadHandler(c echo.Context, chatCase chatUseCase.IChatUseCase) error {
	messageID, err := idParam(c, "id")
	if err != nil {
		return http_util.EncodeError(c, http.StatusBadRequest, err)
	}

	user := middleware.UserFrom(c)
	if err := chatCase.MarkRead(c.Request().Context(), user.ID, messageID); err != nil {
		return http_util.EncodeError(c, svcErr.Status(err), err)
	}

	return http_util.Encode(c, http.StatusOK, map[string]string{"message": "Message read"})
}

func DeleteMessageHandler(c echo.Context, chatCase chatUseCase.IChatUseCase) error {
	messageID, err := idParam(c, "id")
	if err != nil {
		return http_util.EncodeError(c, http.StatusBadRequest, err)
	}

	user := middleware.UserFrom(c)
	if err := chatCase.Delete(c.Request().Context(), user.ID, messageID); err != nil {
		return http_util.EncodeError(c, svcErr.Status(err), err)
	}

	return http_util.Encode(c, http.StatusOK, map[string]string{"message": "Message deleted"})
}

func idParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
