package routesV1Profile

import (
	"io"
	"net/http"
	"strconv"

	"github.com/campusmatch/campusmatch/internal/entity"
	svcErr "github.com/campusmatch/campusmatch/internal/errors"
	"github.com/campusmatch/campusmatch/internal/middleware"
	profileUseCase "github.com/campusmatch/campusmatch/internal/usecase/profile"
	"github.com/campusmatch/campusmatch/pkg/http_util"
	"github.com/labstack/echo"
)

// maxPhotoSize caps photo uploads at 10MB.
const maxPhotoSize = 10 << 20

func GetProfileHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	user := middleware.UserFrom(c)

	profile, err := profileCase.GetProfile(c.Request().Context(), user.ID)
	if err != nil {
		return http_util.EncodeError(c, svcErr.Status(err), err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.ProfileResponse]{
		Message: "Profile fetched",
		Data: entity.ProfileResponse{
			User:      profile,
			MainPhoto: profile.MainPhotoURL(),
		},
	})
}

func UpdateBasicHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	req, err := http_util.DecodeValid[entity.UpdateBasicProfileRequest](c)
	if err != nil {
		return err
	}

	user := middleware.UserFrom(c)
	profile, err := profileCase.UpdateBasic(c.Request().Context(), user.ID, req)
	if err != nil {
		return http_util.EncodeError(c, svcErr.Status(err), err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.ProfileResponse]{
		Message: "Profile updated",
		Data: entity.ProfileResponse{
			User:      profile,
			MainPhoto: profile.MainPhotoURL(),
		},
	})
}

func UpdatePromptsHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	req, err := http_util.DecodeValid[entity.UpdatePromptsRequest](c)
	if err != nil {
		return err
	}

	user := middleware.UserFrom(c)
	profile, err := profileCase.UpdatePrompts(c.Request().Context(), user.ID, req.Prompts)
	if err != nil {
		return http_util.EncodeError(c, svcErr.Status(err), err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.Prompts]{
		Message: "Prompts updated",
		Data:    profile.Prompts,
	})
}

func PromptQuestionsHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	return http_util.Encode(c, http.StatusOK, map[string][]string{
		"questions": profileCase.PromptQuestions(),
	})
}

func CompletionHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	user := middleware.UserFrom(c)

	score, err := profileCase.Completion(c.Request().Context(), user.ID)
	if err != nil {
		return http_util.EncodeError(c, svcErr.Status(err), err)
	}
	return http_util.Encode(c, http.StatusOK, score)
}

func UploadPhotoHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	slot, err := slotParam(c)
	if err != nil {
		return http_util.EncodeError(c, svcErr.Status(err), err)
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return http_util.EncodeError(c, http.StatusBadRequest, err)
	}
	if file.Size > maxPhotoSize {
		return c.JSON(http.StatusRequestEntityTooLarge, http_util.HTTPErrorResponse{Message: "photo exceeds 10MB"})
	}

	src, err := file.Open()
	if err != nil {
		return http_util.EncodeError(c, http.StatusBadRequest, err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxPhotoSize))
	if err != nil {
		return http_util.EncodeError(c, http.StatusBadRequest, err)
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	user := middleware.UserFrom(c)
	resp, err := profileCase.UploadPhoto(c.Request().Context(), user.ID, slot, file.Filename, data, contentType)
	if err != nil {
		return http_util.EncodeError(c, svcErr.Status(err), err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.PhotoSlotResponse]{
		Message: "Photo uploaded",
		Data:    resp,
	})
}

func DeletePhotoHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	slot, err := slotParam(c)
	if err != nil {
		return http_util.EncodeError(c, svcErr.Status(err), err)
	}

	user := middleware.UserFrom(c)
	resp, err := profileCase.DeletePhoto(c.Request().Context(), user.ID, slot)
	if err != nil {
		return http_util.EncodeError(c, svcErr.Status(err), err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.PhotoSlotResponse]{
		Message: "Photo deleted",
		Data:    resp,
	})
}

func SetMainPhotoHandler(c echo.Context, profileCase profileUseCase.IProfileUseCase) error {
	slot, err := slotParam(c)
	if err != nil {
		return http_util.EncodeError(c, svcErr.Status(err), err)
	}

	user := middleware.UserFrom(c)
	resp, err := profileCase.SetMainPhoto(c.Request().Context(), user.ID, slot)
	if err != nil {
		return http_util.EncodeError(c, svcErr.Status(err), err)
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.PhotoSlotResponse]{
		Message: "Main photo set",
		Data:    resp,
	})
}

func slotParam(c echo.Context) (int, error) {
	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		return 0, entity.ErrInvalidSlot
	}
	return slot, nil
}
