package routesV1

import (
	"github.com/campusmatch/campusmatch/internal/middleware"
	routesV1Auth "github.com/campusmatch/campusmatch/internal/routes/v1/auth"
	routesV1Chat "github.com/campusmatch/campusmatch/internal/routes/v1/chat"
	routesV1Match "github.com/campusmatch/campusmatch/internal/routes/v1/match"
	routesV1Profile "github.com/campusmatch/campusmatch/internal/routes/v1/profile"
	authUseCase "github.com/campusmatch/campusmatch/internal/usecase/auth"
	chatUseCase "github.com/campusmatch/campusmatch/internal/usecase/chat"
	matchUseCase "github.com/campusmatch/campusmatch/internal/usecase/match"
	profileUseCase "github.com/campusmatch/campusmatch/internal/usecase/profile"
	"github.com/labstack/echo"
)

type UseCases struct {
	Auth    authUseCase.IAuthUseCase
	Profile profileUseCase.IProfileUseCase
	Match   matchUseCase.IMatchUseCase
	Chat    chatUseCase.IChatUseCase
}

func InitV1Routes(e *echo.Echo, uc UseCases) {
	v1 := e.Group("/v1")

	v1.POST("/auth/sign-up", func(c echo.Context) error {
		return routesV1Auth.SignUpHandler(c, uc.Auth)
	})
	v1.POST("/auth/sign-in", func(c echo.Context) error {
		return routesV1Auth.SignInHandler(c, uc.Auth)
	})
	v1.POST("/auth/sign-out", func(c echo.Context) error {
		return routesV1Auth.SignOutHandler(c, uc.Auth)
	})

	authed := e.Group("/v1", middleware.Principal(uc.Auth))

	authed.GET("/auth/me", routesV1Auth.MeHandler)

	authed.GET("/profile", func(c echo.Context) error {
		return routesV1Profile.GetProfileHandler(c, uc.Profile)
	})
	authed.PUT("/profile/basic", func(c echo.Context) error {
		return routesV1Profile.UpdateBasicHandler(c, uc.Profile)
	})
	authed.PUT("/profile/prompts", func(c echo.Context) error {
		return routesV1Profile.UpdatePromptsHandler(c, uc.Profile)
	})
	authed.GET("/profile/prompts/questions", func(c echo.Context) error {
		return routesV1Profile.PromptQuestionsHandler(c, uc.Profile)
	})
	authed.GET("/profile/completion", func(c echo.Context) error {
		return routesV1Profile.CompletionHandler(c, uc.Profile)
	})
	authed.POST("/profile/photos/slot/:slot", func(c echo.Context) error {
		return routesV1Profile.UploadPhotoHandler(c, uc.Profile)
	})
	authed.DELETE("/profile/photos/slot/:slot", func(c echo.Context) error {
		return routesV1Profile.DeletePhotoHandler(c, uc.Profile)
	})
	authed.PUT("/profile/photos/slot/:slot/main", func(c echo.Context) error {
		return routesV1Profile.SetMainPhotoHandler(c, uc.Profile)
	})

	authed.GET("/match/profiles", func(c echo.Context) error {
		return routesV1Match.DiscoverHandler(c, uc.Match)
	})
	authed.POST("/match/swipe/:id", func(c echo.Context) error {
		return routesV1Match.SwipeHandler(c, uc.Match)
	})
	authed.GET("/match/likes/count", func(c echo.Context) error {
		return routesV1Match.LikeCountHandler(c, uc.Match)
	})
	authed.GET("/matches", func(c echo.Context) error {
		return routesV1Match.ListMatchesHandler(c, uc.Match)
	})
	authed.GET("/matches/with/:id", func(c echo.Context) error {
		return routesV1Match.MatchWithHandler(c, uc.Match)
	})
	authed.DELETE("/matches/:id", func(c echo.Context) error {
		return routesV1Match.UnmatchHandler(c, uc.Match)
	})

	authed.POST("/matches/:id/messages", func(c echo.Context) error {
		return routesV1Chat.SendMessageHandler(c, uc.Chat)
	})
	authed.GET("/matches/:id/messages", func(c echo.Context) error {
		return routesV1Chat.ListMessagesHandler(c, uc.Chat)
	})
	authed.PUT("/messages/:id/read", func(c echo.Context) error {
		return routesV1Chat.MarkReadHandler(c, uc.Chat)
	})
	authed.DELETE("/messages/:id", func(c echo.Context) error {
		return routesV1Chat.DeleteMessageHandler(c, uc.Chat)
	})
}
