package internal

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/campusmatch/campusmatch/internal/config"
	"github.com/campusmatch/campusmatch/internal/datastore/postgres"
	redisclient "github.com/campusmatch/campusmatch/internal/datastore/redis"
	s3store "github.com/campusmatch/campusmatch/internal/datastore/s3"
	"github.com/campusmatch/campusmatch/internal/logger"
	matchRepo "github.com/campusmatch/campusmatch/internal/repository/match"
	messageRepo "github.com/campusmatch/campusmatch/internal/repository/message"
	swipeRepo "github.com/campusmatch/campusmatch/internal/repository/swipe"
	userRepo "github.com/campusmatch/campusmatch/internal/repository/user"
	routesV1 "github.com/campusmatch/campusmatch/internal/routes/v1"
	authUseCase "github.com/campusmatch/campusmatch/internal/usecase/auth"
	chatUseCase "github.com/campusmatch/campusmatch/internal/usecase/chat"
	matchUseCase "github.com/campusmatch/campusmatch/internal/usecase/match"
	profileUseCase "github.com/campusmatch/campusmatch/internal/usecase/profile"
	"github.com/labstack/echo"
	"gorm.io/gorm"
)

type Server struct {
	writer     io.Writer
	httpServer *http.Server
	database   *gorm.DB
}

// Run boots the whole stack: config, logger, postgres with migrations,
// redis, S3 and the HTTP server. Blocks until the server stops.
func Run(ctx context.Context, w io.Writer, args []string) error {
	env := "DEV"
	if len(args) > 1 && args[1] != "" {
		env = args[1]
	}

	cfg, err := config.NewConfig(env)
	if err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}

	logger.InitFromConfig(cfg)

	server, err := NewServer(ctx, w, cfg)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	if err := server.StartServer(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func NewServer(ctx context.Context, w io.Writer, cfg *config.Config) (*Server, error) {
	if err := postgres.Migrate(
		cfg.Get("POSTGRES_USER"), cfg.Get("POSTGRES_PASSWORD"), cfg.Get("POSTGRES_DB_NAME"),
		cfg.Get("POSTGRES_HOST"), cfg.Get("POSTGRES_PORT"), cfg.Get("MIGRATIONS_PATH"),
	); err != nil {
		return nil, err
	}

	database, err := postgres.InitializeDB(
		cfg.Get("POSTGRES_USER"), cfg.Get("POSTGRES_PASSWORD"), cfg.Get("POSTGRES_DB_NAME"),
		cfg.Get("POSTGRES_HOST"), cfg.Get("POSTGRES_PORT"),
	)
	if err != nil {
		return nil, err
	}

	cache := redisclient.New(cfg.Get("REDIS_HOST")+":"+cfg.Get("REDIS_PORT"), cfg.Get("REDIS_PASSWORD"))
	if err := cache.Ping(ctx); err != nil {
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}

	storage, err := s3store.New(ctx, cfg.Get("AWS_REGION"), cfg.Get("AWS_S3_BUCKET_NAME"))
	if err != nil {
		return nil, err
	}

	users := userRepo.New(database)
	swipes := swipeRepo.New(database)
	matches := matchRepo.New(database)
	messages := messageRepo.New(database)

	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})

	server := &Server{
		writer: w,
		httpServer: &http.Server{
			Addr:    ":" + cfg.Get("PORT"),
			Handler: e,
		},
		database: database,
	}

	e.GET("/healthz", server.handleHealthCheck)

	routesV1.InitV1Routes(e, routesV1.UseCases{
		Auth:    authUseCase.New(users, cache),
		Profile: profileUseCase.New(users, storage),
		Match:   matchUseCase.New(users, swipes, matches, cache),
		Chat:    chatUseCase.New(matches, messages),
	})

	return server, nil
}

func (s *Server) StartServer() error {
	fmt.Fprintf(s.writer, "Server starting on %s\n", s.httpServer.Addr)
	logger.Info("server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
