package app

import (
	"context"
	"fmt"
	"strings"

	"skill-matrix/internal/config"
	"skill-matrix/internal/delivery/http/handler"
	"skill-matrix/internal/delivery/http/middleware"
	"skill-matrix/internal/delivery/http/routes"
	v1 "skill-matrix/internal/delivery/http/routes/v1"
	"skill-matrix/internal/pkg/jwt"
	"skill-matrix/internal/pkg/logger"
	"skill-matrix/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds the Fiber app over an existing container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap connects infrastructure, starts the live update hub and builds
// the app. The returned cleanup stops the hub and closes connections.
func Bootstrap(ctx context.Context, cfg config.Config, log logger.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("bootstrap container: %w", err)
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	go c.Hub.Run(hubCtx)

	cleanup := func() error {
		stopHub()
		return c.Close()
	}
	return New(c), cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(c.Log.Named("http")).Middleware())
	app.Use(middleware.NewMetricsMiddleware(c.Metrics).Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Log.Named("http")).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	tokens := jwt.NewHMACService(jwt.Options{
		AccessSecret:     c.Config.JWT.AccessSecret,
		RefreshSecret:    c.Config.JWT.RefreshSecret,
		AccessExpiresIn:  c.Config.JWT.AccessExpiresIn,
		RefreshExpiresIn: c.Config.JWT.RefreshExpiresIn,
		Issuer:           c.Config.JWT.Issuer,
	})

	uc := NewUsecases(c.DB, Deps{
		Cache:         c.Cache,
		CacheObserver: c.Metrics,
		MatchObserver: c.Metrics,
		Notifier:      ws.NewNotifier(c.Hub),
		Tokens:        tokens,
		Log:           c.Log,
		StatsTTL:      c.Config.Redis.TTL,
	})

	registry := routes.NewRegistry(routes.Options{
		Health: handler.NewHealthHandler(c.DB),
		V1: v1.Handlers{
			Auth:        handler.NewAuthHandler(uc.Auth),
			Skill:       handler.NewSkillHandler(uc.Skills),
			Personnel:   handler.NewPersonnelHandler(uc.Personnel, uc.Assignments),
			Project:     handler.NewProjectHandler(uc.Projects, uc.Matching),
			Report:      handler.NewReportHandler(uc.Reports),
			RequireAuth: middleware.NewAuthMiddleware(tokens).Middleware(),
		},
		Metrics:     c.Metrics.Handler(),
		LiveUpdates: ws.NewHandler(c.Hub, c.Log.Named("ws")).HandleMatchUpdates,
	})
	registry.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
