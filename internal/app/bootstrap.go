package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"careercraft/internal/config"
	"careercraft/internal/database"
	"careercraft/internal/delivery/http/handler"
	"careercraft/internal/delivery/http/middleware"
	"careercraft/internal/delivery/http/routes"
	"careercraft/internal/repository"
	"careercraft/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

// Deps are the stores and collaborators the HTTP app is built from. Cache may
// be nil.
type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  usecase.CatalogCache
	Logger *log.Logger
}

func New(d Deps) *App {
	if d.Logger == nil {
		d.Logger = log.Default()
	}

	f := fiber.New(fiber.Config{AppName: d.Config.App.AppName})
	registerGlobalMiddleware(f, d.Logger)

	userRepo := repository.NewPostgresUserRepository(d.DB)
	userSkillRepo := repository.NewPostgresUserSkillRepository(d.DB)
	careerRepo := repository.NewPostgresCareerRepository(d.DB)
	resourceRepo := repository.NewPostgresResourceRepository(d.DB)

	catalogUC := usecase.NewCatalogUsecase(careerRepo, d.Cache, d.Logger)
	recommendationUC := usecase.NewRecommendationUsecase(catalogUC, resourceRepo, userSkillRepo, usecase.RecommendationParams{
		DefaultTopN: d.Config.App.DefaultTopN,
		MaxTopN:     d.Config.App.MaxTopN,
	})

	routes.NewRegistry(routes.Handlers{
		Health:         handler.NewHealthHandler(d.DB),
		Auth:           handler.NewAuthHandler(usecase.NewAuthUsecase(userRepo)),
		UserSkill:      handler.NewUserSkillHandler(usecase.NewUserSkillUsecase(userSkillRepo)),
		Recommendation: handler.NewRecommendationHandler(recommendationUC),
		Career:         handler.NewCareerHandler(catalogUC),
	}).Register(f)

	return &App{Fiber: f}
}

// Bootstrap connects to the stores, brings the schema and seed data up to
// date and builds the HTTP app. The returned cleanup releases the stores.
func Bootstrap(ctx context.Context, cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connect: %w", err)
	}
	if err := c.Migrate(ctx); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	if err := c.Seed(ctx); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("seed: %w", err)
	}

	app := New(Deps{Config: cfg, DB: c.DB, Cache: c.Cache, Logger: c.Logger})
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
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
