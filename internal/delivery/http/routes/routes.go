package routes

import (
	"careercraft/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type Handlers struct {
	Health         *handler.HealthHandler
	Auth           *handler.AuthHandler
	UserSkill      *handler.UserSkillHandler
	Recommendation *handler.RecommendationHandler
	Career         *handler.CareerHandler
}

type routeRegistrar interface {
	RegisterRoutes(r fiber.Router)
}

type Registry struct {
	handlers Handlers
}

func NewRegistry(h Handlers) *Registry {
	if h.Health == nil {
		h.Health = handler.NewHealthHandler(nil)
	}
	return &Registry{handlers: h}
}

// Register mounts every endpoint under /api. Browsers on any origin may call
// the API, so CORS is wide open.
func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	api := app.Group("/api", cors.New())

	for _, h := range r.registrars() {
		h.RegisterRoutes(api)
	}
}

func (r *Registry) registrars() []routeRegistrar {
	out := []routeRegistrar{r.handlers.Health}
	if r.handlers.Auth != nil {
		out = append(out, r.handlers.Auth)
	}
	if r.handlers.UserSkill != nil {
		out = append(out, r.handlers.UserSkill)
	}
	if r.handlers.Recommendation != nil {
		out = append(out, r.handlers.Recommendation)
	}
	if r.handlers.Career != nil {
		out = append(out, r.handlers.Career)
	}
	return out
}
