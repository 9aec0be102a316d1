package wire

import (
	"net/http"

	"lotr-api/internal/adaptor"
	"lotr-api/internal/data/repository"
	"lotr-api/internal/oneapi"
	"lotr-api/internal/usecase"
	"lotr-api/pkg/database"
	"lotr-api/pkg/middleware"
	"lotr-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled router and the limiters it owns
type App struct {
	Router   *chi.Mux
	limiters []*middleware.RateLimiter
}

// Stop releases the rate limiter background goroutines.
func (a *App) Stop() {
	for _, rl := range a.limiters {
		rl.Stop()
	}
}

// Wiring initializes all dependencies
func Wiring(db database.PgxIface, config *utils.Config, logger *zap.Logger) *App {
	repo := repository.NewRepository(db, logger)
	service := usecase.NewService(repo, logger)
	client := oneapi.NewClient(config.OneAPI, logger)
	handler := adaptor.NewHandler(service, client, db, logger)

	general := middleware.NewRateLimiter(config.RateLimit.GeneralLimit, config.RateLimit.Window, logger)
	strict := middleware.NewRateLimiter(config.RateLimit.StrictLimit, config.RateLimit.Window, logger)

	router := setupRouter(handler, config, logger, general, strict)

	return &App{
		Router:   router,
		limiters: []*middleware.RateLimiter{general, strict},
	}
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger, general, strict *middleware.RateLimiter) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.SecureHeaders())
	r.Use(middleware.CORS(config.App.CORSOrigin))
	r.Use(general.Handler)

	// Apply routes
	wireRoot(r, config)
	wireHealth(r, handler.Health)
	wireMovies(r, handler.Movie)
	wireCharacters(r, handler.Character)
	wireReviews(r, handler.Review, strict)

	return r
}

// wireRoot serves the endpoint map at /
func wireRoot(r chi.Router, config *utils.Config) {
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		utils.ResponseJSON(w, http.StatusOK, map[string]any{
			"message": config.App.Name,
			"version": "1.0.0",
			"endpoints": map[string]string{
				"health":     "/health",
				"movies":     "/api/v1/movies",
				"characters": "/api/v1/characters",
				"reviews":    "/api/v1/reviews",
			},
		})
	})
}

func wireHealth(r chi.Router, handler *adaptor.HealthHandler) {
	r.Get("/health", handler.Health)
}
