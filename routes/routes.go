package routes

import (
	"net/http"
	"time"

	"github.com/Dosada05/chess-tournaments/handlers"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Dosada05/chess-tournaments/docs" // swagger spec
)

type Options struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

func SetupRoutes(router chi.Router, tournamentHandler *handlers.TournamentHandler, opts Options) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	if opts.RequestTimeout > 0 {
		router.Use(chiMiddleware.Timeout(opts.RequestTimeout))
	}

	// Эндпоинт только для чтения, поэтому разрешаем лишь GET/HEAD/OPTIONS
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	router.NotFound(tournamentHandler.NotFoundHandler)
	router.MethodNotAllowed(tournamentHandler.MethodNotAllowedHandler)

	router.Get("/healthz", tournamentHandler.HealthHandler)

	router.Route("/api", func(r chi.Router) {
		r.Get("/tournaments", tournamentHandler.ListHandler)
	})

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
}
