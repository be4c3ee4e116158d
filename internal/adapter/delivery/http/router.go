// Package http provides the HTTP delivery layer for the URL shortener service:
// JSON API handlers, the public redirect endpoint and the router that wires
// them together with logging, sessions and panic recovery.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/vadimbarashkov/tinyapp/internal/session"
	"github.com/vadimbarashkov/tinyapp/pkg/middleware/recoverer"
)

// NewRouter initializes and returns a new Chi router configured with middleware and routes for the URL shortener API.
func NewRouter(
	logger *httplog.Logger,
	sessions *session.Manager,
	urlUseCase urlUseCase,
	userUseCase userUseCase,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*"},
		AllowedMethods:   []string{"POST", "GET", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(recoverer.New(logger.Logger))
	r.Use(sessions.Middleware)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/swagger.yml"),
	))

	r.Get("/docs/swagger.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./docs/swagger.yml")
	})

	validate := newValidate()
	urlH := newURLHandler(urlUseCase, sessions, validate)
	userH := newUserHandler(userUseCase, sessions, validate)

	r.Get("/u/{shortCode}", urlH.redirect)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", handlePing)

		r.Route("/users", func(r chi.Router) {
			r.Post("/register", userH.register)
			r.Post("/login", userH.login)
			r.Post("/logout", userH.logout)
			r.Get("/me", userH.me)
		})

		r.Route("/urls", func(r chi.Router) {
			r.Get("/", urlH.listURLs)
			r.Post("/", urlH.shortenURL)

			r.Route("/{shortCode}", func(r chi.Router) {
				r.Get("/", urlH.getURL)
				r.Put("/", urlH.modifyURL)
				r.Delete("/", urlH.deleteURL)
			})
		})
	})

	return r
}
