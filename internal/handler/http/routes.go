package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// disallowed origins are rejected before cors or routing see the request
	router.Use(h.withOriginGate)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: false,
	}))

	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Post("/login", h.login)

		r.Get("/allanimals", h.listAllAnimals)
		r.Get("/animals/category/{category}", h.listAnimalsByCategory)
		r.Get("/api/animals/count", h.countAnimals)

		if !h.protectAllWrites {
			r.Put("/updateanimal/{id}", h.updateAnimal)
			r.Delete("/deleteanimal/{id}", h.deleteAnimal)
		}
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/addanimal", h.addAnimal)

		if h.protectAllWrites {
			r.Put("/updateanimal/{id}", h.updateAnimal)
			r.Delete("/deleteanimal/{id}", h.deleteAnimal)
		}
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}
