package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shopfwd/shopfwd/internal/http/auth"
	"github.com/shopfwd/shopfwd/internal/http/evidence"
	"github.com/shopfwd/shopfwd/internal/http/importcsv"
	"github.com/shopfwd/shopfwd/internal/http/verification"
)

func New(
	evidenceV1 *evidence.Handler,
	verificationV1 *verification.Handler,
	importV1 *importcsv.Handler,
	allowedOrigins []string,
	jwtSecret string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(jwtSecret))

		r.Route("/evidence", func(r chi.Router) {
			evidenceV1.Routes(r)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				verificationV1.Routes(r)
			})
		})

		r.Route("/import", importV1.Routes)
	})

	return router
}
