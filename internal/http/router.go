package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sungheeyun-bit/tracker/internal/http/auth"
	"github.com/sungheeyun-bit/tracker/internal/http/category"
	"github.com/sungheeyun-bit/tracker/internal/http/export"
	"github.com/sungheeyun-bit/tracker/internal/http/importcsv"
	"github.com/sungheeyun-bit/tracker/internal/http/settings"
	"github.com/sungheeyun-bit/tracker/internal/http/stats"
	"github.com/sungheeyun-bit/tracker/internal/http/transaction"
)

type Config struct {
	AuthSecret     string
	AllowedOrigins []string
}

func New(
	cfg Config,
	transactionsV1 *transaction.Handler,
	categoriesV1 *category.Handler,
	statsV1 *stats.Handler,
	settingsV1 *settings.Handler,
	importV1 *importcsv.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(cfg.AuthSecret))

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			categoriesV1.Routes(r)
		})

		r.Group(statsV1.Routes)

		r.Route("/settings", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			settingsV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)
		r.Route("/export", exportV1.Routes)
	})

	return router
}
