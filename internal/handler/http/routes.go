package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/estoque-digital/estoque-server/internal/config"
)

// Init builds the router: a public login route plus the protected API behind
// the JWT auth middleware. The rate limit is global per client IP, shared
// across all endpoints.
func (h *Handler) Init(cfg config.Server) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		MaxAge:         300,
	}))
	if cfg.RateLimit > 0 {
		router.Use(httprate.LimitByIP(cfg.RateLimit, time.Minute))
	}
	if cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/login", h.login)
	})

	// protected routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/estoque", func(r chi.Router) {
			r.Get("/", h.listInventory)
			r.Get("/stats", h.inventoryStats)
			r.Post("/categoria", h.createCategory)
			r.Post("/import", h.importInventory)
			r.Get("/export", h.exportInventory)

			r.Route("/{categoria}", func(r chi.Router) {
				r.Delete("/", h.deleteCategory)
				r.Get("/itens", h.listItems)
				r.Post("/itens", h.addItems)
				r.Put("/preco", h.setPrice)
				r.Delete("/limpar", h.clearItems)
				r.Delete("/item/{id}", h.deleteItem)
			})
		})

		r.Route("/sales", func(r chi.Router) {
			r.Post("/add", h.recordSale)
			r.Get("/stats", h.salesStats)
			r.Get("/history", h.salesHistory)
			r.Get("/customers", h.salesCustomers)
			r.Get("/analytics", h.salesAnalytics)
		})

		r.Route("/backup", func(r chi.Router) {
			r.Post("/create", h.createBackup)
			r.Get("/list", h.listBackups)
			r.Get("/download/{id}", h.downloadBackup)
		})

		r.Route("/equipe", func(r chi.Router) {
			r.Get("/", h.listTeam)
			r.Post("/", h.addTeamMember)
			r.Delete("/{id}", h.removeTeamMember)
		})
	})

	return router
}
