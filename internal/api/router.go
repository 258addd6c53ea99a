package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/api/handlers"
	custommiddleware "github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/api/middleware"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/config"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(systemService *service.SystemService, ledgerService *service.LedgerService, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/transaction", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(ledgerService)
			r.Get("/", transactionHandler.View)
			r.Post("/", transactionHandler.Submit)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Delete("/", transactionHandler.Delete)
			})
		})

		r.Route("/partition", func(r chi.Router) {
			partitionHandler := handlers.NewPartitionHandler(ledgerService)
			r.Get("/", partitionHandler.List)
			r.Post("/", partitionHandler.Create)
			r.Get("/summary", partitionHandler.Summary)
		})

		r.Route("/report", func(r chi.Router) {
			reportHandler := handlers.NewReportHandler(ledgerService)
			r.Get("/", reportHandler.Generate)
		})
	})

	return r
}
