// Package app contains the application setup for the marketplace service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/Anurag-M-K/mallumart-be/internal/config"
	"github.com/Anurag-M-K/mallumart-be/internal/service"
	"github.com/Anurag-M-K/mallumart-be/internal/storage"
	"github.com/Anurag-M-K/mallumart-be/internal/transport/rest"
	"github.com/Anurag-M-K/mallumart-be/pkg/auth"
	"github.com/Anurag-M-K/mallumart-be/pkg/server"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Dependencies struct {
	Services rest.Services
	Verifier auth.Verifier
	Logger   *slog.Logger
}

func SetupDependencies(dbPool *pgxpool.Pool, verifier auth.Verifier, cfg *config.Config, logger *slog.Logger) *Dependencies {
	stores := storage.NewPgStores(dbPool)
	products := storage.NewPgProducts(dbPool)
	categories := storage.NewPgCategories(dbPool)
	terms := storage.NewPgSearchTerms(dbPool)
	ads := storage.NewPgAdvertisements(dbPool)
	carts := storage.NewPgCarts(dbPool)

	return &Dependencies{
		Services: rest.Services{
			Discovery:      service.NewDiscovery(stores, cfg.Discovery.RadiusMeters),
			Search:         service.NewSearch(products, stores, terms, logger),
			Stores:         service.NewStores(stores, categories),
			Products:       service.NewProducts(products, terms, logger),
			Categories:     service.NewCategories(categories),
			Advertisements: service.NewAdvertisements(ads),
			Carts:          service.NewCarts(carts),
		},
		Verifier: verifier,
		Logger:   logger,
	}
}

// SetupHttpHandler initializes the HTTP routes for the marketplace application.
// Used by E2E tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the marketplace application.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	handler := rest.NewHandler(deps.Services, deps.Logger)
	handler.RegisterRoutes(mux, auth.Middleware(deps.Verifier))
}

// SetupHttpServer creates and configures an HTTP server for the marketplace application.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {

	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
