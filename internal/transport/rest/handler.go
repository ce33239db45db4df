// Package rest provides the HTTP transport for the marketplace API.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Anurag-M-K/mallumart-be/internal/service"
	"github.com/Anurag-M-K/mallumart-be/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// Services bundles the business services the handler dispatches to.
type Services struct {
	Discovery      service.DiscoveryService
	Search         service.SearchService
	Stores         service.StoreService
	Products       service.ProductService
	Categories     service.CategoryService
	Advertisements service.AdvertisementService
	Carts          service.CartService
}

type Handler struct {
	services Services
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new instance of the API handler with the provided services.
func NewHandler(services Services, logger *slog.Logger) *Handler {
	return &Handler{
		services: services,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes. Mutating routes and the ledger
// view are guarded by the auth middleware.
func (h *Handler) RegisterRoutes(r *chi.Mux, authMw func(http.Handler) http.Handler) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/stores", func(r chi.Router) {
			r.Get("/", h.FindAllStores)
			r.Get("/nearby", h.FindNearbyStores)
			r.Get("/search", h.SearchStoresByCategory)
			r.Get("/by-name/{uniqueName}", h.FindStoreByUniqueName)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.FindStoreByID)
				r.Get("/advertisements", h.FindAdvertisements)
				r.With(authMw).Put("/status", h.ToggleStoreStatus)
				r.With(authMw).Put("/live", h.SetStoreLive)
				r.With(authMw).Post("/advertisements", h.CreateAdvertisement)
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.ListProducts)
			r.Get("/search", h.SearchProducts)
			r.With(authMw).Post("/", h.CreateProduct)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.FindProductByID)
				r.With(authMw).Put("/", h.UpdateProduct)
				r.With(authMw).Delete("/", h.DeleteProduct)
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.FindCategories)
			r.Get("/{id}/subcategories", h.FindSubCategories)
		})

		r.With(authMw).Delete("/advertisements/{id}", h.DeleteAdvertisement)

		r.Route("/cart", func(r chi.Router) {
			r.Use(authMw)
			r.Post("/", h.AddCartItem)
			r.Get("/{storeId}", h.FindCart)
			r.Delete("/{storeId}", h.ClearCart)
		})

		r.With(authMw).Get("/search-terms/top", h.TopSearchTerms)
	})

	r.Get("/healthz", h.HealthCheck)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}

// decodeValid decodes the request body into dto and validates it, responding
// with 400 on failure.
func (h *Handler) decodeValid(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, dto any) bool {
	if err := json.NewDecoder(r.Body).Decode(dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := h.validate.Struct(dto); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			errorResponse := make(map[string]string)
			for _, fieldErr := range validationErrors {
				errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
			web.RespondJSON(w, mLogger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
			return false
		}
		mLogger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
