package rest

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Anurag-M-K/mallumart-be/internal/service"
	"github.com/Anurag-M-K/mallumart-be/pkg/auth"
	"github.com/Anurag-M-K/mallumart-be/pkg/web"
	"github.com/google/uuid"
)

// AddCartItem puts a product in the caller's cart.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	userID := auth.ContextUserID(r.Context())
	if userID == "" {
		web.RespondError(w, mLogger, http.StatusUnauthorized, "Missing caller identity")
		return
	}
	var addDto service.CartAddDto
	if !h.decodeValid(w, r, mLogger, &addDto) {
		return
	}

	if err := h.services.Carts.AddItem(r.Context(), userID, addDto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error adding cart item", "productID", addDto.ProductID, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to add product to cart")
		return
	}
	mLogger.InfoContext(r.Context(), "Cart item added", "productID", addDto.ProductID, "quantity", addDto.Quantity)
	w.WriteHeader(http.StatusNoContent)
}

// FindCart returns the caller's cart for one store.
func (h *Handler) FindCart(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	userID := auth.ContextUserID(r.Context())
	if userID == "" {
		web.RespondError(w, mLogger, http.StatusUnauthorized, "Missing caller identity")
		return
	}
	storeID, ok := parseStoreID(w, r, mLogger)
	if !ok {
		return
	}

	cart, err := h.services.Carts.FindByStore(r.Context(), userID, storeID)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving cart", "storeID", storeID, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, cart)
}

// ClearCart empties the caller's cart for one store.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	userID := auth.ContextUserID(r.Context())
	if userID == "" {
		web.RespondError(w, mLogger, http.StatusUnauthorized, "Missing caller identity")
		return
	}
	storeID, ok := parseStoreID(w, r, mLogger)
	if !ok {
		return
	}

	if err := h.services.Carts.Clear(r.Context(), userID, storeID); err != nil {
		mLogger.ErrorContext(r.Context(), "Error clearing cart", "storeID", storeID, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to clear cart")
		return
	}
	mLogger.InfoContext(r.Context(), "Cart cleared", "storeID", storeID)
	w.WriteHeader(http.StatusNoContent)
}

// parseStoreID extracts and validates the storeId path parameter.
func parseStoreID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	pathValue := r.PathValue("storeId")
	storeID, err := uuid.Parse(pathValue)
	if err != nil {
		web.RespondError(w, logger, http.StatusBadRequest, fmt.Sprintf("Invalid store ID: %s", pathValue))
		return uuid.UUID{}, false
	}
	return storeID, true
}
