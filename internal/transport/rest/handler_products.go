package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	merrors "github.com/Anurag-M-K/mallumart-be/internal/errors"
	"github.com/Anurag-M-K/mallumart-be/internal/service"
	"github.com/Anurag-M-K/mallumart-be/pkg/web"
)

// SearchProducts returns the stores owning a product whose name contains the
// search term. Responds 400 on a blank term and 404 when nothing matches.
func (h *Handler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	rawTerm := r.URL.Query().Get("searchTerm")
	if strings.TrimSpace(rawTerm) == "" {
		web.RespondError(w, mLogger, http.StatusBadRequest, "searchTerm url parameter is required")
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to search products", "searchTerm", rawTerm)
	stores, err := h.services.Search.SearchStores(r.Context(), rawTerm)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error searching products", "searchTerm", rawTerm, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to search products")
		return
	}
	if len(stores) == 0 {
		web.RespondError(w, mLogger, http.StatusNotFound, "No stores found for the searched product")
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully searched products", "searchTerm", rawTerm, "stores", len(stores))
	web.RespondJSON(w, mLogger, http.StatusOK, stores)
}

// TopSearchTerms returns the most searched terms.
func (h *Handler) TopSearchTerms(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	limit, ok := web.ParseOptionalGt(r, w, mLogger, "limit", 0, 10)
	if !ok {
		return
	}

	terms, err := h.services.Search.TopTerms(r.Context(), limit)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving top search terms", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch top search terms")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, terms)
}

// ListProducts returns one page of products matching the query parameters.
// Responds 400 when page or limit is present but not a positive number.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	page, ok := web.ParseOptionalGte(r, w, mLogger, "page", 1, 1)
	if !ok {
		return
	}
	limit, ok := web.ParseOptionalGt(r, w, mLogger, "limit", 0, 10)
	if !ok {
		return
	}
	query := service.ProductQuery{
		StoreID:    r.URL.Query().Get("storeId"),
		CategoryID: r.URL.Query().Get("category"),
		SearchTerm: r.URL.Query().Get("searchTerm"),
		Sort:       r.URL.Query().Get("sort"),
		Page:       page,
		Limit:      limit,
	}

	mLogger.DebugContext(r.Context(), "Received request to list products", "page", query.Page, "limit", query.Limit)
	productPage, err := h.services.Products.Find(r.Context(), query)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving product list", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, productPage)
}

// FindProductByID retrieves a product by its ID.
func (h *Handler) FindProductByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	found, err := h.services.Products.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, merrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve product with ID %s", id))
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// CreateProduct handles the creation of a new product.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var createDto service.ProductCreateDto
	if !h.decodeValid(w, r, mLogger, &createDto) {
		return
	}

	created, err := h.services.Products.Create(r.Context(), createDto)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error creating product", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to create product")
		return
	}
	mLogger.InfoContext(r.Context(), "Product created successfully", "ID", created.ID, "Name", created.Name)
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}

// UpdateProduct modifies an existing product.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	var updateDto service.ProductUpdateDto
	if !h.decodeValid(w, r, mLogger, &updateDto) {
		return
	}

	updated, err := h.services.Products.Update(r.Context(), id, updateDto)
	if err != nil {
		if errors.Is(err, merrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found for update", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error updating product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to update product with ID %s", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Product updated successfully", "ID", updated.ID, "Name", updated.Name)
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

// DeleteProduct deletes a product by its ID.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	if err := h.services.Products.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, merrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found for deletion", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error deleting product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to delete product with ID %s", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Product deleted successfully", "ID", id)
	w.WriteHeader(http.StatusNoContent)
}
