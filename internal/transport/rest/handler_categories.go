package rest

import (
	"net/http"

	"github.com/Anurag-M-K/mallumart-be/pkg/web"
)

// FindCategories returns the active top-level categories.
func (h *Handler) FindCategories(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	list, err := h.services.Categories.FindTopLevel(r.Context())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving categories", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// FindSubCategories returns the active children of a category.
func (h *Handler) FindSubCategories(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	list, err := h.services.Categories.FindChildren(r.Context(), id)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving sub-categories", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch sub-categories")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}
