package rest

import (
	"errors"
	"fmt"
	"net/http"

	merrors "github.com/Anurag-M-K/mallumart-be/internal/errors"
	"github.com/Anurag-M-K/mallumart-be/internal/service"
	"github.com/Anurag-M-K/mallumart-be/pkg/web"
)

// FindNearbyStores returns active stores around the caller's position,
// nearest first, each annotated with the distance in kilometres.
func (h *Handler) FindNearbyStores(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	longitude, ok := web.ParseRequiredFloat(r, w, mLogger, "longitude")
	if !ok {
		return
	}
	latitude, ok := web.ParseRequiredFloat(r, w, mLogger, "latitude")
	if !ok {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to find nearby stores", "longitude", longitude, "latitude", latitude)
	list, err := h.services.Discovery.FindNearby(r.Context(), service.NearbyQuery{
		Longitude: longitude,
		Latitude:  latitude,
	})
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving nearby stores", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch nearby stores")
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved nearby stores", "count", len(list))
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// SearchStoresByCategory returns active stores around the caller's position
// filtered by category. Responds 404 when nothing is in range.
func (h *Handler) SearchStoresByCategory(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	longitude, ok := web.ParseRequiredFloat(r, w, mLogger, "longitude")
	if !ok {
		return
	}
	latitude, ok := web.ParseRequiredFloat(r, w, mLogger, "latitude")
	if !ok {
		return
	}
	query := service.NearbyQuery{
		Longitude:  longitude,
		Latitude:   latitude,
		CategoryID: r.URL.Query().Get("categoryId"),
	}

	mLogger.DebugContext(r.Context(), "Received request to search stores by category", "categoryId", query.CategoryID)
	list, err := h.services.Discovery.FindNearby(r.Context(), query)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error searching stores by category", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to search stores")
		return
	}
	if len(list) == 0 {
		web.RespondError(w, mLogger, http.StatusNotFound, "No stores found")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// FindAllStores retrieves every store.
func (h *Handler) FindAllStores(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	list, err := h.services.Stores.FindAll(r.Context())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving store list", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch stores")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// FindStoreByID retrieves a store with its product categories.
func (h *Handler) FindStoreByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	found, err := h.services.Stores.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, merrors.ErrStoreNotFound) {
			mLogger.WarnContext(r.Context(), "Store not found", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Store with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving store", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve store with ID %s", id))
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// FindStoreByUniqueName retrieves a store by its unique name.
func (h *Handler) FindStoreByUniqueName(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	uniqueName := r.PathValue("uniqueName")

	found, err := h.services.Stores.FindByUniqueName(r.Context(), uniqueName)
	if err != nil {
		if errors.Is(err, merrors.ErrStoreNotFound) {
			mLogger.WarnContext(r.Context(), "Store not found", "uniqueName", uniqueName)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Store %q not found", uniqueName))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving store", "uniqueName", uniqueName, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve store %q", uniqueName))
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// ToggleStoreStatus flips a store between active and inactive.
func (h *Handler) ToggleStoreStatus(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	updated, err := h.services.Stores.ToggleStatus(r.Context(), id)
	if err != nil {
		if errors.Is(err, merrors.ErrStoreNotFound) {
			mLogger.WarnContext(r.Context(), "Store not found for status toggle", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Store with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error toggling store status", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to toggle status of store %s", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Store status toggled", "ID", updated.ID, "Status", updated.Status)
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

// SetStoreLive sets a store's live flag from the request body.
func (h *Handler) SetStoreLive(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	var liveDto service.LiveUpdateDto
	if !h.decodeValid(w, r, mLogger, &liveDto) {
		return
	}

	updated, err := h.services.Stores.SetLive(r.Context(), id, *liveDto.Live)
	if err != nil {
		if errors.Is(err, merrors.ErrStoreNotFound) {
			mLogger.WarnContext(r.Context(), "Store not found for live update", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Store with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error updating store live flag", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to update store %s", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Store live flag updated", "ID", updated.ID, "Live", updated.Live)
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}
