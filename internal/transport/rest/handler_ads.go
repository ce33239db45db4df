package rest

import (
	"errors"
	"fmt"
	"net/http"

	merrors "github.com/Anurag-M-K/mallumart-be/internal/errors"
	"github.com/Anurag-M-K/mallumart-be/internal/service"
	"github.com/Anurag-M-K/mallumart-be/pkg/web"
)

// FindAdvertisements returns a store's advertisements.
func (h *Handler) FindAdvertisements(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	storeID, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	list, err := h.services.Advertisements.FindByStore(r.Context(), storeID)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving advertisements", "storeID", storeID, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch advertisements")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// CreateAdvertisement adds an advertisement for a store.
func (h *Handler) CreateAdvertisement(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	storeID, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	var createDto service.AdvertisementCreateDto
	if !h.decodeValid(w, r, mLogger, &createDto) {
		return
	}

	created, err := h.services.Advertisements.Create(r.Context(), storeID, createDto)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error creating advertisement", "storeID", storeID, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to create advertisement")
		return
	}
	mLogger.InfoContext(r.Context(), "Advertisement created successfully", "ID", created.ID, "storeID", storeID)
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}

// DeleteAdvertisement removes an advertisement by its ID.
func (h *Handler) DeleteAdvertisement(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	if err := h.services.Advertisements.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, merrors.ErrAdvertisementNotFound) {
			mLogger.WarnContext(r.Context(), "Advertisement not found for deletion", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Advertisement with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error deleting advertisement", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to delete advertisement with ID %s", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Advertisement deleted successfully", "ID", id)
	w.WriteHeader(http.StatusNoContent)
}
