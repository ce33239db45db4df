package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Anurag-M-K/mallumart-be/internal/storage"
	"github.com/google/uuid"
)

// AdvertisementDto represents a store banner in API responses.
type AdvertisementDto struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"storeId"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdvertisementCreateDto represents the data transfer object for creating an
// advertisement.
type AdvertisementCreateDto struct {
	ImageURL string `json:"imageUrl" validate:"required,url"`
}

// AdvertisementService defines advertisement operations.
type AdvertisementService interface {
	// Create adds an advertisement for a store.
	Create(ctx context.Context, storeID uuid.UUID, ad AdvertisementCreateDto) (*AdvertisementDto, error)

	// FindByStore returns a store's advertisements, newest first.
	FindByStore(ctx context.Context, storeID uuid.UUID) ([]AdvertisementDto, error)

	// DeleteByID removes an advertisement.
	// Returns ErrAdvertisementNotFound if no advertisement exists with the given ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// Advertisements implements AdvertisementService.
type Advertisements struct {
	repository storage.AdvertisementStorage
}

// NewAdvertisements creates a new AdvertisementService with the provided repository.
func NewAdvertisements(repo storage.AdvertisementStorage) *Advertisements {
	return &Advertisements{repository: repo}
}

// Create adds an advertisement and returns it as a DTO.
func (s *Advertisements) Create(ctx context.Context, storeID uuid.UUID, ad AdvertisementCreateDto) (*AdvertisementDto, error) {
	created, err := s.repository.Create(ctx, storeID, ad.ImageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create advertisement for store %s: %w", storeID, err)
	}
	return toAdvertisementDto(created), nil
}

// FindByStore returns a store's advertisements as DTOs.
func (s *Advertisements) FindByStore(ctx context.Context, storeID uuid.UUID) ([]AdvertisementDto, error) {
	ads, err := s.repository.FindByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch advertisements of store %s: %w", storeID, err)
	}
	dtos := make([]AdvertisementDto, len(ads))
	for i, item := range ads {
		dtos[i] = *toAdvertisementDto(&item)
	}
	return dtos, nil
}

// DeleteByID removes an advertisement by its ID.
func (s *Advertisements) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return s.repository.DeleteByID(ctx, id)
}

func toAdvertisementDto(ad *storage.Advertisement) *AdvertisementDto {
	return &AdvertisementDto{
		ID:        ad.ID.String(),
		StoreID:   ad.StoreID.String(),
		ImageURL:  ad.ImageURL,
		CreatedAt: ad.CreatedAt,
	}
}
