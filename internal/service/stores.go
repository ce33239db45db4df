package service

import (
	"context"
	"fmt"

	"github.com/Anurag-M-K/mallumart-be/internal/storage"
	"github.com/google/uuid"
)

// StoreDto represents a store in API responses. Distance is set only by the
// proximity lookup and carries the haversine kilometres formatted to two
// decimals.
type StoreDto struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	UniqueName string       `json:"uniqueName"`
	OwnerName  string       `json:"ownerName"`
	Phone      string       `json:"phone"`
	Email      string       `json:"email"`
	District   string       `json:"district"`
	City       string       `json:"city"`
	Address    string       `json:"address"`
	ImageURL   string       `json:"imageUrl,omitempty"`
	Category   *CategoryDto `json:"category,omitempty"`
	Status     string       `json:"status"`
	Live       bool         `json:"live"`
	Longitude  *float64     `json:"longitude,omitempty"`
	Latitude   *float64     `json:"latitude,omitempty"`
	Distance   string       `json:"distance,omitempty"`
}

// StoreDetailsDto is a store plus the active sub-categories of its category,
// used by the single-store endpoints.
type StoreDetailsDto struct {
	StoreDto
	ProductCategories []CategoryDto `json:"productCategories"`
}

// LiveUpdateDto carries the live flag for the live-toggle endpoint.
type LiveUpdateDto struct {
	Live *bool `json:"live" validate:"required"`
}

// StoreService defines store read and management operations.
type StoreService interface {
	// FindAll returns every store with its category expanded.
	FindAll(ctx context.Context) ([]StoreDto, error)

	// FindByID retrieves a store with the sub-categories of its category.
	// Returns ErrStoreNotFound if no store exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*StoreDetailsDto, error)

	// FindByUniqueName retrieves a store by its unique name.
	// Returns ErrStoreNotFound if no store exists with the given name.
	FindByUniqueName(ctx context.Context, uniqueName string) (*StoreDetailsDto, error)

	// ToggleStatus flips a store between active and inactive.
	// Returns ErrStoreNotFound if no store exists with the given ID.
	ToggleStatus(ctx context.Context, id uuid.UUID) (*StoreDto, error)

	// SetLive sets a store's live flag.
	// Returns ErrStoreNotFound if no store exists with the given ID.
	SetLive(ctx context.Context, id uuid.UUID, live bool) (*StoreDto, error)
}

// Stores implements StoreService.
type Stores struct {
	stores     storage.StoreStorage
	categories storage.CategoryStorage
}

// NewStores creates a new StoreService with the provided repositories.
func NewStores(stores storage.StoreStorage, categories storage.CategoryStorage) *Stores {
	return &Stores{stores: stores, categories: categories}
}

// FindAll returns every store as DTOs.
func (s *Stores) FindAll(ctx context.Context) ([]StoreDto, error) {
	stores, err := s.stores.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stores: %w", err)
	}
	return toStoreDtos(stores), nil
}

// FindByID retrieves a store and the active children of its category.
func (s *Stores) FindByID(ctx context.Context, id uuid.UUID) (*StoreDetailsDto, error) {
	store, err := s.stores.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch store by ID %s: %w", id, err)
	}
	return s.withProductCategories(ctx, store)
}

// FindByUniqueName retrieves a store by its unique name with the active
// children of its category.
func (s *Stores) FindByUniqueName(ctx context.Context, uniqueName string) (*StoreDetailsDto, error) {
	store, err := s.stores.FindByUniqueName(ctx, uniqueName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch store %q: %w", uniqueName, err)
	}
	return s.withProductCategories(ctx, store)
}

// ToggleStatus flips a store between active and inactive.
func (s *Stores) ToggleStatus(ctx context.Context, id uuid.UUID) (*StoreDto, error) {
	store, err := s.stores.ToggleStatus(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle status of store %s: %w", id, err)
	}
	return toStoreDto(store), nil
}

// SetLive sets a store's live flag.
func (s *Stores) SetLive(ctx context.Context, id uuid.UUID, live bool) (*StoreDto, error) {
	store, err := s.stores.SetLive(ctx, id, live)
	if err != nil {
		return nil, fmt.Errorf("failed to set live flag of store %s: %w", id, err)
	}
	return toStoreDto(store), nil
}

func (s *Stores) withProductCategories(ctx context.Context, store *storage.Store) (*StoreDetailsDto, error) {
	details := StoreDetailsDto{
		StoreDto:          *toStoreDto(store),
		ProductCategories: []CategoryDto{},
	}
	if store.CategoryID != nil {
		children, err := s.categories.FindActiveChildren(ctx, *store.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch product categories of store %s: %w", store.ID, err)
		}
		details.ProductCategories = toCategoryDtos(children)
	}
	return &details, nil
}

// toStoreDto converts a storage.Store to a StoreDto.
func toStoreDto(store *storage.Store) *StoreDto {
	dto := &StoreDto{
		ID:         store.ID.String(),
		Name:       store.Name,
		UniqueName: store.UniqueName,
		OwnerName:  store.OwnerName,
		Phone:      store.Phone,
		Email:      store.Email,
		District:   store.District,
		City:       store.City,
		Address:    store.Address,
		ImageURL:   store.ImageURL,
		Status:     store.Status,
		Live:       store.Live,
		Longitude:  store.Longitude,
		Latitude:   store.Latitude,
	}
	if store.CategoryID != nil {
		category := CategoryDto{ID: store.CategoryID.String()}
		if store.CategoryName != nil {
			category.Name = *store.CategoryName
		}
		if store.CategoryIcon != nil {
			category.Icon = *store.CategoryIcon
		}
		dto.Category = &category
	}
	return dto
}

func toStoreDtos(stores []storage.Store) []StoreDto {
	dtos := make([]StoreDto, len(stores))
	for i, item := range stores {
		dtos[i] = *toStoreDto(&item)
	}
	return dtos
}
