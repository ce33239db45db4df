// Package storage provides interfaces and PostgreSQL implementations for
// marketplace persistence.
package storage

import (
	"context"

	"github.com/google/uuid"
)

// NearbyParams shape the geospatial store query. The radius cutoff and the
// nearest-first ordering are delegated to the database's geo index.
type NearbyParams struct {
	Longitude     float64
	Latitude      float64
	RadiusMeters  float64
	CategoryID    *uuid.UUID
	RequireActive bool
}

// ProductFilter shapes the product listing query. NameLike is matched as a
// case-insensitive literal substring. Zero Limit means no pagination.
type ProductFilter struct {
	StoreID    *uuid.UUID
	CategoryID *uuid.UUID
	NameLike   string
	Sort       string
	Limit      int32
	Offset     int32
}

// Product sort orders accepted by ProductFilter.
const (
	SortNewest    = "newest"
	SortLowToHigh = "lowToHigh"
	SortHighToLow = "highToLow"
)

// ProductCreateParams carries the fields for a new product.
type ProductCreateParams struct {
	Name       string
	StoreID    uuid.UUID
	CategoryID *uuid.UUID
	Price      int64
	ImageURL   string
}

// ProductUpdateParams carries the mutable fields of a product.
type ProductUpdateParams struct {
	ID         uuid.UUID
	Name       string
	CategoryID *uuid.UUID
	Price      int64
	ImageURL   string
}

// StoreStorage is an interface for store persistence operations.
// It abstracts the underlying data store, allowing for different implementations.
type StoreStorage interface {
	// FindNearby returns stores inside the radius, nearest first, with the
	// category reference expanded. Stores without a location never match.
	FindNearby(ctx context.Context, params NearbyParams) ([]Store, error)

	// FindAll returns every store with its category name expanded.
	FindAll(ctx context.Context) ([]Store, error)

	// FindByID retrieves a single store.
	// Returns ErrStoreNotFound if no store exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Store, error)

	// FindByUniqueName retrieves a single store by its unique name.
	// Returns ErrStoreNotFound if no store exists with the given name.
	FindByUniqueName(ctx context.Context, uniqueName string) (*Store, error)

	// FindByIDs returns the stores whose IDs are in the given set, in no
	// particular order. Unknown IDs are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Store, error)

	// ToggleStatus flips a store between active and inactive.
	// Returns ErrStoreNotFound if no store exists with the given ID.
	ToggleStatus(ctx context.Context, id uuid.UUID) (*Store, error)

	// SetLive sets a store's live flag.
	// Returns ErrStoreNotFound if no store exists with the given ID.
	SetLive(ctx context.Context, id uuid.UUID, live bool) (*Store, error)
}

// ProductStorage is an interface for product persistence operations.
type ProductStorage interface {
	// FindByID retrieves a single product with its category expanded.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// Find returns products matching the filter.
	Find(ctx context.Context, filter ProductFilter) ([]Product, error)

	// Count returns the number of products matching the filter, ignoring
	// pagination.
	Count(ctx context.Context, filter ProductFilter) (int64, error)

	// DistinctStoreIDs returns the distinct owning-store IDs of products
	// whose name contains the term, case-insensitively and literally.
	DistinctStoreIDs(ctx context.Context, nameLike string) ([]uuid.UUID, error)

	// Create adds a new product.
	Create(ctx context.Context, params ProductCreateParams) (*Product, error)

	// Update modifies an existing product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, params ProductUpdateParams) (*Product, error)

	// DeleteByID removes a product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// CategoryStorage is an interface for category reads. Categories are managed
// elsewhere and are read-only here.
type CategoryStorage interface {
	// FindActiveTopLevel returns active categories without a parent.
	FindActiveTopLevel(ctx context.Context) ([]Category, error)

	// FindActiveChildren returns active sub-categories of the given parent.
	FindActiveChildren(ctx context.Context, parentID uuid.UUID) ([]Category, error)
}

// SearchTermStorage is an interface for the search popularity ledger.
type SearchTermStorage interface {
	// RecordSearch atomically increments the counter for the term, creating
	// the record with count 1 on first sight, and returns the new count.
	// The find-and-increment is a single statement so concurrent calls for
	// the same term never lose an increment.
	RecordSearch(ctx context.Context, term string) (int64, error)

	// Top returns the most searched terms, highest count first.
	Top(ctx context.Context, limit int32) ([]SearchTerm, error)
}

// AdvertisementStorage is an interface for advertisement persistence.
type AdvertisementStorage interface {
	// Create adds an advertisement for a store.
	Create(ctx context.Context, storeID uuid.UUID, imageURL string) (*Advertisement, error)

	// FindByStore returns a store's advertisements, newest first.
	FindByStore(ctx context.Context, storeID uuid.UUID) ([]Advertisement, error)

	// DeleteByID removes an advertisement.
	// Returns ErrAdvertisementNotFound if no advertisement exists with the given ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// CartStorage is an interface for per-user cart persistence.
type CartStorage interface {
	// Upsert adds the product to the user's cart or bumps its quantity.
	Upsert(ctx context.Context, userID string, storeID, productID uuid.UUID, quantity int32) error

	// FindByUserAndStore returns the user's cart lines for one store with
	// product name and price expanded.
	FindByUserAndStore(ctx context.Context, userID string, storeID uuid.UUID) ([]CartItem, error)

	// DeleteByUserAndStore clears the user's cart for one store.
	DeleteByUserAndStore(ctx context.Context, userID string, storeID uuid.UUID) error
}
