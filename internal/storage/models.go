package storage

import (
	"time"

	"github.com/google/uuid"
)

// Store statuses. Stores are toggled between the two, never deleted here.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Store is a marketplace store row. CategoryName and CategoryIcon are
// populated from the categories table; Longitude/Latitude are extracted from
// the PostGIS point and are nil for stores without a location.
type Store struct {
	ID           uuid.UUID  `db:"id"`
	Name         string     `db:"name"`
	UniqueName   string     `db:"unique_name"`
	OwnerName    string     `db:"owner_name"`
	Phone        string     `db:"phone"`
	Email        string     `db:"email"`
	District     string     `db:"district"`
	City         string     `db:"city"`
	Address      string     `db:"address"`
	ImageURL     string     `db:"image_url"`
	CategoryID   *uuid.UUID `db:"category_id"`
	CategoryName *string    `db:"category_name"`
	CategoryIcon *string    `db:"category_icon"`
	Status       string     `db:"status"`
	Live         bool       `db:"live"`
	Longitude    *float64   `db:"longitude"`
	Latitude     *float64   `db:"latitude"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// Product is a catalog item owned by a store.
type Product struct {
	ID           uuid.UUID  `db:"id"`
	Name         string     `db:"name"`
	StoreID      uuid.UUID  `db:"store_id"`
	CategoryID   *uuid.UUID `db:"category_id"`
	CategoryName *string    `db:"category_name"`
	Price        int64      `db:"price"`
	ImageURL     string     `db:"image_url"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// Category forms a two-level hierarchy: top-level rows have a nil ParentID.
type Category struct {
	ID        uuid.UUID  `db:"id"`
	Name      string     `db:"name"`
	Icon      string     `db:"icon"`
	ParentID  *uuid.UUID `db:"parent_id"`
	IsActive  bool       `db:"is_active"`
	CreatedAt time.Time  `db:"created_at"`
}

// SearchTerm is the popularity ledger record for one distinct trimmed term.
type SearchTerm struct {
	Term        string    `db:"term"`
	SearchCount int64     `db:"search_count"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Advertisement is a store-owned banner.
type Advertisement struct {
	ID        uuid.UUID `db:"id"`
	StoreID   uuid.UUID `db:"store_id"`
	ImageURL  string    `db:"image_url"`
	CreatedAt time.Time `db:"created_at"`
}

// CartItem is one product line in a user's per-store cart. UserID is the
// token subject and is opaque to this service.
type CartItem struct {
	UserID      string    `db:"user_id"`
	StoreID     uuid.UUID `db:"store_id"`
	ProductID   uuid.UUID `db:"product_id"`
	ProductName string    `db:"product_name"`
	Price       int64     `db:"price"`
	Quantity    int32     `db:"quantity"`
	CreatedAt   time.Time `db:"created_at"`
}
