package service

import (
	"context"
	"fmt"

	"github.com/Anurag-M-K/mallumart-be/internal/storage"
	"github.com/google/uuid"
)

// CartAddDto represents the data transfer object for adding a product to the
// caller's cart.
type CartAddDto struct {
	StoreID   uuid.UUID `json:"storeId"   validate:"required"`
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int32     `json:"quantity"  validate:"required,min=1"`
}

// CartItemDto is one product line of a cart.
type CartItemDto struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Price       int64  `json:"price"`
	Quantity    int32  `json:"quantity"`
}

// CartDto is the caller's cart for one store.
type CartDto struct {
	StoreID string        `json:"storeId"`
	Items   []CartItemDto `json:"items"`
	Total   int64         `json:"total"`
}

// CartService defines per-user cart operations. The user ID is the verified
// token subject and is opaque here.
type CartService interface {
	// AddItem puts the product in the user's cart or bumps its quantity.
	AddItem(ctx context.Context, userID string, item CartAddDto) error

	// FindByStore returns the user's cart for one store.
	FindByStore(ctx context.Context, userID string, storeID uuid.UUID) (*CartDto, error)

	// Clear empties the user's cart for one store.
	Clear(ctx context.Context, userID string, storeID uuid.UUID) error
}

// Carts implements CartService.
type Carts struct {
	repository storage.CartStorage
}

// NewCarts creates a new CartService with the provided repository.
func NewCarts(repo storage.CartStorage) *Carts {
	return &Carts{repository: repo}
}

// AddItem puts the product in the user's cart or bumps its quantity.
func (s *Carts) AddItem(ctx context.Context, userID string, item CartAddDto) error {
	if err := s.repository.Upsert(ctx, userID, item.StoreID, item.ProductID, item.Quantity); err != nil {
		return fmt.Errorf("failed to add product %s to cart: %w", item.ProductID, err)
	}
	return nil
}

// FindByStore returns the user's cart for one store with line totals summed.
func (s *Carts) FindByStore(ctx context.Context, userID string, storeID uuid.UUID) (*CartDto, error) {
	items, err := s.repository.FindByUserAndStore(ctx, userID, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart for store %s: %w", storeID, err)
	}

	cart := CartDto{
		StoreID: storeID.String(),
		Items:   make([]CartItemDto, len(items)),
	}
	for i, item := range items {
		cart.Items[i] = CartItemDto{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		}
		cart.Total += item.Price * int64(item.Quantity)
	}
	return &cart, nil
}

// Clear empties the user's cart for one store.
func (s *Carts) Clear(ctx context.Context, userID string, storeID uuid.UUID) error {
	if err := s.repository.DeleteByUserAndStore(ctx, userID, storeID); err != nil {
		return fmt.Errorf("failed to clear cart for store %s: %w", storeID, err)
	}
	return nil
}
