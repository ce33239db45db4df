// Package errors provides custom error types for marketplace operations.
package errors

import "errors"

var (
	ErrStoreNotFound         = errors.New("store not found")
	ErrProductNotFound       = errors.New("product not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrAdvertisementNotFound = errors.New("advertisement not found")
	ErrCartItemNotFound      = errors.New("cart item not found")
)
