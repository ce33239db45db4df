package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Anurag-M-K/mallumart-be/internal/storage"
	"github.com/google/uuid"
)

// defaultPageSize caps product listings when the caller sends no limit.
const defaultPageSize = 10

// ProductDto represents a product in API responses.
type ProductDto struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	StoreID   string       `json:"storeId"`
	Category  *CategoryDto `json:"category,omitempty"`
	Price     int64        `json:"price"`
	ImageURL  string       `json:"imageUrl,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

// ProductCreateDto represents the data transfer object for creating a product.
type ProductCreateDto struct {
	Name       string     `json:"name"       validate:"required,max=100"`
	StoreID    uuid.UUID  `json:"storeId"    validate:"required"`
	CategoryID *uuid.UUID `json:"categoryId" validate:"omitempty"`
	Price      int64      `json:"price"      validate:"required,min=0"`
	ImageURL   string     `json:"imageUrl"   validate:"omitempty,url"`
}

// ProductUpdateDto represents the mutable fields of a product.
type ProductUpdateDto struct {
	Name       string     `json:"name"       validate:"required,max=100"`
	CategoryID *uuid.UUID `json:"categoryId" validate:"omitempty"`
	Price      int64      `json:"price"      validate:"required,min=0"`
	ImageURL   string     `json:"imageUrl"   validate:"omitempty,url"`
}

// ProductQuery shapes the product listing. StoreID and CategoryID are raw
// query values; unparseable IDs drop the filter. A non-empty SearchTerm also
// feeds the search-term ledger.
type ProductQuery struct {
	StoreID    string
	CategoryID string
	SearchTerm string
	Sort       string
	Page       int32
	Limit      int32
}

// ProductPageDto is one page of a product listing.
type ProductPageDto struct {
	Products      []ProductDto `json:"products"`
	TotalProducts int64        `json:"totalProducts"`
	TotalPages    int32        `json:"totalPages"`
	CurrentPage   int32        `json:"currentPage"`
}

// ProductService defines product catalog operations.
type ProductService interface {
	// FindByID retrieves a single product with its category expanded.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*ProductDto, error)

	// Find returns one page of products matching the query.
	Find(ctx context.Context, query ProductQuery) (*ProductPageDto, error)

	// Create adds a new product.
	Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// Update modifies an existing product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id uuid.UUID, product ProductUpdateDto) (*ProductDto, error)

	// DeleteByID removes a product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// Products implements ProductService.
type Products struct {
	repository storage.ProductStorage
	terms      storage.SearchTermStorage
	logger     *slog.Logger
}

// NewProducts creates a new ProductService with the provided repositories.
func NewProducts(repo storage.ProductStorage, terms storage.SearchTermStorage, logger *slog.Logger) *Products {
	return &Products{
		repository: repo,
		terms:      terms,
		logger:     logger.With("component", "products"),
	}
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
func (s *Products) FindByID(ctx context.Context, id uuid.UUID) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", id, err)
	}
	return toProductDto(product), nil
}

// Find returns one page of products matching the query. A non-empty search
// term bumps the ledger counter without blocking the listing.
func (s *Products) Find(ctx context.Context, query ProductQuery) (*ProductPageDto, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = defaultPageSize
	}

	filter := storage.ProductFilter{
		NameLike: normalizeTerm(query.SearchTerm),
		Sort:     query.Sort,
		Limit:    limit,
		Offset:   (page - 1) * limit,
	}
	if id, err := uuid.Parse(query.StoreID); err == nil {
		filter.StoreID = &id
	}
	if id, err := uuid.Parse(query.CategoryID); err == nil {
		filter.CategoryID = &id
	}

	if filter.NameLike != "" {
		recordSearchAsync(ctx, s.logger, s.terms, filter.NameLike)
	}

	total, err := s.repository.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	products, err := s.repository.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	dtos := make([]ProductDto, len(products))
	for i, item := range products {
		dtos[i] = *toProductDto(&item)
	}
	return &ProductPageDto{
		Products:      dtos,
		TotalProducts: total,
		TotalPages:    int32((total + int64(limit) - 1) / int64(limit)),
		CurrentPage:   page,
	}, nil
}

// Create adds a new product and returns it as a ProductDto.
func (s *Products) Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	created, err := s.repository.Create(ctx, storage.ProductCreateParams{
		Name:       product.Name,
		StoreID:    product.StoreID,
		CategoryID: product.CategoryID,
		Price:      product.Price,
		ImageURL:   product.ImageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return toProductDto(created), nil
}

// Update modifies an existing product and returns it as a ProductDto.
func (s *Products) Update(ctx context.Context, id uuid.UUID, product ProductUpdateDto) (*ProductDto, error) {
	updated, err := s.repository.Update(ctx, storage.ProductUpdateParams{
		ID:         id,
		Name:       product.Name,
		CategoryID: product.CategoryID,
		Price:      product.Price,
		ImageURL:   product.ImageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %s: %w", id, err)
	}
	return toProductDto(updated), nil
}

// DeleteByID deletes a product by its ID.
func (s *Products) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return s.repository.DeleteByID(ctx, id)
}

// toProductDto converts a storage.Product to a ProductDto.
func toProductDto(product *storage.Product) *ProductDto {
	dto := &ProductDto{
		ID:        product.ID.String(),
		Name:      product.Name,
		StoreID:   product.StoreID.String(),
		Price:     product.Price,
		ImageURL:  product.ImageURL,
		CreatedAt: product.CreatedAt,
	}
	if product.CategoryID != nil {
		category := CategoryDto{ID: product.CategoryID.String()}
		if product.CategoryName != nil {
			category.Name = *product.CategoryName
		}
		dto.Category = &category
	}
	return dto
}
