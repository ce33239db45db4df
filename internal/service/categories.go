// Package service implements the marketplace business logic on top of the
// storage interfaces.
package service

import (
	"context"
	"fmt"

	"github.com/Anurag-M-K/mallumart-be/internal/storage"
	"github.com/google/uuid"
)

// CategoryDto represents a category reference in API responses.
type CategoryDto struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// CategoryService defines read operations for the category hierarchy.
type CategoryService interface {
	// FindTopLevel returns active categories without a parent.
	FindTopLevel(ctx context.Context) ([]CategoryDto, error)

	// FindChildren returns active sub-categories of the given parent.
	FindChildren(ctx context.Context, parentID uuid.UUID) ([]CategoryDto, error)
}

// Categories implements CategoryService.
type Categories struct {
	repository storage.CategoryStorage
}

// NewCategories creates a new CategoryService with the provided repository.
func NewCategories(repo storage.CategoryStorage) *Categories {
	return &Categories{repository: repo}
}

// FindTopLevel returns active top-level categories as DTOs.
func (s *Categories) FindTopLevel(ctx context.Context) ([]CategoryDto, error) {
	categories, err := s.repository.FindActiveTopLevel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return toCategoryDtos(categories), nil
}

// FindChildren returns active sub-categories of the given parent as DTOs.
func (s *Categories) FindChildren(ctx context.Context, parentID uuid.UUID) ([]CategoryDto, error) {
	categories, err := s.repository.FindActiveChildren(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sub-categories of %s: %w", parentID, err)
	}
	return toCategoryDtos(categories), nil
}

func toCategoryDtos(categories []storage.Category) []CategoryDto {
	dtos := make([]CategoryDto, len(categories))
	for i, item := range categories {
		dtos[i] = CategoryDto{
			ID:   item.ID.String(),
			Name: item.Name,
			Icon: item.Icon,
		}
	}
	return dtos
}
