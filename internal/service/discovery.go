package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Anurag-M-K/mallumart-be/internal/geo"
	"github.com/Anurag-M-K/mallumart-be/internal/storage"
	"github.com/google/uuid"
)

// NearbyQuery carries the caller's position and an optional category filter.
// CategoryID is the raw query value; an unparseable ID drops the filter
// instead of failing the lookup.
type NearbyQuery struct {
	Longitude  float64
	Latitude   float64
	CategoryID string
}

// DiscoveryService defines the proximity store lookup.
type DiscoveryService interface {
	// FindNearby returns active stores inside the configured radius, nearest
	// first, each annotated with the haversine distance from the caller.
	// Returns an empty slice if no stores are in range.
	FindNearby(ctx context.Context, query NearbyQuery) ([]StoreDto, error)
}

// Discovery implements DiscoveryService. The radius cutoff and nearest-first
// ordering are delegated to the database's geo index; the reported distance is
// recomputed here so the formatting does not depend on the storage layer.
type Discovery struct {
	stores       storage.StoreStorage
	radiusMeters float64
}

// NewDiscovery creates a new DiscoveryService with the provided repository
// and search radius.
func NewDiscovery(stores storage.StoreStorage, radiusMeters float64) *Discovery {
	return &Discovery{stores: stores, radiusMeters: radiusMeters}
}

// FindNearby returns active stores within the radius as DTOs, nearest first.
func (s *Discovery) FindNearby(ctx context.Context, query NearbyQuery) ([]StoreDto, error) {
	params := storage.NearbyParams{
		Longitude:     query.Longitude,
		Latitude:      query.Latitude,
		RadiusMeters:  s.radiusMeters,
		RequireActive: true,
	}
	if query.CategoryID != "" {
		if id, err := uuid.Parse(query.CategoryID); err == nil {
			params.CategoryID = &id
		}
	}

	stores, err := s.stores.FindNearby(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch nearby stores: %w", err)
	}

	dtos := make([]StoreDto, len(stores))
	for i, item := range stores {
		dto := *toStoreDto(&item)
		if item.Latitude != nil && item.Longitude != nil {
			km := geo.Distance(query.Latitude, query.Longitude, *item.Latitude, *item.Longitude)
			dto.Distance = strconv.FormatFloat(km, 'f', 2, 64)
		}
		dtos[i] = dto
	}
	return dtos, nil
}
