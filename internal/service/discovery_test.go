package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Anurag-M-K/mallumart-be/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrFloat(v float64) *float64 { return &v }

func Test_DiscoveryService_FindNearby(t *testing.T) {
	ErrStorage := errors.New("storage error")
	storeID, _ := uuid.Parse("123e4567-e89b-12d3-a456-426614174000")
	testCases := []struct {
		name             string
		mockStore        *mockStoreStorage
		query            NearbyQuery
		expectedDistance string
		expectError      error
	}{
		{
			name: "Success - one degree of longitude at the equator",
			mockStore: &mockStoreStorage{
				stores: []storage.Store{{
					ID:        storeID,
					Name:      "Corner Shop",
					Status:    storage.StatusActive,
					Longitude: ptrFloat(1),
					Latitude:  ptrFloat(0),
				}},
			},
			query:            NearbyQuery{Longitude: 0, Latitude: 0},
			expectedDistance: "111.19",
		},
		{
			name: "Success - store without location gets no distance",
			mockStore: &mockStoreStorage{
				stores: []storage.Store{{ID: storeID, Name: "No Location", Status: storage.StatusActive}},
			},
			query:            NearbyQuery{Longitude: 76.26, Latitude: 9.93},
			expectedDistance: "",
		},
		{
			name:        "Error - storage error",
			mockStore:   &mockStoreStorage{error: ErrStorage},
			query:       NearbyQuery{Longitude: 76.26, Latitude: 9.93},
			expectError: ErrStorage,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewDiscovery(tc.mockStore, 10000)
			// when
			found, err := service.FindNearby(context.Background(), tc.query)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			require.Len(t, found, 1)
			assert.Equal(t, tc.expectedDistance, found[0].Distance)
			require.NotNil(t, tc.mockStore.nearbyParams)
			assert.True(t, tc.mockStore.nearbyParams.RequireActive)
			assert.InDelta(t, 10000, tc.mockStore.nearbyParams.RadiusMeters, 0.001)
		})
	}
}

// Distance must be measured the same way regardless of the store's latitude,
// so a store one degree east at a high latitude reports a shorter distance
// than at the equator.
func Test_DiscoveryService_DistanceShrinksWithLatitude(t *testing.T) {
	// given
	mockStore := &mockStoreStorage{
		stores: []storage.Store{{
			ID:        uuid.New(),
			Status:    storage.StatusActive,
			Longitude: ptrFloat(11),
			Latitude:  ptrFloat(60),
		}},
	}
	service := NewDiscovery(mockStore, 100000)
	// when
	found, err := service.FindNearby(context.Background(), NearbyQuery{Longitude: 10, Latitude: 60})
	// then
	require.NoError(t, err)
	require.Len(t, found, 1)
	// One degree of longitude at 60N is about half its length at the equator.
	assert.Equal(t, "55.60", found[0].Distance)
}

func Test_DiscoveryService_CategoryFilter(t *testing.T) {
	categoryID, _ := uuid.Parse("7c9e6679-7425-40de-944b-e07fc1f90ae7")
	testCases := []struct {
		name       string
		categoryID string
		expected   *uuid.UUID
	}{
		{
			name:       "valid category is passed to storage",
			categoryID: categoryID.String(),
			expected:   &categoryID,
		},
		{
			name:       "invalid category drops the filter",
			categoryID: "not-a-uuid",
			expected:   nil,
		},
		{
			name:       "empty category drops the filter",
			categoryID: "",
			expected:   nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			mockStore := &mockStoreStorage{stores: []storage.Store{}}
			service := NewDiscovery(mockStore, 10000)
			// when
			found, err := service.FindNearby(context.Background(), NearbyQuery{
				Longitude:  76.26,
				Latitude:   9.93,
				CategoryID: tc.categoryID,
			})
			// then
			require.NoError(t, err)
			assert.Empty(t, found)
			require.NotNil(t, mockStore.nearbyParams)
			assert.Equal(t, tc.expected, mockStore.nearbyParams.CategoryID)
		})
	}
}

func Test_DiscoveryService_CategoryExpansion(t *testing.T) {
	// given
	categoryID := uuid.New()
	name := "Electronics"
	icon := "tv"
	mockStore := &mockStoreStorage{
		stores: []storage.Store{{
			ID:           uuid.New(),
			Status:       storage.StatusActive,
			CategoryID:   &categoryID,
			CategoryName: &name,
			CategoryIcon: &icon,
			Longitude:    ptrFloat(76.27),
			Latitude:     ptrFloat(9.94),
		}},
	}
	service := NewDiscovery(mockStore, 10000)
	// when
	found, err := service.FindNearby(context.Background(), NearbyQuery{Longitude: 76.26, Latitude: 9.93})
	// then
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.NotNil(t, found[0].Category)
	assert.Equal(t, categoryID.String(), found[0].Category.ID)
	assert.Equal(t, "Electronics", found[0].Category.Name)
	assert.Equal(t, "tv", found[0].Category.Icon)
}
