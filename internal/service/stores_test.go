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

func Test_StoreService_FindByID(t *testing.T) {
	ErrStoreNotFound := errors.New("store not found")
	mockID, _ := uuid.Parse("123e4567-e89b-12d3-a456-426614174000")
	categoryID, _ := uuid.Parse("7c9e6679-7425-40de-944b-e07fc1f90ae7")
	testCases := []struct {
		name               string
		mockStores         *mockStoreStorage
		mockCategories     *mockCategoryStorage
		expectedCategories int
		expectChildrenUsed bool
		expectError        error
	}{
		{
			name: "Success - store with category gets product categories",
			mockStores: &mockStoreStorage{
				store: storage.Store{ID: mockID, Name: "Toy World", CategoryID: &categoryID},
			},
			mockCategories: &mockCategoryStorage{categories: []storage.Category{
				{ID: uuid.New(), Name: "Action Figures"},
				{ID: uuid.New(), Name: "Board Games"},
			}},
			expectedCategories: 2,
			expectChildrenUsed: true,
		},
		{
			name: "Success - store without category skips the lookup",
			mockStores: &mockStoreStorage{
				store: storage.Store{ID: mockID, Name: "Toy World"},
			},
			mockCategories:     &mockCategoryStorage{},
			expectedCategories: 0,
			expectChildrenUsed: false,
		},
		{
			name:           "Error - store not found",
			mockStores:     &mockStoreStorage{error: ErrStoreNotFound},
			mockCategories: &mockCategoryStorage{},
			expectError:    ErrStoreNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewStores(tc.mockStores, tc.mockCategories)
			// when
			found, err := service.FindByID(context.Background(), mockID)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Len(t, found.ProductCategories, tc.expectedCategories)
			assert.Equal(t, tc.expectChildrenUsed, tc.mockCategories.childrenQueried)
		})
	}
}

func Test_StoreService_FindAll(t *testing.T) {
	// given
	mockStores := &mockStoreStorage{stores: []storage.Store{
		{ID: uuid.New(), Name: "Toy World"},
		{ID: uuid.New(), Name: "Corner Shop"},
	}}
	service := NewStores(mockStores, &mockCategoryStorage{})
	// when
	found, err := service.FindAll(context.Background())
	// then
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func Test_StoreService_ToggleStatus(t *testing.T) {
	// given
	mockID := uuid.New()
	mockStores := &mockStoreStorage{store: storage.Store{ID: mockID, Status: storage.StatusInactive}}
	service := NewStores(mockStores, &mockCategoryStorage{})
	// when
	updated, err := service.ToggleStatus(context.Background(), mockID)
	// then
	require.NoError(t, err)
	assert.Equal(t, storage.StatusInactive, updated.Status)
}

func Test_StoreService_SetLive(t *testing.T) {
	// given
	mockID := uuid.New()
	mockStores := &mockStoreStorage{store: storage.Store{ID: mockID, Live: true}}
	service := NewStores(mockStores, &mockCategoryStorage{})
	// when
	updated, err := service.SetLive(context.Background(), mockID, true)
	// then
	require.NoError(t, err)
	assert.True(t, updated.Live)
}
