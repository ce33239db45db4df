package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Anurag-M-K/mallumart-be/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ProductService_FindByID(t *testing.T) {
	ErrProductNotFound := errors.New("product not found")
	mockID, _ := uuid.Parse("123e4567-e89b-12d3-a456-426614174000")
	storeID, _ := uuid.Parse("7c9e6679-7425-40de-944b-e07fc1f90ae7")
	testCases := []struct {
		name        string
		mockStore   *mockProductStorage
		expected    *ProductDto
		expectError error
	}{
		{
			name: "Success - product found",
			mockStore: &mockProductStorage{
				product: storage.Product{ID: mockID, Name: "Toy", StoreID: storeID, Price: 499},
			},
			expected: &ProductDto{ID: mockID.String(), Name: "Toy", StoreID: storeID.String(), Price: 499},
		},
		{
			name:        "Error - product not found",
			mockStore:   &mockProductStorage{error: ErrProductNotFound},
			expectError: ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewProducts(tc.mockStore, &mockSearchTermStorage{}, testLogger())
			// when
			found, err := service.FindByID(context.Background(), mockID)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, found)
		})
	}
}

func Test_ProductService_Find_Pagination(t *testing.T) {
	testCases := []struct {
		name           string
		total          int64
		page           int32
		limit          int32
		expectedPages  int32
		expectedPage   int32
		expectedOffset int32
		expectedLimit  int32
	}{
		{name: "full pages plus remainder", total: 25, page: 2, limit: 10, expectedPages: 3, expectedPage: 2, expectedOffset: 10, expectedLimit: 10},
		{name: "defaults applied", total: 5, page: 0, limit: 0, expectedPages: 1, expectedPage: 1, expectedOffset: 0, expectedLimit: 10},
		{name: "exact multiple", total: 20, page: 1, limit: 10, expectedPages: 2, expectedPage: 1, expectedOffset: 0, expectedLimit: 10},
		{name: "empty catalog", total: 0, page: 1, limit: 10, expectedPages: 0, expectedPage: 1, expectedOffset: 0, expectedLimit: 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			mockStore := &mockProductStorage{total: tc.total, products: []storage.Product{}}
			service := NewProducts(mockStore, &mockSearchTermStorage{}, testLogger())
			// when
			page, err := service.Find(context.Background(), ProductQuery{Page: tc.page, Limit: tc.limit})
			// then
			require.NoError(t, err)
			assert.Equal(t, tc.total, page.TotalProducts)
			assert.Equal(t, tc.expectedPages, page.TotalPages)
			assert.Equal(t, tc.expectedPage, page.CurrentPage)
			require.NotNil(t, mockStore.filter)
			assert.Equal(t, tc.expectedOffset, mockStore.filter.Offset)
			assert.Equal(t, tc.expectedLimit, mockStore.filter.Limit)
		})
	}
}

func Test_ProductService_Find_Filters(t *testing.T) {
	storeID := uuid.New()
	// given
	mockStore := &mockProductStorage{products: []storage.Product{}}
	service := NewProducts(mockStore, &mockSearchTermStorage{}, testLogger())
	// when
	_, err := service.Find(context.Background(), ProductQuery{
		StoreID:    storeID.String(),
		CategoryID: "not-a-uuid",
		Sort:       storage.SortLowToHigh,
	})
	// then
	require.NoError(t, err)
	require.NotNil(t, mockStore.filter)
	require.NotNil(t, mockStore.filter.StoreID)
	assert.Equal(t, storeID, *mockStore.filter.StoreID)
	assert.Nil(t, mockStore.filter.CategoryID, "unparseable category drops the filter")
	assert.Equal(t, storage.SortLowToHigh, mockStore.filter.Sort)
}

func Test_ProductService_Find_FeedsLedger(t *testing.T) {
	// given
	notify := make(chan string, 1)
	mockTerms := &mockSearchTermStorage{count: 1, notify: notify}
	mockStore := &mockProductStorage{products: []storage.Product{}}
	service := NewProducts(mockStore, mockTerms, testLogger())
	// when
	_, err := service.Find(context.Background(), ProductQuery{SearchTerm: " shoes "})
	// then
	require.NoError(t, err)
	assert.Equal(t, "shoes", waitForTerm(t, notify))
}

func Test_ProductService_Find_NoTermNoLedger(t *testing.T) {
	// given
	mockTerms := &mockSearchTermStorage{count: 1}
	mockStore := &mockProductStorage{products: []storage.Product{}}
	service := NewProducts(mockStore, mockTerms, testLogger())
	// when
	_, err := service.Find(context.Background(), ProductQuery{})
	// then
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, mockTerms.recordedTerms())
}

func Test_ProductService_Create(t *testing.T) {
	ErrStorage := errors.New("storage error")
	mockID := uuid.New()
	storeID := uuid.New()
	testCases := []struct {
		name        string
		mockStore   *mockProductStorage
		expectError error
	}{
		{
			name:      "Success - product created",
			mockStore: &mockProductStorage{product: storage.Product{ID: mockID, Name: "Toy", StoreID: storeID}},
		},
		{
			name:        "Error - storage error",
			mockStore:   &mockProductStorage{error: ErrStorage},
			expectError: ErrStorage,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewProducts(tc.mockStore, &mockSearchTermStorage{}, testLogger())
			// when
			created, err := service.Create(context.Background(), ProductCreateDto{Name: "Toy", StoreID: storeID, Price: 100})
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, created)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, mockID.String(), created.ID)
		})
	}
}
