package service

import (
	"context"
	"sync"

	"github.com/Anurag-M-K/mallumart-be/internal/storage"
	"github.com/google/uuid"
)

// mockStoreStorage is a mock implementation of the StoreStorage interface.
type mockStoreStorage struct {
	stores []storage.Store
	store  storage.Store
	error  error

	nearbyParams  *storage.NearbyParams
	requestedIDs  []uuid.UUID
	findByIDsUsed bool
}

func (m *mockStoreStorage) FindNearby(_ context.Context, params storage.NearbyParams) ([]storage.Store, error) {
	m.nearbyParams = &params
	return m.stores, m.error
}

func (m *mockStoreStorage) FindAll(_ context.Context) ([]storage.Store, error) {
	return m.stores, m.error
}

func (m *mockStoreStorage) FindByID(_ context.Context, _ uuid.UUID) (*storage.Store, error) {
	return &m.store, m.error
}

func (m *mockStoreStorage) FindByUniqueName(_ context.Context, _ string) (*storage.Store, error) {
	return &m.store, m.error
}

func (m *mockStoreStorage) FindByIDs(_ context.Context, ids []uuid.UUID) ([]storage.Store, error) {
	m.findByIDsUsed = true
	m.requestedIDs = ids
	return m.stores, m.error
}

func (m *mockStoreStorage) ToggleStatus(_ context.Context, _ uuid.UUID) (*storage.Store, error) {
	return &m.store, m.error
}

func (m *mockStoreStorage) SetLive(_ context.Context, _ uuid.UUID, _ bool) (*storage.Store, error) {
	return &m.store, m.error
}

// mockProductStorage is a mock implementation of the ProductStorage interface.
type mockProductStorage struct {
	products []storage.Product
	product  storage.Product
	storeIDs []uuid.UUID
	total    int64
	error    error

	filter   *storage.ProductFilter
	nameLike string
}

func (m *mockProductStorage) FindByID(_ context.Context, _ uuid.UUID) (*storage.Product, error) {
	return &m.product, m.error
}

func (m *mockProductStorage) Find(_ context.Context, filter storage.ProductFilter) ([]storage.Product, error) {
	m.filter = &filter
	return m.products, m.error
}

func (m *mockProductStorage) Count(_ context.Context, _ storage.ProductFilter) (int64, error) {
	return m.total, m.error
}

func (m *mockProductStorage) DistinctStoreIDs(_ context.Context, nameLike string) ([]uuid.UUID, error) {
	m.nameLike = nameLike
	return m.storeIDs, m.error
}

func (m *mockProductStorage) Create(_ context.Context, _ storage.ProductCreateParams) (*storage.Product, error) {
	return &m.product, m.error
}

func (m *mockProductStorage) Update(_ context.Context, _ storage.ProductUpdateParams) (*storage.Product, error) {
	return &m.product, m.error
}

func (m *mockProductStorage) DeleteByID(_ context.Context, _ uuid.UUID) error {
	return m.error
}

// mockSearchTermStorage is a mock implementation of the SearchTermStorage
// interface. RecordSearch is called from a detached goroutine, so calls are
// tracked under a mutex and optionally signalled on notify.
type mockSearchTermStorage struct {
	count int64
	terms []storage.SearchTerm
	error error

	mu       sync.Mutex
	recorded []string
	notify   chan string
}

func (m *mockSearchTermStorage) RecordSearch(_ context.Context, term string) (int64, error) {
	m.mu.Lock()
	m.recorded = append(m.recorded, term)
	m.mu.Unlock()
	if m.notify != nil {
		m.notify <- term
	}
	return m.count, m.error
}

func (m *mockSearchTermStorage) Top(_ context.Context, _ int32) ([]storage.SearchTerm, error) {
	return m.terms, m.error
}

func (m *mockSearchTermStorage) recordedTerms() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.recorded...)
}

// mockCategoryStorage is a mock implementation of the CategoryStorage interface.
type mockCategoryStorage struct {
	categories []storage.Category
	error      error

	childrenQueried bool
}

func (m *mockCategoryStorage) FindActiveTopLevel(_ context.Context) ([]storage.Category, error) {
	return m.categories, m.error
}

func (m *mockCategoryStorage) FindActiveChildren(_ context.Context, _ uuid.UUID) ([]storage.Category, error) {
	m.childrenQueried = true
	return m.categories, m.error
}
