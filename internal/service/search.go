package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/Anurag-M-K/mallumart-be/internal/storage"
)

// recordSearchTimeout bounds the detached counter write.
const recordSearchTimeout = 5 * time.Second

// SearchTermDto represents one ledger entry in API responses.
type SearchTermDto struct {
	Term        string `json:"term"`
	SearchCount int64  `json:"searchCount"`
}

// SearchService defines the product-name store lookup and the ledger reads.
type SearchService interface {
	// SearchStores returns the distinct stores owning a product whose name
	// contains the term as a case-insensitive literal substring. Every call
	// with a non-empty term bumps the term's ledger counter.
	// Returns an empty slice if no products match.
	SearchStores(ctx context.Context, rawTerm string) ([]StoreDto, error)

	// TopTerms returns the most searched terms, highest count first.
	TopTerms(ctx context.Context, limit int32) ([]SearchTermDto, error)
}

// Search implements SearchService.
type Search struct {
	products storage.ProductStorage
	stores   storage.StoreStorage
	terms    storage.SearchTermStorage
	logger   *slog.Logger
}

// NewSearch creates a new SearchService with the provided repositories.
func NewSearch(products storage.ProductStorage, stores storage.StoreStorage, terms storage.SearchTermStorage, logger *slog.Logger) *Search {
	return &Search{
		products: products,
		stores:   stores,
		terms:    terms,
		logger:   logger.With("component", "search"),
	}
}

// SearchStores records the term and returns the owning stores of matching
// products. The counter write runs detached from the lookup, so a ledger
// failure is logged and the caller still gets their result.
func (s *Search) SearchStores(ctx context.Context, rawTerm string) ([]StoreDto, error) {
	term := normalizeTerm(rawTerm)
	if term == "" {
		return []StoreDto{}, nil
	}

	recordSearchAsync(ctx, s.logger, s.terms, term)

	ids, err := s.products.DistinctStoreIDs(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to locate products for term %q: %w", term, err)
	}
	if len(ids) == 0 {
		return []StoreDto{}, nil
	}

	stores, err := s.stores.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch owning stores for term %q: %w", term, err)
	}
	return toStoreDtos(stores), nil
}

// TopTerms returns the most searched terms as DTOs.
func (s *Search) TopTerms(ctx context.Context, limit int32) ([]SearchTermDto, error) {
	terms, err := s.terms.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch top search terms: %w", err)
	}
	dtos := make([]SearchTermDto, len(terms))
	for i, item := range terms {
		dtos[i] = SearchTermDto{Term: item.Term, SearchCount: item.SearchCount}
	}
	return dtos, nil
}

// normalizeTerm URL-decodes and trims a raw search term. Undecodable input
// is used as-is.
func normalizeTerm(rawTerm string) string {
	if decoded, err := url.QueryUnescape(rawTerm); err == nil {
		rawTerm = decoded
	}
	return strings.TrimSpace(rawTerm)
}

// recordSearchAsync bumps the ledger counter in a detached goroutine. The
// write outlives the request context, and its failure is logged, never
// returned.
func recordSearchAsync(ctx context.Context, logger *slog.Logger, terms storage.SearchTermStorage, term string) {
	detached := context.WithoutCancel(ctx)
	go func() {
		recordCtx, cancel := context.WithTimeout(detached, recordSearchTimeout)
		defer cancel()
		if _, err := terms.RecordSearch(recordCtx, term); err != nil {
			logger.ErrorContext(recordCtx, "failed to record search term", "term", term, "error", err)
		}
	}()
}
