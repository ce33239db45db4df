package storage

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgSearchTerms implements SearchTermStorage using PostgreSQL.
type PgSearchTerms struct {
	db *pgxpool.Pool
}

// NewPgSearchTerms creates a new SearchTermStorage instance backed by the given pool.
func NewPgSearchTerms(db *pgxpool.Pool) *PgSearchTerms {
	return &PgSearchTerms{db: db}
}

// RecordSearch atomically creates or increments the counter for the term and
// returns the new count. The conditional upsert is a single statement, so
// concurrent searches for the same term never lose an increment.
func (p *PgSearchTerms) RecordSearch(ctx context.Context, term string) (int64, error) {
	q := psql.Insert("search_terms").
		Columns("term", "search_count").
		Values(term, 1).
		Suffix("ON CONFLICT (term) DO UPDATE SET search_count = search_terms.search_count + 1, updated_at = now()").
		Suffix("RETURNING search_count")
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build search term upsert: %w", err)
	}
	var count int64
	if err := pgxscan.Get(ctx, p.db, &count, sqlStr, args...); err != nil {
		return 0, fmt.Errorf("failed to record search term: %w", err)
	}
	return count, nil
}

// Top returns the most searched terms, highest count first.
func (p *PgSearchTerms) Top(ctx context.Context, limit int32) ([]SearchTerm, error) {
	q := psql.Select("term", "search_count", "created_at", "updated_at").
		From("search_terms").
		OrderBy("search_count DESC", "term ASC").
		Limit(uint64(limit))
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build top terms query: %w", err)
	}
	var terms []SearchTerm
	if err := pgxscan.Select(ctx, p.db, &terms, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("failed to query top terms: %w", err)
	}
	return terms, nil
}
