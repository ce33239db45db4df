package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var categoryColumns = []string{"id", "name", "icon", "parent_id", "is_active", "created_at"}

// PgCategories implements CategoryStorage using PostgreSQL.
type PgCategories struct {
	db *pgxpool.Pool
}

// NewPgCategories creates a new CategoryStorage instance backed by the given pool.
func NewPgCategories(db *pgxpool.Pool) *PgCategories {
	return &PgCategories{db: db}
}

// FindActiveTopLevel returns active categories without a parent.
func (p *PgCategories) FindActiveTopLevel(ctx context.Context) ([]Category, error) {
	q := psql.Select(categoryColumns...).
		From("categories").
		Where(sq.Eq{"parent_id": nil, "is_active": true}).
		OrderBy("name ASC")
	return p.list(ctx, q)
}

// FindActiveChildren returns active sub-categories of the given parent.
func (p *PgCategories) FindActiveChildren(ctx context.Context, parentID uuid.UUID) ([]Category, error) {
	q := psql.Select(categoryColumns...).
		From("categories").
		Where(sq.Eq{"parent_id": parentID, "is_active": true}).
		OrderBy("name ASC")
	return p.list(ctx, q)
}

func (p *PgCategories) list(ctx context.Context, q sq.SelectBuilder) ([]Category, error) {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build category query: %w", err)
	}
	var categories []Category
	if err := pgxscan.Select(ctx, p.db, &categories, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	return categories, nil
}
