package storage

import (
	"context"
	"fmt"

	merrors "github.com/Anurag-M-K/mallumart-be/internal/errors"
	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgAdvertisements implements AdvertisementStorage using PostgreSQL.
type PgAdvertisements struct {
	db *pgxpool.Pool
}

// NewPgAdvertisements creates a new AdvertisementStorage instance backed by the given pool.
func NewPgAdvertisements(db *pgxpool.Pool) *PgAdvertisements {
	return &PgAdvertisements{db: db}
}

// Create adds an advertisement for a store.
func (p *PgAdvertisements) Create(ctx context.Context, storeID uuid.UUID, imageURL string) (*Advertisement, error) {
	q := psql.Insert("advertisements").
		Columns("store_id", "image_url").
		Values(storeID, imageURL).
		Suffix("RETURNING id, store_id, image_url, created_at")
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build advertisement insert: %w", err)
	}
	var ad Advertisement
	if err := pgxscan.Get(ctx, p.db, &ad, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("failed to create advertisement: %w", err)
	}
	return &ad, nil
}

// FindByStore returns a store's advertisements, newest first.
func (p *PgAdvertisements) FindByStore(ctx context.Context, storeID uuid.UUID) ([]Advertisement, error) {
	q := psql.Select("id", "store_id", "image_url", "created_at").
		From("advertisements").
		Where(sq.Eq{"store_id": storeID}).
		OrderBy("created_at DESC")
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build advertisement query: %w", err)
	}
	var ads []Advertisement
	if err := pgxscan.Select(ctx, p.db, &ads, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("failed to query advertisements: %w", err)
	}
	return ads, nil
}

// DeleteByID removes an advertisement by its unique identifier.
// Returns ErrAdvertisementNotFound if no advertisement exists with the given ID.
func (p *PgAdvertisements) DeleteByID(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete("advertisements").Where(sq.Eq{"id": id})
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build advertisement delete: %w", err)
	}
	tag, err := p.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("failed to delete advertisement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return merrors.ErrAdvertisementNotFound
	}
	return nil
}
