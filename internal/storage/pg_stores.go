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

// storeColumns is the uniform select list for store queries. The location
// point is split into longitude/latitude and the category reference is
// expanded to name and icon.
var storeColumns = []string{
	"s.id", "s.name", "s.unique_name", "s.owner_name", "s.phone", "s.email",
	"s.district", "s.city", "s.address", "s.image_url", "s.category_id",
	"s.status", "s.live",
	"ST_X(s.location::geometry) AS longitude",
	"ST_Y(s.location::geometry) AS latitude",
	"c.name AS category_name",
	"c.icon AS category_icon",
	"s.created_at", "s.updated_at",
}

// PgStores implements StoreStorage using PostgreSQL with PostGIS.
type PgStores struct {
	db *pgxpool.Pool
}

// NewPgStores creates a new StoreStorage instance backed by the given pool.
func NewPgStores(db *pgxpool.Pool) *PgStores {
	return &PgStores{db: db}
}

func (p *PgStores) selectStores() sq.SelectBuilder {
	return psql.Select(storeColumns...).
		From("stores s").
		LeftJoin("categories c ON c.id = s.category_id")
}

// FindNearby returns stores within the radius, nearest first. Both the radius
// cutoff and the ordering are computed by the geospatial index, not in Go.
func (p *PgStores) FindNearby(ctx context.Context, params NearbyParams) ([]Store, error) {
	point := sq.Expr("ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography", params.Longitude, params.Latitude)

	q := p.selectStores().
		Where("s.location IS NOT NULL").
		Where(sq.Expr("ST_DWithin(s.location, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography, ?)",
			params.Longitude, params.Latitude, params.RadiusMeters))
	if params.RequireActive {
		q = q.Where(sq.Eq{"s.status": StatusActive})
	}
	if params.CategoryID != nil {
		q = q.Where(sq.Eq{"s.category_id": *params.CategoryID})
	}
	q = q.OrderByClause(sq.ConcatExpr("s.location <-> ", point))

	return p.list(ctx, q)
}

// FindAll retrieves every store with its category name expanded.
func (p *PgStores) FindAll(ctx context.Context) ([]Store, error) {
	return p.list(ctx, p.selectStores().OrderBy("s.created_at DESC"))
}

// FindByID retrieves a store by its unique identifier.
// Returns ErrStoreNotFound if no store exists with the given ID.
func (p *PgStores) FindByID(ctx context.Context, id uuid.UUID) (*Store, error) {
	return p.get(ctx, p.selectStores().Where(sq.Eq{"s.id": id}))
}

// FindByUniqueName retrieves a store by its unique name.
// Returns ErrStoreNotFound if no store exists with the given name.
func (p *PgStores) FindByUniqueName(ctx context.Context, uniqueName string) (*Store, error) {
	return p.get(ctx, p.selectStores().Where(sq.Eq{"s.unique_name": uniqueName}))
}

// FindByIDs returns the stores whose IDs are in the given set.
func (p *PgStores) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Store, error) {
	if len(ids) == 0 {
		return []Store{}, nil
	}
	return p.list(ctx, p.selectStores().Where(sq.Eq{"s.id": ids}))
}

// ToggleStatus flips a store between active and inactive.
// Returns ErrStoreNotFound if no store exists with the given ID.
func (p *PgStores) ToggleStatus(ctx context.Context, id uuid.UUID) (*Store, error) {
	q := psql.Update("stores").
		Set("status", sq.Expr("CASE WHEN status = ? THEN ? ELSE ? END", StatusActive, StatusInactive, StatusActive)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	if err := p.exec(ctx, q, merrors.ErrStoreNotFound); err != nil {
		return nil, err
	}
	return p.FindByID(ctx, id)
}

// SetLive sets a store's live flag.
// Returns ErrStoreNotFound if no store exists with the given ID.
func (p *PgStores) SetLive(ctx context.Context, id uuid.UUID, live bool) (*Store, error) {
	q := psql.Update("stores").
		Set("live", live).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	if err := p.exec(ctx, q, merrors.ErrStoreNotFound); err != nil {
		return nil, err
	}
	return p.FindByID(ctx, id)
}

func (p *PgStores) list(ctx context.Context, q sq.SelectBuilder) ([]Store, error) {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build store query: %w", err)
	}
	var stores []Store
	if err := pgxscan.Select(ctx, p.db, &stores, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("failed to query stores: %w", err)
	}
	return stores, nil
}

func (p *PgStores) get(ctx context.Context, q sq.SelectBuilder) (*Store, error) {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build store query: %w", err)
	}
	var store Store
	if err := pgxscan.Get(ctx, p.db, &store, sqlStr, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, merrors.ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to find store: %w", err)
	}
	return &store, nil
}

func (p *PgStores) exec(ctx context.Context, q sq.UpdateBuilder, notFound error) error {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build store update: %w", err)
	}
	tag, err := p.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("failed to update store: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}
