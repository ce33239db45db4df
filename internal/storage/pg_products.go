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

var productColumns = []string{
	"p.id", "p.name", "p.store_id", "p.category_id",
	"c.name AS category_name",
	"p.price", "p.image_url", "p.created_at", "p.updated_at",
}

// PgProducts implements ProductStorage using PostgreSQL.
type PgProducts struct {
	db *pgxpool.Pool
}

// NewPgProducts creates a new ProductStorage instance backed by the given pool.
func NewPgProducts(db *pgxpool.Pool) *PgProducts {
	return &PgProducts{db: db}
}

func (p *PgProducts) selectProducts() sq.SelectBuilder {
	return psql.Select(productColumns...).
		From("products p").
		LeftJoin("categories c ON c.id = p.category_id")
}

func applyProductFilter(q sq.SelectBuilder, filter ProductFilter) sq.SelectBuilder {
	if filter.StoreID != nil {
		q = q.Where(sq.Eq{"p.store_id": *filter.StoreID})
	}
	if filter.CategoryID != nil {
		q = q.Where(sq.Eq{"p.category_id": *filter.CategoryID})
	}
	if filter.NameLike != "" {
		q = q.Where(sq.Expr("p.name ILIKE ?", likePattern(filter.NameLike)))
	}
	return q
}

// FindByID retrieves a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgProducts) FindByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	q := p.selectProducts().Where(sq.Eq{"p.id": id})
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build product query: %w", err)
	}
	var product Product
	if err := pgxscan.Get(ctx, p.db, &product, sqlStr, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, merrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return &product, nil
}

// Find returns products matching the filter, sorted and paginated.
func (p *PgProducts) Find(ctx context.Context, filter ProductFilter) ([]Product, error) {
	q := applyProductFilter(p.selectProducts(), filter)

	switch filter.Sort {
	case SortLowToHigh:
		q = q.OrderBy("p.price ASC")
	case SortHighToLow:
		q = q.OrderBy("p.price DESC")
	default:
		q = q.OrderBy("p.created_at DESC")
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build product query: %w", err)
	}
	var products []Product
	if err := pgxscan.Select(ctx, p.db, &products, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	return products, nil
}

// Count returns the number of products matching the filter.
func (p *PgProducts) Count(ctx context.Context, filter ProductFilter) (int64, error) {
	q := applyProductFilter(psql.Select("count(*)").From("products p"), filter)
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build product count query: %w", err)
	}
	var count int64
	if err := pgxscan.Get(ctx, p.db, &count, sqlStr, args...); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// DistinctStoreIDs returns the distinct owning-store IDs of products whose
// name contains the term as a case-insensitive literal substring.
func (p *PgProducts) DistinctStoreIDs(ctx context.Context, nameLike string) ([]uuid.UUID, error) {
	q := psql.Select("DISTINCT p.store_id").
		From("products p").
		Where(sq.Expr("p.name ILIKE ?", likePattern(nameLike)))
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build store ID query: %w", err)
	}
	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, p.db, &ids, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("failed to query owning stores: %w", err)
	}
	return ids, nil
}

// Create adds a new product and returns it with the category expanded.
func (p *PgProducts) Create(ctx context.Context, params ProductCreateParams) (*Product, error) {
	q := psql.Insert("products").
		Columns("name", "store_id", "category_id", "price", "image_url").
		Values(params.Name, params.StoreID, params.CategoryID, params.Price, params.ImageURL).
		Suffix("RETURNING id")
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build product insert: %w", err)
	}
	var id uuid.UUID
	if err := pgxscan.Get(ctx, p.db, &id, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return p.FindByID(ctx, id)
}

// Update modifies an existing product.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgProducts) Update(ctx context.Context, params ProductUpdateParams) (*Product, error) {
	q := psql.Update("products").
		Set("name", params.Name).
		Set("category_id", params.CategoryID).
		Set("price", params.Price).
		Set("image_url", params.ImageURL).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": params.ID})
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build product update: %w", err)
	}
	tag, err := p.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, merrors.ErrProductNotFound
	}
	return p.FindByID(ctx, params.ID)
}

// DeleteByID removes a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgProducts) DeleteByID(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete("products").Where(sq.Eq{"id": id})
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build product delete: %w", err)
	}
	tag, err := p.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("failed to delete product by ID: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return merrors.ErrProductNotFound
	}
	return nil
}
