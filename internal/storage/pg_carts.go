package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgCarts implements CartStorage using PostgreSQL.
type PgCarts struct {
	db *pgxpool.Pool
}

// NewPgCarts creates a new CartStorage instance backed by the given pool.
func NewPgCarts(db *pgxpool.Pool) *PgCarts {
	return &PgCarts{db: db}
}

// Upsert adds the product to the user's cart or bumps its quantity.
func (p *PgCarts) Upsert(ctx context.Context, userID string, storeID, productID uuid.UUID, quantity int32) error {
	q := psql.Insert("cart_items").
		Columns("user_id", "store_id", "product_id", "quantity").
		Values(userID, storeID, productID, quantity).
		Suffix("ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity")
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build cart upsert: %w", err)
	}
	if _, err := p.db.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("failed to upsert cart item: %w", err)
	}
	return nil
}

// FindByUserAndStore returns the user's cart lines for one store with
// product name and price expanded.
func (p *PgCarts) FindByUserAndStore(ctx context.Context, userID string, storeID uuid.UUID) ([]CartItem, error) {
	q := psql.Select(
		"ci.user_id", "ci.store_id", "ci.product_id",
		"pr.name AS product_name", "pr.price",
		"ci.quantity", "ci.created_at",
	).
		From("cart_items ci").
		Join("products pr ON pr.id = ci.product_id").
		Where(sq.Eq{"ci.user_id": userID, "ci.store_id": storeID}).
		OrderBy("ci.created_at ASC")
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build cart query: %w", err)
	}
	var items []CartItem
	if err := pgxscan.Select(ctx, p.db, &items, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	return items, nil
}

// DeleteByUserAndStore clears the user's cart for one store.
func (p *PgCarts) DeleteByUserAndStore(ctx context.Context, userID string, storeID uuid.UUID) error {
	q := psql.Delete("cart_items").Where(sq.Eq{"user_id": userID, "store_id": storeID})
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build cart delete: %w", err)
	}
	if _, err := p.db.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
