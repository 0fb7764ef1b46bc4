package orders

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/shopfront/shopfront/internal/infra"
)

// Repository reads orders and their items.
type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]Order, error)
	ListItemsByUser(ctx context.Context, userID int64) ([]Item, error)
}

// PostgresRepository reads orders from PostgreSQL.
type PostgresRepository struct {
	db infra.DBTX
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db infra.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListByUser returns every order placed by userID, oldest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]Order, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, status, total_cents, order_date
        FROM orders WHERE user_id = $1 ORDER BY order_date, id`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Order, error) {
		var o Order
		err := row.Scan(&o.ID, &o.UserID, &o.Status, &o.TotalCents, &o.OrderDate)
		o.OrderDate = o.OrderDate.UTC()
		return o, err
	})
}

// ListItemsByUser returns the product lines of every order placed by userID.
func (r *PostgresRepository) ListItemsByUser(ctx context.Context, userID int64) ([]Item, error) {
	rows, err := r.db.Query(ctx, `SELECT op.product_id, op.quantity, op.order_id
        FROM order_products op
        INNER JOIN orders o ON o.id = op.order_id
        WHERE o.user_id = $1
        ORDER BY op.order_id, op.product_id`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Item, error) {
		var it Item
		err := row.Scan(&it.ProductID, &it.Quantity, &it.OrderID)
		return it, err
	})
}
