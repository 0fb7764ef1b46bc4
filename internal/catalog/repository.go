package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/shopfront/shopfront/internal/infra"
)

// Repository lists the product catalogue.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
}

// PostgresRepository reads products from PostgreSQL.
type PostgresRepository struct {
	db infra.DBTX
}

func NewPostgresRepository(db infra.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns every product ordered by id.
func (r *PostgresRepository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, description, price_cents, image_url, stock FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Product, error) {
		var p Product
		err := row.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.ImageURL, &p.Stock)
		return p, err
	})
}

// MemoryRepository is a fixed in-memory catalogue.
type MemoryRepository struct {
	mu       sync.RWMutex
	products map[int64]Product
}

func NewMemoryRepository(products ...Product) *MemoryRepository {
	r := &MemoryRepository{products: make(map[int64]Product, len(products))}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *MemoryRepository) List(context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
