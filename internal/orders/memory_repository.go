package orders

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu     sync.RWMutex
	orders map[int64]Order
	items  []Item
}

// NewMemoryRepository constructs an in-memory repository for tests and local development.
func NewMemoryRepository() Repository {
	return &memoryRepository{orders: make(map[int64]Order)}
}

func (r *memoryRepository) ListByUser(_ context.Context, userID int64) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryRepository) ListItemsByUser(_ context.Context, userID int64) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Item
	for _, it := range r.items {
		if o, ok := r.orders[it.OrderID]; ok && o.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}
