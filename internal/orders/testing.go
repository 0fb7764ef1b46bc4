package orders

// Seed is a test helper that loads orders and items into the in-memory repository.
func Seed(repo Repository, orders []Order, items []Item) {
	if mem, ok := repo.(*memoryRepository); ok {
		mem.mu.Lock()
		defer mem.mu.Unlock()
		for _, o := range orders {
			mem.orders[o.ID] = o
		}
		mem.items = append(mem.items, items...)
	}
}
