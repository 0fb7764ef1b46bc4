package orders

import (
	"context"
	"testing"
	"time"
)

func TestServiceOrdersForUser(t *testing.T) {
	repo := NewMemoryRepository()
	now := time.Now().UTC()
	Seed(repo,
		[]Order{
			{ID: 1, UserID: 10, Status: "shipped", TotalCents: 2_500, OrderDate: now},
			{ID: 2, UserID: 10, Status: "pending", TotalCents: 900, OrderDate: now},
			{ID: 3, UserID: 11, Status: "pending", TotalCents: 100, OrderDate: now},
		},
		[]Item{
			{OrderID: 1, ProductID: 7, Quantity: 2},
			{OrderID: 3, ProductID: 8, Quantity: 1},
		},
	)
	svc := NewService(repo)
	ctx := context.Background()

	list, err := svc.Orders(ctx, 10)
	if err != nil {
		t.Fatalf("orders: %v", err)
	}
	if len(list) != 2 || list[0].ID != 1 || list[1].ID != 2 {
		t.Fatalf("expected orders 1 and 2, got %+v", list)
	}

	items, err := svc.Items(ctx, 10)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(items) != 1 || items[0].ProductID != 7 || items[0].Quantity != 2 {
		t.Fatalf("expected a single line for product 7, got %+v", items)
	}
}

func TestServiceEmptyHistory(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.Orders(ctx, 99); err != ErrNoOrders {
		t.Fatalf("expected ErrNoOrders, got %v", err)
	}
	if _, err := svc.Items(ctx, 99); err != ErrNoItems {
		t.Fatalf("expected ErrNoItems, got %v", err)
	}
}
