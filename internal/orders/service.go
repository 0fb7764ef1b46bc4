package orders

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNoOrders is returned when the user has not placed any order.
	ErrNoOrders = errors.New("no orders found")

	// ErrNoItems is returned when none of the user's orders reference a product.
	ErrNoItems = errors.New("no product references found for the user")
)

// Service exposes the order history of a user.
type Service struct {
	repo Repository
}

// NewService builds an order service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Orders returns the orders of userID, or ErrNoOrders when there are none.
func (s *Service) Orders(ctx context.Context, userID int64) ([]Order, error) {
	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if len(list) == 0 {
		return nil, ErrNoOrders
	}
	return list, nil
}

// Items returns the product lines across all orders of userID.
func (s *Service) Items(ctx context.Context, userID int64) ([]Item, error) {
	list, err := s.repo.ListItemsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	if len(list) == 0 {
		return nil, ErrNoItems
	}
	return list, nil
}
