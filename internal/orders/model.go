package orders

import "time"

// Order is a purchase placed by a user.
type Order struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"totalCents"`
	OrderDate  time.Time `json:"orderDate"`
}

// Item links a product and quantity to an order.
type Item struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
	OrderID   int64 `json:"orderId"`
}
