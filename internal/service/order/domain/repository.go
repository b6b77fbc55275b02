package domain

import "context"

// OrderRepository is the persistence port of the order aggregate,
// implemented by the GORM adapter in infrastructure.
type OrderRepository interface {
	// Create persists a new order, assigning the storage identifier and
	// timestamps. Returns ErrDuplicateOrderID when the generated order id
	// collides with an existing row.
	Create(ctx context.Context, order *Order) error

	// FindByID looks an order up by its storage identifier.
	FindByID(ctx context.Context, id string) (*Order, error)

	// FindByOrderID looks an order up by the business-facing order id.
	FindByOrderID(ctx context.Context, orderID string) (*Order, error)

	// Save writes back an updated order.
	Save(ctx context.Context, order *Order) error
}
