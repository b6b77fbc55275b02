package port

import (
	"context"

	"frankies/internal/service/order/domain"
)

// NotificationProducer publishes order lifecycle events to the messaging
// collaborator. Publishing is best-effort: the order operation itself never
// fails because a notification could not be sent.
type NotificationProducer interface {
	OrderPlaced(ctx context.Context, order *domain.Order) error
	OrderStatusChanged(ctx context.Context, order *domain.Order) error
}
