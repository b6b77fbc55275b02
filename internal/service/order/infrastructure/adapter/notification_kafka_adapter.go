package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"

	"frankies/internal/event"
	"frankies/internal/pkg/mq"
	"frankies/internal/service/order/domain"
)

// NotificationKafkaAdapter implements port.NotificationProducer on top of the
// notifications topic. Messages are keyed by the customer email so one
// customer's notifications stay ordered.
type NotificationKafkaAdapter struct {
	writer *kafka.Writer
}

func NewNotificationKafkaAdapter(writer *kafka.Writer) *NotificationKafkaAdapter {
	return &NotificationKafkaAdapter{writer: writer}
}

func (a *NotificationKafkaAdapter) OrderPlaced(ctx context.Context, order *domain.Order) error {
	return a.publish(ctx, event.Notification{
		Type:      event.TypeOrderPlaced,
		Recipient: order.Customer.Email,
		OrderID:   order.OrderID,
		Status:    string(order.Status),
		Message:   fmt.Sprintf("Your order %s has been placed.", order.OrderID),
		SentAt:    time.Now(),
	})
}

func (a *NotificationKafkaAdapter) OrderStatusChanged(ctx context.Context, order *domain.Order) error {
	kind := event.TypeOrderConfirmed
	if order.Status == domain.StatusCancelled {
		kind = event.TypeOrderCancelled
	}
	return a.publish(ctx, event.Notification{
		Type:      kind,
		Recipient: order.Customer.Email,
		OrderID:   order.OrderID,
		Status:    string(order.Status),
		Message:   fmt.Sprintf("Your order %s is now %s.", order.OrderID, order.Status),
		SentAt:    time.Now(),
	})
}

func (a *NotificationKafkaAdapter) publish(ctx context.Context, n event.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return errors.Wrap(err, "marshal notification")
	}
	return mq.ProduceMessage(ctx, a.writer, []byte(n.Recipient), payload)
}

func (a *NotificationKafkaAdapter) Close() error {
	return a.writer.Close()
}
