package application

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"frankies/internal/pkg/logger"
	"frankies/internal/service/order/domain"
	"frankies/internal/service/order/domain/port"
)

// maxIDAttempts bounds the regenerate-on-conflict loop for order ids.
const maxIDAttempts = 3

// OrderService orchestrates the order lifecycle: place, confirm, cancel and
// detail lookup. It holds no state across calls; every operation is one read
// (except placement) and one write against the repository.
type OrderService struct {
	repo     domain.OrderRepository
	locker   port.TransitionLocker
	notifier port.NotificationProducer
	tracer   trace.Tracer
}

func NewOrderService(repo domain.OrderRepository, locker port.TransitionLocker, notifier port.NotificationProducer, tracer trace.Tracer) *OrderService {
	return &OrderService{repo: repo, locker: locker, notifier: notifier, tracer: tracer}
}

// PlaceOrder creates a New order under a freshly generated order id and
// persists it. When the generated id collides with an existing row the id is
// regenerated, up to maxIDAttempts times.
func (s *OrderService) PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*OrderResponse, error) {
	ctx, span := s.tracer.Start(ctx, "order.PlaceOrder")
	defer span.End()

	for attempt := 1; attempt <= maxIDAttempts; attempt++ {
		order, err := req.toDomain(domain.GenerateOrderID())
		if err != nil {
			orderOps.WithLabelValues("place", "invalid").Inc()
			return nil, err
		}

		err = s.repo.Create(ctx, order)
		if errors.Is(err, domain.ErrDuplicateOrderID) {
			logger.Ctx(ctx).Warn().
				Str("order_id", order.OrderID).
				Int("attempt", attempt).
				Msg("order id collision, regenerating")
			continue
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to persist order")
			orderOps.WithLabelValues("place", "error").Inc()
			return nil, errors.Wrap(err, "place order")
		}

		span.SetAttributes(attribute.String("order.id", order.OrderID))
		orderOps.WithLabelValues("place", "ok").Inc()
		s.notify(ctx, func() error { return s.notifier.OrderPlaced(ctx, order) })
		return toOrderResponse(order), nil
	}

	orderOps.WithLabelValues("place", "error").Inc()
	return nil, errors.Wrapf(domain.ErrDuplicateOrderID, "gave up after %d attempts", maxIDAttempts)
}

// ConfirmOrder moves the order identified by its storage id to Confirmed.
func (s *OrderService) ConfirmOrder(ctx context.Context, id string) (*OrderResponse, error) {
	return s.transition(ctx, "order.ConfirmOrder", id, domain.StatusConfirmed)
}

// CancelOrder moves the order identified by its storage id to Cancelled.
func (s *OrderService) CancelOrder(ctx context.Context, id string) (*OrderResponse, error) {
	return s.transition(ctx, "order.CancelOrder", id, domain.StatusCancelled)
}

func (s *OrderService) transition(ctx context.Context, spanName, id string, target domain.Status) (*OrderResponse, error) {
	ctx, span := s.tracer.Start(ctx, spanName, trace.WithAttributes(attribute.String("order.storage_id", id)))
	defer span.End()

	action := "confirm"
	if target == domain.StatusCancelled {
		action = "cancel"
	}

	// The lock covers the whole read-modify-write so concurrent transitions
	// on the same order cannot race to a last-write-wins overwrite.
	unlock, err := s.locker.Lock(ctx, id)
	if err != nil {
		orderOps.WithLabelValues(action, "error").Inc()
		return nil, errors.Wrap(err, "acquire transition lock")
	}
	defer unlock()

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		orderOps.WithLabelValues(action, "error").Inc()
		return nil, err
	}

	switch target {
	case domain.StatusConfirmed:
		err = order.Confirm()
	case domain.StatusCancelled:
		err = order.Cancel()
	default:
		err = domain.ErrInvalidTransition
	}
	if err != nil {
		span.SetAttributes(attribute.String("order.status", string(order.Status)))
		orderOps.WithLabelValues(action, "rejected").Inc()
		return nil, err
	}

	if err := s.repo.Save(ctx, order); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to save transition")
		orderOps.WithLabelValues(action, "error").Inc()
		return nil, errors.Wrapf(err, "%s order %s", action, id)
	}

	orderOps.WithLabelValues(action, "ok").Inc()
	s.notify(ctx, func() error { return s.notifier.OrderStatusChanged(ctx, order) })
	return toOrderResponse(order), nil
}

// GetOrderDetails looks an order up by its business-facing order id.
func (s *OrderService) GetOrderDetails(ctx context.Context, orderID string) (*OrderResponse, error) {
	ctx, span := s.tracer.Start(ctx, "order.GetOrderDetails", trace.WithAttributes(attribute.String("order.id", orderID)))
	defer span.End()

	order, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

func (s *OrderService) notify(ctx context.Context, publish func() error) {
	if err := publish(); err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("failed to publish order notification")
	}
}
