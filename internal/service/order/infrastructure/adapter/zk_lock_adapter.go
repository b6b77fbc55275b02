package adapter

import (
	"context"

	"frankies/internal/pkg/logger"
	"frankies/internal/pkg/zklock"
)

// ZkTransitionLocker serializes status transitions per order through a
// ZooKeeper lock.
type ZkTransitionLocker struct {
	mgr *zklock.Manager
}

func NewZkTransitionLocker(mgr *zklock.Manager) *ZkTransitionLocker {
	return &ZkTransitionLocker{mgr: mgr}
}

func (l *ZkTransitionLocker) Lock(ctx context.Context, orderID string) (func(), error) {
	lock, err := l.mgr.Acquire(ctx, "order-"+orderID)
	if err != nil {
		return nil, err
	}
	return func() {
		if err := lock.Release(); err != nil {
			logger.Ctx(ctx).Error().Err(err).Str("order_id", orderID).Msg("failed to release transition lock")
		}
	}, nil
}

// NoopTransitionLocker is used when no ZooKeeper ensemble is configured;
// transitions then race with last-write-wins semantics at the storage layer.
type NoopTransitionLocker struct{}

func (NoopTransitionLocker) Lock(ctx context.Context, orderID string) (func(), error) {
	return func() {}, nil
}
