package port

import "context"

// TransitionLocker serializes status transitions per order, so two
// concurrent confirm/cancel calls cannot interleave their read-modify-write
// cycles. The returned function releases the lock.
type TransitionLocker interface {
	Lock(ctx context.Context, orderID string) (func(), error)
}
