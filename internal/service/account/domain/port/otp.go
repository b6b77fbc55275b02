package port

import (
	"context"
	"time"
)

// OTPStore keeps one pending one-time code per email with an expiry window.
// The store, not the caller, owns expiry: Get never returns an expired code.
type OTPStore interface {
	Put(ctx context.Context, email, code string, ttl time.Duration) error
	// Get returns the pending code, or "" when none is stored or it expired.
	Get(ctx context.Context, email string) (string, error)
	Clear(ctx context.Context, email string) error
}

// OTPSender dispatches a generated code through the external messaging
// collaborator.
type OTPSender interface {
	Send(ctx context.Context, email, code string) error
}
