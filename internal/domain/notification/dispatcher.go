// Package notification defines the outbound push delivery port.
package notification

import "context"

// Dispatcher delivers a push message to a destination token.
// Delivery is fire-and-forget from the caller's perspective: failures are
// reported for logging but never retried within the same job run, and no
// state transition depends on the outcome.
type Dispatcher interface {
	Deliver(ctx context.Context, token, title, body string) (delivered bool, err error)
}
