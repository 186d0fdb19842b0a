package ports

import "context"

// Flash categories recognized by the views. "errors" is always a list;
// "message" may carry one or several entries per cycle.
const (
	FlashMessage = "message"
	FlashErrors  = "errors"
)

// FlashStore is the per-session, consume-once message queue surfaced on the
// next rendered page. State is partitioned by session id; two sessions never
// interfere.
type FlashStore interface {
	// Push appends messages to the category's queue for the session.
	Push(ctx context.Context, sessionID, category string, messages ...string) error
	// Drain returns and clears all queued entries for the category in one
	// atomic step. A missing session or empty queue yields an empty slice,
	// never an error.
	Drain(ctx context.Context, sessionID, category string) ([]string, error)
}
