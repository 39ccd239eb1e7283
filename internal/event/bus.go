package event

import (
	"context"
	"fmt"

	"TokenLedger/internal/ledger"
)

// Handler observes a notification inside the emitting operation's
// transaction. Returning an error aborts the whole operation: the engine
// rolls back every mutation already applied, the handler's included.
type Handler func(ctx context.Context, tx *ledger.Txn, n Notification) error

// Bus delivers notifications synchronously, in subscription order, within
// the same transaction boundary as the operation that emitted them. There
// is no deferral and no queue — atomicity is delegated to the enclosing
// Txn, which is exactly what lets the swap settlement engine observe
// transfers without the transfer engine knowing it exists.
//
// Not thread-safe. Subscribe at wiring time, publish from the core only.
type Bus struct {
	handlers []Handler
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for all notifications.
func (b *Bus) Subscribe(h Handler) {
	b.handlers = append(b.handlers, h)
}

// Publish delivers n to every handler, stopping at the first error.
func (b *Bus) Publish(ctx context.Context, tx *ledger.Txn, n Notification) error {
	for _, h := range b.handlers {
		if err := h(ctx, tx, n); err != nil {
			return fmt.Errorf("%s notification: %w", n.Kind(), err)
		}
	}
	return nil
}
