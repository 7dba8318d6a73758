package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Store is the append-only event sink.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListAll(ctx context.Context) ([]Event, error)
}

// Publisher captures structured audit events. It is append-only and uses the
// storage layer for persistence so tests can swap sinks easily.
type Publisher struct {
	store  Store
	logger *slog.Logger
}

func NewPublisher(store Store, logger *slog.Logger) *Publisher {
	return &Publisher{store: store, logger: logger}
}

// Emit stamps the event with an id and timestamp when absent and appends it.
func (p *Publisher) Emit(ctx context.Context, base Event) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	if base.Timestamp.IsZero() {
		base.Timestamp = time.Now()
	}

	if p.logger != nil {
		p.logger.DebugContext(ctx, "audit event",
			"action", string(base.Action),
			"customer_id", int(base.CustomerID),
			"subject", base.Subject,
		)
	}
	return p.store.Append(ctx, base)
}

// List returns every captured event in append order.
func (p *Publisher) List(ctx context.Context) ([]Event, error) {
	return p.store.ListAll(ctx)
}
