package audit

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitStampsAndAppends(t *testing.T) {
	store := NewInMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pub := NewPublisher(store, logger)

	err := pub.Emit(context.Background(), Event{
		Action:     ActionCustomerEnrolled,
		CustomerID: 5,
		Subject:    "NZ-South/2024-03-01",
	})
	require.NoError(t, err)

	events, err := pub.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)

	assert.NotEqual(t, uuid.Nil, events[0].ID)
	assert.False(t, events[0].Timestamp.IsZero())
	assert.Equal(t, ActionCustomerEnrolled, events[0].Action)
}

func TestListPreservesAppendOrder(t *testing.T) {
	store := NewInMemoryStore()
	pub := NewPublisher(store, nil)

	for _, subject := range []string{"first", "second", "third"} {
		require.NoError(t, pub.Emit(context.Background(), Event{
			Action:  ActionCustomerRegistered,
			Subject: subject,
		}))
	}

	events, err := pub.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "first", events[0].Subject)
	assert.Equal(t, "third", events[2].Subject)
}
