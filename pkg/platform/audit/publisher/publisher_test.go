package publisher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idverify/pkg/domain"
	audit "idverify/pkg/platform/audit"
	"idverify/pkg/platform/audit/store/memory"
)

func TestPublisher_SyncMode(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	userID := domain.UserID("user-123")
	event := audit.Event{
		UserID:   userID,
		Action:   string(audit.EventDocumentProcessed),
		Decision: "valid",
	}

	err := pub.Emit(context.Background(), event)
	require.NoError(t, err)

	events, err := pub.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, string(audit.EventDocumentProcessed), events[0].Action)
	assert.Equal(t, audit.CategoryCompliance, events[0].Category)
}

func TestPublisher_AsyncMode(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(10))

	userID := domain.UserID("user-456")
	event := audit.Event{
		UserID: userID,
		Action: string(audit.EventLivenessVerified),
	}

	err := pub.Emit(context.Background(), event)
	require.NoError(t, err)

	// Close flushes the buffer before returning.
	pub.Close()

	events, err := pub.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, string(audit.EventLivenessVerified), events[0].Action)
}

func TestPublisher_CategoryDefaulting(t *testing.T) {
	tests := []struct {
		action string
		want   audit.EventCategory
	}{
		{string(audit.EventDocumentProcessed), audit.CategoryCompliance},
		{string(audit.EventVerificationCompleted), audit.CategoryCompliance},
		{string(audit.EventFacesCompared), audit.CategorySecurity},
		{string(audit.EventLivenessSessionStarted), audit.CategoryOperations},
		{"some_unmapped_action", audit.CategoryOperations},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			store := memory.NewInMemoryStore()
			pub := NewPublisher(store)
			defer pub.Close()

			userID := domain.UserID("user-cat")
			err := pub.Emit(context.Background(), audit.Event{
				UserID:    userID,
				Action:    tt.action,
				Timestamp: time.Now(),
			})
			require.NoError(t, err)

			events, err := pub.List(context.Background(), userID)
			require.NoError(t, err)
			require.Len(t, events, 1)
			assert.Equal(t, tt.want, events[0].Category)
		})
	}
}
