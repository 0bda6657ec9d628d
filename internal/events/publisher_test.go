package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyWriter struct {
	failures int
	calls    int
	written  []kafka.Message
}

func (w *flakyWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.calls++
	if w.calls <= w.failures {
		return errors.New("leader not available")
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *flakyWriter) Close() error { return nil }

func testPublisher(w MessageWriter) *Publisher {
	p := newPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), w)
	p.retry.InitialDelay = time.Millisecond
	return p
}

func TestPublisher_Publish(t *testing.T) {
	event := entities.OrderEvent{
		Type:    entities.EventOrderStatusChanged,
		OrderID: "order-1",
		UserID:  "user-1",
		From:    entities.StatusCreated,
		To:      entities.StatusPaid,
		Total:   "90.00",
	}

	testCases := []struct {
		name      string
		failures  int
		wantErr   bool
		wantCalls int
	}{
		{name: "first try", failures: 0, wantCalls: 1},
		{name: "recovers after retries", failures: 2, wantCalls: 3},
		{name: "gives up", failures: 10, wantErr: true, wantCalls: 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := &flakyWriter{failures: tc.failures}

			err := testPublisher(w).Publish(context.Background(), event)

			assert.Equal(t, tc.wantCalls, w.calls)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Empty(t, w.written)
				return
			}
			require.NoError(t, err)
			require.Len(t, w.written, 1)

			msg := w.written[0]
			assert.Equal(t, []byte("order-1"), msg.Key)
			assert.Equal(t, []kafka.Header{{Key: "type", Value: []byte("order.status_changed")}}, msg.Headers)

			var got entities.OrderEvent
			require.NoError(t, json.Unmarshal(msg.Value, &got))
			assert.Equal(t, event, got)
		})
	}
}

func TestPublisher_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &flakyWriter{failures: 10}
	p := testPublisher(w)
	p.retry.InitialDelay = time.Hour
	err := p.Publish(ctx, entities.OrderEvent{Type: entities.EventOrderCreated, OrderID: "order-1"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, w.calls)
}
