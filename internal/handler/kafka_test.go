package handler

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	mocks "github.com/SergeyBogomolovv/shop-service/internal/handler/mocks"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	msgs      []kafka.Message
	committed []kafka.Message
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.msgs) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

type fakeWriter struct {
	err     error
	written []kafka.Message
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

const validNotification = `{"partnerCode":"MOMO","orderId":"order-1","requestId":"req-1","amount":90000,` +
	`"resultCode":0,"signature":"ab12"}`

func TestKafkaHandler_Consume(t *testing.T) {
	testCases := []struct {
		name         string
		value        string
		dlqErr       error
		mockBehavior func(p *mocks.MockPaymentProcessor)
		wantDLQ      int
		wantCommit   int
	}{
		{
			name:  "processed",
			value: validNotification,
			mockBehavior: func(p *mocks.MockPaymentProcessor) {
				p.EXPECT().HandleNotification(mock.Anything, mock.MatchedBy(func(n entities.PaymentNotification) bool {
					return n.OrderID == "order-1" && n.Amount == 90000
				})).Return(nil).Once()
			},
			wantCommit: 1,
		},
		{
			name:  "rejected goes to dlq",
			value: validNotification,
			mockBehavior: func(p *mocks.MockPaymentProcessor) {
				p.EXPECT().HandleNotification(mock.Anything, mock.Anything).Return(entities.ErrInvalidSignature).Once()
			},
			wantDLQ:    1,
			wantCommit: 1,
		},
		{
			name:         "malformed json",
			value:        `{"orderId":`,
			mockBehavior: func(*mocks.MockPaymentProcessor) {},
			wantDLQ:      1,
			wantCommit:   1,
		},
		{
			name:         "missing signature",
			value:        `{"partnerCode":"MOMO","orderId":"order-1","requestId":"req-1","amount":1}`,
			mockBehavior: func(*mocks.MockPaymentProcessor) {},
			wantDLQ:      1,
			wantCommit:   1,
		},
		{
			name:   "dlq unavailable leaves offset",
			value:  validNotification,
			dlqErr: fs.ErrClosed,
			mockBehavior: func(p *mocks.MockPaymentProcessor) {
				p.EXPECT().HandleNotification(mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			processor := mocks.NewMockPaymentProcessor(t)
			tc.mockBehavior(processor)

			reader := &fakeReader{msgs: []kafka.Message{{Topic: "payments", Offset: 7, Key: []byte("order-1"), Value: []byte(tc.value)}}}
			dlq := &fakeWriter{err: tc.dlqErr}
			h := newKafkaHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), reader, dlq, processor)

			h.Consume(context.Background())

			assert.Len(t, dlq.written, tc.wantDLQ)
			assert.Len(t, reader.committed, tc.wantCommit)
			if tc.wantDLQ > 0 {
				require.NotEmpty(t, dlq.written)
				assert.Equal(t, "payments-dlq", dlq.written[0].Topic)
				assert.Equal(t, []byte("order-1"), dlq.written[0].Key)
				assert.Equal(t, tc.value, string(dlq.written[0].Value))
			}
		})
	}
}

func TestKafkaHandler_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := newKafkaHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), &cancelledReader{}, &fakeWriter{}, mocks.NewMockPaymentProcessor(t))
	h.Consume(ctx)
}

type cancelledReader struct{ fakeReader }

func (cancelledReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	return kafka.Message{}, ctx.Err()
}
