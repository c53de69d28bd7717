package producer

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-clocker/internal/events"
	"go-clocker/internal/messaging/kafka"
	kafkaMock "go-clocker/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	written []kafkago.Message
	failFor map[string]error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if err := w.failFor[string(m.Key)]; err != nil {
			return err
		}
		w.written = append(w.written, m)
	}
	return nil
}

func outboxEvent(id, aggregateID string) kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            id,
		RequestID:     "req-" + id,
		AggregateType: "attendance",
		AggregateID:   aggregateID,
		EventType:     events.AttendanceRecordedEventType,
		Topic:         events.AttendanceRecordedTopic,
		Payload:       []byte(`{}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("sends and marks each event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}

		repo.EXPECT().ListPending(ctx, 10).Return([]kafka.OutboxEvent{
			outboxEvent("o1", "employee-1"),
			outboxEvent("o2", "employee-2"),
		}, nil)
		repo.EXPECT().MarkSent(ctx, "o1").Return(nil)
		repo.EXPECT().MarkSent(ctx, "o2").Return(nil)

		assert.NoError(t, processPendingEvents(ctx, repo, writer, zap.NewNop(), 10))
		if assert.Len(t, writer.written, 2) {
			msg := writer.written[0]
			assert.Equal(t, events.AttendanceRecordedTopic, msg.Topic)
			assert.Equal(t, "employee-1", string(msg.Key))
			assert.Equal(t, kafkago.Header{Key: "request_id", Value: []byte("req-o1")}, msg.Headers[2])
		}
	})

	t.Run("failed publish is marked for retry and the batch continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failFor: map[string]error{"employee-1": errors.New("broker down")}}

		repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{
			outboxEvent("o1", "employee-1"),
			outboxEvent("o2", "employee-2"),
		}, nil)
		repo.EXPECT().MarkFailed(ctx, "o1", "broker down").Return(nil)
		repo.EXPECT().MarkSent(ctx, "o2").Return(nil)

		assert.NoError(t, processPendingEvents(ctx, repo, writer, zap.NewNop(), 50))
		assert.Len(t, writer.written, 1)
	})

	t.Run("list failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().ListPending(ctx, 50).Return(nil, errors.New("db down"))

		assert.EqualError(t, processPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop(), 50), "db down")
	})
}

func TestToMessage_WithoutRequestID(t *testing.T) {
	e := outboxEvent("o1", "employee-1")
	e.RequestID = ""
	assert.Len(t, toMessage(e).Headers, 2)
}

func TestPruneSentEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	before := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().DeleteSentBefore(gomock.Any(), before).Return(int64(3), nil)
	pruneSentEvents(context.Background(), repo, zap.NewNop(), before)
}

func TestWorkerConfig_Defaults(t *testing.T) {
	cfg := WorkerConfig{}.withDefaults()
	assert.Equal(t, 3*time.Second, cfg.PollInterval)
	assert.Equal(t, 50, cfg.BatchSize)
	assert.Zero(t, cfg.Retention)
}
