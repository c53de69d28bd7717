package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-clocker/internal/attendance"
	"go-clocker/internal/bootstrap"
	bootstrapMock "go-clocker/internal/bootstrap/mock"
	"go-clocker/internal/events"
	"go-clocker/internal/messaging/kafka/consumer"
	"go-clocker/internal/report"

	"github.com/go-redis/redismock/v9"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// fakeReader hands out queued messages and cancels the run once drained.
type fakeReader struct {
	messages  []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.messages) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func recordedEvent(late bool) events.AttendanceRecordedEvent {
	return events.AttendanceRecordedEvent{
		EventType:  events.AttendanceRecordedEventType,
		EventID:    "event-1",
		CompanyID:  "company-1",
		EmployeeID: "employee-1",
		Action:     "clock-in",
		Workplace:  "office",
		Late:       late,
		// 23:30 UTC is already the next day in Jakarta
		OccurredAt: time.Date(2024, 3, 4, 23, 30, 0, 0, time.UTC),
	}
}

func jakarta(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Skip("tzdata not available")
	}
	return loc
}

func TestAttendanceRecordedHandler_Handle(t *testing.T) {
	ctx := context.Background()
	loc := jakarta(t)
	statusKey := attendance.GetStatusKey("company-1", "employee-1")
	todayKey := report.GetTodayKey("company-1", "2024-03-05")

	t.Run("on time clock-in only drops caches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		audit := bootstrapMock.NewMockAuditLogger(ctrl)
		rdb, rmock := redismock.NewClientMock()
		h := consumer.NewAttendanceRecordedHandler(rdb, audit, loc, zap.NewNop())

		rmock.ExpectDel(statusKey, todayKey).SetVal(2)

		assert.NoError(t, h.Handle(ctx, recordedEvent(false)))
		assert.NoError(t, rmock.ExpectationsWereMet())
	})

	t.Run("late clock-in is audited", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		audit := bootstrapMock.NewMockAuditLogger(ctrl)
		rdb, rmock := redismock.NewClientMock()
		h := consumer.NewAttendanceRecordedHandler(rdb, audit, loc, zap.NewNop())

		rmock.ExpectDel(statusKey, todayKey).SetVal(1)
		audit.EXPECT().Log(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry bootstrap.AuditLog) {
			assert.Equal(t, consumer.AuditActionLateClockIn, entry.Action)
			assert.Equal(t, "employee-1", entry.Meta["employee_id"])
			assert.Equal(t, "2024-03-05T06:30:00+07:00", entry.Meta["occurred_at"])
		})

		assert.NoError(t, h.Handle(ctx, recordedEvent(true)))
	})

	t.Run("redis failure is returned", func(t *testing.T) {
		rdb, rmock := redismock.NewClientMock()
		h := consumer.NewAttendanceRecordedHandler(rdb, nil, loc, zap.NewNop())

		rmock.ExpectDel(statusKey, todayKey).SetErr(errors.New("redis down"))

		assert.EqualError(t, h.Handle(ctx, recordedEvent(true)), "redis down")
	})
}

var fastRetry = consumer.RetryConfig{Initial: time.Millisecond, Max: 4 * time.Millisecond}

func TestConsumeAttendanceRecorded(t *testing.T) {
	rdb, rmock := redismock.NewClientMock()
	h := consumer.NewAttendanceRecordedHandler(rdb, nil, time.UTC, zap.NewNop())

	good, _ := json.Marshal(recordedEvent(false))
	flaky, _ := json.Marshal(events.AttendanceRecordedEvent{
		EventID:    "event-2",
		CompanyID:  "company-1",
		EmployeeID: "employee-2",
		OccurredAt: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC),
	})
	flakyKeys := []string{
		attendance.GetStatusKey("company-1", "employee-2"),
		report.GetTodayKey("company-1", "2024-03-04"),
	}

	rmock.ExpectDel(
		attendance.GetStatusKey("company-1", "employee-1"),
		report.GetTodayKey("company-1", "2024-03-04"),
	).SetVal(2)
	rmock.ExpectDel(flakyKeys...).SetErr(errors.New("redis down"))
	rmock.ExpectDel(flakyKeys...).SetErr(errors.New("redis down"))
	rmock.ExpectDel(flakyKeys...).SetVal(2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reader := &fakeReader{
		messages: []kafkago.Message{
			{Offset: 1, Value: []byte("not json")},
			{Offset: 2, Value: good},
			{Offset: 3, Value: flaky},
		},
		cancel: cancel,
	}

	consumer.ConsumeAttendanceRecorded(ctx, reader, h, fastRetry, zap.NewNop())

	// the flaky message is retried in place and committed once it succeeds
	if assert.Len(t, reader.committed, 3) {
		assert.Equal(t, int64(1), reader.committed[0].Offset)
		assert.Equal(t, int64(2), reader.committed[1].Offset)
		assert.Equal(t, int64(3), reader.committed[2].Offset)
	}
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestConsumeAttendanceRecorded_FailingMessageBlocksLaterOffsets(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	h := consumer.NewAttendanceRecordedHandler(rdb, nil, time.UTC, zap.NewNop())

	failing, _ := json.Marshal(recordedEvent(false))
	later, _ := json.Marshal(recordedEvent(true))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	reader := &fakeReader{
		messages: []kafkago.Message{
			{Offset: 7, Value: failing},
			{Offset: 8, Value: later},
		},
		cancel: cancel,
	}

	// no Del is expected, so every attempt fails until the context ends
	consumer.ConsumeAttendanceRecorded(ctx, reader, h, fastRetry, zap.NewNop())

	assert.Empty(t, reader.committed)
	assert.Len(t, reader.messages, 1, "nothing after the failing message is fetched")
}
