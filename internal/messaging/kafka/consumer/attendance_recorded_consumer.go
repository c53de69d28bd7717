package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-clocker/internal/attendance"
	"go-clocker/internal/bootstrap"
	"go-clocker/internal/events"
	"go-clocker/internal/report"
	"go-clocker/internal/timesheet"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const AuditActionLateClockIn = "attendance.late_clock_in"

// AttendanceRecordedHandler reacts to a recorded clock event: it drops the
// cached status of the employee and the cached today report of the company,
// and audits late clock-ins.
type AttendanceRecordedHandler struct {
	rdb    *redis.Client
	audit  bootstrap.AuditLogger
	loc    *time.Location
	logger *zap.Logger
}

func NewAttendanceRecordedHandler(
	rdb *redis.Client,
	audit bootstrap.AuditLogger,
	loc *time.Location,
	logger ...*zap.Logger,
) *AttendanceRecordedHandler {
	l := zap.L().Named("kafka.consumer.attendance_recorded")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.consumer.attendance_recorded")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceRecordedHandler{rdb: rdb, audit: audit, loc: loc, logger: l}
}

func (h *AttendanceRecordedHandler) Handle(ctx context.Context, event events.AttendanceRecordedEvent) error {
	day := event.OccurredAt.In(h.loc).Format(timesheet.DateLayout)
	keys := []string{
		attendance.GetStatusKey(event.CompanyID, event.EmployeeID),
		report.GetTodayKey(event.CompanyID, day),
	}
	if h.rdb != nil {
		if err := h.rdb.Del(ctx, keys...).Err(); err != nil {
			return err
		}
	}

	if event.Late && h.audit != nil {
		h.audit.Log(ctx, bootstrap.AuditLog{
			Action:  AuditActionLateClockIn,
			Message: "employee clocked in late",
			Meta: map[string]any{
				"company_id":  event.CompanyID,
				"employee_id": event.EmployeeID,
				"event_id":    event.EventID,
				"occurred_at": event.OccurredAt.In(h.loc).Format(time.RFC3339),
				"workplace":   event.Workplace,
			},
		})
	}
	return nil
}

// RetryConfig bounds the in-place retries of a message whose handling
// failed. The wait doubles after every attempt up to Max.
type RetryConfig struct {
	Initial time.Duration
	Max     time.Duration
}

func (c RetryConfig) withDefaults() RetryConfig {
	if c.Initial <= 0 {
		c.Initial = 500 * time.Millisecond
	}
	if c.Max < c.Initial {
		c.Max = 30 * time.Second
	}
	return c
}

// ConsumeAttendanceRecorded runs until ctx is cancelled. Undecodable messages
// are committed and skipped. A message whose handling failed is retried in
// place and nothing after it is fetched until it succeeds, since committing a
// later offset would also commit it.
func ConsumeAttendanceRecorded(
	ctx context.Context,
	reader MessageReader,
	handler *AttendanceRecordedHandler,
	retry RetryConfig,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendance_recorded")
	log.Info("attendance recorded consumer started")
	retry = retry.withDefaults()

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance recorded consumer stopped")
				return
			}
			log.Error("fetch attendance recorded message failed", zap.Error(err))
			continue
		}

		var event events.AttendanceRecordedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode attendance recorded event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if !handleWithRetry(ctx, handler, event, retry, log) {
			log.Info("attendance recorded consumer stopped",
				zap.String("uncommitted_event_id", event.EventID),
				zap.Int64("offset", msg.Offset),
			)
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendance recorded message failed", zap.Error(err))
			continue
		}

		log.Debug("attendance recorded event handled",
			zap.String("event_id", event.EventID),
			zap.String("employee_id", event.EmployeeID),
			zap.String("action", event.Action),
		)
	}
}

// handleWithRetry reports false only when ctx ended before the event could
// be handled.
func handleWithRetry(
	ctx context.Context,
	handler *AttendanceRecordedHandler,
	event events.AttendanceRecordedEvent,
	retry RetryConfig,
	log *zap.Logger,
) bool {
	wait := retry.Initial
	for attempt := 1; ; attempt++ {
		err := handler.Handle(ctx, event)
		if err == nil {
			return true
		}
		log.Error("handle attendance recorded event failed",
			zap.String("event_id", event.EventID),
			zap.String("company_id", event.CompanyID),
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", wait),
			zap.Error(err),
		)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}

		wait *= 2
		if wait > retry.Max {
			wait = retry.Max
		}
	}
}
