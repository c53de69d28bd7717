package attendance_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"go-clocker/internal/attendance"
	attendanceerrors "go-clocker/internal/attendance/errors"
	attendanceMock "go-clocker/internal/attendance/mock"
	"go-clocker/internal/config"
	"go-clocker/internal/employee"
	employeeerrors "go-clocker/internal/employee/errors"
	employeeMock "go-clocker/internal/employee/mock"
	"go-clocker/internal/events"
	"go-clocker/internal/messaging/kafka"
	kafkaMock "go-clocker/internal/messaging/kafka/mock"
	"go-clocker/internal/timesheet"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const testQRSecret = "qr-secret"

type serviceDeps struct {
	service    attendance.Service
	sql        sqlmock.Sqlmock
	repo       *attendanceMock.MockRepository
	employees  *employeeMock.MockRepository
	outbox     *kafkaMock.MockOutboxRepository
	face       *attendanceMock.MockFaceClient
	redis      redismock.ClientMock
	companyID  string
	employeeID string
}

// monday 2024-03-04 in UTC
func at(day, hh, mm int) time.Time {
	return time.Date(2024, 3, day, hh, mm, 0, 0, time.UTC)
}

func setupService(t *testing.T, now time.Time, withRedis bool) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	deps := &serviceDeps{
		sql:        sqlMock,
		repo:       attendanceMock.NewMockRepository(ctrl),
		employees:  employeeMock.NewMockRepository(ctrl),
		outbox:     kafkaMock.NewMockOutboxRepository(ctrl),
		face:       attendanceMock.NewMockFaceClient(ctrl),
		companyID:  uuid.New().String(),
		employeeID: uuid.New().String(),
	}

	var rdb *redis.Client
	if withRedis {
		rdb, deps.redis = redismock.NewClientMock()
	}

	deps.service = attendance.NewService(db, deps.repo, deps.employees, deps.outbox, rdb, deps.face, attendance.Options{
		Policy:            config.DefaultAttendance(),
		QRSecret:          testQRSecret,
		QRTokenTTL:        30 * time.Second,
		FaceMinConfidence: 0.8,
		Now:               func() time.Time { return now },
	})
	return deps
}

func (d *serviceDeps) activeEmployee() *employee.Employee {
	return &employee.Employee{
		ID:               uuid.MustParse(d.employeeID),
		CompanyID:        uuid.MustParse(d.companyID),
		FullName:         "Ana Putri",
		DefaultWorkplace: string(timesheet.WorkplaceHome),
		IsActive:         true,
	}
}

func (d *serviceDeps) event(action timesheet.Action, ts time.Time) attendance.Event {
	return attendance.Event{
		ID:         uuid.New(),
		CompanyID:  uuid.MustParse(d.companyID),
		EmployeeID: uuid.MustParse(d.employeeID),
		Action:     string(action),
		OccurredAt: ts,
		Workplace:  string(timesheet.WorkplaceOffice),
		Source:     attendance.SourceManual,
	}
}

// expectRecordStart covers the lookups every recording makes before it
// decides which action to store.
func (d *serviceDeps) expectRecordStart(last *attendance.Event) {
	d.employees.EXPECT().FindByIDAndCompany(gomock.Any(), d.companyID, d.employeeID).Return(d.activeEmployee(), nil)
	d.sql.ExpectBegin()
	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.repo.EXPECT().LockEmployee(gomock.Any(), d.employeeID).Return(nil)
	if last == nil {
		d.repo.EXPECT().LastByEmployee(gomock.Any(), d.companyID, d.employeeID).Return(nil, gorm.ErrRecordNotFound)
	} else {
		d.repo.EXPECT().LastByEmployee(gomock.Any(), d.companyID, d.employeeID).Return(last, nil)
	}
}

func (d *serviceDeps) expectOutbox(t *testing.T, check func(events.AttendanceRecordedEvent)) {
	d.outbox.EXPECT().WithTx(gomock.Any()).Return(d.outbox)
	d.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
		assert.Equal(t, events.AttendanceRecordedTopic, e.Topic)
		assert.Equal(t, d.employeeID, e.AggregateID)
		assert.Equal(t, kafka.OutboxStatusPending, e.Status)
		var payload events.AttendanceRecordedEvent
		assert.NoError(t, json.Unmarshal(e.Payload, &payload))
		check(payload)
		return nil
	})
}

func TestService_ClockIn(t *testing.T) {
	ctx := context.Background()

	t.Run("records clock-in at the employee's default workplace", func(t *testing.T) {
		now := at(4, 9, 0)
		deps := setupService(t, now, true)
		deps.expectRecordStart(nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *attendance.Event) error {
			assert.Equal(t, string(timesheet.ActionClockIn), e.Action)
			assert.Equal(t, string(timesheet.WorkplaceHome), e.Workplace)
			assert.Equal(t, attendance.SourceManual, e.Source)
			assert.True(t, now.Equal(e.OccurredAt))
			return nil
		})
		deps.expectOutbox(t, func(p events.AttendanceRecordedEvent) {
			assert.Equal(t, "clock-in", p.Action)
			assert.False(t, p.Late)
		})
		deps.sql.ExpectCommit()
		deps.redis.ExpectDel(attendance.GetStatusKey(deps.companyID, deps.employeeID)).SetVal(1)

		resp, err := deps.service.ClockIn(ctx, deps.companyID, deps.employeeID, attendance.ClockRequest{})
		assert.NoError(t, err)
		assert.Equal(t, "clock-in", resp.Action)
		assert.Equal(t, "Ana Putri", resp.EmployeeName)
		assert.NoError(t, deps.sql.ExpectationsWereMet())
		assert.NoError(t, deps.redis.ExpectationsWereMet())
	})

	t.Run("first clock-in after the threshold is late", func(t *testing.T) {
		now := at(4, 10, 30)
		deps := setupService(t, now, false)
		deps.expectRecordStart(nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.repo.EXPECT().
			FindByEmployeeBetween(gomock.Any(), deps.companyID, deps.employeeID, at(4, 0, 0), now).
			Return([]attendance.Event{}, nil)
		deps.expectOutbox(t, func(p events.AttendanceRecordedEvent) {
			assert.True(t, p.Late)
		})
		deps.sql.ExpectCommit()

		_, err := deps.service.ClockIn(ctx, deps.companyID, deps.employeeID, attendance.ClockRequest{Workplace: "office"})
		assert.NoError(t, err)
	})

	t.Run("second clock-in of the day is never late", func(t *testing.T) {
		now := at(4, 13, 0)
		deps := setupService(t, now, false)
		out := deps.event(timesheet.ActionClockOut, at(4, 12, 0))
		deps.expectRecordStart(&out)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.repo.EXPECT().
			FindByEmployeeBetween(gomock.Any(), deps.companyID, deps.employeeID, at(4, 0, 0), now).
			Return([]attendance.Event{deps.event(timesheet.ActionClockIn, at(4, 8, 0)), out}, nil)
		deps.expectOutbox(t, func(p events.AttendanceRecordedEvent) {
			assert.False(t, p.Late)
		})
		deps.sql.ExpectCommit()

		_, err := deps.service.ClockIn(ctx, deps.companyID, deps.employeeID, attendance.ClockRequest{})
		assert.NoError(t, err)
	})

	t.Run("already clocked in", func(t *testing.T) {
		deps := setupService(t, at(4, 9, 0), false)
		in := deps.event(timesheet.ActionClockIn, at(4, 8, 0))
		deps.expectRecordStart(&in)
		deps.sql.ExpectRollback()

		_, err := deps.service.ClockIn(ctx, deps.companyID, deps.employeeID, attendance.ClockRequest{})
		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyClockedIn)
		assert.NoError(t, deps.sql.ExpectationsWereMet())
	})

	t.Run("inactive employee", func(t *testing.T) {
		deps := setupService(t, at(4, 9, 0), false)
		empl := deps.activeEmployee()
		empl.IsActive = false
		deps.employees.EXPECT().FindByIDAndCompany(gomock.Any(), deps.companyID, deps.employeeID).Return(empl, nil)

		_, err := deps.service.ClockIn(ctx, deps.companyID, deps.employeeID, attendance.ClockRequest{})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeInactive)
	})

	t.Run("account without employee", func(t *testing.T) {
		deps := setupService(t, at(4, 9, 0), false)
		_, err := deps.service.ClockIn(ctx, deps.companyID, "", attendance.ClockRequest{})
		assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeRequired)
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		deps := setupService(t, at(4, 9, 0), false)
		deps.expectRecordStart(nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
		deps.sql.ExpectRollback()

		_, err := deps.service.ClockIn(ctx, deps.companyID, deps.employeeID, attendance.ClockRequest{})
		assert.Error(t, err)
		assert.NoError(t, deps.sql.ExpectationsWereMet())
	})
}

func TestService_ClockOut(t *testing.T) {
	ctx := context.Background()

	t.Run("closes the session at its workplace", func(t *testing.T) {
		deps := setupService(t, at(4, 17, 0), false)
		in := deps.event(timesheet.ActionClockIn, at(4, 8, 0))
		deps.expectRecordStart(&in)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *attendance.Event) error {
			assert.Equal(t, string(timesheet.ActionClockOut), e.Action)
			assert.Equal(t, string(timesheet.WorkplaceOffice), e.Workplace)
			return nil
		})
		deps.expectOutbox(t, func(p events.AttendanceRecordedEvent) {
			assert.Equal(t, "clock-out", p.Action)
		})
		deps.sql.ExpectCommit()

		resp, err := deps.service.ClockOut(ctx, deps.companyID, deps.employeeID, attendance.ClockRequest{})
		assert.NoError(t, err)
		assert.Equal(t, "clock-out", resp.Action)
	})

	t.Run("not clocked in", func(t *testing.T) {
		deps := setupService(t, at(4, 17, 0), false)
		deps.expectRecordStart(nil)
		deps.sql.ExpectRollback()

		_, err := deps.service.ClockOut(ctx, deps.companyID, deps.employeeID, attendance.ClockRequest{})
		assert.ErrorIs(t, err, attendanceerrors.ErrNotClockedIn)
	})
}

func TestService_QR(t *testing.T) {
	ctx := context.Background()
	now := at(4, 17, 0)

	t.Run("toggle code clocks out a clocked-in employee", func(t *testing.T) {
		deps := setupService(t, now, true)
		issued, err := deps.service.IssueQRToken(ctx, deps.companyID, attendance.IssueQRTokenRequest{Workplace: "office"})
		assert.NoError(t, err)
		assert.Equal(t, "2024-03-04T17:00:30Z", issued.ExpiresAt)

		deps.redis.Regexp().ExpectSetNX("attendance:qr:used:.*:"+deps.employeeID, "1", 30*time.Second).SetVal(true)
		in := deps.event(timesheet.ActionClockIn, at(4, 8, 0))
		deps.expectRecordStart(&in)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *attendance.Event) error {
			assert.Equal(t, string(timesheet.ActionClockOut), e.Action)
			assert.Equal(t, attendance.SourceQR, e.Source)
			return nil
		})
		deps.expectOutbox(t, func(events.AttendanceRecordedEvent) {})
		deps.sql.ExpectCommit()
		deps.redis.ExpectDel(attendance.GetStatusKey(deps.companyID, deps.employeeID)).SetVal(1)

		resp, err := deps.service.ClockByQR(ctx, deps.companyID, deps.employeeID, attendance.QRClockRequest{Token: issued.Token})
		assert.NoError(t, err)
		assert.Equal(t, "clock-out", resp.Action)
		assert.NoError(t, deps.redis.ExpectationsWereMet())
	})

	t.Run("code already used by this employee", func(t *testing.T) {
		deps := setupService(t, now, true)
		issued, _ := deps.service.IssueQRToken(ctx, deps.companyID, attendance.IssueQRTokenRequest{Workplace: "office"})
		deps.redis.Regexp().ExpectSetNX("attendance:qr:used:.*:"+deps.employeeID, "1", 30*time.Second).SetVal(false)

		_, err := deps.service.ClockByQR(ctx, deps.companyID, deps.employeeID, attendance.QRClockRequest{Token: issued.Token})
		assert.ErrorIs(t, err, attendanceerrors.ErrQRTokenUsed)
	})

	t.Run("code from another company", func(t *testing.T) {
		deps := setupService(t, now, false)
		issued, _ := deps.service.IssueQRToken(ctx, uuid.New().String(), attendance.IssueQRTokenRequest{Workplace: "home"})

		_, err := deps.service.ClockByQR(ctx, deps.companyID, deps.employeeID, attendance.QRClockRequest{Token: issued.Token})
		assert.ErrorIs(t, err, attendanceerrors.ErrQRCompanyMismatch)
	})

	t.Run("expired code", func(t *testing.T) {
		issuer := setupService(t, now.Add(-time.Minute), false)
		issued, _ := issuer.service.IssueQRToken(ctx, issuer.companyID, attendance.IssueQRTokenRequest{Workplace: "office"})

		deps := setupService(t, now, false)
		_, err := deps.service.ClockByQR(ctx, issuer.companyID, deps.employeeID, attendance.QRClockRequest{Token: issued.Token})
		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidQRToken)
	})

	t.Run("clock-in code while clocked in", func(t *testing.T) {
		deps := setupService(t, now, false)
		issued, _ := deps.service.IssueQRToken(ctx, deps.companyID, attendance.IssueQRTokenRequest{Workplace: "office", Action: "clock-in"})
		in := deps.event(timesheet.ActionClockIn, at(4, 8, 0))
		deps.expectRecordStart(&in)
		deps.sql.ExpectRollback()

		_, err := deps.service.ClockByQR(ctx, deps.companyID, deps.employeeID, attendance.QRClockRequest{Token: issued.Token})
		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyClockedIn)
	})
}

func TestService_ClockByFace(t *testing.T) {
	ctx := context.Background()
	now := at(4, 9, 0)

	t.Run("recognised employee is toggled in", func(t *testing.T) {
		deps := setupService(t, now, false)
		deps.face.EXPECT().Identify(gomock.Any(), gomock.Any(), "face.jpg").
			Return(attendance.FaceMatch{Matched: true, EmployeeID: deps.employeeID, Confidence: 0.93}, nil)
		deps.expectRecordStart(nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *attendance.Event) error {
			assert.Equal(t, attendance.SourceFace, e.Source)
			assert.Equal(t, string(timesheet.ActionClockIn), e.Action)
			return nil
		})
		deps.expectOutbox(t, func(events.AttendanceRecordedEvent) {})
		deps.sql.ExpectCommit()

		resp, err := deps.service.ClockByFace(ctx, deps.companyID, strings.NewReader("jpeg"), "face.jpg")
		assert.NoError(t, err)
		assert.Equal(t, 0.93, *resp.Confidence)
	})

	t.Run("low confidence", func(t *testing.T) {
		deps := setupService(t, now, false)
		deps.face.EXPECT().Identify(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(attendance.FaceMatch{Matched: true, EmployeeID: deps.employeeID, Confidence: 0.79}, nil)

		_, err := deps.service.ClockByFace(ctx, deps.companyID, strings.NewReader("jpeg"), "face.jpg")
		assert.ErrorIs(t, err, attendanceerrors.ErrFaceNotRecognized)
	})

	t.Run("employee of another company", func(t *testing.T) {
		deps := setupService(t, now, false)
		deps.face.EXPECT().Identify(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(attendance.FaceMatch{Matched: true, EmployeeID: deps.employeeID, Confidence: 0.99}, nil)
		deps.employees.EXPECT().FindByIDAndCompany(gomock.Any(), deps.companyID, deps.employeeID).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.ClockByFace(ctx, deps.companyID, strings.NewReader("jpeg"), "face.jpg")
		assert.ErrorIs(t, err, attendanceerrors.ErrFaceNotRecognized)
	})

	t.Run("face service down", func(t *testing.T) {
		deps := setupService(t, now, false)
		deps.face.EXPECT().Identify(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(attendance.FaceMatch{}, errors.New("connection refused"))

		_, err := deps.service.ClockByFace(ctx, deps.companyID, strings.NewReader("jpeg"), "face.jpg")
		assert.ErrorIs(t, err, attendanceerrors.ErrFaceServiceUnavailable)
	})
}

func TestService_Status(t *testing.T) {
	ctx := context.Background()
	now := at(4, 10, 30)

	t.Run("cache miss loads and caches today's events", func(t *testing.T) {
		deps := setupService(t, now, true)
		key := attendance.GetStatusKey(deps.companyID, deps.employeeID)
		deps.redis.ExpectGet(key).RedisNil()

		in := deps.event(timesheet.ActionClockIn, at(4, 10, 15))
		deps.repo.EXPECT().LastByEmployee(gomock.Any(), deps.companyID, deps.employeeID).Return(&in, nil)
		deps.repo.EXPECT().
			FindByEmployeeBetween(gomock.Any(), deps.companyID, deps.employeeID, at(4, 0, 0), at(5, 0, 0)).
			Return([]attendance.Event{in}, nil)

		deps.redis.CustomMatch(func(expected, actual []interface{}) error {
			if actual[0] != "set" || actual[1] != key {
				return errors.New("unexpected cache write")
			}
			return nil
		}).ExpectSet(key, "", 0).SetVal("OK")

		resp, err := deps.service.Status(ctx, deps.companyID, deps.employeeID)
		assert.NoError(t, err)
		assert.Equal(t, string(timesheet.StatusClockedIn), resp.Status)
		assert.Equal(t, "00:15:00", resp.Elapsed)
		assert.Equal(t, int64(900), resp.TodayWorkedSeconds)
		assert.True(t, resp.Late)
		assert.NotNil(t, resp.ActiveSession)
		assert.NoError(t, deps.redis.ExpectationsWereMet())
	})

	t.Run("cache hit skips the database", func(t *testing.T) {
		deps := setupService(t, now, true)
		key := attendance.GetStatusKey(deps.companyID, deps.employeeID)
		cached := `{"day":"2024-03-04","events":[` +
			`{"action":"clock-in","at":"2024-03-04T08:00:00Z","workplace":"home"},` +
			`{"action":"clock-out","at":"2024-03-04T10:00:00Z","workplace":"home"}]}`
		deps.redis.ExpectGet(key).SetVal(cached)

		resp, err := deps.service.Status(ctx, deps.companyID, deps.employeeID)
		assert.NoError(t, err)
		assert.Equal(t, string(timesheet.StatusClockedOut), resp.Status)
		assert.Equal(t, "00:00:00", resp.Elapsed)
		assert.Equal(t, "02:00:00", resp.TodayWorked)
		assert.Equal(t, "home", resp.Workplace)
		assert.False(t, resp.Late)
		assert.Nil(t, resp.ActiveSession)
	})

	t.Run("session left open overnight keeps the employee clocked in", func(t *testing.T) {
		deps := setupService(t, now, false)
		in := deps.event(timesheet.ActionClockIn, at(3, 22, 0))
		deps.repo.EXPECT().LastByEmployee(gomock.Any(), deps.companyID, deps.employeeID).Return(&in, nil)
		deps.repo.EXPECT().FindByEmployeeBetween(gomock.Any(), deps.companyID, deps.employeeID, gomock.Any(), gomock.Any()).
			Return([]attendance.Event{}, nil)

		resp, err := deps.service.Status(ctx, deps.companyID, deps.employeeID)
		assert.NoError(t, err)
		assert.Equal(t, string(timesheet.StatusClockedIn), resp.Status)
		assert.Equal(t, "12:30:00", resp.Elapsed)
		// the open session belongs to the day it started
		assert.Equal(t, int64(0), resp.TodayWorkedSeconds)
	})
}

func TestService_Timesheet(t *testing.T) {
	ctx := context.Background()
	deps := setupService(t, at(8, 12, 0), false)

	deps.employees.EXPECT().FindByIDAndCompany(gomock.Any(), deps.companyID, deps.employeeID).Return(deps.activeEmployee(), nil)
	deps.repo.EXPECT().
		FindByEmployeeBetween(gomock.Any(), deps.companyID, deps.employeeID, at(4, 0, 0), at(7, 0, 0)).
		Return([]attendance.Event{
			deps.event(timesheet.ActionClockIn, at(4, 9, 0)),
			deps.event(timesheet.ActionClockOut, at(4, 17, 0)),
			deps.event(timesheet.ActionClockIn, at(5, 10, 5)),
			deps.event(timesheet.ActionClockOut, at(5, 12, 0)),
			// crosses midnight, counted on the 5th
			deps.event(timesheet.ActionClockIn, at(5, 23, 0)),
			deps.event(timesheet.ActionClockOut, at(6, 1, 0)),
		}, nil)

	resp, err := deps.service.Timesheet(ctx, deps.companyID, deps.employeeID, "2024-03-04", "2024-03-05")
	assert.NoError(t, err)
	assert.Len(t, resp.Days, 2)
	assert.Equal(t, int64(8*3600), resp.Days[0].TotalDurationSeconds)
	assert.False(t, resp.Days[0].Late)
	assert.Equal(t, int64(115*60+2*3600), resp.Days[1].TotalDurationSeconds)
	assert.True(t, resp.Days[1].Late)
	assert.Equal(t, 2, resp.WorkingDays)
	assert.Equal(t, "11:55:00", resp.TotalDuration)
	assert.Len(t, resp.Weeks, 1)
	assert.Equal(t, "2024-03-04", resp.Weeks[0].WeekStart)
	assert.Equal(t, 1, resp.Weeks[0].LateDays)
}

func TestService_Timesheet_InvalidRange(t *testing.T) {
	deps := setupService(t, at(8, 12, 0), false)
	_, err := deps.service.Timesheet(context.Background(), deps.companyID, deps.employeeID, "2024-03-05", "2024-03-04")
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidRange)

	_, err = deps.service.Timesheet(context.Background(), deps.companyID, deps.employeeID, "04/03/2024", "")
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDate)
}

func TestService_GetAll(t *testing.T) {
	ctx := context.Background()
	deps := setupService(t, at(8, 12, 0), false)

	deps.repo.EXPECT().FindPage(gomock.Any(), deps.companyID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, f attendance.ListFilter) ([]attendance.Event, int64, error) {
			assert.Equal(t, 1, f.Page)
			assert.Equal(t, 20, f.Limit)
			assert.Equal(t, deps.employeeID, f.EmployeeID)
			assert.True(t, at(4, 0, 0).Equal(*f.From))
			assert.True(t, at(5, 0, 0).Equal(*f.To))
			return []attendance.Event{deps.event(timesheet.ActionClockIn, at(4, 9, 0))}, 41, nil
		})

	resp, total, err := deps.service.GetAll(ctx, deps.companyID, attendance.ListQuery{
		EmployeeID: deps.employeeID,
		From:       "2024-03-04",
		To:         "2024-03-04",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(41), total)
	assert.Len(t, resp, 1)
	assert.Equal(t, "2024-03-04T09:00:00Z", resp[0].OccurredAt)

	_, _, err = deps.service.GetAll(ctx, deps.companyID, attendance.ListQuery{EmployeeID: "bad"})
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
}

func TestParseRange(t *testing.T) {
	now := at(20, 15, 0)

	from, to, err := attendance.ParseRange("", "", time.UTC, now)
	assert.NoError(t, err)
	assert.Equal(t, at(1, 0, 0), from)
	assert.Equal(t, at(20, 0, 0), to)

	_, _, err = attendance.ParseRange("2023-01-01", "2024-03-01", time.UTC, now)
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidRange)

	from, to, err = attendance.ParseRange("2024-03-04", "2024-03-04", time.UTC, now)
	assert.NoError(t, err)
	assert.Equal(t, from, to)
}
