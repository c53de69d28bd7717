package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"time"

	attendanceerrors "go-clocker/internal/attendance/errors"
	"go-clocker/internal/config"
	"go-clocker/internal/employee"
	employeeerrors "go-clocker/internal/employee/errors"
	"go-clocker/internal/events"
	"go-clocker/internal/messaging/kafka"
	"go-clocker/internal/shared/contextutil"
	"go-clocker/internal/timesheet"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	StatusKeyPrefix = "attendance:status:"
	qrUsedKeyPrefix = "attendance:qr:used:"

	defaultPageSize = 20
	maxPageSize     = 100
)

func GetStatusKey(companyID, employeeID string) string {
	return StatusKeyPrefix + companyID + ":" + employeeID
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, companyID, employeeID string, req ClockRequest) (EventResponse, error)
	ClockOut(ctx context.Context, companyID, employeeID string, req ClockRequest) (EventResponse, error)
	IssueQRToken(ctx context.Context, companyID string, req IssueQRTokenRequest) (QRTokenResponse, error)
	// ClockByQR records the event encoded by a scanned workplace code; codes
	// without an action toggle the employee's state.
	ClockByQR(ctx context.Context, companyID, employeeID string, req QRClockRequest) (EventResponse, error)
	ClockByFace(ctx context.Context, companyID string, image io.Reader, filename string) (EventResponse, error)
	Status(ctx context.Context, companyID, employeeID string) (StatusResponse, error)
	Timesheet(ctx context.Context, companyID, employeeID, from, to string) (TimesheetResponse, error)
	GetAll(ctx context.Context, companyID string, q ListQuery) ([]EventResponse, int64, error)
}

type Options struct {
	Policy            config.AttendanceConfig
	QRSecret          string
	QRTokenTTL        time.Duration
	FaceMinConfidence float64
	// Now is overridable in tests.
	Now func() time.Time
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	outbox       kafka.OutboxRepository
	rdb          *redis.Client
	face         FaceClient
	sf           *singleflight.Group
	opts         Options
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
	face FaceClient,
	opts Options,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if opts.Policy.Location == nil {
		opts.Policy = config.DefaultAttendance()
	}
	if opts.QRTokenTTL <= 0 {
		opts.QRTokenTTL = 30 * time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		outbox:       outbox,
		rdb:          rdb,
		face:         face,
		sf:           &singleflight.Group{},
		opts:         opts,
		logger:       l,
	}
}

type recordInput struct {
	companyID  string
	employeeID string
	// empty action toggles
	action    timesheet.Action
	workplace string
	source    string
	latitude  *float64
	longitude *float64
	notes     *string
}

func (s *service) ClockIn(ctx context.Context, companyID, employeeID string, req ClockRequest) (EventResponse, error) {
	ev, err := s.record(ctx, recordInput{
		companyID:  companyID,
		employeeID: employeeID,
		action:     timesheet.ActionClockIn,
		workplace:  req.Workplace,
		source:     SourceManual,
		latitude:   req.Latitude,
		longitude:  req.Longitude,
		notes:      req.Notes,
	})
	if err != nil {
		return EventResponse{}, err
	}
	return s.mapToResponse(ev), nil
}

func (s *service) ClockOut(ctx context.Context, companyID, employeeID string, req ClockRequest) (EventResponse, error) {
	ev, err := s.record(ctx, recordInput{
		companyID:  companyID,
		employeeID: employeeID,
		action:     timesheet.ActionClockOut,
		workplace:  req.Workplace,
		source:     SourceManual,
		latitude:   req.Latitude,
		longitude:  req.Longitude,
		notes:      req.Notes,
	})
	if err != nil {
		return EventResponse{}, err
	}
	return s.mapToResponse(ev), nil
}

func (s *service) IssueQRToken(ctx context.Context, companyID string, req IssueQRTokenRequest) (QRTokenResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return QRTokenResponse{}, employeeerrors.ErrInvalidCompanyID
	}
	workplace := timesheet.Workplace(req.Workplace)
	if !workplace.Valid() {
		return QRTokenResponse{}, attendanceerrors.ErrInvalidWorkplace
	}
	if req.Action != "" && !timesheet.Action(req.Action).Valid() {
		return QRTokenResponse{}, attendanceerrors.ErrInvalidAction
	}
	if s.opts.QRSecret == "" {
		return QRTokenResponse{}, errQRSecretMissing
	}

	now := s.opts.Now()
	claims := newQRClaims(companyID, workplace, req.Action, now, s.opts.QRTokenTTL)
	token, err := signQRToken(s.opts.QRSecret, claims)
	if err != nil {
		s.logger.Error("sign qr token failed", zap.Error(err))
		return QRTokenResponse{}, err
	}

	s.logger.Debug("qr token issued",
		zap.String("company_id", companyID),
		zap.String("workplace", req.Workplace),
		zap.String("jti", claims.ID),
	)
	return QRTokenResponse{
		Token:     token,
		Workplace: req.Workplace,
		Action:    req.Action,
		ExpiresAt: claims.ExpiresAt.Time.In(s.opts.Policy.Location).Format(time.RFC3339),
	}, nil
}

func (s *service) ClockByQR(ctx context.Context, companyID, employeeID string, req QRClockRequest) (EventResponse, error) {
	if s.opts.QRSecret == "" {
		return EventResponse{}, errQRSecretMissing
	}
	now := s.opts.Now()
	claims, err := parseQRToken(s.opts.QRSecret, req.Token, now)
	if err != nil {
		s.logger.Info("qr token rejected", zap.String("employee_id", employeeID))
		return EventResponse{}, err
	}
	if claims.CompanyID != companyID {
		s.logger.Warn("qr token from another company",
			zap.String("company_id", companyID),
			zap.String("token_company_id", claims.CompanyID),
		)
		return EventResponse{}, attendanceerrors.ErrQRCompanyMismatch
	}

	usedKey := qrUsedKeyPrefix + claims.ID + ":" + employeeID
	if s.rdb != nil {
		fresh, err := s.rdb.SetNX(ctx, usedKey, "1", claims.remaining(now)).Result()
		if err != nil {
			s.logger.Warn("qr replay check failed", zap.Error(err))
		} else if !fresh {
			return EventResponse{}, attendanceerrors.ErrQRTokenUsed
		}
	}

	ev, err := s.record(ctx, recordInput{
		companyID:  companyID,
		employeeID: employeeID,
		action:     timesheet.Action(claims.Action),
		workplace:  claims.Workplace,
		source:     SourceQR,
		latitude:   req.Latitude,
		longitude:  req.Longitude,
	})
	if err != nil {
		if s.rdb != nil {
			s.rdb.Del(ctx, usedKey)
		}
		return EventResponse{}, err
	}
	return s.mapToResponse(ev), nil
}

func (s *service) ClockByFace(ctx context.Context, companyID string, image io.Reader, filename string) (EventResponse, error) {
	if image == nil {
		return EventResponse{}, attendanceerrors.ErrFaceImageRequired
	}
	if s.face == nil {
		return EventResponse{}, attendanceerrors.ErrFaceServiceUnavailable
	}

	match, err := s.face.Identify(ctx, image, filename)
	if err != nil {
		s.logger.Error("face identify failed", zap.String("company_id", companyID), zap.Error(err))
		return EventResponse{}, attendanceerrors.ErrFaceServiceUnavailable
	}
	if !match.Matched || match.Confidence < s.opts.FaceMinConfidence {
		s.logger.Info("face not recognized",
			zap.String("company_id", companyID),
			zap.Bool("matched", match.Matched),
			zap.Float64("confidence", match.Confidence),
		)
		return EventResponse{}, attendanceerrors.ErrFaceNotRecognized
	}
	if _, err := uuid.Parse(match.EmployeeID); err != nil {
		return EventResponse{}, attendanceerrors.ErrFaceNotRecognized
	}

	ev, err := s.record(ctx, recordInput{
		companyID:  companyID,
		employeeID: match.EmployeeID,
		source:     SourceFace,
	})
	if err != nil {
		// an employee of another company must look like no match at all
		if errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
			return EventResponse{}, attendanceerrors.ErrFaceNotRecognized
		}
		return EventResponse{}, err
	}

	resp := s.mapToResponse(ev)
	resp.Confidence = &match.Confidence
	return resp, nil
}

func (s *service) record(ctx context.Context, in recordInput) (Event, error) {
	rid := contextutil.GetRequestID(ctx)

	companyUUID, err := uuid.Parse(in.companyID)
	if err != nil {
		return Event{}, employeeerrors.ErrInvalidCompanyID
	}
	if in.employeeID == "" {
		return Event{}, attendanceerrors.ErrEmployeeRequired
	}
	employeeUUID, err := uuid.Parse(in.employeeID)
	if err != nil {
		return Event{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.employeeRepo.FindByIDAndCompany(ctx, in.companyID, in.employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Event{}, employeeerrors.ErrEmployeeNotFound
		}
		return Event{}, err
	}
	if !empl.IsActive {
		return Event{}, employeeerrors.ErrEmployeeInactive
	}

	workplace, err := s.resolveWorkplace(in.workplace, empl.DefaultWorkplace)
	if err != nil {
		return Event{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("record attendance begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return Event{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.LockEmployee(ctx, in.employeeID); err != nil {
		s.logger.Error("record attendance lock failed", zap.Error(err))
		return Event{}, err
	}

	last, err := qtx.LastByEmployee(ctx, in.companyID, in.employeeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("record attendance load last event failed", zap.Error(err))
		return Event{}, err
	}
	clockedIn := last != nil && last.Action == string(timesheet.ActionClockIn)

	action := in.action
	switch {
	case action == "":
		action = timesheet.ActionClockIn
		if clockedIn {
			action = timesheet.ActionClockOut
		}
	case action == timesheet.ActionClockIn && clockedIn:
		return Event{}, attendanceerrors.ErrAlreadyClockedIn
	case action == timesheet.ActionClockOut && !clockedIn:
		return Event{}, attendanceerrors.ErrNotClockedIn
	}

	// a clock-out without an explicit workplace closes the session where it opened
	if action == timesheet.ActionClockOut && in.workplace == "" && last != nil {
		workplace = timesheet.Workplace(last.Workplace)
	}

	occurredAt := s.opts.Now().UTC()
	if last != nil && occurredAt.Before(last.OccurredAt) {
		occurredAt = last.OccurredAt
	}

	ev := Event{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		EmployeeID: employeeUUID,
		Action:     string(action),
		OccurredAt: occurredAt,
		Workplace:  string(workplace),
		Source:     in.source,
		Latitude:   in.latitude,
		Longitude:  in.longitude,
		Notes:      in.notes,
	}
	if err := qtx.Create(ctx, &ev); err != nil {
		s.logger.Error("record attendance persist failed", zap.Error(err))
		return Event{}, err
	}

	late, err := s.isLateArrival(ctx, qtx, ev)
	if err != nil {
		s.logger.Error("record attendance late check failed", zap.Error(err))
		return Event{}, err
	}

	if err := s.enqueueRecorded(ctx, tx, ev, late); err != nil {
		s.logger.Error("record attendance outbox failed", zap.String("request_id", rid), zap.Error(err))
		return Event{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("record attendance commit failed", zap.String("request_id", rid), zap.Error(err))
		return Event{}, err
	}

	s.invalidateStatus(ctx, in.companyID, in.employeeID)
	s.logger.Info("attendance recorded",
		zap.String("request_id", rid),
		zap.String("event_id", ev.ID.String()),
		zap.String("employee_id", in.employeeID),
		zap.String("action", ev.Action),
		zap.String("source", ev.Source),
		zap.Bool("late", late),
	)

	ev.Employee = &EmployeeRef{ID: empl.ID, FullName: empl.FullName}
	return ev, nil
}

// isLateArrival reports whether ev is the first clock-in of its day and at
// or after the late threshold.
func (s *service) isLateArrival(ctx context.Context, qtx Repository, ev Event) (bool, error) {
	if ev.Action != string(timesheet.ActionClockIn) {
		return false, nil
	}
	loc := s.opts.Policy.Location
	if !s.opts.Policy.LateThreshold.ReachedBy(ev.OccurredAt.In(loc)) {
		return false, nil
	}

	dayStart := timesheet.StartOfDay(ev.OccurredAt, loc)
	earlier, err := qtx.FindByEmployeeBetween(ctx, ev.CompanyID.String(), ev.EmployeeID.String(), dayStart, ev.OccurredAt)
	if err != nil {
		return false, err
	}
	for _, e := range earlier {
		if e.Action == string(timesheet.ActionClockIn) {
			return false, nil
		}
	}
	return true, nil
}

func (s *service) enqueueRecorded(ctx context.Context, tx *sql.Tx, ev Event, late bool) error {
	payload, err := json.Marshal(events.AttendanceRecordedEvent{
		EventType:  events.AttendanceRecordedEventType,
		EventID:    ev.ID.String(),
		CompanyID:  ev.CompanyID.String(),
		EmployeeID: ev.EmployeeID.String(),
		Action:     ev.Action,
		Workplace:  ev.Workplace,
		Source:     ev.Source,
		Late:       late,
		OccurredAt: ev.OccurredAt,
	})
	if err != nil {
		return err
	}

	outboxEvent := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "attendance",
		AggregateID:   ev.EmployeeID.String(),
		EventType:     events.AttendanceRecordedEventType,
		Topic:         events.AttendanceRecordedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := kafka.ValidateOutboxEvent(outboxEvent); err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, outboxEvent)
}

func (s *service) resolveWorkplace(requested, employeeDefault string) (timesheet.Workplace, error) {
	if requested != "" {
		w := timesheet.Workplace(requested)
		if !w.Valid() {
			return "", attendanceerrors.ErrInvalidWorkplace
		}
		return w, nil
	}
	if w := timesheet.Workplace(employeeDefault); w.Valid() {
		return w, nil
	}
	return s.opts.Policy.DefaultWorkplace, nil
}

func (s *service) Status(ctx context.Context, companyID, employeeID string) (StatusResponse, error) {
	if employeeID == "" {
		return StatusResponse{}, attendanceerrors.ErrEmployeeRequired
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return StatusResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	now := s.opts.Now()
	snap, err := s.loadSnapshot(ctx, companyID, employeeID, now)
	if err != nil {
		s.logger.Error("load attendance status failed", zap.String("employee_id", employeeID), zap.Error(err))
		return StatusResponse{}, err
	}
	return s.buildStatus(employeeID, snap, now), nil
}

// statusSnapshot is what the status cache holds: today's events plus the
// last earlier event when it is still needed for pairing.
type statusSnapshot struct {
	Day    string          `json:"day"`
	Events []snapshotEvent `json:"events"`
}

type snapshotEvent struct {
	Action    string    `json:"action"`
	At        time.Time `json:"at"`
	Workplace string    `json:"workplace"`
}

func (s *service) loadSnapshot(ctx context.Context, companyID, employeeID string, now time.Time) (statusSnapshot, error) {
	loc := s.opts.Policy.Location
	dayStart := timesheet.StartOfDay(now, loc)
	day := dayStart.Format(timesheet.DateLayout)
	cacheKey := GetStatusKey(companyID, employeeID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var snap statusSnapshot
			if json.Unmarshal([]byte(cached), &snap) == nil && snap.Day == day {
				return snap, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey+":"+day, func() (interface{}, error) {
		last, err := s.repo.LastByEmployee(ctx, companyID, employeeID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		todays, err := s.repo.FindByEmployeeBetween(ctx, companyID, employeeID, dayStart, dayStart.AddDate(0, 0, 1))
		if err != nil {
			return nil, err
		}

		snap := statusSnapshot{Day: day, Events: make([]snapshotEvent, 0, len(todays)+1)}
		if last != nil && last.OccurredAt.Before(dayStart) {
			snap.Events = append(snap.Events, toSnapshotEvent(*last))
		}
		for _, e := range todays {
			snap.Events = append(snap.Events, toSnapshotEvent(e))
		}

		if s.rdb != nil {
			ttl := dayStart.AddDate(0, 0, 1).Sub(now)
			if ttl < time.Minute {
				ttl = time.Minute
			}
			if data, err := json.Marshal(snap); err == nil {
				s.rdb.Set(ctx, cacheKey, data, ttl)
			}
		}
		return snap, nil
	})
	if err != nil {
		return statusSnapshot{}, err
	}
	return v.(statusSnapshot), nil
}

func toSnapshotEvent(e Event) snapshotEvent {
	return snapshotEvent{Action: e.Action, At: e.OccurredAt, Workplace: e.Workplace}
}

func (s *service) buildStatus(employeeID string, snap statusSnapshot, now time.Time) StatusResponse {
	loc := s.opts.Policy.Location
	evs := make([]timesheet.Event, len(snap.Events))
	for i, e := range snap.Events {
		evs[i] = timesheet.Event{
			UserID:    employeeID,
			Timestamp: e.At,
			Action:    timesheet.Action(e.Action),
			Workplace: timesheet.Workplace(e.Workplace),
		}
	}

	resp := StatusResponse{
		EmployeeID: employeeID,
		Status:     string(timesheet.CurrentStatus(evs, now)),
		Elapsed:    timesheet.Elapsed(0),
	}
	if sorted := timesheet.SortEvents(evs); len(sorted) > 0 {
		resp.Workplace = string(sorted[len(sorted)-1].Workplace)
	}
	if active, ok := timesheet.ActiveSession(evs, now); ok {
		sr := s.mapSession(active)
		resp.ActiveSession = &sr
		resp.Elapsed = timesheet.Elapsed(active.Duration)
	}

	dayStart := timesheet.StartOfDay(now, loc)
	sessions := timesheet.GroupByDay(timesheet.PairSessions(evs, now), loc)[dayStart.Format(timesheet.DateLayout)]
	today := timesheet.SummarizeDay(dayStart, sessions, s.opts.Policy.LateThreshold)
	resp.TodayWorkedSeconds = int64(today.TotalDuration / time.Second)
	resp.TodayWorked = timesheet.Elapsed(today.TotalDuration)
	resp.Late = today.Late
	return resp
}

func (s *service) invalidateStatus(ctx context.Context, companyID, employeeID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetStatusKey(companyID, employeeID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate status cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func (s *service) Timesheet(ctx context.Context, companyID, employeeID, from, to string) (TimesheetResponse, error) {
	if employeeID == "" {
		return TimesheetResponse{}, attendanceerrors.ErrEmployeeRequired
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return TimesheetResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	now := s.opts.Now()
	loc := s.opts.Policy.Location
	fromDay, toDay, err := ParseRange(from, to, loc, now)
	if err != nil {
		return TimesheetResponse{}, err
	}

	if _, err := s.employeeRepo.FindByIDAndCompany(ctx, companyID, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TimesheetResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return TimesheetResponse{}, err
	}

	windowEnd := EventWindowEnd(toDay)
	rows, err := s.repo.FindByEmployeeBetween(ctx, companyID, employeeID, fromDay, windowEnd)
	if err == nil {
		rows, err = CloseOpenSessions(ctx, s.repo, companyID, rows, windowEnd, now)
	}
	if err != nil {
		s.logger.Error("timesheet load events failed", zap.String("employee_id", employeeID), zap.Error(err))
		return TimesheetResponse{}, err
	}

	sessions := timesheet.PairSessions(ToTimesheetEvents(rows), now)
	days := timesheet.SummarizeDays(sessions, fromDay, toDay, loc, s.opts.Policy.LateThreshold)
	summary := timesheet.SummarizeRange(days)

	resp := TimesheetResponse{
		EmployeeID:           employeeID,
		From:                 fromDay.Format(timesheet.DateLayout),
		To:                   toDay.Format(timesheet.DateLayout),
		TotalDurationSeconds: summary.TotalDurationSeconds(),
		TotalDuration:        timesheet.Elapsed(summary.TotalDuration),
		WorkingDays:          summary.WorkingDays,
		Days:                 make([]DayResponse, len(days)),
	}
	for i, d := range days {
		resp.Days[i] = s.mapDay(d)
	}
	for _, w := range timesheet.WeeklyBreakdown(days) {
		resp.Weeks = append(resp.Weeks, WeekResponse{
			WeekStart:            w.WeekStart.Format(timesheet.DateLayout),
			TotalDurationSeconds: int64(w.TotalDuration / time.Second),
			WorkingDays:          w.WorkingDays,
			PresentDays:          w.PresentDays,
			LateDays:             w.LateDays,
		})
	}
	return resp, nil
}

func (s *service) GetAll(ctx context.Context, companyID string, q ListQuery) ([]EventResponse, int64, error) {
	filter := ListFilter{EmployeeID: q.EmployeeID, Page: q.Page, Limit: q.PageSize}
	if filter.EmployeeID != "" {
		if _, err := uuid.Parse(filter.EmployeeID); err != nil {
			return nil, 0, employeeerrors.ErrInvalidEmployeeID
		}
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	loc := s.opts.Policy.Location
	if q.From != "" {
		d, err := time.ParseInLocation(timesheet.DateLayout, q.From, loc)
		if err != nil {
			return nil, 0, attendanceerrors.ErrInvalidDate
		}
		filter.From = &d
	}
	if q.To != "" {
		d, err := time.ParseInLocation(timesheet.DateLayout, q.To, loc)
		if err != nil {
			return nil, 0, attendanceerrors.ErrInvalidDate
		}
		end := d.AddDate(0, 0, 1)
		filter.To = &end
	}

	rows, total, err := s.repo.FindPage(ctx, companyID, filter)
	if err != nil {
		s.logger.Error("list attendance events failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, 0, err
	}

	res := make([]EventResponse, len(rows))
	for i, r := range rows {
		res[i] = s.mapToResponse(r)
	}
	return res, total, nil
}

func (s *service) mapToResponse(e Event) EventResponse {
	resp := EventResponse{
		ID:         e.ID.String(),
		CompanyID:  e.CompanyID.String(),
		EmployeeID: e.EmployeeID.String(),
		Action:     e.Action,
		OccurredAt: e.OccurredAt.In(s.opts.Policy.Location).Format(time.RFC3339),
		Workplace:  e.Workplace,
		Source:     e.Source,
		Latitude:   e.Latitude,
		Longitude:  e.Longitude,
		Notes:      e.Notes,
	}
	if e.Employee != nil {
		resp.EmployeeName = e.Employee.FullName
	}
	return resp
}

func (s *service) mapSession(ss timesheet.Session) SessionResponse {
	loc := s.opts.Policy.Location
	return SessionResponse{
		Start:           ss.Start.In(loc).Format(time.RFC3339),
		End:             ss.End.In(loc).Format(time.RFC3339),
		DurationSeconds: ss.DurationSeconds(),
		Active:          ss.Active,
	}
}

func (s *service) mapDay(d timesheet.DaySummary) DayResponse {
	day := DayResponse{
		Date:                 d.Date.Format(timesheet.DateLayout),
		Status:               string(d.Status),
		Late:                 d.Late,
		TotalDurationSeconds: int64(d.TotalDuration / time.Second),
		Sessions:             make([]SessionResponse, len(d.Sessions)),
	}
	for i, ss := range d.Sessions {
		day.Sessions[i] = s.mapSession(ss)
	}
	return day
}
