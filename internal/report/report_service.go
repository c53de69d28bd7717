package report

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"go-clocker/internal/attendance"
	"go-clocker/internal/config"
	"go-clocker/internal/employee"
	"go-clocker/internal/leave"
	"go-clocker/internal/timesheet"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	TodayKeyPrefix = "reports:today:"
	todayTTL       = 5 * time.Minute
)

// GetTodayKey is the cache key of the presence report of one company for
// one YYYY-MM-DD day.
func GetTodayKey(companyID, day string) string {
	return TodayKeyPrefix + companyID + ":" + day
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Today(ctx context.Context, companyID string) (TodayResponse, error)
	LateArrivals(ctx context.Context, companyID, from, to string) ([]LateArrivalResponse, error)
	// Absences lists roster weekdays without a session, skipping holidays
	// and days that have not happened yet.
	Absences(ctx context.Context, companyID, from, to string) ([]AbsenceResponse, error)
	ExportAbsences(ctx context.Context, companyID, from, to string) ([]byte, string, error)
}

type service struct {
	attendanceRepo attendance.Repository
	employees      employee.Service
	leaveRepo      leave.Repository
	rdb            *redis.Client
	sf             *singleflight.Group
	policy         config.AttendanceConfig
	now            func() time.Time
	logger         *zap.Logger
}

func NewService(
	attendanceRepo attendance.Repository,
	employees employee.Service,
	leaveRepo leave.Repository,
	rdb *redis.Client,
	policy config.AttendanceConfig,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	if policy.Location == nil {
		policy = config.DefaultAttendance()
	}
	if now == nil {
		now = time.Now
	}
	return &service{
		attendanceRepo: attendanceRepo,
		employees:      employees,
		leaveRepo:      leaveRepo,
		rdb:            rdb,
		sf:             &singleflight.Group{},
		policy:         policy,
		now:            now,
		logger:         l,
	}
}

// leaveDate turns a local calendar day into the date-only value leave rows
// are stored with.
func leaveDate(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}

func rosterIndex(roster []employee.EmployeeOption) ([]string, map[string]employee.EmployeeOption) {
	ids := make([]string, len(roster))
	byID := make(map[string]employee.EmployeeOption, len(roster))
	for i, e := range roster {
		ids[i] = e.ID
		byID[e.ID] = e
	}
	return ids, byID
}

func (s *service) Today(ctx context.Context, companyID string) (TodayResponse, error) {
	now := s.now()
	loc := s.policy.Location
	today := timesheet.StartOfDay(now, loc)
	cacheKey := GetTodayKey(companyID, today.Format(timesheet.DateLayout))

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp TodayResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		roster, err := s.employees.Roster(ctx, companyID)
		if err != nil {
			return nil, err
		}
		rows, err := s.attendanceRepo.FindByCompanyBetween(ctx, companyID, today, today.AddDate(0, 0, 1))
		if err != nil {
			return nil, err
		}
		leaves, err := s.leaveRepo.ApprovedBetween(ctx, companyID, leaveDate(today), leaveDate(today))
		if err != nil {
			return nil, err
		}

		ids, byID := rosterIndex(roster)
		events := attendance.ToTimesheetEvents(rows)
		byUser := timesheet.PartitionByUser(events)
		onLeave := make(map[string]bool, len(leaves))
		for _, l := range leaves {
			onLeave[l.EmployeeID.String()] = true
		}

		present, absent := timesheet.Presence(ids, events, today, loc)
		resp := TodayResponse{
			Date:         today.Format(timesheet.DateLayout),
			Holiday:      s.policy.IsHoliday(today),
			PresentCount: len(present),
			AbsentCount:  len(absent),
			Present:      make([]PersonStatus, len(present)),
			Absent:       make([]PersonStatus, len(absent)),
			GeneratedAt:  now.In(loc).Format(time.RFC3339),
		}
		for i, id := range present {
			e := byID[id]
			resp.Present[i] = PersonStatus{
				EmployeeID:     id,
				EmployeeNumber: e.EmployeeNumber,
				FullName:       e.FullName,
				ClockedIn:      timesheet.CurrentStatus(byUser[id], now) == timesheet.StatusClockedIn,
			}
		}
		for i, id := range absent {
			e := byID[id]
			resp.Absent[i] = PersonStatus{
				EmployeeID:     id,
				EmployeeNumber: e.EmployeeNumber,
				FullName:       e.FullName,
				OnLeave:        onLeave[id],
			}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, todayTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("build today report failed", zap.String("company_id", companyID), zap.Error(err))
		return TodayResponse{}, err
	}

	return v.(TodayResponse), nil
}

func (s *service) LateArrivals(ctx context.Context, companyID, from, to string) ([]LateArrivalResponse, error) {
	now := s.now()
	loc := s.policy.Location
	fromDay, toDay, err := attendance.ParseRange(from, to, loc, now)
	if err != nil {
		return nil, err
	}

	roster, err := s.employees.Roster(ctx, companyID)
	if err != nil {
		return nil, err
	}
	windowEnd := attendance.EventWindowEnd(toDay)
	rows, err := s.attendanceRepo.FindByCompanyBetween(ctx, companyID, fromDay, windowEnd)
	if err == nil {
		rows, err = attendance.CloseOpenSessions(ctx, s.attendanceRepo, companyID, rows, windowEnd, now)
	}
	if err != nil {
		s.logger.Error("late arrivals load events failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, err
	}

	_, byID := rosterIndex(roster)
	late := timesheet.LateArrivals(attendance.ToTimesheetEvents(rows), fromDay, toDay, loc, s.policy.LateThreshold, now)
	resp := make([]LateArrivalResponse, len(late))
	for i, l := range late {
		e := byID[l.UserID]
		resp[i] = LateArrivalResponse{
			EmployeeID:     l.UserID,
			EmployeeNumber: e.EmployeeNumber,
			FullName:       e.FullName,
			Date:           l.Date.Format(timesheet.DateLayout),
			FirstClockIn:   l.FirstClockIn.In(loc).Format(time.RFC3339),
		}
	}
	return resp, nil
}

func (s *service) Absences(ctx context.Context, companyID, from, to string) ([]AbsenceResponse, error) {
	rows, _, _, err := s.absences(ctx, companyID, from, to)
	return rows, err
}

// absences also returns the range actually covered: to is clamped to today,
// and a range lying wholly in the future collapses to its first day.
func (s *service) absences(ctx context.Context, companyID, from, to string) ([]AbsenceResponse, time.Time, time.Time, error) {
	now := s.now()
	loc := s.policy.Location
	fromDay, toDay, err := attendance.ParseRange(from, to, loc, now)
	if err != nil {
		return nil, time.Time{}, time.Time{}, err
	}
	if today := timesheet.StartOfDay(now, loc); toDay.After(today) {
		toDay = today
	}
	if toDay.Before(fromDay) {
		return []AbsenceResponse{}, fromDay, fromDay, nil
	}

	roster, err := s.employees.Roster(ctx, companyID)
	if err != nil {
		return nil, time.Time{}, time.Time{}, err
	}
	windowEnd := attendance.EventWindowEnd(toDay)
	rows, err := s.attendanceRepo.FindByCompanyBetween(ctx, companyID, fromDay, windowEnd)
	if err == nil {
		rows, err = attendance.CloseOpenSessions(ctx, s.attendanceRepo, companyID, rows, windowEnd, now)
	}
	if err != nil {
		s.logger.Error("absences load events failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, time.Time{}, time.Time{}, err
	}
	leaves, err := s.leaveRepo.ApprovedBetween(ctx, companyID, leaveDate(fromDay), leaveDate(toDay))
	if err != nil {
		s.logger.Error("absences load leave failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, time.Time{}, time.Time{}, err
	}

	leavesByEmployee := make(map[string][]leave.Leave)
	for _, l := range leaves {
		id := l.EmployeeID.String()
		leavesByEmployee[id] = append(leavesByEmployee[id], l)
	}

	ids, byID := rosterIndex(roster)
	absences := timesheet.Absences(ids, attendance.ToTimesheetEvents(rows), fromDay, toDay, loc, now)

	resp := make([]AbsenceResponse, 0, len(absences))
	for _, a := range absences {
		if s.policy.IsHoliday(a.Date) {
			continue
		}
		e := byID[a.UserID]
		item := AbsenceResponse{
			EmployeeID:     a.UserID,
			EmployeeNumber: e.EmployeeNumber,
			FullName:       e.FullName,
			Date:           a.Date.Format(timesheet.DateLayout),
		}
		for _, l := range leavesByEmployee[a.UserID] {
			if l.Covers(a.Date) {
				item.OnLeave = true
				item.LeaveType = l.LeaveType
				break
			}
		}
		resp = append(resp, item)
	}

	sort.SliceStable(resp, func(i, j int) bool {
		if resp[i].Date != resp[j].Date {
			return resp[i].Date < resp[j].Date
		}
		return resp[i].EmployeeNumber < resp[j].EmployeeNumber
	})
	return resp, fromDay, toDay, nil
}

func (s *service) ExportAbsences(ctx context.Context, companyID, from, to string) ([]byte, string, error) {
	rows, fromDay, toDay, err := s.absences(ctx, companyID, from, to)
	if err != nil {
		return nil, "", err
	}

	data, err := buildAbsenceWorkbook(rows)
	if err != nil {
		s.logger.Error("build absence workbook failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, "", err
	}

	filename := "absences-" + fromDay.Format(timesheet.DateLayout) + "-" + toDay.Format(timesheet.DateLayout) + ".xlsx"
	return data, filename, nil
}
