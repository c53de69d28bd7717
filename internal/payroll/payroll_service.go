package payroll

import (
	"context"
	"errors"
	"math"
	"time"

	"go-clocker/internal/attendance"
	"go-clocker/internal/config"
	"go-clocker/internal/employee"
	employeeerrors "go-clocker/internal/employee/errors"
	payrollerrors "go-clocker/internal/payroll/errors"
	"go-clocker/internal/timesheet"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Calculate(ctx context.Context, companyID string, req CalculateRequest) (CalculationResponse, error)
	// Payslip renders Calculate's result as a one-page PDF and returns it
	// with a download filename.
	Payslip(ctx context.Context, companyID string, req CalculateRequest) ([]byte, string, error)
}

type service struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	policy         config.AttendanceConfig
	now            func() time.Time
	logger         *zap.Logger
}

func NewService(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	policy config.AttendanceConfig,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	if policy.Location == nil {
		policy = config.DefaultAttendance()
	}
	if now == nil {
		now = time.Now
	}
	return &service{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		policy:         policy,
		now:            now,
		logger:         l,
	}
}

func (s *service) Calculate(ctx context.Context, companyID string, req CalculateRequest) (CalculationResponse, error) {
	if req.EmployeeID == "" {
		return CalculationResponse{}, payrollerrors.ErrEmployeeRequired
	}
	if _, err := uuid.Parse(req.EmployeeID); err != nil {
		return CalculationResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	if req.HourlyRate != nil && (*req.HourlyRate < 0 || math.IsNaN(*req.HourlyRate)) {
		return CalculationResponse{}, payrollerrors.ErrInvalidMoneyValue
	}

	now := s.now()
	loc := s.policy.Location
	fromDay, toDay, err := attendance.ParseRange(req.From, req.To, loc, now)
	if err != nil {
		return CalculationResponse{}, err
	}

	empl, err := s.employeeRepo.FindByIDAndCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CalculationResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return CalculationResponse{}, err
	}

	rate := empl.HourlyRate
	if req.HourlyRate != nil {
		rate = *req.HourlyRate
	}

	windowEnd := attendance.EventWindowEnd(toDay)
	rows, err := s.attendanceRepo.FindByEmployeeBetween(ctx, companyID, req.EmployeeID, fromDay, windowEnd)
	if err == nil {
		rows, err = attendance.CloseOpenSessions(ctx, s.attendanceRepo, companyID, rows, windowEnd, now)
	}
	if err != nil {
		s.logger.Error("payroll load events failed",
			zap.String("company_id", companyID),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return CalculationResponse{}, err
	}

	sessions := timesheet.PairSessions(attendance.ToTimesheetEvents(rows), now)
	days := timesheet.SummarizeDays(sessions, fromDay, toDay, loc, s.policy.LateThreshold)
	summary := timesheet.SummarizeRange(days)

	resp := CalculationResponse{
		EmployeeID:           empl.ID.String(),
		EmployeeNumber:       empl.EmployeeNumber,
		EmployeeName:         empl.FullName,
		From:                 fromDay.Format(timesheet.DateLayout),
		To:                   toDay.Format(timesheet.DateLayout),
		HourlyRate:           rate,
		RateOverridden:       req.HourlyRate != nil,
		TotalDurationSeconds: summary.TotalDurationSeconds(),
		TotalDuration:        timesheet.Elapsed(summary.TotalDuration),
		TotalHours:           math.Round(summary.TotalDuration.Hours()*100) / 100,
		WorkingDays:          summary.WorkingDays,
		TotalPay:             summary.TotalPay(rate),
		Days:                 make([]DayLine, len(days)),
	}
	for i, d := range days {
		resp.Days[i] = DayLine{
			Date:                 d.Date.Format(timesheet.DateLayout),
			Status:               string(d.Status),
			Late:                 d.Late,
			TotalDurationSeconds: int64(d.TotalDuration / time.Second),
		}
	}
	for _, w := range timesheet.WeeklyBreakdown(days) {
		resp.Weeks = append(resp.Weeks, WeekLine{
			WeekStart:            w.WeekStart.Format(timesheet.DateLayout),
			TotalDurationSeconds: int64(w.TotalDuration / time.Second),
			WorkingDays:          w.WorkingDays,
		})
	}

	s.logger.Debug("payroll calculated",
		zap.String("employee_id", req.EmployeeID),
		zap.String("from", resp.From),
		zap.String("to", resp.To),
		zap.Int64("seconds", resp.TotalDurationSeconds),
		zap.Float64("total_pay", resp.TotalPay),
	)
	return resp, nil
}

func (s *service) Payslip(ctx context.Context, companyID string, req CalculateRequest) ([]byte, string, error) {
	calc, err := s.Calculate(ctx, companyID, req)
	if err != nil {
		return nil, "", err
	}

	pdf, err := buildPayslipPDF(payslipLines(calc, s.now().In(s.policy.Location)))
	if err != nil {
		s.logger.Error("render payslip failed", zap.String("employee_id", calc.EmployeeID), zap.Error(err))
		return nil, "", err
	}
	return pdf, payslipFilename(calc), nil
}
