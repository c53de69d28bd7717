package attendance

import (
	"time"

	"go-clocker/internal/timesheet"

	"github.com/google/uuid"
)

const (
	SourceManual = "MANUAL"
	SourceQR     = "QR"
	SourceFace   = "FACE"
)

// Event is one row of the append-only attendance log.
type Event struct {
	ID         uuid.UUID    `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID  uuid.UUID    `gorm:"column:company_id;type:uuid;not null;index:idx_attendance_company_time,priority:1"`
	EmployeeID uuid.UUID    `gorm:"column:employee_id;type:uuid;not null;index:idx_attendance_employee_time,priority:1"`
	Action     string       `gorm:"column:action;type:varchar(10);not null"`
	OccurredAt time.Time    `gorm:"column:occurred_at;type:timestamptz;not null;index:idx_attendance_employee_time,priority:2;index:idx_attendance_company_time,priority:2"`
	Workplace  string       `gorm:"column:workplace;type:varchar(10);not null"`
	Source     string       `gorm:"column:source;type:varchar(10);not null;default:MANUAL"`
	Latitude   *float64     `gorm:"column:latitude"`
	Longitude  *float64     `gorm:"column:longitude"`
	Notes      *string      `gorm:"column:notes;type:text"`
	CreatedAt  time.Time    `gorm:"column:created_at"`
	Employee   *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Event) TableName() string {
	return "attendance_events"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

func (e Event) ToTimesheet() timesheet.Event {
	return timesheet.Event{
		UserID:    e.EmployeeID.String(),
		Timestamp: e.OccurredAt,
		Action:    timesheet.Action(e.Action),
		Workplace: timesheet.Workplace(e.Workplace),
	}
}

func ToTimesheetEvents(rows []Event) []timesheet.Event {
	out := make([]timesheet.Event, len(rows))
	for i, r := range rows {
		out[i] = r.ToTimesheet()
	}
	return out
}
