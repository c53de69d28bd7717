package events

import "time"

const (
	AttendanceRecordedTopic     = "hr.attendance.recorded.v1"
	AttendanceRecordedEventType = "attendance.recorded"
)

// AttendanceRecordedEvent is published once per clock-in or clock-out,
// keyed by employee so a partition sees one employee's log in order.
type AttendanceRecordedEvent struct {
	EventType  string    `json:"event_type"`
	EventID    string    `json:"event_id"`
	CompanyID  string    `json:"company_id"`
	EmployeeID string    `json:"employee_id"`
	Action     string    `json:"action"`
	Workplace  string    `json:"workplace"`
	Source     string    `json:"source"`
	Late       bool      `json:"late"`
	OccurredAt time.Time `json:"occurred_at"`
}
