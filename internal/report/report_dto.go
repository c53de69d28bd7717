package report

type PersonStatus struct {
	EmployeeID     string `json:"employee_id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	ClockedIn      bool   `json:"clocked_in,omitempty"`
	OnLeave        bool   `json:"on_leave,omitempty"`
}

// TodayResponse splits the roster by raw-event presence: anyone with an
// event today is present, even a lone clock-out.
type TodayResponse struct {
	Date         string         `json:"date"`
	Holiday      bool           `json:"holiday"`
	PresentCount int            `json:"present_count"`
	AbsentCount  int            `json:"absent_count"`
	Present      []PersonStatus `json:"present"`
	Absent       []PersonStatus `json:"absent"`
	GeneratedAt  string         `json:"generated_at"`
}

type LateArrivalResponse struct {
	EmployeeID     string `json:"employee_id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	Date           string `json:"date"`
	FirstClockIn   string `json:"first_clock_in"`
}

type AbsenceResponse struct {
	EmployeeID     string `json:"employee_id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	Date           string `json:"date"`
	OnLeave        bool   `json:"on_leave"`
	LeaveType      string `json:"leave_type,omitempty"`
}

type RangeQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}
