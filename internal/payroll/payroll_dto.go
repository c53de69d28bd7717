package payroll

type CalculateRequest struct {
	EmployeeID string   `json:"employee_id" form:"employee_id"`
	From       string   `json:"from" form:"from"`
	To         string   `json:"to" form:"to"`
	HourlyRate *float64 `json:"hourly_rate" form:"hourly_rate" binding:"omitempty,gte=0"`
}

type DayLine struct {
	Date                 string `json:"date"`
	Status               string `json:"status"`
	Late                 bool   `json:"late"`
	TotalDurationSeconds int64  `json:"total_duration_seconds"`
}

type WeekLine struct {
	WeekStart            string `json:"week_start"`
	TotalDurationSeconds int64  `json:"total_duration_seconds"`
	WorkingDays          int    `json:"working_days"`
}

type CalculationResponse struct {
	EmployeeID           string     `json:"employee_id"`
	EmployeeNumber       string     `json:"employee_number"`
	EmployeeName         string     `json:"employee_name"`
	From                 string     `json:"from"`
	To                   string     `json:"to"`
	HourlyRate           float64    `json:"hourly_rate"`
	RateOverridden       bool       `json:"rate_overridden"`
	TotalDurationSeconds int64      `json:"total_duration_seconds"`
	TotalDuration        string     `json:"total_duration"`
	TotalHours           float64    `json:"total_hours"`
	WorkingDays          int        `json:"working_days"`
	TotalPay             float64    `json:"total_pay"`
	Days                 []DayLine  `json:"days"`
	Weeks                []WeekLine `json:"weeks"`
}
