package attendance

type ClockRequest struct {
	Workplace string   `json:"workplace" binding:"omitempty,oneof=office home"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" binding:"omitempty,longitude"`
	Notes     *string  `json:"notes" binding:"omitempty,max=500"`
}

type QRClockRequest struct {
	Token     string   `json:"token" binding:"required"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" binding:"omitempty,longitude"`
}

// IssueQRTokenRequest mints a code for a workplace display. Without an
// action the code toggles the scanning employee in or out.
type IssueQRTokenRequest struct {
	Workplace string `json:"workplace" binding:"required,oneof=office home"`
	Action    string `json:"action" binding:"omitempty,oneof=clock-in clock-out"`
}

type QRTokenResponse struct {
	Token     string `json:"token"`
	Workplace string `json:"workplace"`
	Action    string `json:"action,omitempty"`
	ExpiresAt string `json:"expires_at"`
}

type EventResponse struct {
	ID           string   `json:"id"`
	CompanyID    string   `json:"company_id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name,omitempty"`
	Action       string   `json:"action"`
	OccurredAt   string   `json:"occurred_at"`
	Workplace    string   `json:"workplace"`
	Source       string   `json:"source"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
	Confidence   *float64 `json:"confidence,omitempty"`
}

type SessionResponse struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationSeconds int64  `json:"duration_seconds"`
	Active          bool   `json:"active"`
}

type StatusResponse struct {
	EmployeeID         string           `json:"employee_id"`
	Status             string           `json:"status"`
	Workplace          string           `json:"workplace,omitempty"`
	ActiveSession      *SessionResponse `json:"active_session,omitempty"`
	Elapsed            string           `json:"elapsed"`
	TodayWorkedSeconds int64            `json:"today_worked_seconds"`
	TodayWorked        string           `json:"today_worked"`
	Late               bool             `json:"late"`
}

type DayResponse struct {
	Date                 string            `json:"date"`
	Status               string            `json:"status"`
	Late                 bool              `json:"late"`
	TotalDurationSeconds int64             `json:"total_duration_seconds"`
	Sessions             []SessionResponse `json:"sessions"`
}

type WeekResponse struct {
	WeekStart            string `json:"week_start"`
	TotalDurationSeconds int64  `json:"total_duration_seconds"`
	WorkingDays          int    `json:"working_days"`
	PresentDays          int    `json:"present_days"`
	LateDays             int    `json:"late_days"`
}

type TimesheetResponse struct {
	EmployeeID           string         `json:"employee_id"`
	From                 string         `json:"from"`
	To                   string         `json:"to"`
	TotalDurationSeconds int64          `json:"total_duration_seconds"`
	TotalDuration        string         `json:"total_duration"`
	WorkingDays          int            `json:"working_days"`
	Days                 []DayResponse  `json:"days"`
	Weeks                []WeekResponse `json:"weeks"`
}

type ListQuery struct {
	EmployeeID string `form:"employee_id"`
	From       string `form:"from"`
	To         string `form:"to"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}
