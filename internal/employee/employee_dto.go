package employee

type CreateEmployeeRequest struct {
	EmployeeNumber   string  `json:"employee_number"`
	FullName         string  `json:"full_name" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	HourlyRate       float64 `json:"hourly_rate" binding:"gte=0"`
	DefaultWorkplace string  `json:"default_workplace" binding:"omitempty,oneof=office home"`
}

type UpdateEmployeeRequest struct {
	EmployeeNumber   string  `json:"employee_number"`
	FullName         string  `json:"full_name" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	HourlyRate       float64 `json:"hourly_rate" binding:"gte=0"`
	DefaultWorkplace string  `json:"default_workplace" binding:"omitempty,oneof=office home"`
	IsActive         *bool   `json:"is_active"`
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	CompanyID        string  `json:"company_id"`
	EmployeeNumber   string  `json:"employee_number"`
	FullName         string  `json:"full_name"`
	Email            string  `json:"email"`
	HourlyRate       float64 `json:"hourly_rate"`
	DefaultWorkplace string  `json:"default_workplace"`
	IsActive         bool    `json:"is_active"`
}

// EmployeeOption is the light projection used by pickers and reports.
type EmployeeOption struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
}
