package employee

import (
	"sort"
	"strings"
)

// ListQuery is the search, ordering and paging of GET /employees.
type ListQuery struct {
	Q        string `form:"q"`
	Active   *bool  `form:"active"`
	SortBy   string `form:"sort_by" binding:"omitempty,oneof=name email number rate id"`
	SortDir  string `form:"sort_dir" binding:"omitempty,oneof=asc desc"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

func (q *ListQuery) normalize() {
	q.Q = strings.ToLower(strings.TrimSpace(q.Q))
	if q.SortBy == "" {
		q.SortBy = "name"
	}
	if q.Page == 0 {
		q.Page = 1
	}
	if q.PageSize == 0 {
		q.PageSize = 10
	}
}

func (q ListQuery) matches(e EmployeeResponse) bool {
	if q.Active != nil && e.IsActive != *q.Active {
		return false
	}
	if q.Q == "" {
		return true
	}
	for _, field := range []string{e.FullName, e.Email, e.EmployeeNumber} {
		if strings.Contains(strings.ToLower(field), q.Q) {
			return true
		}
	}
	return false
}

func (q ListQuery) less(a, b EmployeeResponse) bool {
	switch q.SortBy {
	case "email":
		return strings.ToLower(a.Email) < strings.ToLower(b.Email)
	case "number":
		return a.EmployeeNumber < b.EmployeeNumber
	case "rate":
		return a.HourlyRate < b.HourlyRate
	case "id":
		return a.ID < b.ID
	default:
		return strings.ToLower(a.FullName) < strings.ToLower(b.FullName)
	}
}

// Apply filters and orders all and returns the requested page together with
// the number of matching rows.
func (q ListQuery) Apply(all []EmployeeResponse) ([]EmployeeResponse, int64) {
	q.normalize()

	rows := make([]EmployeeResponse, 0, len(all))
	for _, e := range all {
		if q.matches(e) {
			rows = append(rows, e)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if q.SortDir == "desc" {
			return q.less(rows[j], rows[i])
		}
		return q.less(rows[i], rows[j])
	})

	total := int64(len(rows))
	start := (q.Page - 1) * q.PageSize
	if start > len(rows) {
		start = len(rows)
	}
	end := start + q.PageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], total
}
