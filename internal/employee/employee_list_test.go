package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListQuery_Apply(t *testing.T) {
	active, inactive := true, false
	all := []EmployeeResponse{
		{ID: "1", FullName: "Citra", Email: "c@x.io", EmployeeNumber: "EMP-000003", HourlyRate: 30, IsActive: true},
		{ID: "2", FullName: "ana", Email: "a@x.io", EmployeeNumber: "EMP-000001", HourlyRate: 50, IsActive: true},
		{ID: "3", FullName: "Budi", Email: "b@x.io", EmployeeNumber: "EMP-000002", HourlyRate: 40, IsActive: false},
	}

	names := func(rows []EmployeeResponse) []string {
		out := make([]string, len(rows))
		for i, r := range rows {
			out[i] = r.FullName
		}
		return out
	}

	t.Run("defaults to name ascending", func(t *testing.T) {
		rows, total := ListQuery{}.Apply(all)
		assert.Equal(t, int64(3), total)
		assert.Equal(t, []string{"ana", "Budi", "Citra"}, names(rows))
	})

	t.Run("rate descending", func(t *testing.T) {
		rows, _ := ListQuery{SortBy: "rate", SortDir: "desc"}.Apply(all)
		assert.Equal(t, []string{"ana", "Budi", "Citra"}, names(rows))
	})

	t.Run("active filter", func(t *testing.T) {
		rows, total := ListQuery{Active: &inactive}.Apply(all)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, []string{"Budi"}, names(rows))

		_, total = ListQuery{Active: &active}.Apply(all)
		assert.Equal(t, int64(2), total)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		rows, total := ListQuery{Page: 3, PageSize: 2}.Apply(all)
		assert.Equal(t, int64(3), total)
		assert.Empty(t, rows)
	})

	t.Run("search is case insensitive", func(t *testing.T) {
		rows, total := ListQuery{Q: "  EMP-000002 "}.Apply(all)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, []string{"Budi"}, names(rows))
	})
}
