package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-clocker/internal/config"
	"go-clocker/internal/timesheet"

	"github.com/stretchr/testify/assert"
)

func TestApplyPolicyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.toml")
	content := `
timezone = "UTC"
late_threshold = "09:30"
default_workplace = "home"
holidays = ["2026-03-20"]
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	att := config.DefaultAttendance()
	assert.NoError(t, config.ApplyPolicyFile(path, &att))

	assert.Equal(t, timesheet.TimeOfDay{Hour: 9, Minute: 30}, att.LateThreshold)
	assert.Equal(t, timesheet.WorkplaceHome, att.DefaultWorkplace)
	assert.True(t, att.IsHoliday(time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)))
	assert.False(t, att.IsHoliday(time.Date(2026, 3, 19, 0, 0, 0, 0, time.UTC)))
}

func TestPolicy_ApplyKeepsUnsetFields(t *testing.T) {
	att := config.DefaultAttendance()
	assert.NoError(t, config.Policy{Holidays: []string{"2026-01-01"}}.Apply(&att))
	assert.Equal(t, timesheet.DefaultLateThreshold, att.LateThreshold)
	assert.Equal(t, time.UTC, att.Location)
}

func TestPolicy_ApplyInvalid(t *testing.T) {
	cases := []config.Policy{
		{Timezone: "Nowhere/City"},
		{LateThreshold: "25:99"},
		{DefaultWorkplace: "moon"},
		{Holidays: []string{"20-03-2026"}},
	}
	for _, p := range cases {
		att := config.DefaultAttendance()
		assert.Error(t, p.Apply(&att))
	}

	att := config.DefaultAttendance()
	assert.Error(t, config.ApplyPolicyFile(filepath.Join(t.TempDir(), "missing.toml"), &att))
}
