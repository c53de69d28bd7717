package config_test

import (
	"testing"
	"time"

	"go-clocker/internal/config"
	"go-clocker/internal/timesheet"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TIMEZONE", "UTC")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, timesheet.DefaultLateThreshold, cfg.Attendance.LateThreshold)
	assert.Equal(t, timesheet.WorkplaceOffice, cfg.Attendance.DefaultWorkplace)
	assert.Equal(t, 30*time.Second, cfg.QRTokenTTL)
	assert.Equal(t, 0.8, cfg.Face.MinConfidence)
	assert.Equal(t, "UTC", cfg.Attendance.Location.String())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("LATE_THRESHOLD", "09:15")
	t.Setenv("DEFAULT_WORKPLACE", "home")
	t.Setenv("APP_ENV", "production")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, timesheet.TimeOfDay{Hour: 9, Minute: 15}, cfg.Attendance.LateThreshold)
	assert.Equal(t, timesheet.WorkplaceHome, cfg.Attendance.DefaultWorkplace)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"LATE_THRESHOLD":      "late",
		"DEFAULT_WORKPLACE":   "beach",
		"TIMEZONE":            "Mars/Olympus",
		"FACE_MIN_CONFIDENCE": "high",
		"QR_TOKEN_TTL":        "soon",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("TIMEZONE", "UTC")
			t.Setenv(key, value)
			_, err := config.Load()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}
