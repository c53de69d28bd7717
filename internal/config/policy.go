package config

import (
	"fmt"
	"time"

	"go-clocker/internal/timesheet"

	"github.com/BurntSushi/toml"
)

// Policy is the optional TOML file that overrides the attendance settings
// taken from the environment.
//
//	timezone = "Asia/Jakarta"
//	late_threshold = "09:30"
//	default_workplace = "office"
//	holidays = ["2026-01-01", "2026-03-20"]
type Policy struct {
	Timezone         string   `toml:"timezone"`
	LateThreshold    string   `toml:"late_threshold"`
	DefaultWorkplace string   `toml:"default_workplace"`
	Holidays         []string `toml:"holidays"`
}

func ApplyPolicyFile(path string, att *AttendanceConfig) error {
	var p Policy
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return p.Apply(att)
}

// Apply overlays the non-empty policy fields onto att.
func (p Policy) Apply(att *AttendanceConfig) error {
	if p.Timezone != "" {
		loc, err := time.LoadLocation(p.Timezone)
		if err != nil {
			return fmt.Errorf("timezone: %w", err)
		}
		att.Location = loc
	}
	if p.LateThreshold != "" {
		threshold, err := timesheet.ParseTimeOfDay(p.LateThreshold)
		if err != nil {
			return fmt.Errorf("late_threshold: %w", err)
		}
		att.LateThreshold = threshold
	}
	if p.DefaultWorkplace != "" {
		w := timesheet.Workplace(p.DefaultWorkplace)
		if !w.Valid() {
			return fmt.Errorf("default_workplace: unknown workplace %q", w)
		}
		att.DefaultWorkplace = w
	}
	if att.Holidays == nil {
		att.Holidays = map[string]bool{}
	}
	for _, h := range p.Holidays {
		if _, err := time.Parse(timesheet.DateLayout, h); err != nil {
			return fmt.Errorf("holidays: %w", err)
		}
		att.Holidays[h] = true
	}
	return nil
}
