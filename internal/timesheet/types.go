package timesheet

import (
	"fmt"
	"time"
)

type Action string

const (
	ActionClockIn  Action = "clock-in"
	ActionClockOut Action = "clock-out"
)

func (a Action) Valid() bool {
	return a == ActionClockIn || a == ActionClockOut
}

type Workplace string

const (
	WorkplaceOffice Workplace = "office"
	WorkplaceHome   Workplace = "home"
)

func (w Workplace) Valid() bool {
	return w == WorkplaceOffice || w == WorkplaceHome
}

// Event is one raw clock-in or clock-out taken from the attendance log.
type Event struct {
	UserID    string
	Timestamp time.Time
	Action    Action
	Workplace Workplace
}

// Session is a matched clock-in/clock-out pair. An active session has no
// clock-out yet; its End is the "now" it was evaluated against.
type Session struct {
	Start    time.Time
	End      time.Time
	Duration time.Duration
	Active   bool
}

func (s Session) DurationSeconds() int64 {
	return int64(s.Duration / time.Second)
}

type DayStatus string

const (
	StatusPresent DayStatus = "present"
	StatusAbsent  DayStatus = "absent"
)

// DaySummary aggregates the sessions that started on one calendar day.
// Status is derived from sessions only; a day whose single event was an
// orphan clock-out is absent here even though the daily presence report
// (PresentOn) counts it.
type DaySummary struct {
	Date          time.Time
	Sessions      []Session
	TotalDuration time.Duration
	Status        DayStatus
	Late          bool
}

// RangeSummary totals a run of days. WorkingDays counts days with positive
// duration, which is not the same as days with Status == StatusPresent.
type RangeSummary struct {
	Days          []DaySummary
	TotalDuration time.Duration
	WorkingDays   int
}

func (r RangeSummary) TotalDurationSeconds() int64 {
	return int64(r.TotalDuration / time.Second)
}

func (r RangeSummary) TotalPay(hourlyRate float64) float64 {
	return TotalPay(r.TotalDuration, hourlyRate)
}

type Status string

const (
	StatusClockedIn  Status = "clocked-in"
	StatusClockedOut Status = "clocked-out"
)

// TimeOfDay is a wall-clock time without a date, used for the late threshold.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

var DefaultLateThreshold = TimeOfDay{Hour: 10}

// ParseTimeOfDay accepts "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(v string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, v); err == nil {
			return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("invalid time of day %q, expected HH:MM or HH:MM:SS", v)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

func (t TimeOfDay) seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// ReachedBy reports whether ts, read in its own location, is at or after t.
func (t TimeOfDay) ReachedBy(ts time.Time) bool {
	return ts.Hour()*3600+ts.Minute()*60+ts.Second() >= t.seconds()
}
