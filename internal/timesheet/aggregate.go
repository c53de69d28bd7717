package timesheet

import (
	"fmt"
	"sort"
	"time"
)

const DateLayout = "2006-01-02"

// StartOfDay returns local midnight of the day t falls on in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func DayKey(t time.Time, loc *time.Location) string {
	return StartOfDay(t, loc).Format(DateLayout)
}

// GroupByDay buckets sessions by the day their Start falls on. A session
// that crosses midnight belongs entirely to the day it started.
func GroupByDay(sessions []Session, loc *time.Location) map[string][]Session {
	out := make(map[string][]Session)
	for _, s := range sessions {
		key := DayKey(s.Start, loc)
		out[key] = append(out[key], s)
	}
	return out
}

// SummarizeDay totals the sessions of one day. The day is late when its
// first clock-in is at or after lateThreshold in the location of date.
func SummarizeDay(date time.Time, sessions []Session, lateThreshold TimeOfDay) DaySummary {
	day := DaySummary{
		Date:     date,
		Sessions: make([]Session, len(sessions)),
		Status:   StatusAbsent,
	}
	copy(day.Sessions, sessions)
	sort.SliceStable(day.Sessions, func(i, j int) bool {
		return day.Sessions[i].Start.Before(day.Sessions[j].Start)
	})

	for _, s := range day.Sessions {
		day.TotalDuration += s.Duration
	}
	if len(day.Sessions) > 0 {
		day.Status = StatusPresent
		day.Late = lateThreshold.ReachedBy(day.Sessions[0].Start.In(date.Location()))
	}
	return day
}

// SummarizeDays produces one DaySummary for every calendar day from..to
// inclusive, absent days included.
func SummarizeDays(sessions []Session, from, to time.Time, loc *time.Location, lateThreshold TimeOfDay) []DaySummary {
	if loc == nil {
		loc = time.UTC
	}
	first := StartOfDay(from, loc)
	last := StartOfDay(to, loc)
	if last.Before(first) {
		return []DaySummary{}
	}

	byDay := GroupByDay(sessions, loc)
	days := make([]DaySummary, 0, int(last.Sub(first).Hours()/24)+1)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, SummarizeDay(d, byDay[d.Format(DateLayout)], lateThreshold))
	}
	return days
}

func SummarizeRange(days []DaySummary) RangeSummary {
	r := RangeSummary{Days: days}
	for _, d := range days {
		r.TotalDuration += d.TotalDuration
		if d.TotalDuration > 0 {
			r.WorkingDays++
		}
	}
	return r
}


type WeekSummary struct {
	WeekStart     time.Time
	Days          []DaySummary
	TotalDuration time.Duration
	WorkingDays   int
	PresentDays   int
	LateDays      int
}

// WeeklyBreakdown groups consecutive days into Monday-start weeks.
func WeeklyBreakdown(days []DaySummary) []WeekSummary {
	weeks := make([]WeekSummary, 0, len(days)/7+1)
	index := make(map[string]int)

	for _, d := range days {
		start := weekStart(d.Date)
		key := start.Format(DateLayout)
		i, ok := index[key]
		if !ok {
			weeks = append(weeks, WeekSummary{WeekStart: start})
			i = len(weeks) - 1
			index[key] = i
		}
		w := &weeks[i]
		w.Days = append(w.Days, d)
		w.TotalDuration += d.TotalDuration
		if d.TotalDuration > 0 {
			w.WorkingDays++
		}
		if d.Status == StatusPresent {
			w.PresentDays++
		}
		if d.Late {
			w.LateDays++
		}
	}
	return weeks
}

func weekStart(date time.Time) time.Time {
	offset := (int(date.Weekday()) + 6) % 7
	return time.Date(date.Year(), date.Month(), date.Day()-offset, 0, 0, 0, 0, date.Location())
}

// Elapsed renders a duration as HH:MM:SS for the live clock widget.
func Elapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
