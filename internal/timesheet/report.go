package timesheet

import (
	"sort"
	"time"
)

// PartitionByUser splits a mixed event log into per-user logs, keeping the
// relative order of each user's events.
func PartitionByUser(events []Event) map[string][]Event {
	out := make(map[string][]Event)
	for _, e := range events {
		out[e.UserID] = append(out[e.UserID], e)
	}
	return out
}

// PresentOn reports whether any event, paired or not, falls on day.
func PresentOn(events []Event, day time.Time, loc *time.Location) bool {
	key := DayKey(day, loc)
	for _, e := range events {
		if DayKey(e.Timestamp, loc) == key {
			return true
		}
	}
	return false
}

// Presence splits the roster into users with at least one event on day and
// users without any.
func Presence(roster []string, events []Event, day time.Time, loc *time.Location) (present, absent []string) {
	byUser := PartitionByUser(events)
	present = []string{}
	absent = []string{}
	for _, id := range roster {
		if PresentOn(byUser[id], day, loc) {
			present = append(present, id)
		} else {
			absent = append(absent, id)
		}
	}
	return present, absent
}

type Absence struct {
	UserID string
	Date   time.Time
}

// Absences lists every (user, weekday) pair in from..to with no session
// starting that day. Saturdays and Sundays are never reported.
func Absences(roster []string, events []Event, from, to time.Time, loc *time.Location, now time.Time) []Absence {
	if loc == nil {
		loc = time.UTC
	}
	byUser := PartitionByUser(events)
	first := StartOfDay(from, loc)
	last := StartOfDay(to, loc)

	out := []Absence{}
	for _, id := range roster {
		worked := GroupByDay(PairSessions(byUser[id], now), loc)
		for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
			if isWeekend(d) {
				continue
			}
			if len(worked[d.Format(DateLayout)]) == 0 {
				out = append(out, Absence{UserID: id, Date: d})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

type LateArrival struct {
	UserID       string
	Date         time.Time
	FirstClockIn time.Time
}

// LateArrivals lists the days in from..to whose first clock-in reached the
// threshold, for every user present in events.
func LateArrivals(events []Event, from, to time.Time, loc *time.Location, lateThreshold TimeOfDay, now time.Time) []LateArrival {
	out := []LateArrival{}
	for id, userEvents := range PartitionByUser(events) {
		days := SummarizeDays(PairSessions(userEvents, now), from, to, loc, lateThreshold)
		for _, d := range days {
			if !d.Late {
				continue
			}
			out = append(out, LateArrival{UserID: id, Date: d.Date, FirstClockIn: d.Sessions[0].Start})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].FirstClockIn.Equal(out[j].FirstClockIn) {
			return out[i].UserID < out[j].UserID
		}
		return out[i].FirstClockIn.Before(out[j].FirstClockIn)
	})
	return out
}

func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
