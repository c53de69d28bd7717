// Package timesheet rebuilds work sessions from a raw clock-in/clock-out log
// and aggregates them into the day, week and range views used by the
// dashboard, the rate calculator and the reports.
//
// Everything here is a pure function of its arguments. Callers pass "now",
// the location that defines a calendar day and the late threshold.
package timesheet

import (
	"sort"
	"time"
)

// SortEvents returns a copy of events ordered by timestamp. Events sharing a
// timestamp keep their input order.
func SortEvents(events []Event) []Event {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

// PairSessions pairs the events of a single user into sessions.
//
// A clock-in replaces any clock-in still waiting for its clock-out. A
// clock-out with nothing to close is dropped. A clock-in left open at the
// end becomes an active session measured up to now, never below zero.
func PairSessions(events []Event, now time.Time) []Session {
	if len(events) == 0 {
		return []Session{}
	}

	sessions := make([]Session, 0, len(events)/2+1)
	var pending *time.Time

	for _, e := range SortEvents(events) {
		switch e.Action {
		case ActionClockIn:
			start := e.Timestamp
			pending = &start
		case ActionClockOut:
			if pending == nil {
				continue
			}
			sessions = append(sessions, Session{
				Start:    *pending,
				End:      e.Timestamp,
				Duration: e.Timestamp.Sub(*pending),
			})
			pending = nil
		}
	}

	if pending != nil {
		d := now.Sub(*pending)
		if d < 0 {
			d = 0
		}
		sessions = append(sessions, Session{
			Start:    *pending,
			End:      now,
			Duration: d,
			Active:   true,
		})
	}

	return sessions
}

// CurrentStatus is clocked-in when the latest session is still open.
func CurrentStatus(events []Event, now time.Time) Status {
	if _, ok := ActiveSession(events, now); ok {
		return StatusClockedIn
	}
	return StatusClockedOut
}

// ActiveSession returns the open session, if the user is clocked in.
func ActiveSession(events []Event, now time.Time) (Session, bool) {
	sessions := PairSessions(events, now)
	if len(sessions) == 0 {
		return Session{}, false
	}
	last := sessions[len(sessions)-1]
	return last, last.Active
}
