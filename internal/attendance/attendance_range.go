package attendance

import (
	"context"
	"time"

	attendanceerrors "go-clocker/internal/attendance/errors"
	"go-clocker/internal/timesheet"
)

const maxRangeDays = 366

// ParseRange reads an inclusive YYYY-MM-DD range in loc. A missing from
// defaults to the first of the current month and a missing to to today.
func ParseRange(from, to string, loc *time.Location, now time.Time) (time.Time, time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	today := timesheet.StartOfDay(now, loc)

	fromDay := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc)
	if from != "" {
		d, err := time.ParseInLocation(timesheet.DateLayout, from, loc)
		if err != nil {
			return time.Time{}, time.Time{}, attendanceerrors.ErrInvalidDate
		}
		fromDay = d
	}

	toDay := today
	if to != "" {
		d, err := time.ParseInLocation(timesheet.DateLayout, to, loc)
		if err != nil {
			return time.Time{}, time.Time{}, attendanceerrors.ErrInvalidDate
		}
		toDay = d
	}

	if toDay.Before(fromDay) || toDay.Sub(fromDay) > maxRangeDays*24*time.Hour {
		return time.Time{}, time.Time{}, attendanceerrors.ErrInvalidRange
	}
	return fromDay, toDay, nil
}

// EventWindowEnd is the exclusive upper bound for loading the events of a
// range ending on toDay: sessions started that day may close after midnight.
func EventWindowEnd(toDay time.Time) time.Time {
	return toDay.AddDate(0, 0, 2)
}

// CloseOpenSessions completes a log loaded up to windowEnd. For each employee
// whose last loaded event is a clock-in, the first event recorded at or after
// windowEnd is appended so the session pairs with its real clock-out instead
// of running up to now. Nothing can exist past now, so a window that ends
// later needs no lookup.
func CloseOpenSessions(ctx context.Context, repo Repository, companyID string, rows []Event, windowEnd, now time.Time) ([]Event, error) {
	if !windowEnd.Before(now) {
		return rows, nil
	}

	last := make(map[string]Event)
	order := []string{}
	for _, e := range rows {
		id := e.EmployeeID.String()
		prev, seen := last[id]
		if !seen {
			order = append(order, id)
		}
		if !seen || !e.OccurredAt.Before(prev.OccurredAt) {
			last[id] = e
		}
	}

	open := []string{}
	for _, id := range order {
		if timesheet.Action(last[id].Action) == timesheet.ActionClockIn {
			open = append(open, id)
		}
	}
	if len(open) == 0 {
		return rows, nil
	}

	next, err := repo.FirstAfter(ctx, companyID, open, windowEnd)
	if err != nil {
		return nil, err
	}
	return append(rows, next...), nil
}
