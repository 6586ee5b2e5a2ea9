// Package window resolves the inclusive date range used to filter all
// activity queries.
package window

import (
	"fmt"
	"time"
)

const dayFormat = "2006-01-02"

// Window is an inclusive [Start, End] date range in YYYY-MM-DD form.
type Window struct {
	Start string
	End   string
}

// Resolve computes the window for the given optional bounds.
//
// An empty start defaults to the previous Sunday; an empty end defaults to
// start plus six days, so the zero-argument window is the previous calendar
// week, Sunday through Saturday. Supplied values pass through unchanged;
// Resolve does not reject start > end — an inverted range simply filters
// everything out downstream.
func Resolve(start, end string) (Window, error) {
	return resolveAt(time.Now(), start, end)
}

func resolveAt(today time.Time, start, end string) (Window, error) {
	var startDay time.Time
	if start == "" {
		// Monday-indexed weekday plus one lands on the previous Sunday.
		monday0 := (int(today.Weekday()) + 6) % 7
		startDay = today.AddDate(0, 0, -(monday0 + 1))
	} else {
		var err error
		startDay, err = time.Parse(dayFormat, start)
		if err != nil {
			return Window{}, fmt.Errorf("parse start date %q: %w", start, err)
		}
	}

	var endDay time.Time
	if end == "" {
		endDay = startDay.AddDate(0, 0, 6)
	} else {
		var err error
		endDay, err = time.Parse(dayFormat, end)
		if err != nil {
			return Window{}, fmt.Errorf("parse end date %q: %w", end, err)
		}
	}

	return Window{
		Start: startDay.Format(dayFormat),
		End:   endDay.Format(dayFormat),
	}, nil
}

// Since expands the start bound to the first instant of that day, in the
// format the commits API expects.
func (w Window) Since() string { return w.Start + "T00:00:00Z" }

// Until expands the end bound to the last instant of that day.
func (w Window) Until() string { return w.End + "T23:59:59Z" }
