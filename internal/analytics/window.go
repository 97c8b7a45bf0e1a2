package analytics

import (
	"crmdigest/internal/models"
	"time"
)

const DateLayout = "2006-01-02"

// Window is a closed interval [Start, End].
type Window struct {
	Start time.Time
	End   time.Time
}

// DayWindow covers the calendar day of day in loc: local midnight through
// 23:59:59.999.
func DayWindow(day time.Time, loc *time.Location) Window {
	if loc == nil {
		loc = time.Local
	}
	d := day.In(loc)
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	return Window{
		Start: start,
		End:   start.AddDate(0, 0, 1).Add(-time.Millisecond),
	}
}

// Yesterday is the window of the day before now in loc.
func Yesterday(now time.Time, loc *time.Location) Window {
	if loc == nil {
		loc = time.Local
	}
	n := now.In(loc)
	return DayWindow(time.Date(n.Year(), n.Month(), n.Day()-1, 12, 0, 0, 0, loc), loc)
}

// InWindow reports whether ts lies in [start, end]. Absent timestamps never match.
func InWindow(ts models.Timestamp, start, end time.Time) bool {
	if !ts.Valid() {
		return false
	}
	return !ts.Time.Before(start) && !ts.Time.After(end)
}

func (w Window) Contains(ts models.Timestamp) bool {
	return InWindow(ts, w.Start, w.End)
}

func (w Window) StartDate() string {
	return w.Start.Format(DateLayout)
}

func (w Window) EndDate() string {
	return w.End.Format(DateLayout)
}
