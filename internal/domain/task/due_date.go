package task

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/kanban-service/internal/domain"
)

// DateLayout is the calendar-date format accepted for due-date lookups.
const DateLayout = "2006-01-02"

// DayRange is the inclusive [Start, End] window of one calendar day.
type DayRange struct {
	Start time.Time
	End   time.Time
}

// ParseDay parses raw as a calendar date in loc and returns the window from
// 00:00:00 to 23:59:59 of that day. Unparsable input fails with
// domain.ErrInvalidDateFormat.
func ParseDay(raw string, loc *time.Location) (DayRange, error) {
	if loc == nil {
		loc = time.UTC
	}
	day, err := time.ParseInLocation(DateLayout, raw, loc)
	if err != nil {
		return DayRange{}, fmt.Errorf("%w: %q, want %s", domain.ErrInvalidDateFormat, raw, DateLayout)
	}
	return DayRange{
		Start: day,
		End:   day.Add(24*time.Hour - time.Second),
	}, nil
}

// Contains reports whether t falls inside the window.
func (r DayRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// IsOverdue reports whether the task's due date is before now and the task is
// not DONE.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.Status != StatusDone && t.DueDate.Before(now)
}
