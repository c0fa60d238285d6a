package returns

import (
	"fmt"
	"time"
)

// TimeOfDay is a clock time restricted to the half-hour mark of each hour.
// Hourly bars are anchored at :30 (09:30, 10:30, ..., 15:30), so only times
// on that mark can ever match a bar.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a "HH:MM" string into a TimeOfDay.
//
// Behavior:
//   - Accepts 24-hour clock values, zero-padded or not ("9:30" and "09:30").
//   - Rejects any minute other than 30, since bars exist only on that mark.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time %q (expected HH:MM): %w", s, err)
	}
	if t.Minute() != 30 {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: minute must be :30 to match hourly bars", s)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// DefaultTimeOfDay returns the half-hour mark of the current Eastern hour,
// the default applied when no target time is given.
func DefaultTimeOfDay(now time.Time) TimeOfDay {
	return TimeOfDay{Hour: now.In(eastern).Hour(), Minute: 30}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// matches reports whether ts, already normalized to Eastern, falls on this
// clock time.
func (t TimeOfDay) matches(ts time.Time) bool {
	return ts.Hour() == t.Hour && ts.Minute() == t.Minute
}
