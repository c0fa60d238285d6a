package returns

import (
	"fmt"
	"time"
)

// eastern is the exchange time zone. All calendar decisions (weekend checks,
// comparison-day derivation, bar matching) are made in US Eastern time.
var eastern = func() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic(fmt.Sprintf("load America/New_York: %v", err))
	}
	return loc
}()

// Eastern returns the US Eastern location used for all date arithmetic.
func Eastern() *time.Location { return eastern }

// NowEastern returns the current wall-clock time in US Eastern.
func NowEastern() time.Time { return time.Now().In(eastern) }

// PreviousTradingDay returns the day whose close serves as the comparison
// baseline: the preceding Friday when d is a Monday, otherwise the previous
// calendar day. No holiday calendar is consulted; when the derived day is a
// market holiday the provider returns no bars for it and the affected
// symbols are skipped downstream.
func PreviousTradingDay(d time.Time) time.Time {
	if d.Weekday() == time.Monday {
		return d.AddDate(0, 0, -3)
	}
	return d.AddDate(0, 0, -1)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// InvalidDateError reports a target date that falls on a weekend, for which
// no market session exists. The batch fails upfront; no fetch is attempted.
type InvalidDateError struct {
	Date time.Time
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("target date %s falls on a weekend", e.Date.Format("2006-01-02"))
}
