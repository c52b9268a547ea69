package utils

import (
	"fmt"
	"time"
)

// DayLayout is the calendar-day format used by the progress ledger.
const DayLayout = "2006-01-02"

// ParseDay validates a YYYY-MM-DD calendar day
func ParseDay(value string) (time.Time, error) {
	day, err := time.Parse(DayLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return day, nil
}

// Today returns the server's current calendar day
func Today() string {
	return time.Now().Format(DayLayout)
}

// DaysRemainingInYear returns 365 minus the day of the year. Not
// leap-year aware; the figure is presentational only.
func DaysRemainingInYear(t time.Time) int {
	return 365 - t.YearDay()
}
