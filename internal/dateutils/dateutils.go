// Package dateutils resolves the partial dates found in card
// statements, which carry only a month/day pair and no year.
package dateutils

import (
	"regexp"
	"strconv"
	"time"
)

// TimestampLayout is the layout of the trade timestamps in the output.
const TimestampLayout = "2006/01/02 15:04:05"

// dayKeyLayout keys the per-day sequencing map.
const dayKeyLayout = "20060102"

var monthDayPattern = regexp.MustCompile(`^([0-9]{1,2})/([0-9]{1,2})$`)

// ParseMonthDay parses a statement "M/D" token (one or two digits on
// each side). Tokens outside the 1-12 month or 1-31 day range are
// rejected here; day-in-month validity depends on the resolved year
// and is checked by ResolveDate.
func ParseMonthDay(tok string) (time.Month, int, bool) {
	m := monthDayPattern.FindStringSubmatch(tok)
	if m == nil {
		return 0, 0, false
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, false
	}
	return time.Month(month), day, true
}

// ResolveYear infers the calendar year of a month/day pair: the year
// of today, unless that would place the date after today (date-only
// comparison), in which case the previous year. It never resolves to
// a future date. Callers must pass a month/day pair that exists in
// the resolved year.
func ResolveYear(month time.Month, day int, today time.Time) int {
	year := today.Year()
	candidate := time.Date(year, month, day, 0, 0, 0, 0, today.Location())
	limit := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if candidate.After(limit) {
		return year - 1
	}
	return year
}

// ResolveDate combines ResolveYear with a calendar check and returns
// midnight of the resolved day. It reports ok=false when the pair does
// not exist in the resolved year, such as 02/29 outside a leap year.
func ResolveDate(month time.Month, day int, today time.Time) (time.Time, bool) {
	year := ResolveYear(month, day, today)
	d := time.Date(year, month, day, 0, 0, 0, 0, today.Location())
	if d.Month() != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

// DayKey returns the YYYYMMDD key used for per-day sequencing and as
// the transaction number prefix.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}
