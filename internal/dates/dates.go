// Package dates validates and parses the DD-MM-YYYY dates accepted on the
// command line and formats dates for API queries.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Layout is the human-facing format, shown in error messages.
const Layout = "DD-MM-YYYY"

var pattern = regexp.MustCompile(`^(0[1-9]|[1-9]|[12][0-9]|3[01])-(0[1-9]|[1-9]|1[0-2])-(\d{4})$`)

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Validate reports whether s is a calendar-legal DD-MM-YYYY date. Day and
// month may be written with or without a leading zero.
func Validate(s string) bool {
	_, _, _, ok := split(s)
	return ok
}

// Parse returns UTC midnight of the date encoded in s.
func Parse(s string) (time.Time, error) {
	d, m, y, ok := split(s)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid date %q: want %s", s, Layout)
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC), nil
}

// ISO renders t as YYYY-MM-DD.
func ISO(t time.Time) string {
	return t.Format("2006-01-02")
}

func split(s string) (day, month, year int, ok bool) {
	g := pattern.FindStringSubmatch(s)
	if g == nil {
		return 0, 0, 0, false
	}
	day, _ = strconv.Atoi(g[1])
	month, _ = strconv.Atoi(g[2])
	year, _ = strconv.Atoi(g[3])
	switch month {
	case 4, 6, 9, 11:
		if day > 30 {
			return 0, 0, 0, false
		}
	case 2:
		if day > 29 || (day == 29 && !IsLeapYear(year)) {
			return 0, 0, 0, false
		}
	}
	return day, month, year, true
}
