package statement

import (
	"regexp"
	"strconv"
	"time"
)

// nativeLayouts are tried first, in order.
var nativeLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Mon, 02 Jan 2006",
	"1/2/2006",
	"01/02/2006",
	"1-2-2006",
	"2006-1-2",
	"Jan 2 2006",
	"January 2 2006",
}

var (
	europeanDate = regexp.MustCompile(`(\d{1,2})[-/](\d{1,2})[-/](\d{4})`)
	usDate       = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)
)

// parseDate runs the fallback chain: native layouts, then day-first, then
// month-first. Numeric dates the native layouts accept are month first, so
// the day-first pattern only sees dates like 15/01/2024. The result is
// truncated to a UTC calendar date.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range nativeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return civilDate(t.Year(), int(t.Month()), t.Day())
		}
	}
	if m := europeanDate.FindStringSubmatch(s); m != nil {
		if t, ok := civilFromParts(m[3], m[2], m[1]); ok {
			return t, true
		}
	}
	if m := usDate.FindStringSubmatch(s); m != nil {
		if t, ok := civilFromParts(m[3], m[1], m[2]); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

func civilFromParts(year, month, day string) (time.Time, bool) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, false
	}
	mo, err := strconv.Atoi(month)
	if err != nil {
		return time.Time{}, false
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return time.Time{}, false
	}
	return civilDate(y, mo, d)
}

// civilDate rejects values time.Date would normalize, such as 31 February.
func civilDate(year, month, day int) (time.Time, bool) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
