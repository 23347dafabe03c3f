package payload

import (
	"strings"
	"time"
)

const (
	isoDate     = "2006-01-02"
	compactDate = "20060102"
	compactTime = "20060102T150405"
)

// eventLayouts are tried in order; the first successful parse wins.
var eventLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	isoDate,
	compactTime,
	compactDate,
}

// parseEventTime accepts ISO-8601 date-times, compact YYYYMMDDTHHMMSS and
// date-only YYYYMMDD. Naive values are parsed as UTC wall clock.
func parseEventTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range eventLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseBirthday accepts YYYY-MM-DD or YYYYMMDD.
func parseBirthday(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{isoDate, compactDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dateOnly drops the clock while keeping the wall-clock calendar day.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
