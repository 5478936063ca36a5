package domain

import (
	"fmt"
	"time"
)

// InvalidHour is returned by HourOfDay when the timestamp cannot be parsed.
const InvalidHour = -1

// naiveLayouts are the zone-less layouts sent by the flight search provider.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParseTimestamp parses a provider timestamp into an instant in loc.
//
// Zoned timestamps (RFC 3339) are converted into loc. Naive timestamps are
// read as wall-clock time in loc, which matches the provider convention of
// sending local airport time without an offset. No correction for the
// airport's own timezone is made.
func ParseTimestamp(ts string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t.In(loc), nil
	}

	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, ts, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse timestamp %q", ts)
}

// HourOfDay returns the hour (0-23) of ts in the process-local timezone,
// or InvalidHour when ts cannot be parsed.
func HourOfDay(ts string) int {
	return HourOfDayIn(ts, time.Local)
}

// HourOfDayIn returns the hour (0-23) of ts in loc, or InvalidHour.
func HourOfDayIn(ts string, loc *time.Location) int {
	t, err := ParseTimestamp(ts, loc)
	if err != nil {
		return InvalidHour
	}
	return t.Hour()
}
