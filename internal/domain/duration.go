package domain

import (
	"regexp"
	"strconv"
)

// durationPattern matches the hour and minute parts of a provider duration such as "PT2H30M".
// Like the provider format it is not anchored, so "PT2H30M15S" still yields 150.
var durationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?`)

// ParseDurationMinutes converts a provider duration string into whole minutes.
//
// Hours and minutes are independently optional ("PT45M", "PT3H").
// A string that does not contain the PT prefix yields 0, which callers
// must treat as an unknown duration rather than an instant flight.
func ParseDurationMinutes(duration string) int {
	match := durationPattern.FindStringSubmatch(duration)
	if match == nil {
		return 0
	}

	hours := atoiOrZero(match[1])
	minutes := atoiOrZero(match[2])
	return hours*60 + minutes
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// FormatMinutes formats a minute count as "Xh Ym", "Xh" or "Ym".
func FormatMinutes(totalMinutes int) string {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	switch {
	case hours > 0 && mins > 0:
		return strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "m"
	case hours > 0:
		return strconv.Itoa(hours) + "h"
	default:
		return strconv.Itoa(mins) + "m"
	}
}
