package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDurationMinutes(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		want     int
	}{
		{name: "hours and minutes", duration: "PT2H30M", want: 150},
		{name: "minutes only", duration: "PT45M", want: 45},
		{name: "hours only", duration: "PT3H", want: 180},
		{name: "long haul", duration: "PT14H5M", want: 845},
		{name: "seconds ignored", duration: "PT1H10M30S", want: 70},
		{name: "prefix without fields", duration: "PT", want: 0},
		{name: "garbage", duration: "garbage", want: 0},
		{name: "empty string", duration: "", want: 0},
		{name: "lowercase is not recognised", duration: "pt2h", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDurationMinutes(tt.duration))
		})
	}
}

func TestSegment_DurationMinutes(t *testing.T) {
	s := Segment{Duration: "PT7H25M"}
	assert.Equal(t, 445, s.DurationMinutes())
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{minutes: 150, want: "2h 30m"},
		{minutes: 120, want: "2h"},
		{minutes: 45, want: "45m"},
		{minutes: 0, want: "0m"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMinutes(tt.minutes))
		})
	}
}
