package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDistance(t *testing.T) {
	cases := []struct {
		meters   float64
		expected string
	}{
		{-1, "N/A"},
		{0, "0 m"},
		{512, "512 m"},
		{999.5, "999.5 m"},
		{1000, "1.0 km"},
		{5400, "5.4 km"},
		{12800, "12.8 km"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, FormatDistance(tc.meters), "meters=%v", tc.meters)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		minutes  string
		expected string
	}{
		{"", "N/A"},
		{"abc", "N/A"},
		{"-5", "N/A"},
		{"0", "0 min"},
		{"45", "45 min"},
		{"60", "1 h"},
		{"95", "1 h 35 min"},
		{"600", "10 h"},
		{"90 min", "1 h 30 min"},
		{" 30", "30 min"},
		{"2.5", "2 min"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, FormatDuration(tc.minutes), "minutes=%q", tc.minutes)
	}
}
