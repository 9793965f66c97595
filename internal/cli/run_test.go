package cli

import (
	"errors"
	"testing"

	"segcut/internal/domain/timecode"
	"segcut/internal/types"
)

func TestParseIntervalSpec(t *testing.T) {
	cases := []struct {
		in   string
		want types.Interval
	}{
		{"01:10-01:25", types.Interval{Start: 70, End: 85}},
		{"00:01:10-00:01:25.5", types.Interval{Start: 70, End: 85.5}},
		{"5-10", types.Interval{Start: 5, End: 10}},
		{"45.25-60", types.Interval{Start: 45.25, End: 60}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseIntervalSpec(tc.in)
			if err != nil {
				t.Fatalf("parseIntervalSpec(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("parseIntervalSpec(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseIntervalSpec_Invalid(t *testing.T) {
	for _, in := range []string{"", "10", "10-20-30", "20-10", "10-10"} {
		t.Run(in, func(t *testing.T) {
			if _, err := parseIntervalSpec(in); err == nil {
				t.Fatalf("parseIntervalSpec(%q): want error", in)
			}
		})
	}
	if _, err := parseIntervalSpec("ab:cd-10"); !errors.Is(err, timecode.ErrInvalidTime) {
		t.Fatalf("want ErrInvalidTime, got %v", err)
	}
}
