package types

import "fmt"

// Interval is a half-open time window [Start, End) over a video's timeline,
// expressed in seconds.
type Interval struct {
	Start float64
	End   float64
}

// Duration returns the interval length in seconds.
func (iv Interval) Duration() float64 {
	return iv.End - iv.Start
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%.3f, %.3f)", iv.Start, iv.End)
}

// Validate reports whether the interval is a usable time window.
func (iv Interval) Validate() error {
	if iv.Start < 0 {
		return fmt.Errorf("interval start %.3f is negative", iv.Start)
	}
	if iv.End <= iv.Start {
		return fmt.Errorf("interval end %.3f is not after start %.3f", iv.End, iv.Start)
	}
	return nil
}
