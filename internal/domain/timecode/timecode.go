// Package timecode is the single authority for time parsing: every component
// that accepts a textual or numeric time goes through Parse or ParseValue.
package timecode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMissingTime reports an absent time value (nil argument).
	ErrMissingTime = errors.New("time value is missing")
	// ErrInvalidTime reports a time value that could not be parsed.
	ErrInvalidTime = errors.New("invalid time format")
)

// Parse converts "HH:MM:SS", "MM:SS" (seconds may carry a fractional part) or
// a plain seconds number into seconds. The result is never rounded.
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidTime)
	}

	if !strings.Contains(s, ":") {
		sec, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidTime, s)
		}
		if sec < 0 {
			return 0, fmt.Errorf("%w: %q is negative", ErrInvalidTime, s)
		}
		return sec, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q has %d colon-delimited parts, want 2 or 3", ErrInvalidTime, s, len(parts))
	}

	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q in %q is not a number", ErrInvalidTime, p, s)
		}
		if v < 0 {
			return 0, fmt.Errorf("%w: %q in %q is negative", ErrInvalidTime, p, s)
		}
		vals[i] = v
	}

	if len(vals) == 3 {
		return vals[0]*3600 + vals[1]*60 + vals[2], nil
	}
	return vals[0]*60 + vals[1], nil
}

// ParseValue accepts the string|number forms a tool argument may carry.
// A nil value is a distinct failure from a malformed one.
func ParseValue(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, ErrMissingTime
	case string:
		return Parse(x)
	case float64:
		if x < 0 {
			return 0, fmt.Errorf("%w: %v is negative", ErrInvalidTime, x)
		}
		return x, nil
	case int:
		return ParseValue(float64(x))
	case int64:
		return ParseValue(float64(x))
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidTime, v)
	}
}
