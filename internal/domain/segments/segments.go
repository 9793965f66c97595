// Package segments computes which intervals of a source to retain given the
// intervals to remove.
package segments

import (
	"errors"
	"fmt"
	"sort"

	"segcut/internal/types"
)

// ErrEmptyRetainSet reports a plan that would discard the entire video.
var ErrEmptyRetainSet = errors.New("nothing left to retain")

// Plan computes the duration-relative complement of removes: the ordered,
// non-overlapping list of intervals to keep.
//
// Removes are consumed in start-sorted order with a monotonically advancing
// cursor, so overlapping remove intervals silently collapse into one another
// instead of being rejected.
func Plan(removes []types.Interval, totalDuration float64) ([]types.Interval, error) {
	if totalDuration <= 0 {
		return nil, fmt.Errorf("total duration %.3f must be positive", totalDuration)
	}
	for _, rm := range removes {
		if err := rm.Validate(); err != nil {
			return nil, fmt.Errorf("remove %s: %w", rm, err)
		}
	}

	sorted := make([]types.Interval, len(removes))
	copy(sorted, removes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var retain []types.Interval
	cursor := 0.0
	for _, rm := range sorted {
		if cursor >= totalDuration {
			break
		}
		start := rm.Start
		if start > totalDuration {
			start = totalDuration
		}
		if cursor < start {
			retain = append(retain, types.Interval{Start: cursor, End: start})
		}
		if rm.End > cursor {
			cursor = rm.End
		}
	}
	if cursor < totalDuration {
		retain = append(retain, types.Interval{Start: cursor, End: totalDuration})
	}

	if len(retain) == 0 {
		return nil, fmt.Errorf("%w: %d remove intervals cover the whole %.3fs source", ErrEmptyRetainSet, len(removes), totalDuration)
	}
	return retain, nil
}

// KeepRemoveSet synthesizes the remove set for keep-one-interval semantics:
// everything outside keep is removed. Feeding the result through Plan yields
// the original keep interval.
func KeepRemoveSet(keep types.Interval, totalDuration float64) []types.Interval {
	var removes []types.Interval
	if keep.Start > 0 {
		removes = append(removes, types.Interval{Start: 0, End: keep.Start})
	}
	if keep.End < totalDuration {
		removes = append(removes, types.Interval{Start: keep.End, End: totalDuration})
	}
	return removes
}
