// Package timestamps scrapes HH:MM:SS tokens out of free-form analysis text.
// It is purely syntactic: it trusts the upstream collaborator to emit
// well-formed timecodes and does no semantic reading of the surrounding prose.
package timestamps

import (
	"errors"
	"fmt"
	"regexp"

	"segcut/internal/domain/timecode"
	"segcut/internal/types"
)

// ErrNoTimestamps reports analysis text without enough timecode tokens to
// form a single window.
var ErrNoTimestamps = errors.New("no timestamps found in analysis text")

var tokenRE = regexp.MustCompile(`\b\d{1,2}:[0-5]\d:[0-5]\d(?:\.\d+)?\b`)

// Extract collects every HH:MM:SS[.fff] token in order of appearance and
// pairs them consecutively into candidate windows. A trailing unpaired token
// is dropped. End-after-start validation is the planner's job, not ours.
func Extract(text string) ([]types.Interval, error) {
	tokens := tokenRE.FindAllString(text, -1)
	if len(tokens) < 2 {
		return nil, fmt.Errorf("%w: got %d timecode tokens, need at least 2", ErrNoTimestamps, len(tokens))
	}

	pairs := make([]types.Interval, 0, len(tokens)/2)
	for i := 0; i+1 < len(tokens); i += 2 {
		start, err := timecode.Parse(tokens[i])
		if err != nil {
			return nil, err
		}
		end, err := timecode.Parse(tokens[i+1])
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, types.Interval{Start: start, End: end})
	}
	return pairs, nil
}
