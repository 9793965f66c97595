package ports

import (
	"context"
	"errors"
)

// Encoder is the external media engine. One call is one encode job: the
// engine either leaves a file at the output path or fails with its
// diagnostic output embedded in the error.
type Encoder interface {
	// ExtractSegment stream-copies [start, end) seconds of input to output.
	ExtractSegment(ctx context.Context, input string, start, end float64, output string) error
	// Concat merges the files listed in the manifest, in manifest order,
	// into output via stream copy.
	Concat(ctx context.Context, manifestPath, output string) error
	// ProbeDuration returns the source duration in seconds.
	ProbeDuration(ctx context.Context, input string) (float64, error)
}

// TimestampFinder is the semantic collaborator: given a video and a
// natural-language instruction it returns free-form text expected to contain
// HH:MM:SS tokens. The text is consumed purely syntactically downstream.
type TimestampFinder interface {
	FindTimestamps(ctx context.Context, videoPath, instruction string) (string, error)
}

var (
	// ErrPrecondition reports a missing or unparseable source duration.
	ErrPrecondition = errors.New("source duration unavailable")
	// ErrCollaboratorTimeout reports that the semantic collaborator did not
	// answer within the bounded wait.
	ErrCollaboratorTimeout = errors.New("timestamp analysis timed out")
	// ErrCollaboratorRejected reports a non-timeout collaborator failure.
	ErrCollaboratorRejected = errors.New("timestamp analysis rejected")
	// ErrPayloadTooLarge reports a video too big to send for analysis.
	ErrPayloadTooLarge = errors.New("video payload too large for analysis")
)
