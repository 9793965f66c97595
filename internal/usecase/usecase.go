// Package usecase orchestrates the three edit operations: cut explicit
// intervals, keep one described event, remove all described events.
package usecase

import (
	"context"
	"fmt"

	"segcut/internal/domain/segments"
	"segcut/internal/domain/timestamps"
	"segcut/internal/pipeline"
	"segcut/internal/ports"
	"segcut/internal/types"
)

type Deps struct {
	Encoder ports.Encoder
	Finder  ports.TimestampFinder
}

type Usecase struct {
	d          Deps
	scratchDir string
	logf       func(format string, args ...any)
}

func New(d Deps, scratchDir string, logf func(format string, args ...any)) Usecase {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return Usecase{d: d, scratchDir: scratchDir, logf: logf}
}

type CutInput struct {
	Input   string
	Output  string
	Removes []types.Interval
}

// Cut removes the explicit intervals from the source.
func (u Usecase) Cut(ctx context.Context, in CutInput) error {
	total, err := u.d.Encoder.ProbeDuration(ctx, in.Input)
	if err != nil {
		return err
	}
	return u.run(ctx, in.Input, in.Output, in.Removes, total)
}

type EventInput struct {
	Input       string
	Output      string
	Description string
}

// KeepEvent asks the semantic collaborator where the described event happens
// and keeps only that window; everything outside it is removed.
func (u Usecase) KeepEvent(ctx context.Context, in EventInput) error {
	total, err := u.d.Encoder.ProbeDuration(ctx, in.Input)
	if err != nil {
		return err
	}

	windows, err := u.findWindows(ctx, in.Input, keepInstruction(in.Description))
	if err != nil {
		return err
	}
	keep := windows[0]
	if err := keep.Validate(); err != nil {
		return fmt.Errorf("analysis window %s: %w", keep, err)
	}
	u.logf("keeping %s", keep)

	return u.run(ctx, in.Input, in.Output, segments.KeepRemoveSet(keep, total), total)
}

// RemoveEvents asks the semantic collaborator for every occurrence of the
// described event and removes them all.
func (u Usecase) RemoveEvents(ctx context.Context, in EventInput) error {
	total, err := u.d.Encoder.ProbeDuration(ctx, in.Input)
	if err != nil {
		return err
	}

	windows, err := u.findWindows(ctx, in.Input, removeInstruction(in.Description))
	if err != nil {
		return err
	}
	u.logf("removing %d windows", len(windows))

	return u.run(ctx, in.Input, in.Output, windows, total)
}

func (u Usecase) findWindows(ctx context.Context, input, instruction string) ([]types.Interval, error) {
	u.logf("asking collaborator: %s", instruction)
	text, err := u.d.Finder.FindTimestamps(ctx, input, instruction)
	if err != nil {
		return nil, err
	}
	return timestamps.Extract(text)
}

func (u Usecase) run(ctx context.Context, input, output string, removes []types.Interval, total float64) error {
	p := pipeline.New(u.d.Encoder, u.scratchDir, u.logf)
	return p.Run(ctx, input, output, removes, total)
}

func keepInstruction(description string) string {
	return "Find when the following event happens in the video: " + description +
		". Answer with the start and end timestamps of the event in HH:MM:SS format."
}

func removeInstruction(description string) string {
	return "Find every occurrence of the following in the video: " + description +
		". For each occurrence answer with its start and end timestamps in HH:MM:SS format."
}
