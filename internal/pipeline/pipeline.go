// Package pipeline drives one edit operation through the external encoder:
// plan the retain set, extract each retained interval, concatenate the
// extracts into the final output.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"segcut/internal/domain/segments"
	"segcut/internal/ports"
	"segcut/internal/scratch"
	"segcut/internal/types"
)

var (
	// ErrExtractionFailed reports an encoder failure while extracting a
	// retained interval. The whole operation aborts; no partial output is
	// written.
	ErrExtractionFailed = errors.New("segment extraction failed")
	// ErrConcatenationFailed reports an encoder failure while merging the
	// extracted segments.
	ErrConcatenationFailed = errors.New("segment concatenation failed")
)

// Phase is the pipeline's position in one operation. Done and Failed are the
// only terminal phases; Failed is reachable from any other phase.
type Phase int

const (
	PhasePlanning Phase = iota
	PhaseExtracting
	PhaseConcatenating
	PhaseDone
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhasePlanning:
		return "planning"
	case PhaseExtracting:
		return "extracting"
	case PhaseConcatenating:
		return "concatenating"
	case PhaseDone:
		return "done"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Pipeline executes edit operations sequentially against one encoder. It is
// not safe for concurrent use; run one Pipeline per operation.
type Pipeline struct {
	enc        ports.Encoder
	scratchDir string
	logf       func(format string, args ...any)
	phase      Phase
}

func New(enc ports.Encoder, scratchDir string, logf func(format string, args ...any)) *Pipeline {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Pipeline{enc: enc, scratchDir: scratchDir, logf: logf}
}

// Phase returns the phase the last Run ended in.
func (p *Pipeline) Phase() Phase { return p.phase }

// Run removes the given intervals from input and writes the result to output.
// totalDuration is the probed source duration in seconds. Encoder calls are
// strictly sequential; scratch artifacts are released on every exit path.
//
// Even when the retain set is the whole source, the copy still goes through
// the encoder so the output path and container contract always holds.
func (p *Pipeline) Run(ctx context.Context, input, output string, removes []types.Interval, totalDuration float64) error {
	p.phase = PhasePlanning
	retain, err := segments.Plan(removes, totalDuration)
	if err != nil {
		return p.fail(err)
	}
	p.logf("plan: %d intervals to retain of %.3fs source", len(retain), totalDuration)

	ws, err := scratch.New(p.scratchDir, filepath.Ext(input))
	if err != nil {
		return p.fail(err)
	}
	defer ws.Release()

	p.phase = PhaseExtracting
	parts := make([]string, 0, len(retain))
	for i, iv := range retain {
		dst := ws.Segment(i)
		p.logf("extract %d/%d: %s", i+1, len(retain), iv)
		if err := p.enc.ExtractSegment(ctx, input, iv.Start, iv.End, dst); err != nil {
			return p.fail(fmt.Errorf("%w: interval %s: %v", ErrExtractionFailed, iv, err))
		}
		parts = append(parts, dst)
	}

	p.phase = PhaseConcatenating
	manifest := ws.Manifest()
	if err := writeManifest(manifest, parts); err != nil {
		return p.fail(err)
	}
	p.logf("concat: %d segments -> %s", len(parts), output)
	if err := p.enc.Concat(ctx, manifest, output); err != nil {
		return p.fail(fmt.Errorf("%w: %v", ErrConcatenationFailed, err))
	}

	p.phase = PhaseDone
	return nil
}

func (p *Pipeline) fail(err error) error {
	p.phase = PhaseFailed
	return err
}

// writeManifest writes the concat-demuxer manifest: one "file '<path>'" line
// per artifact, in retain-interval order. Line order is the output order.
func writeManifest(path string, parts []string) error {
	var b strings.Builder
	for _, p := range parts {
		fmt.Fprintf(&b, "file '%s'\n", escapeManifestPath(p))
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write concat manifest: %w", err)
	}
	return nil
}

// escapeManifestPath quotes single quotes the way the concat demuxer expects.
func escapeManifestPath(p string) string {
	return strings.ReplaceAll(p, "'", `'\''`)
}
