// Package scratch manages the temporary artifacts of a single edit operation.
package scratch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Workspace owns the scratch artifacts of one operation. Every path it issues
// lives under a directory named by a generated operation ID, so concurrent
// operations can never collide. Paths issued by a Workspace must not be used
// after Release.
type Workspace struct {
	id  string
	dir string
	ext string
}

// New creates an operation-scoped scratch directory under baseDir. ext is the
// container extension for segment artifacts ("" defaults to ".mp4"). An empty
// baseDir falls back to the system temp directory.
func New(baseDir, ext string) (*Workspace, error) {
	if baseDir == "" {
		baseDir = os.TempDir()
	}
	if ext == "" {
		ext = ".mp4"
	}
	id := uuid.NewString()
	dir := filepath.Join(baseDir, "segcut-"+id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	return &Workspace{id: id, dir: dir, ext: ext}, nil
}

// ID returns the operation identifier folded into every artifact path.
func (w *Workspace) ID() string { return w.id }

// Dir returns the workspace directory.
func (w *Workspace) Dir() string { return w.dir }

// Segment returns the path for the i-th extracted segment.
func (w *Workspace) Segment(i int) string {
	return filepath.Join(w.dir, fmt.Sprintf("segment-%03d%s", i, w.ext))
}

// Manifest returns the path of the concatenation manifest.
func (w *Workspace) Manifest() string {
	return filepath.Join(w.dir, "concat.txt")
}

// Release deletes every artifact the workspace issued. Already-missing files
// are fine. Meant to run via defer so cleanup happens on every exit path.
func (w *Workspace) Release() error {
	if err := os.RemoveAll(w.dir); err != nil {
		return fmt.Errorf("release scratch dir: %w", err)
	}
	return nil
}
