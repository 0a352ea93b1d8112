// internal/exalign/exalign.go

// Package exalign adapts an external command-line aligner (muscle by
// default) to the align.Aligner interface. Each call writes a two-record
// FASTA to a temp dir, runs the tool, and reads the aligned pair back.
package exalign

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"vsq-core/align"
	"vsq-core/fasta"
)

const (
	queryID = "query"
	refID   = "reference"
)

// Tool is an align.Aligner backed by an executable on PATH.
type Tool struct {
	path string
}

// New resolves name on PATH. A missing binary, like any later failure of
// the tool itself, is reported through align.ErrUnavailable.
func New(name string) (*Tool, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q not found on PATH", align.ErrUnavailable, name)
	}
	return &Tool{path: path}, nil
}

func (t *Tool) Align(ctx context.Context, query, ref string) (align.Result, error) {
	dir, err := os.MkdirTemp("", "vsq-align-*")
	if err != nil {
		return align.Result{}, err
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "in.fasta")
	out := filepath.Join(dir, "out.fasta")
	payload := fmt.Sprintf(">%s\n%s\n>%s\n%s\n", queryID, query, refID, ref)
	if err := os.WriteFile(in, []byte(payload), 0o600); err != nil {
		return align.Result{}, err
	}

	cmd := exec.CommandContext(ctx, t.path, "-align", in, "-output", out)
	if msg, err := cmd.CombinedOutput(); err != nil {
		if ctx.Err() != nil {
			return align.Result{}, ctx.Err()
		}
		return align.Result{}, fmt.Errorf("%w: %s exited: %v: %s", align.ErrUnavailable, t.path, err, msg)
	}

	f, err := os.Open(out)
	if err != nil {
		return align.Result{}, fmt.Errorf("%w: %s produced no output: %v", align.ErrUnavailable, t.path, err)
	}
	defer f.Close()
	recs, err := fasta.Read(f)
	if err != nil {
		return align.Result{}, err
	}

	var res align.Result
	for _, r := range recs {
		switch r.ID {
		case queryID:
			res.Query = r.Seq
		case refID:
			res.Ref = r.Seq
		}
	}
	if err := res.Validate(); err != nil {
		return align.Result{}, fmt.Errorf("unusable alignment from %s: %w", t.path, err)
	}
	return res, nil
}
