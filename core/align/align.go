// core/align/align.go

// Package align defines the contract with the external pairwise alignment
// collaborator. The toolkit never aligns sequences itself; implementations
// wrap an external tool (see internal/exalign) or a test stub.
package align

import (
	"context"
	"errors"
	"fmt"
)

// Gap is the alignment gap symbol.
const Gap byte = '-'

// ErrUnavailable reports that the external aligner is missing or failed.
// Callers treat it as fatal to the requesting operation; it is never
// retried.
var ErrUnavailable = errors.New("alignment collaborator unavailable")

// Result is one pairwise alignment: two equal-length strings over the
// input alphabets plus Gap.
type Result struct {
	Query string
	Ref   string
}

// Validate checks the equal-length invariant.
func (r Result) Validate() error {
	if len(r.Query) != len(r.Ref) {
		return fmt.Errorf("aligned lengths differ: %d vs %d", len(r.Query), len(r.Ref))
	}
	if len(r.Query) == 0 {
		return errors.New("empty alignment")
	}
	return nil
}

// Aligner produces a pairwise alignment of query against ref.
type Aligner interface {
	Align(ctx context.Context, query, ref string) (Result, error)
}
