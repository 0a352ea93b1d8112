// core/locator/locator.go

// Package locator maps a query sequence onto a reference genome's
// coordinate system using the external pairwise aligner.
package locator

import (
	"context"

	"vsq-core/align"
	"vsq-core/refgenome"
	"vsq-core/seqs"
)

// Orientations of the canonical placement.
const (
	Forward = "+"
	Reverse = "-"
)

// Result places one query on a reference. Start/End are 1-based inclusive
// reference coordinates; Similarity is percent identity over the aligned
// span excluding flanking gaps.
type Result struct {
	ID           string  `json:"sequence_identifier"`
	RefName      string  `json:"reference_id"`
	Orientation  string  `json:"direction"`
	Start        int     `json:"start"`
	End          int     `json:"end"`
	Similarity   float64 `json:"percent_similarity"`
	Indel        bool    `json:"contains_indel"`
	AlignedQuery string  `json:"aligned_query"`
	AlignedRef   string  `json:"aligned_reference"`
}

// Locate aligns query against ref in both its original and
// reverse-complement orientation and keeps the orientation with the higher
// percent similarity; ties favor forward. Aligner failure is fatal to the
// call (no retry).
func Locate(ctx context.Context, al align.Aligner, id, query string, ref refgenome.Reference) (Result, error) {
	fwdAln, err := al.Align(ctx, query, ref.Seq)
	if err != nil {
		return Result{}, err
	}
	fwd, err := derive(fwdAln)
	if err != nil {
		return Result{}, err
	}

	revAln, err := al.Align(ctx, seqs.RevComp(query), ref.Seq)
	if err != nil {
		return Result{}, err
	}
	rev, err := derive(revAln)
	if err != nil {
		return Result{}, err
	}

	best := fwd
	best.Orientation = Forward
	if rev.Similarity > fwd.Similarity {
		best = rev
		best.Orientation = Reverse
	}
	best.ID = id
	best.RefName = ref.Name
	return best, nil
}

// derive computes coordinates, similarity and the indel flag from one
// pairwise alignment. The query's leading/trailing gap columns are
// excluded from every measure.
func derive(a align.Result) (Result, error) {
	if err := a.Validate(); err != nil {
		return Result{}, err
	}
	q, r := a.Query, a.Ref

	qs := 0
	for qs < len(q) && q[qs] == align.Gap {
		qs++
	}
	qe := len(q) - 1
	for qe >= 0 && q[qe] == align.Gap {
		qe--
	}
	if qe < qs {
		// Query aligned to nothing but gaps.
		return Result{AlignedQuery: q, AlignedRef: r}, nil
	}

	// Reference coordinate of a column: number of non-gap reference
	// symbols up to and including it.
	pos := 0
	start, end := 0, 0
	matches := 0
	indel := false
	for i := 0; i <= qe; i++ {
		if r[i] != align.Gap {
			pos++
		}
		if i < qs {
			continue
		}
		if i == qs {
			start = pos
		}
		if q[i] == r[i] && q[i] != align.Gap {
			matches++
		}
		if q[i] == align.Gap || r[i] == align.Gap {
			indel = true
		}
	}
	end = pos
	if start < 1 {
		start = 1
	}

	span := qe - qs + 1
	return Result{
		Start:        start,
		End:          end,
		Similarity:   100 * float64(matches) / float64(span),
		Indel:        indel,
		AlignedQuery: q,
		AlignedRef:   r,
	}, nil
}
