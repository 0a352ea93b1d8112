// internal/output/diversity.go
package output

import (
	"fmt"
	"io"

	"vsq-core/diversity"
)

// DiversityReport aggregates every per-alignment diversity measure.
// Pi is nil when the alignment is too degenerate to define nucleotide
// diversity (fewer than two comparable bases in every column).
type DiversityReport struct {
	Title           string            `json:"title"`
	Sequences       int               `json:"sequences"`
	AlignmentLength int               `json:"alignment_length"`
	Consensus       string            `json:"consensus,omitempty"`
	Pi              *float64          `json:"nucleotide_diversity"`
	VariantCutoff   int               `json:"minority_variant_cutoff"`
	Summary         diversity.Summary `json:"summary"`
	Entropy         map[int]float64   `json:"entropy_by_position"`
	Distances       map[int]int       `json:"distance_histogram"`
}

// WriteDiversityText writes the key/value block followed by the pairwise
// distance histogram in ascending distance order.
func WriteDiversityText(w io.Writer, r *DiversityReport) error {
	pi := "NA"
	if r.Pi != nil {
		pi = fmt.Sprintf("%.5f", *r.Pi)
	}
	_, err := fmt.Fprintf(w,
		"title\t%s\nsequences\t%d\nalignment_length\t%d\nnucleotide_diversity\t%s\nminority_variant_cutoff\t%d\nmean_entropy\t%.5f\nentropy_variance\t%.5f\nmean_distance\t%.5f\n",
		r.Title, r.Sequences, r.AlignmentLength, pi, r.VariantCutoff,
		r.Summary.MeanEntropy, r.Summary.EntropyVariance, r.Summary.MeanDistance)
	if err != nil {
		return err
	}
	if r.Consensus != "" {
		if _, err := fmt.Fprintf(w, "consensus\t%s\n", r.Consensus); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "\ndistance\tcount"); err != nil {
		return err
	}
	for _, d := range diversity.SortedDistances(r.Distances) {
		if _, err := fmt.Fprintf(w, "%d\t%d\n", d, r.Distances[d]); err != nil {
			return err
		}
	}
	return nil
}

func WriteDiversityJSON(w io.Writer, r *DiversityReport) error {
	return EncodePretty(w, r)
}
