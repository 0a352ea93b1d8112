// core/diversity/pi.go
package diversity

import (
	"errors"
	"fmt"
	"math"

	"vsq-core/seqs"
)

// ErrDegenerate is returned when a statistic is undefined on the given
// input, e.g. no alignment column retains two comparable bases.
var ErrDegenerate = errors.New("statistic undefined on input")

// Pi computes nucleotide pairwise diversity over an aligned collection.
// Per column, gaps and non-ACGT symbols are dropped and columns with fewer
// than two remaining bases are skipped; the result is the ratio of summed
// pairwise mismatches to summed pair counts, rounded to 5 decimals.
func Pi(c *seqs.Collection) (float64, error) {
	length, err := c.AlignmentLength()
	if err != nil {
		return 0, err
	}
	vals := c.Values()

	var mismatches, pairs float64
	for col := 0; col < length; col++ {
		var a, cc, g, t float64
		for _, v := range vals {
			switch v[col] {
			case 'A':
				a++
			case 'C':
				cc++
			case 'G':
				g++
			case 'T':
				t++
			}
		}
		n := a + cc + g + t
		if n < 2 {
			continue
		}
		mismatches += a*cc + a*t + a*g + cc*t + cc*g + t*g
		pairs += n * (n - 1) / 2
	}
	if pairs == 0 {
		return 0, fmt.Errorf("pi: no column with two comparable bases: %w", ErrDegenerate)
	}
	return math.Round(mismatches/pairs*1e5) / 1e5, nil
}
