// core/variant/cutoff.go
package variant

import (
	"vsq-core/seqs"
	"vsq-core/stats"
)

// Defaults for PoissonCutoff.
const (
	DefaultErrorRate = 0.0001
	DefaultFold      = 20.0
)

// PoissonCutoff estimates the minority-variant inclusion threshold for an
// aligned collection: the smallest mutation count k at which the number of
// alignment columns showing exactly k variant bases exceeds fold times the
// count expected from sequencing error alone (Poisson with rate N*errRate).
// Mutations observed at least k times are treated as real.
//
// Returns 0 for an empty collection. If no k qualifies up to the maximum
// observed variant count, that maximum is returned.
func PoissonCutoff(c *seqs.Collection, errRate, fold float64) (int, error) {
	if c.Len() == 0 {
		return 0, nil
	}
	length, err := c.AlignmentLength()
	if err != nil {
		return 0, err
	}
	vals := c.Values()
	n := len(vals)

	// Distribution of per-column variant counts: column count minus the
	// most frequent symbol's count.
	dist := make(map[int]int, length)
	maxVariant := 0
	counts := make(map[byte]int, 8)
	for col := 0; col < length; col++ {
		for k := range counts {
			delete(counts, k)
		}
		for _, v := range vals {
			counts[v[col]]++
		}
		top := 0
		for _, cnt := range counts {
			if cnt > top {
				top = cnt
			}
		}
		vc := n - top
		dist[vc]++
		if vc > maxVariant {
			maxVariant = vc
		}
	}

	lambda := float64(n) * errRate
	for k := 1; k <= maxVariant; k++ {
		expected := float64(length) * stats.PoissonPMF(lambda, k)
		if float64(dist[k]) >= fold*expected {
			return k, nil
		}
	}
	return maxVariant, nil
}
