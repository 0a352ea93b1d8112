// core/diversity/summary.go
package diversity

import (
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the column-wise and pairwise statistics into a few
// headline numbers for reports.
type Summary struct {
	MeanEntropy     float64 `json:"mean_entropy"`
	EntropyVariance float64 `json:"entropy_variance"`
	MeanDistance    float64 `json:"mean_distance"`
}

// Summarize reduces an entropy map and a distance histogram. Empty inputs
// produce zero fields rather than NaN.
func Summarize(entropy map[int]float64, hist map[int]int) Summary {
	var s Summary
	if len(entropy) > 0 {
		xs := make([]float64, 0, len(entropy))
		for _, h := range entropy {
			xs = append(xs, h)
		}
		s.MeanEntropy = stat.Mean(xs, nil)
		if len(xs) > 1 {
			s.EntropyVariance = stat.Variance(xs, nil)
		}
	}
	if len(hist) > 0 {
		xs := make([]float64, 0, len(hist))
		ws := make([]float64, 0, len(hist))
		total := 0
		for d, n := range hist {
			xs = append(xs, float64(d))
			ws = append(ws, float64(n))
			total += n
		}
		if total > 0 {
			s.MeanDistance = stat.Mean(xs, ws)
		}
	}
	return s
}
