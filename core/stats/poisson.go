// core/stats/poisson.go
package stats

import "gonum.org/v1/gonum/stat/distuv"

// PoissonPMF returns P(X = k) for X ~ Poisson(lambda). A non-positive rate
// degenerates to the point mass at zero.
func PoissonPMF(lambda float64, k int) float64 {
	if k < 0 {
		return 0
	}
	if lambda <= 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	return distuv.Poisson{Lambda: lambda}.Prob(float64(k))
}

// PoissonPMFTable returns the mass function over the support 0..k.
func PoissonPMFTable(lambda float64, k int) []float64 {
	out := make([]float64, k+1)
	for i := 0; i <= k; i++ {
		out[i] = PoissonPMF(lambda, i)
	}
	return out
}
