// core/stats/fisher.go
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// fisherRelEps absorbs float noise when comparing table probabilities to
// the observed one; without it the two-tailed sum can drop tables that are
// exactly as extreme as the observed table.
const fisherRelEps = 1e-7

// FisherExact returns the two-tailed p-value of Fisher's exact test for the
// 2x2 contingency table
//
//	[ n11 n12 ]
//	[ n21 n22 ]
//
// using the summation definition: the sum of the probabilities of all
// tables with the same margins that are no more likely than the observed
// table. All cells must be non-negative.
func FisherExact(n11, n12, n21, n22 int) float64 {
	r1 := n11 + n12
	r2 := n21 + n22
	c1 := n11 + n21
	n := r1 + r2
	if n == 0 {
		return 1
	}

	logDenom := combin.LogGeneralizedBinomial(float64(n), float64(c1))
	logProb := func(k int) float64 {
		return combin.LogGeneralizedBinomial(float64(r1), float64(k)) +
			combin.LogGeneralizedBinomial(float64(r2), float64(c1-k)) -
			logDenom
	}

	lo := 0
	if c1-r2 > 0 {
		lo = c1 - r2
	}
	hi := c1
	if r1 < c1 {
		hi = r1
	}

	pObs := math.Exp(logProb(n11))
	limit := pObs * (1 + fisherRelEps)
	p := 0.0
	for k := lo; k <= hi; k++ {
		if pk := math.Exp(logProb(k)); pk <= limit {
			p += pk
		}
	}
	if p > 1 {
		p = 1
	}
	return p
}
