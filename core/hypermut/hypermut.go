// core/hypermut/hypermut.go
package hypermut

import (
	"vsq-core/consensus"
	"vsq-core/seqs"
	"vsq-core/stats"
)

// Alpha is the Fisher p-value threshold for calling a sequence
// hypermutated.
const Alpha = 0.05

// DefaultFold is the enrichment multiplier for the Poisson outlier cutoff
// applied to collections larger than poissonMinSeqs sequences.
const DefaultFold = 20.0

// poissonMinSeqs is the collection size above which the per-sequence
// mutation-count distribution is dense enough to fit a Poisson model.
const poissonMinSeqs = 20

// Record holds the per-sequence APOBEC3G/F statistics: mutated and usable
// site counts at motif (a,b) and control (c,d) positions, their rate
// ratio, and the two-tailed Fisher p-value.
type Record struct {
	ID           string  `json:"sequence_id"`
	MotifMut     int     `json:"a"`
	MotifTotal   int     `json:"b"`
	ControlMut   int     `json:"c"`
	ControlTotal int     `json:"d"`
	RateRatio    float64 `json:"rate_ratio"`
	P            float64 `json:"p_value"`
	Hypermutated bool    `json:"hypermutated"`
}

// Analysis is the outcome of one detector run.
type Analysis struct {
	Records []Record
	// Hypermutated and Clean partition the input collection.
	Hypermutated *seqs.Collection
	Clean        *seqs.Collection
	// OutlierCutoff is the Poisson mutation-count cutoff applied on top of
	// the Fisher test, or 0 when the collection was too small to fit one.
	OutlierCutoff int
}

// Analyze scans an aligned nucleotide collection for APOBEC3G/F-induced
// G->A hypermutation. The consensus (majority 0.5) serves as the motif
// reference: gap-stripped trinucleotides matching G[AG][AGT] mark motif
// positions, all other G positions are controls. Per sequence, G->A
// conversions at each position class feed a 2x2 Fisher exact test; p <
// Alpha marks the sequence hypermutated. Collections larger than 20
// sequences additionally apply a Poisson outlier cutoff with the given
// fold multiplier (use DefaultFold for the standard behavior): sequences
// whose motif mutation count exceeds the cutoff are flagged regardless of
// their p-value.
func Analyze(c *seqs.Collection, fold float64) (*Analysis, error) {
	cons, err := consensus.Call(c, 0.5)
	if err != nil {
		return nil, err
	}
	motifCols, controlCols := classifyPositions(cons)

	ids := c.IDs()
	records := make([]Record, 0, len(ids))
	for _, id := range ids {
		seq := c.DNA[id]
		a, b := countMutations(seq, motifCols)
		cm, cd := countMutations(seq, controlCols)
		rec := Record{
			ID: id, MotifMut: a, MotifTotal: b, ControlMut: cm, ControlTotal: cd,
		}
		// b=0 or d=0 leaves the ratio undefined; propagate the non-finite
		// value instead of failing the run.
		rec.RateRatio = (float64(a) / float64(b)) / (float64(cm) / float64(cd))
		rec.P = stats.FisherExact(b-a, a, cd-cm, cm)
		rec.Hypermutated = rec.P < Alpha
		records = append(records, rec)
	}

	cutoff := 0
	if len(records) > poissonMinSeqs {
		cutoff = outlierCutoff(records, fold)
		for i := range records {
			if records[i].MotifMut > cutoff {
				records[i].Hypermutated = true
			}
		}
	}

	var hyperIDs, cleanIDs []string
	for _, r := range records {
		if r.Hypermutated {
			hyperIDs = append(hyperIDs, r.ID)
		} else {
			cleanIDs = append(cleanIDs, r.ID)
		}
	}
	return &Analysis{
		Records:       records,
		Hypermutated:  c.Subset(hyperIDs),
		Clean:         c.Subset(cleanIDs),
		OutlierCutoff: cutoff,
	}, nil
}

// classifyPositions scans the gap-stripped consensus and maps motif and
// control positions back to alignment columns.
func classifyPositions(cons string) (motif, control []int) {
	cols := make([]int, 0, len(cons))
	stripped := make([]byte, 0, len(cons))
	for i := 0; i < len(cons); i++ {
		if cons[i] == '-' {
			continue
		}
		cols = append(cols, i)
		stripped = append(stripped, cons[i])
	}
	for i := 0; i < len(stripped); i++ {
		if stripped[i] != 'G' {
			continue
		}
		if i+2 < len(stripped) && isR(stripped[i+1]) && isD(stripped[i+2]) {
			motif = append(motif, cols[i])
		} else {
			control = append(control, cols[i])
		}
	}
	return motif, control
}

func isR(b byte) bool { return b == 'A' || b == 'G' }
func isD(b byte) bool { return b == 'A' || b == 'G' || b == 'T' }

// countMutations returns (converted-to-A, usable non-gap sites) for the
// sequence at the given alignment columns.
func countMutations(seq string, cols []int) (mut, total int) {
	for _, col := range cols {
		if col >= len(seq) || seq[col] == '-' {
			continue
		}
		total++
		if seq[col] == 'A' {
			mut++
		}
	}
	return mut, total
}

// outlierCutoff fits Poisson(lambda = mean motif mutations) to the
// per-sequence mutation counts and returns the smallest count k whose
// observed frequency is at least fold * N * PMF(lambda, k). The scan is
// bounded by the maximum observed count, which is also the fallback when
// no k qualifies.
func outlierCutoff(records []Record, fold float64) int {
	n := len(records)
	dist := make(map[int]int, n)
	sum := 0
	maxMut := 0
	for _, r := range records {
		dist[r.MotifMut]++
		sum += r.MotifMut
		if r.MotifMut > maxMut {
			maxMut = r.MotifMut
		}
	}
	lambda := float64(sum) / float64(n)
	for k := 1; k <= maxMut; k++ {
		expected := fold * float64(n) * stats.PoissonPMF(lambda, k)
		if float64(dist[k]) >= expected {
			return k
		}
	}
	return maxMut
}
