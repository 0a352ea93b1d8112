// core/diversity/entropy.go
package diversity

import (
	"math"

	"vsq-core/seqs"
)

// Entropy computes per-column Shannon entropy (natural log) of an aligned
// collection, keyed by 1-based position. Works on the DNA role, falling
// back to AA; stop-codon '*' symbols are excluded from the column counts.
func Entropy(c *seqs.Collection) (map[int]float64, error) {
	length, err := c.AlignmentLength()
	if err != nil {
		return nil, err
	}
	vals := c.Values()

	out := make(map[int]float64, length)
	counts := make(map[byte]int, 8)
	for col := 0; col < length; col++ {
		for k := range counts {
			delete(counts, k)
		}
		total := 0
		for _, v := range vals {
			if v[col] == '*' {
				continue
			}
			counts[v[col]]++
			total++
		}
		h := 0.0
		for _, cnt := range counts {
			p := float64(cnt) / float64(total)
			h -= p * math.Log(p)
		}
		out[col+1] = h
	}
	return out, nil
}
