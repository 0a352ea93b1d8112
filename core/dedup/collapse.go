// core/dedup/collapse.go
package dedup

import (
	"fmt"
	"sort"

	"vsq-core/seqs"
)

// DefaultCollapseDistance is the edit distance at or below which two
// distinct sequence values are merged.
const DefaultCollapseDistance = 1

// Collapse clusters the distinct sequence values of a collection by edit
// distance. Values are visited by descending frequency (ties broken by
// sequence order, so the result is deterministic); any later value within
// cutoff edits of a surviving representative is folded into it, its
// frequency aggregated. Representatives are named "<rank>_<frequency>".
func Collapse(c *seqs.Collection, cutoff int) (*seqs.Collection, error) {
	if c.Len() == 0 {
		return nil, seqs.ErrEmptyInput
	}
	if cutoff < 0 {
		cutoff = DefaultCollapseDistance
	}

	freq := c.Frequencies()
	vals := make([]string, 0, len(freq))
	for v := range freq {
		vals = append(vals, v)
	}
	sort.Slice(vals, func(i, j int) bool {
		if freq[vals[i]] != freq[vals[j]] {
			return freq[vals[i]] > freq[vals[j]]
		}
		return vals[i] < vals[j]
	})

	type rep struct {
		seq  string
		freq int
	}
	var reps []rep
	for _, v := range vals {
		merged := false
		for i := range reps {
			if WithinEditDistance(v, reps[i].seq, cutoff) {
				reps[i].freq += freq[v]
				merged = true
				break
			}
		}
		if !merged {
			reps = append(reps, rep{seq: v, freq: freq[v]})
		}
	}

	// Re-rank by aggregated frequency.
	sort.SliceStable(reps, func(i, j int) bool { return reps[i].freq > reps[j].freq })

	out := seqs.New(c.Title)
	out.File = c.File
	for i, r := range reps {
		out.DNA[fmt.Sprintf("%d_%d", i+1, r.freq)] = r.seq
	}
	return out, nil
}
