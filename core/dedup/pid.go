// core/dedup/pid.go
package dedup

import (
	"sort"
	"strconv"
	"strings"

	"vsq-core/seqs"
)

// DefaultPIDFold is the count ratio above which a near-identical Primer-ID
// is considered a resampling artifact of its neighbor.
const DefaultPIDFold = 10

type pidRead struct {
	id    string
	pid   string
	count int
}

// ParsePID splits a Primer-ID-tagged identifier of the form "<PID>_<count>".
func ParsePID(id string) (pid string, count int, ok bool) {
	i := strings.LastIndexByte(id, '_')
	if i <= 0 || i == len(id)-1 {
		return "", 0, false
	}
	n, err := strconv.Atoi(id[i+1:])
	if err != nil || n < 0 {
		return "", 0, false
	}
	return id[:i], n, true
}

// FilterSimilarPID removes presumed Primer-ID resampling artifacts.
// Sequences are grouped by identical nucleotide payload; within a group,
// whenever two Primer-IDs differ by at most one position and one read
// count is at least foldCutoff times the other, every read carrying the
// minority Primer-ID is discarded. Identifiers that do not encode a
// Primer-ID are kept untouched.
func FilterSimilarPID(c *seqs.Collection, foldCutoff int) (*seqs.Collection, error) {
	if c.Len() == 0 {
		return nil, seqs.ErrEmptyInput
	}
	if foldCutoff < 1 {
		foldCutoff = DefaultPIDFold
	}

	groups := make(map[string][]pidRead)
	var keep []string
	for _, id := range c.IDs() {
		pid, count, ok := ParsePID(id)
		if !ok {
			keep = append(keep, id)
			continue
		}
		payload := c.DNA[id]
		groups[payload] = append(groups[payload], pidRead{id: id, pid: pid, count: count})
	}

	payloads := make([]string, 0, len(groups))
	for p := range groups {
		payloads = append(payloads, p)
	}
	sort.Strings(payloads)

	for _, payload := range payloads {
		reads := groups[payload]
		discard := make([]bool, len(reads))
		for i := 0; i < len(reads); i++ {
			for j := i + 1; j < len(reads); j++ {
				d, ok := Hamming(reads[i].pid, reads[j].pid)
				if !ok || d > 1 {
					continue
				}
				switch {
				case reads[i].count >= foldCutoff*reads[j].count:
					discard[j] = true
				case reads[j].count >= foldCutoff*reads[i].count:
					discard[i] = true
				}
			}
		}
		for i, r := range reads {
			if !discard[i] {
				keep = append(keep, r.id)
			}
		}
	}
	return c.Subset(keep), nil
}
