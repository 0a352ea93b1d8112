// core/diversity/distance.go
package diversity

import (
	"sort"
	"sync"

	"vsq-core/seqs"
)

// Histogram computes the pairwise mismatch-count distribution over all
// unordered sequence pairs in an aligned collection: distance -> number of
// pairs. Pairs of distinct values are weighted by the product of their
// multiplicities; every duplicate group of size m contributes C(m,2) pairs
// at distance 0.
//
// threads > 1 fans the distinct-pair scan across a worker pool; the merge
// is a sum of per-worker histograms, so the result is identical to the
// serial scan.
func Histogram(c *seqs.Collection, threads int) (map[int]int, error) {
	if _, err := c.AlignmentLength(); err != nil {
		return nil, err
	}

	freq := c.Frequencies()
	vals := make([]string, 0, len(freq))
	for v := range freq {
		vals = append(vals, v)
	}
	sort.Strings(vals)

	hist := make(map[int]int)
	for _, v := range vals {
		if m := freq[v]; m >= 2 {
			hist[0] += m * (m - 1) / 2
		}
	}

	if threads < 1 {
		threads = 1
	}
	if threads == 1 || len(vals) < 2 {
		for i := 0; i < len(vals); i++ {
			for j := i + 1; j < len(vals); j++ {
				d := mismatchCount(vals[i], vals[j])
				hist[d] += freq[vals[i]] * freq[vals[j]]
			}
		}
		return hist, nil
	}

	jobs := make(chan int, threads*2)
	parts := make(chan map[int]int, threads)
	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			local := make(map[int]int)
			for i := range jobs {
				for j := i + 1; j < len(vals); j++ {
					d := mismatchCount(vals[i], vals[j])
					local[d] += freq[vals[i]] * freq[vals[j]]
				}
			}
			parts <- local
		}()
	}
	for i := 0; i < len(vals); i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	close(parts)
	for local := range parts {
		for d, n := range local {
			hist[d] += n
		}
	}
	return hist, nil
}

// SortedDistances returns the histogram keys in ascending order.
func SortedDistances(hist map[int]int) []int {
	keys := make([]int, 0, len(hist))
	for k := range hist {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func mismatchCount(a, b string) int {
	d := 0
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}
