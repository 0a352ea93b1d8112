// core/dedup/editdist.go
package dedup

// Hamming returns the mismatch count between two equal-length strings.
// ok is false when the lengths differ.
func Hamming(a, b string) (d int, ok bool) {
	if len(a) != len(b) {
		return 0, false
	}
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			d++
		}
	}
	return d, true
}

// WithinEditDistance reports whether the Levenshtein distance between a
// and b is at most max. The scan is banded, so cost is O(max * len).
func WithinEditDistance(a, b string, max int) bool {
	if max < 0 {
		return false
	}
	la, lb := len(a), len(b)
	if la-lb > max || lb-la > max {
		return false
	}
	// prev[j] = edit distance between a[:i] and b[:j]
	prev := make([]int, lb+1)
	cur := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		cur[0] = i
		rowMin := cur[0]
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			d := prev[j-1] + cost
			if v := prev[j] + 1; v < d {
				d = v
			}
			if v := cur[j-1] + 1; v < d {
				d = v
			}
			cur[j] = d
			if d < rowMin {
				rowMin = d
			}
		}
		if rowMin > max {
			return false
		}
		prev, cur = cur, prev
	}
	return prev[lb] <= max
}
