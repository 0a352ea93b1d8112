// core/variant/cutoff_test.go
package variant

import (
	"fmt"
	"strings"
	"testing"

	"vsq-core/seqs"
)

// variantCollection builds n sequences of the given length where
// variants[col] sequences carry a C instead of the background A at col.
func variantCollection(n, length int, variants map[int]int) *seqs.Collection {
	rows := make([][]byte, n)
	for i := range rows {
		rows[i] = []byte(strings.Repeat("A", length))
	}
	for col, k := range variants {
		for i := 0; i < k; i++ {
			rows[i][col] = 'C'
		}
	}
	c := seqs.New("t")
	for i, r := range rows {
		c.DNA[fmt.Sprintf("s%03d", i)] = string(r)
	}
	return c
}

func TestPoissonCutoffEmpty(t *testing.T) {
	got, err := PoissonCutoff(seqs.New("e"), DefaultErrorRate, DefaultFold)
	if err != nil || got != 0 {
		t.Fatalf("empty: got %d, %v", got, err)
	}
}

func TestPoissonCutoffFindsEnrichedCount(t *testing.T) {
	// 30 sequences, 100 columns, five columns with exactly two variant
	// bases. lambda = 30 * 1e-4 = 0.003: two-variant columns are far above
	// the error expectation, single-variant columns never occur.
	variants := map[int]int{3: 2, 17: 2, 40: 2, 61: 2, 90: 2}
	c := variantCollection(30, 100, variants)
	got, err := PoissonCutoff(c, DefaultErrorRate, DefaultFold)
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Fatalf("cutoff = %d, want 2", got)
	}
}

func TestPoissonCutoffMonotonicInFold(t *testing.T) {
	variants := map[int]int{3: 2, 17: 2, 40: 2, 61: 2, 90: 2}
	c := variantCollection(30, 100, variants)
	prev := 0
	for _, fold := range []float64{1, 20, 1e6, 1e12} {
		got, err := PoissonCutoff(c, DefaultErrorRate, fold)
		if err != nil {
			t.Fatal(err)
		}
		if got < prev {
			t.Fatalf("cutoff decreased from %d to %d at fold %v", prev, got, fold)
		}
		prev = got
	}
}

func TestPoissonCutoffMonomorphic(t *testing.T) {
	c := variantCollection(10, 20, nil)
	got, err := PoissonCutoff(c, DefaultErrorRate, DefaultFold)
	if err != nil || got != 0 {
		t.Fatalf("monomorphic: got %d, %v", got, err)
	}
}
