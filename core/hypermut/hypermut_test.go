// core/hypermut/hypermut_test.go
package hypermut

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"vsq-core/seqs"
)

// Reference backbone: ten GAA motifs (G followed by purine then A/G/T)
// spaced by TT, then five control Gs each followed by C.
const backbone = "GAATTGAATTGAATTGAATTGAATTGAATTGAATTGAATTGAATTGAATT" + "GCGCGCGCGC"

// hypermutant converts nine of the ten motif Gs (positions 0,5,...,40) to A.
func hypermutant() string {
	b := []byte(backbone)
	for i := 0; i < 9; i++ {
		b[i*5] = 'A'
	}
	return string(b)
}

func testCollection() *seqs.Collection {
	c := seqs.New("hm")
	for i := 0; i < 22; i++ {
		c.DNA[fmt.Sprintf("clean%02d", i)] = backbone
	}
	c.DNA["mut01"] = hypermutant()
	c.DNA["mut02"] = hypermutant()
	return c
}

func TestAnalyzeClassifiesSyntheticHypermutants(t *testing.T) {
	a, err := Analyze(testCollection(), DefaultFold)
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Records) != 24 {
		t.Fatalf("records = %d, want 24", len(a.Records))
	}
	if a.Hypermutated.Len() != 2 {
		t.Fatalf("hypermutated = %d, want 2", a.Hypermutated.Len())
	}
	if a.Clean.Len() != 22 {
		t.Fatalf("clean = %d, want 22", a.Clean.Len())
	}
	for _, id := range []string{"mut01", "mut02"} {
		if _, ok := a.Hypermutated.DNA[id]; !ok {
			t.Errorf("%s missing from hypermutated subset", id)
		}
	}

	byID := make(map[string]Record, len(a.Records))
	for _, r := range a.Records {
		byID[r.ID] = r
	}

	// Mutant tuple: 9 of 10 motif Gs converted, controls untouched.
	m := byID["mut01"]
	if m.MotifMut != 9 || m.MotifTotal != 10 || m.ControlMut != 0 || m.ControlTotal != 5 {
		t.Fatalf("mutant tuple = (%d,%d,%d,%d), want (9,10,0,5)",
			m.MotifMut, m.MotifTotal, m.ControlMut, m.ControlTotal)
	}
	// (9/10)/(0/5) is infinite by construction; it must propagate, not panic.
	if !math.IsInf(m.RateRatio, 1) {
		t.Errorf("mutant rate ratio = %v, want +Inf", m.RateRatio)
	}
	// Hand-computed two-tailed Fisher p for [[1,9],[5,0]]: 10/C(15,9).
	wantP := 10.0 / 5005.0
	if math.Abs(m.P-wantP) > 1e-9 {
		t.Errorf("mutant p = %v, want %v", m.P, wantP)
	}
	if !m.Hypermutated {
		t.Error("mutant not classified hypermutated")
	}

	cl := byID["clean00"]
	if cl.MotifMut != 0 || cl.MotifTotal != 10 || cl.ControlMut != 0 || cl.ControlTotal != 5 {
		t.Fatalf("clean tuple = (%d,%d,%d,%d), want (0,10,0,5)",
			cl.MotifMut, cl.MotifTotal, cl.ControlMut, cl.ControlTotal)
	}
	if cl.Hypermutated {
		t.Error("clean sequence classified hypermutated")
	}

	// 24 > 20 sequences: the Poisson outlier cutoff applies. lambda =
	// 18/24 = 0.75; the first enriched count is the mutants' own 9.
	if a.OutlierCutoff != 9 {
		t.Errorf("outlier cutoff = %d, want 9", a.OutlierCutoff)
	}
}

func TestAnalyzeSmallCollectionSkipsPoisson(t *testing.T) {
	c := seqs.New("small")
	for i := 0; i < 5; i++ {
		c.DNA[fmt.Sprintf("s%d", i)] = backbone
	}
	a, err := Analyze(c, DefaultFold)
	if err != nil {
		t.Fatal(err)
	}
	if a.OutlierCutoff != 0 {
		t.Fatalf("outlier cutoff = %d, want 0 for small collections", a.OutlierCutoff)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	if _, err := Analyze(seqs.New("e"), DefaultFold); err == nil {
		t.Fatal("expected error on empty collection")
	}
}

func TestClassifyPositionsGapStripping(t *testing.T) {
	// Gaps in the consensus must not break motif detection; positions map
	// back to alignment columns.
	motif, control := classifyPositions("G-AA" + "TT" + "GC")
	if len(motif) != 1 || motif[0] != 0 {
		t.Fatalf("motif = %v, want [0]", motif)
	}
	if len(control) != 1 || control[0] != 6 {
		t.Fatalf("control = %v, want [6]", control)
	}
}

func TestOutlierCutoffFallsBackToMax(t *testing.T) {
	// A flat distribution where no count reaches fold * N * PMF: the scan
	// exhausts at the maximum observed count and returns it.
	records := make([]Record, 0, 21)
	for i := 0; i < 21; i++ {
		records = append(records, Record{MotifMut: i})
	}
	got := outlierCutoff(records, 1e9)
	if got != 20 {
		t.Fatalf("fallback cutoff = %d, want 20", got)
	}
}

func TestBackboneShape(t *testing.T) {
	if len(backbone) != 60 {
		t.Fatalf("backbone length = %d, want 60", len(backbone))
	}
	if strings.Count(backbone, "G") != 15 {
		t.Fatalf("backbone G count = %d, want 15", strings.Count(backbone, "G"))
	}
}
