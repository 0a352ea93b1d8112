package output

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"vsq-core/hypermut"
	"vsq-core/locator"
	"vsq-core/seqs"
)

func TestWriteLocatorCSV(t *testing.T) {
	results := []locator.Result{{
		ID:           "q1",
		RefName:      "HXB2",
		Orientation:  locator.Forward,
		Start:        3,
		End:          6,
		Similarity:   100,
		Indel:        false,
		AlignedQuery: "--AACG--",
		AlignedRef:   "TTAACGTT",
	}}
	var buf bytes.Buffer
	if err := WriteLocatorCSV(&buf, "run1", results, true); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d: %q", len(lines), buf.String())
	}
	if lines[0] != strings.Join(LocatorHeader, ",") {
		t.Fatalf("header = %q", lines[0])
	}
	want := "run1,q1,HXB2,+,3,6,100.00,false,--AACG--,TTAACGTT"
	if lines[1] != want {
		t.Fatalf("row = %q, want %q", lines[1], want)
	}
}

func TestWriteLocatorCSVNoHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLocatorCSV(&buf, "t", nil, false); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected empty output, got %q", buf.String())
	}
}

func TestWriteLocatorJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLocatorJSON(&buf, "t", "HXB2", nil); err != nil {
		t.Fatal(err)
	}
	var rep LocatorReport
	if err := json.Unmarshal(buf.Bytes(), &rep); err != nil {
		t.Fatal(err)
	}
	if rep.RefName != "HXB2" || rep.Results == nil || len(rep.Results) != 0 {
		t.Fatalf("report = %+v", rep)
	}
}

func hypermutAnalysis() *hypermut.Analysis {
	hyper := seqs.New("t")
	hyper.DNA["m1"] = "AAA"
	clean := seqs.New("t")
	clean.DNA["c1"] = "GAA"
	return &hypermut.Analysis{
		Records: []hypermut.Record{
			{ID: "c1", MotifTotal: 10, ControlTotal: 5, RateRatio: math.NaN(), P: 1},
			{ID: "m1", MotifMut: 9, MotifTotal: 10, ControlTotal: 5,
				RateRatio: math.Inf(1), P: 0.002, Hypermutated: true},
		},
		Hypermutated:  hyper,
		Clean:         clean,
		OutlierCutoff: 9,
	}
}

func TestWriteHypermutTSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHypermutTSV(&buf, hypermutAnalysis(), true); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d: %q", len(lines), buf.String())
	}
	if lines[0] != HypermutHeader {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "undef") {
		t.Errorf("NaN rate ratio not rendered: %q", lines[1])
	}
	if !strings.Contains(lines[2], "\tinf\t") || !strings.HasSuffix(lines[2], "true") {
		t.Errorf("mutant row = %q", lines[2])
	}
}

// Infinite rate ratios must not break JSON encoding.
func TestWriteHypermutJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHypermutJSON(&buf, "run1", hypermutAnalysis()); err != nil {
		t.Fatal(err)
	}
	var rep struct {
		Title         string `json:"title"`
		Sequences     int    `json:"sequences"`
		Hypermutated  int    `json:"hypermutated_count"`
		OutlierCutoff int    `json:"poisson_outlier_cutoff"`
		Records       []struct {
			RateRatio string `json:"rate_ratio"`
		} `json:"records"`
	}
	if err := json.Unmarshal(buf.Bytes(), &rep); err != nil {
		t.Fatal(err)
	}
	if rep.Title != "run1" || rep.Sequences != 2 || rep.Hypermutated != 1 || rep.OutlierCutoff != 9 {
		t.Fatalf("report = %+v", rep)
	}
	if rep.Records[1].RateRatio != "inf" {
		t.Fatalf("rate_ratio = %q", rep.Records[1].RateRatio)
	}
}

func TestWriteDiversityTextNAPi(t *testing.T) {
	r := &DiversityReport{
		Title:           "degenerate",
		Sequences:       2,
		AlignmentLength: 4,
		Distances:       map[int]int{0: 1},
	}
	var buf bytes.Buffer
	if err := WriteDiversityText(&buf, r); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "nucleotide_diversity\tNA\n") {
		t.Errorf("missing NA diversity line: %q", out)
	}
	if !strings.Contains(out, "distance\tcount\n0\t1\n") {
		t.Errorf("missing histogram block: %q", out)
	}
	if strings.Contains(out, "consensus") {
		t.Errorf("unexpected consensus line: %q", out)
	}
}

func TestWriteDiversityTextWithValues(t *testing.T) {
	pi := 0.16667
	r := &DiversityReport{
		Title:           "scenario",
		Sequences:       6,
		AlignmentLength: 8,
		Pi:              &pi,
		VariantCutoff:   2,
		Consensus:       "AAGGCCTT",
		Distances:       map[int]int{0: 1, 1: 8, 2: 6},
	}
	var buf bytes.Buffer
	if err := WriteDiversityText(&buf, r); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"nucleotide_diversity\t0.16667\n",
		"minority_variant_cutoff\t2\n",
		"consensus\tAAGGCCTT\n",
		"0\t1\n1\t8\n2\t6\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}
