// core/seqs/collection_test.go
package seqs

import (
	"errors"
	"testing"
)

func TestAlignmentLength(t *testing.T) {
	c := New("t")
	if _, err := c.AlignmentLength(); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("empty collection: got %v, want ErrEmptyInput", err)
	}
	c.DNA["a"] = "ACGT"
	c.DNA["b"] = "AC-T"
	l, err := c.AlignmentLength()
	if err != nil || l != 4 {
		t.Fatalf("aligned: got %d, %v", l, err)
	}
	c.DNA["c"] = "ACG"
	if _, err := c.AlignmentLength(); !errors.Is(err, ErrUnaligned) {
		t.Fatalf("ragged: got %v, want ErrUnaligned", err)
	}
}

func TestValuesSortedByID(t *testing.T) {
	c := New("t")
	c.DNA["z"] = "TTTT"
	c.DNA["a"] = "AAAA"
	c.DNA["m"] = "CCCC"
	got := c.Values()
	want := []string{"AAAA", "CCCC", "TTTT"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSubsetIsIndependentCopy(t *testing.T) {
	c := New("t")
	c.DNA["a"] = "ACGT"
	c.Qual["a"] = "IIII"
	sub := c.Subset([]string{"a", "missing"})
	if sub.Len() != 1 || sub.DNA["a"] != "ACGT" || sub.Qual["a"] != "IIII" {
		t.Fatalf("subset content wrong: %+v", sub)
	}
	sub.DNA["a"] = "mutated"
	if c.DNA["a"] != "ACGT" {
		t.Fatal("subset aliases the source map")
	}
}

func TestUniqueKeepsFirstSortedID(t *testing.T) {
	c := New("t")
	c.DNA["b"] = "ACGT"
	c.DNA["a"] = "ACGT"
	c.DNA["c"] = "TTTT"
	u := c.Unique()
	if u.Len() != 2 {
		t.Fatalf("unique len = %d, want 2", u.Len())
	}
	if _, ok := u.DNA["a"]; !ok {
		t.Fatal("expected id 'a' (first in sorted order) to survive")
	}
}

func TestRemoveGaps(t *testing.T) {
	c := New("t")
	c.DNA["a"] = "A-CG--T"
	got := c.RemoveGaps().DNA["a"]
	if got != "ACGT" {
		t.Fatalf("RemoveGaps = %q", got)
	}
}

func TestRevComp(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ACGT", "ACGT"},
		{"AAGG", "CCTT"},
		{"ATRYSWKMBDHVN", "NBDHVKMWSRYAT"},
		{"AC-GT", "AC-GT"},
		{"ACXG", "CNGT"},
	}
	for _, tc := range tests {
		if got := RevComp(tc.in); got != tc.want {
			t.Errorf("RevComp(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTranslate(t *testing.T) {
	got, err := Translate("ATGAAATAG", 1)
	if err != nil || got != "MK*" {
		t.Fatalf("frame 1: got %q, %v", got, err)
	}
	got, err = Translate("GATGAAATAG", 2)
	if err != nil || got != "MK*" {
		t.Fatalf("frame 2: got %q, %v", got, err)
	}
	// Gapped and ambiguous codons become X.
	got, err = Translate("AT-NNNATG", 1)
	if err != nil || got != "XXM" {
		t.Fatalf("ambiguous: got %q, %v", got, err)
	}
	if _, err := Translate("ATG", 4); err == nil {
		t.Fatal("frame 4: expected error")
	}
}

func TestTranslateSelf(t *testing.T) {
	c := New("t")
	c.DNA["a"] = "ATGTGA"
	if err := c.TranslateSelf(1); err != nil {
		t.Fatal(err)
	}
	if c.AA["a"] != "M*" {
		t.Fatalf("AA = %q, want M*", c.AA["a"])
	}
}
