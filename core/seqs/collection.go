// core/seqs/collection.go
package seqs

import (
	"fmt"
	"sort"
	"strings"
)

// Collection is a named set of sequences sharing identifiers across three
// payload roles: nucleotide (DNA), amino acid (AA) and quality (Qual).
// Derived collections share identifiers but never the underlying maps.
type Collection struct {
	Title string
	File  string // originating file, optional

	DNA  map[string]string
	AA   map[string]string
	Qual map[string]string
}

// New returns an empty collection with all role maps allocated.
func New(title string) *Collection {
	return &Collection{
		Title: title,
		DNA:   make(map[string]string),
		AA:    make(map[string]string),
		Qual:  make(map[string]string),
	}
}

// Len reports the number of sequences (DNA role, falling back to AA).
func (c *Collection) Len() int {
	if len(c.DNA) > 0 {
		return len(c.DNA)
	}
	return len(c.AA)
}

// IDs returns the sequence identifiers in sorted order.
func (c *Collection) IDs() []string {
	m := c.DNA
	if len(m) == 0 {
		m = c.AA
	}
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Values returns the sequence payloads in sorted-ID order (DNA role,
// falling back to AA). Position-wise algorithms iterate this so their
// outputs do not depend on map order.
func (c *Collection) Values() []string {
	m := c.DNA
	if len(m) == 0 {
		m = c.AA
	}
	ids := c.IDs()
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}

// AlignmentLength returns the shared sequence length, or ErrUnaligned if
// the collection holds sequences of differing length. Empty collections
// return ErrEmptyInput.
func (c *Collection) AlignmentLength() (int, error) {
	vals := c.Values()
	if len(vals) == 0 {
		return 0, ErrEmptyInput
	}
	l := len(vals[0])
	for _, v := range vals[1:] {
		if len(v) != l {
			return 0, fmt.Errorf("sequence lengths %d and %d: %w", l, len(v), ErrUnaligned)
		}
	}
	return l, nil
}

// Subset returns a new collection holding only the given identifiers.
// Unknown identifiers are ignored.
func (c *Collection) Subset(ids []string) *Collection {
	out := New(c.Title)
	out.File = c.File
	for _, id := range ids {
		if v, ok := c.DNA[id]; ok {
			out.DNA[id] = v
		}
		if v, ok := c.AA[id]; ok {
			out.AA[id] = v
		}
		if v, ok := c.Qual[id]; ok {
			out.Qual[id] = v
		}
	}
	return out
}

// Unique returns a new collection keeping the first identifier (in sorted
// order) of every distinct DNA payload.
func (c *Collection) Unique() *Collection {
	seen := make(map[string]struct{}, len(c.DNA))
	keep := make([]string, 0, len(c.DNA))
	for _, id := range c.IDs() {
		v := c.DNA[id]
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		keep = append(keep, id)
	}
	return c.Subset(keep)
}

// Frequencies returns the multiplicity of each distinct DNA payload.
func (c *Collection) Frequencies() map[string]int {
	freq := make(map[string]int, len(c.DNA))
	for _, v := range c.DNA {
		freq[v]++
	}
	return freq
}

// RemoveGaps returns a new collection with all gap symbols stripped from
// the DNA role. The result is generally no longer an alignment.
func (c *Collection) RemoveGaps() *Collection {
	out := New(c.Title)
	out.File = c.File
	for id, v := range c.DNA {
		out.DNA[id] = strings.ReplaceAll(v, "-", "")
	}
	return out
}
