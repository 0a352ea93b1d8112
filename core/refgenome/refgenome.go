// core/refgenome/refgenome.go

// Package refgenome holds the named reference genomes the locator maps
// against. The registry is built once at startup and read-only afterwards.
package refgenome

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"vsq-core/fasta"
)

// Known reference genome names. HXB2 is the default everywhere.
const (
	HXB2   = "HXB2"
	NL43   = "NL43"
	MAC239 = "MAC239"
)

// Reference is a named, fixed reference nucleotide sequence. Coordinates
// reported against it are 1-based positions in its own numbering.
type Reference struct {
	Name string
	Seq  string
}

// Registry is an immutable name -> Reference lookup with a default.
type Registry struct {
	refs map[string]Reference
	def  string
}

// NewRegistry builds a registry from the given references; the first one
// is the default. At least one reference is required.
func NewRegistry(refs ...Reference) (*Registry, error) {
	if len(refs) == 0 {
		return nil, fmt.Errorf("refgenome: no references given")
	}
	m := make(map[string]Reference, len(refs))
	for _, r := range refs {
		name := strings.ToUpper(r.Name)
		if name == "" || r.Seq == "" {
			return nil, fmt.Errorf("refgenome: reference %q is incomplete", r.Name)
		}
		m[name] = Reference{Name: name, Seq: r.Seq}
	}
	return &Registry{refs: m, def: strings.ToUpper(refs[0].Name)}, nil
}

// Load reads every .fasta/.fa file in dir as one reference genome named by
// its upper-cased file stem. The directory must provide HXB2, which
// becomes the default.
func Load(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("refgenome: %w", err)
	}
	var refs []Reference
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".fasta" && ext != ".fa" {
			continue
		}
		recs, err := fasta.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("refgenome %s: %w", e.Name(), err)
		}
		if len(recs) == 0 {
			return nil, fmt.Errorf("refgenome %s: no records", e.Name())
		}
		name := strings.ToUpper(strings.TrimSuffix(e.Name(), ext))
		refs = append(refs, Reference{Name: name, Seq: recs[0].Seq})
	}
	sort.Slice(refs, func(i, j int) bool {
		// HXB2 first so it becomes the default.
		if refs[i].Name == HXB2 {
			return true
		}
		if refs[j].Name == HXB2 {
			return false
		}
		return refs[i].Name < refs[j].Name
	})
	if len(refs) == 0 || refs[0].Name != HXB2 {
		return nil, fmt.Errorf("refgenome: %s not found in %s", HXB2, dir)
	}
	return NewRegistry(refs...)
}

// Resolve returns the reference for name, case-insensitively. Unknown
// names degrade to the default; substituted reports when that happened so
// the caller can warn (the degradation itself is non-fatal).
func (r *Registry) Resolve(name string) (ref Reference, substituted bool) {
	if got, ok := r.refs[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return got, false
	}
	return r.refs[r.def], true
}

// Names lists the registered reference names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.refs))
	for n := range r.refs {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
