// internal/input/input.go

// Package input merges the CLI's sequence file arguments into a single
// collection, dispatching on extension between FASTA and FASTQ.
package input

import (
	"fmt"
	"path/filepath"
	"strings"

	"vsq-core/fasta"
	"vsq-core/seqs"
)

// Title derives a run title from the first input path: the base name with
// compression and format extensions stripped.
func Title(paths []string) string {
	if len(paths) == 0 || paths[0] == "-" {
		return "stdin"
	}
	base := filepath.Base(paths[0])
	base = strings.TrimSuffix(base, ".gz")
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

func isFASTQ(path string) bool {
	p := strings.TrimSuffix(strings.ToLower(path), ".gz")
	return strings.HasSuffix(p, ".fastq") || strings.HasSuffix(p, ".fq")
}

// LoadDNA reads every path into one collection titled after the first
// file. Identifiers must be unique across all inputs.
func LoadDNA(paths []string) (*seqs.Collection, error) {
	title := Title(paths)
	out := seqs.New(title)
	for _, p := range paths {
		var c *seqs.Collection
		var err error
		if isFASTQ(p) {
			c, err = fasta.ReadFASTQ(p, title)
		} else {
			c, err = fasta.ReadDNA(p, title)
		}
		if err != nil {
			return nil, err
		}
		if out.File == "" {
			out.File = c.File
		}
		for id, s := range c.DNA {
			if _, dup := out.DNA[id]; dup {
				return nil, fmt.Errorf("duplicate sequence identifier %q in %s", id, p)
			}
			out.DNA[id] = s
		}
		for id, q := range c.Qual {
			out.Qual[id] = q
		}
	}
	return out, nil
}
