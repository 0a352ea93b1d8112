// core/fasta/writer.go
package fasta

import (
	"fmt"
	"io"

	"vsq-core/seqs"
)

// Write emits records in input order.
func Write(w io.Writer, recs []Record) error {
	for _, r := range recs {
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", r.ID, r.Seq); err != nil {
			return err
		}
	}
	return nil
}

// WriteDNA emits a collection's DNA role in sorted-ID order so output is
// deterministic across runs.
func WriteDNA(w io.Writer, c *seqs.Collection) error {
	for _, id := range c.IDs() {
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", id, c.DNA[id]); err != nil {
			return err
		}
	}
	return nil
}
