// core/fasta/fastq.go
package fasta

import (
	"bufio"
	"fmt"
	"strings"

	"vsq-core/seqs"
)

// ReadFASTQ loads 4-line FASTQ records from path into a collection,
// populating both the DNA and Qual roles. Sequence lines are upper-cased;
// quality strings are kept verbatim.
func ReadFASTQ(path, title string) (*seqs.Collection, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	sc := bufio.NewScanner(rc)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, 16*1024*1024)

	c := seqs.New(title)
	c.File = path
	line := 0
	var id, seq string
	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		switch line % 4 {
		case 0:
			if !strings.HasPrefix(text, "@") {
				return nil, fmt.Errorf("fastq record %d: header %q does not start with '@'", line/4+1, text)
			}
			id = text[1:]
			if i := strings.IndexAny(id, " \t"); i >= 0 {
				id = id[:i]
			}
		case 1:
			seq = strings.ToUpper(text)
		case 2:
			// separator line, ignored
		case 3:
			if len(text) != len(seq) {
				return nil, fmt.Errorf("fastq record %q: quality length %d != sequence length %d", id, len(text), len(seq))
			}
			c.DNA[id] = seq
			c.Qual[id] = text
		}
		line++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fastq scan: %w", err)
	}
	if line%4 != 0 {
		return nil, fmt.Errorf("fastq: truncated record at end of %s", path)
	}
	return c, nil
}
