// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"vsq-core/seqs"
)

// Record is one parsed FASTA entry.
type Record struct {
	ID  string
	Seq string
}

// Read parses FASTA records from r. Sequence lines are concatenated and
// upper-cased; blank lines and lines beginning with '=' are ignored.
func Read(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		out []Record
		id  string
		seq = make([]byte, 0, 1<<16)
	)
	flush := func() {
		if id == "" && len(seq) == 0 {
			return
		}
		out = append(out, Record{ID: id, Seq: string(bytes.ToUpper(seq))})
	}

	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == '=' {
			continue
		}
		if line[0] == '>' {
			if id != "" || len(seq) > 0 {
				flush()
				seq = seq[:0]
			}
			id = parseHeaderID(line[1:])
			continue
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	flush()
	return out, nil
}

// ReadFile reads all records from path ("-" for stdin, gzip transparent).
func ReadFile(path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Read(rc)
}

// ReadDNA loads path into a fresh collection's DNA role.
func ReadDNA(path, title string) (*seqs.Collection, error) {
	recs, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := seqs.New(title)
	c.File = path
	for _, r := range recs {
		c.DNA[r.ID] = r.Seq
	}
	return c, nil
}

// ReadAA loads path into a fresh collection's amino-acid role.
func ReadAA(path, title string) (*seqs.Collection, error) {
	recs, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := seqs.New(title)
	c.File = path
	for _, r := range recs {
		c.AA[r.ID] = r.Seq
	}
	return c, nil
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
