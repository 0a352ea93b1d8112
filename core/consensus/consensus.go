// core/consensus/consensus.go
package consensus

import (
	"fmt"

	"vsq-core/seqs"
)

// 4-bit base mask: bit0=A bit1=C bit2=G bit3=T.
var baseBit = map[byte]uint8{
	'A': 1, 'C': 2, 'G': 4, 'T': 8,
}

// maskCode maps a base-set mask to its IUPAC ambiguity code. Unmapped
// combinations fall through to 'N'.
var maskCode = [16]byte{
	1: 'A', 2: 'C', 4: 'G', 8: 'T',
	1 | 8: 'W', 2 | 4: 'S', 1 | 2: 'M', 4 | 8: 'K', 1 | 4: 'R', 2 | 8: 'Y',
	2 | 4 | 8: 'B', 1 | 4 | 8: 'D', 1 | 2 | 8: 'H', 1 | 2 | 4: 'V',
}

// Call derives the consensus of an aligned nucleotide collection. For each
// column, every symbol (gaps included) whose frequency is >= cutoff joins
// the call set; the set maps to one output symbol via the IUPAC ambiguity
// table. A singleton set is its own symbol; sets containing non-ACGT
// symbols, unmapped combinations, or nothing at all call 'N'.
func Call(c *seqs.Collection, cutoff float64) (string, error) {
	if cutoff <= 0 || cutoff > 1 {
		return "", fmt.Errorf("consensus cutoff %v out of range (0,1]", cutoff)
	}
	if c.Len() == 0 {
		return "", seqs.ErrEmptyInput
	}
	length, err := c.AlignmentLength()
	if err != nil {
		return "", err
	}

	vals := c.Values()
	n := float64(len(vals))
	out := make([]byte, length)
	counts := make(map[byte]int, 8)
	for col := 0; col < length; col++ {
		for k := range counts {
			delete(counts, k)
		}
		for _, v := range vals {
			counts[v[col]]++
		}

		// Membership is a pure threshold test, so map order is irrelevant.
		var (
			mask    uint8
			size    int
			single  byte
			nonACGT bool
		)
		for sym, cnt := range counts {
			if float64(cnt)/n < cutoff {
				continue
			}
			size++
			single = sym
			if b, ok := baseBit[sym]; ok {
				mask |= b
			} else {
				nonACGT = true
			}
		}

		switch {
		case size == 1:
			out[col] = single
		case size == 0 || nonACGT:
			out[col] = 'N'
		default:
			if code := maskCode[mask]; code != 0 {
				out[col] = code
			} else {
				out[col] = 'N'
			}
		}
	}
	return string(out), nil
}
