// core/seqs/translate.go
package seqs

import "fmt"

// Standard genetic code. Stop codons map to '*'; codons containing gaps or
// ambiguity symbols translate to 'X'.
var codonTable = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// Translate converts a nucleotide string to amino acids in the given frame
// (1, 2 or 3). Trailing bases short of a codon are dropped.
func Translate(dna string, frame int) (string, error) {
	if frame < 1 || frame > 3 {
		return "", fmt.Errorf("translation frame %d out of range 1..3", frame)
	}
	start := frame - 1
	out := make([]byte, 0, (len(dna)-start)/3)
	for i := start; i+3 <= len(dna); i += 3 {
		aa, ok := codonTable[dna[i:i+3]]
		if !ok {
			aa = 'X'
		}
		out = append(out, aa)
	}
	return string(out), nil
}

// Translated returns a new collection whose AA role holds the frame-wise
// translation of this collection's DNA role.
func (c *Collection) Translated(frame int) (*Collection, error) {
	if len(c.DNA) == 0 {
		return nil, ErrEmptyInput
	}
	out := New(c.Title)
	out.File = c.File
	for id, v := range c.DNA {
		aa, err := Translate(v, frame)
		if err != nil {
			return nil, err
		}
		out.DNA[id] = v
		out.AA[id] = aa
	}
	return out, nil
}

// TranslateSelf fills the AA role in place. This is the one documented
// in-place mutator on Collection.
func (c *Collection) TranslateSelf(frame int) error {
	if len(c.DNA) == 0 {
		return ErrEmptyInput
	}
	for id, v := range c.DNA {
		aa, err := Translate(v, frame)
		if err != nil {
			return err
		}
		c.AA[id] = aa
	}
	return nil
}
