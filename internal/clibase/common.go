// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"vsq/internal/cliutil"
)

// Common holds the CLI fields shared by every vsq tool.
type Common struct {
	// Input
	SeqFiles []string

	// Performance
	Threads int

	// Output
	Output string

	// Misc
	Quiet   bool
	Version bool
}

// sliceValue appends each value to a *[]string (for --sequences/-s)
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}
func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// Register wires the shared flags onto fs. defaultOutput seeds --output;
// tools pass their own format list to Validate.
func Register(fs *flag.FlagSet, c *Common, defaultOutput string) {
	// Inputs
	seqVal := &sliceValue{dst: &c.SeqFiles}
	fs.Var(seqVal, "sequences", "FASTA/FASTQ file(s) (repeatable) or '-'")
	fs.Var(seqVal, "s", "alias of --sequences")

	// Performance
	fs.IntVar(&c.Threads, "threads", 0, "worker threads (0=all CPUs) [0]")
	fs.IntVar(&c.Threads, "t", 0, "alias of --threads")

	// Output
	fs.StringVar(&c.Output, "output", defaultOutput, "output format")
	fs.StringVar(&c.Output, "o", defaultOutput, "alias of --output")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
}

// AfterParse expands positional globs into SeqFiles, then runs shared
// validation against the tool's accepted output formats.
func AfterParse(c *Common, posArgs []string, outputs ...string) error {
	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return err
		}
		c.SeqFiles = append(c.SeqFiles, exp...)
	}
	return Validate(c, outputs...)
}

// Validate applies the CLI invariants shared by all tools.
func Validate(c *Common, outputs ...string) error {
	if len(c.SeqFiles) == 0 {
		return errors.New("at least one sequence file is required")
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	for _, o := range outputs {
		if c.Output == o {
			return nil
		}
	}
	return fmt.Errorf("invalid --output %q", c.Output)
}
