package diversitycli

import (
	"flag"
	"fmt"
	"io"

	"vsq-core/variant"
	"vsq/internal/clibase"
	"vsq/internal/cliutil"
)

type Options struct {
	clibase.Common

	// Diversity-specific
	ErrorRate       float64
	Fold            float64
	ConsensusCutoff float64
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] aligned.fasta\n", name)

		_, _ = fmt.Fprintln(out, "\nDiversity:")
		_, _ = fmt.Fprintf(out, "      --error-rate float      Sequencing error rate for the Poisson cutoff [%s]\n", def("error-rate"))
		_, _ = fmt.Fprintf(out, "      --fold float            Poisson cutoff fold multiplier [%s]\n", def("fold"))
		_, _ = fmt.Fprintf(out, "      --consensus float       Include a consensus at this majority cutoff (0=off) [%s]\n", def("consensus"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for vsq-diversity.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "vsq-diversity", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Per-column entropy, nucleotide diversity, pairwise distances")
		_, _ = fmt.Fprintln(w, "and the Poisson minority-variant cutoff for one alignment.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  vsq-diversity --consensus 0.5 --output json timepoint1.fasta")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	var c clibase.Common
	clibase.Register(fs, &c, "text")

	fs.Float64Var(&o.ErrorRate, "error-rate", variant.DefaultErrorRate, "sequencing error rate [0.0001]")
	fs.Float64Var(&o.Fold, "fold", variant.DefaultFold, "Poisson cutoff fold multiplier [20]")
	fs.Float64Var(&o.ConsensusCutoff, "consensus", 0, "majority cutoff for a consensus line (0=off) [0]")

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if c.Version {
		o.Common = c
		return o, nil
	}

	if err := clibase.AfterParse(&c, posArgs, "text", "json"); err != nil {
		return o, err
	}
	if o.ErrorRate <= 0 || o.ErrorRate >= 1 {
		return o, fmt.Errorf("--error-rate must be in (0,1)")
	}
	if o.Fold <= 0 {
		return o, fmt.Errorf("--fold must be > 0")
	}
	if o.ConsensusCutoff < 0 || o.ConsensusCutoff > 1 {
		return o, fmt.Errorf("--consensus must be in [0,1]")
	}

	o.Common = c
	return o, nil
}
