package collapsecli

import (
	"flag"
	"fmt"
	"io"

	"vsq-core/dedup"
	"vsq/internal/clibase"
	"vsq/internal/cliutil"
)

// Collapse modes.
const (
	ModeSeq = "seq"
	ModePID = "pid"
)

type Options struct {
	clibase.Common

	// Collapse-specific
	Mode     string
	Distance int
	PIDFold  int
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] reads.fastq\n", name)

		_, _ = fmt.Fprintln(out, "\nCollapse:")
		_, _ = fmt.Fprintf(out, "      --mode string           seq: edit-distance collapse | pid: Primer-ID filter [%s]\n", def("mode"))
		_, _ = fmt.Fprintf(out, "  -d, --distance int          Max edit distance folded into a representative [%s]\n", def("distance"))
		_, _ = fmt.Fprintf(out, "      --pid-fold int          Count ratio that discards an off-by-one Primer-ID [%s]\n", def("pid-fold"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for vsq-collapse.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "vsq-collapse", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Collapse near-identical sequences, or drop spurious Primer-ID")
		_, _ = fmt.Fprintln(w, "copies (identifiers shaped PID_count).")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  vsq-collapse --mode pid consensus-reads.fasta > filtered.fasta")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	var c clibase.Common
	clibase.Register(fs, &c, "fasta")

	fs.StringVar(&o.Mode, "mode", ModeSeq, "collapse mode: seq | pid [seq]")
	fs.IntVar(&o.Distance, "distance", dedup.DefaultCollapseDistance, "max edit distance to fold [1]")
	fs.IntVar(&o.Distance, "d", dedup.DefaultCollapseDistance, "alias of --distance")
	fs.IntVar(&o.PIDFold, "pid-fold", dedup.DefaultPIDFold, "Primer-ID discard count ratio [10]")

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

	if err := clibase.AfterParse(&c, posArgs, "fasta"); err != nil {
		return o, err
	}
	switch o.Mode {
	case ModeSeq, ModePID:
	default:
		return o, fmt.Errorf("invalid --mode %q", o.Mode)
	}
	if o.Distance < 0 {
		return o, fmt.Errorf("--distance must be ≥ 0")
	}
	if o.PIDFold < 1 {
		return o, fmt.Errorf("--pid-fold must be ≥ 1")
	}

	o.Common = c
	return o, nil
}
