package hypermutcli

import (
	"flag"
	"fmt"
	"io"

	"vsq-core/hypermut"
	"vsq/internal/clibase"
	"vsq/internal/cliutil"
)

type Options struct {
	clibase.Common

	// Hypermut-specific
	Fold      float64
	OutPrefix string
	Header    bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] aligned.fasta\n", name)

		_, _ = fmt.Fprintln(out, "\nHypermutation:")
		_, _ = fmt.Fprintf(out, "      --fold float            Poisson outlier fold multiplier [%s]\n", def("fold"))
		_, _ = fmt.Fprintln(out, "      --out-prefix string     Write <prefix>_hypermutants.fasta and <prefix>_clean.fasta")
		_, _ = fmt.Fprintf(out, "      --no-header             Suppress TSV header line [%s]\n", def("no-header"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for vsq-hypermut.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "vsq-hypermut", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Detect APOBEC3G/F-driven G-to-A hypermutation in an alignment.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  vsq-hypermut \\")
		_, _ = fmt.Fprintln(w, "    --out-prefix patient01 \\")
		_, _ = fmt.Fprintln(w, "    patient01-aligned.fasta")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	var c clibase.Common
	clibase.Register(fs, &c, "text")

	fs.Float64Var(&o.Fold, "fold", hypermut.DefaultFold, "Poisson outlier fold multiplier [20]")
	fs.StringVar(&o.OutPrefix, "out-prefix", "", "prefix for hypermutant/clean FASTA splits")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress TSV header line [false]")

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
	if o.Fold <= 0 {
		return o, fmt.Errorf("--fold must be > 0")
	}

	o.Header = !noHeader
	o.Common = c
	return o, nil
}
