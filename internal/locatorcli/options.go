package locatorcli

import (
	"flag"
	"fmt"
	"io"

	"vsq/internal/clibase"
	"vsq/internal/cliutil"
)

type Options struct {
	clibase.Common

	// Locator-specific
	Ref        string
	RefDir     string
	AlignerBin string
	Header     bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --ref-dir refs/ queries.fasta\n", name)

		_, _ = fmt.Fprintln(out, "\nLocator:")
		_, _ = fmt.Fprintf(out, "  -R, --ref string            Reference genome name [%s]\n", def("ref"))
		_, _ = fmt.Fprintln(out, "      --ref-dir string        Directory of reference FASTA files [required]")
		_, _ = fmt.Fprintf(out, "      --aligner string        Pairwise aligner binary on PATH [%s]\n", def("aligner"))
		_, _ = fmt.Fprintf(out, "      --no-header             Suppress CSV header line [%s]\n", def("no-header"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for vsq-locator.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "vsq-locator", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Locate query sequences on a reference genome's coordinates.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  vsq-locator \\")
		_, _ = fmt.Fprintln(w, "    --ref HXB2 \\")
		_, _ = fmt.Fprintln(w, "    --ref-dir refs/ \\")
		_, _ = fmt.Fprintln(w, "    --output csv \\")
		_, _ = fmt.Fprintln(w, "    patient-env.fasta")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	// Shared flags via clibase
	var c clibase.Common
	clibase.Register(fs, &c, "csv")

	// Locator flags
	fs.StringVar(&o.Ref, "ref", "HXB2", "reference genome name [HXB2]")
	fs.StringVar(&o.Ref, "R", "HXB2", "alias of --ref")
	fs.StringVar(&o.RefDir, "ref-dir", "", "directory of reference FASTA files [required]")
	fs.StringVar(&o.AlignerBin, "aligner", "muscle", "pairwise aligner binary [muscle]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress CSV header line [false]")

	// Help / examples
	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	// Split & parse
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

	if err := clibase.AfterParse(&c, posArgs, "csv", "json"); err != nil {
		return o, err
	}
	if o.RefDir == "" {
		return o, fmt.Errorf("--ref-dir is required")
	}
	if o.AlignerBin == "" {
		return o, fmt.Errorf("--aligner must not be empty")
	}

	o.Header = !noHeader
	o.Common = c
	return o, nil
}
