// internal/diversityapp/app.go
package diversityapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"vsq-core/consensus"
	"vsq-core/diversity"
	"vsq-core/seqs"
	"vsq-core/variant"
	"vsq/internal/clibase"
	"vsq/internal/cmdutil"
	"vsq/internal/diversitycli"
	"vsq/internal/input"
	"vsq/internal/output"
	"vsq/internal/version"
	"vsq/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)

	fs := diversitycli.NewFlagSet("vsq-diversity")
	fs.SetOutput(io.Discard)

	printUsage := func() int {
		fs.SetOutput(outw)
		fs.Usage()
		if code, done := cmdutil.Flush(outw, stderr); done {
			return code
		}
		return 0
	}

	if len(argv) == 0 {
		_, _ = diversitycli.ParseArgs(fs, []string{"-h"})
		return printUsage()
	}

	opts, err := diversitycli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			diversitycli.PrintExamples(outw)
			if code, done := cmdutil.Flush(outw, stderr); done {
				return code
			}
			return 0
		case errors.Is(err, flag.ErrHelp):
			return printUsage()
		}
		fmt.Fprintln(stderr, err)
		printUsage()
		return 2
	}
	if opts.Version {
		fmt.Fprintf(outw, "vsq-diversity version %s\n", version.Version)
		if code, done := cmdutil.Flush(outw, stderr); done {
			return code
		}
		return 0
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet)

	c, err := input.LoadDNA(opts.SeqFiles)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	length, err := c.AlignmentLength()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	entropy, err := diversity.Entropy(c)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}

	report := &output.DiversityReport{
		Title:           c.Title,
		Sequences:       c.Len(),
		AlignmentLength: length,
		Entropy:         entropy,
	}

	pi, err := diversity.Pi(c)
	switch {
	case err == nil:
		report.Pi = &pi
	case errors.Is(err, diversity.ErrDegenerate):
		log.Warnf("nucleotide diversity undefined: %v", err)
	default:
		fmt.Fprintln(stderr, err)
		return 3
	}

	hist, err := diversity.Histogram(c, opts.Threads)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	report.Distances = hist
	report.Summary = diversity.Summarize(entropy, hist)

	cutoff, err := variant.PoissonCutoff(c, opts.ErrorRate, opts.Fold)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	report.VariantCutoff = cutoff

	if opts.ConsensusCutoff > 0 {
		cons, err := consensus.Call(c, opts.ConsensusCutoff)
		if err != nil {
			fmt.Fprintln(stderr, err)
			if errors.Is(err, seqs.ErrEmptyInput) || errors.Is(err, seqs.ErrUnaligned) {
				return 2
			}
			return 3
		}
		report.Consensus = cons
	}

	if parent.Err() != nil {
		return 130
	}

	switch opts.Output {
	case "json":
		err = output.WriteDiversityJSON(outw, report)
	default:
		err = output.WriteDiversityText(outw, report)
	}
	if err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 3
	}
	if code, done := cmdutil.Flush(outw, stderr); done {
		return code
	}
	return 0
}
