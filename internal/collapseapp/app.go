// internal/collapseapp/app.go
package collapseapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"vsq-core/dedup"
	"vsq-core/fasta"
	"vsq-core/seqs"
	"vsq/internal/clibase"
	"vsq/internal/cmdutil"
	"vsq/internal/collapsecli"
	"vsq/internal/input"
	"vsq/internal/version"
	"vsq/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)

	fs := collapsecli.NewFlagSet("vsq-collapse")
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
		_, _ = collapsecli.ParseArgs(fs, []string{"-h"})
		return printUsage()
	}

	opts, err := collapsecli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			collapsecli.PrintExamples(outw)
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
		fmt.Fprintf(outw, "vsq-collapse version %s\n", version.Version)
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

	var out *seqs.Collection
	switch opts.Mode {
	case collapsecli.ModePID:
		out, err = dedup.FilterSimilarPID(c, opts.PIDFold)
		if err == nil {
			if dropped := c.Len() - out.Len(); dropped > 0 {
				log.Infof("discarded %d spurious Primer-ID consensus sequences", dropped)
			}
		}
	default:
		out, err = dedup.Collapse(c, opts.Distance)
		if err == nil {
			log.Infof("collapsed %d sequences into %d representatives", c.Len(), out.Len())
		}
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, seqs.ErrEmptyInput) {
			return 2
		}
		return 3
	}
	if parent.Err() != nil {
		return 130
	}

	if err := fasta.WriteDNA(outw, out); err != nil {
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
