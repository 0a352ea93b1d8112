// internal/hypermutapp/app.go
package hypermutapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"vsq-core/fasta"
	"vsq-core/hypermut"
	"vsq-core/seqs"
	"vsq/internal/clibase"
	"vsq/internal/cmdutil"
	"vsq/internal/hypermutcli"
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

	fs := hypermutcli.NewFlagSet("vsq-hypermut")
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
		_, _ = hypermutcli.ParseArgs(fs, []string{"-h"})
		return printUsage()
	}

	opts, err := hypermutcli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			hypermutcli.PrintExamples(outw)
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
		fmt.Fprintf(outw, "vsq-hypermut version %s\n", version.Version)
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

	analysis, err := hypermut.Analyze(c, opts.Fold)
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, seqs.ErrEmptyInput) || errors.Is(err, seqs.ErrUnaligned) {
			return 2
		}
		return 3
	}
	if parent.Err() != nil {
		return 130
	}
	if analysis.OutlierCutoff > 0 {
		log.Infof("poisson outlier cutoff: %d motif mutations", analysis.OutlierCutoff)
	}

	if opts.OutPrefix != "" {
		if err := writeSplit(opts.OutPrefix+"_hypermutants.fasta", analysis.Hypermutated); err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		if err := writeSplit(opts.OutPrefix+"_clean.fasta", analysis.Clean); err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
	}

	switch opts.Output {
	case "json":
		err = output.WriteHypermutJSON(outw, c.Title, analysis)
	default:
		err = output.WriteHypermutTSV(outw, analysis, opts.Header)
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

func writeSplit(path string, c *seqs.Collection) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fasta.WriteDNA(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
