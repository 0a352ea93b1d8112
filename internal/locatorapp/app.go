// internal/locatorapp/app.go
package locatorapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"sync"

	"vsq-core/align"
	"vsq-core/locator"
	"vsq-core/refgenome"
	"vsq/internal/clibase"
	"vsq/internal/cmdutil"
	"vsq/internal/exalign"
	"vsq/internal/input"
	"vsq/internal/locatorcli"
	"vsq/internal/output"
	"vsq/internal/version"
	"vsq/internal/writers"
)

// newAligner is swapped by tests to avoid requiring a real aligner binary.
var newAligner = func(name string) (align.Aligner, error) {
	return exalign.New(name)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)

	fs := locatorcli.NewFlagSet("vsq-locator")
	fs.SetOutput(io.Discard) // silence default flag pkg

	printUsage := func() int {
		fs.SetOutput(outw)
		fs.Usage()
		if code, done := cmdutil.Flush(outw, stderr); done {
			return code
		}
		return 0
	}

	if len(argv) == 0 {
		_, _ = locatorcli.ParseArgs(fs, []string{"-h"})
		return printUsage()
	}

	opts, err := locatorcli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			locatorcli.PrintExamples(outw)
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
		fmt.Fprintf(outw, "vsq-locator version %s\n", version.Version)
		if code, done := cmdutil.Flush(outw, stderr); done {
			return code
		}
		return 0
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet)

	reg, err := refgenome.Load(opts.RefDir)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	ref, substituted := reg.Resolve(opts.Ref)
	if substituted {
		log.Warnf("unknown reference %q; defaulting to %s", opts.Ref, ref.Name)
	}

	al, err := newAligner(opts.AlignerBin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	c, err := input.LoadDNA(opts.SeqFiles)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if c.Len() == 0 {
		fmt.Fprintln(stderr, "error: no sequences in input")
		return 2
	}
	// Queries go to the aligner unaligned.
	queries := c.RemoveGaps()
	ids := queries.IDs()

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	thr := opts.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}
	if thr > len(ids) {
		thr = len(ids)
	}

	jobs := make(chan string, thr*2)
	var (
		mu       sync.Mutex
		located  = make(map[string]locator.Result, len(ids))
		firstErr error
	)
	var wg sync.WaitGroup
	wg.Add(thr)
	for w := 0; w < thr; w++ {
		go func() {
			defer wg.Done()
			for id := range jobs {
				res, lerr := locator.Locate(ctx, al, id, queries.DNA[id], ref)
				mu.Lock()
				if lerr != nil {
					if firstErr == nil {
						firstErr = lerr
						cancel()
					}
				} else {
					located[id] = res
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for _, id := range ids {
		select {
		case jobs <- id:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if parent.Err() != nil {
		return 130
	}
	if firstErr != nil {
		fmt.Fprintln(stderr, firstErr)
		return 3
	}

	// Input order is the sorted identifier order.
	results := make([]locator.Result, 0, len(ids))
	for _, id := range ids {
		if r, ok := located[id]; ok {
			results = append(results, r)
		}
	}

	switch opts.Output {
	case "json":
		err = output.WriteLocatorJSON(outw, c.Title, ref.Name, results)
	default:
		err = output.WriteLocatorCSV(outw, c.Title, results, opts.Header)
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
