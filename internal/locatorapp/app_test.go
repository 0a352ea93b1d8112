// internal/locatorapp/app_test.go
package locatorapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vsq-core/align"
	"vsq/internal/output"
)

type stubAligner struct{ results map[string]align.Result }

func (s stubAligner) Align(_ context.Context, query, _ string) (align.Result, error) {
	r, ok := s.results[query]
	if !ok {
		return align.Result{}, errors.New("unexpected query")
	}
	return r, nil
}

func swapAligner(t *testing.T, al align.Aligner, err error) {
	t.Helper()
	orig := newAligner
	newAligner = func(string) (align.Aligner, error) { return al, err }
	t.Cleanup(func() { newAligner = orig })
}

func write(t *testing.T, fn, data string) string {
	t.Helper()
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func refDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	write(t, filepath.Join(dir, "hxb2.fasta"), ">hxb2\nTTAACGTT\n")
	return dir
}

func queriesFile(t *testing.T) string {
	t.Helper()
	return write(t, filepath.Join(t.TempDir(), "queries.fasta"), ">q1\nAACG\n")
}

var stubResults = map[string]align.Result{
	"AACG": {Query: "--AACG--", Ref: "TTAACGTT"},
	"CGTT": {Query: "CGTT----", Ref: "TTAACGTT"},
}

func TestRunCSV(t *testing.T) {
	swapAligner(t, stubAligner{results: stubResults}, nil)

	var out, errB bytes.Buffer
	code := Run([]string{"--ref-dir", refDir(t), queriesFile(t)}, &out, &errB)
	if code != 0 {
		t.Fatalf("exit %d err=%s", code, errB.String())
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("output = %q", out.String())
	}
	if !strings.HasPrefix(lines[0], "title,sequence_identifier") {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "q1,HXB2,+,3,6,100.00,false") {
		t.Fatalf("row = %q", lines[1])
	}
}

func TestRunJSON(t *testing.T) {
	swapAligner(t, stubAligner{results: stubResults}, nil)

	var out, errB bytes.Buffer
	code := Run([]string{"--ref-dir", refDir(t), "--output", "json", queriesFile(t)}, &out, &errB)
	if code != 0 {
		t.Fatalf("exit %d err=%s", code, errB.String())
	}
	var rep output.LocatorReport
	if err := json.Unmarshal(out.Bytes(), &rep); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(rep.Results) != 1 || rep.Results[0].Start != 3 || rep.Results[0].End != 6 {
		t.Fatalf("report = %+v", rep)
	}
}

func TestRunUnknownReferenceWarns(t *testing.T) {
	swapAligner(t, stubAligner{results: stubResults}, nil)

	var out, errB bytes.Buffer
	code := Run([]string{"--ref", "SIVMM", "--ref-dir", refDir(t), queriesFile(t)}, &out, &errB)
	if code != 0 {
		t.Fatalf("exit %d err=%s", code, errB.String())
	}
	if !strings.Contains(errB.String(), "defaulting to HXB2") {
		t.Fatalf("missing substitution warning: %q", errB.String())
	}
}

func TestRunQuietSuppressesWarning(t *testing.T) {
	swapAligner(t, stubAligner{results: stubResults}, nil)

	var out, errB bytes.Buffer
	code := Run([]string{"-q", "--ref", "SIVMM", "--ref-dir", refDir(t), queriesFile(t)}, &out, &errB)
	if code != 0 {
		t.Fatalf("exit %d err=%s", code, errB.String())
	}
	if strings.Contains(errB.String(), "defaulting") {
		t.Fatalf("warning not suppressed: %q", errB.String())
	}
}

func TestRunMissingAlignerIsSetupError(t *testing.T) {
	swapAligner(t, nil, align.ErrUnavailable)

	var out, errB bytes.Buffer
	code := Run([]string{"--ref-dir", refDir(t), queriesFile(t)}, &out, &errB)
	if code != 2 {
		t.Fatalf("exit = %d, want 2", code)
	}
}

func TestRunUsageError(t *testing.T) {
	var out, errB bytes.Buffer
	code := Run([]string{"queries.fasta"}, &out, &errB)
	if code != 2 {
		t.Fatalf("exit = %d, want 2", code)
	}
	if !strings.Contains(errB.String(), "--ref-dir") {
		t.Fatalf("stderr = %q", errB.String())
	}
}

func TestRunVersion(t *testing.T) {
	var out, errB bytes.Buffer
	code := Run([]string{"--version"}, &out, &errB)
	if code != 0 || !strings.Contains(out.String(), "vsq-locator version") {
		t.Fatalf("exit=%d out=%q", code, out.String())
	}
}
