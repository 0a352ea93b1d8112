package hypermutcli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	o, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return o
}

func TestHypermutFlagsOK(t *testing.T) {
	o := mustParse(t, "aligned.fa")
	if o.Fold != 20 || o.OutPrefix != "" || !o.Header || o.Output != "text" {
		t.Fatalf("bad defaults: %+v", o)
	}
}

func TestOutPrefix(t *testing.T) {
	o := mustParse(t, "--out-prefix", "run1", "aligned.fa")
	if o.OutPrefix != "run1" {
		t.Fatalf("want out-prefix=run1, got %q", o.OutPrefix)
	}
}

func TestFoldMustBePositive(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--fold", "0", "aligned.fa"}); err == nil {
		t.Fatal("expected error for --fold 0")
	}
}

func TestInvalidOutputRejected(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--output", "csv", "aligned.fa"}); err == nil {
		t.Fatal("expected invalid --output error")
	}
}
