// internal/cmdutil/run.go
package cmdutil

import (
	"bufio"
	"fmt"
	"io"

	"vsq/internal/writers"
)

// Flush drains the buffered stdout writer. It returns the exit code to
// use and whether the caller must return it: broken pipes are a clean 0,
// any other write failure is a runtime error (3).
func Flush(outw *bufio.Writer, stderr io.Writer) (int, bool) {
	err := outw.Flush()
	switch {
	case err == nil:
		return 0, false
	case writers.IsBrokenPipe(err):
		return 0, true
	default:
		fmt.Fprintln(stderr, err)
		return 3, true
	}
}
