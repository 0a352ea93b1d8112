package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err came from writing to a closed pipe.
// Report writers treat this as a clean shutdown (e.g. `vsq-diversity | head`).
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
