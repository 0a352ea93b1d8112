// internal/output/json.go
package output

import (
	"encoding/json"
	"io"
)

// EncodePretty writes v as indented JSON with a trailing newline.
func EncodePretty(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
