// internal/output/locator.go
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"vsq-core/locator"
)

// LocatorHeader is the column order of the locator CSV report.
var LocatorHeader = []string{
	"title", "sequence_identifier", "reference_id", "direction",
	"start", "end", "percent_similarity", "contains_indel",
	"aligned_query", "aligned_reference",
}

// WriteLocatorCSV writes one row per located sequence, preserving the
// order of results.
func WriteLocatorCSV(w io.Writer, title string, results []locator.Result, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(LocatorHeader); err != nil {
			return err
		}
	}
	for _, r := range results {
		row := []string{
			title,
			r.ID,
			r.RefName,
			r.Orientation,
			strconv.Itoa(r.Start),
			strconv.Itoa(r.End),
			fmt.Sprintf("%.2f", r.Similarity),
			strconv.FormatBool(r.Indel),
			r.AlignedQuery,
			r.AlignedRef,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// LocatorReport is the JSON shape of a locator run.
type LocatorReport struct {
	Title   string           `json:"title"`
	RefName string           `json:"reference_id"`
	Results []locator.Result `json:"results"`
}

func WriteLocatorJSON(w io.Writer, title, refName string, results []locator.Result) error {
	if results == nil {
		results = []locator.Result{}
	}
	return EncodePretty(w, LocatorReport{Title: title, RefName: refName, Results: results})
}
