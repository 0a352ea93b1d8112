// internal/output/hypermut.go
package output

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"vsq-core/hypermut"
)

// HypermutHeader is the column order of the hypermutation TSV report.
const HypermutHeader = "sequence_id\ta\tb\tc\td\trate_ratio\tfisher_p\thypermutated"

// formatRatio renders a mutation rate ratio, which is +Inf when the
// control context has zero mutations and NaN when a denominator is empty.
func formatRatio(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "undef"
	}
	return strconv.FormatFloat(f, 'f', 4, 64)
}

// WriteHypermutTSV writes one row per analyzed sequence in record order.
func WriteHypermutTSV(w io.Writer, a *hypermut.Analysis, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, HypermutHeader); err != nil {
			return err
		}
	}
	for _, r := range a.Records {
		_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\t%.6g\t%t\n",
			r.ID, r.MotifMut, r.MotifTotal, r.ControlMut, r.ControlTotal,
			formatRatio(r.RateRatio), r.P, r.Hypermutated)
		if err != nil {
			return err
		}
	}
	return nil
}

// hypermutRow mirrors hypermut.Record with the rate ratio rendered as a
// string: encoding/json refuses IEEE infinities.
type hypermutRow struct {
	ID           string  `json:"sequence_id"`
	MotifMut     int     `json:"a"`
	MotifTotal   int     `json:"b"`
	ControlMut   int     `json:"c"`
	ControlTotal int     `json:"d"`
	RateRatio    string  `json:"rate_ratio"`
	P            float64 `json:"p_value"`
	Hypermutated bool    `json:"hypermutated"`
}

// HypermutReport is the JSON shape of a hypermutation run.
type HypermutReport struct {
	Title         string        `json:"title"`
	Sequences     int           `json:"sequences"`
	HypermutatedN int           `json:"hypermutated_count"`
	OutlierCutoff int           `json:"poisson_outlier_cutoff"`
	Records       []hypermutRow `json:"records"`
}

func WriteHypermutJSON(w io.Writer, title string, a *hypermut.Analysis) error {
	rows := make([]hypermutRow, 0, len(a.Records))
	for _, r := range a.Records {
		rows = append(rows, hypermutRow{
			ID:           r.ID,
			MotifMut:     r.MotifMut,
			MotifTotal:   r.MotifTotal,
			ControlMut:   r.ControlMut,
			ControlTotal: r.ControlTotal,
			RateRatio:    formatRatio(r.RateRatio),
			P:            r.P,
			Hypermutated: r.Hypermutated,
		})
	}
	return EncodePretty(w, HypermutReport{
		Title:         title,
		Sequences:     len(a.Records),
		HypermutatedN: a.Hypermutated.Len(),
		OutlierCutoff: a.OutlierCutoff,
		Records:       rows,
	})
}
