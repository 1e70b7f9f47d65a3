// Package format renders a computed Stats record as human-readable text or
// as a JSON document. Both modes present the same fields in the same order:
// count, sum, mean, median, min, max, range, q1, q3, stddev.
package format

import (
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/mwiater/gonumstat/internal/stats"
)

// Text writes the labeled text report. Every numeric field is rendered
// with exactly precision digits after the decimal point; count is a bare
// integer.
func Text(w io.Writer, s stats.Stats, precision int) error {
	_, err := fmt.Fprintf(w,
		"Statistics for %d numbers:\n"+
			"  Sum:     %.*f\n"+
			"  Mean:    %.*f\n"+
			"  Median:  %.*f\n"+
			"  Minimum: %.*f\n"+
			"  Maximum: %.*f\n"+
			"  Range:   %.*f\n"+
			"  Q1:      %.*f\n"+
			"  Q3:      %.*f\n"+
			"  StdDev:  %.*f\n",
		s.Count,
		precision, s.Sum,
		precision, s.Mean,
		precision, s.Median,
		precision, s.Min,
		precision, s.Max,
		precision, s.Range,
		precision, s.Q1,
		precision, s.Q3,
		precision, s.StdDev,
	)
	return err
}

// statsDoc fixes the key order of the JSON document. The numeric fields
// are pre-rendered raw messages so the configured precision survives
// marshaling instead of falling back to Go's shortest-float form.
type statsDoc struct {
	Count  int             `json:"count"`
	Sum    json.RawMessage `json:"sum"`
	Mean   json.RawMessage `json:"mean"`
	Median json.RawMessage `json:"median"`
	Min    json.RawMessage `json:"min"`
	Max    json.RawMessage `json:"max"`
	Range  json.RawMessage `json:"range"`
	Q1     json.RawMessage `json:"q1"`
	Q3     json.RawMessage `json:"q3"`
	StdDev json.RawMessage `json:"stddev"`
}

// JSON writes the stats as a single 2-space-indented JSON object with the
// shared field order, numeric values at the configured precision and
// count as an integer, followed by a trailing newline.
func JSON(w io.Writer, s stats.Stats, precision int) error {
	fixed := func(v float64) json.RawMessage {
		return json.RawMessage(strconv.FormatFloat(v, 'f', precision, 64))
	}

	doc := statsDoc{
		Count:  s.Count,
		Sum:    fixed(s.Sum),
		Mean:   fixed(s.Mean),
		Median: fixed(s.Median),
		Min:    fixed(s.Min),
		Max:    fixed(s.Max),
		Range:  fixed(s.Range),
		Q1:     fixed(s.Q1),
		Q3:     fixed(s.Q3),
		StdDev: fixed(s.StdDev),
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')

	_, err = w.Write(b)
	return err
}
