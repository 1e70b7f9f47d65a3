// Package numstat wires the reading, computing, and formatting stages of
// the statistics calculator into the single pipeline behind the 'stats'
// command.
package numstat

import (
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/pp"

	"github.com/mwiater/gonumstat/internal/format"
	"github.com/mwiater/gonumstat/internal/numstream"
	"github.com/mwiater/gonumstat/internal/stats"
)

const (
	// DefaultPrecision is the number of decimal digits used when no
	// precision is configured or the configured one is out of range.
	DefaultPrecision = 4

	// MaxPrecision is the largest accepted precision setting.
	MaxPrecision = 10
)

// Config holds the settings of one calculator run.
type Config struct {
	JSONOutput bool   // Emit the JSON document instead of the text report.
	Precision  int    // Decimal digits in rendered output, 0..MaxPrecision.
	Debug      bool   // Pretty-print the computed Stats record to stderr.
	InputFile  string // Input path; empty means standard input.
}

// ClampPrecision validates a precision setting. Out-of-range values are
// not an error: they fall back to DefaultPrecision with a warning on warn.
func ClampPrecision(precision int, warn io.Writer) int {
	if precision < 0 || precision > MaxPrecision {
		fmt.Fprintf(warn, "Warning: precision should be between 0 and %d. Using default (%d).\n",
			MaxPrecision, DefaultPrecision)
		return DefaultPrecision
	}
	return precision
}

// Run executes the full pipeline for cfg, writing results to stdout and
// warnings/debug dumps to stderr. The input file (or standard input when
// none is configured) is read completely, statistics are computed, and a
// single report is written; on any error nothing is written to stdout.
func Run(cfg Config, stdout, stderr io.Writer) error {
	in := io.Reader(os.Stdin)
	if cfg.InputFile != "" {
		f, err := os.Open(cfg.InputFile)
		if err != nil {
			return fmt.Errorf("cannot open file %q: %w", cfg.InputFile, err)
		}
		defer f.Close()
		in = f
	}

	return run(cfg, in, stdout, stderr)
}

// run is the input-source-agnostic body of Run.
func run(cfg Config, in io.Reader, stdout, stderr io.Writer) error {
	precision := ClampPrecision(cfg.Precision, stderr)

	values, err := numstream.Read(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if len(values) == 0 {
		return ErrNoValidNumbers
	}

	result := stats.Compute(values)

	if cfg.Debug {
		pp.Fprintln(stderr, result)
	}

	if cfg.JSONOutput {
		return format.JSON(stdout, result, precision)
	}
	return format.Text(stdout, result, precision)
}
