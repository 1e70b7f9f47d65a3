package numstat

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunTextOutput(t *testing.T) {
	var out, errw bytes.Buffer

	err := run(Config{Precision: 2}, strings.NewReader("1 2 3 4"), &out, &errw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(out.String(), "Statistics for 4 numbers:\n") {
		t.Fatalf("unexpected header:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "  Median:  2.50\n") {
		t.Fatalf("expected interpolated median 2.50:\n%s", out.String())
	}
	if errw.Len() != 0 {
		t.Fatalf("unexpected stderr output: %s", errw.String())
	}
}

func TestRunJSONOutput(t *testing.T) {
	var out, errw bytes.Buffer

	err := run(Config{JSONOutput: true, Precision: 1}, strings.NewReader("5"), &out, &errw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "\"count\": 1") || !strings.Contains(out.String(), "\"median\": 5.0") {
		t.Fatalf("unexpected JSON output:\n%s", out.String())
	}
}

func TestRunNoValidNumbers(t *testing.T) {
	for _, input := range []string{"", "   \n ", "garbage in"} {
		var out, errw bytes.Buffer

		err := run(Config{Precision: 4}, strings.NewReader(input), &out, &errw)
		if !errors.Is(err, ErrNoValidNumbers) {
			t.Fatalf("input %q: expected ErrNoValidNumbers, got %v", input, err)
		}
		if out.Len() != 0 {
			t.Fatalf("input %q: no output expected on error, got %q", input, out.String())
		}
	}
}

func TestClampPrecision(t *testing.T) {
	tests := []struct {
		precision int
		want      int
		warned    bool
	}{
		{0, 0, false},
		{4, 4, false},
		{10, 10, false},
		{-1, DefaultPrecision, true},
		{11, DefaultPrecision, true},
		{15, DefaultPrecision, true},
	}

	for _, tt := range tests {
		var warn bytes.Buffer
		if got := ClampPrecision(tt.precision, &warn); got != tt.want {
			t.Errorf("ClampPrecision(%d) = %d, want %d", tt.precision, got, tt.want)
		}
		if warned := warn.Len() > 0; warned != tt.warned {
			t.Errorf("ClampPrecision(%d): warning emitted = %v, want %v", tt.precision, warned, tt.warned)
		}
	}
}

func TestRunClampsOutOfRangePrecision(t *testing.T) {
	var out, errw bytes.Buffer

	err := run(Config{Precision: 15}, strings.NewReader("1 2"), &out, &errw)
	if err != nil {
		t.Fatalf("out-of-range precision must not be fatal, got %v", err)
	}

	if !strings.Contains(errw.String(), "Warning: precision") {
		t.Fatalf("expected precision warning on stderr, got %q", errw.String())
	}
	// Default precision is 4 digits.
	if !strings.Contains(out.String(), "  Mean:    1.5000\n") {
		t.Fatalf("expected default precision in output:\n%s", out.String())
	}
}

func TestRunFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte("2 4 4 4 5 5 7 9\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	var out, errw bytes.Buffer
	if err := Run(Config{Precision: 0, InputFile: path}, &out, &errw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "  StdDev:  2\n") {
		t.Fatalf("expected stddev 2 at precision 0:\n%s", out.String())
	}
}

func TestRunMissingFile(t *testing.T) {
	var out, errw bytes.Buffer

	err := Run(Config{Precision: 4, InputFile: filepath.Join(t.TempDir(), "absent.txt")}, &out, &errw)
	if err == nil {
		t.Fatal("expected an error for a missing input file")
	}
	if out.Len() != 0 {
		t.Fatalf("no output expected on configuration error, got %q", out.String())
	}
}
