// Package numstream extracts floating-point samples from a character
// stream of whitespace-separated tokens.
package numstream

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Read scans whitespace-delimited tokens from r and parses each as a
// float64 (decimal or exponent notation), appending to the returned
// sample. Reading stops at the first token that fails to parse or at end
// of stream; bad tokens are never skipped over, and trailing garbage is
// not an error. An empty result is not an error either; callers decide
// whether zero samples is acceptable. The returned error is non-nil only
// when the underlying stream itself fails.
func Read(r io.Reader) ([]float64, error) {
	var values []float64

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			break
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return values, nil
}

// ReadString is Read over an in-memory string, used by the interactive
// explorer where each input line is already materialized.
func ReadString(s string) []float64 {
	values, _ := Read(strings.NewReader(s))
	return values
}
