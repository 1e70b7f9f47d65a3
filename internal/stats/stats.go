// Package stats computes descriptive statistics over an in-memory sample
// of float64 values. The sample is sorted in place as part of the
// computation; callers that need the original ordering must copy first.
package stats

import (
	"math"
	"slices"
)

// Stats is an immutable snapshot of the descriptive statistics of one
// sample. It is constructed once by Compute and read-only thereafter.
type Stats struct {
	Count    int     // Number of values in the sample.
	Sum      float64 // Sum of all values.
	Mean     float64 // Arithmetic mean (Sum / Count).
	Min      float64 // Smallest value.
	Max      float64 // Largest value.
	Range    float64 // Max - Min.
	Median   float64 // 50th percentile.
	Q1       float64 // 25th percentile.
	Q3       float64 // 75th percentile.
	Variance float64 // Population variance (denominator Count, not Count-1).
	StdDev   float64 // Square root of Variance.
}

// Compute derives the full Stats record from values. The sample must be
// non-empty; callers check for the empty case before calling. The slice is
// sorted ascending in place as a side effect, but the resulting Stats are
// the same for any permutation of the same values.
func Compute(values []float64) Stats {
	s := Stats{
		Count: len(values),
		Min:   values[0],
		Max:   values[0],
	}

	for _, v := range values {
		s.Sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}

	s.Mean = s.Sum / float64(s.Count)
	s.Range = s.Max - s.Min

	for _, v := range values {
		diff := v - s.Mean
		s.Variance += diff * diff
	}
	s.Variance /= float64(s.Count)
	s.StdDev = math.Sqrt(s.Variance)

	slices.SortFunc(values, compare)

	s.Median = Percentile(values, 0.50)
	s.Q1 = Percentile(values, 0.25)
	s.Q3 = Percentile(values, 0.75)

	return s
}

// compare is a three-way comparison on the sign of a-b. NaN operands make
// every comparison false, so a NaN compares as equal to anything; that
// equivalence class is deliberate, not a bug to fix with a NaN-aware
// comparator.
func compare(a, b float64) int {
	switch diff := a - b; {
	case diff < 0:
		return -1
	case diff > 0:
		return 1
	default:
		return 0
	}
}

// Percentile estimates the p-th percentile (p in [0, 1]) of an ascending
// sorted sample using linear interpolation between the two nearest order
// statistics at fractional rank p*(n-1), the R-7 method used by R and
// spreadsheets. An empty sample yields 0.
func Percentile(sorted []float64, p float64) float64 {
	count := len(sorted)
	if count == 0 {
		return 0.0
	}
	if count == 1 {
		return sorted[0]
	}

	index := p * float64(count-1)
	lower := int(index)
	upper := lower + 1

	if upper >= count {
		return sorted[count-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
