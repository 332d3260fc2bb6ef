// Package grouped provides data structures for pooled observations with ordered group labels.
package grouped

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Validation errors reported at sample construction.
var (
	// ErrInvalidShape indicates the observation data is empty, mismatched,
	// or contains non-finite values.
	ErrInvalidShape = errors.New("invalid observation shape")

	// ErrNonIntegerLabel indicates a group label that is not a whole number.
	ErrNonIntegerLabel = errors.New("group label is not a whole number")

	// ErrNonConsecutiveLabels indicates group labels that do not form the
	// consecutive range 1..k.
	ErrNonConsecutiveLabels = errors.New("group labels are not consecutive from 1")
)

// Sample represents pooled observations, each tagged with a group label.
// Labels always form the consecutive range 1..k for some k >= 1; this is
// enforced at construction and holds for the lifetime of the sample.
type Sample struct {
	Values []float64
	Labels []int

	groups int
}

// New creates a sample from parallel value and label slices.
// Values must be finite; labels must cover the range 1..k with no gaps.
func New(values []float64, labels []int) (*Sample, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no observations", ErrInvalidShape)
	}
	if len(values) != len(labels) {
		return nil, fmt.Errorf("%w: %d values but %d labels", ErrInvalidShape, len(values), len(labels))
	}

	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: value %v at index %d is not finite", ErrInvalidShape, v, i)
		}
	}

	seen := make(map[int]bool)
	maxLabel := labels[0]
	for i, l := range labels {
		if l < 1 {
			return nil, fmt.Errorf("%w: label %d at index %d (labels start at 1)", ErrNonConsecutiveLabels, l, i)
		}
		if l > maxLabel {
			maxLabel = l
		}
		seen[l] = true
	}
	if len(seen) != maxLabel {
		return nil, fmt.Errorf("%w: %d distinct labels but maximum label is %d", ErrNonConsecutiveLabels, len(seen), maxLabel)
	}

	vals := make([]float64, len(values))
	copy(vals, values)
	labs := make([]int, len(labels))
	copy(labs, labels)

	return &Sample{
		Values: vals,
		Labels: labs,
		groups: maxLabel,
	}, nil
}

// FromMatrix creates a sample from a two-column matrix where each row is
// (value, group label). The label column must hold exact whole numbers.
func FromMatrix(rows [][]float64) (*Sample, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no observations", ErrInvalidShape)
	}

	values := make([]float64, len(rows))
	labels := make([]int, len(rows))
	for i, row := range rows {
		if len(row) != 2 {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected 2", ErrInvalidShape, i, len(row))
		}
		l := row[1]
		if math.IsNaN(l) || math.IsInf(l, 0) || l != math.Trunc(l) {
			return nil, fmt.Errorf("%w: %v at row %d", ErrNonIntegerLabel, l, i)
		}
		values[i] = row[0]
		labels[i] = int(l)
	}

	return New(values, labels)
}

// Len returns the total number of pooled observations.
func (s *Sample) Len() int {
	return len(s.Values)
}

// Groups returns the number of groups k.
func (s *Sample) Groups() int {
	return s.groups
}

// GroupSizes returns the observation count of each group, indexed 0..k-1
// for groups 1..k. The counts always sum to Len().
func (s *Sample) GroupSizes() []int {
	sizes := make([]int, s.groups)
	for _, l := range s.Labels {
		sizes[l-1]++
	}
	return sizes
}

// GroupValues returns the values belonging to group g (1-based).
// Returns nil if g is out of range.
func (s *Sample) GroupValues(g int) []float64 {
	if g < 1 || g > s.groups {
		return nil
	}
	var values []float64
	for i, l := range s.Labels {
		if l == g {
			values = append(values, s.Values[i])
		}
	}
	return values
}

// GroupStats holds descriptive statistics for a single group.
type GroupStats struct {
	Group  int
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summary computes descriptive statistics for each group.
func (s *Sample) Summary() []GroupStats {
	summary := make([]GroupStats, s.groups)
	for g := 1; g <= s.groups; g++ {
		values := s.GroupValues(g)
		gs := GroupStats{
			Group: g,
			N:     len(values),
			Mean:  stat.Mean(values, nil),
			Min:   values[0],
			Max:   values[0],
		}
		if len(values) > 1 {
			gs.StdDev = stat.StdDev(values, nil)
		}
		for _, v := range values[1:] {
			if v < gs.Min {
				gs.Min = v
			}
			if v > gs.Max {
				gs.Max = v
			}
		}
		summary[g-1] = gs
	}
	return summary
}
