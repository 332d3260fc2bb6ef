// Package stats provides rank-based statistical tests for ordered group comparisons.
package stats

import "sort"

// Ranking holds pooled mid-ranks and tie accounting for a set of values.
type Ranking struct {
	// Ranks contains the mid-rank of each value, indexed by original position.
	Ranks []float64
	// TieSum is the sum over tie blocks of m^3 - m, where m is the block size.
	TieSum float64
}

// MidRanks ranks the pooled values ascending using the mid-rank convention:
// a block of m tied values occupying sorted positions a..a+m-1 all receive
// the mean of those positions. Untied values receive their ordinary rank.
func MidRanks(values []float64) *Ranking {
	n := len(values)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return values[idx[a]] < values[idx[b]]
	})

	ranks := make([]float64, n)
	tieSum := 0.0

	for i := 0; i < n; {
		j := i
		for j < n && values[idx[j]] == values[idx[i]] {
			j++
		}
		// Block occupies 1-indexed positions i+1..j; assign the mean position.
		r := float64(i+j+1) / 2
		for t := i; t < j; t++ {
			ranks[idx[t]] = r
		}
		if m := float64(j - i); m > 1 {
			tieSum += m*m*m - m
		}
		i = j
	}

	return &Ranking{
		Ranks:  ranks,
		TieSum: tieSum,
	}
}

// Correction returns the normalized tie-correction term TieSum / (n^3 - n),
// used to deflate rank-sum variances in the presence of ties. It is 0 when
// there are no ties or when n <= 1.
func (r *Ranking) Correction() float64 {
	n := float64(len(r.Ranks))
	den := n*n*n - n
	if den == 0 {
		return 0
	}
	return r.TieSum / den
}
