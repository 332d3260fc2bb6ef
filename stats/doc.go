// Package stats provides rank-based statistical tests for grouped observations.
//
// This package includes pooled mid-rank computation with tie accounting,
// Cuzick's test for trend across ordered groups, and the Kruskal-Wallis
// test for unordered group comparisons.
//
// # Trend Test
//
// Test for a monotonic trend across ordered groups:
//
//	// Cuzick's test for trend
//	// H0: All groups share a common distribution (no trend)
//	// One-sided, right tail: small p means a trend along the scores.
//	result, err := stats.Cuzick(sample, nil) // default scores 1..k
//	fmt.Printf("Cuzick: T=%.1f, z=%.4f, p=%.5f\n",
//	    result.T, result.Z, result.PValue)
//
// Custom scores encode unequal group spacing along the trend axis:
//
//	result, err := stats.Cuzick(sample, []float64{0, 1, 10, 100})
//
// The z-statistic is invariant under positive affine transforms of the
// scores: a*score+b with a > 0 yields the same significance.
//
// # Unordered Comparison
//
// When no trend direction is assumed, test for any group difference:
//
//	// Kruskal-Wallis test
//	// H0: All groups share a common distribution
//	kw, err := stats.KruskalWallis(sample)
//	fmt.Printf("KW: H=%.4f, df=%d, p=%.5f\n",
//	    kw.Statistic, kw.DOF, kw.PValue)
//
// # Ranks
//
// Compute pooled mid-ranks directly:
//
//	ranking := stats.MidRanks(values)
//	// ranking.Ranks: mid-rank per observation
//	// ranking.TieSum: sum of m^3 - m over tie blocks
//	// ranking.Correction(): normalized tie-correction term
package stats
