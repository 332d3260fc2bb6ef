// Package gotrend provides nonparametric trend testing across ordered groups.
//
// GoTrend implements Cuzick's test for trend (Cuzick, 1985), a rank-based
// test for a monotonic relationship between group ordering and response
// distribution across three or more independently sampled groups, together
// with the Kruskal-Wallis test for unordered group comparisons.
//
// # Features
//
//   - Cuzick's test for trend with exact tie adjustment
//   - Pooled mid-rank computation with tie accounting
//   - Kruskal-Wallis rank test for unordered groups
//   - Custom group scores for unequal spacing along the trend axis
//   - Per-group descriptive summaries
//   - CSV loading of grouped observations
//
// # Quick Start
//
// Test for a trend across ordered dose groups:
//
//	sample, _ := grouped.New(values, labels) // labels in 1..k
//	result, _ := stats.Cuzick(sample, nil)   // default scores 1..k
//	fmt.Printf("z=%.4f p=%.5f\n", result.Z, result.PValue)
//
// Render a console report:
//
//	report.Write(os.Stdout, result)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - grouped: Grouped observation data structures and loading
//   - stats: Rank computation and the statistical tests
//   - report: Fixed-width console rendering of results
//
// # References
//
//   - Cuzick, J. (1985). A Wilcoxon-type test for trend. Statistics in Medicine, 4, 87-90.
//   - Altman, D.G. (1991). Practical Statistics for Medical Research.
package gotrend
