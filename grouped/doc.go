// Package grouped provides data structures for grouped observations.
//
// This package includes the Sample type for pooled observations tagged with
// ordered group labels, along with functions for data loading, validation,
// and per-group summaries.
//
// # Creating a Sample
//
// Create a sample from parallel slices:
//
//	values := []float64{0, 1, 1, 2, 5, 7, 2, 3, 6}
//	labels := []int{1, 1, 1, 2, 2, 2, 3, 3, 3}
//	sample, err := grouped.New(values, labels)
//
// Group labels must form the consecutive range 1..k; gaps and labels that
// do not start at 1 are rejected at construction.
//
// Create a sample from a two-column (value, group) matrix:
//
//	sample, err := grouped.FromMatrix(rows)
//
// # Loading from CSV
//
// Load grouped observations from CSV files:
//
//	// Default columns "value" and "group"
//	sample, err := grouped.LoadCSV("doses.csv", nil)
//
//	// Custom columns
//	opts := grouped.DefaultCSVOptions()
//	opts.ValueColumn = "response"
//	opts.GroupColumn = "dose"
//	sample, err := grouped.LoadCSV("doses.csv", opts)
//
// # Partitioning and Summaries
//
// Inspect the group structure:
//
//	n := sample.Len()          // pooled observation count
//	k := sample.Groups()       // number of groups
//	sizes := sample.GroupSizes() // per-group counts, sum to n
//	g2 := sample.GroupValues(2)  // values in group 2
//
// Compute descriptive statistics per group:
//
//	for _, gs := range sample.Summary() {
//	    fmt.Printf("group %d: n=%d mean=%.2f sd=%.2f\n",
//	        gs.Group, gs.N, gs.Mean, gs.StdDev)
//	}
package grouped
