// Package report renders test results as fixed-width console tables.
//
// The renderer is a read-only consumer of result records; it never feeds
// back into the computation.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/sartorproj/gotrend/stats"
)

const divider = "----------------------------------------"

// Write renders a trend test result to w as a fixed-width table.
func Write(w io.Writer, r *stats.CuzickResult) error {
	_, err := io.WriteString(w, Format(r))
	return err
}

// Format renders a trend test result as a fixed-width table.
func Format(r *stats.CuzickResult) string {
	var b strings.Builder

	b.WriteString("Cuzick's test for trend\n")
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "%5s %9s %6s %11s\n", "Group", "Score", "N", "Rank sum")
	for _, g := range r.Groups {
		fmt.Fprintf(&b, "%5d %9.2f %6d %11.1f\n", g.Group, g.Score, g.N, g.RankSum)
	}
	b.WriteString(divider + "\n")

	fmt.Fprintf(&b, "L = %.1f  T = %.1f  E(T) = %.1f\n", r.L, r.T, r.E)
	fmt.Fprintf(&b, "Var(T) = %.4f  ties factor = %.0f\n", r.Variance, r.TiesFactor)
	fmt.Fprintf(&b, "z = %.4f\n", r.Z)
	fmt.Fprintf(&b, "p-value (%s tail) = %.5f\n", r.Tail, r.PValue)

	return b.String()
}
