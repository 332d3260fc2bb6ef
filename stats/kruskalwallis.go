package stats

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gotrend/grouped"
)

// ErrTooFewGroups indicates a sample with fewer groups than the test requires.
var ErrTooFewGroups = errors.New("too few groups")

// KruskalWallisResult represents the result of a Kruskal-Wallis test.
type KruskalWallisResult struct {
	Statistic float64 // H statistic, tie-adjusted
	PValue    float64
	DOF       int // Degrees of freedom (k - 1)
}

// KruskalWallis performs the Kruskal-Wallis rank test for differences among
// k unordered groups. The null hypothesis is that all groups share a common
// distribution. Unlike Cuzick's test it is insensitive to group ordering;
// use it when no monotonic trend direction is assumed.
func KruskalWallis(sample *grouped.Sample) (*KruskalWallisResult, error) {
	k := sample.Groups()
	if k < 2 {
		return nil, fmt.Errorf("%w: %d group(s), need at least 2", ErrTooFewGroups, k)
	}

	ranking := MidRanks(sample.Values)
	sizes := sample.GroupSizes()
	n := float64(sample.Len())

	rankSums := make([]float64, k)
	for i, l := range sample.Labels {
		rankSums[l-1] += ranking.Ranks[i]
	}

	h := 0.0
	for i := 0; i < k; i++ {
		h += rankSums[i] * rankSums[i] / float64(sizes[i])
	}
	h = 12/(n*(n+1))*h - 3*(n+1)
	if h < 0 {
		// Floating error can push an exactly-zero statistic slightly negative.
		h = 0
	}

	// Tie adjustment divides H by 1 - sum(m^3 - m)/(n^3 - n).
	adjust := 1 - ranking.Correction()
	if adjust <= 0 {
		return nil, fmt.Errorf("%w: all observations are tied", ErrDegenerateVariance)
	}
	h /= adjust

	dof := k - 1
	chi2 := distuv.ChiSquared{K: float64(dof)}

	return &KruskalWallisResult{
		Statistic: h,
		PValue:    1 - chi2.CDF(h),
		DOF:       dof,
	}, nil
}
