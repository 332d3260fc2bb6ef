package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gotrend/grouped"
)

// Errors reported by the trend test.
var (
	// ErrScoreLengthMismatch indicates a score vector whose length does not
	// equal the number of groups.
	ErrScoreLengthMismatch = errors.New("score length does not match group count")

	// ErrDegenerateScore indicates a score vector with fewer than two
	// distinct finite values, which leaves the trend direction undefined.
	ErrDegenerateScore = errors.New("degenerate score vector")

	// ErrDegenerateVariance indicates a null variance that is not strictly
	// positive, so the z-statistic is undefined.
	ErrDegenerateVariance = errors.New("null variance is not positive")
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// GroupSummary holds the per-group quantities entering the trend statistic.
type GroupSummary struct {
	Group   int
	Score   float64
	N       int
	RankSum float64
}

// CuzickResult represents the result of Cuzick's test for trend.
type CuzickResult struct {
	Groups []GroupSummary

	L        float64 // Weighted sample size: sum of score_i * n_i
	T        float64 // Trend statistic: sum of score_i * R_i
	E        float64 // Null expectation of T
	Variance float64 // Null variance of T, tie-adjusted
	Z        float64 // |T - E| / sqrt(Variance)
	PValue   float64 // One-sided, right tail
	Tail     string  // Always "right"

	// TiesFactor is the pooled tie term sum(m^3 - m) over tie blocks.
	TiesFactor float64
}

// DefaultScores returns the default score vector 1..k.
func DefaultScores(k int) []float64 {
	scores := make([]float64, k)
	for i := range scores {
		scores[i] = float64(i + 1)
	}
	return scores
}

// Cuzick performs Cuzick's nonparametric test for a monotonic trend across
// k ordered groups. The null hypothesis is that the groups share a common
// distribution; a small p-value indicates a trend in the direction of the
// scores. Scores encode the assumed spacing of the groups; pass nil to use
// the default 1..k.
//
// The p-value is one-sided (right tail) from the normal approximation to
// the weighted rank-sum statistic T, with exact tie adjustment of the
// variance.
func Cuzick(sample *grouped.Sample, scores []float64) (*CuzickResult, error) {
	k := sample.Groups()

	if len(scores) == 0 {
		scores = DefaultScores(k)
	}
	if len(scores) != k {
		return nil, fmt.Errorf("%w: %d scores for %d groups", ErrScoreLengthMismatch, len(scores), k)
	}
	distinct := false
	for i, s := range scores {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, fmt.Errorf("%w: score %v at index %d is not finite", ErrDegenerateScore, s, i)
		}
		if s != scores[0] {
			distinct = true
		}
	}
	if !distinct {
		return nil, fmt.Errorf("%w: all %d scores equal %v", ErrDegenerateScore, k, scores[0])
	}

	ranking := MidRanks(sample.Values)
	sizes := sample.GroupSizes()
	n := float64(sample.Len())

	rankSums := make([]float64, k)
	for i, l := range sample.Labels {
		rankSums[l-1] += ranking.Ranks[i]
	}

	var sumL, sumT, sumS2N float64
	for i := 0; i < k; i++ {
		sumL += scores[i] * float64(sizes[i])
		sumT += scores[i] * rankSums[i]
		sumS2N += scores[i] * scores[i] * float64(sizes[i])
	}

	e := sumL * (n + 1) / 2
	variance := (n*sumS2N-sumL*sumL)*(n+1)/12 - ranking.TieSum/12
	if variance <= 0 {
		return nil, fmt.Errorf("%w: variance %v", ErrDegenerateVariance, variance)
	}

	z := math.Abs(sumT-e) / math.Sqrt(variance)

	groups := make([]GroupSummary, k)
	for i := 0; i < k; i++ {
		groups[i] = GroupSummary{
			Group:   i + 1,
			Score:   scores[i],
			N:       sizes[i],
			RankSum: rankSums[i],
		}
	}

	return &CuzickResult{
		Groups:     groups,
		L:          sumL,
		T:          sumT,
		E:          e,
		Variance:   variance,
		Z:          z,
		PValue:     1 - stdNormal.CDF(z),
		Tail:       "right",
		TiesFactor: ranking.TieSum,
	}, nil
}
