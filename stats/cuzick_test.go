package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/sartorproj/gotrend/grouped"
)

// referenceSample is the five-group dataset from Cuzick (1985) with heavy
// ties across groups.
func referenceSample(t *testing.T) *grouped.Sample {
	t.Helper()

	values := []float64{
		0, 0, 1, 1, 2, 2, 4, 9,
		0, 0, 5, 7, 8, 11, 13, 23, 25, 97,
		2, 3, 6, 9, 10, 11, 11, 12, 21,
		0, 3, 5, 6, 10, 19, 56, 100, 132,
		2, 4, 6, 6, 6, 7, 18, 39, 60,
	}
	labels := make([]int, 0, len(values))
	for g, count := range []int{8, 10, 9, 9, 9} {
		for i := 0; i < count; i++ {
			labels = append(labels, g+1)
		}
	}

	sample, err := grouped.New(values, labels)
	if err != nil {
		t.Fatalf("building reference sample: %v", err)
	}
	return sample
}

func TestCuzickReference(t *testing.T) {
	sample := referenceSample(t)

	result, err := Cuzick(sample, nil)
	if err != nil {
		t.Fatalf("Cuzick returned error: %v", err)
	}

	if math.Abs(result.L-136) > 1e-9 {
		t.Errorf("L = %v, want 136", result.L)
	}
	if math.Abs(result.T-3386.5) > 1e-9 {
		t.Errorf("T = %v, want 3386.5", result.T)
	}
	if math.Abs(result.E-3128) > 1e-9 {
		t.Errorf("E = %v, want 3128", result.E)
	}
	if math.Abs(result.Variance-14973.1666666667) > 1e-6 {
		t.Errorf("Variance = %v, want ~14973.1667", result.Variance)
	}
	if math.Abs(result.Z-2.1125) > 5e-4 {
		t.Errorf("Z = %v, want ~2.1125", result.Z)
	}
	if math.Abs(result.PValue-0.01732) > 1e-4 {
		t.Errorf("PValue = %v, want ~0.01732", result.PValue)
	}
	if result.TiesFactor != 366 {
		t.Errorf("TiesFactor = %v, want 366", result.TiesFactor)
	}
	if result.Tail != "right" {
		t.Errorf("Tail = %q, want \"right\"", result.Tail)
	}

	wantN := []int{8, 10, 9, 9, 9}
	wantR := []float64{79, 256, 229, 246.5, 224.5}
	for i, g := range result.Groups {
		if g.Group != i+1 {
			t.Errorf("Groups[%d].Group = %d, want %d", i, g.Group, i+1)
		}
		if g.Score != float64(i+1) {
			t.Errorf("Groups[%d].Score = %v, want %d (default scores)", i, g.Score, i+1)
		}
		if g.N != wantN[i] {
			t.Errorf("Groups[%d].N = %d, want %d", i, g.N, wantN[i])
		}
		if math.Abs(g.RankSum-wantR[i]) > 1e-9 {
			t.Errorf("Groups[%d].RankSum = %v, want %v", i, g.RankSum, wantR[i])
		}
	}
}

func TestDefaultScores(t *testing.T) {
	scores := DefaultScores(5)
	for i, s := range scores {
		if s != float64(i+1) {
			t.Errorf("DefaultScores[%d] = %v, want %d", i, s, i+1)
		}
	}
}

func TestCuzickDefaultScoresMatchExplicit(t *testing.T) {
	sample := referenceSample(t)

	implicit, err := Cuzick(sample, nil)
	if err != nil {
		t.Fatalf("Cuzick returned error: %v", err)
	}
	explicit, err := Cuzick(sample, []float64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("Cuzick returned error: %v", err)
	}

	if implicit.Z != explicit.Z || implicit.PValue != explicit.PValue {
		t.Errorf("nil scores gave z=%v p=%v, explicit 1..5 gave z=%v p=%v",
			implicit.Z, implicit.PValue, explicit.Z, explicit.PValue)
	}
}

func TestCuzickScoreAffineInvariance(t *testing.T) {
	// z is invariant under score -> a*score + b with a > 0 when there are
	// no ties: numerator and variance then scale identically with a. The
	// tie correction subtracts a fixed TieSum/12 that does not scale with
	// the scores, so with tied data the invariance is only approximate.
	sample, err := grouped.New(
		[]float64{1.2, 3.4, 2.2, 5.6, 4.1, 7.3, 6.8, 9.9, 8.5},
		[]int{1, 1, 1, 2, 2, 2, 3, 3, 3},
	)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	base, err := Cuzick(sample, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("Cuzick returned error: %v", err)
	}
	transformed, err := Cuzick(sample, []float64{12, 19, 26})
	if err != nil {
		t.Fatalf("Cuzick returned error: %v", err)
	}

	if math.Abs(base.Z-transformed.Z) > 1e-12 {
		t.Errorf("z not affine-invariant: %v vs %v", base.Z, transformed.Z)
	}
	if math.Abs(base.PValue-transformed.PValue) > 1e-12 {
		t.Errorf("p not affine-invariant: %v vs %v", base.PValue, transformed.PValue)
	}
}

func TestCuzickScoreAffineNearInvarianceWithTies(t *testing.T) {
	// With heavy ties the fixed tie correction breaks exact invariance;
	// the significance should still move only marginally.
	sample := referenceSample(t)

	base, err := Cuzick(sample, []float64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("Cuzick returned error: %v", err)
	}
	transformed, err := Cuzick(sample, []float64{12, 19, 26, 33, 40})
	if err != nil {
		t.Fatalf("Cuzick returned error: %v", err)
	}

	if math.Abs(base.Z-transformed.Z) > 0.01 {
		t.Errorf("z drifted too far under affine scores: %v vs %v", base.Z, transformed.Z)
	}
	t.Logf("tied data: z=%.6f vs %.6f under score rescaling", base.Z, transformed.Z)
}

func TestCuzickUnequalSpacing(t *testing.T) {
	sample := referenceSample(t)

	result, err := Cuzick(sample, []float64{0, 1, 10, 50, 100})
	if err != nil {
		t.Fatalf("Cuzick returned error: %v", err)
	}

	if result.PValue < 0 || result.PValue > 1 {
		t.Errorf("PValue = %v, want within [0, 1]", result.PValue)
	}
	if result.Z < 0 {
		t.Errorf("Z = %v, want >= 0", result.Z)
	}
	t.Logf("unequal spacing: z=%.4f p=%.5f", result.Z, result.PValue)
}

func TestCuzickScoreErrors(t *testing.T) {
	sample := referenceSample(t)

	tests := []struct {
		name   string
		scores []float64
		want   error
	}{
		{
			name:   "too short",
			scores: []float64{1, 2, 3},
			want:   ErrScoreLengthMismatch,
		},
		{
			name:   "too long",
			scores: []float64{1, 2, 3, 4, 5, 6},
			want:   ErrScoreLengthMismatch,
		},
		{
			name:   "constant",
			scores: []float64{3, 3, 3, 3, 3},
			want:   ErrDegenerateScore,
		},
		{
			name:   "NaN score",
			scores: []float64{1, 2, math.NaN(), 4, 5},
			want:   ErrDegenerateScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Cuzick(sample, tt.scores)
			if !errors.Is(err, tt.want) {
				t.Errorf("Cuzick error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCuzickDegenerateVariance(t *testing.T) {
	// Every observation tied: the tie adjustment wipes out the variance.
	sample, err := grouped.New(
		[]float64{5, 5, 5, 5, 5, 5},
		[]int{1, 1, 2, 2, 3, 3},
	)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, err = Cuzick(sample, nil)
	if !errors.Is(err, ErrDegenerateVariance) {
		t.Errorf("Cuzick error = %v, want %v", err, ErrDegenerateVariance)
	}
}

func TestCuzickReversedOrdering(t *testing.T) {
	// The z-statistic uses |T - E|, so reversing the group order must give
	// the same significance.
	sample := referenceSample(t)

	forward, err := Cuzick(sample, []float64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("Cuzick returned error: %v", err)
	}
	reversed, err := Cuzick(sample, []float64{5, 4, 3, 2, 1})
	if err != nil {
		t.Fatalf("Cuzick returned error: %v", err)
	}

	if math.Abs(forward.Z-reversed.Z) > 1e-9 {
		t.Errorf("z changed under score reversal: %v vs %v", forward.Z, reversed.Z)
	}
}

func TestCuzickNoTrend(t *testing.T) {
	// Interleaved identical groups: no trend, p should be large.
	sample, err := grouped.New(
		[]float64{1, 2, 3, 4, 1, 2, 3, 4, 1, 2, 3, 4},
		[]int{1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3},
	)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	result, err := Cuzick(sample, nil)
	if err != nil {
		t.Fatalf("Cuzick returned error: %v", err)
	}

	if result.Z > 1e-9 {
		t.Errorf("Z = %v, want 0 for identical group distributions", result.Z)
	}
	if math.Abs(result.PValue-0.5) > 1e-9 {
		t.Errorf("PValue = %v, want 0.5 at z=0", result.PValue)
	}
}
