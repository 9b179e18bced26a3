package bands

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/vibrolab/vibrostats/psd"
)

// Split maps a splitting policy onto a PSD and returns the upper boundary
// index of every band, in ascending band order. The last boundary is always
// the last PSD index.
func Split(c *psd.Curve, p Policy) ([]int, error) {
	switch policy := p.(type) {
	case EqualAreaBands:
		return equalAreaBands(c, policy.N)
	case UserDefinedBands:
		return userDefinedBands(c, policy.Frequencies)
	case nil:
		return nil, fmt.Errorf("%w: nil policy", ErrUnknownMethod)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownMethod, p)
	}
}

// Ranges converts boundary indices into inclusive [start, end] row ranges,
// one per band. Band 0 starts at row 0; every later band starts at the
// previous boundary row, so adjacent bands share that row.
func Ranges(bounds []int) [][2]int {
	ranges := make([][2]int, len(bounds))
	start := 0
	for k, b := range bounds {
		ranges[k] = [2]int{start, b}
		start = b
	}
	return ranges
}

// equalAreaBands selects, for each band k in 1..n, the index whose
// cumulative magnitude sum lies nearest k/n of the total sum.
func equalAreaBands(c *psd.Curve, n int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: band count must be positive, got %d", ErrInvalidArgument, n)
	}

	total := floats.Sum(c.Values)
	cumulative := floats.CumSum(make([]float64, c.Len()), c.Values)

	bounds := make([]int, n)
	for k := 1; k <= n; k++ {
		target := float64(k) * total / float64(n)
		bounds[k-1] = nearestIndex(cumulative, target)
	}
	// The whole spectrum must be covered even when trailing magnitudes are
	// zero and the cumulative sum plateaus early.
	bounds[n-1] = c.Len() - 1

	return bounds, nil
}

// userDefinedBands selects the index of the sample frequency nearest each
// target frequency.
func userDefinedBands(c *psd.Curve, targets []float64) ([]int, error) {
	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: no band frequencies given", ErrInvalidArgument)
	}

	bounds := make([]int, len(targets))
	for k, target := range targets {
		if math.IsNaN(target) || math.IsInf(target, 0) {
			return nil, fmt.Errorf("%w: band frequency %v is not finite", ErrInvalidArgument, target)
		}
		bounds[k] = nearestIndex(c.Frequencies, target)
	}

	return bounds, nil
}

// nearestIndex returns the index of the value closest to target by absolute
// difference, keeping the first index on ties.
func nearestIndex(values []float64, target float64) int {
	best := 0
	bestDist := math.Abs(values[0] - target)
	for i := 1; i < len(values); i++ {
		if d := math.Abs(values[i] - target); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
