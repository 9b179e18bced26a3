package bands

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vibrolab/vibrostats/psd"
)

func flatCurve(t *testing.T, n int) *psd.Curve {
	t.Helper()
	freqs := make([]float64, n)
	values := make([]float64, n)
	for i := range freqs {
		freqs[i] = float64(i)
		values[i] = 1
	}
	c, err := psd.NewCurve(freqs, values)
	require.NoError(t, err)
	return c
}

func TestSplitEqualAreaSingleBand(t *testing.T) {
	c := flatCurve(t, 5)

	bounds, err := Split(c, EqualAreaBands{N: 1})
	require.NoError(t, err)
	require.Equal(t, []int{4}, bounds)
}

func TestSplitEqualAreaFlat(t *testing.T) {
	c := flatCurve(t, 8)

	bounds, err := Split(c, EqualAreaBands{N: 4})
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 5, 7}, bounds)
}

func TestSplitEqualAreaProperties(t *testing.T) {
	freqs := make([]float64, 64)
	values := make([]float64, 64)
	for i := range freqs {
		freqs[i] = float64(i) * 0.5
		values[i] = float64(i%7) + 0.25
	}
	c, err := psd.NewCurve(freqs, values)
	require.NoError(t, err)

	for _, n := range []int{1, 2, 3, 5, 8} {
		bounds, err := Split(c, EqualAreaBands{N: n})
		require.NoError(t, err)
		require.Len(t, bounds, n)
		for k := 1; k < len(bounds); k++ {
			require.Greater(t, bounds[k], bounds[k-1])
		}
		require.Equal(t, c.Len()-1, bounds[n-1])
	}
}

func TestSplitEqualAreaTrailingZeros(t *testing.T) {
	c, err := psd.NewCurve([]float64{0, 1, 2, 3}, []float64{1, 1, 0, 0})
	require.NoError(t, err)

	// The cumulative sum plateaus at index 1, but the final band still has
	// to end at the last PSD index.
	bounds, err := Split(c, EqualAreaBands{N: 1})
	require.NoError(t, err)
	require.Equal(t, []int{3}, bounds)
}

func TestSplitUserDefined(t *testing.T) {
	c := flatCurve(t, 5)

	bounds, err := Split(c, UserDefinedBands{Frequencies: []float64{2}})
	require.NoError(t, err)
	require.Equal(t, []int{2}, bounds)

	bounds, err = Split(c, UserDefinedBands{Frequencies: []float64{1.9, 4.2}})
	require.NoError(t, err)
	require.Equal(t, []int{2, 4}, bounds)
}

func TestSplitUserDefinedExactFrequencies(t *testing.T) {
	freqs := make([]float64, 16)
	values := make([]float64, 16)
	for i := range freqs {
		freqs[i] = float64(i) * 2.5
		values[i] = 1
	}
	c, err := psd.NewCurve(freqs, values)
	require.NoError(t, err)

	// Targets already on the sample grid must map to their own indices.
	bounds, err := Split(c, UserDefinedBands{Frequencies: []float64{0, 7.5, 25, 37.5}})
	require.NoError(t, err)
	require.Equal(t, []int{0, 3, 10, 15}, bounds)
}

func TestSplitErrors(t *testing.T) {
	c := flatCurve(t, 5)

	_, err := Split(c, nil)
	require.True(t, errors.Is(err, ErrUnknownMethod))

	_, err = Split(c, EqualAreaBands{N: 0})
	require.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = Split(c, EqualAreaBands{N: -3})
	require.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = Split(c, UserDefinedBands{})
	require.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = Split(c, UserDefinedBands{Frequencies: []float64{1, math.NaN()}})
	require.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = Split(c, UserDefinedBands{Frequencies: []float64{math.Inf(1)}})
	require.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestRanges(t *testing.T) {
	require.Equal(t, [][2]int{{0, 4}}, Ranges([]int{4}))

	// Adjacent bands share the boundary row with the previous band's end.
	require.Equal(t, [][2]int{{0, 2}, {2, 5}, {5, 9}}, Ranges([]int{2, 5, 9}))
}
