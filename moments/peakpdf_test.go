package moments

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/integrate"
)

func TestPeakAmplitudePDFNarrowbandLimit(t *testing.T) {
	// As alpha2 approaches 1 the density reduces to the Rayleigh density
	// s/m0·exp(-s²/(2·m0)).
	const m0 = 1.0
	s := []float64{0.25, 0.5, 1, 2, 3}

	pdf := PeakAmplitudePDF(m0, 1-1e-9, s)
	for n, x := range s {
		rayleigh := x / m0 * math.Exp(-x*x/(2*m0))
		require.InDelta(t, rayleigh, pdf[n], 1e-4)
	}
}

func TestPeakAmplitudePDFBroadbandLimit(t *testing.T) {
	// At alpha2 = 0 the density is the Gaussian with variance m0.
	const m0 = 2.0
	s := []float64{-2, -1, 0, 1, 2}

	pdf := PeakAmplitudePDF(m0, 0, s)
	for n, x := range s {
		gaussian := 1 / math.Sqrt(2*math.Pi*m0) * math.Exp(-x*x/(2*m0))
		require.InDelta(t, gaussian, pdf[n], 1e-12)
	}
}

func TestPeakAmplitudePDFNormalization(t *testing.T) {
	// The density integrates to one over the whole stress axis for any
	// intermediate bandwidth.
	const (
		m0     = 2.0
		alpha2 = 0.6
	)

	s := make([]float64, 4001)
	for i := range s {
		s[i] = -10 + float64(i)*0.005
	}

	pdf := PeakAmplitudePDF(m0, alpha2, s)
	require.InDelta(t, 1.0, integrate.Trapezoidal(s, pdf), 1e-3)
}

func TestPeakAmplitudePDFEmptyInput(t *testing.T) {
	require.Empty(t, PeakAmplitudePDF(1, 0.5, nil))
}
