package moments

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// PeakAmplitudePDF evaluates the probability density of peak amplitudes of a
// stationary Gaussian process at each stress value in s, given the zeroth
// spectral moment m0 and irregularity factor alpha2 of the whole spectrum.
//
// The density is a mixture of a Gaussian term and a Rayleigh term weighted by
// the normal CDF:
//
//	p(s) = √(1−α2²)/√(2π·m0) · exp(−s²/(2·m0·(1−α2²)))
//	     + α2·s/m0 · exp(−s²/(2·m0)) · Φ(α2·s/√(m0·(1−α2²)))
//
// As alpha2 → 1 (narrowband) it reduces to the Rayleigh density, and as
// alpha2 → 0 (broadband) to the Gaussian one. Degenerate inputs (zero m0,
// alpha2 of exactly 1) surface as NaN or Inf, not as errors.
func PeakAmplitudePDF(m0, alpha2 float64, s []float64) []float64 {
	q := 1 - alpha2*alpha2

	pdf := make([]float64, len(s))
	for n, x := range s {
		gaussian := math.Sqrt(q) / math.Sqrt(2*math.Pi*m0) *
			math.Exp(-x*x/(2*m0*q))
		rayleigh := alpha2 * x / m0 *
			math.Exp(-x*x/(2*m0)) *
			distuv.UnitNormal.CDF(alpha2*x/math.Sqrt(m0*q))
		pdf[n] = gaussian + rayleigh
	}
	return pdf
}
