package moments

import (
	"fmt"
	"math"

	"github.com/vibrolab/vibrostats/bands"
	"github.com/vibrolab/vibrostats/psd"
)

// BandwidthEstimator computes the bandwidth estimator α_i = m_i / √(m0·m_2i)
// for every band. The index i may be fractional (0.75 is common). For a
// well-formed spectrum the result lies in [0, 1]; values outside that range
// are reported as-is.
func BandwidthEstimator(c *psd.Curve, p bands.Policy, i float64) ([]float64, error) {
	if math.IsNaN(i) || math.IsInf(i, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIndex, i)
	}

	m, err := Spectral(c, p, []float64{0, i, 2 * i})
	if err != nil {
		return nil, err
	}

	alphas := make([]float64, len(m))
	for k, band := range m {
		alphas[k] = band[1] / math.Sqrt(band[0]*band[2])
	}
	return alphas, nil
}

// VanmarckeParameter computes the Vanmarcke bandwidth parameter
// ε_V = √(1 − α1²) for every band.
func VanmarckeParameter(c *psd.Curve, p bands.Policy) ([]float64, error) {
	alphas, err := BandwidthEstimator(c, p, 1)
	if err != nil {
		return nil, err
	}

	eps := make([]float64, len(alphas))
	for k, alpha1 := range alphas {
		eps[k] = math.Sqrt(1 - alpha1*alpha1)
	}
	return eps, nil
}

// PositiveSlopeFrequency computes ν_p, the expected frequency of positive
// slope zero crossings, ν_p = (1/2π)·√(m2/m0), for every band.
func PositiveSlopeFrequency(c *psd.Curve, p bands.Policy) ([]float64, error) {
	m, err := Spectral(c, p, []float64{0, 2})
	if err != nil {
		return nil, err
	}

	nu := make([]float64, len(m))
	for k, band := range m {
		nu[k] = 1 / (2 * math.Pi) * math.Sqrt(band[1]/band[0])
	}
	return nu, nil
}

// PeakFrequency computes m_p, the expected frequency of peaks,
// m_p = (1/2π)·√(m4/m2), for every band.
func PeakFrequency(c *psd.Curve, p bands.Policy) ([]float64, error) {
	m, err := Spectral(c, p, []float64{2, 4})
	if err != nil {
		return nil, err
	}

	mp := make([]float64, len(m))
	for k, band := range m {
		mp[k] = 1 / (2 * math.Pi) * math.Sqrt(band[1]/band[0])
	}
	return mp, nil
}
