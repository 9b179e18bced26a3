// Package spectral ties the PSD estimation, band splitting and moment
// integration layers into the SpectralData container that fatigue-life
// estimators consume. A SpectralData is immutable once constructed: the
// whole-spectrum coefficients are computed eagerly and every query method is
// a pure re-derivation from the stored PSD, so one instance can be shared
// freely across goroutines.
package spectral

import (
	"fmt"

	"github.com/vibrolab/vibrostats/bands"
	"github.com/vibrolab/vibrostats/logging"
	"github.com/vibrolab/vibrostats/moments"
	"github.com/vibrolab/vibrostats/psd"
)

// WholeSpectrum is the splitting policy the coefficient cache is computed
// with: the entire PSD treated as a single band.
var WholeSpectrum bands.Policy = bands.EqualAreaBands{N: 1}

// Coefficients holds the whole-spectrum statistics that downstream
// estimators read pervasively. They are computed once at construction and
// never change.
type Coefficients struct {
	Moments  [5]float64 // spectral moments m0..m4
	NuP      float64    // expected frequency of positive slope zero crossings [Hz]
	MP       float64    // expected frequency of peaks [Hz]
	Alpha075 float64    // bandwidth estimator α0.75
	Alpha1   float64    // bandwidth estimator α1
	Alpha2   float64    // bandwidth estimator α2 (irregularity factor)
}

// SpectralData contains the power spectral density of a random vibration
// process together with the cached whole-spectrum coefficients required for
// fatigue-life estimation.
type SpectralData struct {
	curve  *psd.Curve
	data   []float64 // time history, when one was supplied
	dt     float64   // sampling interval of the time history
	t      float64   // time history duration, len(data)·dt
	coeffs Coefficients
	logger logging.Logger
}

// FromTimeHistory builds a SpectralData from a discrete time history and its
// sampling interval dt, estimating the PSD with Welch's method under the
// given parameters.
func FromTimeHistory(data []float64, dt float64, params psd.WelchParams) (*SpectralData, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 time history samples, got %d",
			psd.ErrInvalidInput, len(data))
	}
	if dt <= 0 {
		return nil, fmt.Errorf("%w: non-positive sampling interval %v", psd.ErrInvalidInput, dt)
	}

	curve, err := psd.Welch(data, 1/dt, params)
	if err != nil {
		return nil, err
	}

	sd := &SpectralData{
		curve: curve,
		data:  data,
		dt:    dt,
		t:     dt * float64(len(data)),
	}
	return sd, sd.finish()
}

// FromPSD builds a SpectralData from an already-computed PSD magnitude
// vector and its frequency vector. No estimation is performed and no time
// history information is available.
func FromPSD(values, freqs []float64) (*SpectralData, error) {
	curve, err := psd.NewCurve(freqs, values)
	if err != nil {
		return nil, err
	}

	sd := &SpectralData{curve: curve}
	return sd, sd.finish()
}

// FromCurve builds a SpectralData from a pre-built PSD curve.
func FromCurve(c *psd.Curve) (*SpectralData, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil curve", psd.ErrInvalidInput)
	}
	return FromPSD(c.Values, c.Frequencies)
}

// finish computes the whole-spectrum coefficient cache and attaches the
// logger. Called exactly once, from the constructors.
func (sd *SpectralData) finish() error {
	sd.logger = logging.WithFields(logging.Fields{
		"component": "spectral_data",
		"freq_bins": sd.curve.Len(),
	})

	m, err := moments.Spectral(sd.curve, WholeSpectrum, []float64{0, 1, 2, 3, 4})
	if err != nil {
		return err
	}
	copy(sd.coeffs.Moments[:], m[0])

	nu, err := moments.PositiveSlopeFrequency(sd.curve, WholeSpectrum)
	if err != nil {
		return err
	}
	sd.coeffs.NuP = nu[0]

	mp, err := moments.PeakFrequency(sd.curve, WholeSpectrum)
	if err != nil {
		return err
	}
	sd.coeffs.MP = mp[0]

	for _, idx := range []struct {
		i   float64
		dst *float64
	}{
		{0.75, &sd.coeffs.Alpha075},
		{1, &sd.coeffs.Alpha1},
		{2, &sd.coeffs.Alpha2},
	} {
		alpha, err := moments.BandwidthEstimator(sd.curve, WholeSpectrum, idx.i)
		if err != nil {
			return err
		}
		*idx.dst = alpha[0]
	}

	sd.logger.Debug("spectral coefficients computed", logging.Fields{
		"m0":     sd.coeffs.Moments[0],
		"nu_p":   sd.coeffs.NuP,
		"m_p":    sd.coeffs.MP,
		"alpha2": sd.coeffs.Alpha2,
	})

	return nil
}

// PSD returns a copy of the stored power spectral density curve.
func (sd *SpectralData) PSD() *psd.Curve {
	return sd.curve.Clone()
}

// Data returns a copy of the time history the PSD was estimated from, or nil
// when the SpectralData was constructed from a PSD directly.
func (sd *SpectralData) Data() []float64 {
	if sd.data == nil {
		return nil
	}
	data := make([]float64, len(sd.data))
	copy(data, sd.data)
	return data
}

// SampleInterval returns the time between discrete signal values, or zero
// when no time history was supplied.
func (sd *SpectralData) SampleInterval() float64 {
	return sd.dt
}

// Duration returns the time history duration in seconds, or zero when no
// time history was supplied.
func (sd *SpectralData) Duration() float64 {
	return sd.t
}

// Coefficients returns the cached whole-spectrum statistics.
func (sd *SpectralData) Coefficients() Coefficients {
	return sd.coeffs
}

// SpectralMoments returns the spectral moments of the requested orders for
// every band the policy defines, one row per band.
func (sd *SpectralData) SpectralMoments(p bands.Policy, orders []float64) ([][]float64, error) {
	return moments.Spectral(sd.curve, p, orders)
}

// BandwidthEstimator returns α_i = m_i/√(m0·m_2i) for every band.
func (sd *SpectralData) BandwidthEstimator(p bands.Policy, i float64) ([]float64, error) {
	return moments.BandwidthEstimator(sd.curve, p, i)
}

// VanmarckeParameter returns ε_V = √(1−α1²) for every band.
func (sd *SpectralData) VanmarckeParameter(p bands.Policy) ([]float64, error) {
	return moments.VanmarckeParameter(sd.curve, p)
}

// PositiveSlopeFrequency returns ν_p = (1/2π)·√(m2/m0) for every band.
func (sd *SpectralData) PositiveSlopeFrequency(p bands.Policy) ([]float64, error) {
	return moments.PositiveSlopeFrequency(sd.curve, p)
}

// PeakFrequency returns m_p = (1/2π)·√(m4/m2) for every band.
func (sd *SpectralData) PeakFrequency(p bands.Policy) ([]float64, error) {
	return moments.PeakFrequency(sd.curve, p)
}

// PeakPDF evaluates the peak-amplitude probability density at each stress
// value in s, parameterized by the cached whole-spectrum m0 and α2.
func (sd *SpectralData) PeakPDF(s []float64) []float64 {
	return moments.PeakAmplitudePDF(sd.coeffs.Moments[0], sd.coeffs.Alpha2, s)
}
