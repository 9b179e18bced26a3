package psd

import "fmt"

// Curve is a one-sided power spectral density sampled on a uniform,
// strictly increasing frequency grid. Frequencies and Values always have
// the same length.
type Curve struct {
	Frequencies []float64 // sample frequencies [Hz], non-negative
	Values      []float64 // PSD magnitude per frequency
}

// NewCurve builds a Curve from a frequency vector and a magnitude vector.
// The vectors must have equal length of at least two samples, and the
// frequencies must be non-negative and strictly increasing.
func NewCurve(freqs, values []float64) (*Curve, error) {
	if freqs == nil || values == nil {
		return nil, fmt.Errorf("%w: nil frequency or magnitude vector", ErrInvalidInput)
	}
	if len(freqs) != len(values) {
		return nil, fmt.Errorf("%w: frequency length (%d) doesn't match magnitude length (%d)",
			ErrInvalidInput, len(freqs), len(values))
	}
	if len(freqs) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidInput, len(freqs))
	}
	if freqs[0] < 0 {
		return nil, fmt.Errorf("%w: negative frequency %v", ErrInvalidInput, freqs[0])
	}
	for i := 1; i < len(freqs); i++ {
		if freqs[i] <= freqs[i-1] {
			return nil, fmt.Errorf("%w: frequencies not strictly increasing at index %d", ErrInvalidInput, i)
		}
	}

	return &Curve{Frequencies: freqs, Values: values}, nil
}

// Len returns the number of frequency samples.
func (c *Curve) Len() int {
	return len(c.Frequencies)
}

// Spacing returns the frequency spacing between adjacent samples.
func (c *Curve) Spacing() float64 {
	return c.Frequencies[1] - c.Frequencies[0]
}

// MaxFrequency returns the highest sample frequency.
func (c *Curve) MaxFrequency() float64 {
	return c.Frequencies[len(c.Frequencies)-1]
}

// Clone returns an independent copy of the curve.
func (c *Curve) Clone() *Curve {
	freqs := make([]float64, len(c.Frequencies))
	values := make([]float64, len(c.Values))
	copy(freqs, c.Frequencies)
	copy(values, c.Values)
	return &Curve{Frequencies: freqs, Values: values}
}
