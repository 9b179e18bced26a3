package psd

import (
	"fmt"
	"strings"

	"github.com/mjibson/go-dsp/spectral"
	"github.com/mjibson/go-dsp/window"

	"github.com/vibrolab/vibrostats/logging"
)

// DefaultSegmentLength is the segment length used by Welch when none is
// configured.
const DefaultSegmentLength = 1280

// WindowFunc generates taper coefficients for a segment of the given length.
// All functions from github.com/mjibson/go-dsp/window satisfy this type.
type WindowFunc func(int) []float64

// WelchParams configures the Welch PSD estimate.
type WelchParams struct {
	// Window is the taper applied to each segment. Hann when nil.
	Window WindowFunc

	// SegmentLength is the number of samples per segment.
	// DefaultSegmentLength when zero.
	SegmentLength int

	// Overlap is the number of samples shared by adjacent segments.
	// Zero selects the default of SegmentLength/2; a negative value
	// requests non-overlapping segments.
	Overlap int

	// TrimLength keeps only the first TrimLength frequency bins of the
	// estimate. Zero keeps all bins.
	TrimLength int
}

// DefaultWelchParams returns the Welch configuration used when the caller
// has no opinion: Hann window, DefaultSegmentLength samples per segment,
// half-segment overlap, no trim.
func DefaultWelchParams() WelchParams {
	return WelchParams{
		Window:        window.Hann,
		SegmentLength: DefaultSegmentLength,
	}
}

// WindowByName resolves a window name to its taper function.
// Recognized names: hann (alias hanning), hamming, bartlett, blackman,
// flattop, rectangular (alias boxcar).
func WindowByName(name string) (WindowFunc, error) {
	switch strings.ToLower(name) {
	case "hann", "hanning":
		return window.Hann, nil
	case "hamming":
		return window.Hamming, nil
	case "bartlett":
		return window.Bartlett, nil
	case "blackman":
		return window.Blackman, nil
	case "flattop":
		return window.FlatTop, nil
	case "rectangular", "boxcar":
		return window.Rectangular, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownWindow, name)
	}
}

// Welch estimates the one-sided PSD of a discrete time history sampled at
// rate fs, by averaging windowed overlapped periodograms.
func Welch(signal []float64, fs float64, params WelchParams) (*Curve, error) {
	if len(signal) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 signal samples, got %d", ErrInvalidInput, len(signal))
	}
	if fs <= 0 {
		return nil, fmt.Errorf("%w: non-positive sampling rate %v", ErrInvalidInput, fs)
	}

	taper := params.Window
	if taper == nil {
		taper = window.Hann
	}
	segmentLength := params.SegmentLength
	if segmentLength == 0 {
		segmentLength = DefaultSegmentLength
	}
	if segmentLength < 2 {
		return nil, fmt.Errorf("%w: segment length %d too short", ErrInvalidInput, segmentLength)
	}
	overlap := params.Overlap
	if overlap == 0 {
		overlap = segmentLength / 2
	} else if overlap < 0 {
		overlap = 0
	}
	if overlap >= segmentLength {
		return nil, fmt.Errorf("%w: overlap %d must be smaller than segment length %d",
			ErrInvalidInput, overlap, segmentLength)
	}

	values, freqs := spectral.Pwelch(signal, fs, &spectral.PwelchOptions{
		NFFT:     segmentLength,
		Window:   taper,
		Noverlap: overlap,
	})

	if params.TrimLength > 0 && params.TrimLength < len(freqs) {
		freqs = freqs[:params.TrimLength]
		values = values[:params.TrimLength]
	}

	logging.WithFields(logging.Fields{"component": "psd_welch"}).Debug("PSD estimate computed", logging.Fields{
		"signal_length":  len(signal),
		"segment_length": segmentLength,
		"overlap":        overlap,
		"freq_bins":      len(freqs),
	})

	return NewCurve(freqs, values)
}
