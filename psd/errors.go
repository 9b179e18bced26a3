package psd

import "errors"

var (
	// ErrInvalidInput reports input that cannot be interpreted as a time
	// history or a PSD curve: nil or mismatched vectors, fewer than two
	// samples, a non-positive sampling rate, or a malformed frequency grid.
	ErrInvalidInput = errors.New("psd: invalid input")

	// ErrUnknownWindow reports a window name with no registered taper.
	ErrUnknownWindow = errors.New("psd: unknown window")
)
