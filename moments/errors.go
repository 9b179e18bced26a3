package moments

import "errors"

var (
	// ErrInvalidOrder reports a requested spectral moment order that is not
	// a finite number.
	ErrInvalidOrder = errors.New("moments: invalid moment order")

	// ErrInvalidIndex reports a bandwidth estimator index that is not a
	// finite number.
	ErrInvalidIndex = errors.New("moments: invalid bandwidth estimator index")
)
