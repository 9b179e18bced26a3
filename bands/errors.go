package bands

import "errors"

var (
	// ErrUnknownMethod reports a splitting policy outside the closed set of
	// supported methods (including a nil policy).
	ErrUnknownMethod = errors.New("bands: unknown splitting method")

	// ErrInvalidArgument reports a malformed argument for a known splitting
	// method, such as a non-positive band count or a non-finite target
	// frequency.
	ErrInvalidArgument = errors.New("bands: invalid splitting argument")
)
