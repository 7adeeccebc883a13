package downsample

import "errors"

// Package errors.
var (
	// ErrInvalidRequest is returned when the downsample request is
	// malformed: both or neither of shape/factor supplied, an extent that
	// is not four values, a factor outside (0, 1), a shape that does not
	// shrink the source, or an unrecognized method.
	ErrInvalidRequest = errors.New("downsample: invalid request")

	// ErrBackendUnavailable is returned when no backend can service the
	// request, e.g. the fast resize path was forced for a grid that does
	// not span the full image.
	ErrBackendUnavailable = errors.New("downsample: no backend available")
)
