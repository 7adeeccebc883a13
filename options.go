package downsample

import (
	"fmt"
	"math"
)

// Method selects the per-cell reduction applied during downsampling.
type Method int

const (
	// MethodAggregate computes an area-weighted mean over all source
	// pixels intersecting the output cell. This is the default.
	MethodAggregate Method = iota

	// MethodNearest samples the source pixel nearest the output cell's
	// center.
	MethodNearest

	// MethodMax takes the maximum over the pixels intersecting the
	// output cell, without area weighting.
	MethodMax

	// MethodMin takes the minimum over the pixels intersecting the
	// output cell, without area weighting.
	MethodMin

	methodCount // sentinel for validation
)

// String returns the method name as accepted by ParseMethod.
func (m Method) String() string {
	switch m {
	case MethodAggregate:
		return "aggregate"
	case MethodNearest:
		return "nearest"
	case MethodMax:
		return "max"
	case MethodMin:
		return "min"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod converts a method name to a Method value.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "aggregate":
		return MethodAggregate, nil
	case "nearest":
		return MethodNearest, nil
	case "max":
		return MethodMax, nil
	case "min":
		return MethodMin, nil
	default:
		return 0, fmt.Errorf("%w: unknown method %q (want aggregate, nearest, max or min)", ErrInvalidRequest, s)
	}
}

// Backend identifies an execution path for a downsample request.
type Backend int

const (
	// BackendAuto selects the first eligible path: the fast whole-plane
	// resize when the grid spans the full image, otherwise the per-cell
	// kernel path.
	BackendAuto Backend = iota

	// BackendFast forces the whole-plane resize path. Requests whose
	// grid does not span the full image, or whose method is max or min,
	// fail with ErrBackendUnavailable.
	BackendFast

	// BackendKernel forces the per-cell kernel path.
	BackendKernel
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendAuto:
		return "auto"
	case BackendFast:
		return "fast"
	case BackendKernel:
		return "kernel"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// Option configures a downsample request.
// Use functional options to customize behavior.
//
// Example:
//
//	out, err := downsample.Downsample(src,
//	    downsample.WithShape(300, 300),
//	    downsample.WithMethod(downsample.MethodNearest))
type Option func(*config)

// config holds the per-request configuration assembled from options.
// A fresh config is built for every call; nothing is process-wide.
type config struct {
	shape     []int
	factor    []float64
	extent    []float64
	method    Method
	noData    float64
	hasNoData bool
	backend   Backend
	workers   int

	// fastAvailable is the capability flag for the whole-plane resize
	// primitive. It is part of the request config so tests can model an
	// environment without the fast path; there is no process-wide switch.
	fastAvailable bool
}

func defaultConfig() config {
	return config{
		method:        MethodAggregate,
		backend:       BackendAuto,
		fastAvailable: true,
	}
}

// WithShape sets the target output shape as (rows, cols). Each value must
// be positive and strictly smaller than the corresponding source
// dimension. Mutually exclusive with WithFactor.
func WithShape(rows, cols int) Option {
	return func(c *config) {
		c.shape = []int{rows, cols}
	}
}

// WithFactor sets the scale factor. One value applies to both axes; two
// values apply to (rows, cols) separately. Every value must be in (0, 1):
// only downsampling is supported. Mutually exclusive with WithShape.
func WithFactor(factor ...float64) Option {
	return func(c *config) {
		c.factor = factor
	}
}

// WithExtent restricts the downsample to a pixel-space sub-window given as
// upper-left and lower-right corners [ulX, ulY, lrX, lrY]. The window may
// extend beyond the source bounds, e.g. [-1, -2.1, 500, 501]. One of
// WithShape or WithFactor must still size the output.
func WithExtent(extent ...float64) Option {
	return func(c *config) {
		c.extent = extent
	}
}

// WithMethod sets the reduction method. The default is MethodAggregate.
func WithMethod(m Method) Option {
	return func(c *config) {
		c.method = m
	}
}

// WithNoData sets the sentinel value treated as missing data. Before
// reduction every sample equal to the sentinel is rewritten to 0; after
// reduction every output cell equal to 0 is rewritten back to the
// sentinel.
//
// Note that this is a value-rewrite convention, not a masked computation:
// an output cell that legitimately computes to exactly 0 is also rewritten
// to the sentinel.
func WithNoData(v float64) Option {
	return func(c *config) {
		c.noData = v
		c.hasNoData = true
	}
}

// WithBackend overrides automatic backend selection, for testing and
// benchmarking. The default is BackendAuto.
func WithBackend(b Backend) Option {
	return func(c *config) {
		c.backend = b
	}
}

// WithWorkers sets the number of worker goroutines used by the kernel
// path. Zero or negative means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// validate checks the assembled request against the source dimensions.
// All constraint violations are detected here, before any reduction work.
func (c *config) validate(rows, cols int) error {
	if c.shape != nil && c.factor != nil {
		return fmt.Errorf("%w: either shape or factor can be specified, not both", ErrInvalidRequest)
	}
	if c.shape == nil && c.factor == nil {
		return fmt.Errorf("%w: either shape or factor needs to be specified", ErrInvalidRequest)
	}
	if c.extent != nil && len(c.extent) != 4 {
		return fmt.Errorf("%w: extent needs four values [ulX, ulY, lrX, lrY], got %d", ErrInvalidRequest, len(c.extent))
	}
	if c.extent != nil {
		if c.extent[2] < c.extent[0] || c.extent[3] < c.extent[1] {
			return fmt.Errorf("%w: extent lower-right corner must not precede upper-left", ErrInvalidRequest)
		}
	}
	if c.factor != nil {
		switch len(c.factor) {
		case 1:
			c.factor = []float64{c.factor[0], c.factor[0]}
		case 2:
		default:
			return fmt.Errorf("%w: factor takes one or two values, got %d", ErrInvalidRequest, len(c.factor))
		}
		for _, f := range c.factor {
			if f >= 1 {
				return fmt.Errorf("%w: factor values should be less than one, got %v", ErrInvalidRequest, f)
			}
			if f <= 0 || math.IsNaN(f) {
				return fmt.Errorf("%w: factor values should be positive, got %v", ErrInvalidRequest, f)
			}
		}
	}
	if c.shape != nil {
		if c.shape[0] <= 0 || c.shape[1] <= 0 {
			return fmt.Errorf("%w: shape values should be positive, got %dx%d", ErrInvalidRequest, c.shape[0], c.shape[1])
		}
		if c.shape[0] >= rows || c.shape[1] >= cols {
			return fmt.Errorf("%w: the requested shape %dx%d should be less than the source %dx%d", ErrInvalidRequest, c.shape[0], c.shape[1], rows, cols)
		}
	}
	if c.method < 0 || c.method >= methodCount {
		return fmt.Errorf("%w: unknown method %v", ErrInvalidRequest, c.method)
	}
	return nil
}
