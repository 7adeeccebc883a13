package downsample

import "fmt"

// Downsample reduces a band-first raster to a smaller grid.
//
// Exactly one of WithShape or WithFactor must size the output; WithExtent
// may additionally restrict the reduction to a pixel-space sub-window.
// The reduction method defaults to MethodAggregate. The output has the
// same band count and element type as the source; kernel results are
// computed in float64 and truncated on the final cast.
//
// Two-dimensional data is handled by promoting it to a single-band raster
// first, e.g. via FromRows.
func Downsample[T Sample](src *Raster[T], opts ...Option) (*Raster[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(src.rows, src.cols); err != nil {
		return nil, err
	}
	xSteps, ySteps, err := buildSteps(&cfg, src.rows, src.cols)
	if err != nil {
		return nil, err
	}
	return downsampleToGrid(src, xSteps, ySteps, &cfg)
}

// DownsampleGrid reduces a raster onto a caller-supplied boundary grid.
// xSteps and ySteps hold N+1 monotonically non-decreasing coordinates in
// source pixel space for N output rows/columns; adjacent pairs delimit
// one output cell. Coordinates may lie outside the source bounds.
//
// WithShape, WithFactor and WithExtent are ignored here: the grid is
// given directly. The remaining options (method, no-data, backend hint,
// workers) apply as in Downsample.
func DownsampleGrid[T Sample](src *Raster[T], xSteps, ySteps []float64, opts ...Option) (*Raster[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !validSteps(xSteps) || !validSteps(ySteps) {
		return nil, fmt.Errorf("%w: step grids need at least two non-decreasing coordinates per axis", ErrInvalidRequest)
	}
	if cfg.method < 0 || cfg.method >= methodCount {
		return nil, fmt.Errorf("%w: unknown method %v", ErrInvalidRequest, cfg.method)
	}
	return downsampleToGrid(src, xSteps, ySteps, &cfg)
}

// downsampleToGrid brackets the backend run with the no-data rewrites:
// sentinel to 0 on the way in, 0 back to sentinel on the way out. The
// source raster is never mutated.
func downsampleToGrid[T Sample](src *Raster[T], xSteps, ySteps []float64, cfg *config) (*Raster[T], error) {
	work := src
	if cfg.hasNoData {
		work = src.Clone()
		for i, v := range work.data {
			if float64(v) == cfg.noData {
				work.data[i] = 0
			}
		}
	}

	req := &gridRequest[T]{
		src:     work,
		xSteps:  xSteps,
		ySteps:  ySteps,
		method:  cfg.method,
		workers: cfg.workers,
	}
	out, err := runGrid(req, cfg.backend, cfg.fastAvailable)
	if err != nil {
		return nil, err
	}

	if cfg.hasNoData {
		sentinel := T(cfg.noData)
		for i, v := range out.data {
			if v == 0 {
				out.data[i] = sentinel
			}
		}
	}
	return out, nil
}
