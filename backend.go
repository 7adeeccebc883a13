package downsample

import (
	"fmt"

	"github.com/rasterkit/downsample/internal/resize"
)

// gridRequest is one fully validated reduction request: the (already
// no-data-masked) source, the output grid, and how to reduce it.
type gridRequest[T Sample] struct {
	src     *Raster[T]
	xSteps  []float64
	ySteps  []float64
	method  Method
	workers int
}

// reductionBackend is one way of executing a grid request. Backends are
// tried in order; the first eligible one runs. Eligibility is a pure
// predicate over the request, never a probe of what is linked in.
type reductionBackend[T Sample] interface {
	name() string
	eligible(req *gridRequest[T]) bool
	execute(req *gridRequest[T]) *Raster[T]
}

// runGrid selects a backend per the hint and executes the request.
func runGrid[T Sample](req *gridRequest[T], hint Backend, fastAvailable bool) (*Raster[T], error) {
	var candidates []reductionBackend[T]
	switch hint {
	case BackendFast:
		candidates = []reductionBackend[T]{fastResizeBackend[T]{available: fastAvailable}}
	case BackendKernel:
		candidates = []reductionBackend[T]{kernelBackend[T]{}}
	default:
		candidates = []reductionBackend[T]{
			fastResizeBackend[T]{available: fastAvailable},
			kernelBackend[T]{},
		}
	}

	for _, b := range candidates {
		if b.eligible(req) {
			Logger().Debug("downsample: selected backend",
				"backend", b.name(), "method", req.method.String(),
				"outRows", len(req.xSteps)-1, "outCols", len(req.ySteps)-1)
			return b.execute(req), nil
		}
	}
	return nil, fmt.Errorf("%w: no %v routine can service the requested grid (backend hint %v); a grid that does not align with the image edges needs the kernel path",
		ErrBackendUnavailable, req.method, hint)
}

// fastResizeBackend resamples whole planes at once via the separable
// primitives in internal/resize. It only handles grids that span the
// exact full image, where whole-plane resampling and the per-cell kernels
// agree.
type fastResizeBackend[T Sample] struct {
	// available is the injected capability flag for the resize primitive.
	available bool
}

func (fastResizeBackend[T]) name() string { return "fast-resize" }

func (b fastResizeBackend[T]) eligible(req *gridRequest[T]) bool {
	if !b.available {
		return false
	}
	if req.method != MethodAggregate && req.method != MethodNearest {
		return false
	}
	return spansFullImage(req)
}

// spansFullImage reports whether the grid covers the exact source extent
// with no offset or extrapolation.
func spansFullImage[T Sample](req *gridRequest[T]) bool {
	x, y := req.xSteps, req.ySteps
	return x[0] == 0 && x[len(x)-1] == float64(req.src.rows) &&
		y[0] == 0 && y[len(y)-1] == float64(req.src.cols)
}

func (fastResizeBackend[T]) execute(req *gridRequest[T]) *Raster[T] {
	src := req.src
	out := NewRaster[T](src.bands, len(req.xSteps)-1, len(req.ySteps)-1)

	plane := make([]float64, src.rows*src.cols)
	n := out.rows * out.cols
	for b := 0; b < src.bands; b++ {
		for i, v := range src.Band(b).Data() {
			plane[i] = float64(v)
		}
		var resized []float64
		if req.method == MethodAggregate {
			resized = resize.Area(plane, src.rows, src.cols, req.xSteps, req.ySteps)
		} else {
			resized = resize.Nearest(plane, src.rows, src.cols, req.xSteps, req.ySteps)
		}
		dst := out.data[b*n : (b+1)*n]
		for i, v := range resized {
			dst[i] = T(v)
		}
	}
	return out
}

// kernelBackend runs the general per-cell reduction. It handles every
// method and any grid, including extrapolating extents.
type kernelBackend[T Sample] struct{}

func (kernelBackend[T]) name() string { return "kernel" }

func (kernelBackend[T]) eligible(*gridRequest[T]) bool { return true }

func (kernelBackend[T]) execute(req *gridRequest[T]) *Raster[T] {
	return reduceGrid(req.src, req.xSteps, req.ySteps, kernelFor[T](req.method), req.workers)
}
