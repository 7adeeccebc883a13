package downsample

import "math"

// kernelFunc reduces one output cell: it maps a single-band view plus the
// cell's boundary pair along each axis to a scalar. The boundaries are
// continuous pixel-space coordinates, so [x0, x1) x [y0, y1) describes a
// rectangle that may start and end between pixel centers and may extend
// beyond the plane. Kernels never index outside the plane; out-of-range
// reads contribute nothing.
type kernelFunc[T Sample] func(p Plane[T], x0, x1, y0, y1 float64) float64

// kernelFor returns the kernel implementing a reduction method.
func kernelFor[T Sample](m Method) kernelFunc[T] {
	switch m {
	case MethodNearest:
		return nearestCell[T]
	case MethodMax:
		return maxCell[T]
	case MethodMin:
		return minCell[T]
	default:
		return aggregateCell[T]
	}
}

// aggregateCell computes the area-weighted mean of the cell rectangle.
// Pixels fully inside the rectangle count with weight 1, the one-pixel
// strips outside each side of that span count with their fractional
// coverage, and the four corner pixels count with the product of the two
// adjacent edge fractions. The total is normalized by the cell's
// geometric area.
func aggregateCell[T Sample](p Plane[T], x0, x1, y0, y1 float64) float64 {
	// Integer span fully covered by the cell.
	left := int(math.Ceil(x0))
	right := int(math.Floor(x1))
	top := int(math.Ceil(y0))
	bottom := int(math.Floor(y1))

	s := sumRect(p, left, right, top, bottom)

	// Fractional coverage of the four edge strips.
	wl := float64(left) - x0
	wr := x1 - float64(right)
	wt := float64(top) - y0
	wb := y1 - float64(bottom)

	s += sumRect(p, left-1, left, top, bottom) * wl
	s += sumRect(p, right, right+1, top, bottom) * wr
	s += sumRect(p, left, right, top-1, top) * wt
	s += sumRect(p, left, right, bottom, bottom+1) * wb

	// Corners carry the product of their adjacent edge fractions.
	s += sumRect(p, left-1, left, top-1, top) * wl * wt
	s += sumRect(p, right, right+1, top-1, top) * wr * wt
	s += sumRect(p, left-1, left, bottom, bottom+1) * wl * wb
	s += sumRect(p, right, right+1, bottom, bottom+1) * wr * wb

	area := (x1 - x0) * (y1 - y0)
	if area == 0 {
		return 0
	}
	return s / area
}

// nearestCell samples the pixel at the cell's center, the truncated mean
// of the two boundary coordinates along each axis, clamped to the plane.
func nearestCell[T Sample](p Plane[T], x0, x1, y0, y1 float64) float64 {
	row := clampInt(int((x0+x1)/2), 0, p.rows-1)
	col := clampInt(int((y0+y1)/2), 0, p.cols-1)
	return float64(p.At(row, col))
}

// maxCell takes the maximum over all pixels the cell rectangle touches:
// the fully-covered span dilated by one pixel on each fractional side,
// with no area weighting. An empty span yields 0.
func maxCell[T Sample](p Plane[T], x0, x1, y0, y1 float64) float64 {
	r0, r1, c0, c1 := touchedSpan(p, x0, x1, y0, y1)
	if r0 >= r1 || c0 >= c1 {
		return 0
	}
	m := float64(p.At(r0, c0))
	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			if v := float64(p.At(r, c)); v > m {
				m = v
			}
		}
	}
	return m
}

// minCell is the minimum counterpart of maxCell.
func minCell[T Sample](p Plane[T], x0, x1, y0, y1 float64) float64 {
	r0, r1, c0, c1 := touchedSpan(p, x0, x1, y0, y1)
	if r0 >= r1 || c0 >= c1 {
		return 0
	}
	m := float64(p.At(r0, c0))
	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			if v := float64(p.At(r, c)); v < m {
				m = v
			}
		}
	}
	return m
}

// touchedSpan returns the integer pixel span intersecting the cell
// rectangle, clamped to the plane. When a boundary is fractional this
// extends the fully-covered span by the partially-covered pixel on that
// side; at exact integer boundaries the span is the covered block itself.
func touchedSpan[T Sample](p Plane[T], x0, x1, y0, y1 float64) (r0, r1, c0, c1 int) {
	r0 = clampInt(int(math.Floor(x0)), 0, p.rows)
	r1 = clampInt(int(math.Ceil(x1)), 0, p.rows)
	c0 = clampInt(int(math.Floor(y0)), 0, p.cols)
	c1 = clampInt(int(math.Ceil(y1)), 0, p.cols)
	return r0, r1, c0, c1
}

// sumRect sums the samples in the intersection of [r0, r1) x [c0, c1)
// with the plane. A rectangle entirely outside the plane sums to 0, which
// is what lets the aggregate kernel read its edge strips at image borders.
func sumRect[T Sample](p Plane[T], r0, r1, c0, c1 int) float64 {
	r0 = clampInt(r0, 0, p.rows)
	r1 = clampInt(r1, 0, p.rows)
	c0 = clampInt(c0, 0, p.cols)
	c1 = clampInt(c1, 0, p.cols)
	var s float64
	for r := r0; r < r1; r++ {
		base := r * p.cols
		for c := c0; c < c1; c++ {
			s += float64(p.data[base+c])
		}
	}
	return s
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
