package downsample

import "fmt"

// Sample is the set of element types a Raster can hold. It covers the
// fixed-width integer and floating-point sample formats commonly produced
// by multi-band imagery sources.
type Sample interface {
	~uint8 | ~uint16 | ~uint32 | ~int16 | ~int32 | ~float32 | ~float64
}

// Raster is a band-first three-dimensional pixel buffer. Samples are
// stored in a single flat slice, band by band, each band laid out row by
// row. Axis order is (band, row, column).
type Raster[T Sample] struct {
	bands int
	rows  int
	cols  int
	data  []T
}

// NewRaster creates a zero-filled raster with the given dimensions.
func NewRaster[T Sample](bands, rows, cols int) *Raster[T] {
	return &Raster[T]{
		bands: bands,
		rows:  rows,
		cols:  cols,
		data:  make([]T, bands*rows*cols),
	}
}

// FromSlice wraps an existing flat sample slice as a raster.
// The slice is used directly, not copied; its length must be exactly
// bands*rows*cols.
func FromSlice[T Sample](bands, rows, cols int, data []T) (*Raster[T], error) {
	if n := bands * rows * cols; len(data) != n {
		return nil, fmt.Errorf("downsample: slice length %d does not match %dx%dx%d raster", len(data), bands, rows, cols)
	}
	return &Raster[T]{bands: bands, rows: rows, cols: cols, data: data}, nil
}

// FromRows builds a single-band raster from a 2D row-major grid.
// This is the promotion applied to two-dimensional inputs: the result has
// one band and the same row/column layout.
func FromRows[T Sample](rows [][]T) (*Raster[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("downsample: empty input grid")
	}
	cols := len(rows[0])
	r := NewRaster[T](1, len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("downsample: ragged input grid: row %d has %d columns, want %d", i, len(row), cols)
		}
		copy(r.data[i*cols:(i+1)*cols], row)
	}
	return r, nil
}

// Bands returns the number of bands.
func (r *Raster[T]) Bands() int { return r.bands }

// Rows returns the number of rows per band.
func (r *Raster[T]) Rows() int { return r.rows }

// Cols returns the number of columns per row.
func (r *Raster[T]) Cols() int { return r.cols }

// Data returns the raw backing slice, band by band, each band row-major.
func (r *Raster[T]) Data() []T { return r.data }

// At returns the sample at (band, row, col).
func (r *Raster[T]) At(band, row, col int) T {
	return r.data[(band*r.rows+row)*r.cols+col]
}

// Set stores a sample at (band, row, col).
func (r *Raster[T]) Set(band, row, col int, v T) {
	r.data[(band*r.rows+row)*r.cols+col] = v
}

// Band returns a read-only view of one band. The view shares the raster's
// backing slice.
func (r *Raster[T]) Band(band int) Plane[T] {
	n := r.rows * r.cols
	return Plane[T]{
		data: r.data[band*n : (band+1)*n],
		rows: r.rows,
		cols: r.cols,
	}
}

// Clone returns a deep copy of the raster.
func (r *Raster[T]) Clone() *Raster[T] {
	out := &Raster[T]{bands: r.bands, rows: r.rows, cols: r.cols, data: make([]T, len(r.data))}
	copy(out.data, r.data)
	return out
}

// Plane is a row-major view of a single band.
type Plane[T Sample] struct {
	data []T
	rows int
	cols int
}

// Rows returns the number of rows.
func (p Plane[T]) Rows() int { return p.rows }

// Cols returns the number of columns.
func (p Plane[T]) Cols() int { return p.cols }

// At returns the sample at (row, col).
func (p Plane[T]) At(row, col int) T {
	return p.data[row*p.cols+col]
}

// Data returns the raw row-major backing slice of the view.
func (p Plane[T]) Data() []T { return p.data }
