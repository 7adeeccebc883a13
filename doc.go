// Package downsample reduces multi-band rasters to smaller grids.
//
// # Overview
//
// A raster is a band-first three-dimensional pixel buffer (band, row,
// column). Downsample shrinks it to a target grid sized by an output
// shape or a per-axis factor, optionally restricted to an arbitrary
// pixel-space sub-window, using one of four reduction methods:
// area-weighted aggregate, nearest neighbor, max, or min.
//
// # Quick Start
//
//	import "github.com/rasterkit/downsample"
//
//	src, _ := downsample.FromSlice(bands, 1024, 1024, data)
//
//	out, err := downsample.Downsample(src,
//	    downsample.WithShape(300, 300))
//
// The output grid may fall on fractional pixel boundaries; the aggregate
// method blends fully and partially covered source pixels in proportion
// to geometric overlap, so results stay correct for any shape or factor.
//
// # Backends
//
// Requests whose grid spans the exact full image take a fast whole-plane
// resize path for the aggregate and nearest methods; everything else runs
// through the general per-cell kernel path, parallelized across bands and
// output rows. WithBackend overrides the selection for testing and
// benchmarking.
//
// # No-data values
//
// WithNoData designates a sentinel that is rewritten to 0 before the
// reduction and restored afterward. See the option's documentation for
// the limits of that convention.
//
// # Scope
//
// The package operates on in-memory pixel buffers only: no file formats,
// no georeferencing, no reprojection. The image.Image bridge functions
// (FromImage, ToImage, DownsampleImage) cover the common case of decoded
// image data.
package downsample
