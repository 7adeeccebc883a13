package downsample

import (
	"fmt"
	"image"
	"image/color"
)

// FromImage converts an image to a three-band (R, G, B) uint8 raster in
// band-first order. Alpha is discarded.
func FromImage(img image.Image) *Raster[uint8] {
	bounds := img.Bounds()
	rows := bounds.Dy()
	cols := bounds.Dx()
	r := NewRaster[uint8](3, rows, cols)

	n := rows * cols
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cr, cg, cb, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := y*cols + x
			r.data[i] = uint8(cr >> 8)
			r.data[n+i] = uint8(cg >> 8)
			r.data[2*n+i] = uint8(cb >> 8)
		}
	}
	return r
}

// FromGray converts a grayscale image to a single-band uint8 raster.
func FromGray(img *image.Gray) *Raster[uint8] {
	bounds := img.Bounds()
	rows := bounds.Dy()
	cols := bounds.Dx()
	r := NewRaster[uint8](1, rows, cols)
	for y := 0; y < rows; y++ {
		copy(r.data[y*cols:(y+1)*cols], img.Pix[y*img.Stride:y*img.Stride+cols])
	}
	return r
}

// FromGray16 converts a 16-bit grayscale image to a single-band uint16
// raster.
func FromGray16(img *image.Gray16) *Raster[uint16] {
	bounds := img.Bounds()
	rows := bounds.Dy()
	cols := bounds.Dx()
	r := NewRaster[uint16](1, rows, cols)
	for y := 0; y < rows; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < cols; x++ {
			r.data[y*cols+x] = uint16(row[2*x])<<8 | uint16(row[2*x+1])
		}
	}
	return r
}

// ToImage converts a raster back to an image. A three-band raster maps
// bands 0..2 to R, G, B with full alpha; a single-band raster replicates
// its band across the channels.
func ToImage(r *Raster[uint8]) (*image.RGBA, error) {
	if r.bands != 1 && r.bands != 3 {
		return nil, fmt.Errorf("downsample: cannot render a %d-band raster as an image", r.bands)
	}
	img := image.NewRGBA(image.Rect(0, 0, r.cols, r.rows))
	n := r.rows * r.cols
	for y := 0; y < r.rows; y++ {
		for x := 0; x < r.cols; x++ {
			i := y*r.cols + x
			var cr, cg, cb uint8
			if r.bands == 3 {
				cr, cg, cb = r.data[i], r.data[n+i], r.data[2*n+i]
			} else {
				cr, cg, cb = r.data[i], r.data[i], r.data[i]
			}
			img.SetRGBA(x, y, color.RGBA{R: cr, G: cg, B: cb, A: 0xff})
		}
	}
	return img, nil
}

// ToGray renders one band of a uint8 raster as a grayscale image.
func ToGray(r *Raster[uint8], band int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, r.cols, r.rows))
	p := r.Band(band)
	for y := 0; y < r.rows; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+r.cols], p.Data()[y*r.cols:(y+1)*r.cols])
	}
	return img
}

// ToGray16 renders one band of a uint16 raster as a 16-bit grayscale
// image.
func ToGray16(r *Raster[uint16], band int) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, r.cols, r.rows))
	p := r.Band(band)
	for y := 0; y < r.rows; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < r.cols; x++ {
			v := p.At(y, x)
			row[2*x] = uint8(v >> 8)
			row[2*x+1] = uint8(v)
		}
	}
	return img
}

// DownsampleImage is a convenience wrapper that downsamples a decoded
// image. Grayscale and 16-bit grayscale inputs round-trip through
// single-band rasters of the matching depth; everything else goes through
// a three-band uint8 raster.
func DownsampleImage(img image.Image, opts ...Option) (image.Image, error) {
	switch src := img.(type) {
	case *image.Gray:
		out, err := Downsample(FromGray(src), opts...)
		if err != nil {
			return nil, err
		}
		return ToGray(out, 0), nil
	case *image.Gray16:
		out, err := Downsample(FromGray16(src), opts...)
		if err != nil {
			return nil, err
		}
		return ToGray16(out, 0), nil
	default:
		out, err := Downsample(FromImage(img), opts...)
		if err != nil {
			return nil, err
		}
		return ToImage(out)
	}
}
