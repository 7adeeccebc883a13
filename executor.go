package downsample

import (
	"github.com/rasterkit/downsample/internal/parallel"
)

// reduceGrid drives a kernel over every band x output row x output column
// and assembles the result raster. Bands are independent and every output
// cell reads only the fixed source band, so the work is partitioned across
// a worker pool by band and output-row chunk; each task writes a disjoint
// slice of the output and ExecuteAll is the only barrier.
//
// Kernel results are computed in float64 and truncated to the raster's
// element type at assembly.
func reduceGrid[T Sample](src *Raster[T], xSteps, ySteps []float64, kernel kernelFunc[T], workers int) *Raster[T] {
	outRows := len(xSteps) - 1
	outCols := len(ySteps) - 1
	out := NewRaster[T](src.bands, outRows, outCols)

	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	chunk := rowChunk(outRows, pool.Workers())
	tasks := make([]func(), 0, src.bands*((outRows+chunk-1)/chunk))
	for b := 0; b < src.bands; b++ {
		plane := src.Band(b)
		for start := 0; start < outRows; start += chunk {
			end := start + chunk
			if end > outRows {
				end = outRows
			}
			b, start, end := b, start, end
			tasks = append(tasks, func() {
				for i := start; i < end; i++ {
					x0, x1 := xSteps[i], xSteps[i+1]
					row := out.data[(b*outRows+i)*outCols : (b*outRows+i+1)*outCols]
					for j := 0; j < outCols; j++ {
						row[j] = T(kernel(plane, x0, x1, ySteps[j], ySteps[j+1]))
					}
				}
			})
		}
	}
	pool.ExecuteAll(tasks)
	return out
}

// rowChunk sizes the per-task row range so each worker sees a few tasks,
// which keeps the load balanced without drowning in scheduling overhead.
func rowChunk(rows, workers int) int {
	chunk := rows / (workers * 4)
	if chunk < 1 {
		chunk = 1
	}
	return chunk
}
