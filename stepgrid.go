package downsample

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// buildSteps converts a validated request into the two boundary sequences
// that define the output grid in source pixel space. Each sequence has
// N+1 evenly spaced coordinates for N output cells; adjacent pairs
// (steps[i], steps[i+1]) delimit cell i. The x sequence runs along the
// row axis (array dimension 1), the y sequence along the column axis
// (array dimension 2).
func buildSteps(c *config, rows, cols int) (xSteps, ySteps []float64, err error) {
	var xNum, yNum int
	switch {
	case c.shape != nil:
		// +1 to bracket both sides of every block.
		xNum = c.shape[0] + 1
		yNum = c.shape[1] + 1
	case c.factor != nil:
		xNum = int(math.Round(float64(rows)*c.factor[0])) + 1
		yNum = int(math.Round(float64(cols)*c.factor[1])) + 1
	}
	if xNum < 2 || yNum < 2 {
		return nil, nil, fmt.Errorf("%w: factor %v yields an empty output for a %dx%d source", ErrInvalidRequest, c.factor, rows, cols)
	}

	// No -1 on the stop coordinates: the grid brackets the last pixel's
	// far edge, not its index.
	xStart, xStop := 0.0, float64(rows)
	yStart, yStop := 0.0, float64(cols)
	if c.extent != nil {
		xStart, xStop = c.extent[0], c.extent[2]
		yStart, yStop = c.extent[1], c.extent[3]
	}

	xSteps = floats.Span(make([]float64, xNum), xStart, xStop)
	ySteps = floats.Span(make([]float64, yNum), yStart, yStop)

	Logger().Debug("downsample: built step grid",
		"xStart", xStart, "xStop", xStop, "xNum", xNum,
		"yStart", yStart, "yStop", yStop, "yNum", yNum)

	return xSteps, ySteps, nil
}

// validSteps reports whether a caller-supplied boundary sequence is usable:
// at least two coordinates, monotonically non-decreasing.
func validSteps(steps []float64) bool {
	if len(steps) < 2 {
		return false
	}
	for i := 1; i < len(steps); i++ {
		if steps[i] < steps[i-1] {
			return false
		}
	}
	return true
}
