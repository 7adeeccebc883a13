package downsample

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// seq4x4 returns a single-band 4x4 raster with values 1..16 row-major.
func seq4x4(t *testing.T) *Raster[float64] {
	t.Helper()
	data := make([]float64, 16)
	for i := range data {
		data[i] = float64(i + 1)
	}
	r, err := FromSlice(1, 4, 4, data)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestAggregateCell_IntegerAlignedIsExactMean(t *testing.T) {
	p := seq4x4(t).Band(0)

	// Integer boundaries: all edge and corner weights evaluate to 0 and
	// the result is the arithmetic mean of the covered block, exactly.
	cases := []struct {
		x0, x1, y0, y1 float64
		want           float64
	}{
		{0, 2, 0, 2, 3.5},   // mean{1,2,5,6}
		{0, 2, 2, 4, 5.5},   // mean{3,4,7,8}
		{2, 4, 0, 2, 11.5},  // mean{9,10,13,14}
		{2, 4, 2, 4, 13.5},  // mean{11,12,15,16}
		{0, 4, 0, 4, 8.5},   // whole image
		{1, 2, 2, 3, 7},     // single pixel
	}
	for _, c := range cases {
		got := aggregateCell(p, c.x0, c.x1, c.y0, c.y1)
		if got != c.want {
			t.Errorf("aggregateCell(%v,%v,%v,%v) = %v, want %v", c.x0, c.x1, c.y0, c.y1, got, c.want)
		}
	}
}

func TestAggregateCell_FractionalEdges(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	r, err := FromSlice(1, 3, 3, data)
	if err != nil {
		t.Fatal(err)
	}
	p := r.Band(0)

	// Cell [0.5,2.5)x[0.5,2.5): center pixel fully covered, four edge
	// strips at half coverage, four corners at quarter coverage.
	// 5 + (2+8+4+6)/2 + (1+3+7+9)/4 = 20, over area 4.
	got := aggregateCell(p, 0.5, 2.5, 0.5, 2.5)
	if !scalar.EqualWithinAbs(got, 5.0, 1e-12) {
		t.Errorf("aggregateCell fractional = %v, want 5.0", got)
	}

	// Sub-pixel-aligned rows only: half of row 0 plus half of row 1.
	data2 := []float64{1, 2, 3, 4}
	r2, err := FromSlice(1, 2, 2, data2)
	if err != nil {
		t.Fatal(err)
	}
	got = aggregateCell(r2.Band(0), 0.5, 1.5, 0, 2)
	if !scalar.EqualWithinAbs(got, 2.5, 1e-12) {
		t.Errorf("aggregateCell row-fractional = %v, want 2.5", got)
	}
}

func TestAggregateCell_BorderReadsContributeZero(t *testing.T) {
	data := []float64{4, 4, 4, 4}
	r, err := FromSlice(1, 2, 2, data)
	if err != nil {
		t.Fatal(err)
	}

	// The cell extends one pixel beyond every border; the out-of-range
	// strips must contribute 0 rather than faulting. Sum stays 16, the
	// geometric area is 9.
	got := aggregateCell(r.Band(0), -1, 2, -1, 2)
	if !scalar.EqualWithinAbs(got, 16.0/9.0, 1e-12) {
		t.Errorf("aggregateCell extrapolated = %v, want %v", got, 16.0/9.0)
	}
}

func TestNearestCell_CenterPerAxis(t *testing.T) {
	p := seq4x4(t).Band(0)

	cases := []struct {
		x0, x1, y0, y1 float64
		want           float64
	}{
		{0, 2, 0, 2, 6},  // center (1,1)
		{0, 2, 2, 4, 8},  // center (1,3)
		{2, 4, 0, 2, 14}, // center (3,1)
		{2, 4, 2, 4, 16}, // center (3,3)
	}
	for _, c := range cases {
		got := nearestCell(p, c.x0, c.x1, c.y0, c.y1)
		if got != c.want {
			t.Errorf("nearestCell(%v,%v,%v,%v) = %v, want %v", c.x0, c.x1, c.y0, c.y1, got, c.want)
		}
	}

	// A non-square cell must use each axis's own boundaries: rows from
	// the x pair, columns from the y pair.
	if got := nearestCell(p, 0, 2, 0, 4); got != 7 {
		t.Errorf("nearestCell(0,2,0,4) = %v, want 7 (row 1, col 2)", got)
	}
	if got := nearestCell(p, 0, 4, 0, 2); got != 10 {
		t.Errorf("nearestCell(0,4,0,2) = %v, want 10 (row 2, col 1)", got)
	}
}

func TestNearestCell_ClampsOutsideImage(t *testing.T) {
	p := seq4x4(t).Band(0)

	// Extrapolated cell centers clamp to the image instead of faulting.
	if got := nearestCell(p, -4, -2, -4, -2); got != 1 {
		t.Errorf("nearestCell clamped low = %v, want 1", got)
	}
	if got := nearestCell(p, 4, 6, 4, 6); got != 16 {
		t.Errorf("nearestCell clamped high = %v, want 16", got)
	}
}

func TestMaxCell_TouchedSpan(t *testing.T) {
	p := seq4x4(t).Band(0)

	// Integer-aligned cells touch exactly their block.
	cases := []struct {
		x0, x1, y0, y1 float64
		want           float64
	}{
		{0, 2, 0, 2, 6},
		{0, 2, 2, 4, 8},
		{2, 4, 0, 2, 14},
		{2, 4, 2, 4, 16},
	}
	for _, c := range cases {
		if got := maxCell(p, c.x0, c.x1, c.y0, c.y1); got != c.want {
			t.Errorf("maxCell(%v,%v,%v,%v) = %v, want %v", c.x0, c.x1, c.y0, c.y1, got, c.want)
		}
	}

	// Fractional boundaries pull in the partially covered neighbors:
	// [0.5,2.5) touches rows 0..2.
	if got := maxCell(p, 0.5, 2.5, 0.5, 2.5); got != 11 {
		t.Errorf("maxCell fractional = %v, want 11", got)
	}
}

func TestMinCell_TouchedSpan(t *testing.T) {
	p := seq4x4(t).Band(0)

	cases := []struct {
		x0, x1, y0, y1 float64
		want           float64
	}{
		{0, 2, 0, 2, 1},
		{0, 2, 2, 4, 3},
		{2, 4, 0, 2, 9},
		{2, 4, 2, 4, 11},
	}
	for _, c := range cases {
		if got := minCell(p, c.x0, c.x1, c.y0, c.y1); got != c.want {
			t.Errorf("minCell(%v,%v,%v,%v) = %v, want %v", c.x0, c.x1, c.y0, c.y1, got, c.want)
		}
	}

	if got := minCell(p, 0.5, 2.5, 0.5, 2.5); got != 1 {
		t.Errorf("minCell fractional = %v, want 1", got)
	}
}

func TestMaxMinCell_EmptySpanIsZero(t *testing.T) {
	p := seq4x4(t).Band(0)

	// A cell entirely outside the image clamps to an empty span.
	if got := maxCell(p, -5, -3, -5, -3); got != 0 {
		t.Errorf("maxCell outside image = %v, want 0", got)
	}
	if got := minCell(p, 10, 12, 10, 12); got != 0 {
		t.Errorf("minCell outside image = %v, want 0", got)
	}
}

func TestKernels_ConstantInputIsConstant(t *testing.T) {
	data := make([]float64, 25)
	for i := range data {
		data[i] = 7
	}
	r, err := FromSlice(1, 5, 5, data)
	if err != nil {
		t.Fatal(err)
	}
	p := r.Band(0)

	// Any in-image cell, aligned or not, reproduces the constant.
	cells := [][4]float64{
		{0, 5, 0, 5},
		{0, 2.5, 2.5, 5},
		{0.3, 4.1, 0.7, 4.6},
		{1, 2, 1, 2},
	}
	for _, m := range []Method{MethodAggregate, MethodNearest, MethodMax, MethodMin} {
		k := kernelFor[float64](m)
		for _, c := range cells {
			got := k(p, c[0], c[1], c[2], c[3])
			if !scalar.EqualWithinAbs(got, 7, 1e-12) {
				t.Errorf("%v kernel over %v = %v, want 7", m, c, got)
			}
		}
	}
}
