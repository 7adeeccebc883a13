package downsample

import (
	"errors"
	"testing"
)

func fullGridRequest(t *testing.T, m Method) *gridRequest[float64] {
	t.Helper()
	src := NewRaster[float64](1, 8, 8)
	return &gridRequest[float64]{
		src:    src,
		xSteps: []float64{0, 4, 8},
		ySteps: []float64{0, 4, 8},
		method: m,
	}
}

func TestFastResizeBackend_Eligibility(t *testing.T) {
	fast := fastResizeBackend[float64]{available: true}

	if !fast.eligible(fullGridRequest(t, MethodAggregate)) {
		t.Error("full-image aggregate grid should be fast-eligible")
	}
	if !fast.eligible(fullGridRequest(t, MethodNearest)) {
		t.Error("full-image nearest grid should be fast-eligible")
	}

	// max and min never take the fast path.
	if fast.eligible(fullGridRequest(t, MethodMax)) {
		t.Error("max must not be fast-eligible")
	}
	if fast.eligible(fullGridRequest(t, MethodMin)) {
		t.Error("min must not be fast-eligible")
	}

	// Offset or extrapolated grids need the kernel path.
	req := fullGridRequest(t, MethodAggregate)
	req.xSteps = []float64{1, 4, 8}
	if fast.eligible(req) {
		t.Error("offset grid must not be fast-eligible")
	}
	req = fullGridRequest(t, MethodAggregate)
	req.ySteps = []float64{0, 5, 10}
	if fast.eligible(req) {
		t.Error("extrapolated grid must not be fast-eligible")
	}

	// The injected capability flag gates everything.
	unavailable := fastResizeBackend[float64]{available: false}
	if unavailable.eligible(fullGridRequest(t, MethodAggregate)) {
		t.Error("unavailable backend must not be eligible")
	}
}

func TestRunGrid_AutoFallsBackToKernel(t *testing.T) {
	// An offset grid is not fast-eligible; auto selection must still
	// succeed via the kernel path.
	req := fullGridRequest(t, MethodAggregate)
	req.xSteps = []float64{1, 4, 8}

	out, err := runGrid(req, BackendAuto, true)
	if err != nil {
		t.Fatalf("auto selection failed: %v", err)
	}
	if out.Rows() != 2 || out.Cols() != 2 {
		t.Errorf("output shape = %dx%d, want 2x2", out.Rows(), out.Cols())
	}
}

func TestRunGrid_NoBackendAvailable(t *testing.T) {
	// Forcing the fast path for an ineligible grid leaves no candidate.
	req := fullGridRequest(t, MethodAggregate)
	req.xSteps = []float64{1, 4, 8}

	_, err := runGrid(req, BackendFast, true)
	if !errors.Is(err, ErrBackendUnavailable) {
		t.Fatalf("err = %v, want ErrBackendUnavailable", err)
	}

	// Same when the fast primitive is not available at all.
	_, err = runGrid(fullGridRequest(t, MethodNearest), BackendFast, false)
	if !errors.Is(err, ErrBackendUnavailable) {
		t.Fatalf("err = %v, want ErrBackendUnavailable", err)
	}

	// Auto selection without the fast primitive still has the kernels.
	if _, err := runGrid(fullGridRequest(t, MethodNearest), BackendAuto, false); err != nil {
		t.Fatalf("auto without fast primitive: %v", err)
	}
}

func TestRunGrid_ForcedFastOnEligibleGrid(t *testing.T) {
	src, err := FromSlice(1, 4, 4, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	})
	if err != nil {
		t.Fatal(err)
	}
	req := &gridRequest[float64]{
		src:    src,
		xSteps: []float64{0, 2, 4},
		ySteps: []float64{0, 2, 4},
		method: MethodAggregate,
	}

	out, err := runGrid(req, BackendFast, true)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{3.5, 5.5, 11.5, 13.5}
	for i, w := range want {
		if out.Data()[i] != w {
			t.Errorf("out[%d] = %v, want %v", i, out.Data()[i], w)
		}
	}
}
