package testutil

import "testing"

func TestRequireSliceNearlyEqualPass(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2, 3}, []float64{1, 2, 3.0000001}, 1e-6)
}

func TestRequireSliceEqualPass(t *testing.T) {
	RequireSliceEqual(t, []float64{1, -2}, []float64{1, -2})
}

func TestRequireLenPass(t *testing.T) {
	RequireLen(t, 2, []float64{1, 2}, []float64{3, 4})
}

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 3})
	if err != nil {
		t.Fatalf("MaxAbsDiff() error = %v", err)
	}
	if d != 0.5 {
		t.Fatalf("MaxAbsDiff = %v, want 0.5", d)
	}
	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}
