package sparkline

import (
	"math"
	"testing"
)

func TestBuildPath(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		w, h   float64
		want   string
	}{
		{"empty", nil, 100, 40, ""},
		{"single_point", []float64{10}, 100, 40, ""},
		{"rising", []float64{1, 2, 3}, 100, 40, "M 0.00,40.00 L 50.00,20.00 L 100.00,0.00"},
		{"flat", []float64{5, 5, 5}, 100, 40, "M 0.00,20.00 L 50.00,20.00 L 100.00,20.00"},
		{"non_finite_dropped", []float64{math.NaN(), 1, math.Inf(1), 3}, 10, 10, "M 0.00,10.00 L 10.00,0.00"},
		{"only_one_finite", []float64{math.NaN(), 7, math.Inf(-1)}, 10, 10, ""},
		{"thirds", []float64{0, 1, 0, 1}, 90, 30, "M 0.00,30.00 L 30.00,0.00 L 60.00,30.00 L 90.00,0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildPath(tt.series, tt.w, tt.h); got != tt.want {
				t.Errorf("BuildPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPoints_Bounds(t *testing.T) {
	series := []float64{101.2, 99.8, 103.4, 102.1, 100.0}
	pts := Points(series, 120, 36)
	if len(pts) != len(series) {
		t.Fatalf("expected %d points, got %d", len(series), len(pts))
	}
	if pts[0].X != 0 || pts[len(pts)-1].X != 120 {
		t.Errorf("expected x to span 0..120, got %v..%v", pts[0].X, pts[len(pts)-1].X)
	}
	for _, p := range pts {
		if p.Y < 0 || p.Y > 36 {
			t.Errorf("y %v out of bounds", p.Y)
		}
	}
	// max maps to the top, min to the bottom
	if pts[2].Y != 0 {
		t.Errorf("expected max at y=0, got %v", pts[2].Y)
	}
	if pts[1].Y != 36 {
		t.Errorf("expected min at y=36, got %v", pts[1].Y)
	}
}
