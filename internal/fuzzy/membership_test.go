package fuzzy

import (
	"math"
	"math/rand"
	"testing"
)

func TestTriangleRejectsBadBreakpoints(t *testing.T) {
	if _, err := NewTriangle(3, 2, 5); err == nil {
		t.Fatal("expected error for a > b")
	}
	if _, err := NewTriangle(1, 4, 3); err == nil {
		t.Fatal("expected error for b > c")
	}
}

func TestTriangleBreakpointDegrees(t *testing.T) {
	tri, err := NewTriangle(1, 3, 6)
	if err != nil {
		t.Fatalf("NewTriangle: %v", err)
	}
	if d := tri.Degree(1); d != 0 {
		t.Fatalf("degree(a) = %f, want 0", d)
	}
	if d := tri.Degree(3); d != 1 {
		t.Fatalf("degree(b) = %f, want 1", d)
	}
	if d := tri.Degree(6); d != 0 {
		t.Fatalf("degree(c) = %f, want 0", d)
	}
	if d := tri.Degree(-2); d != 0 {
		t.Fatalf("degree outside support = %f, want 0", d)
	}
	if d := tri.Degree(9); d != 0 {
		t.Fatalf("degree outside support = %f, want 0", d)
	}
}

func TestTrianglePiecewiseLinear(t *testing.T) {
	tri, err := NewTriangle(1, 3, 6)
	if err != nil {
		t.Fatalf("NewTriangle: %v", err)
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		x := 1 + rng.Float64()*5 // in [a, c]
		var want float64
		if x <= 3 {
			want = (x - 1) / 2
		} else {
			want = (6 - x) / 3
		}
		got := tri.Degree(x)
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("degree(%f) = %f, want %f", x, got, want)
		}
		if got < 0 || got > 1 {
			t.Fatalf("degree(%f) = %f outside [0,1]", x, got)
		}
	}
}

func TestTriangleShoulders(t *testing.T) {
	left, err := NewTriangle(0, 0, 6)
	if err != nil {
		t.Fatalf("NewTriangle: %v", err)
	}
	if d := left.Degree(0); d != 1 {
		t.Fatalf("left shoulder degree(0) = %f, want 1", d)
	}
	if d := left.Degree(3); math.Abs(d-0.5) > 1e-12 {
		t.Fatalf("left shoulder degree(3) = %f, want 0.5", d)
	}
	if d := left.Degree(6); d != 0 {
		t.Fatalf("left shoulder degree(6) = %f, want 0", d)
	}

	right, err := NewTriangle(4, 10, 10)
	if err != nil {
		t.Fatalf("NewTriangle: %v", err)
	}
	if d := right.Degree(10); d != 1 {
		t.Fatalf("right shoulder degree(10) = %f, want 1", d)
	}
	if d := right.Degree(7); math.Abs(d-0.5) > 1e-12 {
		t.Fatalf("right shoulder degree(7) = %f, want 0.5", d)
	}
}

func TestTriangleSpike(t *testing.T) {
	spike, err := NewTriangle(2, 2, 2)
	if err != nil {
		t.Fatalf("NewTriangle: %v", err)
	}
	if d := spike.Degree(2); d != 1 {
		t.Fatalf("spike degree at point = %f, want 1", d)
	}
	if d := spike.Degree(2.0001); d != 0 {
		t.Fatalf("spike degree off point = %f, want 0", d)
	}
	if d := spike.Degree(1.9999); d != 0 {
		t.Fatalf("spike degree off point = %f, want 0", d)
	}
}
