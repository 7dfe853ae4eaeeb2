package fuzzy

import "testing"

func TestUniverseRejectsDecreasingPoints(t *testing.T) {
	if _, err := NewUniverse(0, 2, 1); err == nil {
		t.Fatal("expected error for decreasing sample points")
	}
	if _, err := NewUniverse(); err == nil {
		t.Fatal("expected error for empty universe")
	}
}

func TestUniverseBounds(t *testing.T) {
	u, err := NewUniverse(0, 2.5, 5, 7.5, 10)
	if err != nil {
		t.Fatalf("NewUniverse: %v", err)
	}
	if u.Min() != 0 {
		t.Fatalf("Min = %f, want 0", u.Min())
	}
	if u.Max() != 10 {
		t.Fatalf("Max = %f, want 10", u.Max())
	}
}

func TestUniverseSinglePoint(t *testing.T) {
	u, err := NewUniverse(1)
	if err != nil {
		t.Fatalf("NewUniverse: %v", err)
	}
	if u.Min() != 1 || u.Max() != 1 {
		t.Fatalf("degenerate universe bounds = (%f, %f), want (1, 1)", u.Min(), u.Max())
	}
}

func TestUniverseClamp(t *testing.T) {
	u, err := NewUniverse(0, 5, 10)
	if err != nil {
		t.Fatalf("NewUniverse: %v", err)
	}

	if x, clamped := u.Clamp(-3); x != 0 || !clamped {
		t.Fatalf("Clamp(-3) = (%f, %v), want (0, true)", x, clamped)
	}
	if x, clamped := u.Clamp(12); x != 10 || !clamped {
		t.Fatalf("Clamp(12) = (%f, %v), want (10, true)", x, clamped)
	}
	if x, clamped := u.Clamp(7); x != 7 || clamped {
		t.Fatalf("Clamp(7) = (%f, %v), want (7, false)", x, clamped)
	}
}

func TestUniversePointsAreCopies(t *testing.T) {
	u, err := NewUniverse(0, 5, 10)
	if err != nil {
		t.Fatalf("NewUniverse: %v", err)
	}
	pts := u.Points()
	pts[0] = 99
	if u.Points()[0] != 0 {
		t.Fatal("mutating returned points changed the universe")
	}
}
