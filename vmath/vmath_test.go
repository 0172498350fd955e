package vmath

import (
	"math"
	"testing"
)

func TestConstrain(t *testing.T) {
	if Constrain(-1, 0, 10) != 0 || Constrain(11, 0, 10) != 10 || Constrain(5, 0, 10) != 5 {
		t.Error("Expected float clamp to [0, 10]")
	}
	if ConstrainInt(-1, 0, 100) != 0 || ConstrainInt(130, 0, 100) != 100 {
		t.Error("Expected int clamp to [0, 100]")
	}
}

func TestMapRange(t *testing.T) {
	if got := MapRange(50, 0, 100, 0, 20); got != 10 {
		t.Errorf("Expected 10, got %g", got)
	}
	// Unclamped beyond the input range
	if got := MapRange(200, 0, 100, 0, 20); got != 40 {
		t.Errorf("Expected 40, got %g", got)
	}
	if got := MapRange(5, 3, 3, 7, 9); got != 7 {
		t.Errorf("Expected degenerate range to return outLo, got %g", got)
	}
}

func TestV2FLimit(t *testing.T) {
	v := V2FLimit(V2F(3, 4), 1)
	if math.Abs(V2FMag(v)-1) > 1e-12 {
		t.Errorf("Expected magnitude 1, got %g", V2FMag(v))
	}
	if math.Abs(v.X-0.6) > 1e-12 || math.Abs(v.Y-0.8) > 1e-12 {
		t.Errorf("Expected direction preserved, got %+v", v)
	}
	if got := V2FLimit(V2F(0.1, 0), 1); got != V2F(0.1, 0) {
		t.Errorf("Expected short vector unchanged, got %+v", got)
	}
}

func TestV2FNormalizeZero(t *testing.T) {
	if got := V2FNormalize(Vec2F{}); got != (Vec2F{}) {
		t.Errorf("Expected zero vector, got %+v", got)
	}
}

func TestV2FPolar(t *testing.T) {
	p := V2FPolar(V2F(10, 10), 5, math.Pi/2)
	if math.Abs(p.X-10) > 1e-9 || math.Abs(p.Y-15) > 1e-9 {
		t.Errorf("Expected (10, 15), got %+v", p)
	}
}
