package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/balance/vmath"
)

func TestCirclesOverlap(t *testing.T) {
	a := vmath.V2F(0, 0)
	if !CirclesOverlap(a, 5, vmath.V2F(10, 0), 5) {
		t.Error("Expected touching circles to overlap")
	}
	if CirclesOverlap(a, 5, vmath.V2F(10.01, 0), 5) {
		t.Error("Expected separated circles not to overlap")
	}
}

func TestIntegrateClearsAcceleration(t *testing.T) {
	k := Kinetic{Pos: vmath.V2F(1, 1)}
	ApplyForce(&k, vmath.V2F(2, 0))
	ApplyForce(&k, vmath.V2F(1, 0))
	Integrate(&k)

	if k.Vel != vmath.V2F(3, 0) || k.Pos != vmath.V2F(4, 1) {
		t.Errorf("Expected vel (3,0) pos (4,1), got %+v %+v", k.Vel, k.Pos)
	}
	if k.Acc != (vmath.Vec2F{}) {
		t.Errorf("Expected acceleration reset, got %+v", k.Acc)
	}
}

// TestSeekConverges verifies arrival within epsilon with velocity exactly zero
func TestSeekConverges(t *testing.T) {
	for _, dx := range []float64{75, -75, 3} {
		k := Kinetic{Pos: vmath.V2F(100, 640)}
		target := vmath.V2F(100+dx, 640)

		arrived := false
		for frame := 0; frame < 600; frame++ {
			if Seek(&k, target, &LaneChange) {
				arrived = true
				break
			}
			Integrate(&k)
		}
		if !arrived {
			t.Fatalf("dx=%g: expected arrival within 600 frames, at %+v", dx, k.Pos)
		}
		if d := vmath.V2FDist(k.Pos, target); d > LaneChange.ArriveEpsilon {
			t.Errorf("dx=%g: expected distance <= %g, got %g", dx, LaneChange.ArriveEpsilon, d)
		}
		if k.Vel != (vmath.Vec2F{}) || k.Acc != (vmath.Vec2F{}) {
			t.Errorf("dx=%g: expected motion stopped, got vel %+v acc %+v", dx, k.Vel, k.Acc)
		}
	}
}

func TestSeekForceLimited(t *testing.T) {
	k := Kinetic{}
	Seek(&k, vmath.V2F(1000, 0), &LaneChange)
	if mag := vmath.V2FMag(k.Acc); mag > LaneChange.MaxForce+1e-12 {
		t.Errorf("Expected steering force <= %g, got %g", LaneChange.MaxForce, mag)
	}
	if math.Abs(k.Acc.Y) > 1e-12 {
		t.Errorf("Expected purely horizontal steering, got %+v", k.Acc)
	}
}
