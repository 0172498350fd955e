package physics

import (
	"github.com/lixenwraith/balance/vmath"
)

// Kinetic holds world-space position, velocity and per-frame accumulated acceleration
type Kinetic struct {
	Pos vmath.Vec2F
	Vel vmath.Vec2F
	Acc vmath.Vec2F
}

// ApplyForce accumulates a force for the next integration step (unit mass)
func ApplyForce(k *Kinetic, f vmath.Vec2F) {
	k.Acc = vmath.V2FAdd(k.Acc, f)
}

// Integrate performs one frame of explicit Euler: v += a; p += v; a = 0
func Integrate(k *Kinetic) {
	k.Vel = vmath.V2FAdd(k.Vel, k.Acc)
	k.Pos = vmath.V2FAdd(k.Pos, k.Vel)
	k.Acc = vmath.Vec2F{}
}

// Stop zeroes velocity and pending acceleration
func Stop(k *Kinetic) {
	k.Vel = vmath.Vec2F{}
	k.Acc = vmath.Vec2F{}
}
