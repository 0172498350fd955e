package physics

import (
	"github.com/lixenwraith/balance/vmath"
)

// CirclesOverlap reports whether two circles touch: center distance <= ra + rb
func CirclesOverlap(a vmath.Vec2F, ra float64, b vmath.Vec2F, rb float64) bool {
	r := ra + rb
	return vmath.V2FMagSq(vmath.V2FSub(a, b)) <= r*r
}
