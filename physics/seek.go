package physics

import (
	"github.com/lixenwraith/balance/vmath"
)

// Seek applies one frame of arrival steering toward target.
// Returns true when the body is within ArriveEpsilon: motion is stopped and the
// caller must end the seek. Force accumulates in k.Acc; call Integrate afterwards
func Seek(k *Kinetic, target vmath.Vec2F, profile *SeekProfile) bool {
	desired := vmath.V2FSub(target, k.Pos)
	d := vmath.V2FMag(desired)

	desired = vmath.V2FNormalize(desired)
	if d < profile.ArrivalRadius {
		desired = vmath.V2FScale(desired, vmath.MapRange(d, 0, profile.ArrivalRadius, 0, profile.MaxSpeed))
	} else {
		desired = vmath.V2FScale(desired, profile.MaxSpeed)
	}

	steer := vmath.V2FLimit(vmath.V2FSub(desired, k.Vel), profile.MaxForce)
	ApplyForce(k, steer)

	if d <= profile.ArriveEpsilon {
		Stop(k)
		return true
	}
	return false
}
