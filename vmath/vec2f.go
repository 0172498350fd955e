package vmath

import (
	"math"
)

// Vec2F is a float64 2D vector in world units
type Vec2F struct {
	X, Y float64
}

func V2F(x, y float64) Vec2F {
	return Vec2F{X: x, Y: y}
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FMagSq(v Vec2F) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2FMag(v Vec2F) float64 {
	return math.Sqrt(V2FMagSq(v))
}

// V2FNormalize returns the unit vector, zero-safe
func V2FNormalize(v Vec2F) Vec2F {
	mag := V2FMag(v)
	if mag == 0 {
		return Vec2F{}
	}
	inv := 1.0 / mag
	return Vec2F{v.X * inv, v.Y * inv}
}

// V2FLimit clamps magnitude to maxMag while preserving direction
func V2FLimit(v Vec2F, maxMag float64) Vec2F {
	magSq := V2FMagSq(v)
	if magSq <= maxMag*maxMag || magSq == 0 {
		return v
	}
	return V2FScale(v, maxMag/math.Sqrt(magSq))
}

// V2FDist returns the Euclidean distance between two points
func V2FDist(a, b Vec2F) float64 {
	return V2FMag(V2FSub(a, b))
}

// V2FPolar returns the point at radius r and angle a around center.
// Screen space: positive angles rotate towards +Y
func V2FPolar(center Vec2F, r, a float64) Vec2F {
	return Vec2F{center.X + r*math.Cos(a), center.Y + r*math.Sin(a)}
}
