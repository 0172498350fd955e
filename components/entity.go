package components

import (
	"github.com/lixenwraith/balance/vmath"
)

// EntityKind tags the collidable falling entity variant
type EntityKind uint8

const (
	KindBlock EntityKind = iota
	KindHealer
)

func (k EntityKind) String() string {
	if k == KindHealer {
		return "healer"
	}
	return "block"
}

// FallingEntity is a hazard block or a heal pickup moving down a lane
type FallingEntity struct {
	Kind EntityKind
	Pos  vmath.Vec2F
	W, H float64
	Side Side
}

// NewBlock creates a hazard centered at (x, y)
func NewBlock(x, y, size float64, side Side) FallingEntity {
	return FallingEntity{Kind: KindBlock, Pos: vmath.V2F(x, y), W: size, H: size, Side: side}
}

// NewHealer creates a heal pickup centered at (x, y)
func NewHealer(x, y, size float64, side Side) FallingEntity {
	return FallingEntity{Kind: KindHealer, Pos: vmath.V2F(x, y), W: size, H: size, Side: side}
}

// HalfWidth is the collision radius
func (e *FallingEntity) HalfWidth() float64 {
	return e.W * 0.5
}

// Fall advances the entity by the shared fall speed
func (e *FallingEntity) Fall(speed float64) {
	e.Pos.Y += speed
}

// BelowField reports whether the entity has fully left the bottom of a field of the given height
func (e *FallingEntity) BelowField(height float64) bool {
	return e.Pos.Y > height+e.HalfWidth()
}
