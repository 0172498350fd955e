package components

// LaneLayout describes the four lane centers of a field
type LaneLayout struct {
	Spacing   float64
	Positions [4]float64
}

// NewLaneLayout splits each half of the field into two lanes
func NewLaneLayout(width float64) LaneLayout {
	spacing := width * 0.5 / 2
	l := LaneLayout{Spacing: spacing}
	for i := range l.Positions {
		l.Positions[i] = spacing*0.5 + float64(i)*spacing
	}
	return l
}

// SideLanes returns the two lane positions owned by a side
func (l LaneLayout) SideLanes(s Side) [2]float64 {
	if s == SideRight {
		return [2]float64{l.Positions[2], l.Positions[3]}
	}
	return [2]float64{l.Positions[0], l.Positions[1]}
}

// LaneIndex returns the lane whose column contains x, -1 when outside the field
func (l LaneLayout) LaneIndex(x float64) int {
	if x < 0 || l.Spacing <= 0 {
		return -1
	}
	idx := int(x / l.Spacing)
	if idx >= len(l.Positions) {
		return -1
	}
	return idx
}

// LaneSide returns the side owning a lane index
func LaneSide(lane int) Side {
	if lane >= 2 {
		return SideRight
	}
	return SideLeft
}

// Field is the simulation area and its lane layout
type Field struct {
	Width  float64
	Height float64
	Lanes  LaneLayout
}

// NewField builds a field with lanes derived from its width
func NewField(width, height float64) Field {
	return Field{Width: width, Height: height, Lanes: NewLaneLayout(width)}
}

// EntitySize is the side length of blocks and healers: half a lane spacing
func (f Field) EntitySize() float64 {
	return f.Lanes.Spacing * 0.5
}
