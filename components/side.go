package components

// Side identifies which half of the field an entity belongs to
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Shade is the grayscale tone of the side: black on the left, white on the right
func (s Side) Shade() uint8 {
	if s == SideRight {
		return 255
	}
	return 0
}

// Direction is a lane change request
type Direction uint8

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}
