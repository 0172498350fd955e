// @focus: #constants { world }
package constants

// World Geometry (canvas units)
const (
	// WorldWidth is the simulation width; left half belongs to the left car
	WorldWidth = 300.0

	// WorldHeight is the simulation height
	WorldHeight = 800.0

	// LaneCount is the number of lanes across both sides
	LaneCount = 4

	// LanesPerSide is the number of lanes a single car may occupy
	LanesPerSide = 2

	// LaneSpacing is the distance between lane centers: (width/2)/2
	LaneSpacing = WorldWidth * 0.5 / LanesPerSide
)

// Frame Timing
const (
	// FramesPerSecond converts second-based rates into frame cadences
	FramesPerSecond = 60
)
