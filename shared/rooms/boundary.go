package rooms

// BoundaryDetector decides when a player body has left the playable bounds
// of a room. A crossing fires only when at least Threshold of the body
// extends past an edge AND the velocity points outward through that edge,
// so a player nudged against a wall never triggers a transition.
type BoundaryDetector struct {
	RoomW     float64
	RoomH     float64
	BodyW     float64
	BodyH     float64
	Threshold float64 // fraction of the body outside the edge, 0..1
}

// Detect reports the crossing direction for a body at top-left (x, y) moving
// with velocity (velX, velY). Returns false while the body is inside bounds
// or drifting without outward velocity.
func (b BoundaryDetector) Detect(x, y, velX, velY float64) (Direction, bool) {
	overW := b.BodyW * b.Threshold
	overH := b.BodyH * b.Threshold

	switch {
	case velX > 0 && x+b.BodyW-b.RoomW >= overW:
		return East, true
	case velX < 0 && -x >= overW:
		return West, true
	case velY > 0 && y+b.BodyH-b.RoomH >= overH:
		return South, true
	case velY < 0 && -y >= overH:
		return North, true
	}
	return 0, false
}

// WrapPosition translates a body position across a crossed edge into the
// destination room's coordinate space, keeping motion continuous: the crossed
// axis shifts by one room span, the other axis is untouched.
func (b BoundaryDetector) WrapPosition(crossed Direction, x, y float64) (float64, float64) {
	switch crossed {
	case East:
		return x - b.RoomW, y
	case West:
		return x + b.RoomW, y
	case South:
		return x, y - b.RoomH
	case North:
		return x, y + b.RoomH
	}
	return x, y
}
