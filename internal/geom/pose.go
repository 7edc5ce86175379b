package geom

import "math"

// Pose places a shape: Position is the local origin and Orientation the local
// X axis. Orientation is kept as a unit vector instead of an angle to avoid
// trigonometric drift across repeated edits.
type Pose struct {
	Position    Vector
	Orientation Vector
}

// NewPose returns a pose at position facing dir. A degenerate dir is replaced
// by UnitX.
func NewPose(position, dir Vector) Pose {
	return Pose{Position: position, Orientation: dir.Normalize()}
}

// AxisAligned returns a pose at position with orientation (1,0).
func AxisAligned(position Vector) Pose {
	return Pose{Position: position, Orientation: UnitX}
}

// Normal returns the local Y axis.
func (p Pose) Normal() Vector { return p.Orientation.Perp() }

// World maps the local offset (u, v) to world coordinates.
func (p Pose) World(u, v float64) Vector {
	return p.Position.Add(p.Orientation.Scale(u)).Add(p.Normal().Scale(v))
}

// Local maps a world point into the pose's local frame.
func (p Pose) Local(world Vector) (u, v float64) {
	d := world.Sub(p.Position)
	return d.Dot(p.Orientation), d.Dot(p.Normal())
}

// LocalAngle returns the angle of world around Position, measured from the
// orientation, in (-π, π].
func (p Pose) LocalAngle(world Vector) float64 {
	u, v := p.Local(world)
	return math.Atan2(v, u)
}

// AtAngle returns the world point at distance r and local angle a.
func (p Pose) AtAngle(r, a float64) Vector {
	sin, cos := math.Sincos(a)
	return p.World(r*cos, r*sin)
}

// Translate returns the pose moved by delta.
func (p Pose) Translate(delta Vector) Pose {
	return Pose{Position: p.Position.Add(delta), Orientation: p.Orientation}
}
