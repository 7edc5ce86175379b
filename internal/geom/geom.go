// Package geom provides the 2D primitives the shape engine is built on:
// - Vector arithmetic (add, subtract, scale, rotate, normalize)
// - Pose (position + unit orientation) with local/world conversion
// - Angle normalization and segment distance helpers
package geom

import "math"

// Epsilon is the magnitude below which a vector is treated as degenerate.
const Epsilon = 1e-6

// UnitX is the fallback direction substituted for degenerate orientations.
var UnitX = Vector{X: 1, Y: 0}

// Vector represents a 2D point or direction.
type Vector struct {
	X float64
	Y float64
}

func Vec(x, y float64) Vector { return Vector{X: x, Y: y} }

func (v Vector) Add(w Vector) Vector    { return Vector{v.X + w.X, v.Y + w.Y} }
func (v Vector) Sub(w Vector) Vector    { return Vector{v.X - w.X, v.Y - w.Y} }
func (v Vector) Scale(s float64) Vector { return Vector{v.X * s, v.Y * s} }
func (v Vector) Neg() Vector            { return Vector{-v.X, -v.Y} }
func (v Vector) Dot(w Vector) float64   { return v.X*w.X + v.Y*w.Y }
func (v Vector) Cross(w Vector) float64 { return v.X*w.Y - v.Y*w.X }
func (v Vector) Length() float64        { return math.Hypot(v.X, v.Y) }

// Distance returns the euclidean distance between two points.
func (v Vector) Distance(w Vector) float64 { return v.Sub(w).Length() }

// Perp returns the vector rotated 90 degrees counter-clockwise.
func (v Vector) Perp() Vector { return Vector{-v.Y, v.X} }

// Rotate returns the vector rotated by angle radians around the origin.
func (v Vector) Rotate(angle float64) Vector {
	sin, cos := math.Sincos(angle)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// IsDegenerate reports whether the vector is too short to define a direction.
func (v Vector) IsDegenerate() bool { return v.Length() < Epsilon }

// Normalize returns a unit vector in the same direction. Degenerate vectors
// normalize to UnitX so callers never see NaN or Inf.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l < Epsilon {
		return UnitX
	}
	return Vector{v.X / l, v.Y / l}
}

// AngleTo returns the signed angle in radians from v to w, in (-π, π].
func (v Vector) AngleTo(w Vector) float64 {
	return math.Atan2(v.Cross(w), v.Dot(w))
}

// Lerp interpolates between v (t=0) and w (t=1).
func (v Vector) Lerp(w Vector, t float64) Vector {
	return Vector{v.X + (w.X-v.X)*t, v.Y + (w.Y-v.Y)*t}
}

// Midpoint returns the point halfway between p and q.
func Midpoint(p, q Vector) Vector { return p.Lerp(q, 0.5) }

// Approx reports whether two vectors are equal within eps on both axes.
func (v Vector) Approx(w Vector, eps float64) bool {
	return math.Abs(v.X-w.X) <= eps && math.Abs(v.Y-w.Y) <= eps
}

// SegmentDistance returns the distance from p to the segment ab. The
// projection parameter is clamped to [0,1]; a zero-length segment degrades to
// the distance to a.
func SegmentDistance(p, a, b Vector) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	t = math.Max(0, math.Min(1, t))
	return p.Distance(a.Add(ab.Scale(t)))
}

// NormalizeAngle maps an angle to (-π, π].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// PositiveAngle maps an angle to [0, 2π).
func PositiveAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
