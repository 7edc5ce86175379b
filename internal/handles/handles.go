// Package handles exposes the editable control points of a shape and applies
// pointer drags to them. Handle positions are always derived from the
// current shape state; nothing is cached between calls.
package handles

import (
	"sketchpad/internal/geom"
	"sketchpad/internal/shapes"
)

// Kind identifies a handle within its shape.
type Kind int

const (
	None Kind = iota
	Move
	Start
	End
	Corner0
	Corner1
	Corner2
	Corner3
	Radius
	Width
	XAxis
	YAxis
	Offset
	StartAngle
	EndAngle
	Size
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Move:
		return "move"
	case Start:
		return "start"
	case End:
		return "end"
	case Corner0:
		return "corner0"
	case Corner1:
		return "corner1"
	case Corner2:
		return "corner2"
	case Corner3:
		return "corner3"
	case Radius:
		return "radius"
	case Width:
		return "width"
	case XAxis:
		return "xAxis"
	case YAxis:
		return "yAxis"
	case Offset:
		return "offset"
	case StartAngle:
		return "startAngle"
	case EndAngle:
		return "endAngle"
	case Size:
		return "size"
	default:
		return "unknown"
	}
}

// IsCorner reports whether k is one of the four box corners.
func (k Kind) IsCorner() bool { return k >= Corner0 && k <= Corner3 }

func (k Kind) cornerIndex() int { return int(k - Corner0) }

// Handle is a named control point in world coordinates.
type Handle struct {
	Kind     Kind
	Position geom.Vector
}

// Handles enumerates the control points of s. The order is the hit-test
// priority: the first handle within tolerance wins.
func Handles(s shapes.Shape) []Handle {
	switch v := s.(type) {
	case *shapes.Point:
		return []Handle{{Move, v.Position()}}
	case *shapes.Line:
		return []Handle{{Start, v.Start()}, {End, v.End()}, {Move, v.Midpoint()}}
	case *shapes.Arrow:
		return []Handle{{Start, v.Start()}, {End, v.End()}, {Move, v.Midpoint()}}
	case *shapes.Rectangle:
		return boxHandles(v.Corners(), v.Pose.Position)
	case *shapes.Image:
		return boxHandles(v.Corners(), v.Pose.Position)
	case *shapes.TextBox:
		return boxHandles(v.Corners(), v.Pose.Position)
	case *shapes.Circle:
		return []Handle{{Move, v.Center()}, {Radius, v.Pose.World(v.Radius, 0)}}
	case *shapes.CenterlineRectangle:
		return []Handle{
			{Start, v.Start()},
			{End, v.End()},
			{Width, v.Pose.World(v.Length/2, v.Width/2)},
			{Move, v.Center()},
		}
	case *shapes.Referential:
		return []Handle{{Move, v.Origin()}, {XAxis, v.XEnd()}, {YAxis, v.YEnd()}}
	case *shapes.Dimension:
		return []Handle{
			{Start, v.Start()},
			{End, v.End()},
			{Offset, v.LabelPoint()},
			{Move, v.Midpoint()},
		}
	case *shapes.AngleDimension:
		return arcHandles(v.Arc())
	case *shapes.Arc:
		return arcHandles(v.Arc())
	case *shapes.Text:
		return []Handle{{Move, v.Pose.Position}}
	case *shapes.MultilineText:
		return []Handle{{Move, v.Pose.Position}, {Width, v.Pose.World(v.Width/2, 0)}}
	case *shapes.Icon:
		return []Handle{{Move, v.Pose.Position}, {Size, v.Pose.World(v.Size/2, v.Size/2)}}
	}
	return nil
}

func boxHandles(corners [4]geom.Vector, center geom.Vector) []Handle {
	return []Handle{
		{Corner0, corners[0]},
		{Corner1, corners[1]},
		{Corner2, corners[2]},
		{Corner3, corners[3]},
		{Move, center},
	}
}

func arcHandles(a shapes.ArcGeometry) []Handle {
	return []Handle{
		{Move, a.Center()},
		{StartAngle, a.StartPoint()},
		{EndAngle, a.EndPoint()},
		{Radius, a.MidPoint()},
	}
}

// HitTest returns the first handle of s within tolerance of point, or None.
func HitTest(s shapes.Shape, point geom.Vector, tolerance float64) Kind {
	for _, h := range Handles(s) {
		if h.Position.Distance(point) <= tolerance {
			return h.Kind
		}
	}
	return None
}
