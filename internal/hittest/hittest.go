// Package hittest decides whether a world point lies on a shape's outline.
// Fills are never hit; only the perimeter within a distance tolerance.
package hittest

import (
	"math"

	"sketchpad/internal/geom"
	"sketchpad/internal/shapes"
)

// IsPerimeterHit reports whether point is within tolerance of the outline of
// s. pointRadius is the drawn radius of Point shapes.
func IsPerimeterHit(s shapes.Shape, point geom.Vector, tolerance, pointRadius float64) bool {
	switch v := s.(type) {
	case *shapes.Point:
		return point.Distance(v.Position()) <= pointRadius+tolerance
	case *shapes.Line:
		return nearSegment(point, tolerance, v.Start(), v.End())
	case *shapes.Arrow:
		left, right := v.Wings()
		return nearSegment(point, tolerance, v.Start(), v.End()) ||
			nearSegment(point, tolerance, v.End(), left) ||
			nearSegment(point, tolerance, v.End(), right)
	case *shapes.Rectangle:
		return nearPolygon(point, tolerance, v.Corners())
	case *shapes.Image:
		return nearPolygon(point, tolerance, v.Corners())
	case *shapes.TextBox:
		return nearPolygon(point, tolerance, v.Corners())
	case *shapes.CenterlineRectangle:
		return nearPolygon(point, tolerance, v.Corners())
	case *shapes.Text:
		return nearPolygon(point, tolerance, v.Corners())
	case *shapes.MultilineText:
		return nearPolygon(point, tolerance, v.Corners())
	case *shapes.Icon:
		return nearPolygon(point, tolerance, v.Corners())
	case *shapes.Circle:
		return math.Abs(point.Distance(v.Center())-v.Radius) <= tolerance
	case *shapes.Referential:
		return nearSegment(point, tolerance, v.Origin(), v.XEnd()) ||
			nearSegment(point, tolerance, v.Origin(), v.YEnd())
	case *shapes.Dimension:
		return nearSegment(point, tolerance, v.Start(), v.OffsetStart()) ||
			nearSegment(point, tolerance, v.End(), v.OffsetEnd()) ||
			nearSegment(point, tolerance, v.OffsetStart(), v.OffsetEnd())
	case *shapes.AngleDimension:
		arc := v.Arc()
		return nearSegment(point, tolerance, arc.Center(), arc.StartPoint()) ||
			nearSegment(point, tolerance, arc.Center(), arc.EndPoint()) ||
			onArcBand(arc, point, tolerance)
	case *shapes.Arc:
		return onArcBand(v.Arc(), point, tolerance)
	}
	return false
}

// Topmost returns the last shape in list whose outline is hit, matching the
// last-drawn-is-on-top convention, or nil.
func Topmost(list []shapes.Shape, point geom.Vector, tolerance, pointRadius float64) shapes.Shape {
	for i := len(list) - 1; i >= 0; i-- {
		if IsPerimeterHit(list[i], point, tolerance, pointRadius) {
			return list[i]
		}
	}
	return nil
}

func nearSegment(p geom.Vector, tolerance float64, a, b geom.Vector) bool {
	return geom.SegmentDistance(p, a, b) <= tolerance
}

func nearPolygon(p geom.Vector, tolerance float64, corners [4]geom.Vector) bool {
	for i := range corners {
		if nearSegment(p, tolerance, corners[i], corners[(i+1)%len(corners)]) {
			return true
		}
	}
	return false
}

func onArcBand(arc shapes.ArcGeometry, p geom.Vector, tolerance float64) bool {
	if math.Abs(p.Distance(arc.Center())-arc.Radius) > tolerance {
		return false
	}
	return arc.ContainsAngle(arc.Pose.LocalAngle(p))
}
