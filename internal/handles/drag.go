package handles

import (
	"math"

	"sketchpad/internal/geom"
	"sketchpad/internal/shapes"
)

// ApplyDrag mutates s in place for a pointer at world while handle is
// active. lastWorld is the pointer position of the previous frame and is
// only used by Move. A frame that would shrink a dimension to minSize or
// below is skipped, leaving s untouched.
//
// It reports whether s changed. Computed shapes must be filtered out by the
// caller before reaching this function.
func ApplyDrag(s shapes.Shape, handle Kind, world, lastWorld geom.Vector, minSize float64) bool {
	if handle == Move {
		shapes.Translate(s, world.Sub(lastWorld))
		return true
	}

	switch v := s.(type) {
	case *shapes.Line:
		return dragEndpoint(&v.Base, &v.Length, handle, world, minSize)
	case *shapes.Arrow:
		return dragEndpoint(&v.Base, &v.Length, handle, world, minSize)
	case *shapes.Dimension:
		return dragDimension(v, handle, world, minSize)
	case *shapes.CenterlineRectangle:
		if handle == Width {
			_, off := v.Pose.Local(world)
			v.Width = math.Max(2*math.Abs(off), minSize)
			return true
		}
		return dragEndpoint(&v.Base, &v.Length, handle, world, minSize)

	case *shapes.Rectangle:
		return dragCorner(&v.Base, &v.Width, &v.Height, handle, world, minSize)
	case *shapes.Image:
		return dragCorner(&v.Base, &v.Width, &v.Height, handle, world, minSize)
	case *shapes.TextBox:
		return dragCorner(&v.Base, &v.Width, &v.Height, handle, world, minSize)

	case *shapes.Circle:
		if handle != Radius {
			return false
		}
		v.Radius = math.Max(world.Distance(v.Center()), minSize)
		return true

	case *shapes.Referential:
		u, n := v.Pose.Local(world)
		switch handle {
		case XAxis:
			v.XAxisLength = math.Max(math.Abs(u), minSize)
			return true
		case YAxis:
			v.YAxisLength = math.Max(math.Abs(n), minSize)
			return true
		}
		return false

	case *shapes.AngleDimension:
		return dragArc(v.Pose, &v.Radius, &v.StartAngleRad, &v.SweepAngleRad, handle, world, minSize)
	case *shapes.Arc:
		return dragArc(v.Pose, &v.Radius, &v.StartAngleRad, &v.SweepAngleRad, handle, world, minSize)

	case *shapes.MultilineText:
		if handle != Width {
			return false
		}
		u, _ := v.Pose.Local(world)
		v.Width = math.Max(2*math.Abs(u), minSize)
		return true

	case *shapes.Icon:
		if handle != Size {
			return false
		}
		u, n := v.Pose.Local(world)
		v.Size = math.Max(2*math.Max(math.Abs(u), math.Abs(n)), minSize)
		return true
	}
	return false
}

// dragEndpoint rebuilds pose and length from the fixed endpoint and the
// moving one.
func dragEndpoint(b *shapes.Base, length *float64, handle Kind, world geom.Vector, minSize float64) bool {
	start := b.Pose.Position
	end := b.Pose.World(*length, 0)

	var from, to geom.Vector
	switch handle {
	case Start:
		from, to = world, end
	case End:
		from, to = start, world
	default:
		return false
	}

	d := to.Sub(from)
	l := d.Length()
	if l <= minSize {
		return false
	}
	b.Pose = geom.NewPose(from, d)
	*length = l
	return true
}

func dragDimension(d *shapes.Dimension, handle Kind, world geom.Vector, minSize float64) bool {
	if handle == Offset {
		// Signed and unfloored so the dimension line can flip sides.
		_, d.Offset = d.Pose.Local(world)
		return true
	}
	return dragEndpoint(&d.Base, &d.Length, handle, world, minSize)
}

// dragCorner keeps the diagonally opposite corner fixed. Extents are measured
// in the shape's local frame with the moving corner's signs, so a drag past
// the fixed corner is rejected instead of flipping the box.
func dragCorner(b *shapes.Base, w, h *float64, handle Kind, world geom.Vector, minSize float64) bool {
	if !handle.IsCorner() {
		return false
	}
	sx, sy := shapes.BoxCornerSigns(handle.cornerIndex())
	width, height := *w, *h
	fixed := b.Pose.World(-sx*width/2, -sy*height/2)

	d := world.Sub(fixed)
	nw := sx * d.Dot(b.Pose.Orientation)
	nh := sy * d.Dot(b.Pose.Normal())
	if nw <= minSize || nh <= minSize {
		return false
	}

	b.Pose.Position = geom.Midpoint(fixed, world)
	*w, *h = nw, nh
	return true
}

// dragArc edits an arc's angles or radius. Moving the start keeps the end
// angle fixed. The sweep is the signed end-start difference in (-π, π] and
// never drops below shapes.MinSweepRad in magnitude.
func dragArc(pose geom.Pose, radius, start, sweep *float64, handle Kind, world geom.Vector, minSize float64) bool {
	switch handle {
	case Radius:
		*radius = math.Max(world.Distance(pose.Position), minSize)
		return true
	case StartAngle:
		a := pose.LocalAngle(world)
		end := *start + *sweep
		raw := geom.NormalizeAngle(end - a)
		*start = geom.NormalizeAngle(a)
		*sweep = floorSweep(raw, *sweep)
		return true
	case EndAngle:
		a := pose.LocalAngle(world)
		raw := geom.NormalizeAngle(a - *start)
		*sweep = floorSweep(raw, *sweep)
		return true
	}
	return false
}

func floorSweep(sweep, previous float64) float64 {
	if math.Abs(sweep) >= shapes.MinSweepRad {
		return sweep
	}
	if sweep < 0 || (sweep == 0 && previous < 0) {
		return -shapes.MinSweepRad
	}
	return shapes.MinSweepRad
}
