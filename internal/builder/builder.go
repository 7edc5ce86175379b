// Package builder turns a pointer gesture into a new shape.
package builder

import (
	"math"

	"sketchpad/internal/geom"
	"sketchpad/internal/shapes"
)

// Tool names a drawing tool. Values match the shape kinds they produce.
type Tool string

const (
	ToolPoint               Tool = "point"
	ToolLine                Tool = "line"
	ToolRectangle           Tool = "rectangle"
	ToolCircle              Tool = "circle"
	ToolImage               Tool = "image"
	ToolTextBox             Tool = "textBox"
	ToolArrow               Tool = "arrow"
	ToolCenterlineRectangle Tool = "centerlineRectangle"
	ToolReferential         Tool = "referential"
	ToolDimension           Tool = "dimension"
	ToolAngleDimension      Tool = "angleDimension"
	ToolText                Tool = "text"
	ToolMultilineText       Tool = "multilineText"
	ToolIcon                Tool = "icon"
	ToolArc                 Tool = "arc"
)

const (
	MinSweepRad = shapes.MinSweepRad
	// DefaultSweepRad replaces a gesture whose sweep is below MinSweepRad.
	DefaultSweepRad = math.Pi / 2
)

// Options holds the defaults for fields a gesture cannot express.
type Options struct {
	ArrowHeadLength   float64
	ArrowHeadAngleRad float64
	CenterlineWidth   float64
	FontSize          float64
	IconSize          float64
	IconKey           string
	Text              string
	ImageSourcePath   string
}

func DefaultOptions() Options {
	return Options{
		ArrowHeadLength:   12,
		ArrowHeadAngleRad: math.Pi / 6,
		CenterlineWidth:   20,
		FontSize:          18,
		IconSize:          18,
		IconKey:           "pin",
		Text:              "Text",
	}
}

// Builder builds shapes from gestures using a fixed set of Options.
type Builder struct {
	opts Options
}

func New(opts Options) *Builder {
	return &Builder{opts: opts}
}

// Build uses DefaultOptions.
func Build(tool Tool, start, end geom.Vector, minSize float64) (shapes.Shape, bool) {
	return New(DefaultOptions()).Build(tool, start, end, minSize)
}

// Build returns the shape described by a gesture from start to end, or
// false when the gesture is too small to produce one. It has no side
// effects.
func (b *Builder) Build(tool Tool, start, end geom.Vector, minSize float64) (shapes.Shape, bool) {
	delta := end.Sub(start)
	length := delta.Length()
	oriented := geom.NewPose(start, delta)

	switch tool {
	case ToolPoint:
		return shapes.NewPoint(end), true
	case ToolText:
		return shapes.NewText(end, b.opts.Text, b.opts.FontSize), true
	case ToolIcon:
		return shapes.NewIcon(end, b.opts.IconKey, b.opts.IconSize), true

	case ToolRectangle, ToolImage, ToolTextBox:
		w, h := math.Abs(delta.X), math.Abs(delta.Y)
		if w <= minSize || h <= minSize {
			return nil, false
		}
		pose := geom.AxisAligned(geom.Midpoint(start, end))
		switch tool {
		case ToolImage:
			return shapes.NewImage(pose, w, h, b.opts.ImageSourcePath), true
		case ToolTextBox:
			return shapes.NewTextBox(pose, w, h, b.opts.Text, b.opts.FontSize), true
		}
		return shapes.NewRectangle(pose, w, h), true

	case ToolMultilineText:
		w := math.Abs(delta.X)
		if w <= minSize {
			return nil, false
		}
		pose := geom.AxisAligned(geom.Midpoint(start, end))
		return shapes.NewMultilineText(pose, b.opts.Text, b.opts.FontSize, w), true
	}

	if length <= minSize {
		return nil, false
	}

	switch tool {
	case ToolLine:
		return shapes.NewLine(oriented, length), true
	case ToolCircle:
		c := shapes.NewCircle(start, length)
		c.Pose = oriented
		return c, true
	case ToolArrow:
		return shapes.NewArrow(oriented, length, b.opts.ArrowHeadLength, b.opts.ArrowHeadAngleRad), true
	case ToolCenterlineRectangle:
		return shapes.NewCenterlineRectangle(oriented, length, b.opts.CenterlineWidth), true
	case ToolReferential:
		return shapes.NewReferential(oriented, length, length), true
	case ToolDimension:
		return shapes.NewDimension(oriented, length, 0, ""), true
	case ToolAngleDimension:
		return shapes.NewAngleDimension(geom.AxisAligned(start), length, 0, gestureSweep(delta), ""), true
	case ToolArc:
		return shapes.NewArc(geom.AxisAligned(start), length, 0, gestureSweep(delta)), true
	}
	return nil, false
}

// gestureSweep is the signed angle from the X axis to the drag direction. A
// near-zero sweep becomes a right angle.
func gestureSweep(delta geom.Vector) float64 {
	sweep := geom.UnitX.AngleTo(delta.Normalize())
	if math.Abs(sweep) <= MinSweepRad {
		return DefaultSweepRad
	}
	return sweep
}
