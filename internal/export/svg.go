// Package export renders scene documents as SVG markup.
package export

import (
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"

	"sketchpad/internal/geom"
	"sketchpad/internal/scene"
	"sketchpad/internal/shapes"

	"github.com/lucasb-eyer/go-colorful"
)

// ============================================================
// Renderer
// ============================================================

type Options struct {
	// Width and Height fix the canvas. When either is zero the canvas is
	// fitted to the shape bounds plus Padding.
	Width   float64
	Height  float64
	Padding float64

	Stroke         colorful.Color
	ComputedStroke colorful.Color
	PointRadius    float64
}

func DefaultOptions() Options {
	computed, _ := colorful.Hex("#1f77b4")
	return Options{
		Padding:        10,
		ComputedStroke: computed,
		PointRadius:    3,
	}
}

type Renderer struct {
	opts Options
}

func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Render builds an SVG document from doc. Documents of an unsupported
// version are refused with scene.ErrUnsupportedVersion.
func (r *Renderer) Render(doc *scene.Document) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("document is nil")
	}

	list, computed, err := scene.FromDocument(doc)
	if err != nil {
		return "", err
	}

	minX, minY, width, height := r.canvas(list)

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s">`,
		formatFloat(width), formatFloat(height),
		formatFloat(minX), formatFloat(minY), formatFloat(width), formatFloat(height)))
	builder.WriteString("\n")

	for _, s := range list {
		_, isComputed := computed[shapes.ID(s)]
		elem := r.renderShape(s, isComputed)
		if elem == "" {
			continue
		}
		builder.WriteString("  ")
		builder.WriteString(elem)
		builder.WriteString("\n")
	}

	builder.WriteString(`</svg>`)
	return builder.String(), nil
}

// ============================================================
// Sizing
// ============================================================

func (r *Renderer) canvas(list []shapes.Shape) (minX, minY, width, height float64) {
	if r.opts.Width > 0 && r.opts.Height > 0 {
		return 0, 0, r.opts.Width, r.opts.Height
	}

	lo, hi, ok := shapes.Bounds(list)
	if !ok {
		return 0, 0, 1000, 1000
	}

	pad := r.opts.Padding
	width = hi.X - lo.X + 2*pad
	height = hi.Y - lo.Y + 2*pad
	if width <= 0 {
		width = 1000
	}
	if height <= 0 {
		height = 1000
	}
	return lo.X - pad, lo.Y - pad, width, height
}

// ============================================================
// Shape renderers
// ============================================================

func (r *Renderer) renderShape(s shapes.Shape, isComputed bool) string {
	attrs := r.attrs(s, isComputed)

	switch v := s.(type) {
	case *shapes.Point:
		p := v.Position()
		return fmt.Sprintf(`<circle %s cx="%s" cy="%s" r="%s" />`,
			attrs, formatFloat(p.X), formatFloat(p.Y), formatFloat(r.opts.PointRadius))

	case *shapes.Line:
		return lineElement(attrs, v.Start(), v.End())

	case *shapes.Rectangle:
		return polygonElement(attrs, v.Corners())

	case *shapes.CenterlineRectangle:
		return polygonElement(attrs, v.Corners())

	case *shapes.Circle:
		c := v.Center()
		return fmt.Sprintf(`<circle %s cx="%s" cy="%s" r="%s" />`,
			attrs, formatFloat(c.X), formatFloat(c.Y), formatFloat(v.Radius))

	case *shapes.Image:
		var g strings.Builder
		g.WriteString(`<g ` + attrs + `>`)
		g.WriteString(polygonElement("", v.Corners()))
		if v.SourcePath != "" {
			g.WriteString(fmt.Sprintf(`<image href="%s" x="%s" y="%s" width="%s" height="%s"%s />`,
				escape(v.SourcePath),
				formatFloat(v.Pose.Position.X-v.Width/2), formatFloat(v.Pose.Position.Y-v.Height/2),
				formatFloat(v.Width), formatFloat(v.Height), rotation(v.Pose)))
		}
		g.WriteString(`</g>`)
		return g.String()

	case *shapes.TextBox:
		var g strings.Builder
		g.WriteString(`<g ` + attrs + `>`)
		g.WriteString(polygonElement("", v.Corners()))
		g.WriteString(textElement(v.Pose, v.Text, v.FontSize))
		g.WriteString(`</g>`)
		return g.String()

	case *shapes.Arrow:
		left, right := v.Wings()
		end := v.End()
		return fmt.Sprintf(`<g %s>%s<polyline points="%s %s %s" /></g>`,
			attrs, lineElement("", v.Start(), end),
			formatPoint(left), formatPoint(end), formatPoint(right))

	case *shapes.Referential:
		return fmt.Sprintf(`<g %s>%s%s</g>`,
			attrs, lineElement("", v.Origin(), v.XEnd()), lineElement("", v.Origin(), v.YEnd()))

	case *shapes.Dimension:
		label := v.Text
		if label == "" {
			label = strconv.FormatFloat(v.Length, 'f', 2, 64)
		}
		return fmt.Sprintf(`<g %s>%s%s%s%s</g>`,
			attrs,
			lineElement("", v.Start(), v.OffsetStart()),
			lineElement("", v.End(), v.OffsetEnd()),
			lineElement("", v.OffsetStart(), v.OffsetEnd()),
			labelElement(v.LabelPoint(), label))

	case *shapes.AngleDimension:
		arc := v.Arc()
		label := v.Text
		if label == "" {
			label = strconv.FormatFloat(math.Abs(v.SweepAngleRad)*180/math.Pi, 'f', 1, 64) + "°"
		}
		return fmt.Sprintf(`<g %s>%s%s%s%s</g>`,
			attrs,
			lineElement("", arc.Center(), arc.StartPoint()),
			lineElement("", arc.Center(), arc.EndPoint()),
			arcElement("", arc),
			labelElement(arc.MidPoint(), label))

	case *shapes.Arc:
		return arcElement(attrs, v.Arc())

	case *shapes.Text:
		return fmt.Sprintf(`<g %s>%s</g>`, attrs, textElement(v.Pose, v.Text, v.FontSize))

	case *shapes.MultilineText:
		return fmt.Sprintf(`<g %s>%s</g>`, attrs, multilineElement(v))

	case *shapes.Icon:
		return fmt.Sprintf(`<g %s data-icon="%s">%s</g>`, attrs, escape(v.IconKey), polygonElement("", v.Corners()))
	}
	return ""
}

func (r *Renderer) attrs(s shapes.Shape, isComputed bool) string {
	b := s.Common()

	stroke := r.opts.Stroke
	if isComputed {
		stroke = r.opts.ComputedStroke
	}
	fill := "none"
	if b.Style.Filled {
		fill = b.Style.FillHex()
	}

	out := fmt.Sprintf(`id="%s" data-kind="%s" stroke="%s" stroke-width="%s" fill="%s"`,
		escape(b.ID), s.Kind(), stroke.Clamped().Hex(), formatFloat(b.Style.LineWeight), fill)
	if isComputed {
		out += ` data-computed="true"`
	}
	return out
}

// ============================================================
// Element helpers
// ============================================================

func lineElement(attrs string, a, b geom.Vector) string {
	return fmt.Sprintf(`<line %sx1="%s" y1="%s" x2="%s" y2="%s" />`,
		prefix(attrs), formatFloat(a.X), formatFloat(a.Y), formatFloat(b.X), formatFloat(b.Y))
}

func polygonElement(attrs string, corners [4]geom.Vector) string {
	points := make([]string, len(corners))
	for i, c := range corners {
		points[i] = formatPoint(c)
	}
	return fmt.Sprintf(`<polygon %spoints="%s" />`, prefix(attrs), strings.Join(points, " "))
}

// arcElement draws the arc as an SVG elliptical arc path. A full turn is
// split in two halves, since a single arc command cannot close on itself.
func arcElement(attrs string, a shapes.ArcGeometry) string {
	sweepFlag := 0
	if a.SweepAngleRad > 0 {
		sweepFlag = 1
	}
	r := formatFloat(a.Radius)
	start := a.StartPoint()

	var path strings.Builder
	path.WriteString("M " + formatPoint(start))
	if math.Abs(a.SweepAngleRad) >= 2*math.Pi {
		half := a.Pose.AtAngle(a.Radius, a.StartAngleRad+math.Copysign(math.Pi, a.SweepAngleRad))
		path.WriteString(fmt.Sprintf(" A %s %s 0 0 %d %s", r, r, sweepFlag, formatPoint(half)))
		path.WriteString(fmt.Sprintf(" A %s %s 0 0 %d %s", r, r, sweepFlag, formatPoint(start)))
	} else {
		large := 0
		if math.Abs(a.SweepAngleRad) > math.Pi {
			large = 1
		}
		path.WriteString(fmt.Sprintf(" A %s %s 0 %d %d %s", r, r, large, sweepFlag, formatPoint(a.EndPoint())))
	}
	return fmt.Sprintf(`<path %sd="%s" />`, prefix(attrs), path.String())
}

func textElement(pose geom.Pose, text string, fontSize float64) string {
	p := pose.Position
	return fmt.Sprintf(`<text x="%s" y="%s" font-size="%s" text-anchor="middle" dominant-baseline="middle" stroke="none" fill="currentColor"%s>%s</text>`,
		formatFloat(p.X), formatFloat(p.Y), formatFloat(fontSize), rotation(pose), escape(text))
}

func multilineElement(m *shapes.MultilineText) string {
	lines := m.Lines()
	lineHeight := m.FontSize * 1.2
	top := m.Pose.Position.Y - lineHeight*float64(len(lines)-1)/2

	var text strings.Builder
	text.WriteString(fmt.Sprintf(`<text font-size="%s" text-anchor="middle" dominant-baseline="middle" stroke="none" fill="currentColor"%s>`,
		formatFloat(m.FontSize), rotation(m.Pose)))
	for i, line := range lines {
		text.WriteString(fmt.Sprintf(`<tspan x="%s" y="%s">%s</tspan>`,
			formatFloat(m.Pose.Position.X), formatFloat(top+lineHeight*float64(i)), escape(line)))
	}
	text.WriteString(`</text>`)
	return text.String()
}

func labelElement(p geom.Vector, text string) string {
	return fmt.Sprintf(`<text x="%s" y="%s" text-anchor="middle" stroke="none" fill="currentColor">%s</text>`,
		formatFloat(p.X), formatFloat(p.Y), escape(text))
}

// rotation returns a transform attribute turning content about the pose
// position, or nothing for an axis-aligned pose.
func rotation(pose geom.Pose) string {
	deg := math.Atan2(pose.Orientation.Y, pose.Orientation.X) * 180 / math.Pi
	if math.Abs(deg) < 1e-9 {
		return ""
	}
	return fmt.Sprintf(` transform="rotate(%s %s %s)"`,
		formatFloat(deg), formatFloat(pose.Position.X), formatFloat(pose.Position.Y))
}

// ============================================================
// Formatting helpers
// ============================================================

func prefix(attrs string) string {
	if attrs == "" {
		return ""
	}
	return attrs + " "
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}

func formatPoint(p geom.Vector) string {
	return formatFloat(p.X) + " " + formatFloat(p.Y)
}
