// Package ingest turns vectorizer output into computed shapes. Only the SVG
// primitives the tracing pipeline emits are understood: rect, circle, line
// and polyline paths, optionally nested in groups.
package ingest

import (
	"encoding/xml"
	"fmt"
	"io"

	"sketchpad/internal/geom"
	"sketchpad/internal/shapes"
)

// ============================================================
// XML Structures
// ============================================================

type SVG struct {
	XMLName xml.Name `xml:"svg"`
	Group
}

type Group struct {
	Rects   []Rect   `xml:"rect"`
	Circles []Circle `xml:"circle"`
	Lines   []Line   `xml:"line"`
	Paths   []Path   `xml:"path"`
	Groups  []Group  `xml:"g"`
}

type Rect struct {
	X      float64 `xml:"x,attr"`
	Y      float64 `xml:"y,attr"`
	Width  float64 `xml:"width,attr"`
	Height float64 `xml:"height,attr"`
}

type Circle struct {
	CX float64 `xml:"cx,attr"`
	CY float64 `xml:"cy,attr"`
	R  float64 `xml:"r,attr"`
}

type Line struct {
	X1 float64 `xml:"x1,attr"`
	Y1 float64 `xml:"y1,attr"`
	X2 float64 `xml:"x2,attr"`
	Y2 float64 `xml:"y2,attr"`
}

type Path struct {
	D string `xml:"d,attr"`
}

// ============================================================
// Parser
// ============================================================

// ParseSVG decodes r and returns one shape per usable primitive, in document
// order within each element type. Degenerate primitives are dropped. The
// caller marks the result as computed.
func ParseSVG(r io.Reader) ([]shapes.Shape, error) {
	var svg SVG
	decoder := xml.NewDecoder(r)
	if err := decoder.Decode(&svg); err != nil {
		return nil, fmt.Errorf("decode svg: %w", err)
	}

	var out []shapes.Shape
	if err := collect(&svg.Group, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func collect(g *Group, out *[]shapes.Shape) error {
	for _, rect := range g.Rects {
		if rect.Width <= 0 || rect.Height <= 0 {
			continue
		}
		center := geom.Vec(rect.X+rect.Width/2, rect.Y+rect.Height/2)
		*out = append(*out, shapes.NewRectangle(geom.AxisAligned(center), rect.Width, rect.Height))
	}

	for _, c := range g.Circles {
		if c.R <= 0 {
			continue
		}
		*out = append(*out, shapes.NewCircle(geom.Vec(c.CX, c.CY), c.R))
	}

	for _, l := range g.Lines {
		if s := segment(geom.Vec(l.X1, l.Y1), geom.Vec(l.X2, l.Y2)); s != nil {
			*out = append(*out, s)
		}
	}

	for _, p := range g.Paths {
		subpaths, err := ParsePath(p.D)
		if err != nil {
			return fmt.Errorf("parse path %q: %w", p.D, err)
		}
		for _, points := range subpaths {
			for i := 1; i < len(points); i++ {
				if s := segment(points[i-1], points[i]); s != nil {
					*out = append(*out, s)
				}
			}
		}
	}

	for i := range g.Groups {
		if err := collect(&g.Groups[i], out); err != nil {
			return err
		}
	}
	return nil
}

func segment(a, b geom.Vector) *shapes.Line {
	d := b.Sub(a)
	if d.IsDegenerate() {
		return nil
	}
	return shapes.NewLine(geom.NewPose(a, d), d.Length())
}
