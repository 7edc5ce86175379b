package scene

import (
	"errors"
	"fmt"

	"sketchpad/internal/geom"
	"sketchpad/internal/shapes"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnsupportedVersion is returned by FromDocument for any version other
// than Version.
var ErrUnsupportedVersion = errors.New("unsupported scene version")

// ErrNilDocument is returned when there is no document to read.
var ErrNilDocument = errors.New("scene document is nil")

// ============================================================
// Shapes -> Document
// ============================================================

// ToDocument flattens list into a document. computed holds the ids to mark
// as computed; ids not in list are ignored.
func ToDocument(list []shapes.Shape, computed map[string]struct{}) Document {
	doc := Document{Version: Version, Shapes: make([]Record, 0, len(list))}
	for _, s := range list {
		doc.Shapes = append(doc.Shapes, toRecord(s, computed))
	}
	return doc
}

func toRecord(s shapes.Shape, computed map[string]struct{}) Record {
	b := s.Common()
	_, isComputed := computed[b.ID]
	style := b.Style
	fill := style.FillHex()
	rgb := [3]float64{style.FillColor.R, style.FillColor.G, style.FillColor.B}

	r := Record{
		Kind:         string(s.Kind()),
		ID:           b.ID,
		IsComputed:   isComputed,
		X:            b.Pose.Position.X,
		Y:            b.Pose.Position.Y,
		OrientationX: b.Pose.Orientation.X,
		OrientationY: b.Pose.Orientation.Y,
		LineWeight:   &style.LineWeight,
		Filled:       &style.Filled,
		FillColor:    &fill,
		FillRGB:      &rgb,
	}

	switch v := s.(type) {
	case *shapes.Point:
	case *shapes.Line:
		r.Length = num(v.Length)
	case *shapes.Rectangle:
		r.Width, r.Height = num(v.Width), num(v.Height)
	case *shapes.Circle:
		r.Radius = num(v.Radius)
	case *shapes.Image:
		r.Width, r.Height = num(v.Width), num(v.Height)
		r.SourcePath = str(v.SourcePath)
	case *shapes.TextBox:
		r.Width, r.Height = num(v.Width), num(v.Height)
		r.Text, r.FontSize = str(v.Text), num(v.FontSize)
	case *shapes.Arrow:
		r.Length = num(v.Length)
		r.HeadLength, r.HeadAngleRad = num(v.HeadLength), num(v.HeadAngleRad)
	case *shapes.CenterlineRectangle:
		r.Length, r.Width = num(v.Length), num(v.Width)
	case *shapes.Referential:
		r.XAxisLength, r.YAxisLength = num(v.XAxisLength), num(v.YAxisLength)
	case *shapes.Dimension:
		r.Length, r.Offset, r.Text = num(v.Length), num(v.Offset), str(v.Text)
	case *shapes.AngleDimension:
		r.Radius = num(v.Radius)
		r.StartAngleRad, r.SweepAngleRad = num(v.StartAngleRad), num(v.SweepAngleRad)
		r.Text = str(v.Text)
	case *shapes.Text:
		r.Text, r.FontSize = str(v.Text), num(v.FontSize)
	case *shapes.MultilineText:
		r.Text, r.FontSize, r.Width = str(v.Text), num(v.FontSize), num(v.Width)
	case *shapes.Icon:
		r.IconKey, r.Size = str(v.IconKey), num(v.Size)
	case *shapes.Arc:
		r.Radius = num(v.Radius)
		r.StartAngleRad, r.SweepAngleRad = num(v.StartAngleRad), num(v.SweepAngleRad)
	}
	return r
}

func num(v float64) *float64 { return &v }
func str(v string) *string   { return &v }

// ============================================================
// Document -> Shapes
// ============================================================

// FromDocument rebuilds the shapes of doc in order, with their original ids,
// and the set of computed ids among them. Records with an unknown kind are
// skipped. A version mismatch fails the whole call and returns no shapes.
func FromDocument(doc *Document) ([]shapes.Shape, map[string]struct{}, error) {
	if doc == nil {
		return nil, nil, ErrNilDocument
	}
	if doc.Version != Version {
		return nil, nil, fmt.Errorf("%w: %d (want %d)", ErrUnsupportedVersion, doc.Version, Version)
	}

	list := make([]shapes.Shape, 0, len(doc.Shapes))
	computed := make(map[string]struct{})
	for i := range doc.Shapes {
		r := &doc.Shapes[i]
		s := fromRecord(r)
		if s == nil {
			continue
		}
		list = append(list, s)
		if r.IsComputed {
			computed[r.ID] = struct{}{}
		}
	}
	return list, computed, nil
}

func fromRecord(r *Record) shapes.Shape {
	s := shapes.New(shapes.Kind(r.Kind))
	if s == nil {
		return nil
	}

	b := s.Common()
	if r.ID != "" {
		b.ID = r.ID
	}
	b.Pose = restorePose(r)
	if r.LineWeight != nil {
		b.Style.LineWeight = *r.LineWeight
	}
	if r.Filled != nil {
		b.Style.Filled = *r.Filled
	}
	if r.FillRGB != nil {
		b.Style.FillColor = colorful.Color{R: r.FillRGB[0], G: r.FillRGB[1], B: r.FillRGB[2]}
	} else if r.FillColor != nil {
		// An unreadable color keeps the default.
		if c, err := shapes.ParseColor(*r.FillColor); err == nil {
			b.Style.FillColor = c
		}
	}

	switch v := s.(type) {
	case *shapes.Line:
		v.Length = val(r.Length)
	case *shapes.Rectangle:
		v.Width, v.Height = val(r.Width), val(r.Height)
	case *shapes.Circle:
		v.Radius = val(r.Radius)
	case *shapes.Image:
		v.Width, v.Height = val(r.Width), val(r.Height)
		v.SourcePath = text(r.SourcePath)
	case *shapes.TextBox:
		v.Width, v.Height = val(r.Width), val(r.Height)
		v.Text, v.FontSize = text(r.Text), val(r.FontSize)
	case *shapes.Arrow:
		v.Length = val(r.Length)
		v.HeadLength, v.HeadAngleRad = val(r.HeadLength), val(r.HeadAngleRad)
	case *shapes.CenterlineRectangle:
		v.Length, v.Width = val(r.Length), val(r.Width)
	case *shapes.Referential:
		v.XAxisLength, v.YAxisLength = val(r.XAxisLength), val(r.YAxisLength)
	case *shapes.Dimension:
		v.Length, v.Offset, v.Text = val(r.Length), val(r.Offset), text(r.Text)
	case *shapes.AngleDimension:
		v.Radius = val(r.Radius)
		v.StartAngleRad, v.SweepAngleRad = val(r.StartAngleRad), val(r.SweepAngleRad)
		v.Text = text(r.Text)
	case *shapes.Text:
		v.Text, v.FontSize = text(r.Text), val(r.FontSize)
	case *shapes.MultilineText:
		v.Text, v.FontSize, v.Width = text(r.Text), val(r.FontSize), val(r.Width)
	case *shapes.Icon:
		v.IconKey, v.Size = text(r.IconKey), val(r.Size)
	case *shapes.Arc:
		v.Radius = val(r.Radius)
		v.StartAngleRad, v.SweepAngleRad = val(r.StartAngleRad), val(r.SweepAngleRad)
	}
	return s
}

// restorePose keeps the stored orientation as is unless it is degenerate.
func restorePose(r *Record) geom.Pose {
	o := geom.Vec(r.OrientationX, r.OrientationY)
	if o.IsDegenerate() {
		o = geom.UnitX
	}
	return geom.Pose{Position: geom.Vec(r.X, r.Y), Orientation: o}
}

func val(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func text(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
