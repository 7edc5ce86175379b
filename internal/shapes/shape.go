// Package shapes holds the editable shape model: a closed set of variants,
// each a pose plus kind-specific fields. Corner points, endpoints and arc
// samples are derived on demand and never stored.
package shapes

import (
	"sketchpad/internal/geom"

	"github.com/google/uuid"
)

// Kind tags a shape variant. The string value is the wire discriminator used
// by scene documents.
type Kind string

const (
	KindPoint               Kind = "point"
	KindLine                Kind = "line"
	KindRectangle           Kind = "rectangle"
	KindCircle              Kind = "circle"
	KindImage               Kind = "image"
	KindTextBox             Kind = "textBox"
	KindArrow               Kind = "arrow"
	KindCenterlineRectangle Kind = "centerlineRectangle"
	KindReferential         Kind = "referential"
	KindDimension           Kind = "dimension"
	KindAngleDimension      Kind = "angleDimension"
	KindText                Kind = "text"
	KindMultilineText       Kind = "multilineText"
	KindIcon                Kind = "icon"
	KindArc                 Kind = "arc"
)

// Kinds lists every variant in declaration order.
var Kinds = []Kind{
	KindPoint, KindLine, KindRectangle, KindCircle, KindImage, KindTextBox,
	KindArrow, KindCenterlineRectangle, KindReferential, KindDimension,
	KindAngleDimension, KindText, KindMultilineText, KindIcon, KindArc,
}

// Shape is implemented by every variant in this package.
type Shape interface {
	Kind() Kind
	Common() *Base
}

// Base carries the fields every variant shares. ID is assigned once at
// creation and must not change afterwards.
type Base struct {
	ID    string
	Pose  geom.Pose
	Style Style
}

// Common returns the shared fields for in-place mutation.
func (b *Base) Common() *Base { return b }

func newBase(pose geom.Pose) Base {
	return Base{
		ID:    NewID(),
		Pose:  pose,
		Style: DefaultStyle(),
	}
}

// NewID returns a fresh shape identifier.
func NewID() string { return uuid.NewString() }

// ID returns the identifier of s.
func ID(s Shape) string { return s.Common().ID }

// PoseOf returns the pose of s.
func PoseOf(s Shape) geom.Pose { return s.Common().Pose }

// Translate moves s by delta in place.
func Translate(s Shape, delta geom.Vector) {
	b := s.Common()
	b.Pose = b.Pose.Translate(delta)
}

// ============================================================
// Variants
// ============================================================

type Point struct{ Base }

type Line struct {
	Base
	Length float64
}

type Rectangle struct {
	Base
	Width  float64
	Height float64
}

type Circle struct {
	Base
	Radius float64
}

type Image struct {
	Base
	Width      float64
	Height     float64
	SourcePath string
}

type TextBox struct {
	Base
	Width    float64
	Height   float64
	Text     string
	FontSize float64
}

type Arrow struct {
	Base
	Length       float64
	HeadLength   float64
	HeadAngleRad float64
}

// CenterlineRectangle is a rectangle defined by its centerline: Length runs
// along the orientation and Width across it.
type CenterlineRectangle struct {
	Base
	Length float64
	Width  float64
}

// Referential is a pair of coordinate axes rooted at the pose position.
type Referential struct {
	Base
	XAxisLength float64
	YAxisLength float64
}

// Dimension is a linear dimension annotation. Offset is the signed distance
// of the dimension line from the measured segment.
type Dimension struct {
	Base
	Length float64
	Offset float64
	Text   string
}

// AngleDimension annotates an angle with an arc of Radius. Angles are local,
// measured from the pose orientation; SweepAngleRad may be negative.
type AngleDimension struct {
	Base
	Radius        float64
	StartAngleRad float64
	SweepAngleRad float64
	Text          string
}

type Text struct {
	Base
	Text     string
	FontSize float64
}

type MultilineText struct {
	Base
	Text     string
	FontSize float64
	Width    float64
}

type Icon struct {
	Base
	IconKey string
	Size    float64
}

type Arc struct {
	Base
	Radius        float64
	StartAngleRad float64
	SweepAngleRad float64
}

func (*Point) Kind() Kind               { return KindPoint }
func (*Line) Kind() Kind                { return KindLine }
func (*Rectangle) Kind() Kind           { return KindRectangle }
func (*Circle) Kind() Kind              { return KindCircle }
func (*Image) Kind() Kind               { return KindImage }
func (*TextBox) Kind() Kind             { return KindTextBox }
func (*Arrow) Kind() Kind               { return KindArrow }
func (*CenterlineRectangle) Kind() Kind { return KindCenterlineRectangle }
func (*Referential) Kind() Kind         { return KindReferential }
func (*Dimension) Kind() Kind           { return KindDimension }
func (*AngleDimension) Kind() Kind      { return KindAngleDimension }
func (*Text) Kind() Kind                { return KindText }
func (*MultilineText) Kind() Kind       { return KindMultilineText }
func (*Icon) Kind() Kind                { return KindIcon }
func (*Arc) Kind() Kind                 { return KindArc }

// ============================================================
// Constructors
// ============================================================

func NewPoint(position geom.Vector) *Point {
	return &Point{Base: newBase(geom.AxisAligned(position))}
}

func NewLine(pose geom.Pose, length float64) *Line {
	return &Line{Base: newBase(pose), Length: length}
}

func NewRectangle(pose geom.Pose, width, height float64) *Rectangle {
	return &Rectangle{Base: newBase(pose), Width: width, Height: height}
}

func NewCircle(center geom.Vector, radius float64) *Circle {
	return &Circle{Base: newBase(geom.AxisAligned(center)), Radius: radius}
}

func NewImage(pose geom.Pose, width, height float64, sourcePath string) *Image {
	return &Image{Base: newBase(pose), Width: width, Height: height, SourcePath: sourcePath}
}

func NewTextBox(pose geom.Pose, width, height float64, text string, fontSize float64) *TextBox {
	return &TextBox{Base: newBase(pose), Width: width, Height: height, Text: text, FontSize: fontSize}
}

func NewArrow(pose geom.Pose, length, headLength, headAngleRad float64) *Arrow {
	return &Arrow{Base: newBase(pose), Length: length, HeadLength: headLength, HeadAngleRad: headAngleRad}
}

func NewCenterlineRectangle(pose geom.Pose, length, width float64) *CenterlineRectangle {
	return &CenterlineRectangle{Base: newBase(pose), Length: length, Width: width}
}

func NewReferential(pose geom.Pose, xAxisLength, yAxisLength float64) *Referential {
	return &Referential{Base: newBase(pose), XAxisLength: xAxisLength, YAxisLength: yAxisLength}
}

func NewDimension(pose geom.Pose, length, offset float64, text string) *Dimension {
	return &Dimension{Base: newBase(pose), Length: length, Offset: offset, Text: text}
}

func NewAngleDimension(pose geom.Pose, radius, startAngleRad, sweepAngleRad float64, text string) *AngleDimension {
	return &AngleDimension{
		Base:          newBase(pose),
		Radius:        radius,
		StartAngleRad: startAngleRad,
		SweepAngleRad: sweepAngleRad,
		Text:          text,
	}
}

func NewText(position geom.Vector, text string, fontSize float64) *Text {
	return &Text{Base: newBase(geom.AxisAligned(position)), Text: text, FontSize: fontSize}
}

func NewMultilineText(pose geom.Pose, text string, fontSize, width float64) *MultilineText {
	return &MultilineText{Base: newBase(pose), Text: text, FontSize: fontSize, Width: width}
}

func NewIcon(position geom.Vector, iconKey string, size float64) *Icon {
	return &Icon{Base: newBase(geom.AxisAligned(position)), IconKey: iconKey, Size: size}
}

func NewArc(pose geom.Pose, radius, startAngleRad, sweepAngleRad float64) *Arc {
	return &Arc{Base: newBase(pose), Radius: radius, StartAngleRad: startAngleRad, SweepAngleRad: sweepAngleRad}
}

// New returns a zero-valued shape of kind k with a fresh id and default
// style, or nil for an unknown kind.
func New(k Kind) Shape {
	b := newBase(geom.AxisAligned(geom.Vector{}))
	switch k {
	case KindPoint:
		return &Point{Base: b}
	case KindLine:
		return &Line{Base: b}
	case KindRectangle:
		return &Rectangle{Base: b}
	case KindCircle:
		return &Circle{Base: b}
	case KindImage:
		return &Image{Base: b}
	case KindTextBox:
		return &TextBox{Base: b}
	case KindArrow:
		return &Arrow{Base: b}
	case KindCenterlineRectangle:
		return &CenterlineRectangle{Base: b}
	case KindReferential:
		return &Referential{Base: b}
	case KindDimension:
		return &Dimension{Base: b}
	case KindAngleDimension:
		return &AngleDimension{Base: b}
	case KindText:
		return &Text{Base: b}
	case KindMultilineText:
		return &MultilineText{Base: b}
	case KindIcon:
		return &Icon{Base: b}
	case KindArc:
		return &Arc{Base: b}
	}
	return nil
}
