package shapes

import (
	"math"
	"strings"
	"unicode/utf8"

	"sketchpad/internal/geom"
)

// Text metrics used to estimate label extents without a font engine.
const (
	charWidthFactor  = 0.6
	lineHeightFactor = 1.2
)

// boxCorners returns the corners of a w×h box centered on the pose, in the
// order (-,-), (+,-), (+,+), (-,+) of the local axes.
func boxCorners(p geom.Pose, w, h float64) [4]geom.Vector {
	hw, hh := w/2, h/2
	return [4]geom.Vector{
		p.World(-hw, -hh),
		p.World(hw, -hh),
		p.World(hw, hh),
		p.World(-hw, hh),
	}
}

// BoxCornerSigns returns the local axis signs of corner i as produced by the
// Corners methods.
func BoxCornerSigns(i int) (sx, sy float64) {
	switch i {
	case 0:
		return -1, -1
	case 1:
		return 1, -1
	case 2:
		return 1, 1
	default:
		return -1, 1
	}
}

func (s *Point) Position() geom.Vector { return s.Pose.Position }

func (s *Line) Start() geom.Vector    { return s.Pose.Position }
func (s *Line) End() geom.Vector      { return s.Pose.World(s.Length, 0) }
func (s *Line) Midpoint() geom.Vector { return s.Pose.World(s.Length/2, 0) }

func (s *Rectangle) Corners() [4]geom.Vector { return boxCorners(s.Pose, s.Width, s.Height) }
func (s *Image) Corners() [4]geom.Vector     { return boxCorners(s.Pose, s.Width, s.Height) }
func (s *TextBox) Corners() [4]geom.Vector   { return boxCorners(s.Pose, s.Width, s.Height) }

func (s *Circle) Center() geom.Vector { return s.Pose.Position }

func (s *Arrow) Start() geom.Vector    { return s.Pose.Position }
func (s *Arrow) End() geom.Vector      { return s.Pose.World(s.Length, 0) }
func (s *Arrow) Midpoint() geom.Vector { return s.Pose.World(s.Length/2, 0) }

// Wings returns the two arrow-head points: the reversed direction rotated by
// ±HeadAngleRad and scaled by HeadLength, anchored at the tip.
func (s *Arrow) Wings() (left, right geom.Vector) {
	back := s.Pose.Orientation.Neg()
	end := s.End()
	left = end.Add(back.Rotate(s.HeadAngleRad).Scale(s.HeadLength))
	right = end.Add(back.Rotate(-s.HeadAngleRad).Scale(s.HeadLength))
	return left, right
}

func (s *CenterlineRectangle) Start() geom.Vector  { return s.Pose.Position }
func (s *CenterlineRectangle) End() geom.Vector    { return s.Pose.World(s.Length, 0) }
func (s *CenterlineRectangle) Center() geom.Vector { return s.Pose.World(s.Length/2, 0) }

// Corners returns the outline in the order start-left, end-left, end-right,
// start-right.
func (s *CenterlineRectangle) Corners() [4]geom.Vector {
	hw := s.Width / 2
	return [4]geom.Vector{
		s.Pose.World(0, -hw),
		s.Pose.World(s.Length, -hw),
		s.Pose.World(s.Length, hw),
		s.Pose.World(0, hw),
	}
}

func (s *Referential) Origin() geom.Vector { return s.Pose.Position }
func (s *Referential) XEnd() geom.Vector   { return s.Pose.World(s.XAxisLength, 0) }
func (s *Referential) YEnd() geom.Vector   { return s.Pose.World(0, s.YAxisLength) }

func (s *Dimension) Start() geom.Vector       { return s.Pose.Position }
func (s *Dimension) End() geom.Vector         { return s.Pose.World(s.Length, 0) }
func (s *Dimension) OffsetStart() geom.Vector { return s.Pose.World(0, s.Offset) }
func (s *Dimension) OffsetEnd() geom.Vector   { return s.Pose.World(s.Length, s.Offset) }
func (s *Dimension) Midpoint() geom.Vector    { return s.Pose.World(s.Length/2, 0) }

// LabelPoint is the midpoint of the offset line, where the text is placed.
func (s *Dimension) LabelPoint() geom.Vector { return s.Pose.World(s.Length/2, s.Offset) }

// ============================================================
// Arcs
// ============================================================

// MinSweepRad is the smallest sweep an angle annotation may keep; smaller
// arcs are not renderable.
const MinSweepRad = 0.05

// ArcGeometry is the shared derivation of AngleDimension and Arc.
type ArcGeometry struct {
	Pose          geom.Pose
	Radius        float64
	StartAngleRad float64
	SweepAngleRad float64
}

func (a ArcGeometry) Center() geom.Vector { return a.Pose.Position }
func (a ArcGeometry) EndAngle() float64   { return a.StartAngleRad + a.SweepAngleRad }

func (a ArcGeometry) StartPoint() geom.Vector {
	return a.Pose.AtAngle(a.Radius, a.StartAngleRad)
}

func (a ArcGeometry) EndPoint() geom.Vector {
	return a.Pose.AtAngle(a.Radius, a.EndAngle())
}

func (a ArcGeometry) MidPoint() geom.Vector {
	return a.Pose.AtAngle(a.Radius, a.StartAngleRad+a.SweepAngleRad/2)
}

// Samples returns n+1 points evenly spaced along the arc, start to end.
func (a ArcGeometry) Samples(n int) []geom.Vector {
	if n < 1 {
		n = 1
	}
	out := make([]geom.Vector, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		out[i] = a.Pose.AtAngle(a.Radius, a.StartAngleRad+a.SweepAngleRad*t)
	}
	return out
}

// ContainsAngle reports whether the local angle lies on the arc. Both sweep
// directions are handled and the test wraps modulo 2π.
func (a ArcGeometry) ContainsAngle(angle float64) bool {
	sweep := a.SweepAngleRad
	if math.Abs(sweep) >= 2*math.Pi {
		return true
	}
	if sweep >= 0 {
		return geom.PositiveAngle(angle-a.StartAngleRad) <= sweep
	}
	return geom.PositiveAngle(a.StartAngleRad-angle) <= -sweep
}

func (s *AngleDimension) Arc() ArcGeometry {
	return ArcGeometry{Pose: s.Pose, Radius: s.Radius, StartAngleRad: s.StartAngleRad, SweepAngleRad: s.SweepAngleRad}
}

func (s *Arc) Arc() ArcGeometry {
	return ArcGeometry{Pose: s.Pose, Radius: s.Radius, StartAngleRad: s.StartAngleRad, SweepAngleRad: s.SweepAngleRad}
}

// ============================================================
// Text and icons
// ============================================================

func textLines(text string) []string {
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}

// Size estimates the extent of the label.
func (s *Text) Size() (w, h float64) {
	lines := textLines(s.Text)
	longest := 0
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > longest {
			longest = n
		}
	}
	if longest == 0 {
		longest = 1
	}
	return float64(longest) * s.FontSize * charWidthFactor, float64(len(lines)) * s.FontSize * lineHeightFactor
}

func (s *Text) Corners() [4]geom.Vector {
	w, h := s.Size()
	return boxCorners(s.Pose, w, h)
}

// Lines splits the text on explicit newlines and wraps each paragraph to
// Width using the estimated character width.
func (s *MultilineText) Lines() []string {
	perLine := 0
	if s.FontSize > 0 {
		perLine = int(s.Width / (s.FontSize * charWidthFactor))
	}
	var out []string
	for _, para := range textLines(s.Text) {
		out = append(out, wrap(para, perLine)...)
	}
	return out
}

func (s *MultilineText) Height() float64 {
	return float64(len(s.Lines())) * s.FontSize * lineHeightFactor
}

func (s *MultilineText) Corners() [4]geom.Vector {
	return boxCorners(s.Pose, s.Width, s.Height())
}

func wrap(para string, perLine int) []string {
	words := strings.Fields(para)
	if perLine <= 0 || len(words) == 0 {
		return []string{para}
	}
	var lines []string
	current := ""
	for _, w := range words {
		switch {
		case current == "":
			current = w
		case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(w) <= perLine:
			current += " " + w
		default:
			lines = append(lines, current)
			current = w
		}
	}
	return append(lines, current)
}

func (s *Icon) Corners() [4]geom.Vector { return boxCorners(s.Pose, s.Size, s.Size) }

// ============================================================
// Bounds
// ============================================================

// KeyPoints returns world points that enclose the shape's outline. It feeds
// bounds computation; it is not a rendering outline.
func KeyPoints(s Shape) []geom.Vector {
	switch v := s.(type) {
	case *Point:
		return []geom.Vector{v.Position()}
	case *Line:
		return []geom.Vector{v.Start(), v.End()}
	case *Arrow:
		l, r := v.Wings()
		return []geom.Vector{v.Start(), v.End(), l, r}
	case *Rectangle:
		c := v.Corners()
		return c[:]
	case *Image:
		c := v.Corners()
		return c[:]
	case *TextBox:
		c := v.Corners()
		return c[:]
	case *CenterlineRectangle:
		c := v.Corners()
		return c[:]
	case *Text:
		c := v.Corners()
		return c[:]
	case *MultilineText:
		c := v.Corners()
		return c[:]
	case *Icon:
		c := v.Corners()
		return c[:]
	case *Circle:
		c, r := v.Center(), v.Radius
		return []geom.Vector{c.Add(geom.Vec(-r, -r)), c.Add(geom.Vec(r, r))}
	case *Referential:
		return []geom.Vector{v.Origin(), v.XEnd(), v.YEnd()}
	case *Dimension:
		return []geom.Vector{v.Start(), v.End(), v.OffsetStart(), v.OffsetEnd()}
	case *AngleDimension:
		return append(v.Arc().Samples(32), v.Arc().Center())
	case *Arc:
		return v.Arc().Samples(32)
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the given shapes. ok is
// false when there is nothing to bound.
func Bounds(list []Shape) (lo, hi geom.Vector, ok bool) {
	lo = geom.Vec(math.MaxFloat64, math.MaxFloat64)
	hi = geom.Vec(-math.MaxFloat64, -math.MaxFloat64)
	for _, s := range list {
		for _, p := range KeyPoints(s) {
			lo.X = math.Min(lo.X, p.X)
			lo.Y = math.Min(lo.Y, p.Y)
			hi.X = math.Max(hi.X, p.X)
			hi.Y = math.Max(hi.Y, p.Y)
			ok = true
		}
	}
	return lo, hi, ok
}
