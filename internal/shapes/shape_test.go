package shapes

import (
	"math"
	"testing"

	"sketchpad/internal/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approx(t *testing.T, want, got geom.Vector) {
	t.Helper()
	if !got.Approx(want, 1e-9) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNew_EveryKind(t *testing.T) {
	seen := make(map[string]bool)
	for _, k := range Kinds {
		s := New(k)
		require.NotNil(t, s, "kind %s", k)
		assert.Equal(t, k, s.Kind())
		assert.NotEmpty(t, ID(s))
		assert.False(t, seen[ID(s)], "duplicate id")
		seen[ID(s)] = true
		assert.Equal(t, DefaultStyle(), s.Common().Style)
	}
	assert.Nil(t, New(Kind("hexagon")))
}

func TestLine_Endpoints(t *testing.T) {
	l := NewLine(geom.NewPose(geom.Vec(1, 1), geom.Vec(0, 1)), 4)
	approx(t, geom.Vec(1, 1), l.Start())
	approx(t, geom.Vec(1, 5), l.End())
	approx(t, geom.Vec(1, 3), l.Midpoint())
}

func TestRectangle_Corners(t *testing.T) {
	r := NewRectangle(geom.AxisAligned(geom.Vec(5, 5)), 10, 4)
	c := r.Corners()
	approx(t, geom.Vec(0, 3), c[0])
	approx(t, geom.Vec(10, 3), c[1])
	approx(t, geom.Vec(10, 7), c[2])
	approx(t, geom.Vec(0, 7), c[3])

	rotated := NewRectangle(geom.NewPose(geom.Vec(0, 0), geom.Vec(0, 1)), 2, 4)
	approx(t, geom.Vec(2, -1), rotated.Corners()[0])

	for i := 0; i < 4; i++ {
		sx, sy := BoxCornerSigns(i)
		approx(t, r.Pose.World(sx*5, sy*2), c[i])
	}
}

func TestArrow_Wings(t *testing.T) {
	a := NewArrow(geom.AxisAligned(geom.Vec(0, 0)), 10, 2, math.Pi/2)
	left, right := a.Wings()
	approx(t, geom.Vec(10, -2), left)
	approx(t, geom.Vec(10, 2), right)
}

func TestCenterlineRectangle_Corners(t *testing.T) {
	s := NewCenterlineRectangle(geom.AxisAligned(geom.Vec(0, 0)), 10, 4)
	c := s.Corners()
	approx(t, geom.Vec(0, -2), c[0])
	approx(t, geom.Vec(10, -2), c[1])
	approx(t, geom.Vec(10, 2), c[2])
	approx(t, geom.Vec(0, 2), c[3])
	approx(t, geom.Vec(5, 0), s.Center())
}

func TestReferentialAndDimension(t *testing.T) {
	r := NewReferential(geom.NewPose(geom.Vec(1, 0), geom.Vec(0, 1)), 3, 2)
	approx(t, geom.Vec(1, 3), r.XEnd())
	approx(t, geom.Vec(-1, 0), r.YEnd())

	d := NewDimension(geom.AxisAligned(geom.Vec(0, 0)), 10, -3, "")
	approx(t, geom.Vec(0, -3), d.OffsetStart())
	approx(t, geom.Vec(10, -3), d.OffsetEnd())
	approx(t, geom.Vec(5, -3), d.LabelPoint())
}

func TestArcGeometry(t *testing.T) {
	a := NewAngleDimension(geom.AxisAligned(geom.Vec(0, 0)), 10, 0, math.Pi/2, "")
	g := a.Arc()
	approx(t, geom.Vec(10, 0), g.StartPoint())
	approx(t, geom.Vec(0, 10), g.EndPoint())
	approx(t, geom.Vec(10/math.Sqrt2, 10/math.Sqrt2), g.MidPoint())

	samples := g.Samples(4)
	require.Len(t, samples, 5)
	approx(t, g.StartPoint(), samples[0])
	approx(t, g.EndPoint(), samples[4])
}

func TestArcGeometry_ContainsAngle(t *testing.T) {
	tests := []struct {
		name         string
		start, sweep float64
		angle        float64
		want         bool
	}{
		{"inside positive", 0, math.Pi / 2, math.Pi / 4, true},
		{"outside positive", 0, math.Pi / 2, -math.Pi / 4, false},
		{"inside negative", 0, -math.Pi / 2, -math.Pi / 4, true},
		{"outside negative", 0, -math.Pi / 2, math.Pi / 4, false},
		{"wraps across pi", 3 * math.Pi / 4, math.Pi / 2, math.Pi, true},
		{"wraps across pi negative", -3 * math.Pi / 4, -math.Pi / 2, math.Pi, true},
		{"past end after wrap", 3 * math.Pi / 4, math.Pi / 2, -math.Pi / 2, false},
		{"full circle", 1, 2 * math.Pi, -2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := ArcGeometry{Pose: geom.AxisAligned(geom.Vector{}), Radius: 1, StartAngleRad: tt.start, SweepAngleRad: tt.sweep}
			assert.Equal(t, tt.want, g.ContainsAngle(tt.angle))
		})
	}
}

func TestMultilineText_Lines(t *testing.T) {
	// 10 runes per line at font size 10 and width 60.
	m := NewMultilineText(geom.AxisAligned(geom.Vector{}), "one two three\nfour", 10, 60)
	assert.Equal(t, []string{"one two", "three", "four"}, m.Lines())
	assert.InDelta(t, 3*12.0, m.Height(), 1e-9)

	wide := NewMultilineText(geom.AxisAligned(geom.Vector{}), "one two", 10, 600)
	assert.Equal(t, []string{"one two"}, wide.Lines())
}

func TestText_Size(t *testing.T) {
	txt := NewText(geom.Vec(0, 0), "abcd", 10)
	w, h := txt.Size()
	assert.InDelta(t, 24, w, 1e-9)
	assert.InDelta(t, 12, h, 1e-9)
}

func TestBounds(t *testing.T) {
	list := []Shape{
		NewCircle(geom.Vec(0, 0), 5),
		NewLine(geom.AxisAligned(geom.Vec(10, 10)), 10),
	}
	lo, hi, ok := Bounds(list)
	require.True(t, ok)
	approx(t, geom.Vec(-5, -5), lo)
	approx(t, geom.Vec(20, 10), hi)

	_, _, ok = Bounds(nil)
	assert.False(t, ok)
}

func TestTranslate(t *testing.T) {
	r := NewRectangle(geom.AxisAligned(geom.Vec(1, 2)), 3, 3)
	Translate(r, geom.Vec(2, -1))
	approx(t, geom.Vec(3, 1), r.Pose.Position)
}

func TestStyle_Colors(t *testing.T) {
	c, err := ParseColor("#ff8000")
	require.NoError(t, err)
	s := Style{LineWeight: 1, Filled: true, FillColor: c}
	assert.Equal(t, "#ff8000", s.FillHex())

	_, err = ParseColor("orange")
	assert.Error(t, err)
}
