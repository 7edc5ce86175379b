package handles

import (
	"math"
	"testing"

	"sketchpad/internal/geom"
	"sketchpad/internal/shapes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minSize = 0.5

func kinds(hs []Handle) []Kind {
	out := make([]Kind, len(hs))
	for i, h := range hs {
		out[i] = h.Kind
	}
	return out
}

func TestHandles_Sets(t *testing.T) {
	origin := geom.AxisAligned(geom.Vec(0, 0))

	tests := []struct {
		name  string
		shape shapes.Shape
		want  []Kind
	}{
		{"point", shapes.NewPoint(geom.Vec(1, 1)), []Kind{Move}},
		{"line", shapes.NewLine(origin, 10), []Kind{Start, End, Move}},
		{"rectangle", shapes.NewRectangle(origin, 10, 10), []Kind{Corner0, Corner1, Corner2, Corner3, Move}},
		{"circle", shapes.NewCircle(geom.Vec(0, 0), 5), []Kind{Move, Radius}},
		{"centerline", shapes.NewCenterlineRectangle(origin, 10, 4), []Kind{Start, End, Width, Move}},
		{"referential", shapes.NewReferential(origin, 5, 5), []Kind{Move, XAxis, YAxis}},
		{"dimension", shapes.NewDimension(origin, 10, 3, ""), []Kind{Start, End, Offset, Move}},
		{"angle", shapes.NewAngleDimension(origin, 10, 0, 1, ""), []Kind{Move, StartAngle, EndAngle, Radius}},
		{"text", shapes.NewText(geom.Vec(0, 0), "x", 10), []Kind{Move}},
		{"icon", shapes.NewIcon(geom.Vec(0, 0), "pin", 10), []Kind{Move, Size}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kinds(Handles(tt.shape)))
		})
	}
}

func TestHandles_TrackCurrentState(t *testing.T) {
	l := shapes.NewLine(geom.AxisAligned(geom.Vec(0, 0)), 10)
	assert.Equal(t, End, HitTest(l, geom.Vec(10, 0), 1))

	l.Length = 20
	assert.Equal(t, Move, HitTest(l, geom.Vec(10, 0), 1), "midpoint moved with the new length")
	assert.Equal(t, End, HitTest(l, geom.Vec(20, 0.5), 1))
	assert.Equal(t, None, HitTest(l, geom.Vec(50, 50), 1))
}

func TestHitTest_FirstHandleWins(t *testing.T) {
	// Offset handle and Move handle coincide when the offset is zero.
	d := shapes.NewDimension(geom.AxisAligned(geom.Vec(0, 0)), 10, 0, "")
	assert.Equal(t, Offset, HitTest(d, geom.Vec(5, 0), 1))
}

func TestApplyDrag_MoveIsDelta(t *testing.T) {
	r := shapes.NewRectangle(geom.AxisAligned(geom.Vec(5, 5)), 4, 4)

	assert.True(t, ApplyDrag(r, Move, geom.Vec(12, 3), geom.Vec(10, 2), minSize))
	assert.Equal(t, geom.Vec(7, 6), r.Pose.Position)

	assert.True(t, ApplyDrag(r, Move, geom.Vec(13, 3), geom.Vec(12, 3), minSize))
	assert.Equal(t, geom.Vec(8, 6), r.Pose.Position)
	assert.Equal(t, 4.0, r.Width)
}

func TestApplyDrag_LineEndDegeneracyGuard(t *testing.T) {
	l := shapes.NewLine(geom.NewPose(geom.Vec(2, 2), geom.Vec(1, 1)), 10)
	before := *l

	assert.False(t, ApplyDrag(l, End, geom.Vec(2, 2), geom.Vec(9, 9), minSize))
	assert.Equal(t, before, *l)

	assert.False(t, ApplyDrag(l, End, geom.Vec(2.3, 2.3), geom.Vec(9, 9), minSize))
	assert.Equal(t, before, *l)
}

func TestApplyDrag_LineEndpoints(t *testing.T) {
	l := shapes.NewLine(geom.AxisAligned(geom.Vec(0, 0)), 10)

	require.True(t, ApplyDrag(l, End, geom.Vec(0, 5), geom.Vec(10, 0), minSize))
	assert.True(t, l.Start().Approx(geom.Vec(0, 0), 1e-12))
	assert.True(t, l.End().Approx(geom.Vec(0, 5), 1e-12))
	assert.InDelta(t, 5, l.Length, 1e-12)

	require.True(t, ApplyDrag(l, Start, geom.Vec(0, -5), geom.Vec(0, 0), minSize))
	assert.True(t, l.Start().Approx(geom.Vec(0, -5), 1e-12))
	assert.True(t, l.End().Approx(geom.Vec(0, 5), 1e-12), "end stays fixed")
	assert.InDelta(t, 10, l.Length, 1e-12)
}

func TestApplyDrag_RectangleCorner(t *testing.T) {
	r := shapes.NewRectangle(geom.AxisAligned(geom.Vec(5, 5)), 10, 10)

	// Corner2 is (+,+); its opposite (0,0) stays fixed.
	require.True(t, ApplyDrag(r, Corner2, geom.Vec(20, 6), geom.Vec(10, 10), minSize))
	assert.Equal(t, geom.Vec(10, 3), r.Pose.Position)
	assert.InDelta(t, 20, r.Width, 1e-12)
	assert.InDelta(t, 6, r.Height, 1e-12)
	assert.True(t, r.Corners()[0].Approx(geom.Vec(0, 0), 1e-12))

	before := *r
	assert.False(t, ApplyDrag(r, Corner2, geom.Vec(20, 0.2), geom.Vec(20, 6), minSize))
	assert.Equal(t, before, *r)
	assert.False(t, ApplyDrag(r, Corner2, geom.Vec(-5, -5), geom.Vec(20, 6), minSize), "crossing the fixed corner is rejected")
	assert.Equal(t, before, *r)
}

func TestApplyDrag_RotatedTextBoxCorner(t *testing.T) {
	tb := shapes.NewTextBox(geom.NewPose(geom.Vec(0, 0), geom.Vec(0, 1)), 4, 2, "x", 10)
	fixed := tb.Corners()[2]

	require.True(t, ApplyDrag(tb, Corner0, tb.Pose.World(-4, -3), geom.Vector{}, minSize))
	assert.InDelta(t, 6, tb.Width, 1e-12)
	assert.InDelta(t, 4, tb.Height, 1e-12)
	assert.True(t, tb.Corners()[2].Approx(fixed, 1e-12))
	assert.True(t, tb.Pose.Orientation.Approx(geom.Vec(0, 1), 1e-12))
}

func TestApplyDrag_CircleRadius(t *testing.T) {
	c := shapes.NewCircle(geom.Vec(0, 0), 5)

	assert.True(t, ApplyDrag(c, Radius, geom.Vec(3, 4), geom.Vector{}, minSize))
	assert.InDelta(t, 5, c.Radius, 1e-12)
	assert.True(t, ApplyDrag(c, Radius, geom.Vec(0.1, 0), geom.Vector{}, minSize))
	assert.Equal(t, minSize, c.Radius)
	assert.False(t, ApplyDrag(c, Corner0, geom.Vec(9, 9), geom.Vector{}, minSize))
}

func TestApplyDrag_CenterlineWidth(t *testing.T) {
	s := shapes.NewCenterlineRectangle(geom.AxisAligned(geom.Vec(0, 0)), 10, 4)

	require.True(t, ApplyDrag(s, Width, geom.Vec(3, -6), geom.Vector{}, minSize))
	assert.InDelta(t, 12, s.Width, 1e-12)
	require.True(t, ApplyDrag(s, Width, geom.Vec(3, 0), geom.Vector{}, minSize))
	assert.Equal(t, minSize, s.Width)
}

func TestApplyDrag_ReferentialAxes(t *testing.T) {
	r := shapes.NewReferential(geom.AxisAligned(geom.Vec(1, 1)), 5, 5)

	require.True(t, ApplyDrag(r, XAxis, geom.Vec(-7, 3), geom.Vector{}, minSize))
	assert.InDelta(t, 8, r.XAxisLength, 1e-12)
	require.True(t, ApplyDrag(r, YAxis, geom.Vec(100, 1), geom.Vector{}, minSize))
	assert.Equal(t, minSize, r.YAxisLength)
}

func TestApplyDrag_DimensionOffsetSigned(t *testing.T) {
	d := shapes.NewDimension(geom.AxisAligned(geom.Vec(0, 0)), 10, 3, "")

	require.True(t, ApplyDrag(d, Offset, geom.Vec(4, -2), geom.Vector{}, minSize))
	assert.InDelta(t, -2, d.Offset, 1e-12)
	require.True(t, ApplyDrag(d, Offset, geom.Vec(4, 0), geom.Vector{}, minSize))
	assert.InDelta(t, 0, d.Offset, 1e-12)
}

func TestApplyDrag_AngleSweepFloor(t *testing.T) {
	t.Run("end handle positive", func(t *testing.T) {
		a := shapes.NewAngleDimension(geom.AxisAligned(geom.Vec(0, 0)), 10, 0, math.Pi/2, "")
		require.True(t, ApplyDrag(a, EndAngle, a.Pose.AtAngle(10, 0.01), geom.Vector{}, minSize))
		assert.Equal(t, 0.05, a.SweepAngleRad)
		assert.Equal(t, 0.0, a.StartAngleRad)
	})

	t.Run("end handle negative", func(t *testing.T) {
		a := shapes.NewAngleDimension(geom.AxisAligned(geom.Vec(0, 0)), 10, 0, -math.Pi/2, "")
		require.True(t, ApplyDrag(a, EndAngle, a.Pose.AtAngle(10, -0.01), geom.Vector{}, minSize))
		assert.Equal(t, -0.05, a.SweepAngleRad)
	})

	t.Run("start handle keeps end", func(t *testing.T) {
		a := shapes.NewAngleDimension(geom.AxisAligned(geom.Vec(0, 0)), 10, 0, math.Pi/2, "")
		require.True(t, ApplyDrag(a, StartAngle, a.Pose.AtAngle(10, math.Pi/4), geom.Vector{}, minSize))
		assert.InDelta(t, math.Pi/4, a.StartAngleRad, 1e-12)
		assert.InDelta(t, math.Pi/4, a.SweepAngleRad, 1e-12)

		require.True(t, ApplyDrag(a, StartAngle, a.Pose.AtAngle(10, math.Pi/2-0.01), geom.Vector{}, minSize))
		assert.Equal(t, 0.05, a.SweepAngleRad)
	})

	t.Run("end handle crossing start flips sign", func(t *testing.T) {
		a := shapes.NewAngleDimension(geom.AxisAligned(geom.Vec(0, 0)), 10, 0, math.Pi/2, "")
		require.True(t, ApplyDrag(a, EndAngle, a.Pose.AtAngle(10, -0.01), geom.Vector{}, minSize))
		assert.Equal(t, -0.05, a.SweepAngleRad)
		assert.Equal(t, 0.0, a.StartAngleRad)
	})

	t.Run("start handle crossing end flips sign", func(t *testing.T) {
		a := shapes.NewAngleDimension(geom.AxisAligned(geom.Vec(0, 0)), 10, 0, math.Pi/2, "")
		require.True(t, ApplyDrag(a, StartAngle, a.Pose.AtAngle(10, math.Pi/2+0.01), geom.Vector{}, minSize))
		assert.Equal(t, -0.05, a.SweepAngleRad)
		assert.InDelta(t, math.Pi/2+0.01, a.StartAngleRad, 1e-12)
	})

	t.Run("arc end handle takes signed difference", func(t *testing.T) {
		a := shapes.NewArc(geom.AxisAligned(geom.Vec(0, 0)), 10, 0, math.Pi/2)
		require.True(t, ApplyDrag(a, EndAngle, a.Pose.AtAngle(10, -math.Pi/2), geom.Vector{}, minSize))
		assert.InDelta(t, -math.Pi/2, a.SweepAngleRad, 1e-12)
	})

	t.Run("radius", func(t *testing.T) {
		a := shapes.NewAngleDimension(geom.AxisAligned(geom.Vec(0, 0)), 10, 0, 1, "")
		require.True(t, ApplyDrag(a, Radius, geom.Vec(0, 0.1), geom.Vector{}, minSize))
		assert.Equal(t, minSize, a.Radius)
	})
}

func TestApplyDrag_TextAndIcon(t *testing.T) {
	m := shapes.NewMultilineText(geom.AxisAligned(geom.Vec(0, 0)), "a b", 10, 50)
	require.True(t, ApplyDrag(m, Width, geom.Vec(-40, 7), geom.Vector{}, minSize))
	assert.InDelta(t, 80, m.Width, 1e-12)

	ic := shapes.NewIcon(geom.Vec(0, 0), "pin", 10)
	require.True(t, ApplyDrag(ic, Size, geom.Vec(3, -9), geom.Vector{}, minSize))
	assert.InDelta(t, 18, ic.Size, 1e-12)

	txt := shapes.NewText(geom.Vec(0, 0), "x", 10)
	assert.False(t, ApplyDrag(txt, Width, geom.Vec(3, 3), geom.Vector{}, minSize))
}

func TestSession_OrderedFrames(t *testing.T) {
	c := shapes.NewCircle(geom.Vec(0, 0), 5)

	var s Session
	assert.False(t, s.Active())
	assert.False(t, s.Drag(c, geom.Vec(1, 1), minSize))

	s.Begin(c, Move, geom.Vec(0, 0))
	require.True(t, s.Active())
	assert.True(t, s.Drag(c, geom.Vec(1, 0), minSize))
	assert.True(t, s.Drag(c, geom.Vec(3, 2), minSize))
	assert.Equal(t, geom.Vec(3, 2), c.Center())

	other := shapes.NewCircle(geom.Vec(0, 0), 5)
	assert.False(t, s.Drag(other, geom.Vec(9, 9), minSize))

	s.End()
	assert.False(t, s.Active())
	assert.Empty(t, s.ShapeID)
}
