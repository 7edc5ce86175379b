package handles

import (
	"sketchpad/internal/geom"
	"sketchpad/internal/shapes"
)

// Session is the caller-owned state of one drag gesture: which shape is
// being edited, which handle is active and where the pointer was on the
// previous frame. It is interaction state and lives outside the shape.
type Session struct {
	ShapeID string
	Handle  Kind
	Last    geom.Vector
}

// Begin starts a drag of handle on s at point.
func (s *Session) Begin(shape shapes.Shape, handle Kind, point geom.Vector) {
	s.ShapeID = shapes.ID(shape)
	s.Handle = handle
	s.Last = point
}

// Active reports whether a drag is in progress.
func (s *Session) Active() bool { return s.Handle != None }

// Drag applies one pointer-move frame. Frames must arrive in the order the
// pointer events were observed. It reports whether the shape changed.
func (s *Session) Drag(shape shapes.Shape, point geom.Vector, minSize float64) bool {
	if !s.Active() || shapes.ID(shape) != s.ShapeID {
		return false
	}
	changed := ApplyDrag(shape, s.Handle, point, s.Last, minSize)
	s.Last = point
	return changed
}

// End finishes the gesture.
func (s *Session) End() { *s = Session{} }
