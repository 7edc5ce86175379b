// Package editor drives a scene from pointer events: drawing tools build new
// shapes from press/release gestures, the select tool picks shapes and drags
// their handles.
package editor

import (
	"errors"

	"sketchpad/internal/builder"
	"sketchpad/internal/geom"
	"sketchpad/internal/handles"
	"sketchpad/internal/scene"
	"sketchpad/internal/shapes"
)

// ToolSelect picks and edits existing shapes instead of drawing.
const ToolSelect builder.Tool = "select"

var ErrNothingSelected = errors.New("nothing selected")

// Options are the interaction thresholds in world units.
type Options struct {
	MinSize      float64
	HitTolerance float64
	PointRadius  float64
}

func DefaultOptions() Options {
	return Options{MinSize: 0.5, HitTolerance: 4, PointRadius: 3}
}

// Editor is the single-threaded interaction state for one scene. Events must
// be fed in the order they were observed.
type Editor struct {
	scene   *scene.Collection
	builder *builder.Builder
	opts    Options
	tool    builder.Tool

	// Drawing gesture, captured on press.
	drawing    bool
	drawOrigin geom.Vector

	selected string
	drag     handles.Session
}

func New(c *scene.Collection, b *builder.Builder, opts Options) *Editor {
	return &Editor{
		scene:   c,
		builder: b,
		opts:    opts,
		tool:    ToolSelect,
	}
}

func (e *Editor) Scene() *scene.Collection { return e.scene }

func (e *Editor) Tool() builder.Tool { return e.tool }

// SetTool switches tools and abandons any gesture in progress.
func (e *Editor) SetTool(t builder.Tool) {
	e.tool = t
	e.drawing = false
	e.drag.End()
}

// Press starts a gesture at point.
func (e *Editor) Press(point geom.Vector) {
	if e.tool != ToolSelect {
		e.drawing = true
		e.drawOrigin = point
		return
	}

	// Handles of the current selection take priority over picking.
	if s, ok := e.Selected(); ok && !e.scene.IsComputed(e.selected) {
		if h := handles.HitTest(s, point, e.opts.HitTolerance); h != handles.None {
			e.drag.Begin(s, h, point)
			return
		}
	}

	s := e.scene.Topmost(point, e.opts.HitTolerance, e.opts.PointRadius)
	if s == nil {
		e.selected = ""
		e.drag.End()
		return
	}
	e.selected = shapes.ID(s)
	if !e.scene.IsComputed(e.selected) {
		e.drag.Begin(s, handles.Move, point)
	}
}

// Move feeds one pointer-move frame. It reports whether a shape changed.
func (e *Editor) Move(point geom.Vector) bool {
	if !e.drag.Active() {
		return false
	}
	s, ok := e.scene.Get(e.drag.ShapeID)
	if !ok || e.scene.IsComputed(e.drag.ShapeID) {
		e.drag.End()
		return false
	}
	return e.drag.Drag(s, point, e.opts.MinSize)
}

// Release ends the gesture at point. With a drawing tool it returns the new
// shape, which is already added to the scene and selected. A gesture below
// the minimum size produces nothing.
func (e *Editor) Release(point geom.Vector) (shapes.Shape, bool) {
	if e.tool == ToolSelect {
		e.Move(point)
		e.drag.End()
		return nil, false
	}
	if !e.drawing {
		return nil, false
	}
	e.drawing = false

	s, ok := e.builder.Build(e.tool, e.drawOrigin, point, e.opts.MinSize)
	if !ok {
		return nil, false
	}
	if err := e.scene.Add(s); err != nil {
		return nil, false
	}
	e.selected = shapes.ID(s)
	return s, true
}

// Selected returns the selected shape, if it is still in the scene.
func (e *Editor) Selected() (shapes.Shape, bool) {
	if e.selected == "" {
		return nil, false
	}
	return e.scene.Get(e.selected)
}

// ClearSelection drops the selection.
func (e *Editor) ClearSelection() {
	e.selected = ""
	e.drag.End()
}

// DeleteSelected removes the selected shape. Computed shapes are refused
// with scene.ErrComputedShape and stay selected.
func (e *Editor) DeleteSelected() error {
	if e.selected == "" {
		return ErrNothingSelected
	}
	if err := e.scene.Delete(e.selected); err != nil {
		return err
	}
	e.ClearSelection()
	return nil
}
