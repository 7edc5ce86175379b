package scene

import (
	"errors"
	"fmt"

	"sketchpad/internal/geom"
	"sketchpad/internal/hittest"
	"sketchpad/internal/shapes"
)

var (
	ErrShapeNotFound = errors.New("shape not found")
	ErrComputedShape = errors.New("shape is computed")
	ErrDuplicateID   = errors.New("duplicate shape id")
)

// Collection owns the live shapes of one scene in insertion order, plus the
// ids of those that are computed. It is not safe for concurrent use.
type Collection struct {
	order    []shapes.Shape
	byID     map[string]shapes.Shape
	computed map[string]struct{}
}

func NewCollection() *Collection {
	return &Collection{
		byID:     make(map[string]shapes.Shape),
		computed: make(map[string]struct{}),
	}
}

// Add appends a user-drawn shape.
func (c *Collection) Add(s shapes.Shape) error {
	id := shapes.ID(s)
	if _, ok := c.byID[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	c.order = append(c.order, s)
	c.byID[id] = s
	return nil
}

// AddComputed appends a shape produced by an external pipeline and marks it
// computed.
func (c *Collection) AddComputed(s shapes.Shape) error {
	if err := c.Add(s); err != nil {
		return err
	}
	c.computed[shapes.ID(s)] = struct{}{}
	return nil
}

// Remove drops the shape with id, computed or not, and prunes it from the
// computed set. It reports whether a shape was removed.
func (c *Collection) Remove(id string) bool {
	if _, ok := c.byID[id]; !ok {
		return false
	}
	delete(c.byID, id)
	delete(c.computed, id)
	for i, s := range c.order {
		if shapes.ID(s) == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Delete is the user-facing removal: computed shapes are refused.
func (c *Collection) Delete(id string) error {
	if _, ok := c.byID[id]; !ok {
		return fmt.Errorf("%w: %s", ErrShapeNotFound, id)
	}
	if c.IsComputed(id) {
		return fmt.Errorf("%w: %s", ErrComputedShape, id)
	}
	c.Remove(id)
	return nil
}

func (c *Collection) Get(id string) (shapes.Shape, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// Shapes returns the shapes in insertion order. The slice is a copy; the
// shapes are not.
func (c *Collection) Shapes() []shapes.Shape {
	out := make([]shapes.Shape, len(c.order))
	copy(out, c.order)
	return out
}

func (c *Collection) Len() int { return len(c.order) }

func (c *Collection) IsComputed(id string) bool {
	_, ok := c.computed[id]
	return ok
}

// ComputedIDs returns a copy of the computed set.
func (c *Collection) ComputedIDs() map[string]struct{} {
	out := make(map[string]struct{}, len(c.computed))
	for id := range c.computed {
		out[id] = struct{}{}
	}
	return out
}

// Document snapshots the collection.
func (c *Collection) Document() Document {
	return ToDocument(c.order, c.computed)
}

// Load replaces the contents with doc. On error the collection is left as it
// was.
func (c *Collection) Load(doc *Document) error {
	list, computed, err := FromDocument(doc)
	if err != nil {
		return err
	}

	next := NewCollection()
	for _, s := range list {
		if err := next.Add(s); err != nil {
			return fmt.Errorf("load scene: %w", err)
		}
	}
	for id := range computed {
		next.computed[id] = struct{}{}
	}
	*c = *next
	return nil
}

// Topmost returns the last-drawn shape whose outline lies within tolerance
// of point, or nil.
func (c *Collection) Topmost(point geom.Vector, tolerance, pointRadius float64) shapes.Shape {
	return hittest.Topmost(c.order, point, tolerance, pointRadius)
}
