package shapes

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultLineWeight is the stroke thickness of a freshly created shape.
const DefaultLineWeight = 2.0

// Style holds the attributes every shape carries regardless of kind.
type Style struct {
	LineWeight float64
	Filled     bool
	FillColor  colorful.Color
}

func DefaultStyle() Style {
	return Style{LineWeight: DefaultLineWeight}
}

// FillHex returns the fill color as "#rrggbb".
func (s Style) FillHex() string {
	return s.FillColor.Clamped().Hex()
}

// ParseColor parses "#rrggbb" or "#rgb".
func ParseColor(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	return c, nil
}
