// Package scene is the persisted form of a shape collection and the live
// collection that owns shapes during editing.
package scene

import (
	"encoding/json"
	"fmt"
	"io"
)

// Version is the only document schema this package reads or writes.
const Version = 1

// ============================================================
// Wire structures
// ============================================================

type Document struct {
	Version int      `json:"version"`
	Shapes  []Record `json:"shapes"`
}

// Record is one flattened shape. Kind selects the variant; optional fields
// not used by that variant are left nil and omitted on the wire.
type Record struct {
	Kind         string  `json:"kind"`
	ID           string  `json:"id"`
	IsComputed   bool    `json:"isComputed"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	OrientationX float64 `json:"orientationX"`
	OrientationY float64 `json:"orientationY"`

	Length        *float64 `json:"length,omitempty"`
	Width         *float64 `json:"width,omitempty"`
	Height        *float64 `json:"height,omitempty"`
	Radius        *float64 `json:"radius,omitempty"`
	SourcePath    *string  `json:"sourcePath,omitempty"`
	Text          *string  `json:"text,omitempty"`
	FontSize      *float64 `json:"fontSize,omitempty"`
	HeadLength    *float64 `json:"headLength,omitempty"`
	HeadAngleRad  *float64 `json:"headAngleRad,omitempty"`
	XAxisLength   *float64 `json:"xAxisLength,omitempty"`
	YAxisLength   *float64 `json:"yAxisLength,omitempty"`
	Offset        *float64 `json:"offset,omitempty"`
	StartAngleRad *float64 `json:"startAngleRad,omitempty"`
	SweepAngleRad *float64 `json:"sweepAngleRad,omitempty"`
	IconKey       *string  `json:"iconKey,omitempty"`
	Size          *float64 `json:"size,omitempty"`

	LineWeight *float64 `json:"lineWeight,omitempty"`
	Filled     *bool    `json:"filled,omitempty"`
	FillColor  *string  `json:"fillColor,omitempty"`
	// FillRGB carries the exact fill components; fillColor is its "#rrggbb"
	// rendering for readers and hand-written documents.
	FillRGB *[3]float64 `json:"fillRgb,omitempty"`
}

// ============================================================
// Codec
// ============================================================

// Encode writes doc as indented JSON.
func Encode(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return nil
}

// Decode reads a document. The version is not checked here; FromDocument
// does that.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return &doc, nil
}

// Unmarshal is Decode for an in-memory body.
func Unmarshal(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return &doc, nil
}

// Marshal is Encode without indentation.
func Marshal(doc *Document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode scene: %w", err)
	}
	return data, nil
}
