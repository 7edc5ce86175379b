// Command scenesvg renders a scene document to SVG.
//
//	scenesvg [-width W -height H] [-o out.svg] scene.json
//
// With no file argument the document is read from stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"sketchpad/internal/export"
	"sketchpad/internal/scene"
)

func main() {
	width := flag.Float64("width", 0, "canvas width; fitted to the shapes when zero")
	height := flag.Float64("height", 0, "canvas height; fitted to the shapes when zero")
	padding := flag.Float64("padding", 10, "padding around fitted shapes")
	out := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	if err := run(flag.Arg(0), *out, *width, *height, *padding); err != nil {
		log.Fatalf("scenesvg: %v", err)
	}
}

func run(in, out string, width, height, padding float64) error {
	var r io.Reader = os.Stdin
	if in != "" {
		f, err := os.Open(in)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	doc, err := scene.Decode(r)
	if err != nil {
		return err
	}

	opts := export.DefaultOptions()
	opts.Width, opts.Height, opts.Padding = width, height, padding
	svg, err := export.NewRenderer(opts).Render(doc)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if out == "" {
		_, err = io.WriteString(os.Stdout, svg)
		return err
	}
	return os.WriteFile(out, []byte(svg), 0o644)
}
