package ingest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"sketchpad/internal/geom"
)

// ============================================================
// Path Parser
// ============================================================

var pathCommand = regexp.MustCompile(`([MmLlHhVvZz])([^MmLlHhVvZz]*)`)

// ParsePath reads the polyline subset of SVG path data (M, L, H, V and Z in
// absolute and relative form) and returns one point list per subpath.
// Repeated coordinates after a command continue it, as in SVG.
func ParsePath(d string) ([][]geom.Vector, error) {
	d = strings.TrimSpace(d)
	if d == "" {
		return nil, fmt.Errorf("empty path")
	}

	var subpaths [][]geom.Vector
	var current []geom.Vector
	var cursor geom.Vector

	flush := func() {
		if len(current) > 1 {
			subpaths = append(subpaths, current)
		}
		current = nil
	}

	for _, match := range pathCommand.FindAllStringSubmatch(d, -1) {
		cmd := match[1]
		coords := parseCoords(match[2])

		switch cmd {
		case "M", "m":
			if len(coords) < 2 {
				return nil, fmt.Errorf("%s needs a coordinate pair", cmd)
			}
			flush()
			for i := 0; i+1 < len(coords); i += 2 {
				next := geom.Vec(coords[i], coords[i+1])
				if cmd == "m" {
					next = cursor.Add(next)
				}
				cursor = next
				current = append(current, cursor)
			}

		case "L", "l":
			for i := 0; i+1 < len(coords); i += 2 {
				next := geom.Vec(coords[i], coords[i+1])
				if cmd == "l" {
					next = cursor.Add(next)
				}
				cursor = next
				current = append(current, cursor)
			}

		case "H", "h":
			for _, x := range coords {
				if cmd == "h" {
					x += cursor.X
				}
				cursor = geom.Vec(x, cursor.Y)
				current = append(current, cursor)
			}

		case "V", "v":
			for _, y := range coords {
				if cmd == "v" {
					y += cursor.Y
				}
				cursor = geom.Vec(cursor.X, y)
				current = append(current, cursor)
			}

		case "Z", "z":
			// Close back to the first point of the subpath.
			if len(current) > 0 {
				cursor = current[0]
				current = append(current, cursor)
			}
			flush()
			current = []geom.Vector{cursor}
		}
	}
	flush()

	return subpaths, nil
}

func parseCoords(s string) []float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	s = strings.ReplaceAll(s, ",", " ")
	parts := strings.Fields(s)

	var coords []float64
	for _, part := range parts {
		val, err := strconv.ParseFloat(part, 64)
		if err == nil {
			coords = append(coords, val)
		}
	}

	return coords
}
