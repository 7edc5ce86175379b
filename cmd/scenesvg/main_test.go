package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sketchpad/internal/geom"
	"sketchpad/internal/scene"
	"sketchpad/internal/shapes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScene(t *testing.T, dir string, doc scene.Document) string {
	t.Helper()
	path := filepath.Join(dir, "scene.json")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, scene.Encode(f, &doc))
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	doc := scene.ToDocument([]shapes.Shape{shapes.NewCircle(geom.Vec(10, 10), 5)}, nil)
	in := writeScene(t, dir, doc)
	out := filepath.Join(dir, "scene.svg")

	require.NoError(t, run(in, out, 64, 32, 0))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `viewBox="0 0 64 32"`)
	assert.Contains(t, string(data), `r="5"`)
}

func TestRun_UnsupportedVersion(t *testing.T) {
	dir := t.TempDir()
	in := writeScene(t, dir, scene.Document{Version: 4})

	err := run(in, filepath.Join(dir, "x.svg"), 0, 0, 10)
	assert.True(t, errors.Is(err, scene.ErrUnsupportedVersion))
}
