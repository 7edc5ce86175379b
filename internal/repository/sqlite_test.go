package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"sketchpad/internal/geom"
	"sketchpad/internal/scene"
	"sketchpad/internal/shapes"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "db", "scenes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := New(db)
	require.NoError(t, repo.Init(context.Background()))
	// Migrations are idempotent.
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func sampleDocument() scene.Document {
	list := []shapes.Shape{
		shapes.NewLine(geom.AxisAligned(geom.Vec(0, 0)), 10),
		shapes.NewCircle(geom.Vec(3, 3), 2),
	}
	return scene.ToDocument(list, map[string]struct{}{shapes.ID(list[1]): {}})
}

func TestRepository_CreateGet(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	doc := sampleDocument()

	id, err := repo.Create(ctx, "plan", &doc)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, doc, *got)
}

func TestRepository_Save(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	doc := sampleDocument()

	id, err := repo.Create(ctx, "plan", &doc)
	require.NoError(t, err)

	doc.Shapes = doc.Shapes[:1]
	require.NoError(t, repo.Save(ctx, id, &doc))

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Len(t, got.Shapes, 1)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, "plan", list[0].Name)
	assert.Equal(t, 1, list[0].ShapeCount)
	assert.Equal(t, scene.Version, list[0].Version)

	err = repo.Save(ctx, "missing", &doc)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	doc := sampleDocument()

	id, err := repo.Create(ctx, "", &doc)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.Get(ctx, id)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(repo.Delete(ctx, id), ErrNotFound))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
