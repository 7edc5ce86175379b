package service

import (
	"sync"
	"testing"

	"sketchpad/internal/builder"
	"sketchpad/internal/editor"
	"sketchpad/internal/geom"
	"sketchpad/internal/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManager_IssueResolveClose(t *testing.T) {
	m := NewSessionManager(builder.New(builder.DefaultOptions()), editor.DefaultOptions())

	token := m.Issue("scene-1", scene.NewCollection())
	require.NotEmpty(t, token)

	s, ok := m.Resolve(token)
	require.True(t, ok)
	assert.Equal(t, "scene-1", s.SceneID())
	assert.Equal(t, 1, m.Len())

	_, ok = m.Resolve("nope")
	assert.False(t, ok)

	assert.True(t, m.Close(token))
	assert.False(t, m.Close(token))
	assert.Equal(t, 0, m.Len())
}

func TestSession_SerializesAccess(t *testing.T) {
	m := NewSessionManager(builder.New(builder.DefaultOptions()), editor.DefaultOptions())
	token := m.Issue("", scene.NewCollection())
	s, _ := m.Resolve(token)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Do(func(e *editor.Editor) error {
				e.SetTool(builder.ToolPoint)
				e.Press(geom.Vec(float64(i), 0))
				e.Release(geom.Vec(float64(i), 0))
				return nil
			})
		}(i)
	}
	wg.Wait()

	_ = s.Do(func(e *editor.Editor) error {
		assert.Equal(t, 20, e.Scene().Len())
		return nil
	})
}

func TestSession_PersistCreatesOnce(t *testing.T) {
	m := NewSessionManager(builder.New(builder.DefaultOptions()), editor.DefaultOptions())
	s, _ := m.Resolve(m.Issue("", scene.NewCollection()))

	var (
		mu      sync.Mutex
		creates int
		updates int
	)
	save := func(sceneID string, doc *scene.Document) (string, error) {
		mu.Lock()
		defer mu.Unlock()
		if sceneID == "" {
			creates++
			return "scene-1", nil
		}
		updates++
		return sceneID, nil
	}

	var wg sync.WaitGroup
	results := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, created, err := s.Persist(save)
			assert.NoError(t, err)
			assert.Equal(t, "scene-1", id)
			results <- created
		}()
	}
	wg.Wait()
	close(results)

	firsts := 0
	for created := range results {
		if created {
			firsts++
		}
	}
	assert.Equal(t, 1, creates)
	assert.Equal(t, 9, updates)
	assert.Equal(t, 1, firsts)
	assert.Equal(t, "scene-1", s.SceneID())
}

func TestSession_PersistErrorKeepsSceneID(t *testing.T) {
	m := NewSessionManager(builder.New(builder.DefaultOptions()), editor.DefaultOptions())
	s, _ := m.Resolve(m.Issue("", scene.NewCollection()))

	_, _, err := s.Persist(func(string, *scene.Document) (string, error) {
		return "", assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, s.SceneID())
}
