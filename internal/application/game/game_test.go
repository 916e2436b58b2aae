package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/cavern/internal/application/scene"
)

type stubScene struct {
	next      scene.Scene
	err       error
	updates   int
	entered   int
	exited    int
	elapsedMS float64
}

func (s *stubScene) Update(elapsedMS float64) (scene.Scene, error) {
	s.updates++
	s.elapsedMS = elapsedMS
	return s.next, s.err
}

func (s *stubScene) Draw(screen *ebiten.Image) {}
func (s *stubScene) OnEnter()                  { s.entered++ }
func (s *stubScene) OnExit()                   { s.exited++ }

func TestNewEntersInitialScene(t *testing.T) {
	initial := &stubScene{}
	g := New(initial, 640, 480, 60)

	assert.Equal(t, 1, initial.entered)

	w, h := g.Layout(1280, 960)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestUpdatePassesFrameStep(t *testing.T) {
	initial := &stubScene{}
	g := New(initial, 640, 480, 60)

	require.NoError(t, g.Update())
	assert.Equal(t, 1, initial.updates)
	assert.InDelta(t, 1000.0/60.0, initial.elapsedMS, 1e-9)
}

func TestFrameStepIsCapped(t *testing.T) {
	initial := &stubScene{}
	g := New(initial, 640, 480, 1)

	require.NoError(t, g.Update())
	assert.InDelta(t, maxFrameMS, initial.elapsedMS, 1e-9)
}

func TestSceneTransition(t *testing.T) {
	second := &stubScene{}
	first := &stubScene{next: second}
	g := New(first, 640, 480, 60)

	require.NoError(t, g.Update())
	assert.Equal(t, 1, first.exited)
	assert.Equal(t, 1, second.entered)

	require.NoError(t, g.Update())
	assert.Equal(t, 1, second.updates)
	assert.Equal(t, 1, first.updates)
}

func TestUpdatePropagatesError(t *testing.T) {
	wantErr := errors.New("scene failed")
	g := New(&stubScene{err: wantErr}, 640, 480, 60)

	assert.ErrorIs(t, g.Update(), wantErr)
}

func TestSetElapsedMS(t *testing.T) {
	initial := &stubScene{}
	g := New(initial, 640, 480, 60)

	g.SetElapsedMS(5)
	require.NoError(t, g.Update())
	assert.Equal(t, 5.0, initial.elapsedMS)
}
