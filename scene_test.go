package wezzle

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneAddRemove(t *testing.T) {
	s := NewScene()
	a := NewRect("a", 1, 1, ColorWhite)
	b := NewRect("b", 1, 1, ColorWhite)
	s.Add(a, LayerTile)
	s.Add(b, LayerTile)

	require.Equal(t, []*Node{a, b}, s.Nodes(LayerTile))
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Remove(a, LayerUI), "wrong layer")
	assert.True(t, s.Remove(a, LayerTile))
	assert.False(t, s.Remove(a, LayerTile), "already removed")
	assert.Nil(t, a.Scene())
	assert.Equal(t, []*Node{b}, s.Nodes(LayerTile))
}

func TestSceneAddReparents(t *testing.T) {
	s1, s2 := NewScene(), NewScene()
	n := NewRect("n", 1, 1, ColorWhite)
	s1.Add(n, LayerTile)
	s2.Add(n, LayerEffect)

	assert.Zero(t, s1.Len())
	assert.Same(t, s2, n.Scene())
	assert.Len(t, s2.Nodes(LayerEffect), 1)

	s2.Add(n, LayerUI)
	assert.Empty(t, s2.Nodes(LayerEffect))
	assert.Len(t, s2.Nodes(LayerUI), 1)
}

func TestSceneAddPanics(t *testing.T) {
	s := NewScene()
	disposed := NewRect("gone", 1, 1, ColorWhite)
	disposed.Dispose()

	assert.Panics(t, func() { s.Add(nil, LayerTile) }, "nil")
	assert.Panics(t, func() { s.Add(disposed, LayerTile) }, "disposed")
	assert.Panics(t, func() { s.Add(NewRect("n", 1, 1, ColorWhite), numLayers) }, "unknown layer")
}

func TestSceneAdvanceDrivesAnimations(t *testing.T) {
	s := NewScene()
	n := NewRect("n", 10, 10, ColorWhite)
	s.Add(n, LayerTile)
	f, err := NewFade(n, FadeConfig{Kind: FadeOut, Duration: 100 * time.Millisecond})
	require.NoError(t, err)
	require.NoError(t, s.Animations().Add(f))

	require.NoError(t, s.Advance(100*time.Millisecond))
	assert.Equal(t, 0, n.Opacity())
	assert.Zero(t, s.Animations().Len(), "finished fade is evicted")
}

func TestSceneUpdateFuncError(t *testing.T) {
	s := NewScene()
	want := errors.New("quit")
	calls := 0
	s.SetUpdateFunc(func() error {
		calls++
		if calls == 2 {
			return want
		}
		return nil
	})
	require.NoError(t, s.Advance(time.Millisecond))
	assert.ErrorIs(t, s.Advance(time.Millisecond), want)
}

func TestShowStats(t *testing.T) {
	s := NewScene()
	n := s.ShowStats()
	assert.Same(t, n, s.ShowStats(), "the widget is created once")
	require.Equal(t, []*Node{n}, s.Nodes(LayerUI))

	f, _ := NewFade(NewRect("r", 1, 1, ColorWhite), FadeConfig{Kind: FadeLoopIn})
	require.NoError(t, s.Animations().Add(f))
	require.NoError(t, s.Advance(statsInterval))
	assert.Contains(t, n.Text, "Anims: 1")
}

func TestSetDebugModeSetsGlobal(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)
	assert.True(t, globalDebug)
}
