package wezzle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startMove(t *testing.T, n *Node, cfg MoveConfig) *Move {
	t.Helper()
	m, err := NewMove(n, cfg)
	require.NoError(t, err)
	require.NoError(t, m.Start())
	return m
}

func TestMoveUnboundedRunsForDuration(t *testing.T) {
	n := newTile()
	m := startMove(t, n, MoveConfig{Speed: 100, Duration: time.Second})

	m.NextFrame(500 * time.Millisecond)
	assert.InDelta(t, 150, n.X(), 1e-9)
	assert.InDelta(t, 100, n.Y(), 1e-9)
	assert.True(t, m.Moving())

	m.NextFrame(500 * time.Millisecond)
	assert.InDelta(t, 200, n.X(), 1e-9)
	assert.True(t, m.Finished())
	assert.False(t, m.Moving())
}

func TestMoveStopsAtBound(t *testing.T) {
	n := newTile()
	n.SetPosition(0, 0)
	m := startMove(t, n, MoveConfig{Theta: 90, Speed: 100, MaxY: Bound(29.5), Finish: FinishAll})

	m.NextFrame(290 * time.Millisecond)
	assert.InDelta(t, 29, n.Y(), 1e-6)
	assert.False(t, m.Finished())

	m.NextFrame(10 * time.Millisecond)
	assert.Equal(t, 29.5, n.Y())
	assert.True(t, m.Finished())
}

func TestMoveFinishRules(t *testing.T) {
	cfg := MoveConfig{Theta: 45, Speed: 100, MaxX: Bound(10), MaxY: Bound(50)}

	t.Run("first", func(t *testing.T) {
		n := newTile()
		n.SetPosition(0, 0)
		cfg := cfg
		cfg.Finish = FinishFirst
		m := startMove(t, n, cfg)
		m.NextFrame(2 * time.Second)
		require.True(t, m.Finished())
		assert.Equal(t, 10.0, n.X())
		assert.Less(t, n.Y(), 50.0, "y stops where x hit its bound")
	})

	t.Run("all", func(t *testing.T) {
		n := newTile()
		n.SetPosition(0, 0)
		cfg := cfg
		cfg.Finish = FinishAll
		m := startMove(t, n, cfg)
		m.NextFrame(2 * time.Second)
		require.True(t, m.Finished())
		assert.Equal(t, 10.0, n.X())
		assert.Equal(t, 50.0, n.Y())
	})
}

func TestMoveDurationIsMinimumRunTime(t *testing.T) {
	n := newTile()
	n.SetPosition(0, 0)
	m := startMove(t, n, MoveConfig{Theta: 90, Speed: 100, MaxY: Bound(30), Duration: time.Second})

	m.NextFrame(500 * time.Millisecond)
	assert.Equal(t, 30.0, n.Y())
	assert.False(t, m.Moving())
	assert.False(t, m.Finished())

	m.NextFrame(500 * time.Millisecond)
	assert.True(t, m.Finished())
}

func TestMoveGravity(t *testing.T) {
	n := newTile()
	n.SetPosition(0, 0)
	m := startMove(t, n, MoveConfig{Theta: 90, Speed: 100, Gravity: 200, Duration: time.Second})

	m.NextFrame(500 * time.Millisecond)
	assert.InDelta(t, 25, n.Y(), 1e-6)
	m.NextFrame(500 * time.Millisecond)
	assert.InDelta(t, 0, n.Y(), 1e-6)
}

func TestMoveRotation(t *testing.T) {
	n := newTile()
	m := startMove(t, n, MoveConfig{Omega: 2, Duration: time.Second})
	assert.Equal(t, AttrPosition|AttrRotation, n.Leased())

	m.NextFrame(time.Second)
	assert.InDelta(t, 2, n.Rotation(), 1e-9)
}

func TestMoveInvalidConfig(t *testing.T) {
	cases := map[string]MoveConfig{
		"unbounded without duration": {Speed: 10},
		"min x over max x":           {MinX: Bound(5), MaxX: Bound(1)},
		"min y over max y":           {MinY: Bound(5), MaxY: Bound(1)},
		"negative period":            {Period: -1, Duration: time.Second},
		"unknown finish":             {Duration: time.Second, Finish: FinishRule(7)},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewMove(newTile(), cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestMoveCleanUpRestores(t *testing.T) {
	n := newTile()
	m := startMove(t, n, MoveConfig{Speed: 100, Omega: 1, Duration: time.Second})
	m.NextFrame(300 * time.Millisecond)

	m.CleanUp()
	assert.Equal(t, 100.0, n.X())
	assert.Equal(t, 100.0, n.Y())
	assert.Equal(t, 0.0, n.Rotation())
	assert.Zero(t, n.Leased())
}

func TestMoveIgnoresFramesBeforeStart(t *testing.T) {
	n := newTile()
	m, err := NewMove(n, MoveConfig{Speed: 100, Duration: time.Second})
	require.NoError(t, err)

	m.NextFrame(50 * time.Millisecond)
	assert.Equal(t, 100.0, n.X(), "an unstarted move leaves the entity alone")
	assert.Zero(t, m.Elapsed())
}
