package wezzle

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	n := newTile()
	tw := TweenPosition(n, 200, 300, time.Second, ease.Linear)
	require.NoError(t, tw.Start())
	assert.Equal(t, AttrPosition, n.Leased())

	// Exact halves avoid float32 accumulation drift.
	tw.NextFrame(500 * time.Millisecond)
	assert.InDelta(t, 150, n.X(), 0.5)
	assert.InDelta(t, 200, n.Y(), 0.5)
	assert.False(t, tw.Finished())

	tw.NextFrame(500 * time.Millisecond)
	assert.True(t, tw.Finished())
	assert.InDelta(t, 200, n.X(), 0.5)
	assert.InDelta(t, 300, n.Y(), 0.5)
}

func TestTweenSizeReachesTarget(t *testing.T) {
	n := newTile()
	tw := TweenSize(n, 40, 10, 500*time.Millisecond, nil)
	require.NoError(t, tw.Start())
	tw.NextFrame(250 * time.Millisecond)
	tw.NextFrame(250 * time.Millisecond)

	assert.True(t, tw.Finished())
	assert.Equal(t, 40, n.Width())
	assert.Equal(t, 10, n.Height())
	assert.Equal(t, 100.0, n.X(), "top-left corner stays put")
}

func TestTweenOpacity(t *testing.T) {
	n := newTile()
	tw := TweenOpacity(n, 0, time.Second, ease.Linear)
	require.NoError(t, tw.Start())
	tw.NextFrame(500 * time.Millisecond)
	assert.InDelta(t, 50, n.Opacity(), 1)
	tw.NextFrame(500 * time.Millisecond)
	assert.Equal(t, 0, n.Opacity())
}

func TestTweenRotation(t *testing.T) {
	n := newTile()
	tw := TweenRotation(n, math.Pi, time.Second, ease.InOutCubic)
	require.NoError(t, tw.Start())
	tw.NextFrame(time.Second)
	assert.True(t, tw.Finished())
	assert.InDelta(t, math.Pi, n.Rotation(), 1e-5)
}

func TestTweenNotStartedIsInert(t *testing.T) {
	n := newTile()
	tw := TweenPosition(n, 0, 0, time.Second, ease.Linear)
	tw.NextFrame(500 * time.Millisecond)
	assert.Equal(t, 100.0, n.X())
	assert.False(t, tw.Finished())
}

func TestTweenDisposedTarget(t *testing.T) {
	n := newTile()
	tw := TweenPosition(n, 0, 0, time.Second, ease.Linear)
	require.NoError(t, tw.Start())
	n.Dispose()

	tw.NextFrame(500 * time.Millisecond)
	assert.True(t, tw.Finished())
	assert.Equal(t, 100.0, n.X(), "disposed targets are not written")
}

func TestTweenCleanUpRestores(t *testing.T) {
	n := newTile()
	tw := TweenPosition(n, 0, 0, time.Second, ease.OutBounce)
	require.NoError(t, tw.Start())
	tw.NextFrame(300 * time.Millisecond)

	tw.CleanUp()
	assert.Equal(t, 100.0, n.X())
	assert.Equal(t, 100.0, n.Y())
	assert.Zero(t, n.Leased())
}
