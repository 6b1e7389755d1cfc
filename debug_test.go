package wezzle

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return &buf
}

func TestDebugMode_DisposeLeasedNodeWarns(t *testing.T) {
	buf := captureLog(t)
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	n := NewRect("tile", 10, 10, ColorWhite)
	s.Add(n, LayerTile)
	f, _ := NewFade(n, FadeConfig{Kind: FadeIn})
	require.NoError(t, s.Animations().Add(f))
	n.Dispose()

	assert.Contains(t, buf.String(), `disposing node "tile"`)
	assert.Contains(t, buf.String(), "opacity")
}

func TestDebugMode_Off_NoWarnings(t *testing.T) {
	buf := captureLog(t)
	n := NewRect("tile", 10, 10, ColorWhite)
	require.NoError(t, n.Acquire(new(int), AttrSize))
	n.Dispose()
	assert.Zero(t, buf.Len(), "nothing is logged outside debug mode")
}

func TestDebugMode_LayerSizeWarning(t *testing.T) {
	buf := captureLog(t)
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	for i := 0; i <= debugMaxLayerSize; i++ {
		s.Add(NewRect("dot", 1, 1, ColorWhite), LayerEffect)
	}
	assert.Contains(t, buf.String(), "effect layer has 1001 nodes")
}

func TestDebugMode_FrameStats(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	a, _ := NewFade(NewRect("a", 1, 1, ColorWhite), FadeConfig{Kind: FadeIn, Duration: 10 * time.Millisecond})
	b, _ := NewFade(NewRect("b", 1, 1, ColorWhite), FadeConfig{Kind: FadeLoopIn})
	require.NoError(t, s.Animations().AddAll(a, b))

	require.NoError(t, s.Advance(10*time.Millisecond))
	assert.Equal(t, 1, s.frame.live)
	assert.Equal(t, 1, s.frame.evicted)
}

func TestDebugLogFormat(t *testing.T) {
	buf := captureLog(t)
	s := NewScene()
	s.debug = true
	s.frame = frameStats{live: 3, evicted: 2, drawn: 5}
	s.debugLog()
	assert.Contains(t, buf.String(), "3 live, 2 evicted")
	assert.Regexp(t, `^\[wezzle\] `, buf.String())
}
