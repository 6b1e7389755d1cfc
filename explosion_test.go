package wezzle

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplosionGrowsThenShrinks(t *testing.T) {
	s := NewScene()
	x, err := NewExplosion(s, LayerEffect, 50, 50, ExplosionConfig{MinWidth: 2, MaxWidth: 10, Step: 4})
	require.NoError(t, err)

	o := x.Overlay()
	assert.Equal(t, []*Node{o}, s.Nodes(LayerEffect))
	assert.False(t, o.Visible(), "overlay is hidden until the explosion starts")

	require.NoError(t, x.Start())
	assert.True(t, o.Visible())

	widths := []int{}
	for !x.Finished() {
		x.NextFrame(10 * time.Millisecond)
		widths = append(widths, o.Width())
		cx, cy := o.Center()
		assert.Equal(t, 50.0, cx)
		assert.Equal(t, 50.0, cy)
	}
	assert.Equal(t, []int{6, 10, 6, 2}, widths)

	x.Finish()
	assert.Empty(t, s.Nodes(LayerEffect), "overlay is removed on finish")
}

func TestExplosionDefaults(t *testing.T) {
	s := NewScene()
	x, err := NewExplosion(s, LayerEffect, 0, 0, ExplosionConfig{})
	require.NoError(t, err)
	assert.Equal(t, ColorWhite, x.Overlay().Color)
	assert.Equal(t, 2, x.Overlay().Width())
}

func TestExplosionInvalidConfig(t *testing.T) {
	s := NewScene()
	_, err := NewExplosion(s, LayerEffect, 0, 0, ExplosionConfig{MinWidth: 10, MaxWidth: 5})
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Zero(t, s.Len())
}

func TestTransientAlreadyRemovedWarns(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	s := NewScene()
	x, err := NewExplosion(s, LayerEffect, 0, 0, ExplosionConfig{})
	require.NoError(t, err)
	require.NoError(t, x.Start())

	s.Remove(x.Overlay(), LayerEffect)
	x.CleanUp()
	assert.True(t, strings.Contains(buf.String(), "already removed"), "log = %q", buf.String())

	buf.Reset()
	x.CleanUp()
	assert.Empty(t, buf.String(), "teardown runs once")
}

func TestExplosionHiddenDuringWait(t *testing.T) {
	s := NewScene()
	x, err := NewExplosion(s, LayerEffect, 50, 50, ExplosionConfig{Wait: 30 * time.Millisecond, MinWidth: 2, MaxWidth: 10, Step: 4})
	require.NoError(t, err)
	require.NoError(t, x.Start())

	x.NextFrame(20 * time.Millisecond)
	assert.False(t, x.Overlay().Visible())
	x.NextFrame(10 * time.Millisecond)
	assert.True(t, x.Overlay().Visible())
}
